package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"

	"plotpath/pkg/cfg"
	"plotpath/pkg/gcode"
	"plotpath/pkg/geometry"
	"plotpath/pkg/loader"
	"plotpath/pkg/optimize"

	"github.com/joho/godotenv"
)

func main() {
	// Settings from .env and PLOTPATH_* variables become the flag defaults.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf(".env error: %s", err)
	}
	if err := cfg.FromEnv(); err != nil {
		log.Fatalf("environment error: %s", err)
	}

	inPath := flag.String("in", "", "input GeoJSON file (default: stdin)")
	outPath := flag.String("out", "", "output G-code file (default: stdout)")
	tolerance := flag.Float64("tolerance", cfg.DefaultTolerance, "merge distance and minimum path length, in drawing units")
	originX := flag.Float64("origin-x", cfg.OriginX, "pen home X, in drawing units")
	originY := flag.Float64("origin-y", cfg.OriginY, "pen home Y, in drawing units")
	seed := flag.Int64("seed", cfg.DefaultSeed, "random seed for loop seams")
	noReloop := flag.Bool("no-reloop", false, "keep the seams of closed loops")
	noMerge := flag.Bool("no-merge", false, "don't join paths with touching ends")
	noDelete := flag.Bool("no-delete", false, "keep paths shorter than -tolerance")
	noSort := flag.Bool("no-sort", false, "keep the input path order")
	parallel := flag.Bool("parallel", false, "optimize layers concurrently")
	simplify := flag.Float64("simplify", 0, "Douglas-Peucker threshold applied on load (0 disables)")
	scale := flag.Float64("scale", cfg.GCodeScale, "drawing units to machine units")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	logger := log.New(os.Stderr, "", 0)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	var in io.Reader = os.Stdin
	if *inPath != "" && *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("file read error: %s", err)
		}
		defer f.Close()
		in = f
	}

	drawing, err := loader.Load(in, loader.Options{Simplify: *simplify})
	if err != nil {
		log.Fatalf("load error: %s", err)
	}
	logger.Printf("Loaded %d layers, %d paths", len(drawing.Layers), drawing.PathCount())

	origin := geometry.Point{X: *originX, Y: *originY}
	opts := optimize.Options{
		Tolerance:   *tolerance,
		Reloop:      !*noReloop,
		Merge:       !*noMerge,
		DeleteShort: !*noDelete,
		Reorder:     !*noSort,
		Origin:      origin,
		Rand:        rand.New(rand.NewSource(*seed)),
		Parallel:    *parallel,
		Logger:      logger,
	}
	drawing, err = optimize.Optimize(context.Background(), drawing, opts)
	if err != nil {
		log.Fatalf("optimize error: %s", err)
	}

	gcfg := gcode.DefaultConfig()
	gcfg.Scale = *scale
	gcfg.Home = origin
	if err := writeGcode(*outPath, drawing, gcfg); err != nil {
		log.Fatalf("gcode error: %s", err)
	}
}

// writeGcode writes to path, or to stdout when path is empty or "-". A file
// is only complete once Close has succeeded.
func writeGcode(path string, d geometry.Drawing, c gcode.Config) error {
	if path == "" || path == "-" {
		return gcode.Generate(os.Stdout, d, c)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gcode.Generate(f, d, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
