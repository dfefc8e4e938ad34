// Package optimize prepares path collections for a pen plotter: it welds
// paths with touching ends, drops paths too short to matter, randomizes the
// seams of closed loops and orders paths to reduce pen-up travel.
package optimize

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"plotpath/pkg/cfg"
	"plotpath/pkg/geometry"

	"golang.org/x/sync/errgroup"
)

// Options selects the pipeline stages. Stages always run in the order
// reloop, merge, delete short, reorder.
type Options struct {
	// Tolerance is the merge distance and the minimum path length.
	Tolerance float64

	Reloop      bool
	Merge       bool
	DeleteShort bool
	Reorder     bool

	// Origin is where the pen starts and finishes each layer.
	Origin geometry.Point

	// Rand picks loop seams. When nil, a source seeded with cfg.DefaultSeed
	// is used.
	Rand *rand.Rand

	// Parallel optimizes layers concurrently. Output is identical to a
	// sequential run.
	Parallel bool

	// Logger receives progress messages. Nil means silent.
	Logger *log.Logger
}

// DefaultOptions enables every stage with the package defaults from cfg.
func DefaultOptions() Options {
	return Options{
		Tolerance:   cfg.DefaultTolerance,
		Reloop:      true,
		Merge:       true,
		DeleteShort: true,
		Reorder:     true,
		Origin:      geometry.Point{X: cfg.OriginX, Y: cfg.OriginY},
	}
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// Optimize runs the pipeline over every layer of d. Layers keep their names
// and order and are never combined.
//
// ctx is checked before each layer starts; a layer that has started runs to
// completion.
func Optimize(ctx context.Context, d geometry.Drawing, opts Options) (geometry.Drawing, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.DefaultSeed))
	}
	// Draw every layer's seed up front so the result doesn't depend on
	// scheduling.
	seeds := make([]int64, len(d.Layers))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	out := geometry.Drawing{Layers: make([]geometry.Layer, len(d.Layers))}
	optimizeOne := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		layer := d.Layers[i]
		paths, err := OptimizeLayer(layer.Paths, opts, rand.New(rand.NewSource(seeds[i])))
		if err != nil {
			return fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		out.Layers[i] = geometry.Layer{Name: layer.Name, Paths: paths}
		return nil
	}

	if opts.Parallel {
		group, groupCtx := errgroup.WithContext(ctx)
		for i := range d.Layers {
			i := i
			group.Go(func() error {
				return optimizeOne(groupCtx, i)
			})
		}
		if err := group.Wait(); err != nil {
			return geometry.Drawing{}, err
		}
	} else {
		for i := range d.Layers {
			if err := optimizeOne(ctx, i); err != nil {
				return geometry.Drawing{}, err
			}
		}
	}

	before := geometry.MeasureDrawing(d, opts.Origin)
	after := geometry.MeasureDrawing(out, opts.Origin)
	opts.logf("Pen Lifts: %d -> %d", before.Paths, after.Paths)
	opts.logf("Pen Up Distance: %.1f -> %.1f", before.PenUp, after.PenUp)
	return out, nil
}

// OptimizeLayer runs the enabled stages over one collection. rng is only
// used when opts.Reloop is set; nil falls back to cfg.DefaultSeed.
func OptimizeLayer(c geometry.Collection, opts Options, rng *rand.Rand) (geometry.Collection, error) {
	var err error
	if opts.Reloop {
		if rng == nil {
			rng = rand.New(rand.NewSource(cfg.DefaultSeed))
		}
		c = Reloop(c, rng)
	}
	if opts.Merge {
		n := len(c)
		c, err = Merge(c, opts.Tolerance)
		if err != nil {
			return nil, fmt.Errorf("merging paths: %w", err)
		}
		opts.logf("Joining Paths: %d -> %d", n, len(c))
	}
	if opts.DeleteShort {
		n := len(c)
		c = DeleteShort(c, opts.Tolerance)
		opts.logf("Deleting Short Paths: %d -> %d", n, len(c))
	}
	if opts.Reorder {
		c, err = Order(c, opts.Origin)
		if err != nil {
			return nil, fmt.Errorf("sorting paths: %w", err)
		}
		opts.logf("Sorting Paths: %d paths, pen up %.2f", len(c), geometry.Measure(c, opts.Origin).PenUp)
	}
	return c, nil
}
