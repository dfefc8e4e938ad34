// Package gcode writes ordered drawings as pen plotter G-code.
package gcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"plotpath/pkg/cfg"
	"plotpath/pkg/geometry"
)

var ErrInvalidConfig = errors.New("invalid G-code config")

// Config holds the machine settings. Coordinates are multiplied by Scale on
// the way out.
type Config struct {
	Scale          float64
	PenUpZ         float64
	PenDownZ       float64
	TravelFeedRate float64
	DrawFeedRate   float64
	ZFeedRate      float64

	// Home is where the pen starts and returns to, in drawing units.
	Home geometry.Point
}

// DefaultConfig returns the settings from package cfg.
func DefaultConfig() Config {
	return Config{
		Scale:          cfg.GCodeScale,
		PenUpZ:         cfg.PenUpZ,
		PenDownZ:       cfg.PenDownZ,
		TravelFeedRate: cfg.TravelFeedRate,
		DrawFeedRate:   cfg.DrawFeedRate,
		ZFeedRate:      cfg.ZFeedRate,
		Home:           geometry.Point{X: cfg.OriginX, Y: cfg.OriginY},
	}
}

func (c Config) validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalidConfig, c.Scale)
	case c.TravelFeedRate <= 0, c.DrawFeedRate <= 0, c.ZFeedRate <= 0:
		return fmt.Errorf("%w: feed rates must be positive", ErrInvalidConfig)
	case c.PenUpZ <= c.PenDownZ:
		return fmt.Errorf("%w: pen up Z %v must be above pen down Z %v", ErrInvalidConfig, c.PenUpZ, c.PenDownZ)
	}
	return nil
}

// Generate writes d to w. Layers are drawn in order with an M0 pause before
// every layer after the first, so the pen can be changed.
func Generate(w io.Writer, d geometry.Drawing, c Config) error {
	if err := c.validate(); err != nil {
		return err
	}
	out := &writer{w: bufio.NewWriter(w), cfg: c}

	metrics := geometry.MeasureDrawing(d, c.Home)
	out.printf("(plotpath: %d layers, %s)\n", len(d.Layers), metrics)

	// Output gcode header
	out.printf("G21 (metric)\n")
	out.printf("G90 (absolute mode)\n")
	out.printf("G92 X%.2f Y%.2f Z%.2f (you are here)\n", c.Home.X*c.Scale, c.Home.Y*c.Scale, c.PenUpZ)
	out.printf("G0 F%.2f (Travel Feed Rate)\n", c.TravelFeedRate)
	out.printf("G1 F%.2f (Draw Feed Rate)\n", c.DrawFeedRate)
	out.printf("G0 Z%.2f F%.2f (Pen Up)\n", c.PenUpZ, c.ZFeedRate)

	for i, layer := range d.Layers {
		out.printf("\n(layer %q: %d paths)\n", layer.Name, len(layer.Paths))
		if i > 0 {
			out.printf("M0 (change pen for layer %q)\n", layer.Name)
		}
		for _, path := range layer.Paths {
			out.path(path)
		}
	}

	// Output gcode footer
	out.printf("\n(end of print job)\n")
	out.printf("G0 Z%.2f F%.2f\n", c.PenUpZ, c.ZFeedRate)
	out.printf("G0 X%.2f Y%.2f F%.2f (go home)\n", c.Home.X*c.Scale, c.Home.Y*c.Scale, c.TravelFeedRate)

	if out.err != nil {
		return out.err
	}
	return out.w.Flush()
}

// writer remembers the first write error so the generator can stay linear.
type writer struct {
	w   *bufio.Writer
	cfg Config
	err error
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func (w *writer) path(path geometry.Path) {
	if len(path) < 2 {
		return
	}
	s := w.cfg.Scale
	w.printf("G0 X%.2f Y%.2f\n", path[0].X*s, path[0].Y*s)
	w.printf("G0 Z%.2f (Pen Down)\n", w.cfg.PenDownZ)
	for _, p := range path[1:] {
		w.printf("G1 X%.2f Y%.2f\n", p.X*s, p.Y*s)
	}
	w.printf("G0 Z%.2f (Pen Up)\n", w.cfg.PenUpZ)
}
