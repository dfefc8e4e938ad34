// Package cfg holds the default settings. They can be overridden from the
// environment with FromEnv.
package cfg

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultTolerance is the largest endpoint gap that gets welded, and the
// shortest path that survives short-path deletion. Zero disables both.
// Units are the drawing's units (usually inches).
var DefaultTolerance = 0.0

// The pen's resting position. Travel is measured from here and back.
var (
	OriginX = 0.0
	OriginY = 0.0
)

// DefaultSeed seeds the random source used to pick loop seams when the
// caller doesn't supply one.
var DefaultSeed int64 = 1

// G-code output. Heights are in machine units, feed rates in units per minute.
var (
	PenUpZ         = 2.0
	PenDownZ       = 0.0
	TravelFeedRate = 10000.0
	DrawFeedRate   = 1500.0
	ZFeedRate      = 1500.0

	// GCodeScale converts drawing units to machine units. The default turns
	// inches into millimetres.
	GCodeScale = 25.4
)

// Environment variables read by FromEnv, mapped to the settings above.
var envFloats = map[string]*float64{
	"PLOTPATH_TOLERANCE":        &DefaultTolerance,
	"PLOTPATH_ORIGIN_X":         &OriginX,
	"PLOTPATH_ORIGIN_Y":         &OriginY,
	"PLOTPATH_PEN_UP_Z":         &PenUpZ,
	"PLOTPATH_PEN_DOWN_Z":       &PenDownZ,
	"PLOTPATH_TRAVEL_FEED_RATE": &TravelFeedRate,
	"PLOTPATH_DRAW_FEED_RATE":   &DrawFeedRate,
	"PLOTPATH_Z_FEED_RATE":      &ZFeedRate,
	"PLOTPATH_GCODE_SCALE":      &GCodeScale,
}

// FromEnv overrides the settings above with any PLOTPATH_* environment
// variables that are set. Variables already loaded from a .env file count.
func FromEnv() error {
	for name, setting := range envFloats {
		value, ok := os.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*setting = f
	}
	if value, ok := os.LookupEnv("PLOTPATH_SEED"); ok && value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("PLOTPATH_SEED: %w", err)
		}
		DefaultSeed = seed
	}
	return nil
}
