// Package loader reads drawings from GeoJSON.
//
// The input is a FeatureCollection. Every feature's geometry is flattened to
// paths and filed under the layer named by its "layer" property. Features
// without one land in layer "0".
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"plotpath/pkg/geometry"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// LayerProperty is the feature property holding the layer name.
const LayerProperty = "layer"

// DefaultLayer names the layer of features that don't say.
const DefaultLayer = "0"

var ErrNotFeatureCollection = errors.New("not a GeoJSON FeatureCollection")

type Options struct {
	// Simplify runs Douglas-Peucker with this threshold over every path. Zero
	// leaves paths alone.
	Simplify float64
}

// Load decodes a FeatureCollection from r. Layers come out in the order they
// are first seen; paths within a layer keep feature order.
func Load(r io.Reader, opts Options) (geometry.Drawing, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return geometry.Drawing{}, fmt.Errorf("reading input: %w", err)
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return geometry.Drawing{}, fmt.Errorf("decoding GeoJSON: %w", err)
	}
	if probe.Type != "FeatureCollection" {
		return geometry.Drawing{}, fmt.Errorf("%w: type %q", ErrNotFeatureCollection, probe.Type)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return geometry.Drawing{}, fmt.Errorf("decoding GeoJSON: %w", err)
	}

	var d geometry.Drawing
	layers := map[string]int{}
	for _, feature := range fc.Features {
		name := layerName(feature.Properties)
		i, ok := layers[name]
		if !ok {
			i = len(d.Layers)
			layers[name] = i
			d.Layers = append(d.Layers, geometry.Layer{Name: name})
		}

		paths := geometry.Flatten(feature.Geometry)
		if opts.Simplify > 0 {
			paths = simplifyPaths(paths, opts.Simplify)
		}
		d.Layers[i].Paths = append(d.Layers[i].Paths, paths...)
	}
	return d, nil
}

func layerName(props geojson.Properties) string {
	switch v := props[LayerProperty].(type) {
	case nil:
		return DefaultLayer
	case string:
		if v == "" {
			return DefaultLayer
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func simplifyPaths(c geometry.Collection, threshold float64) geometry.Collection {
	s := simplify.DouglasPeucker(threshold)
	out := make(geometry.Collection, 0, len(c))
	for _, path := range c {
		ls, ok := s.Simplify(path.LineString()).(orb.LineString)
		if !ok {
			out = append(out, path)
			continue
		}
		out = append(out, geometry.Flatten(ls)...)
	}
	return out
}
