package geometry

import (
	"github.com/paulmach/orb"
)

// Flatten reduces an arbitrary shape tree to the open polylines that a single
// pen pass draws. Polygons contribute one closed path per ring, collections are
// flattened recursively in order, and anything without a stroke (points, nil)
// yields nothing.
func Flatten(g orb.Geometry) Collection {
	var out Collection
	flatten(g, &out)
	return out
}

func flatten(g orb.Geometry, out *Collection) {
	switch g := g.(type) {
	case orb.LineString:
		appendLine(out, g, false)
	case orb.Ring:
		appendLine(out, g, true)
	case orb.Polygon:
		for _, ring := range g {
			appendLine(out, ring, true)
		}
	case orb.MultiLineString:
		for _, line := range g {
			appendLine(out, line, false)
		}
	case orb.MultiPolygon:
		for _, polygon := range g {
			flatten(polygon, out)
		}
	case orb.Collection:
		for _, child := range g {
			flatten(child, out)
		}
	case orb.Bound:
		flatten(g.ToPolygon(), out)
	}
	// orb.Point, orb.MultiPoint and nil have no stroke.
}

func appendLine(out *Collection, points []orb.Point, closed bool) {
	if len(points) < 2 {
		return
	}
	path := make(Path, 0, len(points)+1)
	for _, p := range points {
		path = append(path, Point{X: p[0], Y: p[1]})
	}
	if closed && !path.IsClosed() {
		path = append(path, path[0])
	}
	*out = append(*out, path)
}
