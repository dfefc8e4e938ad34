package geometry

import (
	"github.com/paulmach/orb"
)

// Path is one continuous pen-down stroke. The stored order is the forward
// orientation.
type Path []Point

// Collection is the unordered multiset of paths drawn with one pen. Once it
// has been ordered, slice order is draw order.
type Collection []Path

// Layer is a named collection.
type Layer struct {
	Name  string
	Paths Collection
}

// Drawing is an ordered list of layers. Layers are never merged into each
// other by the optimizer.
type Drawing struct {
	Layers []Layer
}

func (p Path) Start() Point {
	return p[0]
}

func (p Path) End() Point {
	return p[len(p)-1]
}

// Length returns the sum of the segment lengths.
func (p Path) Length() float64 {
	length := 0.0
	for i := 1; i < len(p); i++ {
		length += p[i-1].Distance(p[i])
	}
	return length
}

// IsClosed reports whether the first and last points are identical.
func (p Path) IsClosed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Degenerate reports whether the path can't be drawn as a stroke: fewer than
// two points, or zero length.
func (p Path) Degenerate() bool {
	return len(p) < 2 || p.Length() == 0
}

// Reverse returns a reversed copy of the path.
func (p Path) Reverse() Path {
	reversed := make(Path, len(p))
	for i, point := range p {
		reversed[len(p)-1-i] = point
	}
	return reversed
}

func (p Path) LineString() orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, point := range p {
		ls[i] = orb.Point{point.X, point.Y}
	}
	return ls
}

// Weld joins b onto the end of a. A point shared exactly by a's end and b's
// start is kept once; otherwise the points are concatenated as is.
func Weld(a, b Path) Path {
	welded := make(Path, 0, len(a)+len(b))
	welded = append(welded, a...)
	if len(a) > 0 && len(b) > 0 && a.End() == b.Start() {
		b = b[1:]
	}
	return append(welded, b...)
}

// Length returns the total pen-down length of the collection.
func (c Collection) Length() float64 {
	length := 0.0
	for _, path := range c {
		length += path.Length()
	}
	return length
}

func (c Collection) Bounds() Rectangle {
	bounds := EmptyRectangle()
	for _, path := range c {
		for _, point := range path {
			bounds = bounds.Extend(point)
		}
	}
	return bounds
}

// NonDegenerate returns the paths of c that can be drawn as strokes.
func (c Collection) NonDegenerate() Collection {
	out := make(Collection, 0, len(c))
	for _, path := range c {
		if !path.Degenerate() {
			out = append(out, path)
		}
	}
	return out
}

func (c Collection) MultiLineString() orb.MultiLineString {
	mls := make(orb.MultiLineString, len(c))
	for i, path := range c {
		mls[i] = path.LineString()
	}
	return mls
}

// PathCount returns the number of pen lifts across all layers.
func (d Drawing) PathCount() int {
	count := 0
	for _, layer := range d.Layers {
		count += len(layer.Paths)
	}
	return count
}
