package geometry

import (
	"math"
)

// Point is a location on the plotting surface. Units are whatever the caller
// uses consistently (inches, mm).
type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

type Rectangle struct {
	Min Point
	Max Point
}

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// EmptyRectangle returns an inverted rectangle that any call to Extend will
// replace with the added point.
func EmptyRectangle() Rectangle {
	return Rectangle{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Empty reports whether no point has been added to the rectangle.
func (r Rectangle) Empty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Extend returns the smallest rectangle containing both r and p.
func (r Rectangle) Extend(p Point) Rectangle {
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

func (r Rectangle) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Diagonal is the length of the rectangle's diagonal, or 0 when empty.
func (r Rectangle) Diagonal() float64 {
	if r.Empty() {
		return 0
	}
	return r.Min.Distance(r.Max)
}
