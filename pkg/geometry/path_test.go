package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathBasics(t *testing.T) {
	tests := []struct {
		path       Path
		length     float64
		closed     bool
		degenerate bool
	}{
		{path: nil, length: 0, closed: false, degenerate: true},
		{path: Path{{1, 1}}, length: 0, closed: false, degenerate: true},
		{path: Path{{1, 1}, {1, 1}}, length: 0, closed: true, degenerate: true},
		{path: Path{{0, 0}, {3, 4}}, length: 5, closed: false, degenerate: false},
		{path: Path{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, length: 2 + math.Sqrt2, closed: true, degenerate: false},
	}

	for i, test := range tests {
		if got := test.path.Length(); math.Abs(got-test.length) > 1e-12 {
			t.Errorf("Test %d - Length(%v) = %g, want %g", i, test.path, got, test.length)
		}
		if got := test.path.IsClosed(); got != test.closed {
			t.Errorf("Test %d - IsClosed(%v) = %v, want %v", i, test.path, got, test.closed)
		}
		if got := test.path.Degenerate(); got != test.degenerate {
			t.Errorf("Test %d - Degenerate(%v) = %v, want %v", i, test.path, got, test.degenerate)
		}
	}
}

func TestReverse(t *testing.T) {
	path := Path{{0, 0}, {1, 0}, {2, 5}}
	reversed := path.Reverse()
	want := Path{{2, 5}, {1, 0}, {0, 0}}
	if diff := cmp.Diff(want, reversed); diff != "" {
		t.Errorf("incorrect reverse: %s", diff)
	}
	// The original must be untouched.
	if diff := cmp.Diff(Path{{0, 0}, {1, 0}, {2, 5}}, path); diff != "" {
		t.Errorf("Reverse modified its receiver: %s", diff)
	}
	if diff := cmp.Diff(path, reversed.Reverse()); diff != "" {
		t.Errorf("double reverse is not the identity: %s", diff)
	}
}

func TestWeld(t *testing.T) {
	tests := []struct {
		a, b Path
		want Path
	}{
		{
			a:    Path{{0, 0}, {1, 0}},
			b:    Path{{1, 0}, {2, 0}},
			want: Path{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			a:    Path{{0, 0}, {1, 0}},
			b:    Path{{1, 0.005}, {2, 0}},
			want: Path{{0, 0}, {1, 0}, {1, 0.005}, {2, 0}},
		},
	}
	for i, test := range tests {
		if diff := cmp.Diff(test.want, Weld(test.a, test.b)); diff != "" {
			t.Errorf("Test %d - Weld(%v, %v) incorrect output: %s", i, test.a, test.b, diff)
		}
	}
}

func TestBounds(t *testing.T) {
	c := Collection{
		{{-1, 2}, {3, 4}},
		{{0, -5}, {1, 1}},
	}
	want := Rectangle{Min: Point{-1, -5}, Max: Point{3, 4}}
	if diff := cmp.Diff(want, c.Bounds()); diff != "" {
		t.Errorf("incorrect bounds: %s", diff)
	}
	if !(Collection{}).Bounds().Empty() {
		t.Errorf("bounds of an empty collection should be empty")
	}
}

func TestMeasure(t *testing.T) {
	c := Collection{
		{{0, 0}, {1, 0}},
		{{2, 0}, {3, 0}},
		{{4, 0}, {5, 0}},
	}
	origin := Point{0, 0}

	want := Metrics{PenDown: 3, PenUp: 2 + 5, Paths: 3}
	if diff := cmp.Diff(want, Measure(c, origin)); diff != "" {
		t.Errorf("incorrect metrics: %s", diff)
	}
	if got := Travel(c, origin); got != 2 {
		t.Errorf("Travel = %g, want 2", got)
	}
	if diff := cmp.Diff(Metrics{}, Measure(nil, origin)); diff != "" {
		t.Errorf("empty collection should have zero metrics: %s", diff)
	}

	d := Drawing{Layers: []Layer{{Name: "a", Paths: c}, {Name: "b", Paths: c[:1]}}}
	want = Metrics{PenDown: 4, PenUp: 7 + 1, Paths: 4}
	if diff := cmp.Diff(want, MeasureDrawing(d, origin)); diff != "" {
		t.Errorf("incorrect drawing metrics: %s", diff)
	}
}
