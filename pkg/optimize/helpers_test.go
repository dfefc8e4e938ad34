package optimize_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"plotpath/pkg/geometry"

	"github.com/google/go-cmp/cmp"
)

// floatOpt compares floats with a small absolute tolerance, like the
// geometry tests do.
var floatOpt = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
})

// randomSegments returns n short open paths scattered over a size x size area.
func randomSegments(rng *rand.Rand, n int, size float64) geometry.Collection {
	c := make(geometry.Collection, 0, n)
	for i := 0; i < n; i++ {
		start := geometry.Point{X: rng.Float64() * size, Y: rng.Float64() * size}
		points := 2 + rng.Intn(3)
		path := geometry.Path{start}
		for j := 1; j < points; j++ {
			last := path[len(path)-1]
			path = append(path, geometry.Point{
				X: last.X + rng.Float64()*2 - 1,
				Y: last.Y + rng.Float64()*2 - 1,
			})
		}
		c = append(c, path)
	}
	return c
}

// canonical renders a collection as a sorted list of strings, one per path,
// with each path written in whichever direction sorts first. Two collections
// with the same canonical form hold the same strokes.
func canonical(c geometry.Collection) []string {
	out := make([]string, 0, len(c))
	for _, path := range c {
		forward := fmt.Sprint(path)
		reverse := fmt.Sprint(path.Reverse())
		if reverse < forward {
			forward = reverse
		}
		out = append(out, forward)
	}
	sort.Strings(out)
	return out
}

// gridSegments returns n segments whose endpoints sit on a grid of the given
// step, so many endpoints coincide exactly.
func gridSegments(rng *rand.Rand, n int, step float64) geometry.Collection {
	c := make(geometry.Collection, 0, n)
	for i := 0; i < n; i++ {
		a := geometry.Point{X: float64(rng.Intn(7)) * step, Y: float64(rng.Intn(7)) * step}
		b := geometry.Point{X: float64(rng.Intn(7)) * step, Y: float64(rng.Intn(7)) * step}
		if a == b {
			b.X += step
		}
		c = append(c, geometry.Path{a, b})
	}
	return c
}
