package optimize_test

import (
	"math/rand"
	"sort"
	"testing"

	"plotpath/pkg/geometry"
	"plotpath/pkg/optimize"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestReloop(t *testing.T) {
	square := geometry.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	open := geometry.Path{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	input := geometry.Collection{square, open}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		got := optimize.Reloop(input, rng)
		if !assert.Len(t, got, 2) {
			return
		}
		assert.Equal(t, open, got[1], "open paths must not change")

		loop := got[0]
		assert.True(t, loop.IsClosed())
		assert.Len(t, loop, len(square))
		assert.InDelta(t, square.Length(), loop.Length(), 1e-9)
		if diff := cmp.Diff(vertices(square), vertices(loop)); diff != "" {
			t.Errorf("reloop changed the vertices: %s", diff)
		}
	}
}

func TestReloopDeterministic(t *testing.T) {
	input := geometry.Collection{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 0}},
		{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 5}},
	}
	a := optimize.Reloop(input, rand.New(rand.NewSource(42)))
	b := optimize.Reloop(input, rand.New(rand.NewSource(42)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different seams: %s", diff)
	}
}

func TestReloopLeavesShortRingsAlone(t *testing.T) {
	input := geometry.Collection{
		{{X: 1, Y: 1}, {X: 1, Y: 1}},
		{{X: 1, Y: 1}},
	}
	got := optimize.Reloop(input, rand.New(rand.NewSource(1)))
	if diff := cmp.Diff(input, got); diff != "" {
		t.Errorf("unexpected change: %s", diff)
	}
}

// vertices returns the distinct corners of a closed path in a fixed order.
func vertices(path geometry.Path) []geometry.Point {
	ring := append([]geometry.Point(nil), path[:len(path)-1]...)
	sort.Slice(ring, func(i, j int) bool {
		if ring[i].X != ring[j].X {
			return ring[i].X < ring[j].X
		}
		return ring[i].Y < ring[j].Y
	})
	return ring
}

func TestDeleteShort(t *testing.T) {
	input := geometry.Collection{
		{{X: 0, Y: 0}, {X: 0.125, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 0, Y: 0}, {X: 0.25, Y: 0}},
		{{X: 2, Y: 2}},
	}
	got := optimize.DeleteShort(input, 0.25)
	want := geometry.Collection{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 0, Y: 0}, {X: 0.25, Y: 0}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect paths kept: %s", diff)
	}

	if diff := cmp.Diff(input, optimize.DeleteShort(input, 0)); diff != "" {
		t.Errorf("zero minimum should keep everything: %s", diff)
	}
}
