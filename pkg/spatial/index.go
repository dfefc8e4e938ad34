// Package spatial provides a deletable nearest-neighbour index over points,
// backed by a quadtree.
//
// An Index is not safe for concurrent use. It is meant to be built for one
// merge or ordering pass, consumed, and thrown away.
package spatial

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"plotpath/pkg/geometry"

	"github.com/asim/quadtree"
)

var (
	// ErrMissingID is returned by Delete for an id that is not in the index.
	// Callers should treat it as broken bookkeeping, not as a recoverable
	// condition.
	ErrMissingID   = errors.New("spatial: id not in index")
	ErrDuplicateID = errors.New("spatial: id already in index")
	ErrOutOfBounds = errors.New("spatial: point outside index bounds")
	// ErrUnreachable means ids are still counted as live but no search finds
	// them. Like ErrMissingID it is a bookkeeping fault.
	ErrUnreachable = errors.New("spatial: live ids not reachable by search")
)

// bucket holds every id inserted at one exact coordinate, sorted ascending.
type bucket struct {
	ids []int
}

type Index struct {
	quadTree *quadtree.QuadTree
	bounds   geometry.Rectangle

	// points maps an exact coordinate to its quadtree point, whose data is a
	// *bucket. Coordinates are never looked up through the tree itself.
	points map[geometry.Point]*quadtree.Point
	coords map[int]geometry.Point
}

// New returns an empty index able to hold points inside bounds. A margin is
// added so that points on the edges are not dropped.
func New(bounds geometry.Rectangle) *Index {
	if bounds.Empty() {
		bounds = geometry.Rectangle{}
	}
	margin := math.Max(1, 0.01*math.Max(bounds.Width(), bounds.Height()))
	bounds.Min = bounds.Min.Minus(geometry.Point{X: margin, Y: margin})
	bounds.Max = bounds.Max.Add(geometry.Point{X: margin, Y: margin})
	bounds = dyadic(bounds)

	center := bounds.Center()
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(center.X, center.Y, nil),
		quadtree.NewPoint(bounds.Width()/2, bounds.Height()/2, nil))
	return &Index{
		quadTree: quadtree.New(aabb, 0, nil),
		bounds:   bounds,
		points:   map[geometry.Point]*quadtree.Point{},
		coords:   map[int]geometry.Point{},
	}
}

// dyadic returns a square covering r whose half-size is a power of two and
// whose center is a multiple of it. The quadtree splits a box at center ±
// half/2; on such a box every split is exact, so sibling boxes share their
// edges and no point can fall between them.
func dyadic(r geometry.Rectangle) geometry.Rectangle {
	_, exp := math.Frexp(math.Max(r.Width(), r.Height()))
	half := math.Ldexp(1, exp)
	c := r.Center()
	center := geometry.Point{X: math.Round(c.X/half) * half, Y: math.Round(c.Y/half) * half}
	return geometry.Rectangle{
		Min: geometry.Point{X: center.X - half, Y: center.Y - half},
		Max: geometry.Point{X: center.X + half, Y: center.Y + half},
	}
}

// Len returns the number of live ids.
func (ix *Index) Len() int {
	return len(ix.coords)
}

func (ix *Index) contains(p geometry.Point) bool {
	return p.X >= ix.bounds.Min.X && p.X <= ix.bounds.Max.X &&
		p.Y >= ix.bounds.Min.Y && p.Y <= ix.bounds.Max.Y
}

func (ix *Index) Insert(id int, p geometry.Point) error {
	if _, found := ix.coords[id]; found {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if !ix.contains(p) {
		return fmt.Errorf("%w: id %d at (%g, %g)", ErrOutOfBounds, id, p.X, p.Y)
	}

	if point, found := ix.points[p]; found {
		b := point.Data().(*bucket)
		i := sort.SearchInts(b.ids, id)
		b.ids = append(b.ids, 0)
		copy(b.ids[i+1:], b.ids[i:])
		b.ids[i] = id
	} else {
		point := quadtree.NewPoint(p.X, p.Y, &bucket{ids: []int{id}})
		if !ix.quadTree.Insert(point) {
			return fmt.Errorf("%w: id %d at (%g, %g)", ErrOutOfBounds, id, p.X, p.Y)
		}
		ix.points[p] = point
	}
	ix.coords[id] = p
	return nil
}

// Delete removes exactly one id. Deleting an id that is not present fails
// with ErrMissingID and leaves the index unchanged.
func (ix *Index) Delete(id int) error {
	p, found := ix.coords[id]
	if !found {
		return fmt.Errorf("%w: %d", ErrMissingID, id)
	}
	point := ix.points[p]
	b := point.Data().(*bucket)
	i := sort.SearchInts(b.ids, id)
	b.ids = append(b.ids[:i], b.ids[i+1:]...)
	if len(b.ids) == 0 {
		ix.quadTree.Remove(point)
		delete(ix.points, p)
	}
	delete(ix.coords, id)
	return nil
}

// Drained reports whether every inserted id has been deleted. Callers that
// drain the index through Nearest use it to tell an empty index from ids
// the tree can no longer reach.
func (ix *Index) Drained() error {
	if n := ix.Len(); n > 0 {
		return fmt.Errorf("%w: %d ids left", ErrUnreachable, n)
	}
	return nil
}

// Nearest returns the live id closest to p. Ties go to the lowest id. The
// second result is false only when the index is empty.
func (ix *Index) Nearest(p geometry.Point) (int, bool) {
	if ix.Len() == 0 {
		return 0, false
	}

	// Grow a square search window until the best hit lies inside the window's
	// inscribed circle, or the window covers the whole tree.
	reach := ix.reach(p)
	if math.IsNaN(reach) || math.IsInf(reach, 0) {
		return 0, false
	}
	radius := ix.startRadius()
	for {
		covers := radius >= reach
		id, dist, found := ix.search(p, radius)
		if found && (dist <= radius || covers) {
			return id, true
		}
		if covers {
			return 0, false
		}
		radius *= 2
	}
}

// NearestWithin is Nearest restricted to ids no farther than maxDist from p.
func (ix *Index) NearestWithin(p geometry.Point, maxDist float64) (int, bool) {
	if ix.Len() == 0 || maxDist < 0 || math.IsNaN(maxDist) {
		return 0, false
	}
	id, dist, found := ix.search(p, maxDist)
	if !found || dist > maxDist {
		return 0, false
	}
	return id, true
}

// search scans the square window of half-size radius around p.
func (ix *Index) search(p geometry.Point, radius float64) (id int, dist float64, found bool) {
	// Pad the window slightly so points exactly on its edge are not lost to
	// rounding in the tree's containment test.
	half := radius*(1+1e-9) + 1e-12
	window := quadtree.NewAABB(
		quadtree.NewPoint(p.X, p.Y, nil),
		quadtree.NewPoint(half, half, nil))

	dist = math.Inf(1)
	for _, point := range ix.quadTree.Search(window) {
		x, y := point.Coordinates()
		d := p.Distance(geometry.Point{X: x, Y: y})
		b := point.Data().(*bucket)
		if len(b.ids) == 0 {
			continue
		}
		if d < dist || (d == dist && b.ids[0] < id) {
			id, dist, found = b.ids[0], d, true
		}
	}
	return id, dist, found
}

// reach is the half-size of the smallest window around p that covers the
// whole index.
func (ix *Index) reach(p geometry.Point) float64 {
	return math.Max(
		math.Max(math.Abs(p.X-ix.bounds.Min.X), math.Abs(p.X-ix.bounds.Max.X)),
		math.Max(math.Abs(p.Y-ix.bounds.Min.Y), math.Abs(p.Y-ix.bounds.Max.Y)))
}

// startRadius guesses the spacing between live points, assuming they are
// spread evenly across the bounds.
func (ix *Index) startRadius() float64 {
	size := math.Max(ix.bounds.Width(), ix.bounds.Height())
	r := size / math.Sqrt(float64(ix.Len()))
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 1
	}
	return r
}
