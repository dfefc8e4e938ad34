package optimize

import (
	"fmt"

	"plotpath/pkg/geometry"
	"plotpath/pkg/pathgraph"
	"plotpath/pkg/spatial"
)

// Order sorts the paths of c to reduce pen-up travel, starting from origin.
// Each path may be drawn in either direction. Degenerate paths are dropped.
//
// The walk is greedy: from the pen's position, draw the nearest path start
// next. If that turns out worse than drawing the paths in their given order,
// the given order is kept, so the result is never worse than the input.
func Order(c geometry.Collection, origin geometry.Point) (geometry.Collection, error) {
	paths := c.NonDegenerate()
	g := pathgraph.Build(paths, origin)

	order, err := Greedy(g)
	if err != nil {
		return nil, err
	}

	identity := make([]int, len(paths))
	for k := range identity {
		identity[k] = 2*k + 1
	}
	if g.RouteCost(order) > g.RouteCost(identity) {
		order = identity
	}
	return g.Materialize(order)
}

// Greedy walks g from the origin, always moving to the nearest unvisited node
// start. When a node is visited its disjoint pair is removed with it, so each
// path is drawn once, in one direction.
func Greedy(g *pathgraph.Graph) ([]int, error) {
	index, err := newNodeIndex(g)
	if err != nil {
		return nil, err
	}
	return greedy(g, index)
}

func greedy(g *pathgraph.Graph, index nodeIndex) ([]int, error) {
	order := make([]int, 0, g.PathCount())
	location := g.Start(pathgraph.Origin)
	for {
		next, ok := index.Nearest(location)
		if !ok {
			if err := index.Drained(); err != nil {
				return nil, err
			}
			break
		}
		if err := deletePair(index, next); err != nil {
			return nil, err
		}
		order = append(order, next)
		location = g.End(next)
	}
	return order, nil
}

// nodeIndex is the part of *spatial.Index the engines walk.
type nodeIndex interface {
	Nearest(p geometry.Point) (int, bool)
	NearestWithin(p geometry.Point, maxDist float64) (int, bool)
	Delete(id int) error
	Drained() error
}

// newNodeIndex indexes the start point of every non-origin node of g.
func newNodeIndex(g *pathgraph.Graph) (*spatial.Index, error) {
	index := spatial.New(g.Bounds())
	for _, node := range g.Nodes() {
		if err := index.Insert(node.ID, node.Start); err != nil {
			return nil, fmt.Errorf("indexing node %d: %w", node.ID, err)
		}
	}
	return index, nil
}

// deletePair removes a node and its disjoint pair from the index. Both must
// be present; anything else means the bookkeeping is broken.
func deletePair(index nodeIndex, node int) error {
	if err := index.Delete(node); err != nil {
		return err
	}
	return index.Delete(pathgraph.Disjoint(node))
}
