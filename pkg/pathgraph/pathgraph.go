// Package pathgraph models a path collection as a graph of traversal nodes.
//
// Node 0 is the origin, where the pen starts and finishes. Path k of the
// collection contributes node 2k+1 (drawn forward) and node 2k+2 (drawn in
// reverse). The two nodes of a path form a disjoint pair: a valid solution
// visits exactly one of them.
package pathgraph

import (
	"fmt"

	"plotpath/pkg/geometry"
)

// Origin is the node id of the pen's start and end location.
const Origin = 0

// Node is a non-origin traversal node and the point where drawing it begins.
type Node struct {
	ID    int
	Start geometry.Point
}

type Graph struct {
	paths geometry.Collection
	// endpoints[i] holds the start and end point of node i. For the origin
	// both are the origin point.
	endpoints [][2]geometry.Point
}

// Build creates the graph for c. Every path must have at least one point;
// degenerate paths should be filtered out beforehand. The paths are borrowed,
// not copied, and must not be modified while the graph is in use.
func Build(c geometry.Collection, origin geometry.Point) *Graph {
	g := &Graph{
		paths:     c,
		endpoints: make([][2]geometry.Point, 0, 2*len(c)+1),
	}
	g.endpoints = append(g.endpoints, [2]geometry.Point{origin, origin})
	for _, path := range c {
		start, end := path.Start(), path.End()
		g.endpoints = append(g.endpoints,
			[2]geometry.Point{start, end},
			[2]geometry.Point{end, start})
	}
	return g
}

// Disjoint returns the node that draws the same path as node i in the other
// direction. It is an involution: Disjoint(Disjoint(i)) == i for every i > 0.
// The origin has no pair; Disjoint panics if i < 1.
func Disjoint(i int) int {
	if i < 1 {
		panic(fmt.Sprintf("pathgraph: node %d has no disjoint pair", i))
	}
	return ((i - 1) ^ 1) + 1
}

// PathIndex returns the index in the collection of the path drawn by node i,
// and whether node i draws it in reverse.
func PathIndex(i int) (index int, reverse bool) {
	return (i - 1) / 2, (i-1)%2 == 1
}

// Disjoint is the method form of the package-level Disjoint.
func (g *Graph) Disjoint(i int) int {
	return Disjoint(i)
}

// NodeCount returns the number of nodes, including the origin.
func (g *Graph) NodeCount() int {
	return len(g.endpoints)
}

// PathCount returns the number of physical paths.
func (g *Graph) PathCount() int {
	return len(g.paths)
}

// Path returns the path drawn by node i, reversed for reverse nodes. It panics
// for the origin, which carries no path.
func (g *Graph) Path(i int) geometry.Path {
	if i == Origin {
		panic("pathgraph: the origin node has no path")
	}
	index, reverse := PathIndex(i)
	if reverse {
		return g.paths[index].Reverse()
	}
	return g.paths[index]
}

func (g *Graph) Start(i int) geometry.Point {
	return g.endpoints[i][0]
}

func (g *Graph) End(i int) geometry.Point {
	return g.endpoints[i][1]
}

// Cost is the pen-up distance from the end of node i to the start of node j.
func (g *Graph) Cost(i, j int) float64 {
	return g.End(i).Distance(g.Start(j))
}

// Nodes lists every non-origin node with its start point, in id order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.endpoints)-1)
	for i := 1; i < len(g.endpoints); i++ {
		nodes = append(nodes, Node{ID: i, Start: g.Start(i)})
	}
	return nodes
}

// Bounds covers every node endpoint and the origin.
func (g *Graph) Bounds() geometry.Rectangle {
	bounds := geometry.EmptyRectangle()
	for _, ends := range g.endpoints {
		bounds = bounds.Extend(ends[0]).Extend(ends[1])
	}
	return bounds
}

// RouteCost returns the pen-up distance of visiting order from the origin and
// returning to it afterwards.
func (g *Graph) RouteCost(order []int) float64 {
	cost := 0.0
	last := Origin
	for _, node := range order {
		cost += g.Cost(last, node)
		last = node
	}
	return cost + g.Cost(last, Origin)
}

// Materialize converts a node order into the ordered collection it describes.
// The order is validated first; an invalid order returns an
// *InvalidSolutionError.
func (g *Graph) Materialize(order []int) (geometry.Collection, error) {
	if err := g.Validate(order); err != nil {
		return nil, err
	}
	out := make(geometry.Collection, 0, len(order))
	for _, node := range order {
		out = append(out, g.Path(node))
	}
	return out, nil
}
