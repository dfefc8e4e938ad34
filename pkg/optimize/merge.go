package optimize

import (
	"plotpath/pkg/geometry"
	"plotpath/pkg/pathgraph"
)

// Merge welds paths whose endpoints are within tolerance of each other into
// longer strokes.
//
// A seed path is taken (the one starting nearest the coordinate origin) and
// extended at its end, then at its start, by whichever remaining path has an
// endpoint within tolerance, until neither end finds a neighbour. The seed is
// emitted and the next one is taken. Paths that never find a neighbour are
// emitted unchanged.
//
// The welded point sequences are concatenated as is; no connecting points are
// added. With tolerance <= 0, or fewer than two paths, c is returned
// unchanged. Otherwise degenerate paths are dropped.
func Merge(c geometry.Collection, tolerance float64) (geometry.Collection, error) {
	if tolerance <= 0 || len(c) < 2 {
		return c, nil
	}

	paths := c.NonDegenerate()
	g := pathgraph.Build(paths, geometry.Point{})
	index, err := newNodeIndex(g)
	if err != nil {
		return nil, err
	}
	return merge(g, index, tolerance)
}

func merge(g *pathgraph.Graph, index nodeIndex, tolerance float64) (geometry.Collection, error) {
	out := make(geometry.Collection, 0, g.PathCount())
	for {
		node, ok := index.Nearest(g.Start(pathgraph.Origin))
		if !ok {
			if err := index.Drained(); err != nil {
				return nil, err
			}
			break
		}
		if err := deletePair(index, node); err != nil {
			return nil, err
		}
		seed := g.Path(node)

		for {
			if next, ok := index.NearestWithin(seed.End(), tolerance); ok {
				if err := deletePair(index, next); err != nil {
					return nil, err
				}
				seed = geometry.Weld(seed, g.Path(next))
				continue
			}
			if next, ok := index.NearestWithin(seed.Start(), tolerance); ok {
				if err := deletePair(index, next); err != nil {
					return nil, err
				}
				seed = geometry.Weld(seed.Reverse(), g.Path(next))
				continue
			}
			break
		}
		out = append(out, seed)
	}
	return out, nil
}
