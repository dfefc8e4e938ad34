package pathgraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidSolution means a node order does not draw every path exactly once.
var ErrInvalidSolution = errors.New("pathgraph: invalid solution")

// InvalidSolutionError describes how a node order differs from a valid one.
// Path indices refer to the collection the graph was built from.
type InvalidSolutionError struct {
	Expected  int   // number of paths in the graph
	Actual    int   // number of nodes in the order
	Missing   []int // paths never visited
	Duplicate []int // paths visited more than once
	Invalid   []int // node ids that are the origin or out of range
}

func (e *InvalidSolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: expected %d paths, got %d nodes", ErrInvalidSolution, e.Expected, e.Actual)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing paths %v", e.Missing)
	}
	if len(e.Duplicate) > 0 {
		fmt.Fprintf(&b, "; duplicate paths %v", e.Duplicate)
	}
	if len(e.Invalid) > 0 {
		fmt.Fprintf(&b, "; invalid nodes %v", e.Invalid)
	}
	return b.String()
}

func (e *InvalidSolutionError) Unwrap() error {
	return ErrInvalidSolution
}

// Validate checks that order visits one node of every disjoint pair exactly
// once and nothing else.
func (g *Graph) Validate(order []int) error {
	visits := make([]int, len(g.paths))
	var invalid []int
	for _, node := range order {
		if node <= Origin || node >= len(g.endpoints) {
			invalid = append(invalid, node)
			continue
		}
		index, _ := PathIndex(node)
		visits[index]++
	}

	var missing, duplicate []int
	for index, count := range visits {
		switch {
		case count == 0:
			missing = append(missing, index)
		case count > 1:
			duplicate = append(duplicate, index)
		}
	}

	if len(missing) == 0 && len(duplicate) == 0 && len(invalid) == 0 {
		return nil
	}
	sort.Ints(invalid)
	return &InvalidSolutionError{
		Expected:  len(g.paths),
		Actual:    len(order),
		Missing:   missing,
		Duplicate: duplicate,
		Invalid:   invalid,
	}
}
