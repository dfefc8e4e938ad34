package optimize

import (
	"math/rand"

	"plotpath/pkg/geometry"
)

// Reloop moves the seam of every closed path to a random vertex, so the dot
// left where the pen lands doesn't line up across similar shapes. Open paths
// are passed through.
func Reloop(c geometry.Collection, rng *rand.Rand) geometry.Collection {
	out := make(geometry.Collection, len(c))
	for i, path := range c {
		if !path.IsClosed() || len(path) < 3 {
			out[i] = path
			continue
		}
		ring := path[:len(path)-1]
		start := rng.Intn(len(ring))

		relooped := make(geometry.Path, 0, len(path))
		relooped = append(relooped, ring[start:]...)
		relooped = append(relooped, ring[:start]...)
		relooped = append(relooped, ring[start])
		out[i] = relooped
	}
	return out
}
