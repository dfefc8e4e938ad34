package optimize

import "plotpath/pkg/geometry"

// DeleteShort drops every path shorter than minLength.
func DeleteShort(c geometry.Collection, minLength float64) geometry.Collection {
	out := make(geometry.Collection, 0, len(c))
	for _, path := range c {
		if path.Length() >= minLength {
			out = append(out, path)
		}
	}
	return out
}
