package geometry

import "fmt"

// Metrics summarizes the cost of plotting a drawing.
type Metrics struct {
	PenDown float64
	PenUp   float64
	Paths   int
}

func (m Metrics) String() string {
	return fmt.Sprintf("%d paths, pen down: %.2f, pen up: %.2f", m.Paths, m.PenDown, m.PenUp)
}

func (m Metrics) Add(other Metrics) Metrics {
	return Metrics{
		PenDown: m.PenDown + other.PenDown,
		PenUp:   m.PenUp + other.PenUp,
		Paths:   m.Paths + other.Paths,
	}
}

// Measure computes the metrics of one collection drawn in slice order,
// starting and finishing at origin.
func Measure(c Collection, origin Point) Metrics {
	travel, last := walk(c, origin)
	return Metrics{
		PenDown: c.Length(),
		PenUp:   travel + last.Distance(origin),
		Paths:   len(c),
	}
}

// MeasureDrawing sums the metrics of every layer. The pen returns to origin
// after each layer.
func MeasureDrawing(d Drawing, origin Point) Metrics {
	var m Metrics
	for _, layer := range d.Layers {
		m = m.Add(Measure(layer.Paths, origin))
	}
	return m
}

// Travel returns the pen-up distance from origin through every path in
// order, not counting the trip back to origin.
func Travel(c Collection, origin Point) float64 {
	distance, _ := walk(c, origin)
	return distance
}

func walk(c Collection, origin Point) (distance float64, position Point) {
	position = origin
	for _, path := range c {
		if len(path) == 0 {
			continue
		}
		distance += position.Distance(path.Start())
		position = path.End()
	}
	return distance, position
}
