package state

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a shared vertex. Lines and curves refer to it by ID; its
// coordinates never change once created.
type Point struct {
	ID string
	X  float64
	Y  float64
}

// Pos returns the point's coordinates.
func (p Point) Pos() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Line is a straight segment between two scene points.
type Line struct {
	ID    string
	Start string
	End   string
	Color string
	Width float64
}

// ShapeKind names a parametric shape.
type ShapeKind string

const (
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
	ShapeTriangle  ShapeKind = "triangle"
	ShapeStar      ShapeKind = "star"
)

// Shape is a stamped, closed polygon. Center and Radius are set for circles
// and stars; InnerRadius only for stars.
type Shape struct {
	ID          string
	Kind        ShapeKind
	Points      []r2.Vec
	Color       string
	Width       float64
	Center      r2.Vec
	Radius      float64
	InnerRadius float64
}

// Stats summarises the scene collections.
type Stats struct {
	Points int
	Lines  int
	Curves int
	Shapes int
}

func positions(points []Point) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, p := range points {
		out[i] = p.Pos()
	}
	return out
}
