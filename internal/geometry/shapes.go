package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultCircleSegments is the default polygon resolution of a circle outline.
	DefaultCircleSegments = 64
	// DefaultStarTips is the default number of star tips.
	DefaultStarTips = 5
)

// CirclePoints samples segments+1 points uniformly around the circle. The
// first and last sample coincide.
func CirclePoints(center r2.Vec, radius float64, segments int) []r2.Vec {
	if segments < 1 {
		segments = DefaultCircleSegments
	}
	points := make([]r2.Vec, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		points = append(points, r2.Vec{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		})
	}
	return append(points, points[0])
}

// RectanglePoints returns the closed axis-aligned rectangle spanned by two
// opposite corners.
func RectanglePoints(start, end r2.Vec) []r2.Vec {
	return []r2.Vec{
		{X: start.X, Y: start.Y},
		{X: end.X, Y: start.Y},
		{X: end.X, Y: end.Y},
		{X: start.X, Y: end.Y},
		{X: start.X, Y: start.Y},
	}
}

// TrianglePoints returns the closed triangle through three vertices.
func TrianglePoints(p1, p2, p3 r2.Vec) []r2.Vec {
	return []r2.Vec{p1, p2, p3, p1}
}

// StarPoints returns a closed star with 2*points vertices alternating between
// the outer and inner radius. The first tip points up.
func StarPoints(center r2.Vec, outerRadius, innerRadius float64, points int) []r2.Vec {
	if points < 1 {
		points = DefaultStarTips
	}
	step := math.Pi / float64(points)
	result := make([]r2.Vec, 0, 2*points+1)
	for i := 0; i < 2*points; i++ {
		angle := float64(i)*step - math.Pi/2
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		result = append(result, r2.Vec{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		})
	}
	return append(result, result[0])
}
