package geometry

import "gonum.org/v1/gonum/spatial/r2"

// SegmentsPerSpan is the sample count between two consecutive control points.
const SegmentsPerSpan = 20

// CatmullRomSpline interpolates a cardinal spline through controlPoints.
//
// Sequences of fewer than three points are returned unchanged; the renderer
// draws two points as a straight segment. Tangents at the open ends are
// estimated by clamping the neighbouring indices to the sequence bounds.
// The result always ends with the last control point.
func CatmullRomSpline(controlPoints []r2.Vec, tension float64, segmentsPerSpan int) []r2.Vec {
	n := len(controlPoints)
	if n < 3 {
		return controlPoints
	}
	if segmentsPerSpan < 1 {
		segmentsPerSpan = 1
	}

	result := make([]r2.Vec, 0, (n-1)*segmentsPerSpan+1)
	for i := 0; i < n-1; i++ {
		p0 := controlPoints[max(0, i-1)]
		p1 := controlPoints[i]
		p2 := controlPoints[i+1]
		p3 := controlPoints[min(n-1, i+2)]

		for s := 0; s < segmentsPerSpan; s++ {
			t := float64(s) / float64(segmentsPerSpan)
			q1, q2, q3, q4 := cardinalWeights(t, tension)
			result = append(result, r2.Vec{
				X: p0.X*q1 + p1.X*q2 + p2.X*q3 + p3.X*q4,
				Y: p0.Y*q1 + p1.Y*q2 + p2.Y*q3 + p3.Y*q4,
			})
		}
	}
	return append(result, controlPoints[n-1])
}

// cardinalWeights returns the four blending weights at parameter t.
func cardinalWeights(t, tension float64) (q1, q2, q3, q4 float64) {
	t2 := t * t
	t3 := t2 * t
	q1 = -tension*t3 + 2*tension*t2 - tension*t
	q2 = (2-tension)*t3 + (tension-3)*t2 + 1
	q3 = (tension-2)*t3 + (3-2*tension)*t2 + tension*t
	q4 = tension*t3 - tension*t2
	return q1, q2, q3, q4
}
