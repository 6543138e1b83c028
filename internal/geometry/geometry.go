// Package geometry provides the pure geometric queries used by the drawing tools:
// distances, nearest-point search, curve interpolation and shape outlines.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Located is anything with a position on the canvas.
type Located interface {
	Pos() r2.Vec
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// FindNearestPoint returns the point closest to pos among those strictly closer
// than maxDistance. Ties go to the first point in slice order.
func FindNearestPoint[P Located](pos r2.Vec, points []P, maxDistance float64) (P, bool) {
	var nearest P
	found := false
	minDist := maxDistance

	for _, p := range points {
		if d := Distance(pos, p.Pos()); d < minDist {
			minDist = d
			nearest = p
			found = true
		}
	}
	return nearest, found
}

// CurveHit is the result of a closest-point-on-curve query.
type CurveHit struct {
	Point       r2.Vec
	SampleIndex int
	InsertIndex int
	Distance    float64
}

// FindClosestPointOnCurve scans the sampled curve for the sample nearest to pos
// and maps it to a control point insertion slot.
//
// The mapping assumes every span holds the same number of samples, so the
// returned InsertIndex can be off by one near span boundaries.
func FindClosestPointOnCurve(pos r2.Vec, curvePoints []r2.Vec, controlCount int) (CurveHit, bool) {
	if len(curvePoints) == 0 {
		return CurveHit{}, false
	}

	hit := CurveHit{SampleIndex: -1, Distance: math.Inf(1)}
	for i, p := range curvePoints {
		if d := Distance(pos, p); d < hit.Distance || hit.SampleIndex < 0 {
			hit.Distance = d
			hit.Point = p
			hit.SampleIndex = i
		}
	}

	if controlCount < 2 {
		return hit, true
	}

	perSpan := len(curvePoints) / (controlCount - 1)
	if perSpan < 1 {
		perSpan = 1
	}
	hit.InsertIndex = min(max(hit.SampleIndex/perSpan+1, 0), controlCount)
	return hit, true
}

// Bounds returns the axis-aligned bounding box of points. An empty input
// yields the zero box.
func Bounds(points []r2.Vec) r2.Box {
	if len(points) == 0 {
		return r2.Box{}
	}
	box := r2.Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}
	return box
}
