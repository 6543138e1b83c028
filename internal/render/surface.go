// Package render defines the drawing contract the scene is painted through,
// together with the adapters that implement it.
package render

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// PointState selects how a point marker is emphasised.
type PointState int

const (
	StateNormal PointState = iota
	StateHover
	StateActive
)

func (s PointState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StateActive:
		return "active"
	default:
		return "normal"
	}
}

// PointStyle describes a point marker. Size is the marker radius.
type PointStyle struct {
	Size  float64
	Color string
	State PointState
}

// LineStyle describes a straight segment.
type LineStyle struct {
	Color  string
	Width  float64
	Dashed bool
}

// StrokeStyle describes an open polyline or preview segment.
type StrokeStyle struct {
	Color string
	Width float64
}

// ShapeStyle describes a closed polygon.
type ShapeStyle struct {
	Color string
	Width float64
	Fill  bool
}

// Surface is implemented by every rendering backend. Colors are CSS style hex
// strings such as "#6366f1".
type Surface interface {
	Clear()
	Resize(width, height int)
	DrawPoint(p r2.Vec, style PointStyle)
	DrawLine(a, b r2.Vec, style LineStyle)
	DrawCurve(points []r2.Vec, style StrokeStyle)
	DrawShape(points []r2.Vec, style ShapeStyle)
	DrawInfluenceRadius(center r2.Vec, radius float64)
	DrawPreview(a, b r2.Vec, style StrokeStyle)
}
