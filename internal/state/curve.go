package state

import (
	"slices"

	"CurveBoard/internal/geometry"

	"gonum.org/v1/gonum/spatial/r2"
)

// Curve is a cardinal spline through an ordered list of control points.
//
// The sampled curve is derived state: it is recomputed from the control
// points and tension on every change and cannot be set directly. A curve is
// mutable while a tool is building it; the copy stored in a Scene is never
// modified again.
type Curve struct {
	ID    string
	Color string
	Width float64

	tension  float64
	controls []Point
	samples  []r2.Vec
}

// NewCurve returns an empty open curve.
func NewCurve(tension float64) *Curve {
	return &Curve{tension: tension}
}

// Append adds a control point at the end of the curve.
func (c *Curve) Append(p Point) {
	c.controls = append(c.controls, p)
	c.recompute()
}

// Insert splices a control point in at index i, clamped to [0, Len()].
func (c *Curve) Insert(i int, p Point) {
	i = min(max(i, 0), len(c.controls))
	c.controls = slices.Insert(c.controls, i, p)
	c.recompute()
}

// SetTension changes the tension and resamples the curve.
func (c *Curve) SetTension(tension float64) {
	c.tension = tension
	c.recompute()
}

// Reset drops every control point.
func (c *Curve) Reset() {
	c.controls = nil
	c.samples = nil
}

// Tension returns the curve tension.
func (c *Curve) Tension() float64 { return c.tension }

// Len returns the number of control points.
func (c *Curve) Len() int { return len(c.controls) }

// ControlPoints returns a copy of the control points in order.
func (c *Curve) ControlPoints() []Point { return slices.Clone(c.controls) }

// ControlIDs returns the IDs of the control points in order.
func (c *Curve) ControlIDs() []string {
	ids := make([]string, len(c.controls))
	for i, p := range c.controls {
		ids[i] = p.ID
	}
	return ids
}

// Samples returns a copy of the interpolated curve.
func (c *Curve) Samples() []r2.Vec { return slices.Clone(c.samples) }

// Snapshot returns an independent copy of the curve with the given stroke.
func (c *Curve) Snapshot(color string, width float64) Curve {
	return Curve{
		ID:       c.ID,
		Color:    color,
		Width:    width,
		tension:  c.tension,
		controls: slices.Clip(slices.Clone(c.controls)),
		samples:  slices.Clip(slices.Clone(c.samples)),
	}
}

func (c *Curve) recompute() {
	c.samples = geometry.CatmullRomSpline(positions(c.controls), c.tension, geometry.SegmentsPerSpan)
}
