package controller

import (
	"CurveBoard/internal/render"
	"CurveBoard/internal/state"
	"CurveBoard/internal/tools"
)

// Render paints one frame: lines, curves with their control points, shapes,
// the active tool's preview and finally the free points, hovered point last.
func (c *Controller) Render(s render.Surface) {
	s.Clear()
	c.drawEntities(s)
	if p, ok := c.active.(tools.Previewer); ok {
		p.RenderPreview(s)
	}
	c.drawPoints(s, c.hovered)
}

// RenderScene paints only the stored entities, without tool preview or hover
// highlight. Exports use it.
func (c *Controller) RenderScene(s render.Surface) {
	s.Clear()
	c.drawEntities(s)
	c.drawPoints(s, "")
}

func (c *Controller) drawEntities(s render.Surface) {
	for _, l := range c.scene.Lines() {
		a, okA := c.scene.Point(l.Start)
		b, okB := c.scene.Point(l.End)
		if !okA || !okB {
			continue
		}
		s.DrawLine(a.Pos(), b.Pos(), render.LineStyle{Color: l.Color, Width: l.Width})
	}

	for _, cv := range c.scene.Curves() {
		s.DrawCurve(cv.Samples(), render.StrokeStyle{Color: cv.Color, Width: cv.Width})
		for _, p := range cv.ControlPoints() {
			s.DrawPoint(p.Pos(), render.PointStyle{
				Size:  c.settings.PointSize * curvePointScale,
				Color: cv.Color,
				State: render.StateNormal,
			})
		}
	}

	for _, sh := range c.scene.Shapes() {
		s.DrawShape(sh.Points, render.ShapeStyle{Color: sh.Color, Width: sh.Width, Fill: true})
	}
}

func (c *Controller) drawPoints(s render.Surface, hovered string) {
	var hover *state.Point
	for _, p := range c.scene.Points() {
		if p.ID == hovered {
			hover = &p
			continue
		}
		s.DrawPoint(p.Pos(), render.PointStyle{Size: c.settings.PointSize, Color: c.settings.StrokeColor})
	}
	if hover != nil {
		s.DrawPoint(hover.Pos(), render.PointStyle{
			Size:  c.settings.PointSize,
			Color: c.settings.StrokeColor,
			State: render.StateHover,
		})
	}
}
