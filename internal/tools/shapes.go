package tools

import (
	"CurveBoard/internal/config"
	"CurveBoard/internal/geometry"
	"CurveBoard/internal/render"
	"CurveBoard/internal/state"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// MinShapeRadius is the smallest circle or star radius that is kept.
	MinShapeRadius = 5
	// StarInnerRatio is the inner radius of a star relative to its outer radius.
	StarInnerRatio = 0.4
)

func shapeStyle(settings *config.Settings) render.ShapeStyle {
	return render.ShapeStyle{Color: settings.StrokeColor, Width: settings.StrokeWidth, Fill: true}
}

// radialDrag is the shared center-and-radius gesture of circles and stars.
type radialDrag struct {
	drawing bool
	center  r2.Vec
	radius  float64
}

func (d *radialDrag) down(pos r2.Vec) {
	d.center = pos
	d.radius = 0
	d.drawing = true
}

func (d *radialDrag) move(pos r2.Vec) {
	if d.drawing {
		d.radius = geometry.Distance(d.center, pos)
	}
}

// up ends the drag and reports whether the final radius is large enough to
// keep.
func (d *radialDrag) up(pos r2.Vec) (center r2.Vec, radius float64, keep bool) {
	if !d.drawing {
		return r2.Vec{}, 0, false
	}
	center, radius = d.center, geometry.Distance(d.center, pos)
	d.Reset()
	return center, radius, radius > MinShapeRadius
}

func (d *radialDrag) Reset() {
	*d = radialDrag{}
}

func (d *radialDrag) visible() bool { return d.drawing && d.radius != 0 }

// CircleTool stamps circles by dragging out a radius from the center.
type CircleTool struct {
	radialDrag
	scene    *state.Scene
	settings *config.Settings
}

func NewCircleTool(scene *state.Scene, settings *config.Settings) *CircleTool {
	return &CircleTool{scene: scene, settings: settings}
}

func (t *CircleTool) Kind() Kind             { return KindCircle }
func (t *CircleTool) PointerDown(pos r2.Vec) { t.down(pos) }
func (t *CircleTool) PointerMove(pos r2.Vec) { t.move(pos) }

func (t *CircleTool) PointerUp(pos r2.Vec) {
	center, radius, keep := t.up(pos)
	if !keep {
		return
	}
	t.scene.AddShape(state.Shape{
		Kind:   state.ShapeCircle,
		Points: geometry.CirclePoints(center, radius, geometry.DefaultCircleSegments),
		Color:  t.settings.StrokeColor,
		Width:  t.settings.StrokeWidth,
		Center: center,
		Radius: radius,
	})
}

func (t *CircleTool) RenderPreview(s render.Surface) {
	if !t.visible() {
		return
	}
	s.DrawShape(geometry.CirclePoints(t.center, t.radius, geometry.DefaultCircleSegments), shapeStyle(t.settings))
}

// StarTool stamps five pointed stars by dragging out the outer radius.
type StarTool struct {
	radialDrag
	scene    *state.Scene
	settings *config.Settings
}

func NewStarTool(scene *state.Scene, settings *config.Settings) *StarTool {
	return &StarTool{scene: scene, settings: settings}
}

func (t *StarTool) Kind() Kind             { return KindStar }
func (t *StarTool) PointerDown(pos r2.Vec) { t.down(pos) }
func (t *StarTool) PointerMove(pos r2.Vec) { t.move(pos) }

func (t *StarTool) PointerUp(pos r2.Vec) {
	center, outer, keep := t.up(pos)
	if !keep {
		return
	}
	inner := outer * StarInnerRatio
	t.scene.AddShape(state.Shape{
		Kind:        state.ShapeStar,
		Points:      geometry.StarPoints(center, outer, inner, geometry.DefaultStarTips),
		Color:       t.settings.StrokeColor,
		Width:       t.settings.StrokeWidth,
		Center:      center,
		Radius:      outer,
		InnerRadius: inner,
	})
}

func (t *StarTool) RenderPreview(s render.Surface) {
	if !t.visible() {
		return
	}
	points := geometry.StarPoints(t.center, t.radius, t.radius*StarInnerRatio, geometry.DefaultStarTips)
	s.DrawShape(points, shapeStyle(t.settings))
}

// RectangleTool stamps axis-aligned rectangles between two dragged corners.
// Zero-area rectangles are kept.
type RectangleTool struct {
	scene    *state.Scene
	settings *config.Settings

	drawing    bool
	start, end r2.Vec
}

func NewRectangleTool(scene *state.Scene, settings *config.Settings) *RectangleTool {
	return &RectangleTool{scene: scene, settings: settings}
}

func (t *RectangleTool) Kind() Kind { return KindRectangle }

func (t *RectangleTool) PointerDown(pos r2.Vec) {
	t.start, t.end = pos, pos
	t.drawing = true
}

func (t *RectangleTool) PointerMove(pos r2.Vec) {
	if t.drawing {
		t.end = pos
	}
}

func (t *RectangleTool) PointerUp(pos r2.Vec) {
	if !t.drawing {
		return
	}
	start := t.start
	t.Reset()
	t.scene.AddShape(state.Shape{
		Kind:   state.ShapeRectangle,
		Points: geometry.RectanglePoints(start, pos),
		Color:  t.settings.StrokeColor,
		Width:  t.settings.StrokeWidth,
		Center: r2.Scale(0.5, r2.Add(start, pos)),
	})
}

func (t *RectangleTool) Reset() {
	t.drawing = false
	t.start, t.end = r2.Vec{}, r2.Vec{}
}

func (t *RectangleTool) RenderPreview(s render.Surface) {
	if !t.drawing {
		return
	}
	s.DrawShape(geometry.RectanglePoints(t.start, t.end), shapeStyle(t.settings))
}

// TriangleTool places a triangle one click per vertex. The third click
// stores it.
type TriangleTool struct {
	scene    *state.Scene
	settings *config.Settings

	vertices  []r2.Vec
	cursor    r2.Vec
	hasCursor bool
}

func NewTriangleTool(scene *state.Scene, settings *config.Settings) *TriangleTool {
	return &TriangleTool{scene: scene, settings: settings}
}

func (t *TriangleTool) Kind() Kind { return KindTriangle }

func (t *TriangleTool) PointerDown(pos r2.Vec) {
	t.vertices = append(t.vertices, pos)
	if len(t.vertices) < 3 {
		return
	}
	v := t.vertices
	t.scene.AddShape(state.Shape{
		Kind:   state.ShapeTriangle,
		Points: geometry.TrianglePoints(v[0], v[1], v[2]),
		Color:  t.settings.StrokeColor,
		Width:  t.settings.StrokeWidth,
		Center: r2.Scale(1.0/3, r2.Add(r2.Add(v[0], v[1]), v[2])),
	})
	t.Reset()
}

func (t *TriangleTool) PointerMove(pos r2.Vec) {
	t.cursor = pos
	t.hasCursor = true
}

// PointerUp does nothing: triangles are built from clicks, not drags.
func (t *TriangleTool) PointerUp(r2.Vec) {}

// Vertices returns the number of vertices placed so far.
func (t *TriangleTool) Vertices() int { return len(t.vertices) }

func (t *TriangleTool) Reset() {
	t.vertices = nil
	t.cursor = r2.Vec{}
	t.hasCursor = false
}

func (t *TriangleTool) RenderPreview(s render.Surface) {
	for _, v := range t.vertices {
		s.DrawPoint(v, render.PointStyle{
			Size:  t.settings.PointSize,
			Color: t.settings.StrokeColor,
			State: render.StateActive,
		})
	}
	if len(t.vertices) == 0 || !t.hasCursor {
		return
	}
	switch len(t.vertices) {
	case 1:
		s.DrawLine(t.vertices[0], t.cursor, render.LineStyle{
			Color:  t.settings.StrokeColor,
			Width:  t.settings.StrokeWidth,
			Dashed: true,
		})
	case 2:
		s.DrawShape(geometry.TrianglePoints(t.vertices[0], t.vertices[1], t.cursor), shapeStyle(t.settings))
	}
}
