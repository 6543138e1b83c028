// Package tools implements the pointer-driven drawing tools. Each tool is a
// small state machine that reads the scene, snaps to existing points and
// appends finished entities.
package tools

import (
	"slices"

	"CurveBoard/internal/config"
	"CurveBoard/internal/geometry"
	"CurveBoard/internal/render"
	"CurveBoard/internal/state"

	"gonum.org/v1/gonum/spatial/r2"
)

// Kind identifies a tool.
type Kind string

const (
	KindLine      Kind = "straightLine"
	KindCurve     Kind = "interpolatedCurve"
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
	KindTriangle  Kind = "triangle"
	KindStar      Kind = "star"
)

// Kinds lists every tool in toolbar order.
var Kinds = []Kind{KindLine, KindCurve, KindCircle, KindRectangle, KindTriangle, KindStar}

// Tool receives the pointer events of one gesture, strictly in
// down, move..., up order.
type Tool interface {
	Kind() Kind
	PointerDown(pos r2.Vec)
	PointerMove(pos r2.Vec)
	PointerUp(pos r2.Vec)
}

// Previewer is implemented by tools that draw transient state.
type Previewer interface {
	RenderPreview(s render.Surface)
}

// Resetter is implemented by tools with transient state to discard.
type Resetter interface {
	Reset()
}

// Finisher is implemented by tools that build an entity across several
// gestures and must be told when it is complete.
type Finisher interface {
	Open() bool
	Finish()
}

// SettingsObserver is notified after the settings change.
type SettingsObserver interface {
	SettingsChanged()
}

// NewAll builds one instance of every tool, in Kinds order.
func NewAll(scene *state.Scene, settings *config.Settings) []Tool {
	return []Tool{
		NewLineTool(scene, settings),
		NewCurveTool(scene, settings),
		NewCircleTool(scene, settings),
		NewRectangleTool(scene, settings),
		NewTriangleTool(scene, settings),
		NewStarTool(scene, settings),
	}
}

// snapOrCreate returns the existing point within snap distance of pos, or a
// new point appended to the scene. Points whose IDs are in exclude are never
// snapped to.
func snapOrCreate(scene *state.Scene, settings *config.Settings, pos r2.Vec, exclude ...string) (state.Point, bool) {
	if p, ok := snapTarget(scene, settings, pos, exclude...); ok {
		return p, false
	}
	return scene.AddPoint(pos), true
}

func snapTarget(scene *state.Scene, settings *config.Settings, pos r2.Vec, exclude ...string) (state.Point, bool) {
	candidates := scene.Points()
	if len(exclude) > 0 {
		candidates = slices.DeleteFunc(candidates, func(p state.Point) bool {
			return slices.Contains(exclude, p.ID)
		})
	}
	return geometry.FindNearestPoint(pos, candidates, settings.SnapDistance)
}

func strokeStyle(settings *config.Settings) render.StrokeStyle {
	return render.StrokeStyle{Color: settings.StrokeColor, Width: settings.StrokeWidth}
}
