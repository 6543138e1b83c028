package tools

import (
	"log"

	"CurveBoard/internal/config"
	"CurveBoard/internal/render"
	"CurveBoard/internal/state"

	"gonum.org/v1/gonum/spatial/r2"
)

// LineTool draws straight lines between snapped or new points.
type LineTool struct {
	scene    *state.Scene
	settings *config.Settings

	drawing      bool
	start        state.Point
	startCreated bool
	end          r2.Vec
}

func NewLineTool(scene *state.Scene, settings *config.Settings) *LineTool {
	return &LineTool{scene: scene, settings: settings}
}

func (t *LineTool) Kind() Kind { return KindLine }

func (t *LineTool) PointerDown(pos r2.Vec) {
	if t.drawing {
		// A down without the matching up: abandon the previous gesture.
		t.Reset()
	}
	t.start, t.startCreated = snapOrCreate(t.scene, t.settings, pos)
	t.end = pos
	t.drawing = true
}

func (t *LineTool) PointerMove(pos r2.Vec) {
	if !t.drawing {
		return
	}
	t.end = pos
	if p, ok := snapTarget(t.scene, t.settings, pos, t.start.ID); ok {
		t.end = p.Pos()
	}
}

func (t *LineTool) PointerUp(pos r2.Vec) {
	if !t.drawing {
		return
	}
	end, _ := snapOrCreate(t.scene, t.settings, pos, t.start.ID)
	if _, err := t.scene.AddLine(t.start.ID, end.ID, t.settings.StrokeColor, t.settings.StrokeWidth); err != nil {
		log.Printf("[TOOL] Dropping line: %v", err)
	}
	t.drawing = false
	t.startCreated = false
	t.start = state.Point{}
}

// Reset abandons a line in progress, removing its start point if the gesture
// created it and nothing else uses it.
func (t *LineTool) Reset() {
	if t.drawing && t.startCreated {
		t.scene.RemoveUnreferencedPoint(t.start.ID)
	}
	t.drawing = false
	t.startCreated = false
	t.start = state.Point{}
	t.end = r2.Vec{}
}

// Drawing reports whether a line is being dragged.
func (t *LineTool) Drawing() bool { return t.drawing }

func (t *LineTool) RenderPreview(s render.Surface) {
	if !t.drawing {
		return
	}
	s.DrawPreview(t.start.Pos(), t.end, strokeStyle(t.settings))
}
