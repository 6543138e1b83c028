package tools

import (
	"log"

	"CurveBoard/internal/config"
	"CurveBoard/internal/geometry"
	"CurveBoard/internal/render"
	"CurveBoard/internal/state"

	"gonum.org/v1/gonum/spatial/r2"
)

// CurveTool builds an interpolated curve one control point at a time.
// Pressing near the open curve and dragging splices a new control point into
// it instead of appending one.
type CurveTool struct {
	scene    *state.Scene
	settings *config.Settings

	curve   *state.Curve
	created []string

	inserting   bool
	insertFrom  geometry.CurveHit
	insertPoint r2.Vec
}

func NewCurveTool(scene *state.Scene, settings *config.Settings) *CurveTool {
	return &CurveTool{
		scene:    scene,
		settings: settings,
		curve:    state.NewCurve(settings.CurveTension),
	}
}

func (t *CurveTool) Kind() Kind { return KindCurve }

func (t *CurveTool) PointerDown(pos r2.Vec) {
	t.syncTension()

	if t.curve.Len() >= 2 {
		hit, ok := geometry.FindClosestPointOnCurve(pos, t.curve.Samples(), t.curve.Len())
		if ok && hit.Distance < t.settings.SnapDistance {
			t.inserting = true
			t.insertFrom = hit
			t.insertPoint = pos
			return
		}
	}

	t.curve.Append(t.resolve(pos))
}

func (t *CurveTool) PointerMove(pos r2.Vec) {
	if t.inserting {
		t.insertPoint = pos
	}
}

func (t *CurveTool) PointerUp(pos r2.Vec) {
	if !t.inserting {
		return
	}
	t.curve.Insert(t.insertFrom.InsertIndex, t.resolve(pos))
	t.inserting = false
	t.insertFrom = geometry.CurveHit{}
	t.insertPoint = r2.Vec{}
}

// resolve snaps to an existing point or creates one, remembering which
// points this curve introduced.
func (t *CurveTool) resolve(pos r2.Vec) state.Point {
	p, created := snapOrCreate(t.scene, t.settings, pos)
	if created {
		t.created = append(t.created, p.ID)
	}
	return p
}

// Open reports whether the curve has any control points.
func (t *CurveTool) Open() bool { return t.curve.Len() > 0 }

// Inserting reports whether a drag-to-insert is in progress.
func (t *CurveTool) Inserting() bool { return t.inserting }

// Curve returns the curve being built. Callers must not modify it.
func (t *CurveTool) Curve() *state.Curve { return t.curve }

// Finish stores the open curve if it has at least two control points and
// starts a new one. Shorter curves are discarded.
func (t *CurveTool) Finish() {
	if t.curve.Len() >= 2 {
		c, err := t.scene.AddCurve(t.curve.Snapshot(t.settings.StrokeColor, t.settings.StrokeWidth))
		if err != nil {
			log.Printf("[TOOL] Dropping curve: %v", err)
			t.rollback()
		} else {
			log.Printf("[TOOL] Curve %s stored with %d control points", c.ID, c.Len())
		}
	} else {
		if t.curve.Len() > 0 {
			log.Printf("[TOOL] Discarding curve with %d control point", t.curve.Len())
		}
		t.rollback()
	}
	t.clear()
}

// Reset discards the open curve without storing it.
func (t *CurveTool) Reset() {
	t.rollback()
	t.clear()
}

// SettingsChanged resamples the open curve when the tension changes.
func (t *CurveTool) SettingsChanged() {
	t.syncTension()
}

func (t *CurveTool) syncTension() {
	if t.curve.Tension() != t.settings.CurveTension {
		t.curve.SetTension(t.settings.CurveTension)
	}
}

func (t *CurveTool) rollback() {
	for _, id := range t.created {
		t.scene.RemoveUnreferencedPoint(id)
	}
}

func (t *CurveTool) clear() {
	t.curve = state.NewCurve(t.settings.CurveTension)
	t.created = nil
	t.inserting = false
	t.insertFrom = geometry.CurveHit{}
	t.insertPoint = r2.Vec{}
}

func (t *CurveTool) RenderPreview(s render.Surface) {
	controls := t.curve.ControlPoints()
	if t.settings.ShowInfluenceRadius {
		for _, p := range controls {
			s.DrawInfluenceRadius(p.Pos(), t.settings.CurveRadius)
		}
	}

	if samples := t.curve.Samples(); len(samples) >= 2 {
		s.DrawCurve(samples, strokeStyle(t.settings))
	}

	if t.inserting {
		s.DrawLine(t.insertFrom.Point, t.insertPoint, render.LineStyle{
			Color:  t.settings.StrokeColor,
			Width:  t.settings.StrokeWidth,
			Dashed: true,
		})
		s.DrawPoint(t.insertPoint, render.PointStyle{
			Size:  t.settings.PointSize,
			Color: t.settings.StrokeColor,
			State: render.StateActive,
		})
	}
}
