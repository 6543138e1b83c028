// Package controller routes pointer events to the active drawing tool and
// paints each frame in a fixed order.
package controller

import (
	"errors"
	"fmt"
	"log"

	"CurveBoard/internal/config"
	"CurveBoard/internal/geometry"
	"CurveBoard/internal/state"
	"CurveBoard/internal/tools"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownTool is returned when switching to a tool that does not exist.
var ErrUnknownTool = errors.New("unknown tool")

// curvePointScale shrinks curve control point markers relative to free points.
const curvePointScale = 0.8

// Controller owns the active tool, the hover state and the settings. It is
// driven from a single event loop and is not safe for concurrent use.
type Controller struct {
	scene    *state.Scene
	settings *config.Settings

	tools   map[tools.Kind]tools.Tool
	active  tools.Tool
	pointer r2.Vec
	hovered string

	// OnChange, when set, is called after any event that may alter the frame.
	OnChange func()
}

// New creates a controller over scene with the straight-line tool active.
func New(scene *state.Scene, settings config.Settings) *Controller {
	c := &Controller{
		scene:    scene,
		settings: &settings,
		tools:    make(map[tools.Kind]tools.Tool),
	}
	for _, t := range tools.NewAll(scene, c.settings) {
		c.tools[t.Kind()] = t
	}
	c.active = c.tools[tools.KindLine]
	return c
}

// Scene returns the scene being edited.
func (c *Controller) Scene() *state.Scene { return c.scene }

// Settings returns a copy of the current settings.
func (c *Controller) Settings() config.Settings { return *c.settings }

// ActiveTool returns the kind of the active tool.
func (c *Controller) ActiveTool() tools.Kind { return c.active.Kind() }

// Tool returns the tool instance of the given kind.
func (c *Controller) Tool(kind tools.Kind) (tools.Tool, bool) {
	t, ok := c.tools[kind]
	return t, ok
}

// Pointer returns the last known pointer position.
func (c *Controller) Pointer() r2.Vec { return c.pointer }

// Hovered returns the point under the pointer, if any.
func (c *Controller) Hovered() (state.Point, bool) {
	if c.hovered == "" {
		return state.Point{}, false
	}
	return c.scene.Point(c.hovered)
}

func (c *Controller) PointerDown(pos r2.Vec) {
	c.pointer = pos
	c.active.PointerDown(pos)
	c.changed()
}

func (c *Controller) PointerMove(pos r2.Vec) {
	c.pointer = pos
	c.hovered = ""
	if p, ok := geometry.FindNearestPoint(pos, c.scene.Points(), c.settings.SnapDistance); ok {
		c.hovered = p.ID
	}
	c.active.PointerMove(pos)
	c.changed()
}

func (c *Controller) PointerUp(pos r2.Vec) {
	c.pointer = pos
	c.active.PointerUp(pos)
	c.changed()
}

// SwitchTool activates another tool. An open curve is finished first and the
// outgoing tool always loses its transient state.
func (c *Controller) SwitchTool(kind tools.Kind) error {
	next, ok := c.tools[kind]
	if !ok {
		return fmt.Errorf("switch to %q: %w", kind, ErrUnknownTool)
	}
	if f, ok := c.active.(tools.Finisher); ok && c.active.Kind() == tools.KindCurve && f.Open() {
		f.Finish()
	}
	if r, ok := c.active.(tools.Resetter); ok {
		r.Reset()
	}
	log.Printf("[CONTROLLER] Tool %s -> %s", c.active.Kind(), kind)
	c.active = next
	c.changed()
	return nil
}

// FinishCurve completes the open curve without switching tools. It reports
// whether there was anything to finish.
func (c *Controller) FinishCurve() bool {
	f, ok := c.active.(tools.Finisher)
	if !ok || !f.Open() {
		return false
	}
	f.Finish()
	c.changed()
	return true
}

// ClearScene drops the active tool's transient state and empties the scene.
func (c *Controller) ClearScene() {
	if r, ok := c.active.(tools.Resetter); ok {
		r.Reset()
	}
	c.scene.Clear()
	c.hovered = ""
	c.changed()
}

// UpdateSettings applies fn to a copy of the settings and keeps the result if
// it validates. The active tool is told about the change.
func (c *Controller) UpdateSettings(fn func(*config.Settings)) error {
	next := *c.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	*c.settings = next
	if o, ok := c.active.(tools.SettingsObserver); ok {
		o.SettingsChanged()
	}
	c.changed()
	return nil
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
