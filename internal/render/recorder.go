package render

import (
	"encoding/json"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Op names a recorded draw call.
type Op string

const (
	OpClear     Op = "clear"
	OpPoint     Op = "point"
	OpLine      Op = "line"
	OpCurve     Op = "curve"
	OpShape     Op = "shape"
	OpInfluence Op = "influence"
	OpPreview   Op = "preview"
)

// Command is one recorded draw call. Only the fields relevant to Op are set.
type Command struct {
	Op     Op       `json:"op"`
	Points []r2.Vec `json:"points,omitempty"`
	Color  string   `json:"color,omitempty"`
	Width  float64  `json:"width,omitempty"`
	Size   float64  `json:"size,omitempty"`
	Radius float64  `json:"radius,omitempty"`
	State  string   `json:"state,omitempty"`
	Dashed bool     `json:"dashed,omitempty"`
	Fill   bool     `json:"fill,omitempty"`
}

// Frame is a complete recorded render pass.
type Frame struct {
	Revision uint64    `json:"revision"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Commands []Command `json:"commands"`
}

// Recorder captures draw calls instead of painting them. Clear starts a new
// frame.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Clear() {
	r.commands = append(r.commands[:0], Command{Op: OpClear})
}

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
}

func (r *Recorder) DrawPoint(p r2.Vec, style PointStyle) {
	r.record(Command{Op: OpPoint, Points: []r2.Vec{p}, Color: style.Color, Size: style.Size, State: style.State.String()})
}

func (r *Recorder) DrawLine(a, b r2.Vec, style LineStyle) {
	r.record(Command{Op: OpLine, Points: []r2.Vec{a, b}, Color: style.Color, Width: style.Width, Dashed: style.Dashed})
}

func (r *Recorder) DrawCurve(points []r2.Vec, style StrokeStyle) {
	r.record(Command{Op: OpCurve, Points: slices.Clone(points), Color: style.Color, Width: style.Width})
}

func (r *Recorder) DrawShape(points []r2.Vec, style ShapeStyle) {
	r.record(Command{Op: OpShape, Points: slices.Clone(points), Color: style.Color, Width: style.Width, Fill: style.Fill})
}

func (r *Recorder) DrawInfluenceRadius(center r2.Vec, radius float64) {
	r.record(Command{Op: OpInfluence, Points: []r2.Vec{center}, Radius: radius})
}

func (r *Recorder) DrawPreview(a, b r2.Vec, style StrokeStyle) {
	r.record(Command{Op: OpPreview, Points: []r2.Vec{a, b}, Color: style.Color, Width: style.Width})
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Commands returns the calls recorded since the last Clear.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Ops returns just the operation names, in call order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.commands))
	for i, c := range r.commands {
		ops[i] = c.Op
	}
	return ops
}

// Frame packages the recorded calls with a scene revision.
func (r *Recorder) Frame(revision uint64) Frame {
	return Frame{Revision: revision, Width: r.width, Height: r.height, Commands: r.Commands()}
}

// MarshalFrame encodes the recorded frame as JSON.
func (r *Recorder) MarshalFrame(revision uint64) ([]byte, error) {
	return json.Marshal(r.Frame(revision))
}

// Replay issues the recorded commands of frame against s, in order.
func Replay(frame Frame, s Surface) {
	s.Resize(frame.Width, frame.Height)
	for _, c := range frame.Commands {
		switch c.Op {
		case OpClear:
			s.Clear()
		case OpPoint:
			if len(c.Points) == 1 {
				s.DrawPoint(c.Points[0], PointStyle{Size: c.Size, Color: c.Color, State: parseState(c.State)})
			}
		case OpLine:
			if len(c.Points) == 2 {
				s.DrawLine(c.Points[0], c.Points[1], LineStyle{Color: c.Color, Width: c.Width, Dashed: c.Dashed})
			}
		case OpCurve:
			s.DrawCurve(c.Points, StrokeStyle{Color: c.Color, Width: c.Width})
		case OpShape:
			s.DrawShape(c.Points, ShapeStyle{Color: c.Color, Width: c.Width, Fill: c.Fill})
		case OpInfluence:
			if len(c.Points) == 1 {
				s.DrawInfluenceRadius(c.Points[0], c.Radius)
			}
		case OpPreview:
			if len(c.Points) == 2 {
				s.DrawPreview(c.Points[0], c.Points[1], StrokeStyle{Color: c.Color, Width: c.Width})
			}
		}
	}
}

func parseState(s string) PointState {
	switch s {
	case "hover":
		return StateHover
	case "active":
		return StateActive
	default:
		return StateNormal
	}
}
