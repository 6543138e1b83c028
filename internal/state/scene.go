package state

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownPoint is returned when an entity refers to a point that is not in
// the scene.
var ErrUnknownPoint = errors.New("point not in scene")

// Scene holds every persisted entity. Points live in an arena keyed by ID and
// keep their insertion order; lines and curves refer to them by ID.
type Scene struct {
	mu     sync.RWMutex
	points map[string]Point
	order  []string
	lines  []Line
	curves []Curve
	shapes []Shape
	clock  Clock
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		points: make(map[string]Point),
	}
}

// AddPoint creates a new point at pos and returns it.
func (s *Scene) AddPoint(pos r2.Vec) Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Point{ID: newID(PrefixPoint), X: pos.X, Y: pos.Y}
	s.points[p.ID] = p
	s.order = append(s.order, p.ID)
	s.clock.Tick()
	return p
}

// Point looks up a point by ID.
func (s *Scene) Point(id string) (Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.points[id]
	return p, ok
}

// Points returns every point in insertion order.
func (s *Scene) Points() []Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := make([]Point, 0, len(s.order))
	for _, id := range s.order {
		points = append(points, s.points[id])
	}
	return points
}

// AddLine connects two existing points.
func (s *Scene) AddLine(start, end, color string, width float64) (Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range []string{start, end} {
		if _, ok := s.points[id]; !ok {
			return Line{}, fmt.Errorf("add line endpoint %s: %w", id, ErrUnknownPoint)
		}
	}

	l := Line{ID: newID(PrefixLine), Start: start, End: end, Color: color, Width: width}
	s.lines = append(s.lines, l)
	s.clock.Tick()
	return l, nil
}

// AddCurve stores a finished curve. The curve must have at least two control
// points, all of which are already in the scene.
func (s *Scene) AddCurve(c Curve) (Curve, error) {
	if c.Len() < 2 {
		return Curve{}, fmt.Errorf("add curve: %d control points, need at least 2", c.Len())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range c.ControlIDs() {
		if _, ok := s.points[id]; !ok {
			return Curve{}, fmt.Errorf("add curve control point %s: %w", id, ErrUnknownPoint)
		}
	}

	c.ID = newID(PrefixCurve)
	s.curves = append(s.curves, c)
	s.clock.Tick()
	return c, nil
}

// AddShape stores a shape and assigns it an ID.
func (s *Scene) AddShape(sh Shape) Shape {
	s.mu.Lock()
	defer s.mu.Unlock()

	sh.ID = newID(PrefixShape)
	sh.Points = slices.Clip(slices.Clone(sh.Points))
	s.shapes = append(s.shapes, sh)
	s.clock.Tick()
	return sh
}

// Lines returns the lines in draw order.
func (s *Scene) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lines)
}

// Curves returns the finished curves in draw order.
func (s *Scene) Curves() []Curve {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.curves)
}

// Shapes returns the shapes in draw order.
func (s *Scene) Shapes() []Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.shapes)
}

// referents counts the lines and curve control slots that use a point.
func (s *Scene) referents(id string) int {
	n := 0
	for _, l := range s.lines {
		if l.Start == id {
			n++
		}
		if l.End == id {
			n++
		}
	}
	for _, c := range s.curves {
		for _, p := range c.controls {
			if p.ID == id {
				n++
			}
		}
	}
	return n
}

// RemoveUnreferencedPoint drops a point nothing refers to. Tools use it to
// roll back points created by an abandoned gesture. It reports whether the
// point was removed.
func (s *Scene) RemoveUnreferencedPoint(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.points[id]; !ok || s.referents(id) > 0 {
		return false
	}
	delete(s.points, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	s.clock.Tick()
	return true
}

// Clear empties every collection.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("[SCENE] Clearing %d points, %d lines, %d curves, %d shapes",
		len(s.order), len(s.lines), len(s.curves), len(s.shapes))
	s.points = make(map[string]Point)
	s.order = nil
	s.lines = nil
	s.curves = nil
	s.shapes = nil
	s.clock.Tick()
}

// Stats returns the size of each collection.
func (s *Scene) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Points: len(s.order), Lines: len(s.lines), Curves: len(s.curves), Shapes: len(s.shapes)}
}

// Revision returns a counter that changes whenever the scene does.
func (s *Scene) Revision() uint64 {
	return s.clock.Now()
}

// Validate checks that every referenced point is in the arena exactly once.
func (s *Scene) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) != len(s.points) {
		return fmt.Errorf("point order holds %d ids for %d points", len(s.order), len(s.points))
	}
	seen := make(map[string]bool, len(s.order))
	for _, id := range s.order {
		if err := ValidateID(id, PrefixPoint); err != nil {
			return fmt.Errorf("point: %w", err)
		}
		if seen[id] {
			return fmt.Errorf("point %s listed twice", id)
		}
		if _, ok := s.points[id]; !ok {
			return fmt.Errorf("ordered point %s: %w", id, ErrUnknownPoint)
		}
		seen[id] = true
	}
	for _, l := range s.lines {
		if err := ValidateID(l.ID, PrefixLine); err != nil {
			return fmt.Errorf("line: %w", err)
		}
		for _, id := range []string{l.Start, l.End} {
			if !seen[id] {
				return fmt.Errorf("line %s endpoint %s: %w", l.ID, id, ErrUnknownPoint)
			}
		}
	}
	for _, c := range s.curves {
		if err := ValidateID(c.ID, PrefixCurve); err != nil {
			return fmt.Errorf("curve: %w", err)
		}
		for _, p := range c.controls {
			if !seen[p.ID] {
				return fmt.Errorf("curve %s control point %s: %w", c.ID, p.ID, ErrUnknownPoint)
			}
		}
	}
	for _, sh := range s.shapes {
		if err := ValidateID(sh.ID, PrefixShape); err != nil {
			return fmt.Errorf("shape: %w", err)
		}
	}
	return nil
}
