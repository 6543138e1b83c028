package state

import (
	"CurveBoard/internal/geometry"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds returns the bounding box of everything drawn in the scene, grown by
// padding on every side. ok is false for an empty scene.
func (s *Scene) Bounds(padding float64) (box r2.Box, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []r2.Vec
	for _, id := range s.order {
		all = append(all, s.points[id].Pos())
	}
	for _, c := range s.curves {
		all = append(all, c.samples...)
	}
	for _, sh := range s.shapes {
		all = append(all, sh.Points...)
	}
	if len(all) == 0 {
		return r2.Box{}, false
	}

	box = geometry.Bounds(all)
	box.Min = r2.Sub(box.Min, r2.Vec{X: padding, Y: padding})
	box.Max = r2.Add(box.Max, r2.Vec{X: padding, Y: padding})
	return box, true
}
