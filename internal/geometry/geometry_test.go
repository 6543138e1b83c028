package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

type pin struct {
	name string
	at   r2.Vec
}

func (p pin) Pos() r2.Vec { return p.at }

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(r2.Vec{}, r2.Vec{X: 3, Y: 4}), 1e-9)
	assert.Zero(t, Distance(r2.Vec{X: 7, Y: 7}, r2.Vec{X: 7, Y: 7}))
}

func TestFindNearestPoint(t *testing.T) {
	points := []pin{
		{"a", r2.Vec{X: 10, Y: 0}},
		{"b", r2.Vec{X: 0, Y: 10}},
		{"c", r2.Vec{X: 3, Y: 4}},
	}

	tests := []struct {
		name    string
		pos     r2.Vec
		max     float64
		want    string
		wantHit bool
	}{
		{"closest wins", r2.Vec{}, 20, "c", true},
		{"exact bound excluded", r2.Vec{}, 5, "", false},
		{"just above bound", r2.Vec{}, 5.0001, "c", true},
		{"nothing in range", r2.Vec{X: 100, Y: 100}, 20, "", false},
		{"zero distance never matches", r2.Vec{X: 3, Y: 4}, 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindNearestPoint(tt.pos, points, tt.max)
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.want, got.name)
		})
	}
}

func TestFindNearestPointTieOrder(t *testing.T) {
	points := []pin{
		{"left", r2.Vec{X: -1}},
		{"right", r2.Vec{X: 1}},
	}
	got, ok := FindNearestPoint(r2.Vec{}, points, 2)
	require.True(t, ok)
	assert.Equal(t, "left", got.name)

	got, ok = FindNearestPoint(r2.Vec{}, []pin{points[1], points[0]}, 2)
	require.True(t, ok)
	assert.Equal(t, "right", got.name)
}

func TestFindClosestPointOnCurve(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, ok := FindClosestPointOnCurve(r2.Vec{}, nil, 3)
		assert.False(t, ok)
	})

	// Three collinear controls sampled into two spans of twenty.
	controls := []r2.Vec{{X: 0}, {X: 100}, {X: 200}}
	samples := CatmullRomSpline(controls, 0.5, SegmentsPerSpan)
	require.Len(t, samples, 41)

	t.Run("first span", func(t *testing.T) {
		hit, ok := FindClosestPointOnCurve(r2.Vec{X: 50, Y: 3}, samples, len(controls))
		require.True(t, ok)
		assert.Equal(t, 1, hit.InsertIndex)
		assert.Less(t, hit.SampleIndex, 20)
		assert.Less(t, hit.Distance, 6.0)
	})

	t.Run("second span", func(t *testing.T) {
		hit, ok := FindClosestPointOnCurve(r2.Vec{X: 150, Y: -2}, samples, len(controls))
		require.True(t, ok)
		assert.Equal(t, 2, hit.InsertIndex)
	})

	t.Run("last sample clamps to control count", func(t *testing.T) {
		hit, ok := FindClosestPointOnCurve(r2.Vec{X: 400}, samples, len(controls))
		require.True(t, ok)
		assert.Equal(t, 40, hit.SampleIndex)
		assert.Equal(t, len(controls), hit.InsertIndex)
	})

	t.Run("two controls", func(t *testing.T) {
		hit, ok := FindClosestPointOnCurve(r2.Vec{X: 90, Y: 5}, []r2.Vec{{X: 0}, {X: 100}}, 2)
		require.True(t, ok)
		assert.Equal(t, 1, hit.SampleIndex)
		assert.Equal(t, 1, hit.InsertIndex)
	})

	t.Run("too few controls", func(t *testing.T) {
		hit, ok := FindClosestPointOnCurve(r2.Vec{}, []r2.Vec{{X: 1}}, 1)
		require.True(t, ok)
		assert.Equal(t, 0, hit.InsertIndex)
	})
}

func TestBounds(t *testing.T) {
	assert.Equal(t, r2.Box{}, Bounds(nil))

	box := Bounds([]r2.Vec{{X: 3, Y: -1}, {X: -2, Y: 8}, {X: 5, Y: 0}})
	assert.Equal(t, r2.Vec{X: -2, Y: -1}, box.Min)
	assert.Equal(t, r2.Vec{X: 5, Y: 8}, box.Max)
}

func TestCatmullRomSpline(t *testing.T) {
	t.Run("short input unchanged", func(t *testing.T) {
		inputs := map[string][]r2.Vec{
			"none": nil,
			"one":  {{X: 1}},
			"two":  {{X: 1}, {X: 2, Y: 2}},
		}
		tensions := []float64{-1, 0, 0.5, 1, 3, math.NaN(), math.Inf(1), math.Inf(-1)}
		for name, in := range inputs {
			for _, tension := range tensions {
				assert.Equal(t, in, CatmullRomSpline(in, tension, SegmentsPerSpan), "%s at tension %v", name, tension)
			}
		}
	})

	t.Run("passes through controls", func(t *testing.T) {
		controls := []r2.Vec{{X: 0, Y: 0}, {X: 50, Y: 80}, {X: 120, Y: 10}, {X: 200, Y: 60}}
		out := CatmullRomSpline(controls, 0.5, 10)
		require.Len(t, out, 3*10+1)
		for i, c := range controls {
			assert.InDelta(t, c.X, out[i*10].X, 1e-9)
			assert.InDelta(t, c.Y, out[i*10].Y, 1e-9)
		}
		assert.Equal(t, controls[3], out[len(out)-1])
	})

	t.Run("collinear stays on the line", func(t *testing.T) {
		out := CatmullRomSpline([]r2.Vec{{X: 0}, {X: 100}, {X: 200}}, 0.5, SegmentsPerSpan)
		require.Len(t, out, 41)
		for i := 1; i < len(out); i++ {
			assert.Zero(t, out[i].Y)
			assert.Greater(t, out[i].X, out[i-1].X)
		}
	})

	t.Run("segment floor", func(t *testing.T) {
		out := CatmullRomSpline([]r2.Vec{{X: 0}, {X: 1}, {X: 2}}, 0.5, 0)
		assert.Len(t, out, 3)
	})
}

func TestCardinalWeightsSumToOne(t *testing.T) {
	for _, tension := range []float64{0, 0.5, 1} {
		for s := 0; s <= 10; s++ {
			q1, q2, q3, q4 := cardinalWeights(float64(s)/10, tension)
			assert.InDelta(t, 1, q1+q2+q3+q4, 1e-9)
		}
	}
}

func TestCirclePoints(t *testing.T) {
	center := r2.Vec{X: 10, Y: 20}
	points := CirclePoints(center, 5, 8)
	require.Len(t, points, 9)
	assert.Equal(t, points[0], points[8])
	for _, p := range points {
		assert.InDelta(t, 5, Distance(center, p), 1e-9)
	}
	assert.Len(t, CirclePoints(center, 5, 0), DefaultCircleSegments+1)
}

func TestRectangleAndTrianglePoints(t *testing.T) {
	rect := RectanglePoints(r2.Vec{X: 1, Y: 2}, r2.Vec{X: 4, Y: 6})
	assert.Equal(t, []r2.Vec{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}, {X: 1, Y: 6}, {X: 1, Y: 2}}, rect)

	tri := TrianglePoints(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{Y: 1})
	require.Len(t, tri, 4)
	assert.Equal(t, tri[0], tri[3])
}

func TestStarPoints(t *testing.T) {
	center := r2.Vec{X: 50, Y: 50}
	points := StarPoints(center, 40, 16, DefaultStarTips)
	require.Len(t, points, 2*DefaultStarTips+1)
	assert.Equal(t, points[0], points[len(points)-1])

	// The first tip points straight up.
	assert.InDelta(t, 50, points[0].X, 1e-9)
	assert.InDelta(t, 10, points[0].Y, 1e-9)

	for i, p := range points[:2*DefaultStarTips] {
		want := 40.0
		if i%2 == 1 {
			want = 16
		}
		assert.InDelta(t, want, Distance(center, p), 1e-9, "vertex %d", i)
	}
	assert.False(t, math.IsNaN(points[3].X))
}
