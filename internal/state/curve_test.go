package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func pt(id string, x, y float64) Point { return Point{ID: id, X: x, Y: y} }

func TestCurveSamplesFollowControls(t *testing.T) {
	c := NewCurve(0.5)
	assert.Empty(t, c.Samples())

	c.Append(pt("a", 0, 0))
	assert.Equal(t, []r2.Vec{{}}, c.Samples())

	c.Append(pt("b", 100, 0))
	assert.Equal(t, []r2.Vec{{}, {X: 100}}, c.Samples())

	c.Append(pt("c", 200, 50))
	samples := c.Samples()
	require.Len(t, samples, 41)
	assert.Equal(t, r2.Vec{X: 200, Y: 50}, samples[40])
}

func TestCurveInsert(t *testing.T) {
	c := NewCurve(0.5)
	c.Append(pt("a", 0, 0))
	c.Append(pt("c", 200, 0))

	c.Insert(1, pt("b", 100, 40))
	assert.Equal(t, []string{"a", "b", "c"}, c.ControlIDs())
	assert.Len(t, c.Samples(), 41)

	c.Insert(-3, pt("start", -10, 0))
	c.Insert(99, pt("end", 300, 0))
	assert.Equal(t, []string{"start", "a", "b", "c", "end"}, c.ControlIDs())
}

func TestCurveSetTensionResamples(t *testing.T) {
	c := NewCurve(0.5)
	for i, x := range []float64{0, 100, 200} {
		c.Append(pt(string(rune('a'+i)), x, float64(i%2)*80))
	}
	before := c.Samples()

	c.SetTension(1)
	after := c.Samples()
	require.Len(t, after, len(before))
	assert.NotEqual(t, before[5], after[5])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, 1.0, c.Tension())
}

func TestCurveReset(t *testing.T) {
	c := NewCurve(0.5)
	c.Append(pt("a", 0, 0))
	c.Append(pt("b", 1, 1))
	c.Reset()

	assert.Zero(t, c.Len())
	assert.Empty(t, c.Samples())
	assert.Equal(t, 0.5, c.Tension())
}

func TestSnapshotIsDetached(t *testing.T) {
	c := NewCurve(0.5)
	c.Append(pt("a", 0, 0))
	c.Append(pt("b", 1, 1))

	snap := c.Snapshot("#ff0000", 4)
	c.Append(pt("c", 2, 2))

	assert.Equal(t, 2, snap.Len())
	assert.Equal(t, "#ff0000", snap.Color)
	assert.Equal(t, 4.0, snap.Width)
	assert.Len(t, snap.Samples(), 2)
}
