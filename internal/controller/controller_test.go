package controller

import (
	"testing"

	"CurveBoard/internal/config"
	"CurveBoard/internal/state"
	"CurveBoard/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newController() *Controller {
	return New(state.NewScene(), config.DefaultSettings())
}

func gesture(c *Controller, from, to r2.Vec) {
	c.PointerDown(from)
	c.PointerMove(to)
	c.PointerUp(to)
}

func TestStartsWithLineTool(t *testing.T) {
	c := newController()
	assert.Equal(t, tools.KindLine, c.ActiveTool())
	for _, kind := range tools.Kinds {
		_, ok := c.Tool(kind)
		assert.True(t, ok, kind)
	}
}

func TestSwitchToolUnknown(t *testing.T) {
	c := newController()
	err := c.SwitchTool("eraser")
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Equal(t, tools.KindLine, c.ActiveTool())
}

func TestSwitchToolFinishesCurve(t *testing.T) {
	c := newController()
	require.NoError(t, c.SwitchTool(tools.KindCurve))

	gesture(c, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 0})
	gesture(c, r2.Vec{X: 100, Y: 50}, r2.Vec{X: 100, Y: 50})
	require.Empty(t, c.Scene().Curves())

	require.NoError(t, c.SwitchTool(tools.KindCircle))
	assert.Len(t, c.Scene().Curves(), 1)
	assert.NoError(t, c.Scene().Validate())
}

func TestSwitchToolAbandonsLine(t *testing.T) {
	c := newController()
	c.PointerDown(r2.Vec{X: 10, Y: 10})
	c.PointerMove(r2.Vec{X: 80, Y: 10})
	require.Equal(t, 1, c.Scene().Stats().Points)

	require.NoError(t, c.SwitchTool(tools.KindRectangle))
	assert.Equal(t, state.Stats{}, c.Scene().Stats())

	// A stray up on the new tool finds nothing to finish.
	c.PointerUp(r2.Vec{X: 80, Y: 10})
	assert.Empty(t, c.Scene().Shapes())
}

func TestFinishCurve(t *testing.T) {
	c := newController()
	assert.False(t, c.FinishCurve())

	require.NoError(t, c.SwitchTool(tools.KindCurve))
	assert.False(t, c.FinishCurve())

	gesture(c, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 0})
	gesture(c, r2.Vec{X: 100, Y: 50}, r2.Vec{X: 100, Y: 50})
	assert.True(t, c.FinishCurve())
	assert.Len(t, c.Scene().Curves(), 1)
	assert.Equal(t, tools.KindCurve, c.ActiveTool())
}

func TestHover(t *testing.T) {
	c := newController()
	gesture(c, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 100, Y: 0})

	c.PointerMove(r2.Vec{X: 95, Y: 3})
	p, ok := c.Hovered()
	require.True(t, ok)
	assert.Equal(t, r2.Vec{X: 100, Y: 0}, p.Pos())
	assert.Equal(t, r2.Vec{X: 95, Y: 3}, c.Pointer())

	c.PointerMove(r2.Vec{X: 50, Y: 50})
	_, ok = c.Hovered()
	assert.False(t, ok)
}

func TestClearScene(t *testing.T) {
	c := newController()
	gesture(c, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 100, Y: 0})
	c.PointerMove(r2.Vec{X: 1, Y: 1})
	c.PointerDown(r2.Vec{X: 300, Y: 300})

	c.ClearScene()
	assert.Equal(t, state.Stats{}, c.Scene().Stats())
	_, ok := c.Hovered()
	assert.False(t, ok)

	line, _ := c.Tool(tools.KindLine)
	assert.False(t, line.(*tools.LineTool).Drawing())
}

func TestUpdateSettings(t *testing.T) {
	c := newController()
	require.NoError(t, c.SwitchTool(tools.KindCurve))
	for _, pos := range []r2.Vec{{X: 0, Y: 0}, {X: 100, Y: 80}, {X: 200, Y: 0}} {
		gesture(c, pos, pos)
	}

	err := c.UpdateSettings(func(s *config.Settings) { s.StrokeWidth = 0 })
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
	assert.Equal(t, 2.0, c.Settings().StrokeWidth)

	require.NoError(t, c.UpdateSettings(func(s *config.Settings) { s.CurveTension = 0.9 }))
	assert.Equal(t, 0.9, c.Settings().CurveTension)

	tool, _ := c.Tool(tools.KindCurve)
	assert.Equal(t, 0.9, tool.(*tools.CurveTool).Curve().Tension())
}

func TestOnChange(t *testing.T) {
	c := newController()
	calls := 0
	c.OnChange = func() { calls++ }

	gesture(c, r2.Vec{}, r2.Vec{X: 50})
	require.NoError(t, c.SwitchTool(tools.KindStar))
	c.ClearScene()
	assert.Equal(t, 5, calls)
}
