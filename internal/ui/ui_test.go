package ui

import (
	"testing"

	"CurveBoard/internal/config"
	"CurveBoard/internal/controller"
	"CurveBoard/internal/state"
	"CurveBoard/internal/tools"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestController(t *testing.T) *controller.Controller {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return controller.New(state.NewScene(), config.DefaultSettings())
}

func mouse(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestBoardWidgetDrawsLine(t *testing.T) {
	ctrl := newTestController(t)
	board := NewBoardWidget(ctrl)
	board.Resize(fyne.NewSize(200, 150))

	var seen []r2.Vec
	board.OnPointer = func(pos r2.Vec) { seen = append(seen, pos) }

	board.MouseDown(mouse(10, 10))
	board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(80, 40)}})
	board.MouseUp(mouse(120, 60))

	assert.Equal(t, state.Stats{Points: 2, Lines: 1}, ctrl.Scene().Stats())
	require.Len(t, seen, 3)
	assert.Equal(t, r2.Vec{X: 120, Y: 60}, seen[2])

	img := board.draw(0, 0)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	ctrl := newTestController(t)
	board := NewBoardWidget(ctrl)

	ev := mouse(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	board.MouseDown(ev)
	board.MouseUp(ev)
	assert.Equal(t, state.Stats{}, ctrl.Scene().Stats())
}

func TestBoardWidgetHover(t *testing.T) {
	ctrl := newTestController(t)
	board := NewBoardWidget(ctrl)

	board.MouseDown(mouse(10, 10))
	board.MouseUp(mouse(100, 10))
	board.MouseMoved(mouse(12, 12))

	p, ok := ctrl.Hovered()
	require.True(t, ok)
	assert.Equal(t, r2.Vec{X: 10, Y: 10}, p.Pos())
}

func TestToolbarShowsCurveSettingsOnlyForCurves(t *testing.T) {
	ctrl := newTestController(t)
	tb := NewToolbar(ctrl)
	tb.Build()

	var changed []tools.Kind
	tb.OnToolChanged = func(k tools.Kind) { changed = append(changed, k) }

	assert.False(t, tb.curveBox.Visible())

	tb.SelectTool(tools.KindCurve)
	assert.Equal(t, tools.KindCurve, ctrl.ActiveTool())
	assert.True(t, tb.curveBox.Visible())

	tb.SelectTool(tools.KindStar)
	assert.False(t, tb.curveBox.Visible())
	assert.Equal(t, []tools.Kind{tools.KindCurve, tools.KindStar}, changed)
}

func TestToolbarReportsBadTool(t *testing.T) {
	ctrl := newTestController(t)
	tb := NewToolbar(ctrl)
	tb.Build()

	var got error
	tb.OnError = func(err error) { got = err }
	tb.SelectTool("lasso")

	assert.ErrorIs(t, got, controller.ErrUnknownTool)
	assert.Equal(t, tools.KindLine, ctrl.ActiveTool())
}

func TestStatusText(t *testing.T) {
	ctrl := newTestController(t)
	ctrl.Scene().AddPoint(r2.Vec{})

	got := statusText(r2.Vec{X: 12.4, Y: 99.6}, tools.KindCircle, ctrl)
	assert.Equal(t, "x: 12  y: 100  |  Circle  |  1 points, 0 lines, 0 curves, 0 shapes", got)
}
