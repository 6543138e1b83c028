package ui

import (
	"image"
	"image/color"

	"CurveBoard/internal/controller"
	"CurveBoard/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/spatial/r2"
)

// BoardWidget is the drawing surface. It forwards pointer events to the
// controller and paints each frame through a raster surface.
type BoardWidget struct {
	widget.BaseWidget

	ctrl    *controller.Controller
	surface *render.Raster
	pressed bool

	// OnPointer, when set, receives the pointer position after every event.
	OnPointer func(pos r2.Vec)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(ctrl *controller.Controller) *BoardWidget {
	b := &BoardWidget{
		ctrl:    ctrl,
		surface: render.NewRaster(1, 1),
	}
	b.ExtendBaseWidget(b)
	return b
}

func toVec(p fyne.Position) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	b.ctrl.PointerDown(toVec(e.Position))
	b.pointer()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.pressed {
		return
	}
	b.pressed = false
	b.ctrl.PointerUp(toVec(e.Position))
	b.pointer()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent) {
	b.ctrl.PointerMove(toVec(e.Position))
	b.pointer()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.ctrl.PointerMove(toVec(e.Position))
	b.pointer()
}

func (b *BoardWidget) MouseOut() {}

// Dragged receives the moves of a held button; fyne does not deliver them to
// MouseMoved.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.ctrl.PointerMove(toVec(e.Position))
	b.pointer()
}

func (b *BoardWidget) DragEnd() {}

func (b *BoardWidget) pointer() {
	if b.OnPointer != nil {
		b.OnPointer(b.ctrl.Pointer())
	}
}

// draw renders the current frame at the widget's logical size.
func (b *BoardWidget) draw(_, _ int) image.Image {
	size := b.Size()
	w, h := int(size.Width), int(size.Height)
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	b.surface.Resize(w, h)
	b.ctrl.Render(b.surface)
	return b.surface.Image()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(b.draw)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
