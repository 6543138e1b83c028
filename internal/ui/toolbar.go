package ui

import (
	"fmt"
	"image/color"
	"log"

	"CurveBoard/internal/config"
	"CurveBoard/internal/controller"
	"CurveBoard/internal/render"
	"CurveBoard/internal/tools"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var toolLabels = map[tools.Kind]string{
	tools.KindLine:      "Line",
	tools.KindCurve:     "Curve",
	tools.KindCircle:    "Circle",
	tools.KindRectangle: "Rectangle",
	tools.KindTriangle:  "Triangle",
	tools.KindStar:      "Star",
}

// Palette offered by the swatches.
var Palette = []string{"#6366f1", "#111827", "#ef4444", "#22c55e", "#3b82f6", "#f59e0b"}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(render.MustColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// Toolbar holds the tool buttons and the settings controls.
type Toolbar struct {
	ctrl    *controller.Controller
	buttons map[tools.Kind]*widget.Button

	// curveBox groups the settings that only matter to the curve tool.
	curveBox *fyne.Container

	// OnToolChanged is called after the active tool changes.
	OnToolChanged func(kind tools.Kind)
	// OnError reports rejected input to the user.
	OnError func(err error)
}

func NewToolbar(ctrl *controller.Controller) *Toolbar {
	return &Toolbar{
		ctrl:    ctrl,
		buttons: make(map[tools.Kind]*widget.Button),
	}
}

// SelectTool switches the controller to kind and updates the toolbar.
func (t *Toolbar) SelectTool(kind tools.Kind) {
	if err := t.ctrl.SwitchTool(kind); err != nil {
		t.fail(err)
		return
	}
	t.sync()
	if t.OnToolChanged != nil {
		t.OnToolChanged(kind)
	}
}

func (t *Toolbar) sync() {
	active := t.ctrl.ActiveTool()
	for kind, b := range t.buttons {
		if kind == active {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
	if t.curveBox != nil {
		if active == tools.KindCurve {
			t.curveBox.Show()
		} else {
			t.curveBox.Hide()
		}
	}
}

func (t *Toolbar) fail(err error) {
	log.Printf("[UI] %v", err)
	if t.OnError != nil {
		t.OnError(err)
	}
}

func (t *Toolbar) update(fn func(*config.Settings)) {
	if err := t.ctrl.UpdateSettings(fn); err != nil {
		t.fail(err)
	}
}

// slider builds a labelled slider bound to one numeric setting.
func (t *Toolbar) slider(label string, lo, hi, step, value float64, set func(*config.Settings, float64)) fyne.CanvasObject {
	valueLabel := widget.NewLabel(fmt.Sprintf("%.1f", value))
	s := widget.NewSlider(lo, hi)
	s.Step = step
	s.SetValue(value)
	s.OnChanged = func(v float64) {
		valueLabel.SetText(fmt.Sprintf("%.1f", v))
		t.update(func(cfg *config.Settings) { set(cfg, v) })
	}
	sized := container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), s)
	return container.NewHBox(widget.NewLabel(label), sized, valueLabel)
}

// Build assembles the toolbar rows. actions go at the end of the tool row.
func (t *Toolbar) Build(actions ...fyne.CanvasObject) fyne.CanvasObject {
	settings := t.ctrl.Settings()

	toolBox := container.NewHBox()
	for _, kind := range tools.Kinds {
		b := widget.NewButton(toolLabels[kind], func() { t.SelectTool(kind) })
		t.buttons[kind] = b
		toolBox.Add(b)
	}

	onColorTapped := func(hex string) {
		t.update(func(cfg *config.Settings) { cfg.StrokeColor = hex })
	}
	colorBox := container.NewHBox()
	for _, hex := range Palette {
		colorBox.Add(newColorSwatch(hex, onColorTapped))
	}

	influence := widget.NewCheck("Influence radius", func(on bool) {
		t.update(func(cfg *config.Settings) { cfg.ShowInfluenceRadius = on })
	})
	influence.SetChecked(settings.ShowInfluenceRadius)

	finish := widget.NewButton("Finish curve", func() {
		t.ctrl.FinishCurve()
	})

	t.curveBox = container.NewHBox(
		t.slider("Tension:", 0, 1, 0.05, settings.CurveTension, func(cfg *config.Settings, v float64) { cfg.CurveTension = v }),
		t.slider("Radius:", 10, 200, 5, settings.CurveRadius, func(cfg *config.Settings, v float64) { cfg.CurveRadius = v }),
		influence,
		finish,
	)

	strokeRow := container.NewHBox(
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		t.slider("Width:", 1, 20, 0.5, settings.StrokeWidth, func(cfg *config.Settings, v float64) { cfg.StrokeWidth = v }),
		t.slider("Points:", 2, 20, 1, settings.PointSize, func(cfg *config.Settings, v float64) { cfg.PointSize = v }),
		t.slider("Snap:", 0, 60, 1, settings.SnapDistance, func(cfg *config.Settings, v float64) { cfg.SnapDistance = v }),
	)

	top := container.NewHBox(widget.NewLabel("Tool:"), toolBox, layout.NewSpacer())
	for _, a := range actions {
		top.Add(a)
	}

	t.sync()
	return container.NewVBox(top, strokeRow, t.curveBox)
}
