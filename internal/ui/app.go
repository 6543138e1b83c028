package ui

import (
	"fmt"

	"CurveBoard/internal/config"
	"CurveBoard/internal/controller"
	"CurveBoard/internal/tools"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/spatial/r2"
)

// statusText formats the status bar line.
func statusText(pos r2.Vec, kind tools.Kind, ctrl *controller.Controller) string {
	stats := ctrl.Scene().Stats()
	return fmt.Sprintf("x: %.0f  y: %.0f  |  %s  |  %d points, %d lines, %d curves, %d shapes",
		pos.X, pos.Y, toolLabels[kind], stats.Points, stats.Lines, stats.Curves, stats.Shapes)
}

// RunApp opens the board window and blocks until it closes. shareLink is
// shown in the status bar when the viewer is running.
func RunApp(cfg *config.Config, ctrl *controller.Controller, shareLink string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("CurveBoard")
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	board := NewBoardWidget(ctrl)
	status := widget.NewLabel(statusText(r2.Vec{}, ctrl.ActiveTool(), ctrl))
	board.OnPointer = func(pos r2.Vec) {
		status.SetText(statusText(pos, ctrl.ActiveTool(), ctrl))
	}

	next := ctrl.OnChange
	ctrl.OnChange = func() {
		board.Refresh()
		if next != nil {
			next()
		}
	}

	toolbar := NewToolbar(ctrl)
	toolbar.OnError = func(err error) { dialog.ShowError(err, myWindow) }
	toolbar.OnToolChanged = func(kind tools.Kind) {
		status.SetText(statusText(ctrl.Pointer(), kind, ctrl))
	}

	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Clear board", "Remove every point, line, curve and shape?", func(ok bool) {
			if ok {
				ctrl.ClearScene()
				status.SetText(statusText(ctrl.Pointer(), ctrl.ActiveTool(), ctrl))
			}
		}, myWindow)
	})
	exp := &exporter{dir: cfg.ExportDir, ctrl: ctrl, board: board, window: myWindow}
	pngBtn := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), exp.png)
	pdfBtn := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), exp.pdf)

	bottom := container.NewHBox(status)
	if shareLink != "" {
		bottom.Add(widget.NewSeparator())
		bottom.Add(widget.NewLabel("Viewer: " + shareLink))
	}

	content := container.NewBorder(toolbar.Build(clearBtn, pngBtn, pdfBtn), bottom, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
