package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"CurveBoard/internal/controller"
	"CurveBoard/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// exporter writes snapshots of the stored scene into dir.
type exporter struct {
	dir    string
	ctrl   *controller.Controller
	board  *BoardWidget
	window fyne.Window
}

func (e *exporter) path(ext string) string {
	name := fmt.Sprintf("curveboard-%s.%s", time.Now().Format("20060102-150405"), ext)
	return filepath.Join(e.dir, name)
}

func (e *exporter) png() {
	size := e.board.Size()
	w, h := int(size.Width), int(size.Height)
	if w < 1 || h < 1 {
		w, h = 1280, 800
	}
	path := e.path("png")
	e.done(path, export.ExportPNG(path, e.ctrl, w, h))
}

func (e *exporter) pdf() {
	path := e.path("pdf")
	e.done(path, export.ExportPDF(path, e.ctrl))
}

func (e *exporter) done(path string, err error) {
	if err != nil {
		dialog.ShowError(err, e.window)
		return
	}
	dialog.ShowInformation("Export", "Saved "+path, e.window)
}
