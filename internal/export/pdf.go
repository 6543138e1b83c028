// Package export writes the scene to files through the render adapters.
package export

import (
	"fmt"
	"io"
	"log"
	"os"

	"CurveBoard/internal/controller"
	"CurveBoard/internal/render"

	"github.com/jung-kurt/gofpdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pageMargin   = 10.0 // mm
	scenePadding = 20.0
	// fallbackScale maps canvas units to millimetres for an empty scene.
	fallbackScale = 1.0 / 3
)

// PDF is a render.Surface that draws onto a single A4 landscape page, scaled
// so the given scene bounds fill the printable area.
type PDF struct {
	doc    *gofpdf.Fpdf
	origin r2.Vec
	scale  float64
}

var _ render.Surface = (*PDF)(nil)

// NewPDF starts a document fitted to bounds. An empty box uses a fixed scale
// anchored at the canvas origin.
func NewPDF(bounds r2.Box) *PDF {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")

	p := &PDF{doc: doc, origin: bounds.Min, scale: fallbackScale}
	size := r2.Sub(bounds.Max, bounds.Min)
	if size.X > 0 && size.Y > 0 {
		pw, ph := doc.GetPageSize()
		p.scale = min((pw-2*pageMargin)/size.X, (ph-2*pageMargin)/size.Y)
	}
	return p
}

func (p *PDF) pt(v r2.Vec) (float64, float64) {
	return pageMargin + (v.X-p.origin.X)*p.scale, pageMargin + (v.Y-p.origin.Y)*p.scale
}

func (p *PDF) points(vs []r2.Vec) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(vs))
	for i, v := range vs {
		out[i].X, out[i].Y = p.pt(v)
	}
	return out
}

func (p *PDF) setDraw(hex string) {
	c := render.MustColor(hex)
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) setFill(hex string) {
	c := render.MustColor(hex)
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
}

// Clear is a no-op: a fresh page is already blank.
func (p *PDF) Clear() {}

// Resize is a no-op: the page size is fixed.
func (p *PDF) Resize(int, int) {}

func (p *PDF) DrawPoint(v r2.Vec, style render.PointStyle) {
	x, y := p.pt(v)
	p.setFill(style.Color)
	p.doc.Circle(x, y, style.Size*p.scale, "F")
}

func (p *PDF) DrawLine(a, b r2.Vec, style render.LineStyle) {
	p.setDraw(style.Color)
	p.doc.SetLineWidth(style.Width * p.scale)
	if style.Dashed {
		p.doc.SetDashPattern([]float64{5 * p.scale, 5 * p.scale}, 0)
		defer p.doc.SetDashPattern(nil, 0)
	}
	x1, y1 := p.pt(a)
	x2, y2 := p.pt(b)
	p.doc.Line(x1, y1, x2, y2)
}

func (p *PDF) DrawCurve(vs []r2.Vec, style render.StrokeStyle) {
	if len(vs) < 2 {
		return
	}
	p.setDraw(style.Color)
	p.doc.SetLineWidth(style.Width * p.scale)
	x, y := p.pt(vs[0])
	p.doc.MoveTo(x, y)
	for _, v := range vs[1:] {
		x, y = p.pt(v)
		p.doc.LineTo(x, y)
	}
	p.doc.DrawPath("D")
}

func (p *PDF) DrawShape(vs []r2.Vec, style render.ShapeStyle) {
	if len(vs) < 2 {
		return
	}
	pts := p.points(vs)
	if style.Fill {
		p.setFill(render.DefaultColor)
		p.doc.SetAlpha(0.1, "Normal")
		p.doc.Polygon(pts, "F")
		p.doc.SetAlpha(1, "Normal")
	}
	p.setDraw(style.Color)
	p.doc.SetLineWidth(style.Width * p.scale)
	p.doc.Polygon(pts, "D")
}

func (p *PDF) DrawInfluenceRadius(center r2.Vec, radius float64) {
	x, y := p.pt(center)
	p.setFill(render.DefaultColor)
	p.setDraw(render.DefaultColor)
	p.doc.SetLineWidth(p.scale)
	p.doc.SetAlpha(0.1, "Normal")
	p.doc.Circle(x, y, radius*p.scale, "F")
	p.doc.SetAlpha(0.3, "Normal")
	p.doc.SetDashPattern([]float64{3 * p.scale, 3 * p.scale}, 0)
	p.doc.Circle(x, y, radius*p.scale, "D")
	p.doc.SetDashPattern(nil, 0)
	p.doc.SetAlpha(1, "Normal")
}

func (p *PDF) DrawPreview(a, b r2.Vec, style render.StrokeStyle) {
	p.doc.SetAlpha(0.5, "Normal")
	p.DrawLine(a, b, render.LineStyle{Color: style.Color, Width: style.Width, Dashed: true})
	p.doc.SetAlpha(1, "Normal")
}

// Output writes the finished document.
func (p *PDF) Output(w io.Writer) error {
	if err := p.doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF renders the stored scene as a one page PDF.
func WritePDF(w io.Writer, c *controller.Controller) error {
	bounds, _ := c.Scene().Bounds(scenePadding)
	doc := NewPDF(bounds)
	c.RenderScene(doc)
	return doc.Output(w)
}

// ExportPDF writes the stored scene to a PDF file at path.
func ExportPDF(path string, c *controller.Controller) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePDF(f, c); err != nil {
		return err
	}
	stats := c.Scene().Stats()
	log.Printf("[EXPORT] Wrote %s (%d lines, %d curves, %d shapes)", path, stats.Lines, stats.Curves, stats.Shapes)
	return nil
}
