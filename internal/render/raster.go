package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"CurveBoard/internal/geometry"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	dashPattern      = []float64{5, 5}
	influencePattern = []float64{3, 3}
)

// Raster paints onto an in-memory RGBA image with anti-aliased strokes.
type Raster struct {
	img        *image.RGBA
	filler     *rasterx.Filler
	dasher     *rasterx.Dasher
	Background color.Color
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a raster surface of the given size.
func NewRaster(width, height int) *Raster {
	r := &Raster{Background: color.White}
	r.Resize(width, height)
	return r
}

// Resize reallocates the backing image when the size changes.
func (r *Raster) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if r.img != nil && r.img.Bounds().Dx() == width && r.img.Bounds().Dy() == height {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, r.img, r.img.Bounds())
	r.filler = rasterx.NewFiller(width, height, scanner)
	r.dasher = rasterx.NewDasher(width, height, scanner)
	r.Clear()
}

// Clear paints the whole surface with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// EncodePNG writes the current surface as a PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Raster) DrawPoint(p r2.Vec, style PointStyle) {
	c := MustColor(style.Color)
	if style.State != StateNormal {
		r.fillCircle(p, style.Size*1.8, withAlpha(c, 0.35))
	}
	r.fillCircle(p, style.Size, c)
	inner := pointHighlight
	if style.State == StateActive {
		inner = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r.fillCircle(p, style.Size*0.5, inner)
	r.stroke(geometry.CirclePoints(p, style.Size, 24), pointBorder, 1, nil, true)
}

func (r *Raster) DrawLine(a, b r2.Vec, style LineStyle) {
	var dashes []float64
	if style.Dashed {
		dashes = dashPattern
	}
	r.stroke([]r2.Vec{a, b}, MustColor(style.Color), style.Width, dashes, false)
}

func (r *Raster) DrawCurve(points []r2.Vec, style StrokeStyle) {
	r.stroke(points, MustColor(style.Color), style.Width, nil, false)
}

func (r *Raster) DrawShape(points []r2.Vec, style ShapeStyle) {
	if len(points) < 2 {
		return
	}
	if style.Fill {
		r.fill(points, accentTint)
	}
	r.stroke(points, MustColor(style.Color), style.Width, nil, true)
}

func (r *Raster) DrawInfluenceRadius(center r2.Vec, radius float64) {
	outline := geometry.CirclePoints(center, radius, geometry.DefaultCircleSegments)
	r.fill(outline, accentTint)
	r.stroke(outline, accentEdge, 1, influencePattern, true)
}

func (r *Raster) DrawPreview(a, b r2.Vec, style StrokeStyle) {
	r.stroke([]r2.Vec{a, b}, withAlpha(MustColor(style.Color), 0.5), style.Width, dashPattern, false)
}

func (r *Raster) fillCircle(center r2.Vec, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	r.fill(geometry.CirclePoints(center, radius, 32), c)
}

func (r *Raster) fill(points []r2.Vec, c color.Color) {
	if len(points) < 3 {
		return
	}
	f := r.filler
	f.Clear()
	f.SetColor(c)
	f.Start(rasterx.ToFixedP(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		f.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	f.Stop(true)
	f.Draw()
	f.Clear()
}

func (r *Raster) stroke(points []r2.Vec, c color.Color, width float64, dashes []float64, closed bool) {
	if len(points) < 2 || width <= 0 {
		return
	}
	d := r.dasher
	d.Clear()
	d.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, dashes, 0)
	d.SetColor(c)
	d.Start(rasterx.ToFixedP(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		d.Line(rasterx.ToFixedP(p.X, p.Y))
	}
	d.Stop(closed)
	d.Draw()
	d.Clear()
}
