package export

import (
	"fmt"
	"io"
	"log"
	"os"

	"CurveBoard/internal/controller"
	"CurveBoard/internal/render"
)

// WritePNG renders the stored scene at the given size and encodes it as PNG.
func WritePNG(w io.Writer, c *controller.Controller, width, height int) error {
	r := render.NewRaster(width, height)
	c.RenderScene(r)
	return r.EncodePNG(w)
}

// ExportPNG writes a PNG snapshot of the stored scene to path.
func ExportPNG(path string, c *controller.Controller, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePNG(f, c, width, height); err != nil {
		return err
	}
	log.Printf("[EXPORT] Wrote %s (%dx%d)", path, width, height)
	return nil
}
