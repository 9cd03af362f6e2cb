// Package export renders a workspace into a standalone composite raster at
// a caller-chosen resolution. Export is a pure pass over a snapshot of the
// scene model; it never mutates walls, artworks, or placements.
package export

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"gallery-wall/internal/imaging"
	"gallery-wall/internal/model"
	"gallery-wall/internal/render"
	"gallery-wall/pkg/colorutil"
	"gallery-wall/pkg/units"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// Options controls an export pass.
type Options struct {
	// Width of the output in pixels; height follows from the wall's aspect
	// ratio.
	Width int

	Format string

	// JPEG quality 1-100; ignored for PNG.
	Quality int
}

// RenderWorkspace composites a workspace onto its wall at the resolution
// implied by outputWidth. The scale factor derives from the output width and
// the wall's physical width with zoom fixed at 1.0: export resolution is
// caller-chosen, never view-dependent. Placements referencing a missing
// artwork or an artwork without a pixel buffer are skipped.
func RenderWorkspace(ws *model.Workspace, wall *model.Wall, artworks map[string]*model.Artwork, outputWidth int) (*image.RGBA, error) {
	if wall == nil {
		return nil, fmt.Errorf("workspace %q has no wall", ws.WorkspaceID)
	}
	if outputWidth < 1 {
		return nil, fmt.Errorf("invalid output width %d", outputWidth)
	}

	scale := units.ScaleFactor(outputWidth, wall.RealWidthCm, 1.0)
	outputHeight := units.RealToPixels(wall.RealHeightCm, scale)
	if outputHeight < 1 {
		outputHeight = 1
	}

	canvas := renderBackground(wall, outputWidth, outputHeight)

	// Paint order: ascending z index, stable among equals.
	ordered := append([]*model.PlacedArtwork(nil), ws.PlacedArtworks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})

	for _, pa := range ordered {
		artwork, ok := artworks[pa.ArtworkID]
		if !ok || artwork.EditedImage == nil {
			continue
		}

		framed := render.RenderFramed(artwork.EditedImage, artwork.RealWidthCm,
			artwork.RealHeightCm, artwork.FrameConfig, scale)

		// The placement position anchors the physical piece; shadow pixels
		// extend beyond it, so shift by the content offset.
		x := units.RealToPixels(pa.X, scale) - framed.ContentOffsetX
		y := units.RealToPixels(pa.Y, scale) - framed.ContentOffsetY
		imaging.AlphaComposite(canvas, framed.Image, x, y)
	}

	return canvas, nil
}

// renderBackground paints the wall: the rectified photo resized to the
// output size for photo walls, a flat color otherwise. A photo wall without
// a corrected buffer falls back to its color, then to white.
func renderBackground(wall *model.Wall, w, h int) *image.RGBA {
	if wall.Type == model.WallTypePhoto && wall.CorrectedImage != nil {
		return imaging.Resize(wall.CorrectedImage, w, h)
	}
	return imaging.NewFilled(w, h, colorutil.ParseHex(wall.Color))
}

// Export renders a workspace and writes it to disk. PNG is lossless; JPEG
// flattens alpha onto white before encoding.
func Export(ws *model.Workspace, wall *model.Wall, artworks map[string]*model.Artwork, path string, opts Options) error {
	img, err := RenderWorkspace(ws, wall, artworks, opts.Width)
	if err != nil {
		return err
	}

	switch strings.ToLower(opts.Format) {
	case FormatPNG, "":
		return imaging.SavePNG(img, path)
	case FormatJPEG, "jpg":
		return imaging.SaveJPEG(img, path, opts.Quality)
	default:
		return fmt.Errorf("unsupported export format %q", opts.Format)
	}
}

// ExportDimensions computes the pixel size of an export at a print DPI.
func ExportDimensions(wall *model.Wall, dpi int) (int, int) {
	w := int(units.CmToInches(wall.RealWidthCm) * float64(dpi))
	h := int(units.CmToInches(wall.RealHeightCm) * float64(dpi))
	return w, h
}
