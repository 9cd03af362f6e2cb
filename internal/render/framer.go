// Package render turns artworks into framed pixel buffers: mat and frame
// borders built from physical dimensions, inset edge shadows, and a soft
// drop shadow behind the whole piece.
package render

import (
	"image"
	"image/color"

	"gallery-wall/internal/imaging"
	"gallery-wall/internal/model"
	"gallery-wall/pkg/colorutil"
	"gallery-wall/pkg/units"
)

// Framed is a rendered artwork buffer. ContentOffsetX/Y locate the physical
// piece (frame outer edge) within the buffer; drop shadow pixels extend
// beyond it, so compositors subtract the offset when aligning the piece to
// its wall position.
type Framed struct {
	Image          *image.RGBA
	ContentOffsetX int
	ContentOffsetY int
}

// RenderFramed renders an artwork image with its mat and frame at the given
// scale (pixels per cm). A nil config yields the bare artwork resized to its
// physical footprint. Layers build from the inside out: artwork, mat with an
// inset shadow along the artwork edge, frame with an inset shadow along the
// mat edge, then a drop shadow beneath the whole piece.
func RenderFramed(artwork *image.RGBA, widthCm, heightCm float64, cfg *model.FrameConfig, scale float64) *Framed {
	artW := units.RealToPixels(widthCm, scale)
	artH := units.RealToPixels(heightCm, scale)
	layer := imaging.Resize(artwork, artW, artH)

	if cfg == nil {
		return &Framed{Image: layer}
	}

	if cfg.Mat != nil {
		layer = addMat(layer, cfg.Mat, cfg.MatShadow, scale)
	}
	return addFrame(layer, cfg.FrameWidthCm, cfg.FrameColor, cfg.FrameShadow, scale)
}

// TotalDimensions returns the physical footprint of an artwork including its
// mat and frame borders, in cm. Shadows carry no physical size.
func TotalDimensions(widthCm, heightCm float64, cfg *model.FrameConfig) (float64, float64) {
	if cfg == nil {
		return widthCm, heightCm
	}
	w, h := widthCm, heightCm
	if cfg.Mat != nil {
		w += cfg.Mat.LeftWidthCm + cfg.Mat.RightWidthCm
		h += cfg.Mat.TopWidthCm + cfg.Mat.BottomWidthCm
	}
	w += cfg.FrameWidthCm * 2
	h += cfg.FrameWidthCm * 2
	return w, h
}

// addMat surrounds the layer with a mat border and composites an inset
// shadow along the artwork opening.
func addMat(layer *image.RGBA, mat *model.MatConfig, shadow model.ShadowConfig, scale float64) *image.RGBA {
	topPx := units.RealToPixels(mat.TopWidthCm, scale)
	bottomPx := units.RealToPixels(mat.BottomWidthCm, scale)
	leftPx := units.RealToPixels(mat.LeftWidthCm, scale)
	rightPx := units.RealToPixels(mat.RightWidthCm, scale)

	innerW := layer.Bounds().Dx()
	innerH := layer.Bounds().Dy()
	newW := innerW + leftPx + rightPx
	newH := innerH + topPx + bottomPx

	matLayer := imaging.NewFilled(newW, newH, colorutil.ParseHex(mat.Color))
	imaging.AlphaComposite(matLayer, layer, leftPx, topPx)

	if shadow.Enabled && shadow.Blur > 0 {
		opening := image.Rect(leftPx, topPx, leftPx+innerW, topPx+innerH)
		overlay := insetShadowOverlay(newW, newH, opening, shadow,
			topPx > 0, bottomPx > 0, leftPx > 0, rightPx > 0)
		imaging.AlphaComposite(matLayer, overlay, 0, 0)
	}
	return matLayer
}

// addFrame surrounds the layer with a frame border, composites an inset
// shadow along the opening, and when the shadow is enabled places the result
// on an enlarged canvas over a blurred drop shadow.
func addFrame(layer *image.RGBA, frameWidthCm float64, frameColor string, shadow model.ShadowConfig, scale float64) *Framed {
	framePx := units.RealToPixels(frameWidthCm, scale)

	innerW := layer.Bounds().Dx()
	innerH := layer.Bounds().Dy()
	newW := innerW + framePx*2
	newH := innerH + framePx*2

	frameLayer := imaging.NewFilled(newW, newH, colorutil.ParseHex(frameColor))
	imaging.AlphaComposite(frameLayer, layer, framePx, framePx)

	if shadow.Enabled && shadow.Blur > 0 {
		opening := image.Rect(framePx, framePx, framePx+innerW, framePx+innerH)
		overlay := insetShadowOverlay(newW, newH, opening, shadow, true, true, true, true)
		imaging.AlphaComposite(frameLayer, overlay, 0, 0)
	}

	if !shadow.Enabled {
		return &Framed{Image: frameLayer}
	}

	// Drop shadow: a solid dark rectangle the size of the piece, offset and
	// blurred, on a canvas enlarged enough to hold the blur falloff.
	margin := int(shadow.Blur * 2)
	canvas := image.NewRGBA(image.Rect(0, 0, newW+margin*2, newH+margin*2))

	shadowAlpha := uint8(255*shadow.Opacity*0.6 + 0.5)
	shadowRect := imaging.NewFilled(newW, newH, colorutil.WithAlpha(colorutil.Black, shadowAlpha))
	imaging.AlphaComposite(canvas, shadowRect, margin+int(shadow.OffsetX), margin+int(shadow.OffsetY))

	canvas = imaging.GaussianBlur(canvas, shadow.Blur)
	imaging.AlphaComposite(canvas, frameLayer, margin, margin)

	return &Framed{Image: canvas, ContentOffsetX: margin, ContentOffsetY: margin}
}

// insetShadowOverlay builds a transparent overlay with 1px shadow bands
// fading inward from the opening edges, softened by a half-radius blur.
func insetShadowOverlay(w, h int, opening image.Rectangle, shadow model.ShadowConfig, top, bottom, left, right bool) *image.RGBA {
	overlay := image.NewRGBA(image.Rect(0, 0, w, h))
	size := int(shadow.Blur * 3)
	alpha := 255 * shadow.Opacity

	for i := 0; i < size; i++ {
		fade := uint8(alpha * (1 - float64(i)/float64(size)))
		band := colorutil.WithAlpha(colorutil.Black, fade)
		if top {
			fillRow(overlay, opening.Min.X, opening.Max.X, opening.Min.Y+i, band)
		}
		if bottom {
			fillRow(overlay, opening.Min.X, opening.Max.X, opening.Max.Y-i-1, band)
		}
		if left {
			fillCol(overlay, opening.Min.Y, opening.Max.Y, opening.Min.X+i, band)
		}
		if right {
			fillCol(overlay, opening.Min.Y, opening.Max.Y, opening.Max.X-i-1, band)
		}
	}

	return imaging.GaussianBlur(overlay, shadow.Blur/2)
}

func fillRow(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	for x := x0; x < x1; x++ {
		if x < 0 || x >= img.Bounds().Dx() {
			continue
		}
		img.SetRGBA(x, y, c)
	}
}

func fillCol(img *image.RGBA, y0, y1, x int, c color.RGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	for y := y0; y < y1; y++ {
		if y < 0 || y >= img.Bounds().Dy() {
			continue
		}
		img.SetRGBA(x, y, c)
	}
}
