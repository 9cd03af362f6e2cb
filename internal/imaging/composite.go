package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// AlphaComposite blends src over dst at the given pixel offset using
// straight-alpha "over" compositing. Pixels falling outside dst are skipped.
func AlphaComposite(dst *image.RGBA, src *image.RGBA, offsetX, offsetY int) {
	srcBounds := src.Bounds()
	dstBounds := dst.Bounds()

	for y := srcBounds.Min.Y; y < srcBounds.Max.Y; y++ {
		dy := y - srcBounds.Min.Y + offsetY
		if dy < dstBounds.Min.Y || dy >= dstBounds.Max.Y {
			continue
		}
		for x := srcBounds.Min.X; x < srcBounds.Max.X; x++ {
			dx := x - srcBounds.Min.X + offsetX
			if dx < dstBounds.Min.X || dx >= dstBounds.Max.X {
				continue
			}

			si := src.PixOffset(x, y)
			sa := float64(src.Pix[si+3]) / 255.0
			if sa == 0 {
				continue
			}

			di := dst.PixOffset(dx, dy)
			if sa == 1 {
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
				continue
			}

			da := float64(dst.Pix[di+3]) / 255.0
			outA := sa + da*(1-sa)
			for c := 0; c < 3; c++ {
				sv := float64(src.Pix[si+c]) / 255.0
				dv := float64(dst.Pix[di+c]) / 255.0
				out := sv*sa + dv*da*(1-sa)
				if outA > 0 {
					out /= outA
				}
				dst.Pix[di+c] = uint8(clamp(out, 0, 1)*255 + 0.5)
			}
			dst.Pix[di+3] = uint8(clamp(outA, 0, 1)*255 + 0.5)
		}
	}
}

// FlattenOnWhite composites an image onto an opaque white background,
// discarding transparency explicitly. Used before lossy encoding.
func FlattenOnWhite(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	// AlphaComposite maps the source origin to the offset itself, so an
	// offset-origin source needs no correction here.
	AlphaComposite(flat, img, 0, 0)
	return flat
}

// NewFilled creates an RGBA image of the given size filled with a color.
func NewFilled(width, height int, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
	return img
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
