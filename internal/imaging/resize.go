package imaging

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"gallery-wall/pkg/geometry"
)

// Resize scales an image to the exact target dimensions using Catmull-Rom
// resampling (a Lanczos-equivalent high quality kernel). Zero or negative
// target dimensions return a 1x1 transparent buffer rather than panicking.
func Resize(img *image.RGBA, width, height int) *image.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if b := img.Bounds(); b.Dx() == width && b.Dy() == height && b.Min == (image.Point{}) {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// ResizeToFit scales an image down so its longest side is at most maxDim,
// preserving aspect ratio. Images already within the limit are returned
// unchanged.
func ResizeToFit(img *image.RGBA, maxDim int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}
	if w > h {
		return Resize(img, maxDim, int(float64(h)*float64(maxDim)/float64(w)))
	}
	return Resize(img, int(float64(w)*float64(maxDim)/float64(h)), maxDim)
}

// Crop returns a copy of the region of img described by rect, clamped to the
// image bounds.
func Crop(img *image.RGBA, rect geometry.RectInt) *image.RGBA {
	bounds := img.Bounds()
	x, y := rect.X, rect.Y
	w, h := rect.Width, rect.Height

	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	if y < bounds.Min.Y {
		y = bounds.Min.Y
	}
	if x+w > bounds.Max.X {
		w = bounds.Max.X - x
	}
	if y+h > bounds.Max.Y {
		h = bounds.Max.Y - y
	}
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	cropped := image.NewRGBA(image.Rect(0, 0, w, h))
	for dy := 0; dy < h; dy++ {
		srcOff := img.PixOffset(x, y+dy)
		dstOff := cropped.PixOffset(0, dy)
		copy(cropped.Pix[dstOff:dstOff+w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return cropped
}

// FlipHorizontal flips an image horizontally (mirror along the Y axis).
func FlipHorizontal(img *image.RGBA) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	flipped := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			di := flipped.PixOffset(w-1-x, y)
			copy(flipped.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return flipped
}
