package imaging

import (
	"image"

	"gocv.io/x/gocv"
)

// AdjustWhiteBalance applies color adjustments to an image and returns a new
// buffer. Parameters and their neutral values:
//
//	temperature: -100..100, 0 neutral (negative = blue, positive = yellow)
//	tint:        -100..100, 0 neutral (negative = green, positive = magenta)
//	brightness:  -100..100, 0 neutral (applied as a 1+b/100 multiplier)
//	contrast:    0.5..2.0, 1.0 neutral (multiplier around mid-gray)
//	saturation:  0.0..2.0, 1.0 neutral (multiplier)
//
// Each adjustment is independent; a fully neutral parameter set returns the
// pixels unchanged.
func AdjustWhiteBalance(img *image.RGBA, temperature, tint, brightness, contrast, saturation float64) *image.RGBA {
	result := img

	if brightness != 0 || contrast != 1.0 || saturation != 1.0 {
		result = adjustEnhancers(result, brightness, contrast, saturation)
	}

	if temperature != 0 || tint != 0 {
		result = adjustLab(result, temperature, tint)
	}

	return result
}

// adjustEnhancers applies brightness, contrast, and saturation per pixel.
func adjustEnhancers(img *image.RGBA, brightness, contrast, saturation float64) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	brightFactor := 1.0 + brightness/100.0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			si := img.PixOffset(x, y)
			r := float64(img.Pix[si+0])
			g := float64(img.Pix[si+1])
			b := float64(img.Pix[si+2])

			if brightness != 0 {
				r *= brightFactor
				g *= brightFactor
				b *= brightFactor
			}

			if contrast != 1.0 {
				r = (r-128)*contrast + 128
				g = (g-128)*contrast + 128
				b = (b-128)*contrast + 128
			}

			if saturation != 1.0 {
				// Rec. 601 luma as the desaturation target
				gray := 0.299*r + 0.587*g + 0.114*b
				r = gray + (r-gray)*saturation
				g = gray + (g-gray)*saturation
				b = gray + (b-gray)*saturation
			}

			di := out.PixOffset(x-bounds.Min.X, y-bounds.Min.Y)
			out.Pix[di+0] = clampByte(r)
			out.Pix[di+1] = clampByte(g)
			out.Pix[di+2] = clampByte(b)
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}

// adjustLab shifts temperature (Lab b channel, blue-yellow) and tint (Lab a
// channel, green-magenta) in Lab color space through OpenCV.
func adjustLab(img *image.RGBA, temperature, tint float64) *image.RGBA {
	src := ImageToMat(img)
	defer src.Close()

	lab := gocv.NewMat()
	defer lab.Close()
	gocv.CvtColor(src, &lab, gocv.ColorBGRToLab)

	labF := gocv.NewMat()
	defer labF.Close()
	lab.ConvertTo(&labF, gocv.MatTypeCV32FC3)

	channels := gocv.Split(labF)
	defer func() {
		for i := range channels {
			channels[i].Close()
		}
	}()

	if tint != 0 {
		channels[1].AddFloat(float32(tint * 0.5))
	}
	if temperature != 0 {
		channels[2].AddFloat(float32(temperature * 0.5))
	}

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge(channels, &merged)

	clipped := gocv.NewMat()
	defer clipped.Close()
	merged.ConvertTo(&clipped, gocv.MatTypeCV8UC3)

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.CvtColor(clipped, &dst, gocv.ColorLabToBGR)

	out := MatToImage(dst)

	// Lab round-trips through an opaque Mat; restore the source alpha.
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Pix[out.PixOffset(x-bounds.Min.X, y-bounds.Min.Y)+3] = img.Pix[img.PixOffset(x, y)+3]
		}
	}
	return out
}

// GaussianBlur blurs an RGBA image with the given radius, preserving alpha.
// A radius below one returns the input unchanged.
func GaussianBlur(img *image.RGBA, radius float64) *image.RGBA {
	if radius < 1 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// 4-channel Mat so the alpha ramp blurs along with the color.
	src := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC4)
	defer src.Close()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pi := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			src.SetUCharAt(y, x*4+0, img.Pix[pi+2])
			src.SetUCharAt(y, x*4+1, img.Pix[pi+1])
			src.SetUCharAt(y, x*4+2, img.Pix[pi+0])
			src.SetUCharAt(y, x*4+3, img.Pix[pi+3])
		}
	}

	// Kernel size must be odd and cover the radius.
	ksize := int(radius)*2 + 1

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.GaussianBlur(src, &dst, image.Point{X: ksize, Y: ksize}, radius/2, radius/2, gocv.BorderDefault)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pi := out.PixOffset(x, y)
			out.Pix[pi+0] = dst.GetUCharAt(y, x*4+2)
			out.Pix[pi+1] = dst.GetUCharAt(y, x*4+1)
			out.Pix[pi+2] = dst.GetUCharAt(y, x*4+0)
			out.Pix[pi+3] = dst.GetUCharAt(y, x*4+3)
		}
	}
	return out
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
