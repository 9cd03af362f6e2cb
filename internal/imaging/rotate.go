package imaging

import (
	"image"
	"math"

	"gocv.io/x/gocv"

	"gallery-wall/pkg/colorutil"
)

// Rotate rotates an image by the given angle in degrees (positive =
// counter-clockwise), expanding the canvas so no content is clipped.
// The uncovered border is filled with white, matching the wall/artwork
// editing pipeline.
func Rotate(img *image.RGBA, angle float64) *image.RGBA {
	if angle == 0 {
		return img
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	center := image.Point{X: width / 2, Y: height / 2}

	matrix := gocv.GetRotationMatrix2D(center, angle, 1.0)
	defer matrix.Close()

	// Expand the output to hold the rotated bounding box.
	cos := math.Abs(matrix.GetDoubleAt(0, 0))
	sin := math.Abs(matrix.GetDoubleAt(0, 1))
	newWidth := int(float64(height)*sin + float64(width)*cos)
	newHeight := int(float64(height)*cos + float64(width)*sin)

	// Re-center the rotation into the enlarged canvas.
	matrix.SetDoubleAt(0, 2, matrix.GetDoubleAt(0, 2)+float64(newWidth)/2-float64(center.X))
	matrix.SetDoubleAt(1, 2, matrix.GetDoubleAt(1, 2)+float64(newHeight)/2-float64(center.Y))

	src := ImageToMat(img)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.WarpAffineWithParams(src, &dst, matrix, image.Point{X: newWidth, Y: newHeight},
		gocv.InterpolationLanczos4, gocv.BorderConstant, colorutil.White)

	return MatToImage(dst)
}
