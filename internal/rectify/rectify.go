// Package rectify corrects the perspective of photographed surfaces (walls,
// artwork) given four user-supplied corner points.
package rectify

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"gallery-wall/internal/imaging"
	"gallery-wall/pkg/colorutil"
	"gallery-wall/pkg/geometry"
	"gallery-wall/pkg/units"
)

// minQuadArea is the smallest enclosed area (px^2) accepted for a corner
// quadrilateral; anything smaller is treated as collinear input.
const minQuadArea = 1.0

// fullImagePadding is the fixed margin added around the warped content in
// full-image mode.
const fullImagePadding = 10

// maxOutputSize caps the long side of a rectified output computed from
// physical dimensions.
const maxOutputSize = 2000

// FullImageResult holds the output of full-image rectification: the warped
// buffer with surrounding context preserved, and the location of the
// rectified target rectangle within it.
type FullImageResult struct {
	Image      *image.RGBA
	RectBounds geometry.RectInt
}

// ValidateCorners checks that the given points can produce a meaningful
// perspective transform: exactly four points whose quadrilateral encloses a
// non-degenerate area. Callers must validate before transforming.
func ValidateCorners(points []geometry.Point2D) error {
	if len(points) != 4 {
		return fmt.Errorf("exactly 4 corner points required, got %d", len(points))
	}
	if area := geometry.QuadArea(points); area < minQuadArea {
		return fmt.Errorf("corner points are collinear or nearly so (area %.2f)", area)
	}
	return nil
}

// Rectify warps the quadrilateral described by corners onto an axis-aligned
// outWidth x outHeight rectangle, discarding everything outside it. Corners
// must be ordered top-left, top-right, bottom-right, bottom-left (see
// geometry.OrderCorners for unordered input).
func Rectify(img *image.RGBA, corners []geometry.Point2D, outWidth, outHeight int) (*image.RGBA, error) {
	if err := ValidateCorners(corners); err != nil {
		return nil, err
	}
	if outWidth < 1 || outHeight < 1 {
		return nil, fmt.Errorf("invalid output size %dx%d", outWidth, outHeight)
	}

	var src [4]geometry.Point2D
	copy(src[:], corners)

	h, err := ComputeHomography(src, RectCorners(float64(outWidth), float64(outHeight)))
	if err != nil {
		return nil, err
	}

	return warpPerspective(img, h, outWidth, outHeight), nil
}

// RectifyFullImage applies the same corner-to-rectangle transform to the
// entire source image instead of cropping to the rectangle. The output is
// enlarged to bound every transformed source corner plus a fixed padding
// margin, the transform is post-composed with a translation so all content
// lands in positive coordinates, and out-of-source background is filled
// white. The returned RectBounds locates the rectified target rectangle
// within the padded output.
func RectifyFullImage(img *image.RGBA, corners []geometry.Point2D, outWidth, outHeight int) (*FullImageResult, error) {
	if err := ValidateCorners(corners); err != nil {
		return nil, err
	}
	if outWidth < 1 || outHeight < 1 {
		return nil, fmt.Errorf("invalid output size %dx%d", outWidth, outHeight)
	}

	var src [4]geometry.Point2D
	copy(src[:], corners)

	h, err := ComputeHomography(src, RectCorners(float64(outWidth), float64(outHeight)))
	if err != nil {
		return nil, err
	}

	// Where do the source image corners land?
	bounds := img.Bounds()
	w := float64(bounds.Dx())
	ht := float64(bounds.Dy())
	transformed := h.ApplyAll([]geometry.Point2D{
		{X: 0, Y: 0}, {X: w - 1, Y: 0}, {X: w - 1, Y: ht - 1}, {X: 0, Y: ht - 1},
	})
	box := geometry.BoundingBox(transformed)

	// The target rectangle itself is always content too; degenerate camera
	// angles can land source corners inside it.
	box = box.Union(geometry.NewRect(0, 0, float64(outWidth), float64(outHeight)))

	tx := float64(fullImagePadding) - box.X
	ty := float64(fullImagePadding) - box.Y
	shifted := geometry.TranslationHomography(tx, ty).Mul(h)

	paddedW := int(math.Ceil(box.Width)) + fullImagePadding*2
	paddedH := int(math.Ceil(box.Height)) + fullImagePadding*2

	out := warpPerspective(img, shifted, paddedW, paddedH)

	return &FullImageResult{
		Image: out,
		RectBounds: geometry.RectInt{
			X:      int(math.Round(tx)),
			Y:      int(math.Round(ty)),
			Width:  outWidth,
			Height: outHeight,
		},
	}, nil
}

// CorrectedDimensions computes the output pixel size for a rectified surface
// from its real-world aspect ratio, with the long side capped at maxSize
// (maxOutputSize when maxSize <= 0).
func CorrectedDimensions(realWidthCm, realHeightCm float64, maxSize int) (int, int) {
	if maxSize <= 0 {
		maxSize = maxOutputSize
	}
	if realWidthCm <= 0 || realHeightCm <= 0 {
		return maxSize, maxSize
	}

	aspect := units.AspectRatio(realWidthCm, realHeightCm)
	if aspect >= 1.0 {
		return maxSize, int(float64(maxSize) / aspect)
	}
	return int(float64(maxSize) * aspect), maxSize
}

// warpPerspective resamples the source image through the homography with
// Lanczos interpolation, filling out-of-source pixels with white.
func warpPerspective(img *image.RGBA, h geometry.Homography, width, height int) *image.RGBA {
	transformMat := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV64F)
	defer transformMat.Close()
	m := h.ToMatrix()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			transformMat.SetDoubleAt(r, c, m[r][c])
		}
	}

	src := imaging.ImageToMat(img)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.WarpPerspectiveWithParams(src, &dst, transformMat, image.Point{X: width, Y: height},
		gocv.InterpolationLanczos4, gocv.BorderConstant, colorutil.White)

	return imaging.MatToImage(dst)
}
