// Package units provides unit conversion and physical-to-pixel scaling.
//
// All real-world measurements in the application are stored in centimeters;
// inches are always derived through the exact factor 2.54. Pixel geometry is
// derived from a single scale factor (pixels per cm) computed once per render
// pass so width and height scale uniformly.
package units

import "math"

// CmPerInch is the exact conversion factor between centimeters and inches.
const CmPerInch = 2.54

// CmToInches converts centimeters to inches.
func CmToInches(cm float64) float64 {
	return cm / CmPerInch
}

// InchesToCm converts inches to centimeters.
func InchesToCm(inches float64) float64 {
	return inches * CmPerInch
}

// RealToPixels converts a real-world cm measurement to pixels at the given
// scale factor (pixels per cm).
func RealToPixels(cm, scale float64) int {
	return int(math.Round(cm * scale))
}

// PixelsToReal converts a pixel measurement back to real-world cm.
// A zero or negative scale returns 0 rather than dividing by zero.
func PixelsToReal(pixels, scale float64) float64 {
	if scale <= 0 {
		return 0.0
	}
	return pixels / scale
}

// ScaleFactor computes the pixels-per-cm scale for a canvas of the given
// width showing a wall of the given real width at the given zoom level.
// A zero or negative wall width returns 1.0 as a safe default.
func ScaleFactor(canvasWidthPx int, wallWidthCm, zoom float64) float64 {
	if wallWidthCm <= 0 {
		return 1.0
	}
	return (float64(canvasWidthPx) / wallWidthCm) * zoom
}

// ValidateDimension reports whether a dimension lies within reasonable
// physical bounds.
func ValidateDimension(value, minVal, maxVal float64) bool {
	return value >= minVal && value <= maxVal
}

// AspectRatio returns width/height, or 1.0 when height is not positive.
func AspectRatio(width, height float64) float64 {
	if height <= 0 {
		return 1.0
	}
	return width / height
}
