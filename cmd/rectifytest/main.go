// Command rectifytest runs perspective rectification on an image given four
// corner points and writes the corrected output.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gallery-wall/internal/imaging"
	"gallery-wall/internal/rectify"
	"gallery-wall/pkg/geometry"
	"gallery-wall/pkg/units"
)

func main() {
	input := flag.String("i", "", "Path to input image")
	output := flag.String("o", "rectified.png", "Path to output PNG")
	cornersArg := flag.String("c", "", "Corner points as x1,y1,x2,y2,x3,y3,x4,y4 (any order)")
	widthCm := flag.Float64("w", 0, "Real width of the surface in cm")
	heightCm := flag.Float64("h", 0, "Real height of the surface in cm")
	maxSize := flag.Int("max", 0, "Max output dimension in pixels (0 = default)")
	fullImage := flag.Bool("full", false, "Keep the full transformed image instead of cropping")
	flag.Parse()

	if *input == "" || *cornersArg == "" {
		fmt.Println("Usage: rectifytest -i <image> -c x1,y1,...,x4,y4 [-w <cm> -h <cm>] [-full] [-o <out.png>]")
		os.Exit(1)
	}

	corners, err := parseCorners(*cornersArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad corner points: %v\n", err)
		os.Exit(1)
	}

	for _, dim := range []float64{*widthCm, *heightCm} {
		if dim != 0 && !units.ValidateDimension(dim, 1, 10000) {
			fmt.Fprintf(os.Stderr, "Dimension %.1f cm out of range (1-10000)\n", dim)
			os.Exit(1)
		}
	}

	img, err := imaging.Load(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("=== Loaded %s (%dx%d) ===\n", *input, img.Bounds().Dx(), img.Bounds().Dy())

	quad := geometry.OrderCorners(corners)
	ordered := quad[:]
	if !geometry.IsConvex(ordered) {
		fmt.Println("Warning: corner points do not form a convex quadrilateral")
	}

	outW, outH := rectify.CorrectedDimensions(*widthCm, *heightCm, *maxSize)
	fmt.Printf("Output size: %dx%d\n", outW, outH)

	if *fullImage {
		result, err := rectify.RectifyFullImage(img, ordered, outW, outH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rectification failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rect bounds in padded output: (%d,%d) %dx%d\n",
			result.RectBounds.X, result.RectBounds.Y, result.RectBounds.Width, result.RectBounds.Height)
		if err := imaging.SavePNG(result.Image, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save: %v\n", err)
			os.Exit(1)
		}
	} else {
		out, err := rectify.Rectify(img, ordered, outW, outH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rectification failed: %v\n", err)
			os.Exit(1)
		}
		if err := imaging.SavePNG(out, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Wrote %s\n", *output)
}

func parseCorners(s string) ([]geometry.Point2D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 8 {
		return nil, fmt.Errorf("expected 8 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 8)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		vals[i] = v
	}
	corners := make([]geometry.Point2D, 4)
	for i := 0; i < 4; i++ {
		corners[i] = geometry.Point2D{X: vals[i*2], Y: vals[i*2+1]}
	}
	return corners, nil
}
