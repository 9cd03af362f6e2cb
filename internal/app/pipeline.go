package app

import (
	"fmt"

	"gallery-wall/internal/imaging"
	"gallery-wall/internal/model"
	"gallery-wall/internal/rectify"
	"gallery-wall/pkg/geometry"
)

// RebuildArtworkImage regenerates an artwork's derived pixel buffer from its
// source image and stored edit parameters, in order: perspective correction,
// crop, rotation, flip, white balance. The buffer is never a source of truth;
// calling this after any parameter change keeps it consistent.
func RebuildArtworkImage(a *model.Artwork) error {
	img, err := imaging.Load(a.OriginalImagePath)
	if err != nil {
		return fmt.Errorf("artwork %s: %w", a.ArtID, err)
	}

	if len(a.CornerPoints) == 4 {
		ordered := geometry.OrderCorners(a.CornerPoints)
		w, h := rectify.CorrectedDimensions(a.RealWidthCm, a.RealHeightCm, 0)
		img, err = rectify.Rectify(img, ordered[:], w, h)
		if err != nil {
			return fmt.Errorf("artwork %s: %w", a.ArtID, err)
		}
	}

	if a.CropBox != nil {
		img = imaging.Crop(img, *a.CropBox)
	}

	if a.RotationAngle != 0 {
		img = imaging.Rotate(img, a.RotationAngle)
	}

	if a.Flipped {
		img = imaging.FlipHorizontal(img)
	}

	if wb := a.WhiteBalance; wb != nil && !wb.IsNeutral() {
		img = imaging.AdjustWhiteBalance(img, wb.Temperature, wb.Tint,
			wb.Brightness, wb.Contrast, wb.Saturation)
	}

	a.EditedImage = img
	return nil
}

// RebuildWallImage regenerates a photo wall's corrected buffer from its
// source image and corner points. Template walls need no buffer.
func RebuildWallImage(w *model.Wall) error {
	if w.Type != model.WallTypePhoto {
		return nil
	}
	img, err := imaging.Load(w.OriginalImagePath)
	if err != nil {
		return fmt.Errorf("wall %s: %w", w.WallID, err)
	}

	if len(w.CornerPoints) == 4 {
		ordered := geometry.OrderCorners(w.CornerPoints)
		outW, outH := rectify.CorrectedDimensions(w.RealWidthCm, w.RealHeightCm, 0)
		result, err := rectify.RectifyFullImage(img, ordered[:], outW, outH)
		if err != nil {
			return fmt.Errorf("wall %s: %w", w.WallID, err)
		}
		bounds := result.RectBounds
		w.CorrectedImage = imaging.Crop(result.Image, bounds)
		w.RectBounds = &bounds
		return nil
	}

	// No corner points yet: use the photo as-is, bounded to the same size
	// cap a rectified wall would get.
	w.CorrectedImage = imaging.ResizeToFit(img, 2000)
	return nil
}
