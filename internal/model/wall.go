// Package model defines the persistent scene entities: walls, artworks,
// frame configurations, and workspaces. Entities are shared by reference
// across the application; only the placement engine and editors mutate them.
package model

import (
	"image"
	"time"

	"gallery-wall/pkg/colorutil"
	"gallery-wall/pkg/geometry"
	"gallery-wall/pkg/units"
)

// Wall types.
const (
	WallTypeTemplate = "template"
	WallTypePhoto    = "photo"
)

// Wall represents a wall surface for gallery arrangement. A template wall is
// backed by a flat color; a photo wall by a perspective-corrected image.
// Exactly one of the two is meaningful per Type.
type Wall struct {
	WallID string `json:"wall_id"`
	Type   string `json:"type"`

	// Photo walls
	OriginalImagePath string             `json:"original_image_path,omitempty"`
	CornerPoints      []geometry.Point2D `json:"corner_points,omitempty"`
	RectBounds        *geometry.RectInt  `json:"rect_bounds,omitempty"`

	// Template walls
	Color string `json:"color,omitempty"`

	RealWidthCm      float64 `json:"real_width_cm"`
	RealHeightCm     float64 `json:"real_height_cm"`
	RealWidthInches  float64 `json:"real_width_inches"`
	RealHeightInches float64 `json:"real_height_inches"`

	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`

	// Derived pixel buffer for photo walls; rebuilt from the original image
	// and corner points, never serialized.
	CorrectedImage *image.RGBA `json:"-"`
}

// NewTemplateWall creates a color-backed wall. The color string is
// normalized to canonical "#RRGGBB" form; unparseable input becomes white.
func NewTemplateWall(wallID, color string, widthCm, heightCm float64) *Wall {
	now := nowISO()
	w := &Wall{
		WallID:       wallID,
		Type:         WallTypeTemplate,
		Color:        colorutil.FormatHex(colorutil.ParseHex(color)),
		CreatedDate:  now,
		ModifiedDate: now,
	}
	w.UpdateDimensionsFromCm(widthCm, heightCm)
	return w
}

// NewPhotoWall creates an image-backed wall. The corrected image is produced
// separately by rectification.
func NewPhotoWall(wallID, imagePath string, widthCm, heightCm float64) *Wall {
	now := nowISO()
	w := &Wall{
		WallID:            wallID,
		Type:              WallTypePhoto,
		OriginalImagePath: imagePath,
		CreatedDate:       now,
		ModifiedDate:      now,
	}
	w.UpdateDimensionsFromCm(widthCm, heightCm)
	return w
}

// UpdateDimensionsFromCm sets the cm dimensions and derives inches.
func (w *Wall) UpdateDimensionsFromCm(widthCm, heightCm float64) {
	w.RealWidthCm = widthCm
	w.RealHeightCm = heightCm
	w.RealWidthInches = units.CmToInches(widthCm)
	w.RealHeightInches = units.CmToInches(heightCm)
	w.ModifiedDate = nowISO()
}

// UpdateDimensionsFromInches sets the inch dimensions and derives cm.
func (w *Wall) UpdateDimensionsFromInches(widthInches, heightInches float64) {
	w.RealWidthInches = widthInches
	w.RealHeightInches = heightInches
	w.RealWidthCm = units.InchesToCm(widthInches)
	w.RealHeightCm = units.InchesToCm(heightInches)
	w.ModifiedDate = nowISO()
}

// SetRectification records the corner points and rectified image produced by
// the perspective rectifier.
func (w *Wall) SetRectification(corners []geometry.Point2D, corrected *image.RGBA, rectBounds geometry.RectInt) {
	w.CornerPoints = corners
	w.CorrectedImage = corrected
	w.RectBounds = &rectBounds
	w.ModifiedDate = nowISO()
}

func nowISO() string {
	return time.Now().Format(time.RFC3339)
}
