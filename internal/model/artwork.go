package model

import (
	"image"

	"gallery-wall/pkg/geometry"
	"gallery-wall/pkg/units"
)

// WhiteBalance holds the color adjustment parameters for an artwork. Each
// parameter is independent and composable; the neutral values leave the image
// untouched. Temperature, tint, and brightness are ±100 offsets; contrast and
// saturation are multipliers.
type WhiteBalance struct {
	Temperature float64 `json:"temperature"`
	Tint        float64 `json:"tint"`
	Brightness  float64 `json:"brightness"`
	Contrast    float64 `json:"contrast"`
	Saturation  float64 `json:"saturation"`
}

// NeutralWhiteBalance returns the no-op parameter set.
func NeutralWhiteBalance() WhiteBalance {
	return WhiteBalance{Contrast: 1.0, Saturation: 1.0}
}

// IsNeutral reports whether applying these parameters changes nothing.
func (wb WhiteBalance) IsNeutral() bool {
	return wb.Temperature == 0 && wb.Tint == 0 && wb.Brightness == 0 &&
		wb.Contrast == 1.0 && wb.Saturation == 1.0
}

// Artwork represents an individual artwork piece. The rendered pixel buffer
// is a derived artifact of (source image, corner points, crop box, white
// balance, frame config) and is never a stored source of truth.
type Artwork struct {
	ArtID string `json:"art_id"`
	Name  string `json:"name"`

	OriginalImagePath string `json:"original_image_path"`

	// Editing parameters, kept so edits can be revisited.
	CornerPoints  []geometry.Point2D `json:"corner_points,omitempty"`
	CropBox       *geometry.RectInt  `json:"crop_box,omitempty"`
	WhiteBalance  *WhiteBalance      `json:"white_balance,omitempty"`
	RotationAngle float64            `json:"rotation_angle"`
	Flipped       bool               `json:"flipped,omitempty"`

	RealWidthCm      float64 `json:"real_width_cm"`
	RealHeightCm     float64 `json:"real_height_cm"`
	RealWidthInches  float64 `json:"real_width_inches"`
	RealHeightInches float64 `json:"real_height_inches"`

	FrameConfig *FrameConfig `json:"frame_config,omitempty"`

	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`

	// Derived, cacheable edited buffer (corrected, cropped, adjusted).
	EditedImage *image.RGBA `json:"-"`

	// Bumped on every content-affecting edit; feeds the render cache key.
	contentVersion int
}

// NewArtwork creates an artwork with the default 20x25 cm dimensions.
func NewArtwork(artID, name, imagePath string) *Artwork {
	now := nowISO()
	a := &Artwork{
		ArtID:             artID,
		Name:              name,
		OriginalImagePath: imagePath,
		CreatedDate:       now,
		ModifiedDate:      now,
	}
	a.UpdateDimensionsFromCm(20.0, 25.0)
	return a
}

// UpdateDimensionsFromCm sets the cm dimensions and derives inches.
func (a *Artwork) UpdateDimensionsFromCm(widthCm, heightCm float64) {
	a.RealWidthCm = widthCm
	a.RealHeightCm = heightCm
	a.RealWidthInches = units.CmToInches(widthCm)
	a.RealHeightInches = units.CmToInches(heightCm)
	a.markEdited()
}

// UpdateDimensionsFromInches sets the inch dimensions and derives cm.
func (a *Artwork) UpdateDimensionsFromInches(widthInches, heightInches float64) {
	a.RealWidthInches = widthInches
	a.RealHeightInches = heightInches
	a.RealWidthCm = units.InchesToCm(widthInches)
	a.RealHeightCm = units.InchesToCm(heightInches)
	a.markEdited()
}

// ToggleFlip mirrors the artwork horizontally.
func (a *Artwork) ToggleFlip() {
	a.Flipped = !a.Flipped
	a.markEdited()
}

// SetFrameConfig replaces the frame configuration.
func (a *Artwork) SetFrameConfig(cfg *FrameConfig) {
	a.FrameConfig = cfg
	a.markEdited()
}

// SetWhiteBalance replaces the color adjustment parameters. A neutral set is
// stored as nil so serialized artworks omit the field.
func (a *Artwork) SetWhiteBalance(wb WhiteBalance) {
	if wb.IsNeutral() {
		a.WhiteBalance = nil
	} else {
		copied := wb
		a.WhiteBalance = &copied
	}
	a.markEdited()
}

// ContentVersion returns the edit counter used to key derived render caches.
func (a *Artwork) ContentVersion() int {
	return a.contentVersion
}

// Touch bumps the content version, invalidating cached renders.
func (a *Artwork) Touch() {
	a.markEdited()
}

func (a *Artwork) markEdited() {
	a.contentVersion++
	a.ModifiedDate = nowISO()
}
