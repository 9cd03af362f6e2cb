package model

// MatConfig describes the mat board surrounding an artwork. The four border
// widths are independent so off-center ("weighted") matting is possible.
type MatConfig struct {
	TopWidthCm    float64 `json:"top_width_cm"`
	BottomWidthCm float64 `json:"bottom_width_cm"`
	LeftWidthCm   float64 `json:"left_width_cm"`
	RightWidthCm  float64 `json:"right_width_cm"`
	Color         string  `json:"color"`
}

// UniformMat creates a mat with the same border width on all four sides.
func UniformMat(widthCm float64, color string) *MatConfig {
	return &MatConfig{
		TopWidthCm:    widthCm,
		BottomWidthCm: widthCm,
		LeftWidthCm:   widthCm,
		RightWidthCm:  widthCm,
		Color:         color,
	}
}

// ShadowConfig describes one shadow pass: blur radius and offsets are in
// pixels at the current render scale, opacity is 0..1.
type ShadowConfig struct {
	Enabled bool    `json:"enabled"`
	Blur    float64 `json:"blur"`
	Opacity float64 `json:"opacity"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
}

// FrameConfig is the complete framing treatment for an artwork: optional mat,
// frame border, and the two independent shadow descriptors.
type FrameConfig struct {
	Mat *MatConfig `json:"mat,omitempty"`

	FrameWidthCm float64 `json:"frame_width_cm"`
	FrameColor   string  `json:"frame_color"`

	FrameShadow ShadowConfig `json:"frame_shadow"`
	MatShadow   ShadowConfig `json:"mat_shadow"`
}

// DefaultFrameConfig returns a 2cm black frame with both shadows enabled.
func DefaultFrameConfig() *FrameConfig {
	return &FrameConfig{
		FrameWidthCm: 2.0,
		FrameColor:   "#000000",
		FrameShadow: ShadowConfig{
			Enabled: true,
			Blur:    5.0,
			Opacity: 0.3,
			OffsetX: 2.0,
			OffsetY: 2.0,
		},
		MatShadow: ShadowConfig{
			Enabled: true,
			Blur:    3.0,
			Opacity: 0.2,
			OffsetX: 1.0,
			OffsetY: 1.0,
		},
	}
}

// Clone returns a deep copy so templates can be applied to multiple artworks
// without sharing mutable state.
func (c *FrameConfig) Clone() *FrameConfig {
	if c == nil {
		return nil
	}
	copied := *c
	if c.Mat != nil {
		mat := *c.Mat
		copied.Mat = &mat
	}
	return &copied
}

// FrameTemplate is a named, persisted frame configuration reusable across
// artworks.
type FrameTemplate struct {
	TemplateID  string      `json:"template_id"`
	Name        string      `json:"name"`
	FrameConfig FrameConfig `json:"frame_config"`
	CreatedDate string      `json:"created_date"`
}

// NewFrameTemplate creates a timestamped template from a frame configuration.
func NewFrameTemplate(templateID, name string, cfg FrameConfig) *FrameTemplate {
	return &FrameTemplate{
		TemplateID:  templateID,
		Name:        name,
		FrameConfig: cfg,
		CreatedDate: nowISO(),
	}
}
