package model

// Guideline orientations.
const (
	GuidelineHorizontal = "horizontal"
	GuidelineVertical   = "vertical"
)

// Guideline is a user-placed snap reference line at a fixed real-world
// coordinate: a horizontal guide holds a y position, a vertical guide an x.
type Guideline struct {
	Orientation string  `json:"orientation"`
	Position    float64 `json:"position"`
}

// PlacedArtwork is one artwork instance positioned on a wall. Position is in
// wall-relative centimeters, anchored top-left. Rotation is reserved and
// currently always 0.
type PlacedArtwork struct {
	ArtworkID string  `json:"artwork_id"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rotation  float64 `json:"rotation"`
	ZIndex    int     `json:"z_index"`
}

// Clone returns a copy of the placement.
func (p *PlacedArtwork) Clone() *PlacedArtwork {
	copied := *p
	return &copied
}

// Workspace is one saved arrangement: placed artwork plus grid, guide, snap,
// and view settings, referencing a single wall. A workspace exclusively owns
// its placement list; walls and artworks are shared by id.
type Workspace struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	WallID      string `json:"wall_id"`

	PlacedArtworks []*PlacedArtwork `json:"placed_artworks"`

	GridEnabled   bool    `json:"grid_enabled"`
	GridSpacingCm float64 `json:"grid_spacing_cm"`

	Guidelines      []Guideline `json:"guidelines"`
	SnapToGrid      bool        `json:"snap_to_grid"`
	SnapToGuides    bool        `json:"snap_to_guides"`
	SnapToleranceCm float64     `json:"snap_tolerance_cm"`

	// View state, persisted so switching workspaces restores the exact view.
	ShowMeasurements      bool    `json:"show_measurements"`
	ShowSpacingDimensions bool    `json:"show_spacing_dimensions"`
	ZoomLevel             float64 `json:"zoom_level"`
	PanOffsetX            float64 `json:"pan_offset_x"`
	PanOffsetY            float64 `json:"pan_offset_y"`

	CreatedDate  string `json:"created_date"`
	ModifiedDate string `json:"modified_date"`
}

// NewWorkspace creates a workspace with default grid and snap settings.
func NewWorkspace(workspaceID, name, wallID string) *Workspace {
	now := nowISO()
	return &Workspace{
		WorkspaceID:     workspaceID,
		Name:            name,
		WallID:          wallID,
		PlacedArtworks:  []*PlacedArtwork{},
		Guidelines:      []Guideline{},
		GridSpacingCm:   10.0,
		SnapToGuides:    true,
		SnapToleranceCm: 1.0,
		ZoomLevel:       1.0,
		CreatedDate:     now,
		ModifiedDate:    now,
	}
}

// AddArtwork places an artwork at the given wall position. The new placement
// goes on top of the current paint order.
func (w *Workspace) AddArtwork(artworkID string, x, y float64) *PlacedArtwork {
	placed := &PlacedArtwork{
		ArtworkID: artworkID,
		X:         x,
		Y:         y,
		ZIndex:    len(w.PlacedArtworks),
	}
	w.PlacedArtworks = append(w.PlacedArtworks, placed)
	w.ModifiedDate = nowISO()
	return placed
}

// RemoveArtwork removes every placement referencing the given artwork id.
func (w *Workspace) RemoveArtwork(artworkID string) {
	kept := w.PlacedArtworks[:0]
	for _, pa := range w.PlacedArtworks {
		if pa.ArtworkID != artworkID {
			kept = append(kept, pa)
		}
	}
	w.PlacedArtworks = kept
	w.ModifiedDate = nowISO()
}

// RemovePlacement removes a single placement instance.
func (w *Workspace) RemovePlacement(placed *PlacedArtwork) {
	for i, pa := range w.PlacedArtworks {
		if pa == placed {
			w.PlacedArtworks = append(w.PlacedArtworks[:i], w.PlacedArtworks[i+1:]...)
			w.ModifiedDate = nowISO()
			return
		}
	}
}

// Duplicate returns a deep copy of the workspace under a new identity,
// including copies of every placement (workspaces never share placement
// instances).
func (w *Workspace) Duplicate(workspaceID, name string) *Workspace {
	copied := *w
	copied.WorkspaceID = workspaceID
	copied.Name = name
	now := nowISO()
	copied.CreatedDate = now
	copied.ModifiedDate = now

	copied.PlacedArtworks = make([]*PlacedArtwork, len(w.PlacedArtworks))
	for i, pa := range w.PlacedArtworks {
		copied.PlacedArtworks[i] = pa.Clone()
	}
	copied.Guidelines = append([]Guideline(nil), w.Guidelines...)
	return &copied
}
