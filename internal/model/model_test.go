package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-wall/pkg/geometry"
)

func TestWallDimensionConsistency(t *testing.T) {
	w := NewTemplateWall("w1", "#F5F5F0", 300, 250)
	assert.InDelta(t, 300/2.54, w.RealWidthInches, 1e-9)

	w.UpdateDimensionsFromInches(120, 96)
	assert.InDelta(t, 120*2.54, w.RealWidthCm, 1e-9)
	assert.InDelta(t, 96*2.54, w.RealHeightCm, 1e-9)
}

func TestWallJSONRoundTrip(t *testing.T) {
	w := NewPhotoWall("w1", "/photos/wall.jpg", 300, 250)
	w.CornerPoints = []geometry.Point2D{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}}
	w.RectBounds = &geometry.RectInt{X: 10, Y: 10, Width: 100, Height: 80}

	data, err := json.Marshal(w)
	require.NoError(t, err)

	var back Wall
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *w, back)
}

func TestNewTemplateWallNormalizesColor(t *testing.T) {
	w := NewTemplateWall("w1", "#f5f5f0", 300, 250)
	assert.Equal(t, "#F5F5F0", w.Color)

	// Unparseable input falls back to white rather than persisting garbage.
	w = NewTemplateWall("w2", "beige", 300, 250)
	assert.Equal(t, "#FFFFFF", w.Color)
}

func TestTemplateWallOmitsPhotoFields(t *testing.T) {
	w := NewTemplateWall("w1", "#FFFFFF", 300, 250)
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "original_image_path")
	assert.NotContains(t, string(data), "corner_points")
	assert.NotContains(t, string(data), "rect_bounds")
}

func TestArtworkJSONRoundTrip(t *testing.T) {
	a := NewArtwork("a1", "Poster", "/art/poster.png")
	a.SetWhiteBalance(WhiteBalance{Temperature: 10, Contrast: 1.2, Saturation: 1})
	a.SetFrameConfig(DefaultFrameConfig())
	a.CropBox = &geometry.RectInt{X: 5, Y: 5, Width: 50, Height: 40}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var back Artwork
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a.ArtID, back.ArtID)
	assert.Equal(t, a.WhiteBalance, back.WhiteBalance)
	assert.Equal(t, a.FrameConfig, back.FrameConfig)
	assert.Equal(t, a.CropBox, back.CropBox)
	assert.Equal(t, a.RealWidthCm, back.RealWidthCm)
	assert.Equal(t, a.CreatedDate, back.CreatedDate)
}

func TestNeutralWhiteBalanceStoredAsNil(t *testing.T) {
	a := NewArtwork("a1", "Poster", "/art/poster.png")
	a.SetWhiteBalance(NeutralWhiteBalance())
	assert.Nil(t, a.WhiteBalance)

	a.SetWhiteBalance(WhiteBalance{Brightness: 5, Contrast: 1, Saturation: 1})
	require.NotNil(t, a.WhiteBalance)

	a.SetWhiteBalance(NeutralWhiteBalance())
	assert.Nil(t, a.WhiteBalance)
}

func TestArtworkContentVersion(t *testing.T) {
	a := NewArtwork("a1", "Poster", "/art/poster.png")
	v := a.ContentVersion()
	a.SetFrameConfig(DefaultFrameConfig())
	assert.Greater(t, a.ContentVersion(), v)
	a.Touch()
	assert.Greater(t, a.ContentVersion(), v+1)
}

func TestArtworkToggleFlip(t *testing.T) {
	a := NewArtwork("a1", "Poster", "/art/poster.png")
	v := a.ContentVersion()

	a.ToggleFlip()
	assert.True(t, a.Flipped)
	assert.Greater(t, a.ContentVersion(), v, "flip invalidates cached renders")

	a.ToggleFlip()
	assert.False(t, a.Flipped)

	// The unflipped state serializes without the field.
	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "flipped")

	a.ToggleFlip()
	data, err = json.Marshal(a)
	require.NoError(t, err)
	var back Artwork
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Flipped)
}

func TestFrameConfigClone(t *testing.T) {
	cfg := DefaultFrameConfig()
	cfg.Mat = UniformMat(5, "#FFFFF0")

	clone := cfg.Clone()
	clone.Mat.TopWidthCm = 99
	clone.FrameColor = "#123456"

	assert.Equal(t, 5.0, cfg.Mat.TopWidthCm)
	assert.Equal(t, "#000000", cfg.FrameColor)
}

func TestWorkspaceAddRemove(t *testing.T) {
	ws := NewWorkspace("ws1", "Draft", "w1")

	p1 := ws.AddArtwork("a1", 10, 20)
	p2 := ws.AddArtwork("a2", 30, 40)
	assert.Equal(t, 0, p1.ZIndex)
	assert.Equal(t, 1, p2.ZIndex)

	ws.RemoveArtwork("a1")
	require.Len(t, ws.PlacedArtworks, 1)
	assert.Equal(t, "a2", ws.PlacedArtworks[0].ArtworkID)
}

func TestWorkspaceDuplicateIsDeep(t *testing.T) {
	ws := NewWorkspace("ws1", "Draft", "w1")
	ws.AddArtwork("a1", 10, 20)
	ws.Guidelines = append(ws.Guidelines, Guideline{Orientation: GuidelineVertical, Position: 50})

	dup := ws.Duplicate("ws2", "Copy")
	dup.PlacedArtworks[0].X = 99
	dup.Guidelines[0].Position = 60

	assert.Equal(t, 10.0, ws.PlacedArtworks[0].X)
	assert.Equal(t, 50.0, ws.Guidelines[0].Position)
	assert.Equal(t, "ws2", dup.WorkspaceID)
}

func TestWorkspaceJSONRoundTrip(t *testing.T) {
	ws := NewWorkspace("ws1", "Draft", "w1")
	ws.AddArtwork("a1", 12.5, 34.25)
	ws.Guidelines = append(ws.Guidelines, Guideline{Orientation: GuidelineHorizontal, Position: 120})
	ws.SnapToGrid = true
	ws.ZoomLevel = 1.25

	data, err := json.Marshal(ws)
	require.NoError(t, err)

	var back Workspace
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back.PlacedArtworks, 1)
	assert.Equal(t, *ws.PlacedArtworks[0], *back.PlacedArtworks[0])
	assert.Equal(t, ws.Guidelines, back.Guidelines)
	assert.Equal(t, ws.ZoomLevel, back.ZoomLevel)
	assert.Equal(t, ws.SnapToleranceCm, back.SnapToleranceCm)
}
