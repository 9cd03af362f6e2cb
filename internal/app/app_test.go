package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-wall/internal/history"
	"gallery-wall/internal/model"
)

func seededState() *State {
	s := NewState()
	s.AddWall(model.NewTemplateWall("w1", "#F5F5F0", 300, 250))
	s.AddArtwork(model.NewArtwork("a1", "Poster", "/art/poster.png"))
	s.AddArtwork(model.NewArtwork("a2", "Print", "/art/print.png"))

	ws := model.NewWorkspace("ws1", "Draft", "w1")
	ws.AddArtwork("a1", 10, 10)
	ws.AddArtwork("a2", 60, 10)
	s.AddWorkspace(ws)
	s.AddWorkspace(model.NewWorkspace("ws2", "Alt", "w1"))
	return s
}

func TestFirstEntitiesBecomeCurrent(t *testing.T) {
	s := seededState()
	assert.Equal(t, "w1", s.CurrentWall().WallID)
	assert.Equal(t, "ws1", s.CurrentWorkspace().WorkspaceID)
}

func TestRemoveArtworkCascades(t *testing.T) {
	s := seededState()
	s.RemoveArtwork("a1")

	assert.Nil(t, s.Artwork("a1"))
	for _, pa := range s.Workspace("ws1").PlacedArtworks {
		assert.NotEqual(t, "a1", pa.ArtworkID)
	}
	assert.Len(t, s.Workspace("ws1").PlacedArtworks, 1)
}

func TestSwitchingWorkspaceClearsHistory(t *testing.T) {
	s := seededState()
	s.History.Execute(history.Command{Name: "noop", Do: func() {}, Undo: func() {}})
	require.True(t, s.History.CanUndo())

	require.NoError(t, s.SetCurrentWorkspace("ws2"))
	assert.False(t, s.History.CanUndo())

	// Re-selecting the current workspace is not a switch.
	s.History.Execute(history.Command{Name: "noop", Do: func() {}, Undo: func() {}})
	require.NoError(t, s.SetCurrentWorkspace("ws2"))
	assert.True(t, s.History.CanUndo())

	assert.Error(t, s.SetCurrentWorkspace("missing"))
}

func TestTouchArtworkInvalidatesRenders(t *testing.T) {
	s := seededState()
	a := s.Artwork("a1")
	v := a.ContentVersion()

	s.TouchArtwork("a1")
	assert.Greater(t, a.ContentVersion(), v)

	// Unknown ids are ignored.
	s.TouchArtwork("missing")
}

func TestEventListeners(t *testing.T) {
	s := NewState()
	var events []string
	s.On(EventArtworkChanged, func(event, id string) {
		events = append(events, event+":"+id)
	})

	s.AddArtwork(model.NewArtwork("a1", "Poster", ""))
	s.RemoveArtwork("a1")
	assert.Equal(t, []string{"artwork_changed:a1", "artwork_changed:a1"}, events)
}

func TestProjectRoundTrip(t *testing.T) {
	s := seededState()
	wall := s.Wall("w1")
	ws := s.Workspace("ws1")
	art := s.Artwork("a1")
	art.SetFrameConfig(model.DefaultFrameConfig())

	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, s.SaveProject(path))

	loaded := NewState()
	require.NoError(t, loaded.LoadProject(path))

	gotWall := loaded.Wall("w1")
	require.NotNil(t, gotWall)
	assert.Equal(t, *wall, *gotWall)

	gotArt := loaded.Artwork("a1")
	require.NotNil(t, gotArt)
	assert.Equal(t, art.FrameConfig, gotArt.FrameConfig)
	assert.Equal(t, art.RealWidthCm, gotArt.RealWidthCm)
	assert.Equal(t, art.CreatedDate, gotArt.CreatedDate)

	gotWs := loaded.Workspace("ws1")
	require.NotNil(t, gotWs)
	require.Len(t, gotWs.PlacedArtworks, 2)
	assert.Equal(t, *ws.PlacedArtworks[0], *gotWs.PlacedArtworks[0])

	// The saved current wall loads as element 0 and stays current.
	assert.Equal(t, "w1", loaded.CurrentWall().WallID)
	require.NotNil(t, loaded.CurrentWorkspace())
}

func TestLoadProjectMissingFile(t *testing.T) {
	s := NewState()
	assert.Error(t, s.LoadProject(filepath.Join(t.TempDir(), "nope.json")))
}

func TestDeleteWorkspacePromotesAnother(t *testing.T) {
	s := seededState()
	s.DeleteWorkspace("ws1")
	require.NotNil(t, s.CurrentWorkspace())
	assert.Equal(t, "ws2", s.CurrentWorkspace().WorkspaceID)
}
