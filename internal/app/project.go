package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gallery-wall/internal/model"
)

// projectVersion is written to every saved project; loading tolerates any
// version and relies on field-level compatibility.
const projectVersion = "1.0"

// projectFile is the on-disk project document. Entities serialize exactly
// their model fields; derived pixel buffers are never persisted.
type projectFile struct {
	Version    string             `json:"version"`
	SavedDate  string             `json:"saved_date"`
	Walls      []*model.Wall      `json:"walls"`
	Artworks   []*model.Artwork   `json:"artworks"`
	Workspaces []*model.Workspace `json:"workspaces"`
}

// SaveProject writes the full scene model to a JSON project file.
func (s *State) SaveProject(path string) error {
	s.mu.RLock()
	doc := projectFile{
		Version:    projectVersion,
		SavedDate:  time.Now().Format(time.RFC3339),
		Walls:      make([]*model.Wall, 0, len(s.walls)),
		Artworks:   make([]*model.Artwork, 0, len(s.artworks)),
		Workspaces: make([]*model.Workspace, 0, len(s.workspaces)),
	}
	// Current wall first; loading uses element 0 as the active wall.
	if w := s.walls[s.currentWallID]; w != nil {
		doc.Walls = append(doc.Walls, w)
	}
	for id, w := range s.walls {
		if id != s.currentWallID {
			doc.Walls = append(doc.Walls, w)
		}
	}
	for _, a := range s.artworks {
		doc.Artworks = append(doc.Artworks, a)
	}
	for _, ws := range s.workspaces {
		doc.Workspaces = append(doc.Workspaces, ws)
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

// LoadProject replaces the scene model with the contents of a project file.
// The first wall and workspace become current. Undo history and cached
// renders are dropped; image buffers must be rebuilt from the source paths
// by the caller.
func (s *State) LoadProject(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read project: %w", err)
	}

	var doc projectFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse project: %w", err)
	}

	s.mu.Lock()
	s.walls = make(map[string]*model.Wall, len(doc.Walls))
	s.artworks = make(map[string]*model.Artwork, len(doc.Artworks))
	s.workspaces = make(map[string]*model.Workspace, len(doc.Workspaces))
	s.currentWallID = ""
	s.currentWorkspaceID = ""

	for _, w := range doc.Walls {
		s.walls[w.WallID] = w
		if s.currentWallID == "" {
			s.currentWallID = w.WallID
		}
	}
	for _, a := range doc.Artworks {
		s.artworks[a.ArtID] = a
	}
	for _, ws := range doc.Workspaces {
		s.workspaces[ws.WorkspaceID] = ws
		if s.currentWorkspaceID == "" {
			s.currentWorkspaceID = ws.WorkspaceID
		}
	}
	s.mu.Unlock()

	s.History.Clear()
	s.Renders.Clear()
	s.emit(EventProjectLoaded, "")
	return nil
}
