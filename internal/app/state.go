// Package app holds the shared application state: walls, artworks, and
// workspaces, the active selection among them, change notification, and
// project persistence.
package app

import (
	"fmt"
	"sync"

	"gallery-wall/internal/history"
	"gallery-wall/internal/model"
	"gallery-wall/internal/render"
)

// Event names emitted on state changes.
const (
	EventWallChanged      = "wall_changed"
	EventArtworkChanged   = "artwork_changed"
	EventWorkspaceChanged = "workspace_changed"
	EventProjectLoaded    = "project_loaded"
)

// Listener receives a state change event with the id of the affected entity
// ("" for project-wide events).
type Listener func(event, id string)

// State is the single owner of the scene model. All access goes through its
// methods; the mutex makes reads safe from a background export pass while
// the interaction thread mutates.
type State struct {
	mu sync.RWMutex

	walls      map[string]*model.Wall
	artworks   map[string]*model.Artwork
	workspaces map[string]*model.Workspace

	currentWallID      string
	currentWorkspaceID string

	History *history.Manager
	Renders *render.Cache

	listeners map[string][]Listener
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		walls:      make(map[string]*model.Wall),
		artworks:   make(map[string]*model.Artwork),
		workspaces: make(map[string]*model.Workspace),
		History:    history.NewManager(0),
		Renders:    render.NewCache(),
		listeners:  make(map[string][]Listener),
	}
}

// On registers a listener for an event name.
func (s *State) On(event string, fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], fn)
}

func (s *State) emit(event, id string) {
	s.mu.RLock()
	fns := append([]Listener(nil), s.listeners[event]...)
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(event, id)
	}
}

// AddWall registers a wall and makes it current when it is the first one.
func (s *State) AddWall(w *model.Wall) {
	s.mu.Lock()
	s.walls[w.WallID] = w
	if s.currentWallID == "" {
		s.currentWallID = w.WallID
	}
	s.mu.Unlock()
	s.emit(EventWallChanged, w.WallID)
}

// Wall returns a wall by id, or nil.
func (s *State) Wall(id string) *model.Wall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.walls[id]
}

// CurrentWall returns the active wall, or nil.
func (s *State) CurrentWall() *model.Wall {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.walls[s.currentWallID]
}

// AddArtwork registers an artwork.
func (s *State) AddArtwork(a *model.Artwork) {
	s.mu.Lock()
	s.artworks[a.ArtID] = a
	s.mu.Unlock()
	s.emit(EventArtworkChanged, a.ArtID)
}

// Artwork returns an artwork by id, or nil.
func (s *State) Artwork(id string) *model.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.artworks[id]
}

// Artworks returns the artwork set as an id-keyed map snapshot.
func (s *State) Artworks() map[string]*model.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*model.Artwork, len(s.artworks))
	for id, a := range s.artworks {
		out[id] = a
	}
	return out
}

// RemoveArtwork deletes an artwork and cascades: every workspace drops its
// placements of it, and its cached renders are invalidated.
func (s *State) RemoveArtwork(id string) {
	s.mu.Lock()
	delete(s.artworks, id)
	for _, ws := range s.workspaces {
		ws.RemoveArtwork(id)
	}
	s.mu.Unlock()
	s.Renders.Invalidate(id)
	s.emit(EventArtworkChanged, id)
}

// TouchArtwork marks an artwork's content as edited and drops its cached
// renders.
func (s *State) TouchArtwork(id string) {
	s.mu.Lock()
	a := s.artworks[id]
	if a != nil {
		a.Touch()
	}
	s.mu.Unlock()
	if a != nil {
		s.Renders.Invalidate(id)
		s.emit(EventArtworkChanged, id)
	}
}

// AddWorkspace registers a workspace and makes it current when it is the
// first one.
func (s *State) AddWorkspace(ws *model.Workspace) {
	s.mu.Lock()
	s.workspaces[ws.WorkspaceID] = ws
	if s.currentWorkspaceID == "" {
		s.currentWorkspaceID = ws.WorkspaceID
	}
	s.mu.Unlock()
	s.emit(EventWorkspaceChanged, ws.WorkspaceID)
}

// Workspace returns a workspace by id, or nil.
func (s *State) Workspace(id string) *model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspaces[id]
}

// CurrentWorkspace returns the active workspace, or nil.
func (s *State) CurrentWorkspace() *model.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspaces[s.currentWorkspaceID]
}

// SetCurrentWorkspace switches the active workspace. Undo history is
// workspace-scoped, so switching clears it.
func (s *State) SetCurrentWorkspace(id string) error {
	s.mu.Lock()
	if _, ok := s.workspaces[id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown workspace %q", id)
	}
	switched := s.currentWorkspaceID != id
	s.currentWorkspaceID = id
	s.mu.Unlock()

	if switched {
		s.History.Clear()
		s.emit(EventWorkspaceChanged, id)
	}
	return nil
}

// DeleteWorkspace removes a workspace. When it was current, another becomes
// current (unspecified which) and history is cleared.
func (s *State) DeleteWorkspace(id string) {
	s.mu.Lock()
	delete(s.workspaces, id)
	wasCurrent := s.currentWorkspaceID == id
	if wasCurrent {
		s.currentWorkspaceID = ""
		for wid := range s.workspaces {
			s.currentWorkspaceID = wid
			break
		}
	}
	s.mu.Unlock()

	if wasCurrent {
		s.History.Clear()
	}
	s.emit(EventWorkspaceChanged, id)
}
