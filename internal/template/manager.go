// Package template persists named frame configurations so a framing
// treatment can be reused across artworks and sessions.
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gallery-wall/internal/model"
)

const templatesFile = "frame_templates.json"

// Manager stores frame templates as a single JSON array on disk. Every
// operation reads and rewrites the whole file; template counts are small.
type Manager struct {
	dir string
}

// NewManager creates a manager rooted at dir, or at the default location
// under the user config directory when dir is empty.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			home, herr := os.UserHomeDir()
			if herr != nil {
				return nil, fmt.Errorf("cannot resolve config directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
		dir = filepath.Join(base, "gallery-wall")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create template directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

func (m *Manager) path() string {
	return filepath.Join(m.dir, templatesFile)
}

// List loads every saved template. A missing file is an empty list.
func (m *Manager) List() ([]*model.FrameTemplate, error) {
	data, err := os.ReadFile(m.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	var templates []*model.FrameTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return templates, nil
}

// Save writes a template, replacing any existing one with the same id.
func (m *Manager) Save(t *model.FrameTemplate) error {
	templates, err := m.List()
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range templates {
		if existing.TemplateID == t.TemplateID {
			templates[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append(templates, t)
	}
	return m.write(templates)
}

// Get returns the template with the given id, or nil when absent.
func (m *Manager) Get(templateID string) (*model.FrameTemplate, error) {
	templates, err := m.List()
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if t.TemplateID == templateID {
			return t, nil
		}
	}
	return nil, nil
}

// Delete removes the template with the given id. Deleting an absent id is
// not an error.
func (m *Manager) Delete(templateID string) error {
	templates, err := m.List()
	if err != nil {
		return err
	}
	kept := templates[:0]
	for _, t := range templates {
		if t.TemplateID != templateID {
			kept = append(kept, t)
		}
	}
	return m.write(kept)
}

// Apply sets a deep copy of the template's frame configuration on each
// artwork, so later edits to one artwork's frame never leak into another.
func (m *Manager) Apply(t *model.FrameTemplate, artworks ...*model.Artwork) {
	for _, a := range artworks {
		cfg := t.FrameConfig
		a.SetFrameConfig(cfg.Clone())
	}
}

func (m *Manager) write(templates []*model.FrameTemplate) error {
	if templates == nil {
		templates = []*model.FrameTemplate{}
	}
	data, err := json.MarshalIndent(templates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode templates: %w", err)
	}
	if err := os.WriteFile(m.path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write templates: %w", err)
	}
	return nil
}
