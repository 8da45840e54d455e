package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SessionState is the part of a session that is not owned by a character.
type SessionState struct {
	Day      int      `yaml:"day"`
	Location Location `yaml:"location"`
	Active   int      `yaml:"active"`
}

// SaveDocument is everything written to the save file.
type SaveDocument struct {
	Characters []*Character  `yaml:"characters"`
	Session    *SessionState `yaml:"session,omitempty"`
}

// SaveFile persists a SaveDocument as YAML at Path.
type SaveFile struct {
	Path string
}

func NewSaveFile(path string) *SaveFile {
	return &SaveFile{Path: path}
}

// Save overwrites the file with doc.
func (f *SaveFile) Save(doc *SaveDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create save directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file %s: %w", f.Path, err)
	}
	return nil
}

// Load reads the save file. A missing file returns a nil document and no error.
func (f *SaveFile) Load() (*SaveDocument, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save file %s: %w", f.Path, err)
	}

	var doc SaveDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save file %s: %w", f.Path, err)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("invalid save file %s: %w", f.Path, err)
	}
	return &doc, nil
}

func (d *SaveDocument) validate() error {
	seen := make(map[string]bool, len(d.Characters))
	for i, c := range d.Characters {
		if c == nil {
			return fmt.Errorf("character %d is empty", i)
		}
		if c.Name == "" {
			return fmt.Errorf("character %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate character %q", c.Name)
		}
		seen[c.Name] = true
		if !c.Personality.Valid() {
			return fmt.Errorf("character %q has unknown personality %q", c.Name, c.Personality)
		}
		if !c.Mood.Valid() {
			return fmt.Errorf("character %q has unknown mood %q", c.Name, c.Mood)
		}
		Clamp(c)
		for arc, n := range c.StoryProgress {
			c.StoryProgress[arc] = min(max(n, 0), ArcMax)
		}
	}
	if s := d.Session; s != nil {
		if !s.Location.Valid() {
			return fmt.Errorf("unknown location %q", s.Location)
		}
		if s.Day < 1 {
			return fmt.Errorf("day %d out of range", s.Day)
		}
	}
	return nil
}
