package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	roster := DefaultRoster()
	roster[0].Attraction = 73
	roster[0].Trust = 12
	roster[0].Comfort = 100
	roster[0].Mood = MoodUpset
	roster[0].QuestLog = []string{"Cafe", "Park"}
	roster[0].StoryProgress = map[string]int{"Art Exhibition": 2}
	roster[0].DailyEvents = []string{"Emilia shares a personal moment."}
	roster[2].StoryProgress = map[string]int{"Coding Project": 3}

	doc := &SaveDocument{
		Characters: roster,
		Session:    &SessionState{Day: 12, Location: LocationPark, Active: 2},
	}

	f := NewSaveFile(filepath.Join(t.TempDir(), "saves", "savegame.yaml"))
	if err := f.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(doc, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveOverwrites(t *testing.T) {
	f := NewSaveFile(filepath.Join(t.TempDir(), "savegame.yaml"))
	if err := f.Save(&SaveDocument{Characters: DefaultRoster()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := f.Save(&SaveDocument{Characters: DefaultRoster()[:1]}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Characters) != 1 {
		t.Errorf("Expected 1 character after overwrite, got %d", len(got.Characters))
	}
}

func TestLoadMissingFile(t *testing.T) {
	f := NewSaveFile(filepath.Join(t.TempDir(), "nope.yaml"))
	doc, err := f.Load()
	if err != nil {
		t.Fatalf("Expected no error for a missing save, got %v", err)
	}
	if doc != nil {
		t.Errorf("Expected nil document, got %+v", doc)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := map[string]string{
		"not yaml":        "characters: [\n",
		"bad personality": "characters:\n  - name: Emilia\n    personality: Loud\n    mood: Happy\n",
		"bad mood":        "characters:\n  - name: Emilia\n    personality: Shy\n    mood: Ecstatic\n",
		"no name":         "characters:\n  - personality: Shy\n    mood: Happy\n",
		"duplicate":       "characters:\n  - {name: A, personality: Shy, mood: Happy}\n  - {name: A, personality: Open, mood: Happy}\n",
		"bad location":    "characters: []\nsession: {day: 3, location: Moon, active: 0}\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "savegame.yaml")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewSaveFile(path).Load(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadClampsStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.yaml")
	content := "characters:\n  - name: Luna\n    attraction: 250\n    trust: -4\n    comfort: 50\n    personality: Open\n    mood: Neutral\n    story_progress: {Dance Competition: 9}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewSaveFile(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := doc.Characters[0]
	if c.Attraction != 100 || c.Trust != 0 {
		t.Errorf("Expected clamped stats, got %d/%d", c.Attraction, c.Trust)
	}
	if c.StoryProgress["Dance Competition"] != ArcMax {
		t.Errorf("Expected arc capped at %d, got %d", ArcMax, c.StoryProgress["Dance Competition"])
	}
}

func TestSaveFailsWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := NewSaveFile(dir).Save(&SaveDocument{Characters: DefaultRoster()}); err == nil {
		t.Error("Expected an error writing over a directory")
	}
}
