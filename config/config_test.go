package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/personform/core"
	"github.com/lixenwraith/personform/parameter"
	"github.com/lixenwraith/personform/person"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personform.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
	if cfg.FrameInterval != parameter.FrameUpdateInterval || !cfg.Sound || cfg.Debug {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
frame_interval: 50ms
debug: true
sound: false
person:
  name: Ada
  age: 36
  location: London
  color: "#FF0000"
  counter: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		FrameInterval: 50 * time.Millisecond,
		Debug:         true,
		Sound:         false,
		Person: PersonSeed{
			Name:     "Ada",
			Age:      36,
			Location: "London",
			Color:    "#FF0000",
			Counter:  3,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}

	p := cfg.Person.NewPerson()
	wantPerson := &person.Person{Name: "Ada", Age: 36, Location: "London", Color: core.Color{R: 1, A: 1}, Counter: 3}
	if diff := cmp.Diff(wantPerson, p); diff != "" {
		t.Errorf("Person mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "debug: true\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameInterval != parameter.FrameUpdateInterval || !cfg.Sound {
		t.Errorf("Expected defaults kept, got %+v", cfg)
	}
	if p := cfg.Person.NewPerson(); p.Color != core.Black {
		t.Errorf("Expected black default color, got %v", p.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "debug: [\n"},
		{"too fast", "frame_interval: 1ms\n"},
		{"bad color", "person:\n  color: nope\n"},
		{"negative age", "person:\n  age: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
