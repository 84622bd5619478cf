package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if settings.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want %q", settings.ColorMode, ColorAuto)
	}
	if len(settings.Extensions) != 1 || settings.Extensions[0] != ".mp3" {
		t.Errorf("Extensions = %v, want [.mp3]", settings.Extensions)
	}
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"color_mode": "never"}`), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want %q", settings.ColorMode, ColorNever)
	}
	if settings.PrintFormat != DefaultSettings().PrintFormat {
		t.Errorf("PrintFormat = %q, want the default to survive a partial file", settings.PrintFormat)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	settings := DefaultSettings()
	settings.CreatePlaylist = true
	settings.Extensions = []string{".mp3", ".flac"}
	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.CreatePlaylist {
		t.Error("CreatePlaylist was not persisted")
	}
	if len(loaded.Extensions) != 2 {
		t.Errorf("Extensions = %v, want two entries", loaded.Extensions)
	}
}
