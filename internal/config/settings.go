package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Color mode values for Settings.ColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds all configuration options.
type Settings struct {
	// ColorMode controls styled output: auto, always or never.
	ColorMode string `json:"color_mode"`

	// PrintFormat is the default format string for the print command.
	PrintFormat string `json:"print_format"`

	// Extensions lists the audio file extensions to consider, with dots.
	Extensions []string `json:"extensions"`

	// CreatePlaylist writes an M3U playlist of the matched files after a
	// successful tagging run.
	CreatePlaylist bool `json:"create_playlist"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ColorMode:      ColorAuto,
		PrintFormat:    "{title}\n{artist}\n{album}",
		Extensions:     []string{".mp3"},
		CreatePlaylist: false,
	}
}

// DefaultPath returns the default settings file location inside the user's
// XDG config directory.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("albumtag", "config.json"))
}

// Load reads settings from a JSON file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
