// Package config provides configuration management for albumtag.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - The default settings location under the XDG config directory
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Color output auto-detected from the terminal
//	// print format "{title}\n{artist}\n{album}"
//	// .mp3 files considered
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.CreatePlaylist = true
//	err := settings.Save("/path/to/config.json")
package config
