// Package config persists the editor's preferences, word wrap and
// status bar visibility among them, as a TOML file in the user's
// config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// maxRecentFiles bounds the recent file list.
const maxRecentFiles = 10

// Settings holds the persisted editor preferences.
type Settings struct {
	// WordWrap enables soft wrapping in the edit view.
	WordWrap bool `toml:"word_wrap"`

	// StatusBar shows the Ln/Col status line.
	StatusBar bool `toml:"status_bar"`

	// FontName is the editor font face.
	FontName string `toml:"font_name"`

	// FontSize is the editor font size in points.
	FontSize int `toml:"font_size"`

	// DefaultEncoding is the tag for new documents.
	DefaultEncoding string `toml:"default_encoding"`

	// RecentFiles lists recently opened paths, most recent first.
	RecentFiles []string `toml:"recent_files"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		WordWrap:        false,
		StatusBar:       true,
		FontName:        "Consolas",
		FontSize:        11,
		DefaultEncoding: "utf-8",
	}
}

// DefaultPath returns the settings file location under the user
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "retropad", "settings.toml"), nil
}

// Load reads settings from path. A missing file is not an error; the
// defaults are returned instead.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading settings %s: %w", path, err)
	}

	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to path, creating parent directories as
// needed.
func Save(path string, settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// AddRecent pushes a path onto the recent file list, deduplicating
// and trimming to the maximum length.
func (s *Settings) AddRecent(path string) {
	recent := make([]string, 0, len(s.RecentFiles)+1)
	recent = append(recent, path)
	for _, p := range s.RecentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentFiles {
		recent = recent[:maxRecentFiles]
	}
	s.RecentFiles = recent
}
