package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Settings holds all configuration options.
type Settings struct {
	// DefaultOutputDir is where generated file names are placed when
	// saving with the default-directory option.
	DefaultOutputDir string `json:"default_output_dir"`

	// OutputNameSuffix is appended to the source file stem when the
	// output file name is derived automatically.
	OutputNameSuffix string `json:"output_name_suffix"`

	// ReadTags enables ID3 enrichment for path-style playlist lines.
	ReadTags bool `json:"read_tags"`

	// LogLevel is the default log level: debug, info, warn or error.
	LogLevel string `json:"log_level"`
}

// DefaultSettings returns settings with default values.
//
// The default output directory is a "Playlists" folder under the
// platform's user documents directory (XDG on Linux, the matching
// conventions on macOS and Windows).
func DefaultSettings() *Settings {
	return &Settings{
		DefaultOutputDir: filepath.Join(xdg.UserDirs.Documents, "Playlists"),
		OutputNameSuffix: ".formatted",
		ReadTags:         false,
		LogLevel:         "info",
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so a config
// file is never required.
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
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the default location of the settings file,
// following the platform config-directory convention.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "playlist-formatter", "settings.json")
}
