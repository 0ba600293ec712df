package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"gitlab.com/tozd/go/errors"
)

const (
	appDirName       = "copyto"
	settingsFileName = "config.toml"
)

// Settings is the persisted part of the configuration.
type Settings struct {
	Destination DestinationSettings `toml:"destination"`
	Copy        CopySettings        `toml:"copy"`
}

type DestinationSettings struct {
	// Path is stored as typed; "~" is expanded when a batch runs. Empty means
	// ask every time.
	Path string `toml:"path"`
}

type CopySettings struct {
	Exclude []string `toml:"exclude,omitempty"`
}

// DefaultSettingsPath returns COPYTO_CONFIG when set, otherwise the file under
// the XDG config home.
func DefaultSettingsPath() string {
	if path := envOrEmpty(EnvConfig); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, appDirName, settingsFileName)
}

// LoadSettings reads the settings file. A missing file yields empty settings.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Errorf("reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, errors.Errorf("parsing settings %s: %w", path, err)
	}
	return s, s.Validate()
}

func SaveSettings(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return errors.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Errorf("writing settings: %w", err)
	}
	return nil
}

func (s Settings) Validate() error {
	for _, pattern := range s.Copy.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}
