package config

import (
	"os"
	"strings"

	appErrors "copyto/internal/errors"
)

const (
	EnvDestination = "COPYTO_DESTINATION"
	EnvVerbose     = "COPYTO_VERBOSE"
	EnvConfig      = "COPYTO_CONFIG"
)

// Flags are the command-line values before defaults are applied.
type Flags struct {
	Destination  string
	SettingsPath string
	Verbose      bool
	NoTUI        bool
	ReadStdin    bool
}

type Config struct {
	// Destination is the configured destination as typed, possibly "~"-prefixed.
	// Empty means the user picks one.
	Destination  string
	Exclude      []string
	SettingsPath string
	Verbose      bool
	NoTUI        bool
	ReadStdin    bool
}

// Load merges flags, environment and the settings file, in that order of
// precedence.
func Load(flags Flags) (Config, error) {
	cfg := Config{
		Destination:  strings.TrimSpace(flags.Destination),
		SettingsPath: strings.TrimSpace(flags.SettingsPath),
		Verbose:      flags.Verbose,
		NoTUI:        flags.NoTUI,
		ReadStdin:    flags.ReadStdin,
	}

	if cfg.SettingsPath == "" {
		cfg.SettingsPath = DefaultSettingsPath()
	}
	if !cfg.Verbose {
		cfg.Verbose = envTruthy(EnvVerbose)
	}

	settings, err := LoadSettings(cfg.SettingsPath)
	if err != nil {
		return Config{}, appErrors.Wrap(appErrors.InvalidConfig, "settings", cfg.SettingsPath, err)
	}
	cfg.Exclude = settings.Copy.Exclude

	if cfg.Destination == "" {
		cfg.Destination = envOrEmpty(EnvDestination)
	}
	if cfg.Destination == "" {
		cfg.Destination = strings.TrimSpace(settings.Destination.Path)
	}

	return cfg, nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
