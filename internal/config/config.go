package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const appDirName = "tasktick"

type Config struct {
	State StateConfig `toml:"state"`
	Timer TimerConfig `toml:"timer"`
	Log   LogConfig   `toml:"log"`
	Keys  KeyConfig   `toml:"keys"`
}

type StateConfig struct {
	Path string `toml:"path"`
}

type TimerConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
}

type LogConfig struct {
	// Path of the diagnostics log file. Empty disables logging; the TUI owns
	// the terminal, so there is no stderr fallback while the program runs.
	Path string `toml:"path"`
}

type KeyConfig struct {
	Quit    string `toml:"quit"`
	Remove  string `toml:"remove"`
	Palette string `toml:"palette"`
	Help    string `toml:"help"`
}

func Default() Config {
	return Config{
		State: StateConfig{Path: "tasks.json"},
		Timer: TimerConfig{IntervalSeconds: 1},
		Keys: KeyConfig{
			Quit:    "q",
			Remove:  "x",
			Palette: "/",
			Help:    "?",
		},
	}
}

// DefaultPath returns the conventional config file location. An empty string
// means no per-user config directory exists on this platform.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, "config.toml")
}

// Load reads the TOML file at path on top of defaults. A blank path or a
// missing file yields the defaults untouched; a file that exists but does not
// parse is an error, since silently ignoring a present config misleads.
func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return normalize(cfg, defaults), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return normalize(cfg, defaults), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return normalize(cfg, defaults), nil
}

func normalize(cfg, defaults Config) Config {
	if strings.TrimSpace(cfg.State.Path) == "" {
		cfg.State.Path = defaults.State.Path
	}
	if cfg.Timer.IntervalSeconds < 1 {
		cfg.Timer.IntervalSeconds = defaults.Timer.IntervalSeconds
	}
	if cfg.Keys.Quit == "" {
		cfg.Keys.Quit = defaults.Keys.Quit
	}
	if cfg.Keys.Remove == "" {
		cfg.Keys.Remove = defaults.Keys.Remove
	}
	if cfg.Keys.Palette == "" {
		cfg.Keys.Palette = defaults.Keys.Palette
	}
	if cfg.Keys.Help == "" {
		cfg.Keys.Help = defaults.Keys.Help
	}
	return cfg
}
