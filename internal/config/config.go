package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultActivityLimit  = 8
)

// Keymap lists the keys bound to each action. Values use bubbletea key
// names ("enter", "ctrl+t", "left"); "space" is accepted for the space bar.
type Keymap struct {
	Quit           []string `toml:"quit"`
	Help           []string `toml:"help"`
	Up             []string `toml:"up"`
	Down           []string `toml:"down"`
	Add            []string `toml:"add"`
	Toggle         []string `toml:"toggle"`
	Delete         []string `toml:"delete"`
	ClearCompleted []string `toml:"clear_completed"`
	Theme          []string `toml:"theme"`
	FilterAll      []string `toml:"filter_all"`
	FilterActive   []string `toml:"filter_active"`
	FilterDone     []string `toml:"filter_completed"`
	FilterPrev     []string `toml:"filter_prev"`
	FilterNext     []string `toml:"filter_next"`
	Activity       []string `toml:"activity"`
	Confirm        []string `toml:"confirm"`
	Cancel         []string `toml:"cancel"`
	DraftDone      []string `toml:"draft_done"`
}

type Config struct {
	// ActivityLimit is how many journal events the activity panel lists
	ActivityLimit int    `toml:"activity_limit"`
	Keys          Keymap `toml:"keys"`
}

// DefaultPath returns $XDG_CONFIG_HOME/todo/config.toml (or the platform
// equivalent), falling back to the working directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "todo", DefaultConfigFileName)
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error; nothing is written to disk.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ActivityLimit <= 0 {
		cfg.ActivityLimit = DefaultActivityLimit
	}
	return cfg, nil
}

// Encode renders cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ActivityLimit: DefaultActivityLimit,
		Keys: Keymap{
			Quit:           []string{"q", "ctrl+c"},
			Help:           []string{"?"},
			Up:             []string{"up", "k"},
			Down:           []string{"down", "j"},
			Add:            []string{"a", "i"},
			Toggle:         []string{"space", "x"},
			Delete:         []string{"d", "delete"},
			ClearCompleted: []string{"c"},
			Theme:          []string{"t", "ctrl+t"},
			FilterAll:      []string{"1"},
			FilterActive:   []string{"2"},
			FilterDone:     []string{"3"},
			FilterPrev:     []string{"left", "h"},
			FilterNext:     []string{"right", "l"},
			Activity:       []string{"A"},
			Confirm:        []string{"enter"},
			Cancel:         []string{"esc"},
			DraftDone:      []string{"tab"},
		},
	}
}
