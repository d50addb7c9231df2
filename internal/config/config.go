package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "taskdeck"
	DefaultConfigFileName = "config.toml"
)

// Keymap lists, per action, the key names bubbletea reports for a press.
type Keymap struct {
	Quit        []string `toml:"quit"`
	New         []string `toml:"new"`
	Up          []string `toml:"up"`
	Down        []string `toml:"down"`
	Help        []string `toml:"help"`
	Edit        []string `toml:"edit"`
	Delete      []string `toml:"delete"`
	Toggle      []string `toml:"toggle"`
	Cancel      []string `toml:"cancel"`
	Confirm     []string `toml:"confirm"`
	SwitchField []string `toml:"switch_field"`
	Backspace   []string `toml:"backspace"`
}

type Log struct {
	Path   string `toml:"path"`
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	Keys Keymap `toml:"keys"`
	Log  Log    `toml:"log"`
}

// ResolveConfigPath returns the config file under the user config directory,
// falling back to the working directory when none is known.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Keys = cfg.Keys.withDefaults(Default().Keys)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Default is the keymap written on first launch.
func Default() Config {
	return Config{
		Keys: Keymap{
			Quit:        []string{"q"},
			New:         []string{"n"},
			Up:          []string{"k", "up"},
			Down:        []string{"j", "down"},
			Help:        []string{"?"},
			Edit:        []string{"e"},
			Delete:      []string{"d"},
			Toggle:      []string{"m", " "},
			Cancel:      []string{"esc"},
			Confirm:     []string{"enter"},
			SwitchField: []string{"tab"},
			Backspace:   []string{"backspace"},
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// withDefaults fills actions the file left empty, so a partial [keys] table
// never unbinds an action.
func (k Keymap) withDefaults(d Keymap) Keymap {
	fill := func(v, def []string) []string {
		if len(v) == 0 {
			return def
		}
		return v
	}
	k.Quit = fill(k.Quit, d.Quit)
	k.New = fill(k.New, d.New)
	k.Up = fill(k.Up, d.Up)
	k.Down = fill(k.Down, d.Down)
	k.Help = fill(k.Help, d.Help)
	k.Edit = fill(k.Edit, d.Edit)
	k.Delete = fill(k.Delete, d.Delete)
	k.Toggle = fill(k.Toggle, d.Toggle)
	k.Cancel = fill(k.Cancel, d.Cancel)
	k.Confirm = fill(k.Confirm, d.Confirm)
	k.SwitchField = fill(k.SwitchField, d.SwitchField)
	k.Backspace = fill(k.Backspace, d.Backspace)
	return k
}
