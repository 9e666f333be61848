package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	"github.com/Haze-32/tjk/internal/calendar"
)

// DefaultTitle is the heading shown above the calendar.
const DefaultTitle = "Tracker Calendar"

// Config is the on-disk tracker configuration.
type Config struct {
	Title    string   `json:"title"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Locks    []string `json:"locks"`
	WeekMode string   `json:"week_mode"`
}

// Default returns the built-in configuration.
func Default() *Config {
	locks := calendar.DefaultLocks().Dates()
	keys := make([]string, len(locks))
	for i, d := range locks {
		keys[i] = d.String()
	}
	return &Config{
		Title:    DefaultTitle,
		Start:    calendar.DefaultStart.String(),
		End:      calendar.DefaultEnd.String(),
		Locks:    keys,
		WeekMode: calendar.WeekRolling.String(),
	}
}

// Dir returns the tjk config directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".tjk")
}

// Path returns the path to config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// Read loads the config file. A missing file yields Default; fields left
// empty in the file take their default values. A "locks" key set to an empty
// list disables locking.
func Read(homeDir string) (*Config, error) {
	data, err := os.ReadFile(Path(homeDir))
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reading config")
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, pkgerrors.Wrapf(err, "parsing %s", Path(homeDir))
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// Write saves the config file, creating the directory if needed.
func Write(homeDir string, cfg *Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return pkgerrors.Wrap(err, "creating config directory")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(err, "encoding config")
	}
	return pkgerrors.Wrap(os.WriteFile(Path(homeDir), data, 0644), "writing config")
}

// Remove deletes the config file. A missing file is not an error.
func Remove(homeDir string) error {
	err := os.Remove(Path(homeDir))
	if err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrap(err, "removing config")
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Start == "" {
		c.Start = def.Start
	}
	if c.End == "" {
		c.End = def.End
	}
	if c.Locks == nil {
		c.Locks = def.Locks
	}
	if c.WeekMode == "" {
		c.WeekMode = def.WeekMode
	}
}

// Engine builds the calendar engine the config describes.
func (c *Config) Engine() (*calendar.Engine, error) {
	start, err := calendar.ParseDate(c.Start)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "start")
	}
	end, err := calendar.ParseDate(c.End)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "end")
	}
	locks, err := calendar.ParseLockSet(c.Locks)
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	mode, err := calendar.ParseWeekMode(c.WeekMode)
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return calendar.NewEngine(start, end, locks, calendar.WithWeekMode(mode)), nil
}

// Validate checks that every field parses.
func (c *Config) Validate() error {
	_, err := c.Engine()
	return err
}
