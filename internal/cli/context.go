package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/config"
)

// homeEnv overrides the directory holding .tjk/config.json.
const homeEnv = "TJK_HOME"

func getHomeDir() (string, error) {
	if dir := os.Getenv(homeEnv); dir != "" {
		return dir, nil
	}
	return os.UserHomeDir()
}

// calendarStrFlags and calendarSliceFlags are shared by every command that
// draws the calendar. Unset flags fall back to the config file.
var calendarStrFlags = []StringFlag{
	{Name: "start", Usage: "first day of the calendar (e.g. 2025-03-11, \"Mar 11\", today)"},
	{Name: "end", Usage: "last day of the calendar"},
	{Name: "week-mode", Usage: "week rows: rolling (5-day chunks, default) or calendar (Mon-Fri)"},
}

var calendarSliceFlags = []StringSliceFlag{
	{Name: "lock", Usage: "locked date that always counts as success (repeatable, replaces configured locks)"},
}

// calendarOverrides holds the calendar flag values a command received.
type calendarOverrides struct {
	start, end, weekMode string
	locks                []string
	locksSet             bool
}

func readCalendarFlags(cmd *cobra.Command) calendarOverrides {
	var o calendarOverrides
	o.start, _ = cmd.Flags().GetString("start")
	o.end, _ = cmd.Flags().GetString("end")
	o.weekMode, _ = cmd.Flags().GetString("week-mode")
	o.locks, _ = cmd.Flags().GetStringSlice("lock")
	o.locksSet = cmd.Flags().Changed("lock")
	return o
}

// apply copies the overrides onto cfg.
func (o calendarOverrides) apply(cfg *config.Config) {
	if o.start != "" {
		cfg.Start = o.start
	}
	if o.end != "" {
		cfg.End = o.end
	}
	if o.weekMode != "" {
		cfg.WeekMode = o.weekMode
	}
	if o.locksSet {
		cfg.Locks = o.locks
	}
}

// loadCalendar reads the config under homeDir, applies the overrides and
// builds the engine.
func loadCalendar(homeDir string, o calendarOverrides) (*config.Config, *calendar.Engine, error) {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return nil, nil, err
	}
	o.apply(cfg)

	engine, err := cfg.Engine()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid calendar: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"start":    engine.Start(),
		"end":      engine.End(),
		"locks":    engine.Locks().Len(),
		"weekMode": engine.WeekMode(),
	}).Debug("calendar loaded")

	return cfg, engine, nil
}
