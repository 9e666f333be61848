package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/calendar"
	"github.com/Haze-32/tjk/internal/config"
)

var weekModes = []string{calendar.WeekRolling.String(), calendar.WeekCalendar.String()}

var configSetCmd = LeafCommand{
	Use:   "set",
	Short: "Change the configuration (interactive when no flags are given)",
	StrFlags: append([]StringFlag{
		{Name: "title", Usage: "calendar title"},
	}, calendarStrFlags...),
	SliceFlags: calendarSliceFlags,
	BoolFlags: []BoolFlag{
		{Name: "clear-locks", Usage: "remove all locked dates"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		titleFlag, _ := cmd.Flags().GetString("title")
		clearLocks, _ := cmd.Flags().GetBool("clear-locks")
		o := readCalendarFlags(cmd)
		if clearLocks {
			o.locks, o.locksSet = []string{}, true
		}

		var kit *PromptKit
		if !anyChanged(cmd, "title", "start", "end", "week-mode", "lock", "clear-locks") {
			k := NewPromptKit()
			kit = &k
		}

		return runConfigSet(cmd, homeDir, titleFlag, o, kit)
	},
}.Build()

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// runConfigSet applies the flag values, or asks for each field when kit is
// non-nil, then validates and saves the result.
func runConfigSet(cmd *cobra.Command, homeDir, titleFlag string, o calendarOverrides, kit *PromptKit) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	if kit != nil {
		if err := promptConfig(cfg, *kit); err != nil {
			return err
		}
	} else {
		if titleFlag != "" {
			cfg.Title = titleFlag
		}
		o.apply(cfg)
	}

	if err := normalizeConfig(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	logrus.WithField("path", config.Path(homeDir)).Debug("config written")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("configuration saved to %s", Primary(config.Path(homeDir)))))
	return nil
}

func promptConfig(cfg *config.Config, kit PromptKit) error {
	var err error
	if cfg.Title, err = kit.Prompt("Title", cfg.Title); err != nil {
		return err
	}
	if cfg.Start, err = kit.Prompt("First day", cfg.Start); err != nil {
		return err
	}
	if cfg.End, err = kit.Prompt("Last day", cfg.End); err != nil {
		return err
	}

	current := 0
	if cfg.WeekMode == calendar.WeekCalendar.String() {
		current = 1
	}
	idx, err := kit.Select("Week rows", weekModes, current)
	if err != nil {
		return err
	}
	cfg.WeekMode = weekModes[idx]
	return nil
}

// normalizeConfig rewrites dates in canonical YYYY-MM-DD form so relative
// inputs like "today" are pinned when saved.
func normalizeConfig(cfg *config.Config) error {
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"start", &cfg.Start},
		{"end", &cfg.End},
	} {
		d, err := calendar.ParseDate(*field.value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", field.name, err)
		}
		*field.value = d.String()
	}

	locks, err := calendar.ParseLockSet(cfg.Locks)
	if err != nil {
		return fmt.Errorf("invalid locks: %w", err)
	}
	keys := make([]string, 0, locks.Len())
	for _, d := range locks.Dates() {
		keys = append(keys, d.String())
	}
	cfg.Locks = keys
	return nil
}
