package cli

import (
	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/session"
)

var showCmd = LeafCommand{
	Use:        "show",
	Short:      "Print the calendar with its locked days",
	StrFlags:   calendarStrFlags,
	SliceFlags: calendarSliceFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runShow(cmd, homeDir, readCalendarFlags(cmd))
	},
}.Build()

func runShow(cmd *cobra.Command, homeDir string, o calendarOverrides) error {
	cfg, engine, err := loadCalendar(homeDir, o)
	if err != nil {
		return err
	}
	return printCalendar(cmd.OutOrStdout(), cfg.Title, session.New(engine))
}
