package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/config"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Reset the configuration to the defaults",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewConfirmFunc()
		}

		return runConfigReset(cmd, homeDir, confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm(fmt.Sprintf("Reset %s to defaults?", config.Path(homeDir)))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	if err := config.Remove(homeDir); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("configuration reset to defaults (%s)", Primary(config.DefaultTitle))))
	return nil
}
