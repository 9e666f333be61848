package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "View or change the tracker configuration",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configResetCmd,
	},
}.Build()
