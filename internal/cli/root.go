package cli

import (
	"github.com/spf13/cobra"
)

var logLevel = "warn"

var rootCmd = &cobra.Command{
	Use:          "tjk",
	Short:        "A weekday habit tracker calendar",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
