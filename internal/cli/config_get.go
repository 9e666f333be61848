package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/config"
)

var configKeys = []string{"title", "start", "end", "locks", "week_mode"}

var configGetCmd = LeafCommand{
	Use:   "get [KEY]",
	Short: "Show the configuration, or one key of it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		key := ""
		if len(args) > 0 {
			key = args[0]
		}
		return runConfigGet(cmd, homeDir, key)
	},
}.Build()

func init() {
	configGetCmd.ValidArgs = configKeys
}

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		value, err := configValue(cfg, key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, value)
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", Text("Configuration"), Silent("("+config.Path(homeDir)+")"))
	for _, k := range configKeys {
		value, _ := configValue(cfg, k)
		if value == "" {
			value = Silent("none")
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", Info(padRight(k+":", 11)), value)
	}
	return nil
}

func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "title":
		return cfg.Title, nil
	case "start":
		return cfg.Start, nil
	case "end":
		return cfg.End, nil
	case "locks":
		return strings.Join(cfg.Locks, ", "), nil
	case "week_mode":
		return cfg.WeekMode, nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(configKeys, ", "))
}
