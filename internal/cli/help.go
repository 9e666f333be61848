package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// "Usage:", "Available Commands:", "Flags:", "Global Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// "  track         Mark days on the interactive calendar"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// "  -l, --log-level string   log level ..."
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// "  tjk export [flags]"
	usageLineRe = regexp.MustCompile(`^( {2})(tjk(?: [a-z][a-z-]*)*)( \[.*)?$`)
	footerRe    = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's usage text with section headers, command
// names and flags highlighted.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		if cmd.Long != "" {
			cmd.Println(Text(cmd.Long) + "\n")
		} else if cmd.Short != "" {
			cmd.Println(Text(cmd.Short) + "\n")
		}

		var result strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}
		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}

	if m := usageLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Silent(m[3])
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
