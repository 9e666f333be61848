package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Haze-32/tjk/internal/export"
	"github.com/Haze-32/tjk/internal/session"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export a printable calendar sheet (pdf, md, html)",
	StrFlags: append([]StringFlag{
		{Name: "format", Usage: "output format: pdf, md or html", Default: "pdf"},
		{Name: "output", Usage: "output file; - writes to stdout (default: <title>-<start>-<end>.<format>)"},
		{Name: "title", Usage: "sheet title (default: configured title)"},
	}, calendarStrFlags...),
	SliceFlags: calendarSliceFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}

		formatFlag, _ := cmd.Flags().GetString("format")
		outputFlag, _ := cmd.Flags().GetString("output")
		titleFlag, _ := cmd.Flags().GetString("title")

		return runExport(cmd, homeDir, readCalendarFlags(cmd), formatFlag, outputFlag, titleFlag)
	},
}.Build()

func runExport(cmd *cobra.Command, homeDir string, o calendarOverrides, formatFlag, outputFlag, titleFlag string) error {
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, engine, err := loadCalendar(homeDir, o)
	if err != nil {
		return err
	}
	title := cfg.Title
	if titleFlag != "" {
		title = titleFlag
	}

	doc := export.FromSession(title, session.New(engine))

	if outputFlag == "-" {
		if format == export.FormatPDF {
			return fmt.Errorf("refusing to write PDF to stdout; use --output <file>")
		}
		data, err := export.Render(doc, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := writeExport(doc, format, outputFlag)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("exported %s to %s", title, Primary(path))))
	return nil
}

// writeExport renders doc and saves it to path, or to the default file name
// in the working directory when path is empty. It returns the path written.
func writeExport(doc export.Document, format export.Format, path string) (string, error) {
	if path == "" {
		path = export.FileName(doc, format)
	}

	data, err := export.Render(doc, format)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"format": string(format),
		"bytes":  len(data),
	}).Debug("export written")
	return path, nil
}
