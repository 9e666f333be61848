package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func setupLogger(w io.Writer) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logrus.SetOutput(w)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return nil
}
