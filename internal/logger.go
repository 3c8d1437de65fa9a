package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogLevel keeps normal runs quiet: stdout is reserved for matches.
const DefaultLogLevel = logrus.WarnLevel

// InitLogger initializes the logger with optional file output and level.
func InitLogger(logfile, level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableQuote:  true,
		PadLevelText:  true,
	})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(DefaultLogLevel)

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Warnf("Unknown log level %q, using %s", level, DefaultLogLevel)
		} else {
			logrus.SetLevel(lvl)
		}
	}
	if logfile != "" {
		file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.WithError(err).WithField("file", logfile).Warn("Failed to open log file, logging to stderr")
		}
	}
}
