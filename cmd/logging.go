package cmd

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// SetupLog configures the standard logger. Unknown levels fall back to warn.
func SetupLog(w io.Writer, level string) {
	l, err := log.ParseLevel(level)
	if err != nil {
		l = log.WarnLevel
	}
	log.SetLevel(l)
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: l < log.DebugLevel,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05.000",
	})
}
