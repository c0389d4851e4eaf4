package utils

import (
	"io"

	"github.com/sirupsen/logrus"
)

func SetUpLogrus(out io.Writer, verbose bool) {
	//logrus setup
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:            true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
		DisableTimestamp:       true,
	})

	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

// IsASCII reports whether b is a 7-bit ASCII byte.
func IsASCII(b byte) bool {
	return b < 0x80
}
