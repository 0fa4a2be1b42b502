// Package logger builds the application-wide structured logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logrus logger at the given level. Unknown levels
// fall back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
