package helpers

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. Development gets human-readable
// text at debug level; everything else logs JSON at info level for log
// shipping.
func NewLogger(appName, env string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	switch env {
	case "development":
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetLevel(logrus.InfoLevel)
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	l.WithFields(logrus.Fields{"app": appName, "env": env}).Debug("logger ready")
	return l
}
