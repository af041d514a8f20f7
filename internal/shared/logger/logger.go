package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds the service-wide structured logger. Unknown levels fall back
// to debug rather than failing startup.
func New(level string) *logrus.Entry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)

	return log.WithField("service", "page-view-analytics")
}
