package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger. Production gets JSON lines
// for log shipping, everything else a human-readable text format.
func Init(env string) {
	logrus.SetOutput(os.Stdout)

	if env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
}

// Module returns a logger tagged with the originating module name.
func Module(name string) logrus.FieldLogger {
	return logrus.WithField("module", name)
}
