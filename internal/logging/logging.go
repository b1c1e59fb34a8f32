package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"holdemsim/internal/config"
)

// Setup configures the standard logger from the configuration
// LOG_FORMAT=json in the environment selects the JSON formatter regardless of the configuration
func Setup(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
