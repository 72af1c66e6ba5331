package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"tweetfeed/internal/config"
)

// Init configures the global logrus logger from cfg and returns it.
func Init(cfg config.Log) *logrus.Logger {
	return setup(logrus.StandardLogger(), cfg, os.Stdout)
}

func setup(log *logrus.Logger, cfg config.Log, out io.Writer) *logrus.Logger {
	log.SetOutput(out)

	if cfg.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("unknown log level %q, falling back to info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
