package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var envToLevel = map[string]logrus.Level{
	"debug":    logrus.DebugLevel,
	"info":     logrus.InfoLevel,
	"warn":     logrus.WarnLevel,
	"error":    logrus.ErrorLevel,
	"fatal":    logrus.FatalLevel,
	"critical": logrus.FatalLevel,

	"d": logrus.DebugLevel,
	"i": logrus.InfoLevel,
	"w": logrus.WarnLevel,
	"e": logrus.ErrorLevel,
	"f": logrus.FatalLevel,
	"c": logrus.FatalLevel,
}

func defaultLevel() logrus.Level {
	if level, ok := lookupLevelFromENV(); ok {
		return level
	}
	return logrus.InfoLevel
}

func lookupLevelFromENV() (logrus.Level, bool) {
	for _, envKey := range []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"} {
		if raw, ok := os.LookupEnv(envKey); ok {
			if level, ok := envToLevel[strings.ToLower(raw)]; ok {
				return level, ok
			}
		}
	}
	return 0, false
}

// ParseLevel maps the short and long level names accepted in LOG_LEVEL to a logrus level.
func ParseLevel(raw string) (logrus.Level, bool) {
	level, ok := envToLevel[strings.ToLower(raw)]
	return level, ok
}
