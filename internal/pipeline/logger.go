package pipeline

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/xyproto/env/v2"
)

// LogLevelEnvVar is the environment variable stages consult for their
// logrus level, read once and cached at first use.
const LogLevelEnvVar = "AZ_LOG_LEVEL"

var (
	loggerOnce sync.Once
	logger     *logrus.Logger
)

// Logger returns the process-wide structured logger every pipeline stage
// logs through, level-configured from AZ_LOG_LEVEL (falling back to Warn
// when unset or unparsable).
func Logger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		levelName := env.Str(LogLevelEnvVar, logrus.WarnLevel.String())
		level, err := logrus.ParseLevel(levelName)
		if err != nil {
			level = logrus.WarnLevel
		}
		logger.SetLevel(level)
	})
	return logger
}
