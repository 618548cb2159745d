package logger

import (
	"os"
	"sync"

	"github.com/jsphweid/tonal/constants"
	"github.com/sirupsen/logrus"
)

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

// GetProjectLogger returns the logger shared by the commands and the server.
func GetProjectLogger() *logrus.Logger {
	once.Do(func() {
		projectLogger = logrus.New()
		projectLogger.SetOutput(os.Stderr)
		projectLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		setLevel(projectLogger, constants.GetLogLevel())
	})
	return projectLogger
}

// SetLevel changes the level of the project logger. Unknown levels are
// reported and leave the current level in place.
func SetLevel(level string) {
	setLevel(GetProjectLogger(), level)
}

func setLevel(l *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		l.Warnf("unknown log level %q, keeping %v", level, l.GetLevel())
		return
	}
	l.SetLevel(parsed)
}
