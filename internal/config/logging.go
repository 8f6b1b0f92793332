package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

func LogLevel() (logrus.Level, error) {
	s, ok := os.LookupEnv("MINES_LOG_LEVEL")
	if !ok {
		if Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return 0, fmt.Errorf("invalid MINES_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NewLogFileHook returns a hook writing JSON entries to the rotating file
// named by MINES_LOG_FILE, or nil when the variable is unset.
func NewLogFileHook(level logrus.Level) (logrus.Hook, error) {
	path, ok := os.LookupEnv("MINES_LOG_FILE")
	if !ok || path == "" {
		return nil, nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", path, err)
	}
	return hook, nil
}
