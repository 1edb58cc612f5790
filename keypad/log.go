package keypad

import "github.com/sirupsen/logrus"

// package logger instance
var log = logrus.New()

// SetLogLevelString changes the package log level by name.
func SetLogLevelString(level string) error {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	SetLogLevel(ll)
	return nil
}

// SetLogLevel changes the package log level.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// GetLogLevel gets the package log level.
func GetLogLevel() logrus.Level {
	return log.GetLevel()
}
