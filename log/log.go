// Package log provides a structured logging infrastructure backed by logrus with optional file persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	"github.com/shinigami-rest/shinigami/filesystem"
	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers do not need to import logrus directly.
type Fields = logrus.Fields

// Setup initializes the logging subsystem from the global configuration.
// Logs go to stderr unless logs.write is enabled, in which case a dated file under where.Logs() is used.
func Setup() error {
	out, err := output()
	if err != nil {
		return err
	}
	logrus.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

func output() (io.Writer, error) {
	if !viper.GetBool(key.LogsWrite) {
		return os.Stderr, nil
	}

	dir := where.Logs()
	if dir == "" {
		return nil, errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// SetOutput redirects all log output. Used by tests to capture entries.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// WithFields starts an entry carrying structured context.
func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

// Severity-specific emissions proxied to the configured backend.

func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
func Trace(args ...interface{}) {
	logrus.Trace(args...)
}
func Tracef(format string, args ...interface{}) {
	logrus.Tracef(format, args...)
}
