package log

import (
	"io"
	"os"
	"strings"
	"sync"

	cblog "github.com/charmbracelet/log"
)

// Logger wraps the charm logger so callers never import it directly.
type Logger struct {
	*cblog.Logger
}

var (
	logger     *Logger
	loggerOnce sync.Once
)

const envLevel = "DTHEME_LOG_LEVEL"

func parseLevel(s string) cblog.Level {
	lvl, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return cblog.InfoLevel
	}
	return lvl
}

func newLogger(w io.Writer) *Logger {
	l := cblog.NewWithOptions(w, cblog.Options{
		Prefix:          "dtheme",
		ReportTimestamp: false,
		Level:           parseLevel(os.Getenv(envLevel)),
	})
	return &Logger{Logger: l}
}

// GetLogger returns the process logger, creating it on first use.
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		logger = newLogger(os.Stderr)
	})
	return logger
}

// SetLevel accepts debug, info, warn, error or fatal. Unknown values mean info.
func SetLevel(level string) {
	GetLogger().SetLevel(parseLevel(level))
}

// SetOutput redirects log output, mostly useful in tests.
func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { GetLogger().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { GetLogger().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { GetLogger().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { GetLogger().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { GetLogger().Fatalf(format, args...) }
