package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Leveled logger shared by the robot-store service.
// - backed by gookit/slog with a JSON formatter
// - provides Debugf/Infof/Warnf/Errorf/Fatalf, Info/Warn and Init(level)

// Fields carries structured values for the *WithFields helpers.
type Fields map[string]any

var (
	mu    sync.RWMutex
	level = "info"
	std   = newLogger(slog.InfoLevel)
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	name, lv := parseLevel(l)
	mu.Lock()
	defer mu.Unlock()
	level = name
	std = newLogger(lv)
}

func parseLevel(l string) (string, slog.Level) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return "debug", slog.DebugLevel
	case "warn", "warning":
		return "warn", slog.WarnLevel
	case "error":
		return "error", slog.ErrorLevel
	case "fatal":
		return "fatal", slog.FatalLevel
	default:
		return "info", slog.InfoLevel
	}
}

// enabledLevels lists every level at least as severe as lv.
func enabledLevels(lv slog.Level) slog.Levels {
	var levels slog.Levels
	for _, l := range slog.AllLevels {
		if l <= lv {
			levels = append(levels, l)
		}
	}
	return levels
}

func newLogger(lv slog.Level) *slog.Logger {
	h := handler.NewConsoleHandler(enabledLevels(lv))
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

func Debugf(format string, v ...any) { current().Debugf(format, v...) }
func Infof(format string, v ...any)  { current().Infof(format, v...) }
func Warnf(format string, v ...any)  { current().Warnf(format, v...) }
func Errorf(format string, v ...any) { current().Errorf(format, v...) }

// Fatalf logs at error level and exits the process.
func Fatalf(format string, v ...any) {
	l := current()
	l.Errorf("fatal: "+format, v...)
	_ = l.Flush()
	os.Exit(1)
}

// Info and Warn log a plain message.
func Info(msg string) { Infof("%s", msg) }
func Warn(msg string) { Warnf("%s", msg) }

// InfoWithFields writes msg with fields as top-level JSON keys.
func InfoWithFields(msg string, fields Fields) {
	current().WithFields(slog.M(fields)).Info(msg)
}

// ErrorWithFields is the error-level counterpart of InfoWithFields.
func ErrorWithFields(msg string, fields Fields) {
	current().WithFields(slog.M(fields)).Error(msg)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level
}
