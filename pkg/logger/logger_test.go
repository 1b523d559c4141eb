package logger

import (
	"testing"

	"github.com/gookit/slog"
)

func TestInitAndLevelString(t *testing.T) {
	defer Init("info")

	Init("debug")
	if got := LevelString(); got != "debug" {
		t.Fatalf("LevelString() = %q, want %q", got, "debug")
	}
	Init("WARN")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("warning")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("Error")
	if got := LevelString(); got != "error" {
		t.Fatalf("LevelString() = %q, want %q", got, "error")
	}
	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want %q for unknown input", got, "info")
	}
}

func contains(levels slog.Levels, lv slog.Level) bool {
	for _, l := range levels {
		if l == lv {
			return true
		}
	}
	return false
}

func TestEnabledLevelsFiltering(t *testing.T) {
	warn := enabledLevels(slog.WarnLevel)
	if contains(warn, slog.DebugLevel) {
		t.Fatalf("debug should be suppressed at warn level")
	}
	if contains(warn, slog.InfoLevel) {
		t.Fatalf("info should be suppressed at warn level")
	}
	if !contains(warn, slog.WarnLevel) || !contains(warn, slog.ErrorLevel) {
		t.Fatalf("warn and error expected at warn level, got %v", warn)
	}

	debug := enabledLevels(slog.DebugLevel)
	if !contains(debug, slog.DebugLevel) || !contains(debug, slog.InfoLevel) {
		t.Fatalf("debug and info expected at debug level, got %v", debug)
	}
}

func TestHelpersDoNotPanic(t *testing.T) {
	Init("error")
	defer Init("info")
	Debugf("debug-%d", 1)
	Infof("info-%d", 2)
	Info("info")
	Warn("warn")
	InfoWithFields("completed request", Fields{"status": 200})
	ErrorWithFields("failed", Fields{"status": 500})
}
