// Package logger holds the structured logger shared by the psdmask commands.
// Output is discarded until Init enables it.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the process-wide logger.
var L = discard()

// file is the log file opened by the last Init, if any.
var file *os.File

const (
	logPrefix     = "psdmask-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for daily log files. Default: ~/.psdmask/logs
	Level   slog.Level // Minimum level
	Writer  io.Writer  // When set, records go here instead of a log file
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Init replaces L according to opts, closing any file from a previous Init.
// Records are JSON, one per line, tagged with the process id.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}
	if !opts.Enabled {
		L = discard()
		return nil
	}

	w := opts.Writer
	if w == nil {
		f, err := openDaily(opts.LogDir, time.Now())
		if err != nil {
			return err
		}
		file, w = f, f
	}

	L = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level})).
		With("pid", os.Getpid())
	return nil
}

// Close flushes and closes the log file, if one is open, and resets L to
// discard.
func Close() error {
	L = discard()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// openDaily opens (appending) psdmask-YYYY-MM-DD.log under dir after pruning
// files past retention.
func openDaily(dir string, now time.Time) (*os.File, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".psdmask", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	cleanOldLogs(dir, now)

	name := filepath.Join(dir, logPrefix+now.Format(time.DateOnly)+logSuffix)
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// cleanOldLogs removes daily files older than retentionDays. Errors are ignored.
func cleanOldLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		stamp, ok := strings.CutPrefix(entry.Name(), logPrefix)
		if !ok {
			continue
		}
		stamp, ok = strings.CutSuffix(stamp, logSuffix)
		if !ok {
			continue
		}
		day, err := time.Parse(time.DateOnly, stamp)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(filepath.Join(dir, entry.Name()))
		}
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
