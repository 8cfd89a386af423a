package minihistory

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/config"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/internal"
	"github.com/BrandonKowalski/minihistory/pkg/minihistory/tap"
)

// Options configures a History. The zero value is usable.
type Options struct {
	AppConfig     *config.AppConfig     // Tab bar source, takes precedence over AppConfigPath
	AppConfigPath string                // app.json, .toml or .yaml read on first tab lookup
	Locale        string                // BCP 47 tag for error messages (e.g. "zh-CN"), English by default
	Logger        *slog.Logger          // Defaults to the package logger
	Registerer    prometheus.Registerer // Enables action and navigation counters when set
	Tap           *tap.Tap              // Router slot tap, tap.Default unless overridden
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return internal.GetLogger()
}

func (o Options) observerTap() *tap.Tap {
	if o.Tap != nil {
		return o.Tap
	}
	return tap.Default
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before creating the first History to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the package logger used when Options.Logger is nil.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file opened by SetLogPath, if any.
func CloseLogger() {
	internal.CloseLogger()
}
