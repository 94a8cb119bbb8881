package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"log/slog"
)

// Settings holds all runtime configuration
type Settings struct {
	// Data preview
	PreviewRows int

	// Inspection history
	HistoryFile string
	NoHistory   bool

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		PreviewRows: 100,
		HistoryFile: defaultHistoryFile(),
		NoHistory:   false,
		LogLevel:    slog.LevelError, // Only errors by default; the TUI owns the terminal
		LogFormat:   "text",
		LogFile:     "", // Empty = stderr
	}
}

// defaultHistoryFile places the inspection database under the XDG data dir.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "datanomy-history.db"
	}
	return filepath.Join(home, ".local", "share", "datanomy", "history.db")
}

// LoadSettings creates settings from defaults and applies environment
// variable overrides
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if previewRows := os.Getenv("DATANOMY_PREVIEW_ROWS"); previewRows != "" {
		if n, err := strconv.Atoi(previewRows); err == nil && n > 0 {
			settings.PreviewRows = n
		}
	}

	if historyFile := os.Getenv("DATANOMY_HISTORY_FILE"); historyFile != "" {
		settings.HistoryFile = historyFile
	}

	if noHistory := os.Getenv("DATANOMY_NO_HISTORY"); noHistory != "" {
		settings.NoHistory = strings.ToLower(noHistory) == "true"
	}

	if logLevel := os.Getenv("DATANOMY_LOG_LEVEL"); logLevel != "" {
		if level, err := parseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("DATANOMY_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("DATANOMY_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// ConfigureLogger sets up the global logger based on settings
func (s *Settings) ConfigureLogger() *slog.Logger {
	var handler slog.Handler

	// Set output destination
	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	opts := &slog.HandlerOptions{
		Level: s.LogLevel,
	}

	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// Validate checks if settings are valid
func (s *Settings) Validate() error {
	if s.LogFormat != "text" && s.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", s.LogFormat)
	}
	if s.PreviewRows <= 0 {
		return fmt.Errorf("preview rows must be positive, got %d", s.PreviewRows)
	}
	return nil
}
