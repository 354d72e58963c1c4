package conformance

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type Config struct {
	FixturesDir string `json:"fixtures_dir"`
	LogLevel    string `json:"log_level"`
}

var allowedLogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func DefaultConfig() Config {
	return Config{
		FixturesDir: "conformance/fixtures",
		LogLevel:    "info",
	}
}

func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.FixturesDir) == "" {
		return errors.New("fixtures_dir is required")
	}
	logLevel := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	return nil
}

// NewLogger builds a text logger on w at cfg.LogLevel. Unknown levels fall
// back to info; callers are expected to have run ValidateConfig.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	level, ok := allowedLogLevels[strings.ToLower(strings.TrimSpace(cfg.LogLevel))]
	if !ok {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
