package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cyber-coop/varint/conformance"
)

func main() {
	defaults := conformance.DefaultConfig()
	cfg := defaults
	flag.StringVar(&cfg.FixturesDir, "fixtures-dir", defaults.FixturesDir, "path to conformance fixtures dir")
	flag.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "log level: debug|info|warn|error")
	flag.Parse()

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := conformance.ValidateConfig(cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}
	logger := conformance.NewLogger(cfg, os.Stderr)
	if err := generate(cfg, logger); err != nil {
		logger.Error("generate fixtures", "err", err)
		os.Exit(1)
	}
}
