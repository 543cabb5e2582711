//go:build !android

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"drift/internal/config"
	"drift/internal/game"
	"drift/internal/logging"
)

func main() {
	configDir := pflag.StringP("config", "c", ".", "directory containing drift.json")
	logLevel := pflag.String("log-level", "", "override the configured log level")
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "drift: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogJSON)
	if err := game.RunDesktop(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
