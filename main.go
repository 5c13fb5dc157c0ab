package main

import (
	"flag"
	"log/slog"
	"os"

	"SketchPad/internal/config"
	"SketchPad/internal/logging"
	"SketchPad/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fatal(err)
	}
	log := logging.New(os.Stderr, level)
	slog.SetDefault(log)

	log.Info("starting sketch pad", "canvas", cfg.Canvas, "export", cfg.Export.Format)
	if err := ui.RunApp(cfg, log); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	slog.Error("sketch pad failed", "err", err)
	os.Exit(1)
}
