package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shipyard/shipyard/internal/config"
	"github.com/shipyard/shipyard/internal/editor"
	"github.com/shipyard/shipyard/internal/engine"
	"github.com/shipyard/shipyard/internal/sysclip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	tmpl, err := cfg.Template()
	if err != nil {
		logger.Error("build ship template", "error", err)
		os.Exit(1)
	}

	var mirror editor.Mirror
	if cfg.MirrorClipboard {
		m, err := sysclip.New()
		if err != nil {
			logger.Warn("clipboard mirror disabled", "error", err)
		} else {
			mirror = m
		}
	}

	eng := engine.New(engine.Options{Template: tmpl, Mirror: mirror, Logger: logger})
	if cfg.Sample {
		eng.LoadSample()
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Shipyard")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(newShipyard(eng, cfg.WindowWidth, cfg.WindowHeight)); err != nil {
		logger.Error("window", "error", err)
		os.Exit(1)
	}
}
