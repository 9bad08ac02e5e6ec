package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

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

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	logOut, err := cfg.OpenLog()
	if err != nil {
		slog.Error("open log", "error", err)
		os.Exit(1)
	}
	defer logOut.Close()
	logger := cfg.Logger(logOut)
	slog.SetDefault(logger)

	tmpl, err := cfg.Template()
	if err != nil {
		slog.Error("build ship template", "error", err)
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

	p := tea.NewProgram(
		newModel(eng, cfg.CellWidth, cfg.CellHeight),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("terminal ui", "error", err)
		os.Exit(1)
	}
}
