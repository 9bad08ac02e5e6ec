package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/shipyard/shipyard/internal/geometry"
)

// Prefix is prepended to every variable name, e.g. SHIPYARD_HIT_MODE.
const Prefix = "shipyard"

type Config struct {
	LogLevel         slog.Level       `envconfig:"LOG_LEVEL" default:"info"`
	LogFile          string           `envconfig:"LOG_FILE"`
	Outline          geometry.Outline `envconfig:"OUTLINE"`
	OutlineShapefile string           `envconfig:"OUTLINE_SHAPEFILE"`
	HitMode          geometry.HitMode `envconfig:"HIT_MODE" default:"polygon"`
	MirrorClipboard  bool             `envconfig:"MIRROR_CLIPBOARD" default:"false"`
	WindowWidth      int              `envconfig:"WINDOW_WIDTH" default:"1000"`
	WindowHeight     int              `envconfig:"WINDOW_HEIGHT" default:"700"`
	CellWidth        float64          `envconfig:"CELL_WIDTH" default:"4"`
	CellHeight       float64          `envconfig:"CELL_HEIGHT" default:"8"`
	Sample           bool             `envconfig:"SAMPLE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return nil, fmt.Errorf("cell size must be positive, got %gx%g", cfg.CellWidth, cfg.CellHeight)
	}
	return &cfg, nil
}

// Template builds the ship template. A shapefile wins over an inline outline; with neither
// the built-in ship outline is used.
func (c *Config) Template() (geometry.Template, error) {
	outline := geometry.ShipOutline
	switch {
	case c.OutlineShapefile != "":
		o, err := geometry.LoadShapefile(c.OutlineShapefile)
		if err != nil {
			return geometry.Template{}, fmt.Errorf("load outline shapefile: %w", err)
		}
		outline = o
	case len(c.Outline) > 0:
		outline = c.Outline
	}

	t, err := geometry.NewTemplate(outline, c.HitMode)
	if err != nil {
		return geometry.Template{}, fmt.Errorf("build template: %w", err)
	}
	return t, nil
}

// Logger returns a text logger at the configured level writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// OpenLog opens LogFile for appending. With no LogFile set it returns io.Discard.
func (c *Config) OpenLog() (io.WriteCloser, error) {
	if c.LogFile == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
