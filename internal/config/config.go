// Package config loads the sketch pad settings from defaults and an
// optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"SketchPad/internal/export"
	"SketchPad/internal/state"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("invalid config")

type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Tools struct {
	Colors []string  `toml:"colors"`
	Sizes  []float32 `toml:"sizes"`
}

type Export struct {
	Format string `toml:"format"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Title  string `toml:"title"`
	Canvas Canvas `toml:"canvas"`
	Tools  Tools  `toml:"tools"`
	Export Export `toml:"export"`
	Log    Log    `toml:"log"`
}

func Default() Config {
	return Config{
		Title:  "Sketch Pad",
		Canvas: Canvas{Width: 1024, Height: 640},
		Tools: Tools{
			Colors: []string{"#000000", "#ef4444", "#f59e0b", "#22c55e", "#3b82f6", "#a855f7"},
			Sizes:  []float32{5, 10, 15, 20},
		},
		Export: Export{Format: "png"},
		Log:    Log{Level: "info"},
	}
}

// Load overlays the TOML file at path on the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := Decode(data, &file); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.overlay(file)
	return cfg, nil
}

// Decode parses TOML into cfg, rejecting unknown keys.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Config) overlay(o Config) {
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.Canvas.Width != 0 {
		c.Canvas.Width = o.Canvas.Width
	}
	if o.Canvas.Height != 0 {
		c.Canvas.Height = o.Canvas.Height
	}
	if o.Tools.Colors != nil {
		c.Tools.Colors = o.Tools.Colors
	}
	if o.Tools.Sizes != nil {
		c.Tools.Sizes = o.Tools.Sizes
	}
	if o.Export.Format != "" {
		c.Export.Format = o.Export.Format
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	palette, err := c.Palette()
	if err != nil {
		return err
	}
	if _, err := state.NewTools(palette, c.Tools.Sizes); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := export.ForFormat(c.Export.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Palette parses the configured color swatches.
func (c Config) Palette() ([]color.NRGBA, error) {
	if len(c.Tools.Colors) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, state.ErrEmptyPalette)
	}
	out := make([]color.NRGBA, 0, len(c.Tools.Colors))
	for i, s := range c.Tools.Colors {
		col, err := state.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("%w: tools.colors[%d]: %v", ErrInvalid, i, err)
		}
		out = append(out, col)
	}
	return out, nil
}
