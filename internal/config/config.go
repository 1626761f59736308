// Package config loads the gmldraw YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"gmldraw/internal/canvas"
)

const (
	FormatTerm  = "term"
	FormatPNG   = "png"
	FormatTrace = "trace"
)

type Config struct {
	Canvas  CanvasConfig `yaml:"canvas"`
	Palette int          `yaml:"palette"`
	Colors  []string     `yaml:"colors"`
	Output  OutputConfig `yaml:"output"`
	Log     LogConfig    `yaml:"log"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type OutputConfig struct {
	Format string  `yaml:"format"`
	Path   string  `yaml:"path"`
	Zoom   float64 `yaml:"zoom"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default is a 320x200 CGA-sized canvas.
func Default() *Config {
	return &Config{
		Canvas:  CanvasConfig{Width: 320, Height: 200},
		Palette: 1,
		Output:  OutputConfig{Format: FormatTerm, Zoom: 1},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML over the defaults and validates the result.
func Decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Output.Zoom < 1 {
		return fmt.Errorf("output zoom must be at least 1, got %g", c.Output.Zoom)
	}
	switch c.Output.Format {
	case FormatTerm, FormatPNG, FormatTrace:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if c.Output.Format == FormatPNG && c.Output.Path == "" {
		return errors.New("png output needs a path")
	}
	_, err := c.ColorPalette()
	return err
}

// ColorPalette returns the custom colors if any are set, otherwise the
// selected built-in palette.
func (c *Config) ColorPalette() (canvas.Palette, error) {
	if len(c.Colors) > 0 {
		p := make(canvas.Palette, 0, len(c.Colors))
		for _, s := range c.Colors {
			rgb, err := canvas.ParseHex(s)
			if err != nil {
				return nil, err
			}
			p = append(p, rgb)
		}
		return p, nil
	}
	if c.Palette < 0 || c.Palette >= len(canvas.Palettes) {
		return nil, fmt.Errorf("palette must be 0..%d, got %d", len(canvas.Palettes)-1, c.Palette)
	}
	return canvas.Palettes[c.Palette], nil
}
