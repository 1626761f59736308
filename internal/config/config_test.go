package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmldraw/internal/canvas"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	p, err := cfg.ColorPalette()
	require.NoError(t, err)
	assert.Equal(t, canvas.Palettes[1], p)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gmldraw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
canvas:
  width: 640
palette: 0
output:
  format: png
  path: out.png
  zoom: 3
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 200, cfg.Canvas.Height, "unset fields keep defaults")
	assert.Equal(t, 0, cfg.Palette)
	assert.Equal(t, OutputConfig{Format: FormatPNG, Path: "out.png", Zoom: 3}, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDecode_CustomColors(t *testing.T) {
	cfg, err := Decode([]byte(`colors: ["#000000", "#ffffff"]`))
	require.NoError(t, err)

	p, err := cfg.ColorPalette()
	require.NoError(t, err)
	assert.Equal(t, canvas.Palette{{R: 0, G: 0, B: 0}, {R: 0xff, G: 0xff, B: 0xff}}, p)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string]string{
		"unknown field": "colour: 3",
		"bad size":      "canvas: {width: 0}",
		"bad zoom":      "output: {zoom: 0.5}",
		"bad format":    "output: {format: gif}",
		"png no path":   "output: {format: png}",
		"bad palette":   "palette: 7",
		"bad color":     `colors: ["blue"]`,
		"not yaml":      "canvas: [",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
