// Package canvas provides the drawing targets the GML interpreter writes
// to: an in-memory raster that can be shown in a terminal, a PNG image and
// a recorder that traces every request.
package canvas

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or the short "#rgb" form; the leading # is
// optional.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimSpace(s)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 4 && len(h) != 7 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Palette maps small color indices to RGB values. Index 0 is the
// background.
type Palette []RGB

// Palettes are the two four-color CGA palettes.
var Palettes = []Palette{
	{{0x00, 0x00, 0x00}, {0x55, 0xFF, 0x55}, {0xFF, 0x55, 0x55}, {0xFF, 0xFF, 0x55}},
	{{0x00, 0x00, 0x00}, {0x55, 0xFF, 0xFF}, {0xFF, 0x55, 0xFF}, {0xFF, 0xFF, 0xFF}},
}

// Color resolves an index, wrapping out-of-range values.
func (p Palette) Color(i int) RGB {
	if len(p) == 0 {
		return RGB{}
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
