package canvas

import (
	"io"

	"github.com/fogleman/gg"
)

// Image draws onto a raster image that can be written as PNG. Coordinates
// are in canvas units; zoom scales the output so small GML drawings stay
// readable.
type Image struct {
	dc      *gg.Context
	palette Palette
	zoom    float64
	Active  int
}

func NewImage(width, height int, zoom float64, p Palette) *Image {
	if zoom < 1 {
		zoom = 1
	}
	dc := gg.NewContext(int(float64(width)*zoom), int(float64(height)*zoom))
	bg := p.Color(0)
	dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	dc.Clear()
	dc.SetLineWidth(zoom)
	dc.SetLineCapSquare()
	return &Image{dc: dc, palette: p, zoom: zoom, Active: 1}
}

func (im *Image) SetColor(index int) {
	im.Active = index
}

func (im *Image) DrawLine(x1, y1, x2, y2, color int) {
	c := im.palette.Color(color)
	im.dc.SetRGB255(int(c.R), int(c.G), int(c.B))
	// pixel centers, so a one-unit line covers exactly one row of pixels
	z := im.zoom
	im.dc.DrawLine((float64(x1)+0.5)*z, (float64(y1)+0.5)*z, (float64(x2)+0.5)*z, (float64(y2)+0.5)*z)
	im.dc.Stroke()
}

// RGBAt returns the color of the output pixel at device coordinates (x,y).
func (im *Image) RGBAt(x, y int) RGB {
	r, g, b, _ := im.dc.Image().At(x, y).RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func (im *Image) WritePNG(w io.Writer) error {
	return im.dc.EncodePNG(w)
}

func (im *Image) SavePNG(path string) error {
	return im.dc.SavePNG(path)
}
