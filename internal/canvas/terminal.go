package canvas

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Render prints the raster to a terminal, at most cols cells wide. Each
// cell covers f x 2f pixels since terminal cells are about twice as tall as
// they are wide; the most common non-background color in a cell wins.
func (r *Raster) Render(out *termenv.Output, p Palette, cols int) error {
	w, h := r.Width(), r.Height()
	f := 1
	if cols > 0 && w > cols {
		f = (w + cols - 1) / cols
	}
	styles := make(map[int]termenv.Style)
	var sb strings.Builder
	for y := 0; y < h; y += 2 * f {
		for x := 0; x < w; x += f {
			c := r.dominant(x, y, f, 2*f)
			if c == 0 {
				sb.WriteByte(' ')
				continue
			}
			st, ok := styles[c]
			if !ok {
				st = out.String().Foreground(out.Color(p.Color(c).Hex()))
				styles[c] = st
			}
			sb.WriteString(st.Styled("█"))
		}
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(out, sb.String())
	return err
}

func (r *Raster) dominant(x0, y0, fw, fh int) int {
	var counts map[int]int
	best, bestN := 0, 0
	for y := y0; y < y0+fh; y++ {
		for x := x0; x < x0+fw; x++ {
			c := r.At(x, y)
			if c == 0 {
				continue
			}
			if counts == nil {
				counts = make(map[int]int)
			}
			counts[c]++
			if counts[c] > bestN || (counts[c] == bestN && c < best) {
				best, bestN = c, counts[c]
			}
		}
	}
	return best
}
