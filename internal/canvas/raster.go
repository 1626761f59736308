package canvas

import "math"

// Raster is an in-memory grid of palette indices. Lines are plotted with
// Bresenham's algorithm; pixels that fall outside the grid are dropped.
type Raster struct {
	Grid   [][]int
	Active int
}

func NewRaster(width, height int) *Raster {
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
	}
	return &Raster{Grid: grid, Active: 1}
}

func (r *Raster) Width() int {
	if len(r.Grid) == 0 {
		return 0
	}
	return len(r.Grid[0])
}

func (r *Raster) Height() int {
	return len(r.Grid)
}

func (r *Raster) InBounds(x, y int) bool {
	return y >= 0 && y < len(r.Grid) && x >= 0 && x < len(r.Grid[0])
}

// At returns the color at (x,y), or 0 outside the grid.
func (r *Raster) At(x, y int) int {
	if !r.InBounds(x, y) {
		return 0
	}
	return r.Grid[y][x]
}

func (r *Raster) SetColor(index int) {
	r.Active = index
}

func (r *Raster) DrawLine(x1, y1, x2, y2, color int) {
	if !r.InBounds(x1, y1) || !r.InBounds(x2, y2) {
		var ok bool
		if x1, y1, x2, y2, ok = clip(x1, y1, x2, y2, r.Width()-1, r.Height()-1); !ok {
			return
		}
	}
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		if r.InBounds(x1, y1) {
			r.Grid[y1][x1] = color
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clip trims a segment to the rectangle [0,maxX]x[0,maxY] (Liang-Barsky)
// so that long off-grid lines are not walked pixel by pixel.
func clip(x1, y1, x2, y2, maxX, maxY int) (int, int, int, int, bool) {
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	fx, fy := float64(x1), float64(y1)
	dx, dy := float64(x2-x1), float64(y2-y1)
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{fx, float64(maxX) - fx, fy, float64(maxY) - fy}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return int(math.Round(fx + t0*dx)), int(math.Round(fy + t0*dy)),
		int(math.Round(fx + t1*dx)), int(math.Round(fy + t1*dy)), true
}
