package cave

import "github.com/vovakirdan/flappy-dragon/internal/core"

// SlideOffset returns how many pixels terrain has glided left since the last
// scroll tick, in [0, tileSize].
func (c *Cave) SlideOffset(now int64, tileSize int) int {
	elapsed := now - c.lastScroll
	if elapsed <= 0 {
		return 0
	}
	fraction := core.ClampF(float64(elapsed)/float64(c.params.ScrollIntervalMs), 0, 1)
	return int(float64(tileSize) * fraction)
}

// AppendRects appends one pixel rectangle per Wall cell, columns laid out left
// to right in wraparound order starting at the front column. When sliding is
// true the whole strip is shifted left by the slide offset; otherwise it is
// aligned to the tile grid.
func (c *Cave) AppendRects(dst []core.FillRect, now int64, tileSize int, sliding bool) []core.FillRect {
	offset := 0
	if sliding {
		offset = c.SlideOffset(now, tileSize)
	}

	rows, cols := c.grid.Rows(), c.grid.Cols()
	for i := 0; i < cols; i++ {
		col := (c.frontColumn + i) % cols
		x := i*tileSize - offset
		for row, t := range c.grid.Column(col) {
			if t != Wall {
				continue
			}
			color := core.ColorRock
			if row == 0 || row == rows-1 {
				color = core.ColorRockEdge
			}
			dst = append(dst, core.FillRect{
				Rect:  core.NewRect(x, row*tileSize, tileSize, tileSize),
				Color: color,
			})
		}
	}
	return dst
}
