package cave

// Source is the randomness a Cave draws terrain from.
// *math/rand.Rand satisfies it; tests supply scripted sequences.
type Source interface {
	Intn(n int) int
}

// Params configures terrain generation and scroll timing.
type Params struct {
	Rows             int
	Cols             int
	ScrollIntervalMs int64
	MaxMagnitude     int // magnitudes are drawn from [0, MaxMagnitude)
	VisibleMin       int // a magnitude m is carved when VisibleMin < m <= VisibleMax
	VisibleMax       int
}

// Cave owns the tile grid and the scrolling cursor.
type Cave struct {
	grid        *Grid
	rng         Source
	params      Params
	frontColumn int
	lastScroll  int64
}

// New builds a cave with every cell Empty except the ceiling and floor rows.
// The front column starts at 0 and the scroll clock at 0.
func New(p Params, rng Source) *Cave {
	c := &Cave{
		grid:   NewGrid(p.Rows, p.Cols),
		rng:    rng,
		params: p,
	}
	c.initialize()
	return c
}

func (c *Cave) initialize() {
	for col := 0; col < c.grid.Cols(); col++ {
		column := c.grid.Column(col)
		for row := range column {
			column[row] = Empty
		}
		c.sealColumn(col)
	}
	c.frontColumn = 0
	c.lastScroll = 0
}

// sealColumn forces the ceiling and floor cells of a column to Wall.
func (c *Cave) sealColumn(col int) {
	c.grid.Set(0, col, Wall)
	c.grid.Set(c.grid.Rows()-1, col, Wall)
}

// Grid exposes the tile grid for read access.
func (c *Cave) Grid() *Grid {
	return c.grid
}

// FrontColumn returns the column currently at the scrolling edge.
func (c *Cave) FrontColumn() int {
	return c.frontColumn
}

// LastScroll returns the timestamp of the most recent scroll tick.
func (c *Cave) LastScroll() int64 {
	return c.lastScroll
}

// ScrollInterval returns the current scroll interval in milliseconds.
func (c *Cave) ScrollInterval() int64 {
	return c.params.ScrollIntervalMs
}

// SetScrollInterval changes the scroll interval; non-positive values are ignored.
func (c *Cave) SetScrollInterval(ms int64) {
	if ms > 0 {
		c.params.ScrollIntervalMs = ms
	}
}

// Tile looks up a cell. Missing cells report (Empty, false).
func (c *Cave) Tile(row, col int) (Tile, bool) {
	return c.grid.At(row, col)
}

func (c *Cave) lastColumn() int {
	return c.grid.Cols() - 1
}

// Scroll advances the cave by one column if at least one scroll interval has
// passed since the previous tick. It reports whether a tick fired.
//
// The column regenerated is the one just behind the front, about to leave the
// screen; its storage is reused for the terrain entering on the far side.
func (c *Cave) Scroll(now int64) bool {
	if now-c.lastScroll < c.params.ScrollIntervalMs {
		return false
	}
	c.lastScroll = now

	target := c.lastColumn()
	if c.frontColumn > 1 {
		target = c.frontColumn - 1
	}
	c.generateColumn(target)

	if c.frontColumn >= c.lastColumn() {
		c.frontColumn = 0
	} else {
		c.frontColumn++
	}
	return true
}

// generateColumn refills one column: sealed ceiling and floor, then an
// optional stalactite and stalagmite.
func (c *Cave) generateColumn(col int) {
	column := c.grid.Column(col)
	for row := range column {
		column[row] = Empty
	}
	c.sealColumn(col)

	stalactite := c.rng.Intn(c.params.MaxMagnitude)
	stalagmite := c.rng.Intn(c.params.MaxMagnitude)

	last := len(column) - 1
	if c.visible(stalactite) {
		for row := 1; row <= stalactite && row < last; row++ {
			column[row] = Wall
		}
	}
	if c.visible(stalagmite) {
		for row := last - 1; row >= last-stalagmite && row > 0; row-- {
			column[row] = Wall
		}
	}
}

func (c *Cave) visible(magnitude int) bool {
	return magnitude > c.params.VisibleMin && magnitude <= c.params.VisibleMax
}

// ColumnWallCount counts Wall cells in a column; 0 for a missing column.
func (c *Cave) ColumnWallCount(col int) int {
	n := 0
	for _, t := range c.grid.Column(col) {
		if t == Wall {
			n++
		}
	}
	return n
}

// VerticalOpeningCenter returns the row halfway between the highest and lowest
// Empty cells of a column. A column with no Empty cell (or a missing column)
// yields the grid's vertical center.
func (c *Cave) VerticalOpeningCenter(col int) int {
	top, bottom := -1, -1
	for row, t := range c.grid.Column(col) {
		if t != Empty {
			continue
		}
		if top < 0 {
			top = row
		}
		bottom = row
	}
	if top < 0 {
		return c.grid.Rows() / 2
	}
	return (top + bottom) / 2
}
