// Package cave implements the procedurally generated, wraparound-scrolling
// cave: a fixed tile grid whose columns are recycled as a circular buffer.
package cave

// Tile is a single grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Wall
)

// String returns a one-word name for the tile.
func (t Tile) String() string {
	if t == Wall {
		return "wall"
	}
	return "empty"
}

// Grid is a fixed-size rows x cols tile array stored column-major in one
// flat buffer, so a whole column is contiguous and can be regenerated in place.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid allocates an all-Empty grid. Dimensions never change afterwards.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, rows*cols),
	}
}

// Rows returns the grid height.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid width.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	return col*g.rows + row
}

// At returns the tile at (row, col). The second result is false, and the tile
// Empty, when the cell does not exist.
func (g *Grid) At(row, col int) (Tile, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	return g.tiles[g.index(row, col)], true
}

// Set stores a tile. Out-of-range writes are ignored.
func (g *Grid) Set(row, col int, t Tile) {
	if !g.InBounds(row, col) {
		return
	}
	g.tiles[g.index(row, col)] = t
}

// Column returns the tiles of one column, top to bottom, aliasing the grid
// storage. It returns nil for an out-of-range column.
func (g *Grid) Column(col int) []Tile {
	if col < 0 || col >= g.cols {
		return nil
	}
	start := g.index(0, col)
	return g.tiles[start : start+g.rows]
}
