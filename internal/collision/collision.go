// Package collision decides wall hits and cleared obstacles from tile lookups.
//
// The sprite stays at a fixed horizontal position while the world scrolls
// beneath it, so both checks read the cave's front column rather than the
// column under the sprite.
package collision

import (
	"github.com/vovakirdan/flappy-dragon/internal/cave"
	"github.com/vovakirdan/flappy-dragon/internal/player"
)

// boundaryWalls is the wall count of a column holding only ceiling and floor.
const boundaryWalls = 2

// HasCollided reports whether the tile at the player's row in the front
// column is a wall. Cells outside the grid never collide.
func HasCollided(p *player.Player, c *cave.Cave) bool {
	row, _ := p.GridPosition()
	tile, ok := c.Tile(row, c.FrontColumn())
	return ok && tile == cave.Wall
}

// HasClearedObstacle reports whether the front column holds an obstacle
// beyond the ceiling and floor and the player is not touching it.
func HasClearedObstacle(p *player.Player, c *cave.Cave) bool {
	if HasCollided(p, c) {
		return false
	}
	return c.ColumnWallCount(c.FrontColumn()) > boundaryWalls
}
