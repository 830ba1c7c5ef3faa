// Package player implements the player sprite: a position integrated from a
// per-tick velocity, clamped to the screen, and mapped onto the tile grid.
package player

import (
	"math"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Bounds describes the world the player moves in.
type Bounds struct {
	ScreenHeight int
	TileSize     int
	Width        int // sprite width
	Height       int // sprite height
}

// Player is the controllable sprite.
type Player struct {
	x, y   float64
	vx, vy float64
	bounds Bounds
}

// New creates a player at the pixel position of the given cell with the given
// initial velocity.
func New(b Bounds, row, col int, vx, vy float64) *Player {
	p := &Player{bounds: b, vx: vx, vy: vy}
	p.ResetTo(row, col)
	return p
}

// Position returns the current pixel position.
func (p *Player) Position() (x, y float64) {
	return p.x, p.y
}

// Velocity returns the current per-tick velocity.
func (p *Player) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

func (p *Player) halfWidth() float64 {
	return float64(p.bounds.Width) / 2
}

func (p *Player) halfHeight() float64 {
	return float64(p.bounds.Height) / 2
}

// ApplyVelocity sets the velocity and immediately moves one step, so a
// control press is felt on the same frame.
func (p *Player) ApplyVelocity(vx, vy float64) {
	p.vx = vx
	p.vy = vy
	p.Integrate()
}

// Integrate advances the position by one tick of velocity, snapping to whole
// pixels, and clamps the vertical position to [halfHeight, screenHeight].
func (p *Player) Integrate() {
	p.x = math.Round(p.x + p.vx)
	p.y = math.Round(p.y + p.vy)
	p.y = core.ClampF(p.y, p.halfHeight(), float64(p.bounds.ScreenHeight))
}

// GridPosition maps the sprite center to a tile cell. A player pinned at the
// top clamp maps to row 0.
func (p *Player) GridPosition() (row, col int) {
	ts := float64(p.bounds.TileSize)
	col = int(math.Floor((p.x + p.halfWidth()) / ts))
	if p.y == p.halfHeight() {
		return 0, col
	}
	row = int(math.Floor((p.y + p.halfHeight()) / ts))
	return row, col
}

// ResetTo teleports the player to the top-left pixel of a tile cell. The
// vertical position is clamped like any other move.
func (p *Player) ResetTo(row, col int) {
	p.x = float64(col * p.bounds.TileSize)
	p.y = core.ClampF(float64(row*p.bounds.TileSize), p.halfHeight(), float64(p.bounds.ScreenHeight))
}

// Rect returns the sprite's bounding rectangle in pixels.
func (p *Player) Rect() core.Rect {
	return core.NewRect(int(p.x), int(p.y), p.bounds.Width, p.bounds.Height)
}
