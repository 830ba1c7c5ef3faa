package core

// Color represents a fill color for a drawable rectangle.
// Frontends map it to ANSI colors or tcell colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRock          // cave walls
	ColorRockEdge      // ceiling and floor rows
	ColorDragon        // player sprite
	ColorDragonHurt    // player sprite while respawning
	ColorPrompt        // menu / respawn prompt text
)

// FillRect is a single colored rectangle handed to a renderer.
type FillRect struct {
	Rect  Rect
	Color Color
}
