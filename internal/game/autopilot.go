package game

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Autopilot is an event source that flies the session on its own: it starts
// runs from the prompts and holds or releases confirm to steer toward the
// middle of the opening a few columns ahead.
type Autopilot struct {
	session   *Session
	lookahead int
	holding   bool
}

// NewAutopilot creates an autopilot that aims at the opening lookahead
// columns past the front.
func NewAutopilot(s *Session, lookahead int) *Autopilot {
	return &Autopilot{session: s, lookahead: max(lookahead, 0)}
}

// Poll returns at most one event per call.
func (a *Autopilot) Poll() (core.Event, bool) {
	switch a.session.State().(type) {
	case Menu, Respawning:
		a.holding = true
		return core.KeyDown(core.KeyConfirm), true
	case Playing:
	default:
		return core.Event{}, false
	}

	c := a.session.Cave()
	target := c.VerticalOpeningCenter((c.FrontColumn() + a.lookahead) % c.Grid().Cols())
	row, _ := a.session.Player().GridPosition()

	switch {
	case row > target && !a.holding:
		a.holding = true
		return core.KeyDown(core.KeyConfirm), true
	case row <= target && a.holding:
		a.holding = false
		return core.KeyUp(core.KeyConfirm), true
	}
	return core.Event{}, false
}
