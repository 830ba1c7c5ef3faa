// Package game drives a cave run: the Menu / Playing / Respawning / Quit state
// machine, input handling, and the per-tick physics, collision and scoring pass.
package game

import "fmt"

// State is the closed set of game states. Only types in this package
// implement it: Menu, Playing, Respawning and Quit.
type State interface {
	fmt.Stringer
	isState()
}

// Menu is the start prompt.
type Menu struct {
	Score int
	Lives int
}

// Playing is an active run.
type Playing struct {
	Score int
	Lives int
}

// Respawning waits for confirmation after a crash.
type Respawning struct {
	Score int
	Lives int
}

// Quit is terminal.
type Quit struct{}

func (Menu) isState()       {}
func (Playing) isState()    {}
func (Respawning) isState() {}
func (Quit) isState()       {}

func (s Menu) String() string       { return fmt.Sprintf("menu(score=%d, lives=%d)", s.Score, s.Lives) }
func (s Playing) String() string    { return fmt.Sprintf("playing(score=%d, lives=%d)", s.Score, s.Lives) }
func (s Respawning) String() string { return fmt.Sprintf("respawning(score=%d, lives=%d)", s.Score, s.Lives) }
func (Quit) String() string         { return "quit" }

// ScoreLives extracts the payload of a non-terminal state. ok is false for Quit.
func ScoreLives(s State) (score, lives int, ok bool) {
	switch s := s.(type) {
	case Menu:
		return s.Score, s.Lives, true
	case Playing:
		return s.Score, s.Lives, true
	case Respawning:
		return s.Score, s.Lives, true
	default:
		return 0, 0, false
	}
}
