package game

import "fmt"

// StatusLine summarizes score and lives. It is empty once the session quit.
func (s *Session) StatusLine() string {
	score, lives, ok := ScoreLives(s.state)
	if !ok {
		return ""
	}
	return fmt.Sprintf("SCORE %d  LIVES %d", score, lives)
}

// Prompt is the call to action shown over the cave, if any.
func (s *Session) Prompt() string {
	switch s.state.(type) {
	case Menu:
		return "SPACE to fly  ESC to quit"
	case Respawning:
		return "Crashed! SPACE to try again"
	default:
		return ""
	}
}
