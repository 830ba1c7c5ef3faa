package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

var (
	space  = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	escape = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T) (Model, *game.Session) {
	t.Helper()
	s := game.NewSession(config.DefaultCaveConfig(), zeroSource{}, nil)
	m := NewModel(s, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60, Seed: 1})
	return m, s
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelFitsPlayfieldAboveHelp(t *testing.T) {
	m, _ := newTestModel(t)

	if m.screen.Width() != 80 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 80x30", m.screen.Width(), m.screen.Height())
	}
	if m.viewport.PxPerCellX != 10 || m.viewport.PxPerCellY != 20 {
		t.Errorf("viewport scale = %dx%d, expected 10x20", m.viewport.PxPerCellX, m.viewport.PxPerCellY)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 16})
	if m.viewport.PxPerCellX != 20 || m.viewport.PxPerCellY != 40 {
		t.Errorf("after resize scale = %dx%d, expected 20x40", m.viewport.PxPerCellX, m.viewport.PxPerCellY)
	}
}

func TestModelFlapAndRelease(t *testing.T) {
	m, s := newTestModel(t)
	cfg := s.Config()

	m, _ = update(t, m, space)
	if _, ok := s.State().(game.Playing); !ok {
		t.Fatalf("state = %v, expected playing", s.State())
	}

	// Repeats while the key is held do not re-trigger.
	m, _ = update(t, m, space)
	if _, vy := s.Player().Velocity(); vy != cfg.Player.Fall {
		t.Errorf("vy = %v after key repeat, expected %v", vy, cfg.Player.Fall)
	}

	m, cmd := m.handleTick(60_000)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if _, vy := s.Player().Velocity(); vy != cfg.Player.Fall {
		t.Fatalf("vy = %v after release timeout, expected %v", vy, cfg.Player.Fall)
	}

	m, _ = update(t, m, space)
	if _, vy := s.Player().Velocity(); vy != cfg.Player.Lift {
		t.Errorf("vy = %v after flap, expected %v", vy, cfg.Player.Lift)
	}

	m.handleTick(120_000)
	if _, vy := s.Player().Velocity(); vy != cfg.Player.Fall {
		t.Errorf("vy = %v after release, expected %v", vy, cfg.Player.Fall)
	}
}

func TestModelEscapeQuitsFromMenu(t *testing.T) {
	m, s := newTestModel(t)

	m, _ = update(t, m, space)
	m, _ = update(t, m, escape)
	if _, ok := s.State().(game.Menu); !ok {
		t.Fatalf("state = %v, expected menu", s.State())
	}

	m, cmd := update(t, m, escape)
	if !s.Done() {
		t.Fatalf("state = %v, expected quit", s.State())
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "SCORE 0") {
		t.Error("view missing status line")
	}
	if !strings.Contains(view, "SPACE to fly") {
		t.Error("view missing menu prompt")
	}
	if !strings.Contains(view, string(fillRune)) {
		t.Error("view missing cave walls")
	}
}

func TestModelAutopilotStartsRun(t *testing.T) {
	m, s := newTestModel(t)
	m = m.WithAutopilot(game.NewAutopilot(s, 3))

	m.handleTick(0)
	if _, ok := s.State().(game.Playing); !ok {
		t.Errorf("state = %v, expected autopilot to start playing", s.State())
	}
}
