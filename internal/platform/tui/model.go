package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

// Model is the Bubble Tea model for one cave session.
type Model struct {
	session  *game.Session
	pilot    *game.Autopilot
	screen   *core.Screen
	viewport core.Viewport
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	release  *core.ReleaseTracker
	start    time.Time
	now      int64 // ms since start at the last tick
	quitting bool
}

// NewModel creates a model for the session sized to the terminal in cfg.
func NewModel(s *game.Session, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = s.Config().Loop.TargetFPS
	}

	m := Model{
		session: s,
		screen:  core.NewScreen(0, 0),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		release: core.NewReleaseTracker(s.Config().Loop.ReleaseAfterMs),
		start:   time.Now(),
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// WithAutopilot returns a copy of the model that lets p fly the dragon.
func (m Model) WithAutopilot(p *game.Autopilot) Model {
	m.pilot = p
	return m
}

// resize fits the playfield above a one-line help bar.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.screen.Resize(max(width, 0), max(height-1, 0))

	cfg := m.session.Config()
	m.viewport = core.FitViewport(cfg.Screen.Width, cfg.Screen.Height, m.screen.Width(), m.screen.Height())
}

func (m Model) elapsed(t time.Time) int64 {
	return t.Sub(m.start).Milliseconds()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, m.elapsed(time.Now()))

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(m.elapsed(time.Time(msg)))
	}

	return m, nil
}

// handleKey feeds a key press into the session.
func (m Model) handleKey(msg tea.KeyMsg, now int64) (Model, tea.Cmd) {
	switch m.keys.Classify(msg) {
	case InputQuit:
		m.session.HandleEvent(core.QuitRequest())
	case InputBack:
		m.session.HandleEvent(core.KeyDown(core.KeyEscape))
	case InputFlap:
		if m.release.Press(now) {
			m.session.HandleEvent(core.KeyDown(core.KeyConfirm))
		}
	}
	return m.quitIfDone(nil)
}

// handleTick advances the session one frame.
func (m Model) handleTick(now int64) (Model, tea.Cmd) {
	m.now = now

	if m.release.Expired(now) {
		m.session.HandleEvent(core.KeyUp(core.KeyConfirm))
	}
	if m.pilot != nil {
		if ev, ok := m.pilot.Poll(); ok {
			m.session.HandleEvent(ev)
		}
	}
	m.session.Tick(now)

	return m.quitIfDone(tickCmd(m.config.TickRate))
}

func (m Model) quitIfDone(next tea.Cmd) (Model, tea.Cmd) {
	if m.session.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, next
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	Rasterize(m.screen, m.viewport, m.session.Drawables(m.now))
	m.screen.DrawText(0, 0, m.session.StatusLine(), core.ColorPrompt)
	if prompt := m.session.Prompt(); prompt != "" {
		m.screen.DrawTextCentered(m.screen.Height()/2, prompt, core.ColorPrompt)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session and blocks until it quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
