package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/cave"
	"github.com/vovakirdan/flappy-dragon/internal/collision"
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/player"
)

// Session owns everything one run needs. The cave and player are built once
// and mutated in place; only the state value is replaced on transitions.
type Session struct {
	cfg        config.CaveConfig
	cave       *cave.Cave
	player     *player.Player
	difficulty *config.DifficultyManager
	state      State
	logger     *log.Logger
	ticks      int // ticks spent Playing, drives time-based difficulty
}

// NewSession builds a session in the Menu state. rng feeds cave generation;
// a nil logger discards output.
func NewSession(cfg config.CaveConfig, rng cave.Source, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := cave.New(cave.Params{
		Rows:             cfg.Rows(),
		Cols:             cfg.Cols(),
		ScrollIntervalMs: cfg.Cave.ScrollIntervalMs,
		MaxMagnitude:     cfg.Cave.MaxMagnitude,
		VisibleMin:       cfg.Cave.VisibleMin,
		VisibleMax:       cfg.Cave.VisibleMax,
	}, rng)

	row, col := cfg.RespawnCell()
	p := player.New(player.Bounds{
		ScreenHeight: cfg.Screen.Height,
		TileSize:     cfg.Screen.TileSize,
		Width:        cfg.Player.Width,
		Height:       cfg.Player.Height,
	}, row, col, 0, cfg.Player.Fall)

	s := &Session{
		cfg:        cfg,
		cave:       c,
		player:     p,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		state:      Menu{Score: 0, Lives: cfg.Gameplay.Lives},
		logger:     logger,
	}
	s.cave.SetScrollInterval(s.difficulty.ScrollInterval(cfg.Cave.ScrollIntervalMs, 0, 0))
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Done reports whether the session reached Quit.
func (s *Session) Done() bool {
	_, quit := s.state.(Quit)
	return quit
}

// Cave exposes the cave for read access.
func (s *Session) Cave() *cave.Cave {
	return s.cave
}

// Player exposes the player for read access.
func (s *Session) Player() *player.Player {
	return s.player
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.CaveConfig {
	return s.cfg
}

func (s *Session) transition(next State) {
	if next == s.state {
		return
	}
	s.logger.Debug("state transition", "from", s.state, "to", next)
	s.state = next
}

// HandleEvent applies one input event to the state machine.
func (s *Session) HandleEvent(ev core.Event) {
	switch st := s.state.(type) {
	case Menu:
		switch {
		case ev.Kind == core.EventQuitRequest, ev.Is(core.EventKeyDown, core.KeyEscape):
			s.transition(Quit{})
		case ev.Is(core.EventKeyDown, core.KeyConfirm):
			s.transition(Playing(st))
		}

	case Playing:
		switch {
		case ev.Kind == core.EventQuitRequest:
			s.transition(Quit{})
		case ev.Is(core.EventKeyDown, core.KeyEscape):
			s.transition(Menu(st))
		case ev.Is(core.EventKeyDown, core.KeyConfirm):
			s.player.ApplyVelocity(0, s.cfg.Player.Lift)
		case ev.Is(core.EventKeyUp, core.KeyConfirm):
			s.player.ApplyVelocity(0, s.cfg.Player.Fall)
		}

	case Respawning:
		switch {
		case ev.Kind == core.EventQuitRequest, ev.Is(core.EventKeyDown, core.KeyEscape):
			s.transition(Quit{})
		case ev.Is(core.EventKeyDown, core.KeyConfirm):
			s.transition(Playing(st))
		}

	case Quit:
		// terminal
	}
}

// Tick advances the game by one frame at time now (milliseconds, monotonic).
// Only the Playing state moves the player or the cave.
func (s *Session) Tick(now int64) {
	st, ok := s.state.(Playing)
	if !ok {
		return
	}
	s.ticks++

	s.player.Integrate()
	scrolled := s.cave.Scroll(now)

	switch {
	case collision.HasCollided(s.player, s.cave):
		s.crash(st)
	case scrolled && collision.HasClearedObstacle(s.player, s.cave):
		score := st.Score + s.cfg.Gameplay.PointsPerObstacle
		s.logger.Info("obstacle cleared", "score", score)
		s.transition(Playing{Score: score, Lives: st.Lives})
		s.cave.SetScrollInterval(s.difficulty.ScrollInterval(s.cfg.Cave.ScrollIntervalMs, score, s.ticks))
	case scrolled && s.cfg.Difficulty.Progression.Type == "time":
		s.cave.SetScrollInterval(s.difficulty.ScrollInterval(s.cfg.Cave.ScrollIntervalMs, st.Score, s.ticks))
	}
}

// crash relocates the player to the respawn cell and takes a life.
func (s *Session) crash(st Playing) {
	row, col := s.cfg.RespawnCell()
	s.player.ResetTo(row, col)

	lives := st.Lives - 1
	s.logger.Info("crashed", "score", st.Score, "lives", lives)

	if lives > 0 {
		s.transition(Respawning{Score: st.Score, Lives: lives})
		return
	}

	switch s.cfg.Gameplay.OnLivesExhausted {
	case config.LivesToQuit:
		s.logger.Info("lives exhausted", "score", st.Score, "next", "quit")
		s.transition(Quit{})
	case config.LivesContinue:
		s.transition(Respawning{Score: st.Score, Lives: lives})
	default:
		s.logger.Info("lives exhausted", "score", st.Score, "next", "menu")
		s.ticks = 0
		s.cave.SetScrollInterval(s.difficulty.ScrollInterval(s.cfg.Cave.ScrollIntervalMs, 0, 0))
		s.transition(Menu{Score: 0, Lives: s.cfg.Gameplay.Lives})
	}
}

// Drawables returns the rectangles to fill this frame: every visible cave
// wall, then the player. Terrain slides smoothly only while Playing.
func (s *Session) Drawables(now int64) []core.FillRect {
	_, playing := s.state.(Playing)
	rects := make([]core.FillRect, 0, 2*s.cfg.Cols()+8)
	rects = s.cave.AppendRects(rects, now, s.cfg.Screen.TileSize, playing)

	color := core.ColorDragon
	if _, respawning := s.state.(Respawning); respawning {
		color = core.ColorDragonHurt
	}
	return append(rects, core.FillRect{Rect: s.player.Rect(), Color: color})
}
