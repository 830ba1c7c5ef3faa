package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
	"github.com/vovakirdan/flappy-dragon/internal/loop"
	"github.com/vovakirdan/flappy-dragon/internal/platform/term"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

// autopilotLookahead is how many columns past the front the autopilot aims.
const autopilotLookahead = 3

var (
	flagRenderer  string
	flagAutopilot bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly through the cave",
	Long: `Start a cave run in this terminal.

Controls:
  Space/Enter  - Start, flap (hold to keep climbing)
  Esc          - Back to menu; quit from the menu
  Q/Ctrl+C     - Quit

Renderers:
  tcell  - Fixed-rate frame loop drawing straight to the terminal (default)
  tea    - Bubble Tea program, same renderer used over SSH

Difficulty options:
  easy   - Five lives, low rock, slow speed-up
  normal - Starts at 30% speed-up
  hard   - Two lives, tall rock, starts at 70% speed-up
  fixed  - No speed-up at all

Examples:
  dragon play
  dragon play --difficulty hard
  dragon play --seed 42 --autopilot
  dragon play --renderer tea --log-file dragon.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "tcell", "Renderer: tcell or tea")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the computer fly")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Loop.TargetFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger.Info("starting run", "seed", rc.Seed, "renderer", flagRenderer, "autopilot", flagAutopilot)

	session := game.NewSession(cfg, rand.New(rand.NewSource(rc.Seed)), logger)

	switch flagRenderer {
	case "tcell":
		err = playTcell(cfg, session, logger)
	case "tea":
		err = playTea(session, rc)
	default:
		err = fmt.Errorf("unknown renderer %q (want tcell or tea)", flagRenderer)
	}

	//nolint:errcheck // Best-effort close, the run is over
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

func playTcell(cfg config.CaveConfig, session *game.Session, logger *log.Logger) error {
	backend, err := term.New(term.Options{
		WorldW:         cfg.Screen.Width,
		WorldH:         cfg.Screen.Height,
		ReleaseAfterMs: cfg.Loop.ReleaseAfterMs,
		HUD:            session,
	})
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer backend.Close()

	var b loop.Backend = backend
	if flagAutopilot {
		b = loop.WithEvents(backend, game.NewAutopilot(session, autopilotLookahead))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := loop.Run(ctx, session, b, loop.Options{
		FrameBudgetMs: cfg.FrameBudgetMs(),
		Logger:        logger,
	})
	logger.Info("run finished", "frames", stats.Frames, "overruns", stats.Overruns)
	return err
}

func playTea(session *game.Session, rc core.RuntimeConfig) error {
	if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	model := tui.NewModel(session, rc)
	if flagAutopilot {
		model = model.WithAutopilot(game.NewAutopilot(session, autopilotLookahead))
	}
	return tui.Run(model)
}
