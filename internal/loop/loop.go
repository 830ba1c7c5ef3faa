// Package loop runs the fixed-cadence frame loop: poll at most one input
// event, advance the game one tick, draw, then sleep out the frame budget.
// Everything happens on the calling goroutine.
package loop

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Surface accepts fill primitives and presents the finished frame.
type Surface interface {
	SetColor(c core.Color)
	FillRect(r core.Rect)
	Present() error
}

// Clock is a monotonic millisecond tick source.
type Clock interface {
	Now() int64
}

// Sleeper blocks for a number of milliseconds.
type Sleeper interface {
	Delay(ms int64)
}

// EventSource yields pending input without blocking. ok is false when no
// event is waiting.
type EventSource interface {
	Poll() (ev core.Event, ok bool)
}

// Backend is the windowing collaborator the loop drives.
type Backend interface {
	Surface
	Clock
	Sleeper
	EventSource
}

// Game is what the loop advances each frame.
type Game interface {
	HandleEvent(ev core.Event)
	Tick(now int64)
	Drawables(now int64) []core.FillRect
	Done() bool
}

// Options configures a Run.
type Options struct {
	FrameBudgetMs int64       // target frame duration, e.g. 16 for 60 Hz
	Logger        *log.Logger // overrun notices; nil discards
}

// Stats summarizes a finished Run.
type Stats struct {
	Frames   int
	Overruns int
}

// Run loops until the game is done or ctx is cancelled. Cancellation is only
// observed between frames. It returns an error if a frame cannot be presented
// or ctx ends first.
func Run(ctx context.Context, g Game, b Backend, opts Options) (Stats, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var stats Stats
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		now := b.Now()
		if ev, ok := b.Poll(); ok {
			g.HandleEvent(ev)
		}
		g.Tick(now)

		for _, fr := range g.Drawables(now) {
			b.SetColor(fr.Color)
			b.FillRect(fr.Rect)
		}
		if err := b.Present(); err != nil {
			return stats, fmt.Errorf("loop: present frame %d: %w", stats.Frames, err)
		}
		stats.Frames++

		elapsed := b.Now() - now
		if elapsed < opts.FrameBudgetMs {
			b.Delay(opts.FrameBudgetMs - elapsed)
			continue
		}
		stats.Overruns++
		logger.Warn("frame overrun", "frame", stats.Frames, "elapsed_ms", elapsed, "budget_ms", opts.FrameBudgetMs)
	}

	logger.Debug("loop finished", "frames", stats.Frames, "overruns", stats.Overruns)
	return stats, nil
}

// WithEvents returns a backend whose Poll drains b first and falls back to
// extra when b has nothing pending.
func WithEvents(b Backend, extra EventSource) Backend {
	return &mergedBackend{Backend: b, extra: extra}
}

type mergedBackend struct {
	Backend
	extra EventSource
}

func (m *mergedBackend) Poll() (core.Event, bool) {
	if ev, ok := m.Backend.Poll(); ok {
		return ev, true
	}
	return m.extra.Poll()
}
