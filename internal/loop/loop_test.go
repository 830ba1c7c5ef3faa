package loop

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

// fakeBackend is a scripted backend with a manual clock.
type fakeBackend struct {
	now        int64
	workMs     int64 // time consumed between reading the clock and presenting
	events     []core.Event
	delays     []int64
	fills      int
	colors     []core.Color
	presents   int
	presentErr error
}

func (b *fakeBackend) Now() int64 { return b.now }

func (b *fakeBackend) Delay(ms int64) {
	b.delays = append(b.delays, ms)
	b.now += ms
}

func (b *fakeBackend) Poll() (core.Event, bool) {
	if len(b.events) == 0 {
		return core.Event{}, false
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, true
}

func (b *fakeBackend) SetColor(c core.Color) { b.colors = append(b.colors, c) }

func (b *fakeBackend) FillRect(core.Rect) { b.fills++ }

func (b *fakeBackend) Present() error {
	b.presents++
	b.now += b.workMs
	return b.presentErr
}

// countingGame quits after a fixed number of ticks and records what it saw.
type countingGame struct {
	ticksLeft int
	events    []core.Event
	tickTimes []int64
}

func (g *countingGame) HandleEvent(ev core.Event) { g.events = append(g.events, ev) }

func (g *countingGame) Tick(now int64) {
	g.tickTimes = append(g.tickTimes, now)
	g.ticksLeft--
}

func (g *countingGame) Drawables(int64) []core.FillRect {
	return []core.FillRect{{Rect: core.NewRect(0, 0, 1, 1), Color: core.ColorDragon}}
}

func (g *countingGame) Done() bool { return g.ticksLeft <= 0 }

func TestRunPacesFrames(t *testing.T) {
	b := &fakeBackend{workMs: 4}
	g := &countingGame{ticksLeft: 5}

	stats, err := Run(context.Background(), g, b, Options{FrameBudgetMs: 16})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if stats.Frames != 5 || stats.Overruns != 0 {
		t.Errorf("stats = %+v, expected 5 frames and no overruns", stats)
	}
	for i, d := range b.delays {
		if d != 12 {
			t.Errorf("delay %d = %d, expected 12 (budget minus work)", i, d)
		}
	}
	for i, ts := range g.tickTimes {
		if ts != int64(i)*16 {
			t.Errorf("tick %d at %d, expected %d", i, ts, i*16)
		}
	}
	if b.fills != 5 || b.presents != 5 {
		t.Errorf("fills=%d presents=%d, expected 5 each", b.fills, b.presents)
	}
}

func TestRunPollsOneEventPerFrame(t *testing.T) {
	b := &fakeBackend{events: []core.Event{
		core.KeyDown(core.KeyConfirm),
		core.KeyUp(core.KeyConfirm),
		core.KeyDown(core.KeyEscape),
	}}
	g := &countingGame{ticksLeft: 2}

	if _, err := Run(context.Background(), g, b, Options{FrameBudgetMs: 16}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(g.events) != 2 {
		t.Fatalf("handled %d events in 2 frames, expected 2", len(g.events))
	}
	if len(b.events) != 1 {
		t.Errorf("%d events left pending, expected 1", len(b.events))
	}
}

func TestRunReportsOverruns(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	b := &fakeBackend{workMs: 25}
	g := &countingGame{ticksLeft: 3}

	stats, err := Run(context.Background(), g, b, Options{FrameBudgetMs: 16, Logger: logger})
	if err != nil {
		t.Fatalf("overruns must not be fatal: %v", err)
	}
	if stats.Overruns != 3 {
		t.Errorf("Overruns = %d, expected 3", stats.Overruns)
	}
	if len(b.delays) != 0 {
		t.Errorf("loop should not sleep after an overrun, slept %v", b.delays)
	}
	if !strings.Contains(buf.String(), "frame overrun") {
		t.Errorf("overrun not logged: %q", buf.String())
	}
}

func TestRunStopsOnPresentError(t *testing.T) {
	boom := errors.New("surface lost")
	b := &fakeBackend{presentErr: boom}
	g := &countingGame{ticksLeft: 10}

	stats, err := Run(context.Background(), g, b, Options{FrameBudgetMs: 16})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, expected wrapped %v", err, boom)
	}
	if stats.Frames != 0 {
		t.Errorf("Frames = %d, expected 0", stats.Frames)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &countingGame{ticksLeft: 10}
	_, err := Run(ctx, g, &fakeBackend{}, Options{FrameBudgetMs: 16})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if len(g.tickTimes) != 0 {
		t.Error("no tick should run after cancellation")
	}
}

func TestWithEventsPrefersBackend(t *testing.T) {
	b := &fakeBackend{events: []core.Event{core.KeyDown(core.KeyEscape)}}
	extra := &fakeBackend{events: []core.Event{core.KeyDown(core.KeyConfirm)}}
	merged := WithEvents(b, extra)

	if ev, _ := merged.Poll(); !ev.Is(core.EventKeyDown, core.KeyEscape) {
		t.Errorf("first Poll() = %+v, expected backend escape", ev)
	}
	if ev, _ := merged.Poll(); !ev.Is(core.EventKeyDown, core.KeyConfirm) {
		t.Errorf("second Poll() = %+v, expected extra confirm", ev)
	}
	if _, ok := merged.Poll(); ok {
		t.Error("both sources drained: expected no event")
	}
}

func TestRunSessionEndToEnd(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	s := game.NewSession(cfg, zeroSource{}, nil)

	b := &fakeBackend{events: []core.Event{
		core.KeyDown(core.KeyConfirm), // menu -> playing
		core.KeyDown(core.KeyEscape),  // playing -> menu
		core.KeyDown(core.KeyEscape),  // menu -> quit
	}}

	stats, err := Run(context.Background(), s, b, Options{FrameBudgetMs: cfg.FrameBudgetMs()})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !s.Done() {
		t.Fatalf("session should have quit, state %v", s.State())
	}
	if stats.Frames != 3 {
		t.Errorf("Frames = %d, expected 3", stats.Frames)
	}
	if b.fills != 3*(2*cfg.Cols()+1) {
		t.Errorf("fills = %d, expected %d", b.fills, 3*(2*cfg.Cols()+1))
	}
}

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }
