// Package term is a tcell frontend for the frame loop. It projects the pixel
// world onto terminal cells, paints walls and the dragon as colored blocks,
// and turns key presses into game events.
package term

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ErrClosed is returned by Present after Close.
var ErrClosed = errors.New("term: screen closed")

const eventBuffer = 64

// HUD supplies text drawn over the playfield each frame.
type HUD interface {
	StatusLine() string
	Prompt() string
}

// Options configures a Backend.
type Options struct {
	WorldW, WorldH int   // pixel size of the game world
	ReleaseAfterMs int64 // silence after which a held key counts as released
	HUD            HUD   // optional
}

// Backend implements loop.Backend on top of a tcell screen.
type Backend struct {
	screen   tcell.Screen
	opts     Options
	start    time.Time
	viewport core.Viewport
	styles   map[core.Color]tcell.Style
	current  tcell.Style

	release *core.ReleaseTracker
	pending []core.Event
	events  chan tcell.Event
	quit    chan struct{}

	closeOnce sync.Once
	closed    bool
}

// New opens the controlling terminal.
func New(opts Options) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Open(screen, opts)
}

// Open initializes screen and starts pumping its events. The backend owns
// the screen from here on; Close finalizes it.
func Open(screen tcell.Screen, opts Options) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()

	b := &Backend{
		screen:  screen,
		opts:    opts,
		start:   time.Now(),
		styles:  defaultStyles(),
		current: tcell.StyleDefault,
		release: core.NewReleaseTracker(opts.ReleaseAfterMs),
		events:  make(chan tcell.Event, eventBuffer),
		quit:    make(chan struct{}),
	}
	b.fit()

	go b.pump()
	return b, nil
}

func defaultStyles() map[core.Color]tcell.Style {
	block := func(c tcell.Color) tcell.Style {
		return tcell.StyleDefault.Background(c).Foreground(c)
	}
	return map[core.Color]tcell.Style{
		core.ColorDefault:    tcell.StyleDefault,
		core.ColorRock:       block(tcell.ColorOlive),
		core.ColorRockEdge:   block(tcell.ColorMaroon),
		core.ColorDragon:     block(tcell.ColorGreen),
		core.ColorDragonHurt: block(tcell.ColorRed),
		core.ColorPrompt:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// pump forwards screen events until the screen is finalized.
func (b *Backend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		}
	}
}

func (b *Backend) fit() {
	w, h := b.screen.Size()
	b.viewport = core.FitViewport(b.opts.WorldW, b.opts.WorldH, w, h)
}

// Viewport returns the current pixel to cell projection.
func (b *Backend) Viewport() core.Viewport {
	return b.viewport
}

// Now returns milliseconds since the backend was opened.
func (b *Backend) Now() int64 {
	return time.Since(b.start).Milliseconds()
}

// Delay sleeps for ms milliseconds.
func (b *Backend) Delay(ms int64) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

// SetColor selects the style used by subsequent FillRect calls.
func (b *Backend) SetColor(c core.Color) {
	style, ok := b.styles[c]
	if !ok {
		style = tcell.StyleDefault
	}
	b.current = style
}

// FillRect paints every cell the pixel rectangle touches.
func (b *Backend) FillRect(r core.Rect) {
	cells := b.viewport.Project(r)
	if cells.Empty() {
		return
	}
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			b.screen.SetContent(x, y, ' ', nil, b.current)
		}
	}
}

// Present draws the HUD, shows the frame and clears the back buffer for the
// next one.
func (b *Backend) Present() error {
	if b.closed {
		return ErrClosed
	}
	b.drawHUD()
	b.screen.Show()
	b.screen.Clear()
	return nil
}

func (b *Backend) drawHUD() {
	if b.opts.HUD == nil {
		return
	}
	style := b.styles[core.ColorPrompt]
	b.drawText(0, 0, b.opts.HUD.StatusLine(), style)

	prompt := b.opts.HUD.Prompt()
	if prompt == "" {
		return
	}
	w, h := b.screen.Size()
	b.drawText(core.Clamp((w-len([]rune(prompt)))/2, 0, w), h/2, prompt, style)
}

func (b *Backend) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		b.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Poll returns the next pending game event without blocking.
func (b *Backend) Poll() (core.Event, bool) {
	return b.pollAt(b.Now())
}

func (b *Backend) pollAt(now int64) (core.Event, bool) {
	if b.release.Expired(now) {
		b.pending = append(b.pending, core.KeyUp(core.KeyConfirm))
	}

drain:
	for {
		select {
		case ev := <-b.events:
			b.handle(ev, now)
		default:
			break drain
		}
	}

	if len(b.pending) == 0 {
		return core.Event{}, false
	}
	ev := b.pending[0]
	b.pending = b.pending[1:]
	return ev, true
}

func (b *Backend) handle(ev tcell.Event, now int64) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch classify(ev) {
		case inputConfirm:
			if b.release.Press(now) {
				b.pending = append(b.pending, core.KeyDown(core.KeyConfirm))
			}
		case inputEscape:
			b.pending = append(b.pending, core.KeyDown(core.KeyEscape))
		case inputQuit:
			b.pending = append(b.pending, core.QuitRequest())
		}
	case *tcell.EventResize:
		b.screen.Sync()
		b.fit()
	}
}

// Close stops the event pump and restores the terminal.
func (b *Backend) Close() {
	b.closeOnce.Do(func() {
		b.closed = true
		close(b.quit)
		b.screen.Fini()
	})
}

type input int

const (
	inputNone input = iota
	inputConfirm
	inputEscape
	inputQuit
)

// classify maps a terminal key to a game input.
func classify(ev *tcell.EventKey) input {
	switch ev.Key() {
	case tcell.KeyEnter:
		return inputConfirm
	case tcell.KeyEscape:
		return inputEscape
	case tcell.KeyCtrlC:
		return inputQuit
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
			return inputQuit
		}
		switch r {
		case ' ':
			return inputConfirm
		case 'q', 'Q':
			return inputQuit
		}
	}
	return inputNone
}
