package core

// Key identifies one of the fixed set of controls the game reacts to.
type Key int

const (
	KeyNone    Key = iota
	KeyConfirm     // Space / Enter - start, flap
	KeyEscape      // Esc - back to menu, quit from menu
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyConfirm:
		return "Confirm"
	case KeyEscape:
		return "Escape"
	default:
		return "None"
	}
}

// EventKind distinguishes key presses, releases and window-close requests.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventQuitRequest
)

// Event is one discrete input event polled from a frontend.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDown builds a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp builds a key release event.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// QuitRequest builds a window-close event.
func QuitRequest() Event {
	return Event{Kind: EventQuitRequest}
}

// Is reports whether the event is of the given kind for the given key.
func (e Event) Is(kind EventKind, k Key) bool {
	return e.Kind == kind && e.Key == k
}

// ReleaseTracker synthesizes key-up events for terminals, which only report
// presses. Auto-repeat presses while the key is held are folded into the first
// press; a release is reported once no press has arrived for holdMs.
type ReleaseTracker struct {
	holdMs   int64
	held     bool
	lastSeen int64
}

// NewReleaseTracker creates a tracker that releases after holdMs of silence.
func NewReleaseTracker(holdMs int64) *ReleaseTracker {
	return &ReleaseTracker{holdMs: holdMs}
}

// Press records a press at now. It returns true only for the first press of a
// hold; repeats return false.
func (t *ReleaseTracker) Press(now int64) bool {
	t.lastSeen = now
	if t.held {
		return false
	}
	t.held = true
	return true
}

// Expired reports whether a held key should now be considered released.
// It returns true at most once per hold.
func (t *ReleaseTracker) Expired(now int64) bool {
	if !t.held || now-t.lastSeen < t.holdMs {
		return false
	}
	t.held = false
	return true
}
