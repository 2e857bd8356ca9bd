package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump, start a run
	ActionDuck           // S, Down - duck, speed drop while airborne
	ActionConfirm        // Enter - start a run, restart after game over
	ActionBack           // B - close overlays
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// An action present in the frame is held down during that tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clone returns a frame with its own copy of the actions.
func (f InputFrame) Clone() InputFrame {
	c := InputFrame{Actions: make(map[Action]bool, len(f.Actions))}
	for a, on := range f.Actions {
		c.Actions[a] = on
	}
	return c
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HoldLatch turns key press events into held input frames.
// Terminals report presses (and auto-repeats) but never releases, so a
// holdable action stays active for a window of ticks after its last press.
// Other actions are active for exactly one tick.
type HoldLatch struct {
	window    int
	holdable  map[Action]bool
	remaining map[Action]int
}

// NewHoldLatch creates a latch holding the given actions for window ticks.
func NewHoldLatch(window int, holdable ...Action) *HoldLatch {
	if window < 1 {
		window = 1
	}
	l := &HoldLatch{
		window:    window,
		holdable:  make(map[Action]bool, len(holdable)),
		remaining: make(map[Action]int),
	}
	for _, a := range holdable {
		l.holdable[a] = true
	}
	return l
}

// Press records a key press for the action.
func (l *HoldLatch) Press(a Action) {
	if a == ActionNone {
		return
	}
	if l.holdable[a] {
		l.remaining[a] = l.window
		return
	}
	l.remaining[a] = 1
}

// Release drops the action immediately.
func (l *HoldLatch) Release(a Action) {
	delete(l.remaining, a)
}

// Frame returns the actions active for the current tick and ages the latch.
func (l *HoldLatch) Frame() InputFrame {
	frame := NewInputFrame()
	for a, n := range l.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(l.remaining, a)
		} else {
			l.remaining[a] = n - 1
		}
	}
	return frame
}
