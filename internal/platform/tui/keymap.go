package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trex-runner/internal/core"
)

// holdWindow is how long jump and duck stay held after the last key event.
// It has to bridge the terminal's initial auto-repeat delay.
const holdWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionDuck, false
	case "enter":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	case "p", "esc":
		return core.ActionPause, false
	case "b", "tab":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// NewLatch returns a hold latch for the given tick rate with jump and duck holdable.
func NewLatch(tickRate int) *core.HoldLatch {
	return core.NewHoldLatch(holdTicks(tickRate), core.ActionJump, core.ActionDuck)
}

// MapKeyToLatch records a key press in the latch.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToLatch(msg tea.KeyMsg, latch *core.HoldLatch) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionDuck {
		// Ducking cancels a held jump so the jump release edge fires.
		latch.Release(core.ActionJump)
	}
	latch.Press(action)
	return isQuit
}
