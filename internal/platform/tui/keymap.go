package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkositsyn/temprun/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
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
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	case "g":
		return core.ActionToggleGesture, false
	}

	return core.ActionNone, false
}

// GestureRune extracts the rune for the keyboard gesture backend, or 0 when
// the key is not a single printable rune.
func (km *KeyMapper) GestureRune(msg tea.KeyMsg) rune {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0
	}
	return msg.Runes[0]
}
