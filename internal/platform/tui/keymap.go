package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// DefaultHoldTicks is how many ticks a key press keeps its actions held.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to actions.
//
// Terminals report key presses (and auto-repeat) but no releases, so a
// press holds its actions for a number of ticks. Auto-repeat refreshes the
// window, which keeps a physically held key continuously active.
type KeyMapper struct {
	bindings  map[string]core.ActionSet
	holdTicks int
	held      map[core.Action]int
}

// NewKeyMapper creates a key mapper over the given bindings.
// A holdTicks below 1 falls back to DefaultHoldTicks.
func NewKeyMapper(bindings map[string]core.ActionSet, holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	if bindings == nil {
		bindings = make(map[string]core.ActionSet)
	}
	return &KeyMapper{
		bindings:  bindings,
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey returns the actions bound to a key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.ActionSet {
	return km.bindings[msg.String()]
}

// Press records a key press and returns the actions it triggered.
func (km *KeyMapper) Press(msg tea.KeyMsg) core.ActionSet {
	set := km.MapKey(msg)
	for _, a := range set.Actions() {
		km.held[a] = km.holdTicks
	}
	return set
}

// Frame returns the actions held for the coming tick and ages the holds.
func (km *KeyMapper) Frame() core.ActionSet {
	var set core.ActionSet
	for a, left := range km.held {
		set = set.With(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
	return set
}

// Release drops every held action.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionRuns
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionRuns
	}

	return MenuActionNone
}
