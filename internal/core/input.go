package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionQuit             // Q, Ctrl+C - exit session
	ActionDebug            // F2 - toggle debug overlay
	ActionFpsLimit         // F3 - toggle frame pacing
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionMoveUp           // W, Up arrow
	ActionMoveDown         // S, Down arrow
	ActionDuck             // Ctrl - duck
	ActionJump             // Space - jump
	ActionSprint           // Shift - run speed
	ActionAttack           // X - attack
	ActionMenu             // Escape - back to menu
	ActionClick            // Mouse click
	ActionPause            // P - pause/unpause
	ActionRestart          // R - reload level

	actionCount
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionQuit:      "Quit",
	ActionDebug:     "Debug",
	ActionFpsLimit:  "FpsLimit",
	ActionMoveLeft:  "MoveLeft",
	ActionMoveRight: "MoveRight",
	ActionMoveUp:    "MoveUp",
	ActionMoveDown:  "MoveDown",
	ActionDuck:      "Duck",
	ActionJump:      "Jump",
	ActionSprint:    "Sprint",
	ActionAttack:    "Attack",
	ActionMenu:      "Menu",
	ActionClick:     "Click",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ParseAction resolves an action name as written in keymap files.
// Matching ignores case, underscores and dashes ("move_left" == "MoveLeft").
func ParseAction(name string) (Action, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
	for a := ActionNone; a < actionCount; a++ {
		if strings.ToLower(actionNames[a]) == norm {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// ActionSet is an immutable set of actions active during one frame.
// The zero value is the empty set.
type ActionSet struct {
	bits uint32
}

// NewActionSet returns a set containing the given actions.
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has returns true if a is a member of the set.
func (s ActionSet) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return s.bits&(1<<uint(a)) != 0
}

// With returns a copy of the set that also contains a.
func (s ActionSet) With(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	s.bits |= 1 << uint(a)
	return s
}

// Without returns a copy of the set with a removed.
func (s ActionSet) Without(a Action) ActionSet {
	if a <= ActionNone || a >= actionCount {
		return s
	}
	s.bits &^= 1 << uint(a)
	return s
}

// Union returns the set of actions present in either set.
func (s ActionSet) Union(o ActionSet) ActionSet {
	return ActionSet{bits: s.bits | o.bits}
}

// Empty returns true if no action is set.
func (s ActionSet) Empty() bool {
	return s.bits == 0
}

// Actions lists the members in enum order.
func (s ActionSet) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String renders the set as "{Jump,Sprint}".
func (s ActionSet) String() string {
	names := make([]string, 0, actionCount)
	for _, a := range s.Actions() {
		names = append(names, a.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
