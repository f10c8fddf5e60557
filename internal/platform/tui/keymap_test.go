package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testBindings() map[string]core.ActionSet {
	return map[string]core.ActionSet{
		"a":      core.NewActionSet(core.ActionMoveLeft),
		"A":      core.NewActionSet(core.ActionMoveLeft, core.ActionSprint),
		"p":      core.NewActionSet(core.ActionPause),
		"q":      core.NewActionSet(core.ActionQuit),
		"ctrl+c": core.NewActionSet(core.ActionQuit),
		"esc":    core.NewActionSet(core.ActionMenu),
	}
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(testBindings(), 3)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.ActionSet
	}{
		{"single action", runeKey('a'), core.NewActionSet(core.ActionMoveLeft)},
		{"several actions", runeKey('A'), core.NewActionSet(core.ActionMoveLeft, core.ActionSprint)},
		{"ctrl key", tea.KeyMsg{Type: tea.KeyCtrlC}, core.NewActionSet(core.ActionQuit)},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.NewActionSet(core.ActionMenu)},
		{"unbound", runeKey('z'), core.NewActionSet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyMapperHoldWindow(t *testing.T) {
	km := NewKeyMapper(testBindings(), 3)

	km.Press(runeKey('a'))
	for i := 0; i < 3; i++ {
		if !km.Frame().Has(core.ActionMoveLeft) {
			t.Fatalf("frame %d: MoveLeft should still be held", i)
		}
	}
	if !km.Frame().Empty() {
		t.Error("hold should expire after the window")
	}
}

func TestKeyMapperRepeatRefreshes(t *testing.T) {
	km := NewKeyMapper(testBindings(), 2)

	km.Press(runeKey('a'))
	km.Frame()
	// Auto-repeat before the window runs out keeps the action held.
	km.Press(runeKey('a'))
	km.Frame()
	if !km.Frame().Has(core.ActionMoveLeft) {
		t.Error("repeat should refresh the hold window")
	}
}

func TestKeyMapperUnion(t *testing.T) {
	km := NewKeyMapper(testBindings(), 4)

	km.Press(runeKey('a'))
	km.Press(runeKey('p'))
	got := km.Frame()
	want := core.NewActionSet(core.ActionMoveLeft, core.ActionPause)
	if got != want {
		t.Errorf("Frame() = %v, want %v", got, want)
	}

	km.Release()
	if !km.Frame().Empty() {
		t.Error("Release should drop every hold")
	}
}

func TestKeyMapperDefaults(t *testing.T) {
	km := NewKeyMapper(nil, 0)
	if km.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, want %d", km.holdTicks, DefaultHoldTicks)
	}
	if !km.Press(runeKey('a')).Empty() {
		t.Error("nil bindings should map nothing")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionRuns},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestFrameInterval(t *testing.T) {
	if got := frameInterval(50, true); got.Milliseconds() != 20 {
		t.Errorf("limited interval = %v, want 20ms", got)
	}
	if got := frameInterval(0, true); got != frameInterval(60, true) {
		t.Errorf("zero tick rate should fall back to 60, got %v", got)
	}
	if got := frameInterval(60, false); got != unlimitedInterval {
		t.Errorf("unlimited interval = %v", got)
	}
}
