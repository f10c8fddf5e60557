package core

import "testing"

func TestActionSetMembership(t *testing.T) {
	s := NewActionSet(ActionJump, ActionSprint)

	if !s.Has(ActionJump) || !s.Has(ActionSprint) {
		t.Error("set should contain Jump and Sprint")
	}
	if s.Has(ActionMoveLeft) {
		t.Error("set should not contain MoveLeft")
	}

	without := s.Without(ActionJump)
	if without.Has(ActionJump) {
		t.Error("Without(Jump) still has Jump")
	}
	if !s.Has(ActionJump) {
		t.Error("Without must not modify the receiver")
	}

	u := without.Union(NewActionSet(ActionMoveLeft))
	if !u.Has(ActionMoveLeft) || !u.Has(ActionSprint) {
		t.Errorf("Union() = %v", u)
	}
}

func TestActionSetIgnoresInvalid(t *testing.T) {
	s := NewActionSet(ActionNone, Action(-1), actionCount, Action(99))
	if !s.Empty() {
		t.Errorf("invalid actions should be ignored, got %v", s)
	}
	if s.Has(ActionNone) {
		t.Error("ActionNone is never a member")
	}
}

func TestActionSetString(t *testing.T) {
	s := NewActionSet(ActionSprint, ActionJump)
	if got := s.String(); got != "{Jump,Sprint}" {
		t.Errorf("String() = %q", got)
	}
	if got := (ActionSet{}).String(); got != "{}" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in       string
		expected Action
	}{
		{"Jump", ActionJump},
		{"move_left", ActionMoveLeft},
		{"MOVE-RIGHT", ActionMoveRight},
		{"fps_limit", ActionFpsLimit},
	}
	for _, tc := range tests {
		got, err := ParseAction(tc.in)
		if err != nil {
			t.Errorf("ParseAction(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseAction(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseAction("teleport"); err == nil {
		t.Error("ParseAction should reject unknown names")
	}
}
