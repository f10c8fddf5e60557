package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

type stubScene struct{ id string }

func (s stubScene) ID() string { return s.id }
func (s stubScene) Title() string { return "Stub " + s.id }
func (s stubScene) Reset(core.RuntimeConfig) {}
func (s stubScene) Step(float64, core.ActionSet) core.StepResult { return core.StepResult{} }
func (s stubScene) Render(*core.Screen) {}
func (s stubScene) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubScene{id: "stub-b"} })
	Register("stub-a", func() Game { return stubScene{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q", g.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[0] != "stub-a" || ids[1] != "stub-b" {
		t.Errorf("List() should be sorted, got %v", ids)
	}
	if list[0].Title != "Stub stub-a" {
		t.Errorf("title = %q", list[0].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Create(missing) error = %v, want ErrUnknown", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubScene{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return stubScene{id: "stub-dup"} })
}
