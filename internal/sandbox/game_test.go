package sandbox

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/level"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       42,
		FrameLimit: true,
	}
}

func newGame(t *testing.T, id string) *Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	g.Reset(testConfig())
	return g.(*Game)
}

func TestBuiltinScenesRegistered(t *testing.T) {
	for _, id := range []string{"bouncers", "platformer"} {
		if !registry.Exists(id) {
			t.Errorf("scene %q not registered", id)
		}
	}
}

func TestStepSkipsFirstFrame(t *testing.T) {
	g := newGame(t, "bouncers")

	res := g.Step(0, core.NewActionSet())
	if !res.Skipped || res.State.Frames != 0 {
		t.Errorf("zero delta should skip, got %+v", res)
	}

	res = g.Step(1.0/60, core.NewActionSet())
	if res.Skipped || res.State.Frames != 1 {
		t.Errorf("positive delta should simulate, got %+v", res)
	}
	if g.World().Frame() != 1 {
		t.Errorf("world frame = %d", g.World().Frame())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []core.Rect {
		g := newGame(t, "bouncers")
		for i := 0; i < 120; i++ {
			g.Step(1.0/60, core.NewActionSet())
		}
		var out []core.Rect
		for _, e := range g.World().Entities() {
			out = append(out, e.Bounds)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entity %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestToggles(t *testing.T) {
	g := newGame(t, "bouncers")
	dt := 1.0 / 60
	pause := core.NewActionSet(core.ActionPause)

	g.Step(dt, pause)
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	// Holding the key does not toggle again.
	res := g.Step(dt, pause)
	if !res.State.Paused || !res.Skipped {
		t.Errorf("held pause should stay paused and skip, got %+v", res)
	}
	g.Step(dt, core.NewActionSet())
	g.Step(dt, pause)
	if g.State().Paused {
		t.Error("second press should unpause")
	}

	g.Step(dt, core.NewActionSet(core.ActionDebug, core.ActionFpsLimit))
	if !g.State().ShowDebug {
		t.Error("debug should toggle on")
	}
	if g.State().FpsLimit {
		t.Error("fps limit should toggle off")
	}
}

func TestRestartRebuilds(t *testing.T) {
	g := newGame(t, "bouncers")
	start := g.World().Entities()[1].Bounds
	for i := 0; i < 30; i++ {
		g.Step(1.0/60, core.NewActionSet())
	}
	g.Step(0, core.NewActionSet(core.ActionRestart))
	if got := g.World().Entities()[1].Bounds; got != start {
		t.Errorf("restart should restore the initial layout, got %+v want %+v", got, start)
	}
	if g.State().Frames != 30 {
		t.Errorf("restart keeps the run's frame count, got %d", g.State().Frames)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, "platformer")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The floor fills the bottom two rows with tinted ground glyphs.
	cell := screen.GetCell(10, 23)
	if cell.Rune != Textures[5] {
		t.Errorf("floor glyph = %q, want %q", cell.Rune, Textures[5])
	}
	if cell.RGB == nil || *cell.RGB != (core.RGBA{R: 120, G: 90, B: 60, A: 255}) {
		t.Errorf("floor color = %+v", cell.RGB)
	}

	if !strings.ContainsRune(screen.String(), Textures[3]) {
		t.Error("player glyph missing from the screen")
	}
}

func TestRenderDebugOverlay(t *testing.T) {
	g := newGame(t, "platformer")
	g.Step(0.02, core.NewActionSet(core.ActionDebug))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"delta_t: 0.020000", "frame_count: 1", "frame_time: 20.00ms", "fps: 50.0", "fps_limit: 60"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q:\n%s", want, out)
		}
	}
}

func TestBrokenLevel(t *testing.T) {
	g := New(level.Level{ID: "broken", Objects: []level.Object{{ID: 1}, {ID: 1}}}, Options{})
	g.Reset(testConfig())
	if g.Err() == nil || g.World() != nil {
		t.Fatal("invalid level should fail to build")
	}
	res := g.Step(1, core.NewActionSet())
	if !res.Skipped {
		t.Error("broken scene should skip frames")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "failed to load") {
		t.Error("render should report the failure")
	}
}

func TestUseLevelsOverrides(t *testing.T) {
	UseLevels([]level.Level{{ID: "sandbox-test", Name: "First"}})
	UseLevels([]level.Level{{ID: "sandbox-test", Name: "Second"}})

	g, err := registry.Create("sandbox-test")
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Second" {
		t.Errorf("Title = %q, want the latest definition", g.Title())
	}
}
