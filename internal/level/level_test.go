package level

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sandbox/internal/behaviour"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

const yamlLevel = `
id: yaml-level
name: From YAML
bounds: {x: 0, y: 0, w: 100, h: 100}
objects:
  - id: 1
    bounds: {x: 10, y: 10, w: 5, h: 5}
    behaviours:
      - type: dvd
        speed: {type: fixed, value: {x: 3, y: 4}}
      - type: collision
`

const tomlLevel = `
id = "toml-level"
start = { x = 10, y = 10 }

[player]
size = { w = 4, h = 8 }

[[objects]]
id = 7
bounds = { x = 0, y = 90, w = 100, h = 10 }
`

const jsonLevel = `{
  "id": "json-level",
  "objects": [
    {"id": 1, "bounds": {"x": 1, "y": 2, "w": 3, "h": 4}, "layer": "foreground", "order": 2}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		ext, data, id string
	}{
		{".yaml", yamlLevel, "yaml-level"},
		{".toml", tomlLevel, "toml-level"},
		{".json", jsonLevel, "json-level"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			lvl, err := Parse([]byte(tt.data), tt.ext)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if lvl.ID != tt.id {
				t.Errorf("ID = %q, want %q", lvl.ID, tt.id)
			}
			if err := Validate(lvl); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestParseDefaults(t *testing.T) {
	lvl, err := Parse([]byte(tomlLevel), ".toml")
	if err != nil {
		t.Fatal(err)
	}
	p := lvl.Player
	if p == nil {
		t.Fatal("player missing")
	}
	if p.Speed != DefaultPlayerSpeed || p.RunSpeed != DefaultPlayerRunSpeed || p.Mass != DefaultMass {
		t.Errorf("player defaults not applied: %+v", p)
	}
	if p.Color != core.Magenta {
		t.Errorf("player color = %+v, want magenta", p.Color)
	}
	if lvl.Name != lvl.ID {
		t.Errorf("name should default to id, got %q", lvl.Name)
	}

	lvl, err = Parse([]byte(jsonLevel), ".json")
	if err != nil {
		t.Fatal(err)
	}
	if got := lvl.Objects[0].Layer; got != (world.DrawLayer{Kind: world.Foreground, Order: 2}) {
		t.Errorf("layer = %+v", got)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name, ext, data string
	}{
		{"unknown extension", ".ini", "id=x"},
		{"json unknown field", ".json", `{"id": "x", "gravity": 3}`},
		{"toml unknown key", ".toml", "id = \"x\"\nspeed = 3\n"},
		{"bad layer", ".yaml", "id: x\nobjects:\n  - id: 1\n    layer: sky\n"},
		{"bad speed type", ".yaml", "id: x\nobjects:\n  - id: 1\n    behaviours:\n      - type: dvd\n        speed: {type: warp}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.ext); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	zeroMass := BehaviourSpec{Type: "physics", Mass: 0}
	bad := Level{
		ID:     "bad",
		Player: &Player{Size: core.V(4, 4), Mass: 1},
		Objects: []Object{
			{ID: 1},
			{ID: 1},
			{ID: PlayerID},
			{ID: 2, Behaviours: []BehaviourSpec{
				{Type: "teleport"},
				zeroMass,
				{Type: "dvd", Speed: &SpeedSpec{Random: true, Min: core.V(5, 0), Max: core.V(1, 0)}},
				{Type: "dvd"},
				{Type: "controllable", WalkSpeed: -1},
			}},
		},
	}

	err := Validate(bad)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{
		"duplicate id",
		"reserved for the player",
		"unknown behaviour type",
		"mass must be positive",
		"exceeds max",
		"dvd needs a speed",
		"must not be negative",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation report missing %q:\n%s", want, msg)
		}
	}

	if err := Validate(Level{ID: "ok"}); err != nil {
		t.Errorf("empty level should be valid: %v", err)
	}
	if err := Validate(Level{ID: "p", Player: &Player{Size: core.V(1, 1), Mass: -1}}); err == nil {
		t.Error("negative player mass should be rejected")
	}
}

func TestBuiltin(t *testing.T) {
	levels, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	var ids []string
	for _, lvl := range levels {
		ids = append(ids, lvl.ID)
	}
	if strings.Join(ids, ",") != "bouncers,platformer" {
		t.Errorf("builtin ids = %v", ids)
	}

	if _, err := BuiltinByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildPlatformer(t *testing.T) {
	lvl, err := BuiltinByID("platformer")
	if err != nil {
		t.Fatal(err)
	}
	w, err := Build(lvl, BuildOptions{Boundary: core.NewRect(0, 0, 10, 10)})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if w.Boundary() != *lvl.Bounds {
		t.Errorf("level bounds should win over the default boundary, got %+v", w.Boundary())
	}

	player, ok := w.Entity(PlayerID)
	if !ok {
		t.Fatal("player not added")
	}
	var kinds []behaviour.Kind
	for _, b := range player.Behaviours() {
		kinds = append(kinds, b.Kind())
	}
	want := []behaviour.Kind{behaviour.KindCollision, behaviour.KindControllable, behaviour.KindPhysics}
	if len(kinds) != len(want) {
		t.Fatalf("player chain = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("player chain = %v, want %v", kinds, want)
		}
	}
	if player.Bounds != core.NewRect(40, 100, 12, 24) {
		t.Errorf("player bounds = %+v", player.Bounds)
	}

	entities := w.Entities()
	if last := entities[len(entities)-1]; last.ID != PlayerID {
		t.Errorf("player should draw last, got %d", last.ID)
	}

	// The player falls onto the floor and stays there.
	for i := 0; i < 240; i++ {
		w.Tick(1.0/60, core.NewActionSet())
	}
	floor, _ := w.Entity(1)
	if !player.Bounds.Intersects(floor.Bounds) {
		t.Errorf("player should rest on the floor, bounds %+v", player.Bounds)
	}
}

func TestBuildRandomSpeedsAreSeeded(t *testing.T) {
	lvl, err := BuiltinByID("bouncers")
	if err != nil {
		t.Fatal(err)
	}

	velocities := func(seed int64) []core.Vec {
		w, err := Build(lvl, BuildOptions{Rand: rand.New(rand.NewSource(seed))})
		if err != nil {
			t.Fatal(err)
		}
		var out []core.Vec
		for _, e := range w.Entities() {
			if b, ok := e.Behaviour(behaviour.KindDvd); ok {
				out = append(out, b.(*behaviour.Dvd).Velocity())
			}
		}
		return out
	}

	a, b, c := velocities(7), velocities(7), velocities(8)
	if len(a) != 10 {
		t.Fatalf("expected 10 movers, got %d", len(a))
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different speeds at %d: %+v vs %+v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
		if a[i].X < -80 || a[i].X > 80 || a[i].Y < -60 || a[i].Y > 60 {
			t.Errorf("speed %+v outside the declared range", a[i])
		}
	}
	if same {
		t.Error("different seeds produced identical speeds")
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	_, err := Build(Level{ID: "x", Objects: []Object{{ID: 1}, {ID: 1}}}, BuildOptions{})
	if err == nil {
		t.Fatal("Build should validate its input")
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", yamlLevel)
	writeFile(t, dir, "nested/b.toml", tomlLevel)
	writeFile(t, dir, "c.json", jsonLevel)
	writeFile(t, dir, "broken.yaml", "id: [")
	writeFile(t, dir, "notes.txt", "not a level")

	loader := NewLoader(dir, nil)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if strings.Join(ids, ",") != "json-level,toml-level,yaml-level" {
		t.Errorf("ids = %v", ids)
	}

	lvl, err := loader.LoadByID("toml-level")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(lvl.FilePath) != "b.toml" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFileDefaultsIDFromName(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "unnamed.yaml", "objects: []\n")
	lvl, err := NewLoader(dir, nil).LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.ID != "unnamed" {
		t.Errorf("ID = %q, want unnamed", lvl.ID)
	}
}

func TestCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "override.yaml", "id: bouncers\nname: Mine\n")
	writeFile(t, dir, "extra.json", jsonLevel)

	levels, err := Catalog(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}

	lvl, err := Find("bouncers", dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "Mine" {
		t.Errorf("directory level should replace the builtin, got %q", lvl.Name)
	}

	levels, err = Catalog(filepath.Join(dir, "missing"), nil)
	if err != nil || len(levels) != 2 {
		t.Errorf("missing dir should fall back to builtins, got %d levels, err %v", len(levels), err)
	}
}
