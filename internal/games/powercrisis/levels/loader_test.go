package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/sim"
)

func TestBuiltinMaps(t *testing.T) {
	ids, err := NewLoader("").ListIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "bunker" || ids[1] != DefaultID {
		t.Errorf("ListIDs() = %v, expected [bunker default]", ids)
	}
}

func TestDefaultMapBuildsAGame(t *testing.T) {
	level, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if len(level.Equipment) != 4 {
		t.Errorf("default map has %d electrical boxes, expected 4", len(level.Equipment))
	}

	params := sim.DefaultParams()
	w, h := params.MapWidth, params.MapHeight
	for i, r := range level.Walls {
		if r.Left() < 0 || r.Top() < 0 || r.Right() > w || r.Bottom() > h {
			t.Errorf("wall %d %v outside the map", i, r)
		}
	}

	if _, err := sim.New(level.Layout(), params, &fixedRand{}); err != nil {
		t.Errorf("sim.New() error: %v", err)
	}
}

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.5 }
func (fixedRand) Intn(int) int     { return 0 }

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"a.yaml": "name: Alpha\nplayer: {x: 1, y: 1}\nvan: {x: 5, y: 5, w: 2, h: 2}\n",
		"sub/b.json": `{"id": "beta", "player": {"x": 1, "y": 1}, "van": {"x": 5, "y": 5, "w": 2, "h": 2},
			"walls": [{"x": 3, "y": 3, "w": 1, "h": 1}]}`,
		"broken.yaml": "player: {x: 1, y: 1}\nvan: {x: 5, y: 5, w: 0, h: 2}\n",
		"notes.txt":   "not a map",
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	levels, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 2 {
		t.Fatalf("loaded %d levels, expected 2", len(levels))
	}
	if levels[0].ID != "a" || levels[0].Name != "Alpha" {
		t.Errorf("first level = %q/%q, expected a/Alpha", levels[0].ID, levels[0].Name)
	}
	if levels[1].ID != "beta" || levels[1].FilePath != filepath.Join(dir, "sub", "b.json") {
		t.Errorf("second level = %q at %q", levels[1].ID, levels[1].FilePath)
	}

	if _, err := NewLoader(dir).LoadByID("gamma"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestLoadFileRejectsBadGeometry(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.yaml")
	data := "player: {x: 1, y: 1}\nwalls:\n  - {x: 0, y: 0, w: -1, h: 1}\nvan: {x: 5, y: 5, w: 2, h: 2}\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(p); !errors.Is(err, core.ErrInvalidGeometry) {
		t.Errorf("LoadFile() error = %v, expected ErrInvalidGeometry", err)
	}
}

func TestResolveFilePath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "yard.yml")
	data := "player: {x: 2, y: 2}\nvan: {x: 5, y: 5, w: 2, h: 2}\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	level, err := Resolve(p)
	if err != nil {
		t.Fatal(err)
	}
	if level.ID != "yard" || level.Player != core.V(2, 2) {
		t.Errorf("Resolve() = %+v", level)
	}
}

func TestExport(t *testing.T) {
	level, err := Resolve("bunker")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Export(level)
	if err != nil {
		t.Fatal(err)
	}

	p := filepath.Join(t.TempDir(), "copy.yaml")
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	back, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if back.ID != "bunker" || len(back.Walls) != len(level.Walls) {
		t.Errorf("exported map reloaded as %+v", back)
	}
}
