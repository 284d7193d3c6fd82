package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/power-crisis/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                         { return s.id }
func (s stubGame) Title() string                      { return strings.ToUpper(s.id) }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || Exists("missing") {
		t.Fatal("Exists mismatch")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for an unknown id")
	}

	list := List()
	if len(list) < 2 || list[0].ID != "aa_stub" || list[0].Title != "AA_STUB" {
		t.Errorf("List() = %+v, expected sorted entries with titles", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
