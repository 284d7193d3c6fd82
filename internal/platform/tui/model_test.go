package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/storage"
)

// fakeGame records the input frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	over    bool
	resets  int
	summary storage.Run
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.over = false }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return core.GameState{Score: 7, GameOver: g.over} }
func (g *fakeGame) Summary() storage.Run     { return g.summary }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) last() core.InputFrame { return g.frames[len(g.frames)-1] }

func newTestModel(g *fakeGame, store *storage.Store, opts Options) Model {
	cfg := core.DefaultConfig()
	cfg.TickRate = 10 // firstPressHold = 5 ticks, repeatHold = 1 tick
	cfg.Seed = 1
	return NewModel(g, store, cfg, opts)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestHeldDirectionDecays(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = send(t, m, runeKey("d"))
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
		if !g.last().Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}
	m = send(t, m, TickMsg{})
	if g.last().Has(core.ActionRight) {
		t.Error("right should be released after the hold expires")
	}
}

func TestRepeatShortensHold(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = send(t, m, runeKey("d"))
	m = send(t, m, runeKey("d")) // auto-repeat
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	if g.last().Has(core.ActionRight) {
		t.Error("a repeated key should only hold for the short repeat window")
	}
}

func TestOppositeDirectionReleases(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = send(t, m, runeKey("a"))
	m = send(t, m, runeKey("d"))
	m = send(t, m, TickMsg{})

	if g.last().Has(core.ActionLeft) || !g.last().Has(core.ActionRight) {
		t.Errorf("expected only right held, got %v", g.last().Actions)
	}
}

func TestSprintFollowsShiftedKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = send(t, m, runeKey("W"))
	m = send(t, m, TickMsg{})
	if !g.last().Has(core.ActionUp) || !g.last().Has(core.ActionSprint) {
		t.Errorf("W should move up and sprint, got %v", g.last().Actions)
	}

	m = send(t, m, runeKey("w"))
	m = send(t, m, TickMsg{})
	if g.last().Has(core.ActionSprint) {
		t.Error("lowercase w should stop sprinting")
	}
}

func TestOneShotActionsLastOneTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	if !g.frames[0].Has(core.ActionRepair) {
		t.Error("repair should reach the first tick")
	}
	if g.frames[1].Has(core.ActionRepair) {
		t.Error("repair should not repeat")
	}
}

func TestRunRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{summary: storage.Run{GameID: "fake", Level: "default", Score: 12, Seconds: 12.5}}
	m := newTestModel(g, store, Options{Player: "alice"})

	g.over = true
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 stored run, got %d", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Score != 12 {
		t.Errorf("stored run = %+v", runs[0])
	}

	// Restart allows the next run to be stored.
	m = send(t, m, runeKey("r"))
	m = send(t, m, TickMsg{})
	if g.resets != 1 || m.recorded {
		t.Errorf("restart should reset the game and the record flag (resets=%d)", g.resets)
	}
}

func TestBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil, Options{Embedded: true})

	// While playing, esc pauses.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Fatal("esc during play should not leave the game")
	}
	m = send(t, m, TickMsg{})
	if !g.last().Has(core.ActionPause) {
		t.Error("esc during play should pause")
	}

	g.over = true
	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("esc after game over should return to the menu")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil, Options{})
	next, cmd := m.Update(runeKey("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	return cfg
}
