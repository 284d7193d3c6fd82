package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/registry"
	"github.com/vovakirdan/power-crisis/internal/storage"
)

// Terminals send one key event on press and then auto-repeat after a
// delay, with no release event. A direction therefore stays held for a
// while after its last key event.
const (
	firstPressHold = 500 * time.Millisecond // covers the auto-repeat delay
	repeatHold     = 120 * time.Millisecond
)

// RunRecorder is implemented by games that describe a finished run in
// more detail than the score alone.
type RunRecorder interface {
	Summary() storage.Run
}

// Options tune a game session.
type Options struct {
	// Player is stored with finished runs.
	Player string
	// Embedded sessions report Back instead of quitting the program.
	Embedded bool
	// Metrics enables Prometheus instrumentation of the session.
	Metrics bool
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	inputFrame core.InputFrame
	held       map[core.Action]int // remaining ticks per held direction
	sprint     int                 // remaining ticks of sprint
	gameState  core.GameState
	fixedSeed  bool
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current run has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		fixedSeed:  fixed,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales its map to the screen, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	press := m.keys.MapKey(msg)
	switch {
	case press.Quit:
		m.quitting = true
		return m, tea.Quit

	case press.Action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.opts.Embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)

	case press.Movement():
		m.hold(press)

	case press.Action != core.ActionNone:
		m.inputFrame.Set(press.Action)
	}

	return m, nil
}

// hold keeps a direction pressed for a short while. Pressing a direction
// releases the opposite one.
func (m *Model) hold(press KeyPress) {
	ticks := m.ticksFor(firstPressHold)
	if m.held[press.Action] > 0 {
		ticks = m.ticksFor(repeatHold)
	}
	delete(m.held, opposite(press.Action))
	m.held[press.Action] = ticks

	if press.Sprint {
		m.sprint = ticks
	} else {
		m.sprint = 0
	}
}

func (m *Model) ticksFor(d time.Duration) int {
	return max(int(d*time.Duration(m.config.TickRate)/time.Second), 1)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// applyHeld adds held directions to this tick's input and ages them.
func (m *Model) applyHeld() {
	for a, n := range m.held {
		m.inputFrame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}
	if m.sprint > 0 {
		m.inputFrame.Set(core.ActionSprint)
		m.sprint--
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.inputFrame.Clear()
		clear(m.held)
		m.sprint = 0
		return m, tickCmd(m.config.TickRate)
	}

	m.applyHeld()

	start := time.Now()
	result := m.game.Step(m.inputFrame)
	if m.opts.Metrics {
		recordStep(time.Since(start), result.Events)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run once.
func (m *Model) recordRun() {
	run := storage.Run{GameID: m.game.ID(), Score: m.gameState.Score}
	if r, ok := m.game.(RunRecorder); ok {
		run = r.Summary()
	}
	if run.Level == "" && run.Seconds == 0 && run.Score == 0 {
		return // setup failed, nothing was played
	}
	run.Player = m.opts.Player

	if m.opts.Metrics {
		recordRun(run)
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(run)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".powercrisis", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to leave entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal. It reports whether the user
// asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
