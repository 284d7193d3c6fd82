// Package powercrisis adapts the Power Crisis simulation to the terminal
// platform: it maps input frames to intents, drains simulation events
// into HUD messages and logs, and draws the map into a character screen.
package powercrisis

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/power-crisis/internal/config"
	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/sim"
	"github.com/vovakirdan/power-crisis/internal/registry"
	"github.com/vovakirdan/power-crisis/internal/storage"
)

// Game IDs.
const (
	IDAuto   = "powercrisis"
	IDManual = "powercrisis_manual"
)

const (
	flashSeconds = 2.5
	// blackoutGrace is how long the manual variant tolerates a stopped
	// generator while the house needs it.
	blackoutGrace = 3.0
)

type flash struct {
	text  string
	color core.Color
	ttl   float64
}

// Game implements registry.Game for Power Crisis.
type Game struct {
	id     string
	manual bool

	sim    *sim.Game
	level  levels.Level
	preset string
	config core.RuntimeConfig
	logger *log.Logger
	err    error

	paused     bool
	over       bool
	blackout   float64
	facingLeft bool
	flash      flash
	ticks      int
}

// New creates a game where the generator follows equipment health.
func New() *Game {
	return &Game{id: IDAuto}
}

// NewManual creates a game where the player runs the generator.
func NewManual() *Game {
	return &Game{id: IDManual, manual: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.manual {
		return "Power Crisis (Manual)"
	}
	return "Power Crisis"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	s := currentSettings()

	g.config = cfg
	g.logger = s.logger.With("game", g.id)
	g.sim = nil
	g.level = levels.Level{}
	g.preset = ""
	g.err = nil
	g.paused = false
	g.over = false
	g.blackout = 0
	g.facingLeft = false
	g.flash = flash{}
	g.ticks = 0

	if err := g.setup(s, cfg.Seed); err != nil {
		g.err = err
		g.logger.Error("cannot start game", "err", err)
		return
	}

	g.logger.Info("game started",
		"level", g.level.ID,
		"difficulty", g.preset,
		"seed", cfg.Seed,
		"equipment", len(g.level.Equipment),
	)
}

func (g *Game) setup(s snapshot, seed int64) error {
	cfg, err := config.LoadPowerCrisis(s.configPath)
	if err != nil {
		return err
	}

	preset := "config"
	if s.preset != "" {
		config.ApplyPowerCrisisPreset(&cfg, s.preset)
		preset = string(s.preset)
	}

	params, err := cfg.ToParams()
	if err != nil {
		return err
	}
	if g.manual {
		params.GeneratorPolicy = sim.PolicyManual
		params.GeneratorRunning = true
	}

	ref := s.level
	if ref == "" {
		ref = cfg.Map.Level
	}
	level, err := levels.Resolve(ref)
	if err != nil {
		return err
	}

	game, err := sim.New(level.Layout(), params, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("level %s: %w", level.ID, err)
	}

	g.level = level
	g.preset = preset
	g.sim = game
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil || g.over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.config.FrameDelta()
	g.ticks++

	g.applyInput(in)
	g.sim.Update(dt)
	events := g.drainEvents()

	if g.flash.ttl > 0 {
		g.flash.ttl -= dt
	}

	g.checkBlackout(dt)
	if g.sim.Over() || g.blackout >= blackoutGrace {
		g.finish()
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) applyInput(in core.InputFrame) {
	intent := in.Intent()
	switch {
	case intent.X < 0:
		g.facingLeft = true
	case intent.X > 0:
		g.facingLeft = false
	}
	g.sim.ApplyIntent(intent, in.Has(core.ActionSprint))

	if in.Has(core.ActionRepair) {
		switch _, ok := g.sim.Repair(); {
		case ok:
			// The fix event sets the message.
		case g.sim.RepairKits() == 0:
			g.setFlash("No repair kits left, restock at the van", core.ColorYellow)
		default:
			g.setFlash("No broken box in reach", core.ColorGray)
		}
	}

	if in.Has(core.ActionGenerator) && g.manual {
		gen := g.sim.Generator()
		running := !gen.Running()
		g.sim.SetGeneratorRunning(running)
		if running {
			g.setFlash("Generator started", core.ColorYellow)
		} else {
			g.setFlash("Generator stopped", core.ColorGray)
		}
		g.logger.Debug("generator toggled", "running", running)
	}
}

func (g *Game) drainEvents() []string {
	var names []string
	for {
		e, ok := g.sim.PollEvent()
		if !ok {
			return names
		}
		names = append(names, string(e.Kind()))

		switch e := e.(type) {
		case sim.RestockEvent:
			g.setFlash(fmt.Sprintf("Repair kits restocked (%d)", e.Kits), core.ColorBrightGreen)
			g.logger.Debug("restock", "kits", e.Kits)
		case sim.FixEquipmentEvent:
			g.setFlash(fmt.Sprintf("Electrical box #%d repaired", e.Equipment.Index+1), core.ColorGreen)
			g.logger.Debug("equipment fixed", "unit", e.Equipment.Index, "kits", g.sim.RepairKits())
		case sim.DestroyEquipmentEvent:
			g.setFlash(fmt.Sprintf("Electrical box #%d failed!", e.Equipment.Index+1), core.ColorBrightRed)
			g.logger.Debug("equipment failed", "unit", e.Equipment.Index, "working", g.sim.WorkingEquipment())
		}
	}
}

// checkBlackout accumulates time the manual generator is off while the
// house depends on it.
func (g *Game) checkBlackout(dt float64) {
	if !g.manual {
		return
	}
	total := len(g.level.Equipment)
	needed := g.sim.WorkingEquipment()*2 < total
	gen := g.sim.Generator()
	if needed && !gen.Running() {
		g.blackout += dt
		return
	}
	g.blackout = 0
}

func (g *Game) finish() {
	g.over = true
	sum := g.Summary()
	g.logger.Info("game over",
		"level", sum.Level,
		"seconds", fmt.Sprintf("%.1f", sum.Seconds),
		"repairs", sum.Repairs,
		"failures", sum.Failures,
		"restocks", sum.Restocks,
		"hazards", sum.Hazards,
		"blackout", g.blackout >= blackoutGrace,
	)
}

func (g *Game) setFlash(text string, c core.Color) {
	g.flash = flash{text: text, color: c, ttl: flashSeconds}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.sim != nil {
		score = int(g.sim.Elapsed())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over || g.err != nil,
		Paused:   g.paused,
	}
}

// Summary describes the session for the run history.
func (g *Game) Summary() storage.Run {
	run := storage.Run{
		GameID:     g.id,
		Level:      g.level.ID,
		Difficulty: g.preset,
	}
	if g.sim == nil {
		return run
	}
	stats := g.sim.Stats()
	run.Score = int(g.sim.Elapsed())
	run.Seconds = g.sim.Elapsed()
	run.Repairs = stats.Repairs
	run.Failures = stats.Failures
	run.Restocks = stats.Restocks
	run.Hazards = stats.HazardsSpawned
	return run
}

// Register the game variants with the registry
func init() {
	registry.Register(IDAuto, func() registry.Game {
		return New()
	})
	registry.Register(IDManual, func() registry.Game {
		return NewManual()
	})
}
