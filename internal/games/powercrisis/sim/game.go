package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/power-crisis/internal/core"
)

// Layout is a parsed map.
type Layout struct {
	PlayerStart core.Vec2
	Walls       []core.Rect
	Equipment   []core.Rect
	Van         core.Rect
}

// Validate checks every rectangle of the layout.
func (l Layout) Validate() error {
	if !finite(l.PlayerStart.X) || !finite(l.PlayerStart.Y) {
		return fmt.Errorf("sim: player start %v: %w", l.PlayerStart, ErrInvalidGeometry)
	}
	for i, w := range l.Walls {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("sim: wall %d: %w", i, err)
		}
	}
	for i, e := range l.Equipment {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("sim: equipment %d: %w", i, err)
		}
	}
	if err := l.Van.Validate(); err != nil {
		return fmt.Errorf("sim: van: %w", err)
	}
	return nil
}

// Stats counts what happened during a session.
type Stats struct {
	Restocks       int
	Repairs        int
	Failures       int
	HazardsSpawned int
}

// Game owns the whole simulation state and is its only mutator.
type Game struct {
	params Params
	rng    Rand

	player    Player
	generator *Generator
	walls     []Wall
	equipment []ElectricalBox
	puddles   []Puddle
	van       core.Rect

	hazardTimer  *RandomTimer
	failureTimer *RandomTimer

	repairKits int
	events     EventQueue

	elapsed float64
	stats   Stats
}

// New builds a game from a layout. The random source is used for every
// random decision the game makes.
func New(layout Layout, params Params, rng Rand) (*Game, error) {
	if rng == nil {
		return nil, fmt.Errorf("sim: %w", ErrNilRand)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	hazardTimer, err := NewRandomTimer(params.HazardSpawnMin, params.HazardSpawnMax, rng)
	if err != nil {
		return nil, err
	}
	failureTimer, err := NewRandomTimer(params.FailureMin, params.FailureMax, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		params:       params,
		rng:          rng,
		player:       Player{hitBox: core.NewRect(layout.PlayerStart.X, layout.PlayerStart.Y, params.PlayerSize, params.PlayerSize)},
		walls:        make([]Wall, 0, len(layout.Walls)),
		equipment:    make([]ElectricalBox, 0, len(layout.Equipment)),
		van:          layout.Van,
		hazardTimer:  hazardTimer,
		failureTimer: failureTimer,
		repairKits:   params.MaxRepairKits,
	}
	for _, w := range layout.Walls {
		g.walls = append(g.walls, Wall{hitBox: w})
	}
	for _, e := range layout.Equipment {
		g.equipment = append(g.equipment, ElectricalBox{
			hitBox:      e,
			interaction: e.Grow(params.InteractionMargin),
		})
	}

	running := params.GeneratorRunning
	if params.GeneratorPolicy == PolicyAuto {
		running = g.autoRunning()
	}
	g.generator, err = NewGenerator(params.GeneratorFuel, params.GeneratorEfficiency, running)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Update advances the simulation by dt seconds.
// A negative, NaN or infinite dt is treated as zero.
func (g *Game) Update(dt float64) {
	dt = sanitizeDelta(dt)
	g.elapsed += dt

	g.hazardTimer.Update(dt)
	g.failureTimer.Update(dt)

	if g.params.GeneratorPolicy == PolicyAuto {
		g.generator.SetRunning(g.autoRunning())
	}
	g.generator.Update(dt)

	g.restock()
	g.updatePuddles(dt)
	g.movePlayer(dt)
	g.player.hitBox = core.ClampToBounds(g.player.hitBox, g.params.MapWidth, g.params.MapHeight)
	g.resolvePlayer()
	g.rollFailure()
}

func sanitizeDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

func (g *Game) autoRunning() bool {
	return g.WorkingEquipment()*2 < len(g.equipment)
}

func (g *Game) restock() {
	if g.repairKits >= g.params.MaxRepairKits || !core.Overlaps(g.player.hitBox, g.van) {
		return
	}
	g.repairKits = g.params.MaxRepairKits
	g.stats.Restocks++
	g.events.Push(RestockEvent{Kits: g.repairKits})
}

func (g *Game) updatePuddles(dt float64) {
	if g.hazardTimer.IsActive() {
		g.spawnPuddle()
		g.hazardTimer.Reset()
	}

	kept := g.puddles[:0]
	for _, p := range g.puddles {
		p.timeLeft -= dt
		if p.timeLeft > 0 {
			kept = append(kept, p)
		}
	}
	clear(g.puddles[len(kept):])
	g.puddles = kept
}

func (g *Game) spawnPuddle() {
	size := g.params.HazardSize
	hitBox := core.NewRect(
		g.rng.Float64()*(g.params.MapWidth-size),
		g.rng.Float64()*(g.params.MapHeight-size),
		size,
		size,
	)
	hitBox = core.ResolveAll(hitBox, g.walls)
	hitBox = core.ClampToBounds(hitBox, g.params.MapWidth, g.params.MapHeight)

	g.puddles = append(g.puddles, Puddle{
		hitBox:   hitBox,
		timeLeft: g.params.HazardLifetime,
		rotation: g.rng.Float64() * 2 * math.Pi,
	})
	g.stats.HazardsSpawned++
}

func (g *Game) movePlayer(dt float64) {
	drag := g.params.Drag
	if g.InHazard() {
		drag = g.params.HazardDrag
	}

	g.player.velocity = g.player.velocity.Scale(drag)
	pos := g.player.hitBox.Pos().Add(g.player.velocity.Scale(dt))
	g.player.hitBox = g.player.hitBox.MoveTo(pos)
}

func (g *Game) resolvePlayer() {
	g.player.hitBox = core.ResolveAll(g.player.hitBox, g.walls)
	g.player.hitBox = core.ResolveAll(g.player.hitBox, g.equipment)
}

func (g *Game) rollFailure() {
	if !g.failureTimer.IsActive() {
		return
	}
	defer g.failureTimer.Reset()

	working := g.WorkingEquipment()
	if working == 0 {
		return
	}
	if g.rng.Float64() >= g.params.FailureChance {
		return
	}

	n := g.rng.Intn(working)
	for i := range g.equipment {
		if g.equipment[i].broken {
			continue
		}
		if n == 0 {
			g.equipment[i].broken = true
			g.stats.Failures++
			g.events.Push(DestroyEquipmentEvent{Equipment: g.snapshot(i)})
			return
		}
		n--
	}
}

func (g *Game) snapshot(i int) EquipmentSnapshot {
	e := g.equipment[i]
	return EquipmentSnapshot{Index: i, HitBox: e.hitBox, Broken: e.broken}
}

// ApplyIntent adds a movement impulse in direction dir.
// The direction is normalized; a zero or non-finite direction does nothing.
func (g *Game) ApplyIntent(dir core.Vec2, sprint bool) {
	dir = dir.Normalize()
	if dir == (core.Vec2{}) {
		return
	}
	speed := g.params.PlayerSpeed
	if sprint {
		speed *= g.params.SprintMultiplier
	}
	g.player.velocity = g.player.velocity.Add(dir.Scale(speed))
}

// UseRepairKit consumes one repair kit. It reports false when none are left.
func (g *Game) UseRepairKit() bool {
	if g.repairKits == 0 {
		return false
	}
	g.repairKits--
	return true
}

// FixEquipment marks unit i as working and emits a FixEquipmentEvent.
// Fixing a unit that already works does nothing.
func (g *Game) FixEquipment(i int) error {
	if i < 0 || i >= len(g.equipment) {
		return fmt.Errorf("sim: equipment %d: %w", i, ErrNoSuchEquipment)
	}
	if !g.equipment[i].broken {
		return nil
	}
	g.equipment[i].broken = false
	g.stats.Repairs++
	g.events.Push(FixEquipmentEvent{Equipment: g.snapshot(i)})
	return nil
}

// RepairTarget returns the first broken unit whose interaction box the
// player is standing in.
func (g *Game) RepairTarget() (int, bool) {
	for i, e := range g.equipment {
		if e.broken && core.Overlaps(g.player.hitBox, e.interaction) {
			return i, true
		}
	}
	return -1, false
}

// Repair spends a kit on the broken unit in reach, if there is one.
// It returns the index of the repaired unit.
func (g *Game) Repair() (int, bool) {
	if g.repairKits == 0 {
		return -1, false
	}
	i, ok := g.RepairTarget()
	if !ok {
		return -1, false
	}
	g.UseRepairKit()
	_ = g.FixEquipment(i) // index comes from RepairTarget
	return i, true
}

// SetGeneratorRunning starts or stops the generator.
// Under PolicyAuto the next Update overrides it.
func (g *Game) SetGeneratorRunning(running bool) {
	g.generator.SetRunning(running)
}

// PollEvent removes and returns the oldest pending event.
func (g *Game) PollEvent() (Event, bool) {
	return g.events.Pop()
}

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// Generator returns a copy of the generator.
func (g *Game) Generator() Generator { return *g.generator }

// Walls returns a copy of the walls.
func (g *Game) Walls() []Wall { return append([]Wall(nil), g.walls...) }

// Equipment returns a copy of the electrical boxes.
func (g *Game) Equipment() []ElectricalBox {
	return append([]ElectricalBox(nil), g.equipment...)
}

// Puddles returns a copy of the active puddles. Indices are not stable
// across frames.
func (g *Game) Puddles() []Puddle { return append([]Puddle(nil), g.puddles...) }

// Van returns the restock zone.
func (g *Game) Van() core.Rect { return g.van }

// RepairKits returns the number of kits carried.
func (g *Game) RepairKits() int { return g.repairKits }

// MaxRepairKits returns the kit capacity.
func (g *Game) MaxRepairKits() int { return g.params.MaxRepairKits }

// WorkingEquipment counts units that are not broken.
func (g *Game) WorkingEquipment() int {
	n := 0
	for _, e := range g.equipment {
		if !e.broken {
			n++
		}
	}
	return n
}

// InHazard reports whether the player is standing in a puddle.
func (g *Game) InHazard() bool {
	for _, p := range g.puddles {
		if core.Overlaps(p.hitBox, g.player.hitBox) {
			return true
		}
	}
	return false
}

// MapSize returns the map dimensions.
func (g *Game) MapSize() (w, h float64) { return g.params.MapWidth, g.params.MapHeight }

// Params returns the tunables the game was built with.
func (g *Game) Params() Params { return g.params }

// Elapsed returns the simulated time in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Stats returns the session counters.
func (g *Game) Stats() Stats { return g.stats }

// Over reports whether the generator has run dry.
func (g *Game) Over() bool { return g.generator.Empty() }
