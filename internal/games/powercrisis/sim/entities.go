package sim

import "github.com/vovakirdan/power-crisis/internal/core"

// Wall is an immutable obstacle.
type Wall struct {
	hitBox core.Rect
}

// HitBox implements core.HitBoxer.
func (w Wall) HitBox() core.Rect { return w.hitBox }

// ElectricalBox is a piece of equipment that can break and be repaired.
// The interaction box is the hit box grown by a margin; the player has to
// stand inside it to repair.
type ElectricalBox struct {
	hitBox      core.Rect
	interaction core.Rect
	broken      bool
}

// HitBox implements core.HitBoxer.
func (e ElectricalBox) HitBox() core.Rect { return e.hitBox }

// InteractionBox returns the repair proximity area.
func (e ElectricalBox) InteractionBox() core.Rect { return e.interaction }

// Broken reports whether the unit is out of order.
func (e ElectricalBox) Broken() bool { return e.broken }

// Puddle is a temporary hazard that slows the player down.
type Puddle struct {
	hitBox   core.Rect
	timeLeft float64
	rotation float64
}

// HitBox implements core.HitBoxer.
func (p Puddle) HitBox() core.Rect { return p.hitBox }

// TimeLeft returns the remaining lifetime in seconds.
func (p Puddle) TimeLeft() float64 { return p.timeLeft }

// Rotation returns a drawing hint in radians, in [0, 2π).
func (p Puddle) Rotation() float64 { return p.rotation }

// Player is the mobile agent.
type Player struct {
	hitBox   core.Rect
	velocity core.Vec2
}

// HitBox implements core.HitBoxer.
func (p Player) HitBox() core.Rect { return p.hitBox }

// Velocity returns the current velocity in units per second.
func (p Player) Velocity() core.Vec2 { return p.velocity }

// Position returns the top-left corner of the hit box.
func (p Player) Position() core.Vec2 { return p.hitBox.Pos() }

// EquipmentSnapshot is a value copy of an electrical box carried by events.
type EquipmentSnapshot struct {
	Index  int
	HitBox core.Rect
	Broken bool
}
