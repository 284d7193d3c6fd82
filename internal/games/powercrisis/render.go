package powercrisis

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/power-crisis/internal/core"
)

// Rendering characters.
const (
	WallChar      = '█'
	VanChar       = '▓'
	PuddleChar    = '≈'
	BoxChar       = '■'
	BrokenBoxChar = '✖'
	PlayerRight   = '▶'
	PlayerLeft    = '◀'
)

const (
	hudRows    = 1
	footerRows = 1
	fuelBarLen = 10
)

// viewport maps world units onto screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, mapW, mapH float64) viewport {
	rows := max(dst.Height()-hudRows-footerRows, 1)
	return viewport{
		sx:  float64(dst.Width()) / mapW,
		sy:  float64(rows) / mapH,
		top: hudRows,
	}
}

// cells returns the half-open cell range covered by r. Every rectangle
// covers at least one cell.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.Left() * v.sx))
	x1 = int(math.Ceil(r.Right() * v.sx))
	y0 = int(math.Floor(r.Top()*v.sy)) + v.top
	y1 = int(math.Ceil(r.Bottom()*v.sy)) + v.top
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (v viewport) point(p core.Vec2) (x, y int) {
	return int(p.X * v.sx), int(p.Y*v.sy) + v.top
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		drawCenteredMessage(dst, "SETUP ERROR", g.err.Error(), core.ColorBrightRed)
		return
	}
	if g.sim == nil {
		return
	}

	mapW, mapH := g.sim.MapSize()
	v := newViewport(dst, mapW, mapH)

	// Floor layers first so solid objects cover them.
	for _, p := range g.sim.Puddles() {
		x0, y0, x1, y1 := v.cells(p.HitBox())
		dst.FillRect(x0, y0, x1, y1, PuddleChar, core.ColorCyan)
	}

	x0, y0, x1, y1 := v.cells(g.sim.Van())
	dst.FillRect(x0, y0, x1, y1, VanChar, core.ColorBlue)
	if x1-x0 >= 3 {
		dst.DrawTextColored(x0+(x1-x0-3)/2, (y0+y1-1)/2, "VAN", core.ColorBrightWhite)
	}

	for _, w := range g.sim.Walls() {
		x0, y0, x1, y1 := v.cells(w.HitBox())
		dst.FillRect(x0, y0, x1, y1, WallChar, core.ColorGray)
	}

	for _, e := range g.sim.Equipment() {
		x0, y0, x1, y1 := v.cells(e.HitBox())
		if e.Broken() {
			// Blink twice a second.
			r := BrokenBoxChar
			if (g.ticks/max(g.config.TickRate/4, 1))%2 == 1 {
				r = BoxChar
			}
			dst.FillRect(x0, y0, x1, y1, r, core.ColorBrightRed)
			continue
		}
		dst.FillRect(x0, y0, x1, y1, BoxChar, core.ColorGreen)
	}

	px, py := v.point(g.sim.Player().HitBox().Center())
	glyph := PlayerRight
	if g.facingLeft {
		glyph = PlayerLeft
	}
	color := core.ColorBrightYellow
	if g.sim.InHazard() {
		color = core.ColorBrightCyan // slowed
	}
	dst.SetColored(px, py, glyph, color)

	g.drawHUD(dst)
	g.drawFooter(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightWhite)
	}
	if g.over {
		title := "POWER OUT"
		if g.blackout >= blackoutGrace {
			title = "BLACKOUT"
		}
		sum := g.Summary()
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Survived %ds  |  Repairs %d  |  Press R to restart", sum.Score, sum.Repairs),
			core.ColorBrightRed)
	}
}

// drawHUD renders fuel, kits, equipment health and time on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	gen := g.sim.Generator()
	capacity := g.sim.Params().GeneratorFuel
	ratio := 0.0
	if capacity > 0 {
		ratio = core.ClampF(gen.Fuel()/capacity, 0, 1)
	}

	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text))
	}

	put("FUEL ", core.ColorWhite)
	filled := int(math.Ceil(ratio * fuelBarLen))
	fuelColor := core.ColorGreen
	switch {
	case ratio <= 0.25:
		fuelColor = core.ColorBrightRed
	case ratio <= 0.5:
		fuelColor = core.ColorYellow
	}
	put(strings.Repeat("█", filled), fuelColor)
	put(strings.Repeat("░", fuelBarLen-filled), core.ColorGray)
	put(fmt.Sprintf(" %3d%%   ", int(math.Round(ratio*100))), fuelColor)

	kits := g.sim.RepairKits()
	put("KITS ", core.ColorWhite)
	put(strings.Repeat("+", kits), core.ColorBrightGreen)
	put(strings.Repeat("·", max(g.sim.MaxRepairKits()-kits, 0)), core.ColorGray)
	put("   ", core.ColorDefault)

	total := len(g.level.Equipment)
	working := g.sim.WorkingEquipment()
	boxColor := core.ColorGreen
	if working*2 < total {
		boxColor = core.ColorBrightRed
	} else if working < total {
		boxColor = core.ColorYellow
	}
	put("BOXES ", core.ColorWhite)
	put(fmt.Sprintf("%d/%d   ", working, total), boxColor)

	put("GEN ", core.ColorWhite)
	if gen.Running() {
		put("ON    ", core.ColorBrightYellow)
	} else {
		put("OFF   ", core.ColorGray)
	}

	put(fmt.Sprintf("TIME %ds", int(g.sim.Elapsed())), core.ColorBrightWhite)
}

// drawFooter shows the latest flash message or a key hint.
func (g *Game) drawFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if g.flash.ttl > 0 {
		dst.DrawTextColored(1, y, g.flash.text, g.flash.color)
		return
	}
	if i, ok := g.sim.RepairTarget(); ok && g.sim.RepairKits() > 0 {
		dst.DrawTextColored(1, y, fmt.Sprintf("SPACE: repair box #%d", i+1), core.ColorBrightYellow)
		return
	}
	hint := "WASD move  SHIFT sprint  SPACE repair  P pause  Q quit"
	if g.manual {
		hint = "WASD move  SHIFT sprint  SPACE repair  G generator  P pause  Q quit"
	}
	dst.DrawTextColored(1, y, hint, core.ColorGray)
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxX+boxW, boxY+boxH, c)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
