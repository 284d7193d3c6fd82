// Package raster draws Power Crisis maps as images.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels"
)

// Colors used in previews.
const (
	BackgroundHex = "#15171c"
	GridHex       = "#22252d"
	WallHex       = "#8a8f98"
	BoxHex        = "#3fbf5f"
	VanHex        = "#3b6fd6"
	PlayerHex     = "#f2d43d"
	TextHex       = "#e6e6e6"
)

// Options control preview size.
type Options struct {
	// Scale is pixels per world unit.
	Scale float64
	// MapW and MapH are the world bounds in units.
	MapW, MapH float64
	// Grid draws a line every world unit when the scale allows it.
	Grid bool
}

// DefaultOptions match the default 100x50 map at 8 pixels per unit.
func DefaultOptions() Options {
	return Options{Scale: 8, MapW: 100, MapH: 50, Grid: true}
}

// Preview draws a level top-down with walls, electrical boxes, the van
// and the player start.
func Preview(l levels.Level, opts Options) (image.Image, error) {
	dc, err := draw(l, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG draws a level and encodes it as PNG.
func WritePNG(w io.Writer, l levels.Level, opts Options) error {
	dc, err := draw(l, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: cannot encode png: %w", err)
	}
	return nil
}

func draw(l levels.Level, opts Options) (*gg.Context, error) {
	if opts.Scale <= 0 || opts.MapW <= 0 || opts.MapH <= 0 {
		return nil, fmt.Errorf("raster: scale and map size must be positive: %w", core.ErrInvalidGeometry)
	}

	s := opts.Scale
	w, h := int(opts.MapW*s), int(opts.MapH*s)
	dc := gg.NewContext(w, h)

	dc.SetHexColor(BackgroundHex)
	dc.Clear()

	if opts.Grid && s >= 4 {
		dc.SetHexColor(GridHex)
		dc.SetLineWidth(1)
		for x := 0.0; x <= opts.MapW; x++ {
			dc.DrawLine(x*s, 0, x*s, float64(h))
		}
		for y := 0.0; y <= opts.MapH; y++ {
			dc.DrawLine(0, y*s, float64(w), y*s)
		}
		dc.Stroke()
	}

	fillRect := func(r core.Rect, hex string) {
		dc.SetHexColor(hex)
		dc.DrawRectangle(r.X*s, r.Y*s, r.W*s, r.H*s)
		dc.Fill()
	}

	fillRect(l.Van, VanHex)
	dc.SetHexColor(TextHex)
	c := l.Van.Center()
	dc.DrawStringAnchored("VAN", c.X*s, c.Y*s, 0.5, 0.5)

	for _, wall := range l.Walls {
		fillRect(wall, WallHex)
	}

	for i, box := range l.Equipment {
		fillRect(box, BoxHex)
		dc.SetHexColor(TextHex)
		dc.DrawStringAnchored(fmt.Sprintf("#%d", i+1), box.Right()*s+2, box.Center().Y*s, 0, 0.5)
	}

	dc.SetHexColor(PlayerHex)
	dc.DrawCircle(l.Player.X*s, l.Player.Y*s, max(s/2, 2))
	dc.Fill()

	dc.SetHexColor(TextHex)
	dc.DrawString(l.Name, 6, 16)

	return dc, nil
}
