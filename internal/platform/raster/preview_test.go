package raster

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/vovakirdan/power-crisis/internal/core"
	"github.com/vovakirdan/power-crisis/internal/games/powercrisis/levels"
)

func testLevel() levels.Level {
	return levels.Level{
		ID:        "test",
		Name:      "Test",
		Player:    core.V(5, 5),
		Walls:     []core.Rect{core.NewRect(10, 0, 1, 10)},
		Equipment: []core.Rect{core.NewRect(2, 8, 1, 1)},
		Van:       core.NewRect(14, 2, 4, 2),
	}
}

func TestPreviewSize(t *testing.T) {
	img, err := Preview(testLevel(), Options{Scale: 4, MapW: 20, MapH: 10})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 40 {
		t.Errorf("bounds = %v, expected 80x40", b)
	}
}

func TestPreviewDrawsWalls(t *testing.T) {
	img, err := Preview(testLevel(), Options{Scale: 4, MapW: 20, MapH: 10})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	// Middle of the wall at x=10..11, y=0..10 in world units.
	r, g, b, _ := img.At(42, 30).RGBA()
	if r>>8 != 0x8a || g>>8 != 0x8f || b>>8 != 0x98 {
		t.Errorf("wall pixel = %02x%02x%02x, expected 8a8f98", r>>8, g>>8, b>>8)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testLevel(), DefaultOptions()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 800 {
		t.Errorf("width = %d, expected 800", img.Bounds().Dx())
	}
}

func TestPreviewRejectsBadOptions(t *testing.T) {
	if _, err := Preview(testLevel(), Options{}); !errors.Is(err, core.ErrInvalidGeometry) {
		t.Errorf("err = %v, expected ErrInvalidGeometry", err)
	}
}
