package formats

import (
	"strings"
	"testing"

	"github.com/vovakirdan/power-crisis/internal/core"
)

const sampleYAML = `
id: shed
name: Garden Shed
player: {x: 2, y: 3}
walls:
  - {x: 0, y: 0, w: 10, h: 1}
  - {x: 0, y: 9, w: 10, h: 1}
electrical_boxes:
  - {x: 5, y: 5, w: 0.625, h: 1}
van: {x: 20, y: 20, w: 4, h: 2}
metadata:
  author: test
`

const sampleJSON = `{
  "id": "shed",
  "name": "Garden Shed",
  "player": {"x": 2, "y": 3},
  "walls": [{"x": 0, "y": 0, "w": 10, "h": 1}, {"x": 0, "y": 9, "w": 10, "h": 1}],
  "electrical_boxes": [{"x": 5, "y": 5, "w": 0.625, "h": 1}],
  "van": {"x": 20, "y": 20, "w": 4, "h": 2}
}`

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte) (Map, error)
		data  string
	}{
		{"yaml", ParseYAML, sampleYAML},
		{"json", ParseJSON, sampleJSON},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.parse([]byte(tc.data))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if m.ID != "shed" || m.Name != "Garden Shed" {
				t.Errorf("ID/Name = %q/%q", m.ID, m.Name)
			}
			if m.Player != core.V(2, 3) {
				t.Errorf("Player = %v", m.Player)
			}
			if len(m.Walls) != 2 || m.Walls[1] != core.NewRect(0, 9, 10, 1) {
				t.Errorf("Walls = %v", m.Walls)
			}
			if len(m.Equipment) != 1 || m.Equipment[0].W != 0.625 {
				t.Errorf("Equipment = %v", m.Equipment)
			}
			if m.Van != core.NewRect(20, 20, 4, 2) {
				t.Errorf("Van = %v", m.Van)
			}
		})
	}
}

func TestParseMissingVan(t *testing.T) {
	if _, err := ParseYAML([]byte("id: x\nplayer: {x: 1, y: 1}\n")); err == nil {
		t.Error("expected an error for a map without a van")
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	_, err := ParseJSON([]byte(`{"id": "x", "lava": true}`))
	if err == nil || !strings.Contains(err.Error(), "lava") {
		t.Errorf("error = %v, expected unknown field error", err)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	m, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatal(err)
	}

	data, err := EncodeYAML(m)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(back.Walls) != len(m.Walls) || back.Van != m.Van || back.Player != m.Player {
		t.Errorf("round trip changed the map: %+v", back)
	}
}
