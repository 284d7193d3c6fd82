// Package formats provides map file parsers for Power Crisis.
package formats

import (
	"fmt"

	"github.com/vovakirdan/power-crisis/internal/core"
)

// Document is the on-disk map structure shared by every format.
// Coordinates are world units, y pointing down.
type Document struct {
	ID              string            `yaml:"id" json:"id"`
	Name            string            `yaml:"name" json:"name"`
	Player          Point             `yaml:"player" json:"player"`
	Walls           []Box             `yaml:"walls" json:"walls"`
	ElectricalBoxes []Box             `yaml:"electrical_boxes" json:"electrical_boxes"`
	Van             *Box              `yaml:"van" json:"van"`
	Metadata        map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Point is a position.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Box is a rectangle.
type Box struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	W float64 `yaml:"w" json:"w"`
	H float64 `yaml:"h" json:"h"`
}

// Rect converts the box to a core.Rect.
func (b Box) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Map is a parsed map ready for validation.
type Map struct {
	ID        string
	Name      string
	Player    core.Vec2
	Walls     []core.Rect
	Equipment []core.Rect
	Van       core.Rect
	Metadata  map[string]string
}

func (d Document) toMap() (Map, error) {
	if d.Van == nil {
		return Map{}, fmt.Errorf("missing van")
	}

	m := Map{
		ID:        d.ID,
		Name:      d.Name,
		Player:    core.V(d.Player.X, d.Player.Y),
		Walls:     make([]core.Rect, 0, len(d.Walls)),
		Equipment: make([]core.Rect, 0, len(d.ElectricalBoxes)),
		Van:       d.Van.Rect(),
		Metadata:  d.Metadata,
	}
	for _, w := range d.Walls {
		m.Walls = append(m.Walls, w.Rect())
	}
	for _, e := range d.ElectricalBoxes {
		m.Equipment = append(m.Equipment, e.Rect())
	}
	return m, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
