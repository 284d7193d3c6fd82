package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (Map, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return doc.toMap()
}

// EncodeYAML writes a map back out as YAML.
func EncodeYAML(m Map) ([]byte, error) {
	return yaml.Marshal(fromMap(m))
}

func fromMap(m Map) Document {
	doc := Document{
		ID:       m.ID,
		Name:     m.Name,
		Player:   Point{X: m.Player.X, Y: m.Player.Y},
		Van:      &Box{X: m.Van.X, Y: m.Van.Y, W: m.Van.W, H: m.Van.H},
		Metadata: m.Metadata,
	}
	for _, r := range m.Walls {
		doc.Walls = append(doc.Walls, Box{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	for _, r := range m.Equipment {
		doc.ElectricalBoxes = append(doc.ElectricalBoxes, Box{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	return doc
}
