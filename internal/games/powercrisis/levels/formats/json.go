package formats

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON map file. Unknown fields are rejected.
func ParseJSON(data []byte) (Map, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return Map{}, fmt.Errorf("json decode: %w", err)
	}
	return doc.toMap()
}
