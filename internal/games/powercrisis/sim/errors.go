package sim

import (
	"errors"

	"github.com/vovakirdan/power-crisis/internal/core"
)

var (
	// ErrInvalidGeometry is returned when a layout rectangle has a
	// non-positive or non-finite size.
	ErrInvalidGeometry = core.ErrInvalidGeometry

	// ErrInvalidParams is returned when a tunable is out of range.
	ErrInvalidParams = errors.New("invalid params")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("nil random source")

	// ErrNoSuchEquipment is returned for an equipment index out of range.
	ErrNoSuchEquipment = errors.New("no such equipment")
)
