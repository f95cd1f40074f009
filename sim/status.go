package sim

import "errors"

// Precondition and runtime failures surfaced by the simulation.
// Preconditions are checked once at configuration/initialization time,
// never per frame.
var (
	ErrInvalidDimension   = errors.New("plane width and height must be nonzero")
	ErrInvalidCount       = errors.New("particle count must be nonzero")
	ErrInvalidProbability = errors.New("direction change probability cannot exceed 100")
	ErrRender             = errors.New("render sink failure")
)

// Status reports the outcome of a prune pass.
type Status uint8

const (
	// Remaining means at least one particle is still walking.
	Remaining Status = iota
	// Exhausted means every particle has left the plane.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Remaining:
		return "Remaining"
	case Exhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}
