package core

// Direction is one of the eight compass directions a particle can move in.
type Direction uint8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest

	// DirectionCount tracks the number of directions for uniform draws
	DirectionCount
)

// Unit steps per direction, indexed by Direction.
// Screen coordinates: north decreases Y, south increases Y.
var (
	deltaX = [DirectionCount]int{0, 1, 1, 1, 0, -1, -1, -1}
	deltaY = [DirectionCount]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// Delta returns the unit (dx, dy) step for one move in this direction.
// Panics on a value outside the eight-way table; such a value cannot be
// produced by uniform draws and indicates a programming error.
func (d Direction) Delta() (dx, dy int) {
	return deltaX[d], deltaY[d]
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case Northeast:
		return "NE"
	case East:
		return "E"
	case Southeast:
		return "SE"
	case South:
		return "S"
	case Southwest:
		return "SW"
	case West:
		return "W"
	case Northwest:
		return "NW"
	default:
		return "Unknown"
	}
}
