package core

// Coordinate is a cell position on the plane.
// Valid positions range from (0,0) to (width-1, height-1); a Coordinate held
// by a live particle never leaves that range.
type Coordinate struct {
	X, Y uint8
}
