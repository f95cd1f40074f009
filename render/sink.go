// Package render provides the draw sink the simulation paints into: a
// tcell-backed screen for normal use and a raw ANSI emitter that writes
// the original escape protocol to any io.Writer.
package render

import "github.com/lixenwraith/randomwalk/core"

// Sink is the draw capability consumed by the simulation. One frame is a
// sequence of Draw calls followed by one Flush; Clear runs once before the
// first frame.
type Sink interface {
	// Clear wipes the plane before the first frame.
	Clear()

	// Draw paints one cell with a truecolor background at the particle's
	// position.
	Draw(c core.Coordinate, color core.RGB)

	// Flush makes all draws since the previous Flush visible, before the
	// frame's delay begins.
	Flush() error

	// Fini restores the terminal. Safe to call after a failed run.
	Fini()
}
