package sim

import "github.com/lixenwraith/randomwalk/core"

// Particle is one independently walking entity: a position on the plane, a
// current direction, a fixed color, and a liveness flag. The flag is
// monotonic: once a particle steps off the plane it is dead and never
// revived.
type Particle struct {
	Coord core.Coordinate
	Color core.RGB
	Dir   core.Direction

	alive bool
}

// NewParticle creates a particle at a uniformly random position on the
// plane, with a uniformly random color and direction.
func NewParticle(width, height uint8, src Source) (Particle, error) {
	if width == 0 || height == 0 {
		return Particle{}, ErrInvalidDimension
	}
	// Draw order is fixed (position, color, direction) so a seeded run is
	// reproducible.
	coord := core.Coordinate{
		X: uint8(src.Int(0, int(width)-1)),
		Y: uint8(src.Int(0, int(height)-1)),
	}
	color := core.RGB{
		R: uint8(src.Int(0, 255)),
		G: uint8(src.Int(0, 255)),
		B: uint8(src.Int(0, 255)),
	}
	dir := randomDirection(src)
	return Particle{Coord: coord, Color: color, Dir: dir, alive: true}, nil
}

// Alive reports whether the particle is still on the plane.
func (p *Particle) Alive() bool {
	return p.alive
}

// Steer rolls a percent in [1,100] and reassigns the direction when the
// roll is at or under the effective probability. A configured probability
// of 0 selects DefaultProbability. The new direction is drawn uniformly
// and may repeat the current one.
func (p *Particle) Steer(probPercent uint8, src Source) {
	prob := int(probPercent)
	if prob == 0 {
		prob = DefaultProbability
	}
	if src.Int(1, 100) <= prob {
		p.Dir = randomDirection(src)
	}
}

// Advance moves the particle one unit step in its current direction. A
// candidate position off the plane kills the particle in place: the
// coordinate keeps its pre-death value, and death is irreversible.
func (p *Particle) Advance(width, height uint8) {
	dx, dy := p.Dir.Delta()
	x := int(p.Coord.X) + dx
	y := int(p.Coord.Y) + dy
	if x < 0 || y < 0 || x == int(width) || y == int(height) {
		p.alive = false
		return
	}
	p.Coord.X = uint8(x)
	p.Coord.Y = uint8(y)
}

func randomDirection(src Source) core.Direction {
	return core.Direction(src.Int(0, int(core.DirectionCount)-1))
}
