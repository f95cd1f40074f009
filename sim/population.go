package sim

import "github.com/lixenwraith/randomwalk/core"

// Population is the ordered set of live particles. Insertion order is
// creation order and survives pruning, so rendering stays stable
// frame-to-frame for surviving particles. The population owns every
// particle exclusively; nothing outside it holds a reference past death.
type Population struct {
	particles []Particle
	width     uint8
	height    uint8
}

// NewPopulation creates count particles on a width x height plane.
// Construction is all-or-nothing: any creation failure returns an error
// with no population allocated.
func NewPopulation(count, width, height uint8, src Source) (*Population, error) {
	if width == 0 || height == 0 {
		return nil, ErrInvalidDimension
	}
	if count == 0 {
		return nil, ErrInvalidCount
	}
	particles := make([]Particle, 0, count)
	for i := 0; i < int(count); i++ {
		p, err := NewParticle(width, height, src)
		if err != nil {
			return nil, err
		}
		particles = append(particles, p)
	}
	return &Population{particles: particles, width: width, height: height}, nil
}

// Len returns the current number of particles.
func (pop *Population) Len() int {
	return len(pop.particles)
}

// SteerAll applies a steering roll to every particle. Rolls are
// independent; order does not matter.
func (pop *Population) SteerAll(probPercent uint8, src Source) {
	for i := range pop.particles {
		pop.particles[i].Steer(probPercent, src)
	}
}

// AdvanceAll walks every particle one step. Particles whose step leaves
// the plane die in place and stay in the population until the next Prune,
// holding their pre-death position.
func (pop *Population) AdvanceAll() {
	for i := range pop.particles {
		pop.particles[i].Advance(pop.width, pop.height)
	}
}

// Prune removes every dead particle, keeping survivors in their original
// relative order. It is the only operation that changes population size.
func (pop *Population) Prune() Status {
	live := pop.particles[:0]
	for _, p := range pop.particles {
		if p.alive {
			live = append(live, p)
		}
	}
	// Zero the tail so pruned particles don't linger in the backing array
	for i := len(live); i < len(pop.particles); i++ {
		pop.particles[i] = Particle{}
	}
	pop.particles = live
	if len(live) == 0 {
		return Exhausted
	}
	return Remaining
}

// ForEachLive visits each particle's position and color in population
// order. Read-only; used by renderers.
func (pop *Population) ForEachLive(visit func(core.Coordinate, core.RGB)) {
	for i := range pop.particles {
		visit(pop.particles[i].Coord, pop.particles[i].Color)
	}
}
