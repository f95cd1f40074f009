package sim

import (
	"fmt"
	"time"

	"github.com/lixenwraith/randomwalk/render"
)

// Engine drives the run loop. One frame is exactly: render the live set,
// steer, advance, prune. Particles are drawn before this frame's movement
// is applied, so the visible trajectory reads "where it was, then where it
// decided to go".
//
// Single-threaded and synchronous: the engine exclusively owns the
// population, and the only blocking point is the inter-frame delay.
type Engine struct {
	cfg  Config
	src  Source
	sink render.Sink

	// onExit, when set, fires after any frame in which particles left the
	// plane, with the number that left.
	onExit func(count int)

	frames int
}

// NewEngine validates the configuration and prepares a run. Precondition
// failures surface here; Run performs no further validation.
func NewEngine(cfg Config, src Source, sink render.Sink) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, src: src, sink: sink}, nil
}

// OnExit registers a callback fired after each frame in which at least one
// particle left the plane.
func (e *Engine) OnExit(fn func(count int)) {
	e.onExit = fn
}

// Frames returns the number of frames simulated so far.
func (e *Engine) Frames() int {
	return e.frames
}

// Run executes the walk until every particle has left the plane. It
// returns nil on normal exhaustion, a precondition error if the population
// cannot be built, or a render error wrapping ErrRender.
func (e *Engine) Run() error {
	pop, err := NewPopulation(e.cfg.Count, e.cfg.Width, e.cfg.Height, e.src)
	if err != nil {
		return err
	}
	e.sink.Clear()
	delay := e.cfg.FrameDelay()
	for {
		pop.ForEachLive(e.sink.Draw)
		if err := e.sink.Flush(); err != nil {
			return fmt.Errorf("%w: %v", ErrRender, err)
		}
		pop.SteerAll(e.cfg.Probability, e.src)
		pop.AdvanceAll()
		before := pop.Len()
		status := pop.Prune()
		e.frames++
		if exited := before - pop.Len(); exited > 0 && e.onExit != nil {
			e.onExit(exited)
		}
		if status == Exhausted {
			return nil
		}
		time.Sleep(delay)
	}
}
