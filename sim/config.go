package sim

import "time"

const (
	// DefaultProbability is the percent chance of a direction change per
	// frame when the configured probability is 0. Zero means "use the
	// default", not "never steer".
	DefaultProbability = 50

	// DefaultDelay is the inter-frame delay applied when the configured
	// delay is 0. Zero means "use the default", never "no delay".
	DefaultDelay = 25 * time.Millisecond

	// MaxProbability bounds the steering probability in percent.
	MaxProbability = 100
)

// Config describes one run. Immutable for the run's duration.
type Config struct {
	Width  uint8 // plane width in cells
	Height uint8 // plane height in cells
	Count  uint8 // particles to walk

	// Probability is the percent chance a particle changes direction each
	// frame. 0 selects DefaultProbability.
	Probability uint8

	// Delay is the pause between frames. 0 selects DefaultDelay.
	Delay time.Duration
}

// Validate checks the run preconditions once, up front.
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return ErrInvalidDimension
	}
	if c.Count == 0 {
		return ErrInvalidCount
	}
	if c.Probability > MaxProbability {
		return ErrInvalidProbability
	}
	return nil
}

// FrameDelay resolves the effective inter-frame delay.
func (c Config) FrameDelay() time.Duration {
	if c.Delay == 0 {
		return DefaultDelay
	}
	return c.Delay
}
