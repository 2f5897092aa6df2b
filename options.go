package cubesim

import (
	"math/rand"
	"time"
)

// Option configures Puzzle behavior.
type Option func(*config)

type config struct {
	turnDuration time.Duration
	easing       Easing
	rng          *rand.Rand
	moveHistory  bool
}

func defaultConfig() *config {
	return &config{
		turnDuration: 150 * time.Millisecond,
		easing:       EaseInOutQuad,
		moveHistory:  true,
	}
}

// WithTurnDuration sets how long a committed turn animates before the
// logical state mutates. Zero makes every commit complete immediately,
// which is what headless callers and tests want.
func WithTurnDuration(d time.Duration) Option {
	return func(c *config) {
		c.turnDuration = d
	}
}

// WithEasing sets the presentation easing curve for turn animation.
func WithEasing(e Easing) Option {
	return func(c *config) {
		c.easing = e
	}
}

// WithRand sets the random source used for scrambles. Pass a seeded
// source for reproducible scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), committed moves are stored and accessible via
// Moves(), and Undo works. Disable for long sessions to reduce memory.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
