package cubesim

import (
	"math/rand"
	"time"
)

// ScrambleGenerator produces random move sequences to randomize the
// puzzle at session start. Axis, slice and direction are each drawn
// independently and uniformly; no "don't repeat the last axis"
// smoothing is applied.
type ScrambleGenerator struct {
	rng *rand.Rand
}

// NewScrambleGenerator creates a generator. A nil rng gets a
// time-seeded source, which is all a scramble needs.
func NewScrambleGenerator(rng *rand.Rand) *ScrambleGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ScrambleGenerator{rng: rng}
}

// Generate returns count uniformly random quarter turns.
func (g *ScrambleGenerator) Generate(count int) []Move {
	moves := make([]Move, count)
	for i := range moves {
		direction := 1
		if g.rng.Intn(2) == 0 {
			direction = -1
		}
		moves[i] = Move{
			Axis:      Axis(g.rng.Intn(3)),
			Slice:     g.rng.Intn(3) - 1,
			Direction: direction,
		}
	}
	return moves
}
