package cubesim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Puzzle is the facade over the cubelet store, move engine, gesture
// resolver and scramble generator. It is the type embedding UIs talk
// to: pointer events go in, MoveCommitted and Solved events come out.
//
// Everything runs on the caller's frame loop; Puzzle is not safe for
// concurrent use and does not need to be.
type Puzzle struct {
	cfg       *config
	store     *CubeletStore
	engine    *MoveEngine
	resolver  *GestureResolver
	scrambler *ScrambleGenerator

	// queue holds moves awaiting replay (scrambles); the next one is
	// committed as soon as the previous completes.
	queue   []Move
	history []Move
	undoing bool

	onMove   func(MoveCommitted)
	onSolved func()
}

// New creates a solved puzzle.
func New(opts ...Option) *Puzzle {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	store := NewCubeletStore()
	p := &Puzzle{
		cfg:       cfg,
		store:     store,
		engine:    NewMoveEngine(store, cfg.turnDuration, cfg.easing),
		resolver:  NewGestureResolver(store),
		scrambler: NewScrambleGenerator(cfg.rng),
	}
	p.engine.OnCommitted(p.handleCommitted)
	p.engine.OnSolved(func() {
		if p.onSolved != nil {
			p.onSolved()
		}
	})
	return p
}

// OnMove sets the callback fired once per completed turn.
func (p *Puzzle) OnMove(cb func(MoveCommitted)) {
	p.onMove = cb
}

// OnSolved sets the callback fired when a committed move returns the
// puzzle to its solved configuration. It fires only on the transition.
func (p *Puzzle) OnSolved(cb func()) {
	p.onSolved = cb
}

// Busy reports whether UI input should be suppressed: a move is in
// flight or queued moves are still replaying.
func (p *Puzzle) Busy() bool {
	return p.engine.Busy() || len(p.queue) > 0
}

// Solved reports whether the puzzle is currently solved.
func (p *Puzzle) Solved() bool {
	return p.engine.detector.IsSolved(p.store)
}

// Advance drives the frame loop: it progresses any in-flight turn by
// dt and, once the engine is free, commits the next queued move.
func (p *Puzzle) Advance(dt time.Duration) {
	p.engine.Advance(dt)
	for !p.engine.Busy() && len(p.queue) > 0 {
		next := p.queue[0]
		p.queue = p.queue[1:]
		if err := p.engine.Commit(next); err != nil {
			return
		}
		if p.engine.Busy() {
			return
		}
	}
}

// Commit applies a single move directly, bypassing gesture resolution
// (scripted input, notation playback). Rejected with ErrBusy while a
// move is in flight.
func (p *Puzzle) Commit(move Move) error {
	if p.Busy() {
		return ErrBusy
	}
	return p.engine.Commit(move)
}

// Scramble queues count random moves for sequential replay and returns
// them (so callers can record the scramble text). Refused while busy.
func (p *Puzzle) Scramble(count int) ([]Move, error) {
	if p.Busy() {
		return nil, ErrBusy
	}
	moves := p.scrambler.Generate(count)
	p.queue = append(p.queue, moves...)
	return moves, nil
}

// Undo queues the inverse of the most recent committed move. It is a
// no-op when the history is empty or disabled.
func (p *Puzzle) Undo() error {
	if p.Busy() {
		return ErrBusy
	}
	if len(p.history) == 0 {
		return nil
	}
	p.undoing = true
	return p.engine.Commit(p.history[len(p.history)-1].Inverse())
}

// PressStart forwards a pointer-down on cube geometry to the gesture
// resolver. Ignored while a move is in flight.
func (p *Puzzle) PressStart(hitNormal, hitPoint mgl64.Vec3, cubeletID int) {
	if p.Busy() {
		return
	}
	p.resolver.PressStart(hitNormal, hitPoint, cubeletID)
}

// DragUpdate forwards a pointer move; when the resolver produces a
// move it is committed immediately. Ignored while busy.
func (p *Puzzle) DragUpdate(point mgl64.Vec3) {
	if p.Busy() {
		return
	}
	if move, ok := p.resolver.DragUpdate(point); ok {
		_ = p.engine.Commit(move)
	}
}

// Release forwards a pointer-up, ending the current gesture.
func (p *Puzzle) Release() {
	p.resolver.Release()
}

// Progress exposes the in-flight turn's presentation state for
// renderers. ok is false while idle.
func (p *Puzzle) Progress() (move Move, q mgl64.Quat, progress float64, ok bool) {
	return p.engine.Progress()
}

// Snapshot returns a copy of all 27 cubelets. While Busy is true the
// positions are the pre-move values; the logical mutation lands only
// when the turn completes.
func (p *Puzzle) Snapshot() []Cubelet {
	return p.store.Snapshot()
}

// Moves returns the committed move history.
func (p *Puzzle) Moves() []Move {
	out := make([]Move, len(p.history))
	copy(out, p.history)
	return out
}

// Reset discards all state and re-creates the store solved. The old
// cubelets are never patched back; a reset is a full re-initialization.
func (p *Puzzle) Reset() {
	p.store = NewCubeletStore()
	p.engine.reset(p.store)
	p.resolver.reset(p.store)
	p.queue = nil
	p.history = nil
	p.undoing = false
}

func (p *Puzzle) handleCommitted(ev MoveCommitted) {
	if p.cfg.moveHistory {
		if p.undoing {
			p.history = p.history[:len(p.history)-1]
		} else {
			p.history = append(p.history, ev.Move)
		}
	}
	p.undoing = false
	if p.onMove != nil {
		p.onMove(ev)
	}
}
