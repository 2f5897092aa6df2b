package cubesim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// MoveCommitted describes a completed turn.
type MoveCommitted struct {
	Move               Move
	AffectedCubeletIDs []int
}

// activeTurn is the one move allowed in flight.
type activeTurn struct {
	move     Move
	subset   []*Cubelet
	delta    Rotation
	elapsed  time.Duration
	duration time.Duration
}

// MoveEngine serializes quarter turns onto a CubeletStore. At most one
// move is in flight at a time; Commit rejects with ErrBusy otherwise.
// The turn is interpolated over a configured duration for presentation,
// but the logical mutation happens exactly once, atomically, when the
// turn completes — consumers must not treat cubelet positions as stable
// truth while Busy reports true.
//
// The engine is single-threaded by design: Commit, Advance and the
// event callbacks all run on the caller's frame loop.
type MoveEngine struct {
	store        *CubeletStore
	detector     SolvedDetector
	turnDuration time.Duration
	easing       Easing

	current   *activeTurn
	wasSolved bool

	onCommitted func(MoveCommitted)
	onSolved    func()
}

// NewMoveEngine creates an engine over the given store. turnDuration
// zero makes every commit complete immediately inside Commit.
func NewMoveEngine(store *CubeletStore, turnDuration time.Duration, easing Easing) *MoveEngine {
	if easing == nil {
		easing = EaseLinear
	}
	return &MoveEngine{
		store:        store,
		detector:     NewSolvedDetector(),
		turnDuration: turnDuration,
		easing:       easing,
		wasSolved:    true,
	}
}

// OnCommitted sets the callback fired once per completed turn.
func (e *MoveEngine) OnCommitted(cb func(MoveCommitted)) {
	e.onCommitted = cb
}

// OnSolved sets the callback fired when a committed move transitions
// the puzzle from unsolved to solved. It does not re-fire while the
// puzzle stays solved.
func (e *MoveEngine) OnSolved(cb func()) {
	e.onSolved = cb
}

// Busy reports whether a move is in flight.
func (e *MoveEngine) Busy() bool {
	return e.current != nil
}

// Commit starts a quarter turn. It rejects with ErrBusy while another
// move is in flight and with ErrInvalidMove for moves outside the
// 18-move quarter-turn set. The affected subset is selected from live
// store state at commit time; once committed a move always runs to
// completion.
func (e *MoveEngine) Commit(move Move) error {
	if !move.Valid() {
		return ErrInvalidMove
	}
	if e.Busy() {
		return ErrBusy
	}

	e.current = &activeTurn{
		move:     move,
		subset:   e.store.SelectSlice(move.Axis, move.Slice),
		delta:    move.Delta(),
		duration: e.turnDuration,
	}
	if e.current.duration <= 0 {
		e.finish()
	}
	return nil
}

// Advance progresses the in-flight turn by the frame delta and applies
// it when the animation time is used up. It is a no-op while idle.
func (e *MoveEngine) Advance(dt time.Duration) {
	if e.current == nil {
		return
	}
	e.current.elapsed += dt
	if e.current.elapsed >= e.current.duration {
		e.finish()
	}
}

// Progress returns the in-flight move, its eased presentation
// quaternion and progress value. ok is false while idle. The quaternion
// is presentation state only.
func (e *MoveEngine) Progress() (move Move, q mgl64.Quat, progress float64, ok bool) {
	if e.current == nil {
		return Move{}, mgl64.QuatIdent(), 0, false
	}
	t := float64(e.current.elapsed) / float64(e.current.duration)
	if t > 1 {
		t = 1
	}
	eased := e.easing(t)
	return e.current.move, TurnQuat(e.current.move.Axis, e.current.move.Direction, eased), eased, true
}

// finish applies the full 90-degree delta to the logical store, emits
// MoveCommitted, and re-evaluates the solved state.
func (e *MoveEngine) finish() {
	turn := e.current
	e.store.rotateSubset(turn.subset, turn.delta)
	e.current = nil

	ids := make([]int, len(turn.subset))
	for i, c := range turn.subset {
		ids[i] = c.ID
	}
	if e.onCommitted != nil {
		e.onCommitted(MoveCommitted{Move: turn.move, AffectedCubeletIDs: ids})
	}

	solved := e.detector.IsSolved(e.store)
	if solved && !e.wasSolved && e.onSolved != nil {
		e.onSolved()
	}
	e.wasSolved = solved
}

// reset points the engine at a fresh store and clears in-flight state.
func (e *MoveEngine) reset(store *CubeletStore) {
	e.store = store
	e.current = nil
	e.wasSolved = true
}
