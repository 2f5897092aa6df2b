package cubesim

import (
	"math/rand"
	"testing"
)

// instant returns a puzzle whose commits complete immediately.
func instant(opts ...Option) *Puzzle {
	return New(append([]Option{WithTurnDuration(0)}, opts...)...)
}

// checkBijection fails the test unless the 27 current positions are
// pairwise distinct and exactly cover {-1,0,1}^3.
func checkBijection(t *testing.T, p *Puzzle) {
	t.Helper()
	seen := make(map[Vec3i]int)
	for _, c := range p.Snapshot() {
		if prev, dup := seen[c.Position]; dup {
			t.Fatalf("cubelets %d and %d share position %v", prev, c.ID, c.Position)
		}
		seen[c.Position] = c.ID
		if c.Position.X < -1 || c.Position.X > 1 ||
			c.Position.Y < -1 || c.Position.Y > 1 ||
			c.Position.Z < -1 || c.Position.Z > 1 {
			t.Fatalf("cubelet %d left the lattice: %v", c.ID, c.Position)
		}
	}
	if len(seen) != 27 {
		t.Fatalf("expected 27 distinct positions, got %d", len(seen))
	}
}

// statesEqual compares full position+orientation state.
func statesEqual(a, b []Cubelet) bool {
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Orientation != b[i].Orientation {
			return false
		}
	}
	return true
}

func TestNewPuzzleIsSolved(t *testing.T) {
	p := instant()
	if !p.Solved() {
		t.Error("New puzzle should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	p := instant()
	if err := p.Commit(R); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if p.Solved() {
		t.Error("Puzzle should not be solved after R move")
	}
}

func TestFourTimesSameMoveIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for slice := -1; slice <= 1; slice++ {
			for _, dir := range []int{1, -1} {
				p := instant()
				before := p.Snapshot()
				m := Move{Axis: axis, Slice: slice, Direction: dir}
				for i := 0; i < 4; i++ {
					if err := p.Commit(m); err != nil {
						t.Fatalf("%s: commit %d failed: %v", m, i, err)
					}
				}
				if !statesEqual(before, p.Snapshot()) {
					t.Errorf("%s x 4 should restore the pre-move state", m)
				}
				if !p.Solved() {
					t.Errorf("%s x 4 should leave the puzzle solved", m)
				}
			}
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	gen := NewScrambleGenerator(rng)

	// Check the inverse law from assorted non-solved states too.
	p := instant()
	for _, warmup := range gen.Generate(10) {
		if err := p.Commit(warmup); err != nil {
			t.Fatalf("warmup commit failed: %v", err)
		}
		for _, m := range gen.Generate(5) {
			before := p.Snapshot()
			if err := p.Commit(m); err != nil {
				t.Fatalf("commit failed: %v", err)
			}
			if err := p.Commit(m.Inverse()); err != nil {
				t.Fatalf("inverse commit failed: %v", err)
			}
			if !statesEqual(before, p.Snapshot()) {
				t.Fatalf("%s then %s should restore the prior state", m, m.Inverse())
			}
		}
	}
}

func TestDisjointSlicesCommute(t *testing.T) {
	a := Move{Axis: AxisX, Slice: 1, Direction: -1}
	b := Move{Axis: AxisX, Slice: -1, Direction: 1}

	p1 := instant()
	p1.Commit(a)
	p1.Commit(b)

	p2 := instant()
	p2.Commit(b)
	p2.Commit(a)

	if !statesEqual(p1.Snapshot(), p2.Snapshot()) {
		t.Error("moves on disjoint slices of the same axis should commute")
	}

	// Disjoint slices on different axes.
	c := Move{Axis: AxisY, Slice: 1, Direction: 1}
	d := Move{Axis: AxisY, Slice: -1, Direction: 1}

	p3 := instant()
	p3.Commit(c)
	p3.Commit(d)

	p4 := instant()
	p4.Commit(d)
	p4.Commit(c)

	if !statesEqual(p3.Snapshot(), p4.Snapshot()) {
		t.Error("U-layer and D-layer moves should commute")
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	p := instant()
	for i := 0; i < 6; i++ {
		for _, m := range SexyMove {
			if err := p.Commit(m); err != nil {
				t.Fatalf("commit failed: %v", err)
			}
		}
	}
	if !p.Solved() {
		t.Error("Sexy move x 6 should return to solved")
	}
}

func TestBijectionUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	gen := NewScrambleGenerator(rng)

	p := instant()
	for i, m := range gen.Generate(200) {
		if err := p.Commit(m); err != nil {
			t.Fatalf("commit %d failed: %v", i, err)
		}
		checkBijection(t, p)
	}
}

func TestOrientationsStayInGroup(t *testing.T) {
	// Every reachable orientation must be one of the 24 exact group
	// elements. Enumerate the group by closure from the generators,
	// then walk a long random sequence.
	group := make(map[Rotation]bool)
	frontier := []Rotation{RotationIdentity}
	group[RotationIdentity] = true
	for len(frontier) > 0 {
		r := frontier[0]
		frontier = frontier[1:]
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			for _, dir := range []int{1, -1} {
				next := QuarterTurn(axis, dir).Compose(r)
				if !group[next] {
					group[next] = true
					frontier = append(frontier, next)
				}
			}
		}
	}
	if len(group) != 24 {
		t.Fatalf("rotation group should have 24 elements, enumerated %d", len(group))
	}

	rng := rand.New(rand.NewSource(3))
	gen := NewScrambleGenerator(rng)
	p := instant()
	for _, m := range gen.Generate(300) {
		p.Commit(m)
	}
	for _, c := range p.Snapshot() {
		if !group[c.Orientation] {
			t.Fatalf("cubelet %d orientation left the 24-element group: %v", c.ID, c.Orientation)
		}
	}
}

func TestScrambleUndoRoundTrip(t *testing.T) {
	p := instant(WithRand(rand.New(rand.NewSource(20))))

	scramble, err := p.Scramble(20)
	if err != nil {
		t.Fatalf("scramble failed: %v", err)
	}
	if len(scramble) != 20 {
		t.Fatalf("expected 20 scramble moves, got %d", len(scramble))
	}
	p.Advance(0)
	if p.Busy() {
		t.Fatal("instant puzzle should drain the scramble queue in one advance")
	}

	for _, m := range InverseSequence(scramble) {
		if err := p.Commit(m); err != nil {
			t.Fatalf("reverse commit failed: %v", err)
		}
	}
	if !p.Solved() {
		t.Error("applying the exact reverse of a scramble should solve the puzzle")
	}
}

func TestUndoWalksBackToSolved(t *testing.T) {
	p := instant(WithRand(rand.New(rand.NewSource(21))))

	if _, err := p.Scramble(15); err != nil {
		t.Fatalf("scramble failed: %v", err)
	}
	p.Advance(0)

	if got := len(p.Moves()); got != 15 {
		t.Fatalf("history should hold 15 moves, got %d", got)
	}
	for i := 0; i < 15; i++ {
		if err := p.Undo(); err != nil {
			t.Fatalf("undo %d failed: %v", i, err)
		}
	}
	if !p.Solved() {
		t.Error("undoing every move should return to solved")
	}
	if got := len(p.Moves()); got != 0 {
		t.Errorf("history should be empty after full undo, got %d", got)
	}
}

func TestResetRecreatesSolvedStore(t *testing.T) {
	p := instant(WithRand(rand.New(rand.NewSource(5))))
	p.Scramble(10)
	p.Advance(0)
	if p.Solved() {
		t.Fatal("puzzle should be scrambled before reset")
	}

	p.Reset()
	if !p.Solved() {
		t.Error("reset should produce a solved puzzle")
	}
	checkBijection(t, p)
	if len(p.Moves()) != 0 {
		t.Error("reset should clear the move history")
	}
}

func TestSelectSliceReflectsLiveState(t *testing.T) {
	p := instant()
	store := p.store

	// Turning the up layer moves different cubelets into the front
	// slice; a live selection must see the change.
	before := make(map[int]bool)
	for _, c := range store.SelectSlice(AxisZ, 1) {
		before[c.ID] = true
	}
	p.Commit(U)
	after := make(map[int]bool)
	for _, c := range store.SelectSlice(AxisZ, 1) {
		after[c.ID] = true
	}

	changed := false
	for id := range after {
		if !before[id] {
			changed = true
		}
	}
	if !changed {
		t.Error("slice selection should reflect post-move membership")
	}
	if len(after) != 9 {
		t.Errorf("a slice should always hold 9 cubelets, got %d", len(after))
	}
}

func TestStickerColorsAssignedByInitialPosition(t *testing.T) {
	p := instant()
	store := p.store

	// The front-top-right corner shows exactly three colors.
	corner := store.At(Vec3i{1, 1, 1})
	if corner == nil {
		t.Fatal("corner position should be occupied")
	}
	colors := 0
	for _, f := range Faces {
		if corner.Sticker(f.Normal()) != ColorNone {
			colors++
		}
	}
	if colors != 3 {
		t.Errorf("corner cubelet should show 3 colors, got %d", colors)
	}

	// The core shows none.
	core := store.At(Vec3i{0, 0, 0})
	for _, f := range Faces {
		if got := core.Sticker(f.Normal()); got != ColorNone {
			t.Errorf("core cubelet should be uncolored, face %s shows %s", f, got)
		}
	}

	// A center shows exactly its face color.
	up := store.At(Vec3i{0, 1, 0})
	if got := up.Sticker(Vec3i{0, 1, 0}); got != ColorWhite {
		t.Errorf("up center should show white, got %s", got)
	}
}
