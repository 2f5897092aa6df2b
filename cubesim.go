// Package cubesim implements the logical core of an interactive 3x3x3
// twisty-puzzle simulator: 27 cubelets on an integer lattice, quarter
// turns applied atomically to slices, free-form pointer drags resolved
// into discrete moves, scrambling, and solved detection.
//
// Rendering, audio and persistence are external collaborators: they
// consume the events the core emits (MoveCommitted, Solved) and supply
// raw interaction data (pointer positions, hit-face normals, frame
// deltas) to it.
//
// # Quick Start
//
// Create a puzzle, scramble it, and drive it from a frame loop:
//
//	puzzle := cubesim.New()
//
//	puzzle.OnMove(func(ev cubesim.MoveCommitted) {
//	    fmt.Println("Move:", ev.Move.Notation())
//	})
//	puzzle.OnSolved(func() {
//	    fmt.Println("Solved!")
//	})
//
//	puzzle.Scramble(20)
//	for !done {
//	    puzzle.Advance(frameDelta)
//	    // render from puzzle.Snapshot() and puzzle.Progress()
//	}
//
// Pointer gestures feed the same loop:
//
//	puzzle.PressStart(hitNormal, hitPoint, cubeletID)
//	puzzle.DragUpdate(pointerPos) // commits a move once the drag resolves
//	puzzle.Release()
//
// # State Model
//
// Cubelet positions live on {-1,0,1}^3 and always form a bijection onto
// it. Orientations are exact members of the 24-element rotation group
// of the cube, stored as integer matrices, so the solved check is exact
// rather than epsilon-fragile. Turn animation is presentation state
// only: the logical mutation happens exactly once, when a turn
// completes.
//
// # Headless Use
//
// With WithTurnDuration(0) every commit completes immediately, which
// makes the package usable as a plain cube-state library:
//
//	puzzle := cubesim.New(cubesim.WithTurnDuration(0))
//	puzzle.Commit(cubesim.R)
//	puzzle.Commit(cubesim.RPrime)
//	fmt.Println(puzzle.Solved()) // true
package cubesim
