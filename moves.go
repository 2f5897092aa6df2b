package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	puzzle.Commit(cubesim.R)
var (
	// Right face turns (x axis, outer +1 slice)
	R      = Move{Axis: AxisX, Slice: 1, Direction: -1} // Right clockwise
	RPrime = Move{Axis: AxisX, Slice: 1, Direction: 1}  // Right counter-clockwise

	// Left face turns
	L      = Move{Axis: AxisX, Slice: -1, Direction: 1}
	LPrime = Move{Axis: AxisX, Slice: -1, Direction: -1}

	// Up face turns
	U      = Move{Axis: AxisY, Slice: 1, Direction: -1}
	UPrime = Move{Axis: AxisY, Slice: 1, Direction: 1}

	// Down face turns
	D      = Move{Axis: AxisY, Slice: -1, Direction: 1}
	DPrime = Move{Axis: AxisY, Slice: -1, Direction: -1}

	// Front face turns
	F      = Move{Axis: AxisZ, Slice: 1, Direction: -1}
	FPrime = Move{Axis: AxisZ, Slice: 1, Direction: 1}

	// Back face turns
	B      = Move{Axis: AxisZ, Slice: -1, Direction: 1}
	BPrime = Move{Axis: AxisZ, Slice: -1, Direction: -1}

	// Middle slice turns (slice 0). M follows L, E follows D, S follows F.
	M      = Move{Axis: AxisX, Slice: 0, Direction: 1}
	MPrime = Move{Axis: AxisX, Slice: 0, Direction: -1}
	E      = Move{Axis: AxisY, Slice: 0, Direction: 1}
	EPrime = Move{Axis: AxisY, Slice: 0, Direction: -1}
	S      = Move{Axis: AxisZ, Slice: 0, Direction: -1}
	SPrime = Move{Axis: AxisZ, Slice: 0, Direction: 1}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}
