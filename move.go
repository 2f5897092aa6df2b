package cubesim

import "strings"

// Move identifies a single quarter turn: the slice of cubelets whose
// coordinate along Axis equals Slice, rotated 90 degrees in the sense
// of Direction (+1 counter-clockwise about the positive axis, per
// QuarterTurn).
type Move struct {
	Axis      Axis
	Slice     int // -1, 0, or 1
	Direction int // +1 or -1
}

// Valid reports whether the move is one of the 18 quarter turns.
func (m Move) Valid() bool {
	if m.Axis < AxisX || m.Axis > AxisZ {
		return false
	}
	if m.Slice < -1 || m.Slice > 1 {
		return false
	}
	return m.Direction == 1 || m.Direction == -1
}

// Inverse returns the move that undoes this one: same axis and slice,
// opposite direction.
func (m Move) Inverse() Move {
	m.Direction = -m.Direction
	return m
}

// Delta returns the exact 90-degree rotation this move applies.
func (m Move) Delta() Rotation {
	return QuarterTurn(m.Axis, m.Direction)
}

// baseMoves maps each notation letter to the move it denotes with no
// suffix. Face letters follow the usual convention (a bare letter is
// clockwise as seen from outside that face); M, E and S follow L, D
// and F respectively.
var baseMoves = map[string]Move{
	"R": {AxisX, 1, -1},
	"L": {AxisX, -1, 1},
	"U": {AxisY, 1, -1},
	"D": {AxisY, -1, 1},
	"F": {AxisZ, 1, -1},
	"B": {AxisZ, -1, 1},
	"M": {AxisX, 0, 1},
	"E": {AxisY, 0, 1},
	"S": {AxisZ, 0, -1},
}

// notationOrder fixes a deterministic letter lookup for formatting.
var notationOrder = []string{"R", "L", "U", "D", "F", "B", "M", "E", "S"}

// Notation returns the standard notation string for this move.
// Examples: R, R', M, E'.
func (m Move) Notation() string {
	for _, letter := range notationOrder {
		base := baseMoves[letter]
		if base.Axis != m.Axis || base.Slice != m.Slice {
			continue
		}
		if base.Direction == m.Direction {
			return letter
		}
		return letter + "'"
	}
	return "?"
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move. Only the
// quarter-turn metric is supported: R and R' parse, R2 does not.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	base, ok := baseMoves[strings.ToUpper(s[:1])]
	if !ok {
		return Move{}, ErrInvalidNotation
	}

	switch s[1:] {
	case "":
		return base, nil
	case "'", "`":
		return base.Inverse(), nil
	default:
		return Move{}, ErrInvalidNotation
	}
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'". Invalid tokens are skipped.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation
// string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
