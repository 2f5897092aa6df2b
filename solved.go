package cubesim

import "math"

// Reference directions for the orientation half of the solved check.
// Two independent directions are required: a cubelet rotated about the
// axis through a single reference direction would still pass a
// one-direction check.
var (
	refUp    = Vec3i{0, 1, 0}
	refFront = Vec3i{0, 0, 1}
)

// defaultSolvedEpsilon is the angular tolerance in radians. With exact
// integer orientations the residual angle is either zero or at least 90
// degrees, so any small positive value works.
const defaultSolvedEpsilon = 1e-9

// SolvedDetector evaluates whether a store is back in its solved
// configuration.
type SolvedDetector struct {
	// Epsilon is the angular tolerance in radians for the reference
	// direction checks.
	Epsilon float64
}

// NewSolvedDetector returns a detector with the default tolerance.
func NewSolvedDetector() SolvedDetector {
	return SolvedDetector{Epsilon: defaultSolvedEpsilon}
}

// IsSolved reports whether every cubelet sits at its initial position
// with an orientation that carries both reference directions onto
// themselves within Epsilon.
func (d SolvedDetector) IsSolved(store *CubeletStore) bool {
	for _, c := range store.Snapshot() {
		if c.Position != c.Initial {
			return false
		}
		if !d.aligned(c.Orientation, refUp) || !d.aligned(c.Orientation, refFront) {
			return false
		}
	}
	return true
}

// aligned reports whether rotating ref by r leaves it within Epsilon of
// itself.
func (d SolvedDetector) aligned(r Rotation, ref Vec3i) bool {
	rotated := r.Apply(ref).Float()
	dot := rotated.Dot(ref.Float())
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return math.Acos(dot) <= d.Epsilon
}
