package cubesim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is an element of the 24-element rotation group of the cube,
// stored as a row-major orthonormal matrix with entries in {-1, 0, 1}.
// Because every entry is an exact integer, composing and applying
// rotations never accumulates floating-point error: orientations stay
// exact multiples of 90 degrees by construction.
type Rotation [3][3]int

// RotationIdentity is the identity rotation (solved orientation).
var RotationIdentity = Rotation{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// QuarterTurn returns the 90-degree rotation about the given axis.
// direction +1 is counter-clockwise looking down the positive axis
// toward the origin (the right-hand rule); -1 is clockwise. This is the
// single sign convention for the whole package: the move engine and the
// gesture resolver both derive their rotations from it.
func QuarterTurn(axis Axis, direction int) Rotation {
	u := AxisVec(axis, 1)
	basis := [3]Vec3i{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	var r Rotation
	for col, e := range basis {
		// rot(e) = u(u·e) + u×e for +90 degrees; reversed cross for -90.
		var w Vec3i
		if direction >= 0 {
			w = u.Scale(u.Dot(e)).Add(u.Cross(e))
		} else {
			w = u.Scale(u.Dot(e)).Add(e.Cross(u))
		}
		r[0][col] = w.X
		r[1][col] = w.Y
		r[2][col] = w.Z
	}
	return r
}

// Compose returns r ∘ s: the rotation that applies s first, then r.
func (r Rotation) Compose(s Rotation) Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0
			for k := 0; k < 3; k++ {
				sum += r[i][k] * s[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Apply rotates a lattice vector.
func (r Rotation) Apply(v Vec3i) Vec3i {
	return Vec3i{
		r[0][0]*v.X + r[0][1]*v.Y + r[0][2]*v.Z,
		r[1][0]*v.X + r[1][1]*v.Y + r[1][2]*v.Z,
		r[2][0]*v.X + r[2][1]*v.Y + r[2][2]*v.Z,
	}
}

// Inverse returns the inverse rotation. Orthonormal matrices invert by
// transposition.
func (r Rotation) Inverse() Rotation {
	var out Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = r[j][i]
		}
	}
	return out
}

// IsIdentity reports whether r is the identity rotation.
func (r Rotation) IsIdentity() bool {
	return r == RotationIdentity
}

// TurnQuat returns the presentation quaternion for a partially animated
// quarter turn: progress 0 is no rotation, progress 1 is the full 90
// degrees. It exists only for renderers; logical state never passes
// through it.
func TurnQuat(axis Axis, direction int, progress float64) mgl64.Quat {
	angle := float64(direction) * progress * math.Pi / 2
	return mgl64.QuatRotate(angle, axis.Unit())
}
