package cubesim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three principal axes of the cube lattice.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Unit returns the float unit vector along the positive axis.
func (a Axis) Unit() mgl64.Vec3 {
	var v mgl64.Vec3
	v[int(a)] = 1
	return v
}

// Vec3i is an integer lattice vector. Cubelet positions and face normals
// use components in {-1, 0, 1}.
type Vec3i struct {
	X, Y, Z int
}

// AxisVec returns the lattice vector of length one along an axis,
// signed by sign.
func AxisVec(a Axis, sign int) Vec3i {
	var v Vec3i
	switch a {
	case AxisX:
		v.X = sign
	case AxisY:
		v.Y = sign
	case AxisZ:
		v.Z = sign
	}
	return v
}

// Add returns the vector sum v + w.
func (v Vec3i) Add(w Vec3i) Vec3i {
	return Vec3i{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Neg returns -v.
func (v Vec3i) Neg() Vec3i {
	return Vec3i{-v.X, -v.Y, -v.Z}
}

// Scale returns the scalar product v * s.
func (v Vec3i) Scale(s int) Vec3i {
	return Vec3i{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · w.
func (v Vec3i) Dot(w Vec3i) int {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3i) Cross(w Vec3i) Vec3i {
	return Vec3i{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Component returns the coordinate along the given axis.
func (v Vec3i) Component(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Float converts to an mgl64 vector.
func (v Vec3i) Float() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// RoundVec snaps a float vector to the nearest lattice vector,
// clamping each coordinate into {-1, 0, 1}.
func RoundVec(v mgl64.Vec3) Vec3i {
	return Vec3i{roundLattice(v.X()), roundLattice(v.Y()), roundLattice(v.Z())}
}

func roundLattice(f float64) int {
	n := int(math.Round(f))
	if n > 1 {
		n = 1
	}
	if n < -1 {
		n = -1
	}
	return n
}

// DominantAxis returns the principal axis with the largest absolute
// component, and the sign of that component. A zero vector snaps to +x.
func DominantAxis(v mgl64.Vec3) (Axis, int) {
	axis := AxisX
	best := math.Abs(v.X())
	if a := math.Abs(v.Y()); a > best {
		axis, best = AxisY, a
	}
	if a := math.Abs(v.Z()); a > best {
		axis = AxisZ
	}
	if v[int(axis)] < 0 {
		return axis, -1
	}
	return axis, 1
}
