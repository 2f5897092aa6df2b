package cubesim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestQuarterTurnSignConvention(t *testing.T) {
	// +1 about +y carries +z onto +x (right-hand rule).
	r := QuarterTurn(AxisY, 1)
	if got := r.Apply(Vec3i{0, 0, 1}); got != (Vec3i{1, 0, 0}) {
		t.Errorf("QuarterTurn(y,+1) should map +z to +x, got %v", got)
	}
	// And the opposite sense undoes it.
	inv := QuarterTurn(AxisY, -1)
	if got := inv.Apply(Vec3i{1, 0, 0}); got != (Vec3i{0, 0, 1}) {
		t.Errorf("QuarterTurn(y,-1) should map +x to +z, got %v", got)
	}
}

func TestQuarterTurnFourTimesIsIdentity(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, dir := range []int{1, -1} {
			r := RotationIdentity
			q := QuarterTurn(axis, dir)
			for i := 0; i < 4; i++ {
				r = q.Compose(r)
			}
			if !r.IsIdentity() {
				t.Errorf("four quarter turns about %s (dir %d) should be identity", axis, dir)
			}
		}
	}
}

func TestInverseIsTranspose(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		q := QuarterTurn(axis, 1)
		if got := q.Compose(q.Inverse()); !got.IsIdentity() {
			t.Errorf("r * r^-1 should be identity for axis %s", axis)
		}
		if got := q.Inverse().Compose(q); !got.IsIdentity() {
			t.Errorf("r^-1 * r should be identity for axis %s", axis)
		}
	}
}

func TestRotationPreservesLattice(t *testing.T) {
	// Every group element applied to every lattice position lands on a
	// lattice position of the same length class.
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		q := QuarterTurn(axis, 1)
		for x := -1; x <= 1; x++ {
			for y := -1; y <= 1; y++ {
				for z := -1; z <= 1; z++ {
					v := Vec3i{x, y, z}
					w := q.Apply(v)
					if v.Dot(v) != w.Dot(w) {
						t.Fatalf("rotation changed vector length: %v -> %v", v, w)
					}
				}
			}
		}
	}
}

func TestTurnQuatMatchesMatrixAtFullProgress(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for _, dir := range []int{1, -1} {
			q := TurnQuat(axis, dir, 1)
			m := QuarterTurn(axis, dir)
			for _, v := range []Vec3i{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
				viaQuat := q.Rotate(v.Float())
				viaMatrix := m.Apply(v).Float()
				if viaQuat.Sub(viaMatrix).Len() > 1e-9 {
					t.Errorf("axis %s dir %d: quat rotates %v to %v, matrix to %v",
						axis, dir, v, viaQuat, viaMatrix)
				}
			}
		}
	}
}

func TestTurnQuatZeroProgressIsIdentity(t *testing.T) {
	q := TurnQuat(AxisX, 1, 0)
	v := q.Rotate(refFront.Float())
	if math.Abs(v.X()) > 1e-12 || math.Abs(v.Y()) > 1e-12 || math.Abs(v.Z()-1) > 1e-12 {
		t.Errorf("zero-progress quat should be identity, rotated +z to %v", v)
	}
}

func TestRoundVecSnapsAndClamps(t *testing.T) {
	cases := []struct {
		in   [3]float64
		want Vec3i
	}{
		{[3]float64{0.9999, -1.0001, 0.0001}, Vec3i{1, -1, 0}},
		{[3]float64{1.4, -0.6, -0.4}, Vec3i{1, -1, 0}},
		{[3]float64{2.3, -2.3, 0}, Vec3i{1, -1, 0}},
	}
	for _, tc := range cases {
		got := RoundVec(mgl64.Vec3(tc.in))
		if got != tc.want {
			t.Errorf("RoundVec(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDominantAxis(t *testing.T) {
	cases := []struct {
		in       [3]float64
		wantAxis Axis
		wantSign int
	}{
		{[3]float64{0.98, 0.1, -0.05}, AxisX, 1},
		{[3]float64{-0.98, 0.1, -0.05}, AxisX, -1},
		{[3]float64{0.1, -0.9, 0.3}, AxisY, -1},
		{[3]float64{0.2, 0.2, 0.95}, AxisZ, 1},
	}
	for _, tc := range cases {
		axis, sign := DominantAxis(mgl64.Vec3(tc.in))
		if axis != tc.wantAxis || sign != tc.wantSign {
			t.Errorf("DominantAxis(%v) = (%s, %d), want (%s, %d)",
				tc.in, axis, sign, tc.wantAxis, tc.wantSign)
		}
	}
}
