package cubesim

import "github.com/go-gl/mathgl/mgl64"

// DragDeadZone is the minimum drag distance in world units before a
// gesture resolves into a move. Shorter drags are jitter, not intent.
const DragDeadZone = 0.25

// GestureResolver converts a pointer press on a cube face plus a drag
// vector into a concrete Move. It never mutates the store; it only
// reads the pressed cubelet's live position to pick the slice.
//
// A gesture resolves at most one move: once the dead zone is crossed
// the resolver latches and ignores further movement until the next
// press.
type GestureResolver struct {
	store *CubeletStore

	pressed    bool
	latched    bool
	normalAxis Axis
	normalSign int
	pressPoint mgl64.Vec3
	cubeletID  int
}

// NewGestureResolver creates a resolver reading slice membership from
// the given store.
func NewGestureResolver(store *CubeletStore) *GestureResolver {
	return &GestureResolver{store: store, cubeletID: -1}
}

// PressStart begins a gesture. hitNormal is the face normal of the
// picked geometry and is snapped to the nearest principal axis, which
// removes geometric noise and fixes the two tangential axes candidates
// for the drag. A press that hit no cubelet (cubeletID outside 0..26)
// leaves the resolver inert for the rest of the gesture.
func (g *GestureResolver) PressStart(hitNormal, hitPoint mgl64.Vec3, cubeletID int) {
	g.pressed = false
	g.latched = false
	g.cubeletID = -1

	if g.store.ByID(cubeletID) == nil {
		return
	}

	g.normalAxis, g.normalSign = DominantAxis(hitNormal)
	g.pressPoint = hitPoint
	g.cubeletID = cubeletID
	g.pressed = true
}

// DragUpdate feeds the current pointer position. It returns the
// resolved move and true exactly once per gesture, after the drag
// leaves the dead zone; every other call returns false.
func (g *GestureResolver) DragUpdate(point mgl64.Vec3) (Move, bool) {
	if !g.pressed || g.latched {
		return Move{}, false
	}

	drag := point.Sub(g.pressPoint)
	if drag.Len() < DragDeadZone {
		return Move{}, false
	}

	// The drag axis is the dominant tangential component; the rotation
	// axis is the one principal axis that is neither the normal's nor
	// the drag's.
	t1, t2 := tangentAxes(g.normalAxis)
	dragAxis := t1
	if abs(drag[int(t2)]) > abs(drag[int(t1)]) {
		dragAxis = t2
	}
	rotAxis := otherAxis(g.normalAxis, dragAxis)

	// Turn sense from a single right-hand-rule formula: the scalar
	// triple product of face normal, drag vector and rotation axis.
	// Positive means the face surface moves with the drag under a +1
	// (counter-clockwise) turn about the positive rotation axis.
	normal := AxisVec(g.normalAxis, g.normalSign).Float()
	direction := 1
	if normal.Cross(drag).Dot(rotAxis.Unit()) < 0 {
		direction = -1
	}

	slice := g.store.ByID(g.cubeletID).Position.Component(rotAxis)

	g.latched = true
	return Move{Axis: rotAxis, Slice: slice, Direction: direction}, true
}

// Release ends the gesture; the next PressStart starts fresh.
func (g *GestureResolver) Release() {
	g.pressed = false
	g.latched = false
	g.cubeletID = -1
}

// reset points the resolver at a fresh store.
func (g *GestureResolver) reset(store *CubeletStore) {
	g.store = store
	g.Release()
}

// tangentAxes returns the two axes orthogonal to a.
func tangentAxes(a Axis) (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// otherAxis returns the principal axis that is neither a nor b.
func otherAxis(a, b Axis) Axis {
	return Axis(3 - int(a) - int(b))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
