package cubesim

// Color represents a sticker color.
type Color byte

const (
	ColorNone   Color = 0 // Uncolored inward face (core plastic)
	ColorWhite  Color = 1 // Up face when solved
	ColorYellow Color = 2 // Down face when solved
	ColorGreen  Color = 3 // Front face when solved
	ColorBlue   Color = 4 // Back face when solved
	ColorRed    Color = 5 // Right face when solved
	ColorOrange Color = 6 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "W"
	case ColorYellow:
		return "Y"
	case ColorGreen:
		return "G"
	case ColorBlue:
		return "B"
	case ColorRed:
		return "R"
	case ColorOrange:
		return "O"
	default:
		return "."
	}
}

// Face represents one of the six outer faces of the cube.
type Face int

const (
	FaceUp    Face = 0 // +y
	FaceDown  Face = 1 // -y
	FaceFront Face = 2 // +z
	FaceBack  Face = 3 // -z
	FaceRight Face = 4 // +x
	FaceLeft  Face = 5 // -x
)

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	case FaceRight:
		return "R"
	case FaceLeft:
		return "L"
	default:
		return "?"
	}
}

// Normal returns the outward lattice normal of the face.
func (f Face) Normal() Vec3i {
	switch f {
	case FaceUp:
		return Vec3i{0, 1, 0}
	case FaceDown:
		return Vec3i{0, -1, 0}
	case FaceFront:
		return Vec3i{0, 0, 1}
	case FaceBack:
		return Vec3i{0, 0, -1}
	case FaceRight:
		return Vec3i{1, 0, 0}
	default:
		return Vec3i{-1, 0, 0}
	}
}

// SolvedColor returns the sticker color of the face when solved:
// white on top, green in front.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceUp:
		return ColorWhite
	case FaceDown:
		return ColorYellow
	case FaceFront:
		return ColorGreen
	case FaceBack:
		return ColorBlue
	case FaceRight:
		return ColorRed
	case FaceLeft:
		return ColorOrange
	default:
		return ColorNone
	}
}

// Faces lists all six faces in index order.
var Faces = [6]Face{FaceUp, FaceDown, FaceFront, FaceBack, FaceRight, FaceLeft}

// FaceFromNormal returns the face whose outward normal equals n.
func FaceFromNormal(n Vec3i) (Face, bool) {
	for _, f := range Faces {
		if f.Normal() == n {
			return f, true
		}
	}
	return FaceUp, false
}

// Cubelet is one of the 27 sub-cubes of the puzzle. Initial is its home
// lattice position, Position its current one; Orientation is always an
// exact member of the 24-element rotation group, identity when solved.
type Cubelet struct {
	ID          int
	Initial     Vec3i
	Position    Vec3i
	Orientation Rotation

	// stickers holds the color per face of the cubelet body, indexed by
	// Face. A face carries a color iff the cubelet's initial coordinate
	// on that face's axis equals the face's sign; everything else is
	// ColorNone.
	stickers [6]Color
}

// Sticker returns the color the cubelet currently shows in world
// direction n (one of the six principal directions), taking its
// orientation into account.
func (c *Cubelet) Sticker(n Vec3i) Color {
	local := c.Orientation.Inverse().Apply(n)
	f, ok := FaceFromNormal(local)
	if !ok {
		return ColorNone
	}
	return c.stickers[f]
}

// CubeletStore owns the 27 cubelets and their lattice state. It is the
// only holder of puzzle state; the move engine is its only mutator.
type CubeletStore struct {
	cubelets [27]Cubelet
}

// NewCubeletStore creates the 27 cubelets, one per lattice position in
// {-1,0,1}^3, each at its home position with identity orientation.
func NewCubeletStore() *CubeletStore {
	s := &CubeletStore{}
	id := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				pos := Vec3i{x, y, z}
				c := Cubelet{
					ID:          id,
					Initial:     pos,
					Position:    pos,
					Orientation: RotationIdentity,
				}
				for _, f := range Faces {
					n := f.Normal()
					if pos.Dot(n) == 1 {
						c.stickers[f] = f.SolvedColor()
					}
				}
				s.cubelets[id] = c
				id++
			}
		}
	}
	return s
}

// SelectSlice returns the cubelets whose current coordinate along axis
// equals slice. The result reflects live state, not a snapshot; it is
// computed fresh on every call.
func (s *CubeletStore) SelectSlice(axis Axis, slice int) []*Cubelet {
	out := make([]*Cubelet, 0, 9)
	for i := range s.cubelets {
		if s.cubelets[i].Position.Component(axis) == slice {
			out = append(out, &s.cubelets[i])
		}
	}
	return out
}

// ByID returns the cubelet with the given id, or nil.
func (s *CubeletStore) ByID(id int) *Cubelet {
	if id < 0 || id >= len(s.cubelets) {
		return nil
	}
	return &s.cubelets[id]
}

// At returns the cubelet currently occupying the given lattice
// position. The 27 positions form a bijection, so the lookup always
// succeeds for positions in {-1,0,1}^3.
func (s *CubeletStore) At(pos Vec3i) *Cubelet {
	for i := range s.cubelets {
		if s.cubelets[i].Position == pos {
			return &s.cubelets[i]
		}
	}
	return nil
}

// Snapshot returns a copy of all 27 cubelets for renderers and other
// read-only consumers.
func (s *CubeletStore) Snapshot() []Cubelet {
	out := make([]Cubelet, len(s.cubelets))
	copy(out, s.cubelets[:])
	return out
}

// rotateSubset is the single mutation entry point. For each cubelet in
// the subset it composes delta onto the orientation and rotates the
// position by the same delta. Positions are re-snapped into the lattice
// so coordinates remain exact members of {-1,0,1} after every move.
func (s *CubeletStore) rotateSubset(subset []*Cubelet, delta Rotation) {
	for _, c := range subset {
		c.Orientation = delta.Compose(c.Orientation)
		c.Position = RoundVec(delta.Apply(c.Position).Float())
	}
}
