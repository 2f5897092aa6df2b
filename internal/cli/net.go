package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim"
)

// The cube is rendered as a flat net, one facelet per 2x1 character
// cell:
//
//	        U U U
//	L L L   F F F   R R R   B B B
//	        D D D
//
// faceOrigin gives the top-left character cell of each face in that
// layout; the same table drives mouse hit-testing.

const (
	faceletW = 2 // characters per facelet
	faceletH = 1
	faceW    = 3 * faceletW
	faceGap  = 2
)

var faceOrigin = map[cubesim.Face][2]int{
	cubesim.FaceUp:    {faceW + faceGap, 0},
	cubesim.FaceLeft:  {0, 4},
	cubesim.FaceFront: {faceW + faceGap, 4},
	cubesim.FaceRight: {2 * (faceW + faceGap), 4},
	cubesim.FaceBack:  {3 * (faceW + faceGap), 4},
	cubesim.FaceDown:  {faceW + faceGap, 8},
}

// faceBasis returns the lattice directions of increasing column and
// increasing row for a face in the net layout.
func faceBasis(f cubesim.Face) (right, down cubesim.Vec3i) {
	switch f {
	case cubesim.FaceUp:
		return cubesim.Vec3i{X: 1}, cubesim.Vec3i{Z: 1}
	case cubesim.FaceDown:
		return cubesim.Vec3i{X: 1}, cubesim.Vec3i{Z: -1}
	case cubesim.FaceFront:
		return cubesim.Vec3i{X: 1}, cubesim.Vec3i{Y: -1}
	case cubesim.FaceBack:
		return cubesim.Vec3i{X: -1}, cubesim.Vec3i{Y: -1}
	case cubesim.FaceRight:
		return cubesim.Vec3i{Z: -1}, cubesim.Vec3i{Y: -1}
	default: // FaceLeft
		return cubesim.Vec3i{Z: 1}, cubesim.Vec3i{Y: -1}
	}
}

// faceletPosition returns the lattice position of the cubelet whose
// sticker shows at (row, col) of a face.
func faceletPosition(f cubesim.Face, row, col int) cubesim.Vec3i {
	right, down := faceBasis(f)
	return f.Normal().Add(right.Scale(col - 1)).Add(down.Scale(row - 1))
}

// netColors projects a cubelet snapshot onto the six 3x3 facelet grids,
// recovering each shown color from the occupying cubelet's orientation.
func netColors(snapshot []cubesim.Cubelet) map[cubesim.Face][3][3]cubesim.Color {
	byPos := make(map[cubesim.Vec3i]cubesim.Cubelet, len(snapshot))
	for _, c := range snapshot {
		byPos[c.Position] = c
	}

	out := make(map[cubesim.Face][3][3]cubesim.Color, 6)
	for _, f := range cubesim.Faces {
		var grid [3][3]cubesim.Color
		n := f.Normal()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c := byPos[faceletPosition(f, row, col)]
				grid[row][col] = c.Sticker(n)
			}
		}
		out[f] = grid
	}
	return out
}

// Facelet background styles per sticker color.
var faceletStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.ColorWhite:  lipgloss.NewStyle().Background(lipgloss.Color("255")),
	cubesim.ColorYellow: lipgloss.NewStyle().Background(lipgloss.Color("220")),
	cubesim.ColorGreen:  lipgloss.NewStyle().Background(lipgloss.Color("34")),
	cubesim.ColorBlue:   lipgloss.NewStyle().Background(lipgloss.Color("27")),
	cubesim.ColorRed:    lipgloss.NewStyle().Background(lipgloss.Color("160")),
	cubesim.ColorOrange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
	cubesim.ColorNone:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
}

// renderNet draws the cube net from a snapshot.
func renderNet(snapshot []cubesim.Cubelet) string {
	colors := netColors(snapshot)

	// Character canvas sized to the net layout.
	width := 4*(faceW+faceGap) - faceGap
	lines := make([]string, 11)

	for y := range lines {
		var row strings.Builder
		x := 0
		for x < width {
			face, frow, fcol, ok := faceletAt(x, y)
			if !ok {
				row.WriteString(" ")
				x++
				continue
			}
			style := faceletStyles[colors[face][frow][fcol]]
			row.WriteString(style.Render(strings.Repeat(" ", faceletW)))
			x += faceletW
		}
		lines[y] = row.String()
	}

	return strings.Join(lines, "\n")
}

// faceletAt maps a character cell of the net to the facelet it shows.
func faceletAt(x, y int) (face cubesim.Face, row, col int, ok bool) {
	for _, f := range cubesim.Faces {
		o := faceOrigin[f]
		if x < o[0] || x >= o[0]+faceW || y < o[1] || y >= o[1]+3*faceletH {
			continue
		}
		return f, (y - o[1]) / faceletH, (x - o[0]) / faceletW, true
	}
	return 0, 0, 0, false
}
