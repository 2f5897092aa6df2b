package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

var scrambleLen int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive play mode",
	Long: `Start an interactive terminal cube.

Drag a face with the mouse to turn the slice under it: the drag
direction picks the turn, exactly like dragging a real cube. Solved
scrambles are timed and recorded to the local database.

Keyboard shortcuts:
  s       - Scramble and start the timer
  u       - Undo the last move
  n       - Reset to a fresh solved cube
  q/Esc   - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&scrambleLen, "scramble-len", 20, "Number of moves in a scramble")
}

// Where the net sits inside the rendered view; mouse coordinates are
// translated by these before hit-testing.
const (
	netLeft = 2
	netTop  = 2
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time

const frameInterval = 33 * time.Millisecond

// Model
type playModel struct {
	puzzle *cubesim.Puzzle

	// Database; nil when the db could not be opened (play still works,
	// times just are not recorded).
	repo      *storage.SessionRepository
	dbWarning string
	sessionID string

	// Solve state
	scrambling bool
	solving    bool
	solveStart time.Time
	solveTime  time.Duration
	moveCount  int
	justSolved bool

	// Drag state
	dragging   bool
	pressX     int
	pressY     int
	pressHit   mgl64.Vec3
	dragRight  mgl64.Vec3
	dragDown   mgl64.Vec3

	lastTick time.Time
	lastMove string
	err      error
}

func newPlayModel(repo *storage.SessionRepository, dbWarning string) *playModel {
	m := &playModel{
		puzzle:    cubesim.New(cubesim.WithTurnDuration(120 * time.Millisecond)),
		repo:      repo,
		dbWarning: dbWarning,
		lastTick:  time.Now(),
	}

	m.puzzle.OnMove(func(ev cubesim.MoveCommitted) {
		m.lastMove = ev.Move.Notation()
		if !m.scrambling {
			m.moveCount++
		}
	})
	m.puzzle.OnSolved(func() {
		if !m.solving {
			return
		}
		m.solving = false
		m.solveTime = time.Since(m.solveStart)
		m.justSolved = true
		m.recordSolve()
	})

	return m
}

func (m *playModel) recordSolve() {
	if m.repo == nil || m.sessionID == "" {
		return
	}
	if err := m.repo.Finish(m.sessionID, m.solveTime, m.moveCount, true); err != nil {
		m.err = err
	}
	m.sessionID = ""
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		m.puzzle.Advance(now.Sub(m.lastTick))
		m.lastTick = now
		if m.scrambling && !m.puzzle.Busy() {
			// Scramble replay finished; the solve timer starts now.
			m.scrambling = false
			m.solving = true
			m.solveStart = now
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "s":
		if m.puzzle.Busy() {
			return m, nil
		}
		m.puzzle.Reset()
		moves, err := m.puzzle.Scramble(scrambleLen)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.scrambling = true
		m.solving = false
		m.justSolved = false
		m.moveCount = 0
		m.solveTime = 0
		if m.repo != nil {
			id, err := m.repo.Create(cubesim.FormatMoves(moves))
			if err != nil {
				m.err = err
			} else {
				m.sessionID = id
			}
		}

	case "u":
		if err := m.puzzle.Undo(); err != nil && err != cubesim.ErrBusy {
			m.err = err
		}

	case "n":
		m.puzzle.Reset()
		m.scrambling = false
		m.solving = false
		m.justSolved = false
		m.moveCount = 0
		m.solveTime = 0
		m.sessionID = ""
		m.lastMove = ""
	}

	return m, nil
}

func (m *playModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.startDrag(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		m.puzzle.DragUpdate(m.dragPoint(msg.X, msg.Y))

	case tea.MouseActionRelease:
		m.puzzle.Release()
		m.dragging = false
	}
}

// startDrag maps a terminal cell to a face hit and opens a gesture.
func (m *playModel) startDrag(x, y int) {
	face, row, col, ok := faceletAt(x-netLeft, y-netTop)
	if !ok {
		// Missed the cube: open an inert gesture so later motion stays
		// ignored, matching a pointer-down on empty space.
		m.puzzle.PressStart(mgl64.Vec3{}, mgl64.Vec3{}, -1)
		return
	}

	pos := faceletPosition(face, row, col)
	cubeletID := -1
	for _, c := range m.puzzle.Snapshot() {
		if c.Position == pos {
			cubeletID = c.ID
			break
		}
	}

	normal := face.Normal().Float()
	hit := pos.Float().Add(normal.Mul(0.5))
	right, down := faceBasis(face)

	m.pressX, m.pressY = x, y
	m.pressHit = hit
	m.dragRight = right.Float()
	m.dragDown = down.Float()
	m.dragging = true

	m.puzzle.PressStart(normal, hit, cubeletID)
}

// dragPoint converts terminal mouse motion into a world-space pointer
// position on the pressed face's plane. One facelet of mouse travel is
// one lattice unit of world travel.
func (m *playModel) dragPoint(x, y int) mgl64.Vec3 {
	dx := float64(x-m.pressX) / float64(faceletW)
	dy := float64(y - m.pressY)
	return m.pressHit.Add(m.dragRight.Mul(dx)).Add(m.dragDown.Mul(dy))
}

func (m *playModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render("drag a face to turn"))
	b.WriteString("\n\n")

	net := renderNet(m.puzzle.Snapshot())
	b.WriteString(lipgloss.NewStyle().MarginLeft(netLeft).Render(net))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}
	if m.dbWarning != "" {
		b.WriteString(statusStyle.Render(m.dbWarning))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("s scramble · u undo · n new cube · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *playModel) statusLine() string {
	switch {
	case m.scrambling:
		return statusStyle.Render("scrambling...")
	case m.solving:
		elapsed := time.Since(m.solveStart)
		return fmt.Sprintf("%s  %s",
			timerStyle.Render(formatDuration(elapsed)),
			statusStyle.Render(fmt.Sprintf("moves: %d  last: %s", m.moveCount, m.lastMove)),
		)
	case m.justSolved:
		return solvedStyle.Render(fmt.Sprintf("SOLVED in %s (%d moves)!  press s to go again",
			formatDuration(m.solveTime), m.moveCount))
	default:
		return statusStyle.Render("press s to scramble")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	var repo *storage.SessionRepository
	dbWarning := ""

	db, err := openDB()
	if err != nil {
		dbWarning = fmt.Sprintf("times not recorded: %v", err)
	} else {
		defer db.Close()
		repo = storage.NewSessionRepository(db)
	}

	p := tea.NewProgram(
		newPlayModel(repo, dbWarning),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}
