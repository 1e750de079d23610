package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Screen rows reserved outside the board.
const (
	hudRows  = 1
	helpRows = 1
)

// Glyphs for the board contents.
const (
	bodyRune   = '█'
	headRune   = '█'
	targetRune = '●'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorHead:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorOverlay: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// surface converts a terminal size to the layout surface. One layout
// "pixel" is aspect columns wide and one row tall.
func surface(screenW, screenH, aspect int) (pixelW, pixelH int) {
	return max(screenW, 0) / aspect, max(screenH-hudRows-helpRows, 0)
}

// board is the on-screen placement of a layout.
type board struct {
	layout core.Layout
	aspect int
	frame  core.Rect // outline, one character outside the cells
}

// placeBoard centers the framed grid horizontally below the HUD.
func placeBoard(screenW int, lay core.Layout, aspect int) board {
	w := lay.PixelW()*aspect + 2
	h := lay.PixelH() + 2
	return board{
		layout: lay,
		aspect: aspect,
		frame:  core.NewRect((screenW-w)/2, hudRows, w, h),
	}
}

// fits reports whether the whole frame lies inside area, the drawable
// screen above the help row.
func (b board) fits(area core.Rect) bool {
	if b.frame.W <= 0 || b.frame.H <= 0 {
		return false
	}
	return area.Contains(b.frame.X, b.frame.Y) &&
		area.Contains(b.frame.Right()-1, b.frame.Bottom()-1)
}

// cellRect returns the screen area covered by grid cell c.
func (b board) cellRect(c snake.Cell) core.Rect {
	w := b.layout.CellSize * b.aspect
	h := b.layout.CellSize
	return core.NewRect(b.frame.X+1+c.X*w, b.frame.Y+1+c.Y*h, w, h)
}

// frameState is the shell-side state drawn over the board.
type frameState struct {
	paused   bool
	gameOver *snake.GameOverEvent
	viewers  int
}

// drawFrame paints the HUD, the board and any overlay for one snapshot.
func drawFrame(s *core.Screen, snap snake.Snapshot, b board, st frameState) {
	s.Clear()
	drawHUD(s, snap, st)

	s.DrawBox(b.frame, core.ColorFrame)
	if !snap.Ready() {
		return
	}

	s.FillRect(b.cellRect(snap.Target), targetRune, core.ColorTarget)
	for i := len(snap.Body) - 1; i >= 0; i-- {
		r, c := bodyRune, core.ColorBody
		if i == 0 {
			r, c = headRune, core.ColorHead
		}
		s.FillRect(b.cellRect(snap.Body[i]), r, c)
	}

	switch {
	case st.gameOver != nil:
		drawOverlay(s, b.frame, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", st.gameOver.Score),
			causeText(st.gameOver.Cause),
			"space/r to restart",
		})
	case st.paused:
		drawOverlay(s, b.frame, []string{"PAUSED", "p to resume"})
	}
}

func drawHUD(s *core.Screen, snap snake.Snapshot, st frameState) {
	s.DrawText(1, 0, "SNAKE", core.ColorHUD)

	stats := fmt.Sprintf("score %d  length %d", snap.Score, len(snap.Body))
	if st.viewers > 0 {
		stats += fmt.Sprintf("  watching %d", st.viewers)
	}
	s.DrawText(s.Width()-len([]rune(stats))-1, 0, stats, core.ColorHUD)
}

// drawOverlay writes centered lines in a boxed panel over the board.
func drawOverlay(s *core.Screen, area core.Rect, lines []string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	panel := area.Centered(w+4, len(lines)+2)

	s.FillRect(panel, ' ', core.ColorOverlay)
	s.DrawBox(panel, core.ColorFrame)
	for i, l := range lines {
		n := len([]rune(l))
		color := core.ColorOverlay
		if i > 0 {
			color = core.ColorMuted
		}
		s.DrawText(panel.X+(panel.W-n)/2, panel.Y+1+i, l, color)
	}
}

// drawTooSmall replaces the frame with a resize hint.
func drawTooSmall(s *core.Screen, needW, needH int) {
	s.Clear()
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "Terminal too small", core.ColorOverlay)
	s.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, s.Width(), s.Height()+helpRows), core.ColorMuted)
	s.DrawTextCentered(mid+1, "paused until resized", core.ColorMuted)
}

func causeText(k snake.CollisionKind) string {
	switch k {
	case snake.CollisionBoundary:
		return "Hit the wall"
	case snake.CollisionSelf:
		return "Ran into itself"
	default:
		return ""
	}
}
