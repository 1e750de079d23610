package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestSurface(t *testing.T) {
	tests := []struct {
		w, h, aspect int
		pw, ph       int
	}{
		{80, 24, 2, 40, 22},
		{81, 24, 2, 40, 22},
		{80, 24, 1, 80, 22},
		{0, 0, 2, 0, 0},
		{10, 1, 2, 5, 0},
	}

	for _, tc := range tests {
		pw, ph := surface(tc.w, tc.h, tc.aspect)
		if pw != tc.pw || ph != tc.ph {
			t.Errorf("surface(%d, %d, %d) = %d×%d, expected %d×%d", tc.w, tc.h, tc.aspect, pw, ph, tc.pw, tc.ph)
		}
	}
}

func TestPlaceBoard(t *testing.T) {
	lay := core.Layout{CellSize: 1, GridW: 38, GridH: 20}
	b := placeBoard(80, lay, 2)

	if b.frame != core.NewRect(1, hudRows, 78, 22) {
		t.Errorf("frame = %+v", b.frame)
	}
	if !b.fits(core.NewRect(0, 0, 80, 24-helpRows)) {
		t.Error("38×20 board should fit 80×24")
	}
	if b.fits(core.NewRect(0, 0, 80, 23-helpRows)) {
		t.Error("board should not fit 80×23")
	}

	if got := b.cellRect(snake.Cell{X: 0, Y: 0}); got != core.NewRect(2, 2, 2, 1) {
		t.Errorf("cellRect(0,0) = %+v", got)
	}
	if got := b.cellRect(snake.Cell{X: 37, Y: 19}); got != core.NewRect(76, 21, 2, 1) {
		t.Errorf("cellRect(37,19) = %+v", got)
	}
}

func TestPlaceBoardTooWide(t *testing.T) {
	lay := core.Layout{CellSize: 1, GridW: 10, GridH: 10}
	if placeBoard(20, lay, 2).fits(core.NewRect(0, 0, 20, 30-helpRows)) {
		t.Error("22-column board should not fit 20 columns")
	}
}

// screenText joins every row of s with newlines.
func screenText(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		Body:    []snake.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		Target:  snake.Cell{X: 7, Y: 5},
		Width:   10,
		Height:  10,
		Score:   20,
		Active:  true,
		Heading: snake.HeadingRight,
	}
}

func TestDrawFrame(t *testing.T) {
	s := core.NewScreen(40, 13)
	b := placeBoard(40, core.Layout{CellSize: 1, GridW: 10, GridH: 10}, 2)

	drawFrame(s, testSnapshot(), b, frameState{})

	head := b.cellRect(snake.Cell{X: 3, Y: 2})
	if g := s.GetCell(head.X, head.Y); g.Rune != headRune || g.Color != core.ColorHead {
		t.Errorf("head glyph = %+v", g)
	}
	tail := b.cellRect(snake.Cell{X: 1, Y: 2})
	if g := s.GetCell(tail.X+1, tail.Y); g.Color != core.ColorBody {
		t.Errorf("tail glyph = %+v", g)
	}
	target := b.cellRect(snake.Cell{X: 7, Y: 5})
	if g := s.GetCell(target.X, target.Y); g.Rune != targetRune || g.Color != core.ColorTarget {
		t.Errorf("target glyph = %+v", g)
	}
	if g := s.GetCell(b.frame.X, b.frame.Y); g.Rune != '┌' {
		t.Errorf("frame corner = %q", g.Rune)
	}

	hud := s.Row(0)
	if !strings.Contains(hud, "SNAKE") || !strings.Contains(hud, "score 20") || !strings.Contains(hud, "length 3") {
		t.Errorf("HUD = %q", hud)
	}
}

func TestDrawFrameOverlays(t *testing.T) {
	b := placeBoard(40, core.Layout{CellSize: 1, GridW: 15, GridH: 10}, 2)

	s := core.NewScreen(40, 13)
	drawFrame(s, testSnapshot(), b, frameState{
		gameOver: &snake.GameOverEvent{Score: 20, Cause: snake.CollisionSelf},
	})
	out := screenText(s)
	for _, want := range []string{"GAME OVER", "Score: 20", "Ran into itself", "space/r to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over overlay missing %q:\n%s", want, out)
		}
	}

	s = core.NewScreen(40, 13)
	drawFrame(s, testSnapshot(), b, frameState{paused: true, viewers: 2})
	out = screenText(s)
	if !strings.Contains(out, "PAUSED") {
		t.Errorf("pause overlay missing:\n%s", out)
	}
	if !strings.Contains(s.Row(0), "watching 2") {
		t.Errorf("viewer count missing from HUD: %q", s.Row(0))
	}
}

func TestDrawFrameBeforeLayout(t *testing.T) {
	s := core.NewScreen(30, 13)
	b := placeBoard(30, core.Layout{CellSize: 1, GridW: 10, GridH: 10}, 2)

	drawFrame(s, snake.Snapshot{}, b, frameState{})
	if strings.ContainsRune(screenText(s), headRune) {
		t.Error("empty snapshot should draw no body")
	}
}

func TestDrawTooSmall(t *testing.T) {
	s := core.NewScreen(30, 9)
	drawTooSmall(s, 22, 14)

	out := screenText(s)
	if !strings.Contains(out, "Terminal too small") || !strings.Contains(out, "need 22x14, have 30x10") {
		t.Errorf("too-small screen:\n%s", out)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorHUD)
	s.DrawText(2, 0, "cd", core.ColorBody)
	s.SetColor(0, 1, 'x', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("unknown colors should fall back to default: %q", lines[1])
	}
}
