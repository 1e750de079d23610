package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapHeading(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want snake.Heading
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, snake.HeadingUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, snake.HeadingDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, snake.HeadingLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, snake.HeadingRight},
		{"w", runeKey('w'), snake.HeadingUp},
		{"a", runeKey('a'), snake.HeadingLeft},
		{"s", runeKey('s'), snake.HeadingDown},
		{"d", runeKey('d'), snake.HeadingRight},
		{"vim k", runeKey('k'), snake.HeadingUp},
		{"vim l", runeKey('l'), snake.HeadingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.Heading(tc.msg)
			if !ok {
				t.Fatalf("Heading(%q) not recognized", tc.msg.String())
			}
			if got != tc.want {
				t.Errorf("Heading(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapNonMovement(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey('p'), runeKey('r'), runeKey('q'), runeKey('x'), {Type: tea.KeyEnter}} {
		if _, ok := km.Heading(msg); ok {
			t.Errorf("Heading(%q) should not map to a direction", msg.String())
		}
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"space restarts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.Restart},
		{"r restarts", runeKey('r'), km.Restart},
		{"p pauses", runeKey('p'), km.Pause},
		{"q quits", runeKey('q'), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, km.Quit},
		{"? toggles help", runeKey('?'), km.Help},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !key.Matches(tc.msg, tc.binding) {
				t.Errorf("%q does not match %v", tc.msg.String(), tc.binding.Keys())
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 8 {
		t.Errorf("FullHelp lists %d bindings, expected 8", n)
	}
}
