package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"help is not a game action", runeKey('?'), core.ActionNone, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := keys.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey() action = %v, expected %v", action, tc.action)
			}
			if isQuit != tc.wantQuit {
				t.Errorf("MapKey() isQuit = %v, expected %v", isQuit, tc.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left reported as quit")
	}
	if keys.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("unbound key reported as quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("left not recorded in frame")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key recorded in frame")
	}
	if !keys.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	short := keys.ShortHelp()
	if got := len(short); got != 6 {
		t.Errorf("len(ShortHelp()) = %d, expected 6", got)
	}
	if short[0].Help().Desc != "quit" || short[1].Help().Desc != "more help" {
		t.Errorf("ShortHelp() starts with %q, %q; expected quit and help first", short[0].Help().Desc, short[1].Help().Desc)
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 6 {
		t.Errorf("FullHelp() lists %d bindings, expected 6", n)
	}
}
