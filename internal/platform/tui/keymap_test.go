package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chuashinherh/Frogger/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('w'), core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg)
		if isQuit {
			t.Errorf("MapKey(%q) reported quit", tt.msg.String())
		}
		if action != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), action, tt.want)
		}
	}
}

func TestMapKeyUnboundIsNoop(t *testing.T) {
	km := NewKeyMapper()

	// Keys without a binding still reach the game as explicit noops.
	for _, r := range []rune{'x', 'z', '5'} {
		action, isQuit := km.MapKey(runeKey(r))
		if isQuit {
			t.Errorf("MapKey(%q) reported quit", r)
		}
		if action != core.ActionNoop {
			t.Errorf("MapKey(%q) = %v, want %v", r, action, core.ActionNoop)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit {
			t.Errorf("MapKey(%q) should report quit", msg.String())
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, want %v", msg.String(), action, core.ActionQuit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
