package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/moti-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"m", runeKey('m'), core.ActionMute, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyMapperScreenshot(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should take a screenshot")
	}
	if km.IsScreenshot(runeKey('s')) {
		t.Error("plain s is not a screenshot")
	}
	if action, _ := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlS}); action != core.ActionNone {
		t.Errorf("ctrl+s mapped to %v, want no game action", action)
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()

	if got := len(keys.ShortHelp()); got != 3 {
		t.Errorf("short help has %d bindings, want 3", got)
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("full help has %d bindings, want 7", total)
	}
}
