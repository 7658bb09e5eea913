// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, score saving and the
// in-game scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/moti-runner/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
// The next tick is only scheduled once the previous one has been handled.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigMsg carries a runner config reloaded from disk.
type ConfigMsg struct {
	Config config.RunnerConfig
}

// waitForConfig blocks on the next reloaded config. It returns nil when
// there is nothing to wait on, which ends the chain once updates closes.
func waitForConfig(updates <-chan config.RunnerConfig) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigMsg{Config: cfg}
	}
}
