// Package tui provides the Bubble Tea integration for skyfighter.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfighter/internal/config"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// advanceMsg asks the model to switch levels after the tick that
// requested it has been fully handled.
type advanceMsg struct {
	to string
}

// reloadMsg carries a config delivered by the file watcher.
type reloadMsg struct {
	cfg config.Config
}

// transitionDelay separates a level switch from the tick that asked for it.
const transitionDelay = 2 * time.Millisecond

// tickCmd returns a Bubble Tea command that sends a tick after period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// advanceCmd schedules a level switch.
func advanceCmd(to string) tea.Cmd {
	return tea.Tick(transitionDelay, func(time.Time) tea.Msg {
		return advanceMsg{to: to}
	})
}

// watchCmd waits for the next reloaded config. A closed channel ends the
// wait for good.
func watchCmd(changes <-chan config.Config) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-changes
		if !ok {
			return nil
		}
		return reloadMsg{cfg: cfg}
	}
}
