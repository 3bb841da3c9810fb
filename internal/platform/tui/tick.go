// Package tui provides the Bubble Tea frontend for remote play over SSH.
// It drives the runner engine from tick messages and maps key events to input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the run that scheduled it; ticks from an earlier run are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after d.
// The engine changes its pace every tick, so each tick schedules the next.
func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// firstTickCmd delivers the opening tick of a run right away; the run's pace
// applies from the second tick on.
func firstTickCmd(gen int) tea.Cmd {
	return func() tea.Msg {
		return TickMsg{Gen: gen, Time: time.Now()}
	}
}
