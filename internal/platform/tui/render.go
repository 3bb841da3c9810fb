package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

type styles struct {
	title lipgloss.Style
	info  lipgloss.Style
	alert lipgloss.Style
	lane  lipgloss.Style
	box   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		info:  r.NewStyle().Foreground(lipgloss.Color("2")),
		alert: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		lane:  r.NewStyle(),
		box:   r.NewStyle().Padding(1, 2),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	switch m.game.Phase() {
	case runner.PhaseStarting:
		lines = []string{
			m.styles.title.Render("Welcome to Lane Runner!"),
			m.styles.info.Render("Avoid the obstacles!"),
			m.styles.info.Render("Press any key to start..."),
		}
	case runner.PhaseRunning:
		f := m.game.Frame()
		lines = []string{
			m.styles.info.Render(f.Score),
			m.styles.lane.Render(f.Air),
			m.styles.lane.Render(f.Ground),
			"",
			m.styles.info.Render(runner.Hint),
		}
	case runner.PhaseEnded:
		lines = []string{
			m.styles.alert.Render("Game Over!"),
			m.styles.info.Render(fmt.Sprintf("Your final score is: %d", m.game.State().Score)),
		}
	}

	lines = append(lines, "", m.help.ShortHelpView(m.keys.phaseHelp(m.game.Phase())))
	return m.styles.box.Render(strings.Join(lines, "\n"))
}
