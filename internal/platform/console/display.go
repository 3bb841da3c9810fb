package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// ANSI control sequences.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Display writes frames to the terminal, replacing the previous frame each time.
type Display struct {
	w     io.Writer
	info  lipgloss.Style
	alert lipgloss.Style
	lane  lipgloss.Style
}

// NewDisplay creates a display writing to w. Colors are chosen for w's
// capabilities, so non-terminal writers get plain text.
func NewDisplay(w io.Writer) *Display {
	r := lipgloss.NewRenderer(w)
	return &Display{
		w:     w,
		info:  r.NewStyle().Foreground(lipgloss.Color("2")),
		alert: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		lane:  r.NewStyle(),
	}
}

// HideCursor hides the terminal cursor for the duration of the run.
func (d *Display) HideCursor() error {
	_, err := io.WriteString(d.w, hideCursor)
	return err
}

// ShowCursor shows the terminal cursor again.
func (d *Display) ShowCursor() error {
	_, err := io.WriteString(d.w, showCursor)
	return err
}

// Banner shows the welcome screen before the start keypress.
func (d *Display) Banner() error {
	return d.screen(
		d.info.Render("Welcome to Lane Runner!"),
		d.info.Render("Avoid the obstacles!"),
		d.info.Render("Press any key to start..."),
	)
}

// Frame replaces the previous frame with f.
func (d *Display) Frame(f runner.Frame) error {
	lines := f.Lines()
	return d.screen(
		d.info.Render(lines[0]),
		d.lane.Render(lines[1]),
		d.lane.Render(lines[2]),
		lines[3],
		d.info.Render(lines[4]),
	)
}

// GameOver replaces the last frame with the final score.
func (d *Display) GameOver(score int) error {
	return d.screen(
		d.alert.Render("Game Over!"),
		d.info.Render(fmt.Sprintf("Your final score is: %d", score)),
	)
}

// screen clears the terminal and writes lines in a single write.
func (d *Display) screen(lines ...string) error {
	var sb strings.Builder
	sb.WriteString(clearScreen)
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(d.w, sb.String())
	return err
}
