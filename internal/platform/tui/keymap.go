package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// KeyMap defines the key bindings of a session.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump},
		{k.Restart, k.Quit},
	}
}

// phaseHelp returns the bindings that do something in the given phase.
func (k KeyMap) phaseHelp(p runner.Phase) []key.Binding {
	switch p {
	case runner.PhaseRunning:
		return []key.Binding{k.Jump, k.Quit}
	case runner.PhaseEnded:
		return []key.Binding{k.Restart, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(string(core.JumpKey)),
			key.WithHelp("space", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeySampler queues jump requests from key events until the next tick polls them.
// Each poll drains at most one queued input, like a terminal read of one byte.
type KeySampler struct {
	pending []core.Input
}

// maxPending bounds the queue so a held key cannot build an unbounded backlog.
const maxPending = 8

// Push queues an input for a later poll.
func (s *KeySampler) Push(in core.Input) {
	if len(s.pending) >= maxPending {
		return
	}
	s.pending = append(s.pending, in)
}

// Poll implements core.Sampler.
func (s *KeySampler) Poll() core.Input {
	if len(s.pending) == 0 {
		return core.InputNone
	}
	in := s.pending[0]
	s.pending = s.pending[1:]
	return in
}

// Clear drops all queued inputs.
func (s *KeySampler) Clear() {
	s.pending = s.pending[:0]
}
