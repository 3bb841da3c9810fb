package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// Model is the Bubble Tea model for one player's session.
// It waits for a key, runs the game from tick messages, and offers a restart
// after game over.
type Model struct {
	game      *runner.Game
	input     *KeySampler
	keys      KeyMap
	help      help.Model
	styles    styles
	logger    *log.Logger
	fixedSeed int64
	gen       int
	runs      int
	quitting  bool
}

// Option customizes a Model.
type Option func(*Model)

// WithRenderer styles the view for a specific output, such as an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.styles = newStyles(r)
	}
}

// WithLogger reports run results to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a session model. A zero seed picks a fresh time-based
// seed for every run; any other seed replays the same obstacles each run.
func NewModel(cfg config.RunnerConfig, seed int64, opts ...Option) Model {
	m := Model{
		input:     &KeySampler{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    newStyles(lipgloss.DefaultRenderer()),
		logger:    log.New(io.Discard),
		fixedSeed: seed,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.game = runner.New(cfg, m.nextSeed())
	return m
}

func (m Model) nextSeed() int64 {
	if m.fixedSeed != 0 {
		return m.fixedSeed
	}
	return time.Now().UnixNano()
}

// Init waits for the first keypress; no tick runs before it.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.Phase() {
	case runner.PhaseStarting:
		// Any key starts the run.
		return m.start()

	case runner.PhaseRunning:
		if key.Matches(msg, m.keys.Jump) {
			m.input.Push(core.InputJump)
		}

	case runner.PhaseEnded:
		if key.Matches(msg, m.keys.Restart) {
			m.game.Reset(m.nextSeed())
			return m.start()
		}
	}

	return m, nil
}

// start moves the game to Running and schedules its first tick.
func (m Model) start() (tea.Model, tea.Cmd) {
	if !m.game.Start() {
		return m, nil
	}
	m.input.Clear()
	m.gen++
	m.runs++
	m.logger.Debug("run started", "run", m.runs, "seed", m.game.Seed())
	return m, firstTickCmd(m.gen)
}

// handleTick advances the game by one tick and schedules the next one.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.Phase() != runner.PhaseRunning {
		return m, nil
	}

	res := m.game.Step(m.input)
	if res.Collided {
		m.logger.Info("run ended", "run", m.runs, "score", res.State.Score, "seed", m.game.Seed())
		return m, nil
	}

	return m, tickCmd(m.game.Accelerate(), m.gen)
}

// Game returns the engine driven by the model.
func (m Model) Game() *runner.Game {
	return m.game
}

// Runs returns how many runs have been started in this session.
func (m Model) Runs() int {
	return m.runs
}

// Run starts a local Bubble Tea program for the model.
func Run(cfg config.RunnerConfig, seed int64, opts ...Option) error {
	p := tea.NewProgram(NewModel(cfg, seed, opts...), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		m.logger.Info("session ended", "runs", m.Runs())
	}
	return nil
}
