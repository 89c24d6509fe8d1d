package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// FrontendName identifies this frontend in the run history.
const FrontendName = "terminal"

// Options carries the collaborators of the terminal frontend.
type Options struct {
	Store         *storage.Store // May be nil: play without history
	Logger        *log.Logger
	Theme         Theme
	MaxFrameDelta time.Duration // Zero disables clamping
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     *tetris.Game
	screen   *core.Screen
	opts     Options
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	lastTick time.Time
	state    core.GameState
	runSaved bool // Whether the current game has been recorded
	quitting bool
}

// NewModel creates a new Bubble Tea model and starts a game.
func NewModel(game *tetris.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	opts.Logger.Info("game started", "seed", cfg.Seed, "cols", game.Config().Cols, "rows", game.Config().Rows)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		opts:   opts,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit && m.state.GameOver {
		// The game no longer consumes input; leave right away
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Push(action)
	return m, nil
}

// handleResize processes window resize events without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one frame with the time elapsed since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	if m.opts.MaxFrameDelta > 0 && dt > m.opts.MaxFrameDelta {
		dt = m.opts.MaxFrameDelta
	}

	result := m.game.Step(dt, m.input)
	m.state = result.State
	m.input.Clear()

	m.logStep(result)

	if result.Restarted {
		m.runSaved = false
		m.opts.Logger.Info("game restarted", "seed", m.game.Seed())
	}

	switch {
	case m.state.GameOver:
		m.recordRun(storage.EndGameOver)
	case m.state.Quit:
		if m.state.Pieces > 0 {
			m.recordRun(storage.EndQuit)
		}
		m.opts.Logger.Info("player quit", "lines", m.state.Lines, "pieces", m.state.Pieces)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.FrameInterval())
}

func (m *Model) logStep(result core.StepResult) {
	if result.Locked {
		p := m.game.Piece()
		m.opts.Logger.Debug("piece locked", "pieces", result.State.Pieces, "next", p.Shape.Name(), "x", p.X)
	}
	if result.Cleared > 0 {
		m.opts.Logger.Debug("rows cleared", "count", result.Cleared, "total", result.State.Lines)
	}
}

// recordRun saves the current game once.
func (m *Model) recordRun(reason string) {
	if m.runSaved {
		return
	}
	m.runSaved = true
	m.opts.Logger.Info("game ended", "reason", reason, "lines", m.state.Lines, "pieces", m.state.Pieces, "elapsed", m.game.Elapsed())

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Frontend:  FrontendName,
		Seed:      m.game.Seed(),
		Lines:     m.state.Lines,
		Pieces:    m.state.Pieces,
		Duration:  m.game.Elapsed(),
		EndReason: reason,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "error", err)
	}
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.opts.Theme.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *tetris.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
