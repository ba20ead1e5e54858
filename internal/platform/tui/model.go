package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/alcherk/snake-arena/internal/core"
	"github.com/alcherk/snake-arena/internal/registry"
)

// presenterSetter is implemented by games that report finished rounds.
type presenterSetter interface {
	SetPresenter(p core.Presenter)
}

// resizer is implemented by games that can relayout without a reset.
type resizer interface {
	Resize(w, h int)
}

// Options configures a game session.
type Options struct {
	Logger  *log.Logger // Defaults to a discarding logger
	History *History    // Shared across sessions; created when nil
}

// Model is the Bubble Tea model for running an arena variant.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	inputFrame    core.InputFrame
	gameState     core.GameState
	logger        *log.Logger
	history       *History
	view          HistoryModel
	start         time.Time
	started       bool
	showing       bool // History overlay is open
	resumeOnClose bool // Overlay paused the game and unpauses it on close
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.History == nil {
		opts.History = NewHistory()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     opts.Logger,
		history:    opts.History,
		view:       NewHistoryModel(opts.History, cfg.ScreenW, cfg.ScreenH),
	}

	if ps, ok := game.(presenterSetter); ok {
		ps.SetPresenter(newRoundLogger(m.history, m.logger))
	}
	return m
}

// newRoundLogger records finished rounds in the history and logs them.
func newRoundLogger(h *History, logger *log.Logger) core.Presenter {
	return core.PresenterFunc(func(r core.RoundResult) {
		rec := h.Add(r)
		logger.Info("round over",
			"id", rec.ID,
			"variant", r.Variant,
			"round", r.Round,
			"score", r.Score,
			"length", r.Length,
			"cause", r.Cause,
			"ticks", r.Ticks,
			"respawns", r.EnemyRespawns,
			"duration", r.Duration,
		)
	})
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "variant", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showing {
			return m.handleHistoryKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey collects game input for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session ended", "variant", m.game.ID(), "rounds", m.history.Len())
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		m.openHistory()
	}
	return m, nil
}

// openHistory shows the history overlay, pausing the game while it is open.
func (m *Model) openHistory() {
	m.showing = true
	m.resumeOnClose = !m.gameState.Paused
	if m.resumeOnClose {
		m.inputFrame.Set(core.ActionPause)
	}
	m.view.Refresh()
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.view.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.view.keys.Back):
		m.showing = false
		if m.resumeOnClose {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil
	}

	updated, cmd := m.view.Update(msg)
	if v, ok := updated.(HistoryModel); ok {
		m.view = v
	}
	return m, cmd
}

// handleResize relayouts the screen and the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.view.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one frame with the time elapsed since the first frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		m.start = t
		m.started = true
	}

	result := m.game.Step(m.inputFrame, t.Sub(m.start))
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showing {
		return m.view.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// History returns the session history.
func (m Model) History() *History {
	return m.history
}

// Run starts the Bubble Tea program for game and returns the session history.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (*History, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return model.History(), fmt.Errorf("running %s: %w", game.ID(), err)
	}
	return model.History(), nil
}
