package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Journal records finished runs. *storage.Store satisfies it.
type Journal interface {
	SaveRun(storage.RunRecord) (int64, error)
}

// Feed receives a snapshot after every state change. *spectate.Hub
// satisfies it.
type Feed interface {
	Publish(v any) error
}

// Options wires a Model to its collaborators. Only Config is required.
type Options struct {
	Config     core.RuntimeConfig
	CellAspect int // terminal columns per layout pixel, default 2
	Logger     *log.Logger
	Journal    Journal
	Feed       Feed
	Origin     string // recorded with each run, default "local"
}

// Model is the Bubble Tea model for a snake session. The arena is shared
// by pointer, so copies of the model drive the same simulation.
type Model struct {
	arena   *snake.Arena
	screen  *core.Screen
	config  core.RuntimeConfig
	aspect  int
	layout  core.Layout
	board   board
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	feed    Feed
	width   int
	height  int
	tickGen int

	ticking  bool
	paused   bool
	tooSmall bool
	quitting bool
	gameOver *snake.GameOverEvent
}

// NewModel creates a model and lays the arena out for the configured
// screen size.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	aspect := opts.CellAspect
	if aspect <= 0 {
		aspect = 2
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	origin := opts.Origin
	if origin == "" {
		origin = "local"
	}

	arena := snake.NewArena(cfg.Seed)
	arena.OnGameOver(journalListener(logger, opts.Journal, origin))

	h := help.New()
	h.ShowAll = false

	m := Model{
		arena:  arena,
		screen: core.NewScreen(0, 0),
		config: cfg,
		aspect: aspect,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		feed:   opts.Feed,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// journalListener logs each finished run and appends it to the journal.
func journalListener(logger *log.Logger, journal Journal, origin string) func(snake.GameOverEvent) {
	return func(ev snake.GameOverEvent) {
		logger.Info("game over",
			"score", ev.Score,
			"cause", ev.Cause,
			"length", ev.Length,
			"ticks", ev.Ticks,
			"grid", [2]int{ev.Width, ev.Height},
		)
		if journal == nil {
			return
		}
		_, err := journal.SaveRun(storage.RunRecord{
			Origin:     origin,
			Cause:      ev.Cause.String(),
			Length:     ev.Length,
			Ticks:      ev.Ticks,
			GridW:      ev.Width,
			GridH:      ev.Height,
			Reconciles: ev.Reconciles,
		})
		if err != nil {
			// Best-effort, the session continues without a record
			logger.Warn("could not record run", "error", err)
		}
	}
}

// Arena exposes the simulation driven by this model.
func (m Model) Arena() *snake.Arena {
	return m.arena
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if m.arena.Active() {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.arena.Restart() {
			m.gameOver = nil
			m.paused = false
			m.logger.Debug("restart")
			m.publish()
			cmd := m.armTick()
			return m, cmd
		}
		return m, nil
	}

	if h, ok := m.keys.Heading(msg); ok && !m.paused {
		m.arena.SetHeading(h)
	}
	return m, nil
}

// handleTick advances the arena once and schedules the next tick while the
// session is running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.ticking {
		return m, nil
	}
	if m.paused || m.tooSmall {
		return m, tickCmd(m.config.TickInterval, m.tickGen)
	}

	res := m.arena.Tick()
	if res.Moved {
		m.publish()
	}
	if res.GameOver != nil {
		m.gameOver = res.GameOver
		m.ticking = false
		return m, nil
	}
	if !m.arena.Active() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, m.tickGen)
}

// armTick starts a fresh tick chain, superseding any previous one.
func (m *Model) armTick() tea.Cmd {
	m.tickGen++
	m.ticking = true
	return tickCmd(m.config.TickInterval, m.tickGen)
}

// resize derives the grid for a new terminal size and reconciles the arena
// when the grid dimensions change.
func (m *Model) resize(width, height int) {
	m.width, m.height = max(width, 0), max(height, 0)
	m.config.ScreenW, m.config.ScreenH = m.width, m.height
	m.screen.Resize(m.width, max(m.height-helpRows, 0))
	m.help.Width = m.width

	pw, ph := surface(m.width, m.height, m.aspect)
	lay := core.DeriveLayout(pw, ph, m.config.Layout)
	m.board = placeBoard(m.width, lay, m.aspect)
	m.tooSmall = !m.board.fits(m.screen.Bounds())

	if lay.SameGrid(m.layout) && m.layout.CellSize != 0 {
		m.layout = lay
		return
	}
	m.layout = lay

	outcome := m.arena.ReconcileResize(lay.GridW, lay.GridH)
	m.logger.Debug("grid reconciled",
		"outcome", outcome,
		"grid", [2]int{lay.GridW, lay.GridH},
		"cell", lay.CellSize,
		"terminal", [2]int{m.width, m.height},
		"too_small", m.tooSmall,
	)
	if outcome == snake.ReconcileInitialized {
		m.ticking = true
	}
	m.publish()
}

// publish sends the current snapshot to the spectator feed, if any.
func (m Model) publish() {
	if m.feed == nil {
		return
	}
	if err := m.feed.Publish(m.arena.Snapshot()); err != nil {
		m.logger.Warn("could not publish frame", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		drawTooSmall(m.screen, m.board.frame.W, m.board.frame.Bottom()+helpRows)
	} else {
		drawFrame(m.screen, m.arena.Snapshot(), m.board, frameState{
			paused:   m.paused,
			gameOver: m.gameOver,
			viewers:  m.viewers(),
		})
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// viewers returns the spectator count when the feed can report it.
func (m Model) viewers() int {
	if c, ok := m.feed.(interface{ Clients() int }); ok {
		return c.Clients()
	}
	return 0
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
