package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/echoes/internal/core"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	// HoldTicks is how many ticks a movement key stays held after a press.
	// Terminals report presses and repeats, never releases.
	HoldTicks int
	// Logger receives session and game events. Nil discards them.
	Logger *log.Logger
	// Sounds plays cues for game events. Nil is silent.
	Sounds Sounds
	// SessionID tags log lines. Empty generates one.
	SessionID string
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	opts      Options
	logger    *log.Logger
	held      map[core.Action]int // Movement actions and the ticks they stay held
	pressed   core.InputFrame     // One-shot actions for the next tick
	elapsed   time.Duration       // Simulated time since the session (re)started
	termW     int
	termH     int
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.HoldTicks < 1 {
		opts.HoldTicks = 1
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:    game,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger.With("session", opts.SessionID),
		held:    make(map[core.Action]int),
		pressed: core.NewInputFrame(),
		termW:   cfg.ScreenW,
		termH:   cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "zone", m.gameState.Zone, "gems", m.gameState.Gems)
		return m, tea.Quit
	}

	switch {
	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.termW, m.screenHeight())
	case action.IsMovement():
		m.held[action] = m.opts.HoldTicks
		delete(m.held, opposite(action))
	case action != core.ActionNone:
		m.pressed.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The session carries on;
// the game draws at whatever size the screen has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW, m.termH = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame())
	m.gameState = result.State

	m.elapsed += tickInterval(m.config.TickRate)
	m.pressed.Clear()
	for a, n := range m.held {
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	m.handleEvents(result.Events)

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// frame builds the input for the next tick.
func (m Model) frame() core.InputFrame {
	f := m.pressed.Clone()
	for a := range m.held {
		f.Set(a)
	}
	f.Elapsed = m.elapsed
	return f
}

// handleEvents logs what happened during a tick and plays its cues.
func (m *Model) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventRestart:
			m.elapsed = 0
			clear(m.held)
			m.logger.Info("session restarted")
		case core.EventGemCollected, core.EventGemGiven, core.EventHelpRejected, core.EventWrongExit:
			m.logger.Debug(e.Kind.String(), "detail", e.Detail, "gems", m.gameState.Gems)
		default:
			m.logger.Info(e.Kind.String(), "detail", e.Detail, "zone", m.gameState.Zone)
		}

		if m.opts.Sounds != nil {
			m.opts.Sounds.Play(e.Kind)
		}
	}
}

// screenHeight is the terminal height left after the help footer.
func (m Model) screenHeight() int {
	return max(m.termH-lipgloss.Height(m.helpView()), 0)
}

func (m Model) helpView() string {
	return helpStyle.Render(m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
