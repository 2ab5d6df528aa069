package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game     *runner.Game
	screen   *core.Screen
	canvas   *Canvas
	painter  *Painter
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	frame    core.InputFrame
	state    core.GameState
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for game. cfg gives the initial terminal size
// and the tick rate; r styles the output and may be nil for stdout.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, r *lipgloss.Renderer) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	lw, lh := game.Config().Screen.Width, game.Config().Screen.Height
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0))

	h := help.New()
	if r != nil {
		h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("#909090"))
		h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("#B2B2B2"))
		h.Styles.ShortSeparator = r.NewStyle().Foreground(lipgloss.Color("#DDDADA"))
	}

	return Model{
		game:    game,
		screen:  screen,
		canvas:  NewCanvas(screen, lw, lh),
		painter: NewPainter(r),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		frame:   core.NewInputFrame(),
		state:   game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key press for the next tick. Every key message is
// its own rising edge, so two presses on consecutive ticks both count.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
	}
	return m, nil
}

// handleMouse tracks the pointer in logical pixels and records clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.canvas.ToLogical(msg.X, msg.Y)
	if x != m.frame.Pointer.X || y != m.frame.Pointer.Y {
		m.frame.Pointer = core.Pointer{X: x, Y: y, Moved: true}
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.frame.Press(core.ActionClick)
	}
	return m, nil
}

// handleResize fits the cell buffer to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the cell buffer to the terminal minus the footer.
func (m Model) fitScreen() {
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(m.footer()), 0))
}

func (m Model) footer() string {
	if m.help.ShowAll {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.help.ShortHelpView(m.keys.PhaseHelp(m.state.Phase))
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.frame, dt)
	m.state = result.State

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	return lipgloss.JoinVertical(lipgloss.Left, m.painter.Paint(m.screen), m.footer())
}

// Run starts the Bubble Tea program for game in the current terminal.
func Run(game *runner.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err := p.Run()
	return err
}
