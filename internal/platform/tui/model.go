package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/cells"
	"github.com/vovakirdan/dino-runner/internal/session"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a play session.
type Model struct {
	sess       *session.Session
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame // Keys pressed since the last tick
	scene      dino.Scene
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model around a session.
// One row of the terminal is reserved for the help line.
func NewModel(sess *session.Session, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = sess.Config().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sess:       sess,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		scene:      sess.Scene(),
		gameState:  sess.State(),
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
		m.keys.MapKeyToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleResize processes window resize events.
// The world is fixed-size, so only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick with the keys gathered since the last one.
// Quit is honored here, between ticks, never in the middle of one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	res := m.sess.Tick(m.inputFrame.Clone(), now)
	m.gameState = res.State
	if res.Phase == dino.PhaseDone {
		m.scene = res.Scene
	} else {
		m.scene = m.sess.Scene()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cells.Project(m.screen, m.scene)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}
