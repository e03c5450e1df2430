package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigames/internal/core"
	"github.com/vovakirdan/minigames/internal/registry"
)

// footerRows is the space kept below the game for the key help.
const footerRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       KeyMap
	help       help.Model
	session    *Session
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(1, cfg.ScreenH-footerRows)

	km := NewKeyMapper()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keyMapper:  km,
		keys:       km.Keys().ForGame(game.ID()),
		help:       h,
		session:    StartSession(ctx, logger, game.ID(), cfg),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey processes keyboard input. Quit and back leave the game at
// once; everything else is buffered into the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.back = true
		return m, tea.Quit
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-footerRows)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.session.Record(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state after the last frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// WantsBack reports whether the player asked to return to the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Run plays game until the player quits or goes back. It reports whether
// the player asked to return to the menu.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	model := NewModel(ctx, game, cfg, logger)
	defer model.session.End()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.WantsBack(), nil
	}
	return false, nil
}
