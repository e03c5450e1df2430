package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigames/internal/config"
	"github.com/vovakirdan/minigames/internal/core"
)

// BoardMenuModel lets users choose a Snake board preset.
type BoardMenuModel struct {
	boards    []config.BoardPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection string
	choosing  bool
	quitting  bool
	back      bool
}

// NewBoardMenuModel creates a selector over boards with the cursor on the
// preset named current.
func NewBoardMenuModel(boards []config.BoardPreset, current string, width, height int) BoardMenuModel {
	m := BoardMenuModel{
		boards:    boards,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, b := range boards {
		if b.Name == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m BoardMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BoardMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.boards)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.boards) > 0 {
			m.choosing = false
			m.selection = m.boards[m.cursor].Name
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the board list.
func (m BoardMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board:", m.width))
	b.WriteString("\n\n")

	for i, board := range m.boards {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-18s", cursor, board.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset name, or "" while still choosing.
func (m BoardMenuModel) Selected() string {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m BoardMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BoardMenuModel) WantsBack() bool {
	return m.back
}

// BoardResult holds the outcome of the board selector.
type BoardResult struct {
	Board string
	Back  bool
	Quit  bool
}

// RunBoardSelector shows the Snake board presets from the active config.
func RunBoardSelector(cfg core.RuntimeConfig) (BoardResult, error) {
	sc, _, err := config.LoadSnake(cfg.ConfigPath)
	if err != nil {
		return BoardResult{}, err
	}

	current := cfg.Variant
	if current == "" {
		current = sc.DefaultBoard
	}
	p := tea.NewProgram(NewBoardMenuModel(sc.Boards, current, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return BoardResult{}, err
	}

	m, ok := finalModel.(BoardMenuModel)
	switch {
	case !ok || m.IsQuitting():
		return BoardResult{Quit: true}, nil
	case m.WantsBack():
		return BoardResult{Back: true}, nil
	}
	return BoardResult{Board: m.Selected()}, nil
}
