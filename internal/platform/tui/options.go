package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// optionModel is a single-list picker shared by the per-game option menus:
// a title, a handful of choices, Enter to pick, Esc to go back.
type optionModel struct {
	title     string
	prompt    string
	choices   []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    int // -1 while choosing
	quitting  bool
	back      bool
}

func newOptionModel(title, prompt string, choices []string, initial, width, height int) optionModel {
	cursor := initial
	if cursor < 0 || cursor >= len(choices) {
		cursor = 0
	}
	return optionModel{
		title:     title,
		prompt:    prompt,
		choices:   choices,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		chosen:    -1,
	}
}

// Init initializes the model.
func (m optionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m optionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			m.chosen = m.cursor
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the picker.
func (m optionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.prompt, m.width))
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, choice), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// runOptionPicker runs the picker and returns the chosen index, or -1 when
// the user backed out or quit.
func runOptionPicker(title, prompt string, choices []string, initial, width, height int) (int, error) {
	p := tea.NewProgram(
		newOptionModel(title, prompt, choices, initial, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return -1, err
	}

	m, ok := finalModel.(optionModel)
	if !ok || m.quitting || m.back {
		return -1, nil
	}
	return m.chosen, nil
}
