// Package tui implements the terminal theme preview.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumenlabs/lumen/internal/theme"
)

// Run launches the theme preview over the loaded themes.
func Run(themes []*theme.Tokens) error {
	if len(themes) == 0 {
		return theme.ErrNoThemes
	}
	program := tea.NewProgram(newModel(themes), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	themes []*theme.Tokens
	index  int
	width  int
	height int
}

func newModel(themes []*theme.Tokens) model {
	index := 0
	for i, t := range themes {
		if t.Metadata.Default {
			index = i
			break
		}
	}
	return model{themes: themes, index: index}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.index = (m.index + len(m.themes) - 1) % len(m.themes)
		case "right", "l", "tab":
			m.index = (m.index + 1) % len(m.themes)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	current := m.themes[m.index]

	title := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Faint(true)

	lines := []string{
		title.Render(fmt.Sprintf("Theme: %s (%d/%d)", current.Metadata.ID, m.index+1, len(m.themes))),
		"",
	}
	lines = append(lines, renderPalette(current)...)
	lines = append(lines, "", muted.Render("left/right to switch themes, q to quit"))

	return strings.Join(lines, "\n") + "\n"
}

// renderPalette lists every semantic color with a swatch, grouped by
// category in sorted order.
func renderPalette(t *theme.Tokens) []string {
	var lines []string

	categories := make([]string, 0, len(t.Semantic.Color))
	for category := range t.Semantic.Color {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	label := lipgloss.NewStyle().Width(24)
	for _, category := range categories {
		tokens := t.Semantic.Color[category]

		names := make([]string, 0, len(tokens))
		for name := range tokens {
			names = append(names, name)
		}
		sort.Strings(names)

		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(category))
		for _, name := range names {
			value := tokens[name]
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(value)).
				Render("      ")
			lines = append(lines, fmt.Sprintf("  %s %s %s",
				label.Render(category+"-"+name), swatch, value))
		}
	}

	return lines
}
