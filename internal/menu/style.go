package menu

import "github.com/charmbracelet/lipgloss"

type styles struct {
	enabled    bool
	titleStyle lipgloss.Style
	errorStyle lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled:    enabled,
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (s styles) title(text string) string {
	if !s.enabled {
		return text
	}
	return s.titleStyle.Render(text)
}

func (s styles) errorLine(text string) string {
	if !s.enabled {
		return text
	}
	return s.errorStyle.Render(text)
}
