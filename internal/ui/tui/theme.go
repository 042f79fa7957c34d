package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Source   lipgloss.Style
	Dest     lipgloss.Style
	Tops     lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Source: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Dest:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Tops:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
