package papers

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	paperTitle lipgloss.Style
	authors    lipgloss.Style
	meta       lipgloss.Style
	counts     lipgloss.Style
	url        lipgloss.Style
	abstract   lipgloss.Style
	note       lipgloss.Style
	pending    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		paperTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		authors:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		counts:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		url:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Underline(true),
		abstract:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(76),
		note:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		pending:    lipgloss.NewStyle().Faint(true),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
	}
}
