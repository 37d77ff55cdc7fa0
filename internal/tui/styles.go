package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	eventsStyle  = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("244"))
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
