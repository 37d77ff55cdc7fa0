package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popmenu/internal/tui/components"
)

// View renders the toolbar, the event log and any open panels on top.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("popmenu • " + m.title()),
		lipgloss.NewStyle().PaddingLeft(toolbarOrigin.X).Render(m.s.toolbar().View()),
		sectionStyle.Render("Events"),
		eventsStyle.Render(m.s.events.View()),
		m.helpView(),
	}
	background := lipgloss.JoinVertical(lipgloss.Left, sections...)

	var layers []components.Layer
	if t := m.s.openTrigger(); t != nil {
		for _, p := range t.menu.Panels() {
			layers = append(layers, components.Layer{
				X:       p.Placement.Left,
				Y:       p.Placement.Top,
				Content: components.NewMenuPanel(p).View(),
			})
		}
	}

	return components.Overlay(background, m.s.width, m.s.height, layers...)
}

func (m Model) helpView() string {
	if m.s.openTrigger() != nil {
		return helpStyle.Render(m.help.View(menuHelp{m.keys}))
	}
	return helpStyle.Render(m.help.View(m.keys))
}

func (m Model) title() string {
	if m.s.cfg != nil && strings.TrimSpace(m.s.cfg.Name) != "" {
		return m.s.cfg.Name
	}
	return "Menus"
}
