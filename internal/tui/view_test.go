package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/popmenu/internal/config"
)

func TestViewFillsTheScreen(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	require.Equal(t, 30, lipgloss.Height(view))
	require.Equal(t, 100, lipgloss.Width(view))
	require.Contains(t, view, "popmenu • Demo")
	require.Contains(t, view, "File ▾")
	require.Contains(t, view, "Tags ▾")
	require.Contains(t, view, "Catalog ▾")
	require.Contains(t, view, "Events")
	require.Contains(t, view, "quit")
}

func TestViewOverlaysOpenPanel(t *testing.T) {
	m := newTestModel(t)
	m = send(m, keyMsg(tea.KeyEnter))

	lines := strings.Split(m.View(), "\n")
	file, _ := m.Menu("file")
	p := file.Panels()[0]

	require.Contains(t, lines[p.Placement.Top+1], "New")
	require.Contains(t, lines[p.Placement.Top+2], "Open")
	require.Contains(t, m.View(), "close", "footer switches to menu keys")
}

func TestViewTitleFallback(t *testing.T) {
	m := NewModel(&config.Config{}, nil)
	require.Contains(t, m.View(), "popmenu • Menus")
}
