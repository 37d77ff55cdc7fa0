package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popmenu/internal/menu/dismiss"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (m.s.openTrigger() == nil && key.Matches(msg, m.keys.Quit)) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.measure()
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.s.width = width
	m.s.height = height
	m.help.Width = width
	m.s.events.Width = max(width-2, 1)

	viewport := position.Size{W: width, H: height}
	for _, t := range m.s.triggers {
		t.menu.SetViewport(viewport)
	}
	m.s.doc.Dispatch(dismiss.Event{Kind: dismiss.EventResize})
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	name := msg.String()

	// Every key reaches the document first so that Escape dismisses.
	if t := m.s.openTrigger(); t != nil {
		ev := m.s.doc.Dispatch(dismiss.Event{Kind: dismiss.EventKeyDown, Key: name})
		if ev.IsEscape() || !t.menu.IsOpen() {
			return
		}
		t.menu.HandleKey(name)
		return
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Open):
		ev := m.s.doc.Dispatch(dismiss.Event{Kind: dismiss.EventKeyDown, Key: name})
		m.openAt(m.s.focus, ev)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		m.s.doc.Dispatch(dismiss.Event{Kind: dismiss.EventScroll, X: msg.X, Y: msg.Y})
	case msg.Action == tea.MouseActionMotion:
		if t := m.s.openTrigger(); t != nil {
			if depth, id, ok := t.menu.ItemAt(msg.X, msg.Y); ok {
				t.menu.Hover(depth, id)
			}
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(msg.X, msg.Y)
	}
}

// press routes a click: the document sees it first, then an open panel, then
// the toolbar.
func (m *Model) press(x, y int) {
	wasOpen := m.s.open
	ev := m.s.doc.Dispatch(dismiss.Event{Kind: dismiss.EventPointerDown, X: x, Y: y})

	if t := m.s.openTrigger(); t != nil {
		if depth, id, ok := t.menu.ItemAt(x, y); ok {
			if t.def.MultiSelect {
				t.menu.Toggle(depth, id)
			} else {
				t.menu.Activate(depth, id)
			}
			return
		}
	}

	hit := m.buttonAt(x, y)
	if hit < 0 {
		return
	}
	if hit == wasOpen && m.s.openTrigger() != nil {
		m.s.triggers[hit].menu.RequestClose()
		return
	}
	m.openAt(hit, ev)
}

func (m *Model) buttonAt(x, y int) int {
	for i, rect := range m.s.toolbar().Bounds(toolbarOrigin) {
		if rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (m *Model) moveFocus(delta int) {
	n := len(m.s.triggers)
	if n == 0 {
		return
	}
	m.s.focus = ((m.s.focus+delta)%n + n) % n
}

func (m *Model) openAt(index int, ev dismiss.Event) {
	if index < 0 || index >= len(m.s.triggers) || m.s.triggers[index].def.Disabled {
		return
	}
	for i, t := range m.s.triggers {
		if i != index {
			t.menu.RequestClose()
		}
	}
	t := m.s.triggers[index]
	m.s.focus = index
	m.s.open = index
	t.menu.Open(ev)
	m.s.record(t.def.ID, "opened")
}

// measure renders each visible panel and feeds its real size back so that
// placement and hit testing match what is drawn.
func (m *Model) measure() {
	t := m.s.openTrigger()
	if t == nil {
		return
	}
	for i := 0; ; i++ {
		panels := t.menu.Panels()
		if i >= len(panels) {
			return
		}
		p := panels[i]
		renderer := components.NewMenuPanel(p)
		view := renderer.View()
		size := position.Size{W: lipgloss.Width(view), H: lipgloss.Height(view)}
		if size == p.Size {
			continue
		}
		t.menu.SetPanelMetrics(p.Depth, renderer.Metrics())
		t.menu.SetPanelSize(p.Depth, size)
	}
}
