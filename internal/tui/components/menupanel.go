package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	theme "github.com/alexisbeaulieu97/popmenu/internal/components"
	"github.com/alexisbeaulieu97/popmenu/internal/menu"
)

// MaxLabelWidth bounds a rendered label; longer labels end in an ellipsis.
const MaxLabelWidth = 40

// MenuPanel renders one visible level of a menu.
type MenuPanel struct {
	panel menu.Panel
}

// NewMenuPanel wraps a panel snapshot for rendering.
func NewMenuPanel(panel menu.Panel) MenuPanel {
	return MenuPanel{panel: panel}
}

// Metrics reports where rows sit inside the rendered panel.
func (p MenuPanel) Metrics() menu.Metrics {
	return menu.Metrics{RowTop: 1, RowBottom: 1, RowHeight: 1}
}

// View renders the bordered panel with only the visible rows.
func (p MenuPanel) View() string {
	rows := p.visibleRows()
	pad := theme.GetTheme().Spacing.RowPadding(p.panel.MenuSize)

	width := 0
	lefts := make([]string, len(rows))
	for i, row := range rows {
		lefts[i] = p.rowLeft(row)
		w := ansi.StringWidth(lefts[i]) + 2*pad
		if row.Branch {
			w += 2
		}
		width = max(width, w)
	}
	if len(rows) == 0 {
		width = ansi.StringWidth("(empty)") + 2*pad
	}
	// the engine's size already includes the constraint; never shrink below it
	width = max(width, p.panel.Size.W-2)

	lines := make([]string, 0, max(len(rows), 1))
	for i, row := range rows {
		lines = append(lines, p.renderRow(row, lefts[i], width, pad))
	}
	if len(rows) == 0 {
		empty := theme.Style(lipgloss.NewStyle(), theme.DisabledRowStyle(p.panel.MenuSize)...)
		lines = append(lines, empty.Width(width).Render("(empty)"))
	}

	frame := theme.Style(lipgloss.NewStyle(), theme.PanelStyle()...)
	return frame.Render(strings.Join(lines, "\n"))
}

func (p MenuPanel) visibleRows() []menu.Row {
	rows := p.panel.Rows
	if p.panel.Visible <= 0 || len(rows) <= p.panel.Visible {
		return rows
	}
	start := min(max(p.panel.Offset, 0), len(rows)-p.panel.Visible)
	return rows[start : start+p.panel.Visible]
}

// rowLeft builds the marker, icon and label part of a row.
func (p MenuPanel) rowLeft(row menu.Row) string {
	glyphs := theme.GetTheme().Glyphs
	if row.Item.Divider {
		return ""
	}
	label := ansi.Truncate(row.Item.Label, MaxLabelWidth, "…")
	if row.Back {
		return glyphs.Back + " " + label
	}

	var b strings.Builder
	switch {
	case p.panel.Multi && !row.Branch:
		b.WriteString(theme.NewCheckbox(row.Checked, row.Item.Disabled, nil).View())
		b.WriteString(" ")
	case row.Selected:
		b.WriteString(glyphs.Selected)
		b.WriteString(" ")
	case !p.panel.Multi:
		b.WriteString(glyphs.Unselected)
		b.WriteString(" ")
	default:
		b.WriteString(strings.Repeat(" ", ansi.StringWidth(glyphs.Unchecked)+1))
	}
	if icon := theme.RenderIcon(row.Item.Icon, p.panel.MenuSize, nil); icon != "" {
		b.WriteString(icon)
		b.WriteString(" ")
	}
	b.WriteString(label)
	return b.String()
}

func (p MenuPanel) renderRow(row menu.Row, left string, width, pad int) string {
	size := p.panel.MenuSize
	if row.Item.Divider {
		style := theme.Style(lipgloss.NewStyle(), theme.DividerStyle()...)
		return style.Render(strings.Repeat(theme.GetTheme().Glyphs.Divider, width))
	}

	inner := width - 2*pad
	content := left
	if row.Branch {
		gap := max(inner-ansi.StringWidth(left)-1, 1)
		content = left + strings.Repeat(" ", gap) + theme.GetTheme().Glyphs.Chevron
	}

	var appliers []theme.StyleApplier
	switch {
	case row.Item.Disabled:
		appliers = theme.DisabledRowStyle(size)
	case row.Focused:
		appliers = theme.FocusedRowStyle(size)
	case row.Selected || row.Expanded:
		appliers = theme.SelectedRowStyle(size)
	default:
		appliers = theme.RowStyle(size)
	}
	style := theme.Style(lipgloss.NewStyle(), appliers...)
	if row.Item.Disabled && row.Focused {
		style = style.Underline(true)
	}
	return style.Width(width).Render(content)
}
