package menu

import (
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// Row is one rendered line of a panel.
type Row struct {
	Item model.MenuItem
	// Branch rows show a chevron.
	Branch bool
	// Back is the synthetic row leading out of a cascade level.
	Back    bool
	Focused bool
	// Checked is multi-select membership.
	Checked bool
	// Selected marks the committed value and its ancestors.
	Selected bool
	// Expanded marks the branch whose submenu is open.
	Expanded bool
}

// Panel is everything a renderer needs to paint one visible level.
type Panel struct {
	Depth     int
	Rows      []Row
	Focus     int
	Offset    int
	Visible   int
	Placement position.Placement
	Size      position.Size
	Multi     bool
	MenuSize  model.Size
}

// Panels returns the visible panels from the root outwards. A closed menu
// has none.
func (m *Menu) Panels() []Panel {
	if !m.root.IsOpen() {
		return nil
	}
	committed := m.committedIndices()
	active := m.active.Indices()

	out := make([]Panel, 0, len(m.levels))
	for li, lv := range m.levels {
		panel := Panel{
			Depth:     lv.depth,
			Rows:      make([]Row, len(lv.entries)),
			Focus:     lv.focus,
			Offset:    lv.offset,
			Visible:   m.visibleRows(lv),
			Placement: lv.placement,
			Size:      m.panelSize(lv),
			Multi:     m.multi != nil,
			MenuSize:  m.opts.Size,
		}
		for row, e := range lv.entries {
			r := Row{
				Item:    e.item,
				Branch:  e.branch,
				Back:    e.back,
				Focused: row == lv.focus && li == m.focusLevel,
			}
			if m.multi != nil && !e.back {
				r.Checked = m.multi.Contains(e.item.ID)
			}
			if !e.back && lv.depth < len(committed) && sharesPrefix(committed, active, lv.depth) {
				r.Selected = committed[lv.depth] == e.index
			}
			if li+1 < len(m.levels) && m.levels[li+1].anchorRow == row {
				r.Expanded = true
			}
			panel.Rows[row] = r
		}
		out = append(out, panel)
	}
	return out
}

// ItemAt hit-tests a screen cell against the visible panels, deepest first.
func (m *Menu) ItemAt(x, y int) (depth int, id string, ok bool) {
	if !m.root.IsOpen() {
		return 0, "", false
	}
	for li := len(m.levels) - 1; li >= 0; li-- {
		lv := m.levels[li]
		if !m.levelRect(lv).Contains(x, y) {
			continue
		}
		top := m.levelRect(lv).Y + lv.metrics.RowTop
		if y < top {
			return 0, "", false
		}
		row := lv.offset + (y-top)/lv.metrics.RowHeight
		if row >= len(lv.entries) || row >= lv.offset+m.visibleRows(lv) {
			return 0, "", false
		}
		e := lv.entries[row]
		if e.item.Divider {
			return 0, "", false
		}
		return lv.depth, e.item.ID, true
	}
	return 0, "", false
}

// Focused returns the depth and id of the keyboard-focused row.
func (m *Menu) Focused() (depth int, id string, ok bool) {
	if !m.root.IsOpen() || len(m.levels) == 0 {
		return 0, "", false
	}
	lv := m.levels[min(m.focusLevel, len(m.levels)-1)]
	if lv.focus < 0 {
		return 0, "", false
	}
	return lv.depth, lv.entries[lv.focus].item.ID, true
}

// committedIndices maps the committed hierarchy value to sibling indices.
func (m *Menu) committedIndices() []int {
	value, ok := m.Value()
	if !ok || m.walker == nil {
		return nil
	}
	_, indices, found := m.walker.PathTo(m.roots, value)
	if !found {
		return nil
	}
	return indices
}

// sharesPrefix reports whether the panel at depth shows the same branch the
// committed value lives under.
func sharesPrefix(committed, active []int, depth int) bool {
	if depth > len(active) {
		return false
	}
	for i := 0; i < depth; i++ {
		if committed[i] != active[i] {
			return false
		}
	}
	return true
}
