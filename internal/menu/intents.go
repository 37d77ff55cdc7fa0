package menu

import (
	"github.com/alexisbeaulieu97/popmenu/internal/menu/dismiss"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/selection"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// Hover moves focus to id on the panel at depth. In nested and flat menus,
// hovering an enabled branch opens its submenu and hovering anything else
// closes submenus deeper than that panel.
func (m *Menu) Hover(depth int, id string) {
	li, row, ok := m.locate(depth, id)
	if !ok {
		return
	}
	m.setFocus(li, row)
	if m.mode == model.ModeCascade {
		return
	}
	e := m.levels[li].entries[row]
	if e.branch && selection.Guard(e.item) {
		m.expand(li, row)
		return
	}
	m.collapse(li)
}

// Activate is a click or Enter on id at depth. Branches open, leaves commit
// (or toggle in multi-select menus), disabled items do nothing.
func (m *Menu) Activate(depth int, id string) {
	li, row, ok := m.locate(depth, id)
	if !ok {
		return
	}
	m.setFocus(li, row)
	m.activateRow(li, row)
}

// Toggle flips membership of id in a multi-select menu. Without
// multi-select it behaves like Activate.
func (m *Menu) Toggle(depth int, id string) {
	li, row, ok := m.locate(depth, id)
	if !ok {
		return
	}
	e := m.levels[li].entries[row]
	if m.multi == nil || e.branch || e.back {
		m.setFocus(li, row)
		m.activateRow(li, row)
		return
	}
	m.setFocus(li, row)
	if !selection.Guard(e.item) {
		m.log.With("item", e.item.ID).Debug("ignored toggle of disabled item")
		return
	}
	m.multi.Toggle(e.item.ID)
}

// Back leaves the current cascade level or closes the deepest focused
// submenu.
func (m *Menu) Back() {
	if !m.root.IsOpen() || len(m.levels) == 0 {
		return
	}
	m.back()
}

func (m *Menu) activateRow(li, row int) {
	e := m.levels[li].entries[row]
	if e.back {
		m.back()
		return
	}
	if !selection.Guard(e.item) {
		m.log.With("item", e.item.ID).Debug("ignored activation of disabled item")
		return
	}
	if e.branch {
		if m.mode == model.ModeCascade {
			m.drill(row)
			return
		}
		m.expand(li, row)
		m.focusLevel = li + 1
		return
	}
	if m.multi != nil {
		m.multi.Toggle(e.item.ID)
		return
	}
	m.commit(li, row)
}

func (m *Menu) commit(li, row int) {
	lv := m.levels[li]
	e := lv.entries[row]
	if m.single != nil {
		indices := append(m.active.Indices()[:lv.depth], e.index)
		nodes, ok := m.walker.Resolve(m.roots, indices)
		if !ok {
			m.log.With("item", e.item.ID).Warn("selected option is no longer in the hierarchy")
			return
		}
		m.single.SelectLeaf(e.value, nodes)
	} else if m.opts.OnSelect != nil {
		m.opts.OnSelect(e.item)
	}
	m.root.CloseWith(dismiss.ReasonCommit)
}

// locate finds the row for id on the visible panel at depth.
func (m *Menu) locate(depth int, id string) (int, int, bool) {
	if !m.root.IsOpen() {
		return 0, 0, false
	}
	li := m.levelIndexAt(depth)
	if li < 0 {
		return 0, 0, false
	}
	row := indexOfEntry(m.levels[li].entries, id)
	if row < 0 {
		m.log.With("item", id).Debug("intent for unknown item")
		return 0, 0, false
	}
	return li, row, true
}

func (m *Menu) setFocus(li, row int) {
	lv := m.levels[li]
	lv.focus = row
	m.focusLevel = li
	m.keepVisible(lv)
}
