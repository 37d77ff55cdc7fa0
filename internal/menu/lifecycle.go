package menu

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/popmenu/internal/menu/dismiss"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// Open shows the root panel. trigger is the event that caused the open; pass
// the event returned by Document.Dispatch so that same event cannot dismiss
// the menu. Opening an open menu only repositions it.
func (m *Menu) Open(trigger dismiss.Event) {
	if m.root.IsOpen() {
		m.root.Open(trigger)
		return
	}
	m.resetLevels()
	m.root.Open(trigger)
	m.reposition(position.TriggerOpen)
	m.noteFallbacks()
}

// RequestClose closes the menu and every open submenu.
func (m *Menu) RequestClose() {
	m.root.Close()
}

// Reposition recomputes every visible panel's placement.
func (m *Menu) Reposition() {
	m.reposition(position.TriggerScroll)
}

// SetViewport records a new viewport size and repositions.
func (m *Menu) SetViewport(size position.Size) {
	m.viewport = size
	m.reposition(position.TriggerResize)
}

// Viewport returns the last recorded viewport size.
func (m *Menu) Viewport() position.Size { return m.viewport }

// SetPanelSize feeds the rendered size of the panel at depth back into
// placement.
func (m *Menu) SetPanelSize(depth int, size position.Size) {
	li := m.levelIndexAt(depth)
	if li < 0 {
		return
	}
	lv := m.levels[li]
	if lv.measured && lv.size == size {
		return
	}
	lv.size = size
	lv.measured = true
	m.keepVisible(lv)
	if li == 0 {
		m.reposition(position.TriggerMeasure)
		return
	}
	m.placeSubmenus()
}

// SetPanelMetrics records where rows sit inside the rendered panel at depth.
func (m *Menu) SetPanelMetrics(depth int, metrics Metrics) {
	if metrics.RowHeight <= 0 {
		metrics.RowHeight = 1
	}
	if li := m.levelIndexAt(depth); li >= 0 {
		m.levels[li].metrics = metrics
		m.keepVisible(m.levels[li])
		m.placeSubmenus()
	}
}

func (m *Menu) resetLevels() {
	m.active.Reset()
	m.focusLevel = 0
	m.typeahead = ""

	var selected []int
	if value, ok := m.Value(); ok && m.walker != nil {
		if _, indices, found := m.walker.PathTo(m.roots, value); found {
			selected = indices
		}
	}

	if m.mode == model.ModeCascade && len(selected) > 1 {
		m.active.Set(selected[:len(selected)-1])
	}
	root := m.buildLevel(m.active.Depth(), m.active.Indices())
	root.ctrl = m.root
	if len(selected) > 0 {
		want := selected[m.active.Depth()]
		for row, e := range root.entries {
			if e.index == want && e.item.Focusable() {
				root.focus = row
				break
			}
		}
	}
	m.levels = []*level{root}
}

func (m *Menu) buildLevel(depth int, path []int) *level {
	lv := &level{depth: depth, anchorRow: -1, focus: -1, metrics: DefaultMetrics()}
	entries := m.src.rows(path)
	if m.mode == model.ModeCascade && depth > 0 {
		back := entry{
			item:  model.MenuItem{ID: BackID, Label: m.labelAt(path)},
			back:  true,
			index: -1,
		}
		entries = append([]entry{back}, entries...)
	}
	lv.entries = entries
	lv.focus = nextFocusable(entries, -1, 1)
	return lv
}

// labelAt returns the label of the branch that path leads into.
func (m *Menu) labelAt(path []int) string {
	if len(path) == 0 {
		return ""
	}
	siblings := m.src.rows(path[:len(path)-1])
	idx := path[len(path)-1]
	if idx < 0 || idx >= len(siblings) {
		return ""
	}
	return siblings[idx].item.Label
}

func (m *Menu) rootClosed(reason dismiss.Reason) {
	for len(m.levels) > 1 {
		m.collapse(len(m.levels) - 2)
	}
	m.levels = nil
	m.active.Reset()
	m.focusLevel = 0
	m.typeahead = ""
	m.log.With("reason", reason.String()).Debug("menu dismissed")
	if m.opts.OnClose != nil {
		m.opts.OnClose()
	}
}

func (m *Menu) onReposition(ev dismiss.Event) {
	switch ev.Kind {
	case dismiss.EventResize:
		m.reposition(position.TriggerResize)
	case dismiss.EventScroll:
		m.reposition(position.TriggerScroll)
	default:
		m.reposition(position.TriggerOpen)
	}
}

func (m *Menu) reposition(trigger position.Trigger) {
	if len(m.levels) == 0 {
		return
	}
	root := m.levels[0]
	m.tracker.SetViewport(m.viewport)
	m.tracker.SetPanelSize(m.rawSize(root))
	placement, err := m.tracker.Recompute(trigger)
	if err != nil {
		m.log.DebugErr(err, "layout pass skipped")
		return
	}
	root.placement = placement
	m.placeSubmenus()
}

func (m *Menu) placeSubmenus() {
	if m.viewport.IsZero() {
		return
	}
	for i := 1; i < len(m.levels); i++ {
		parent, lv := m.levels[i-1], m.levels[i]
		lv.placement = position.ResolveSubmenu(
			m.levelRect(parent),
			m.rowRect(parent, lv.anchorRow),
			m.panelSize(lv),
			m.viewport,
			m.offsets.Inset,
		)
	}
}

func (m *Menu) rawSize(lv *level) position.Size {
	if lv.measured {
		return lv.size
	}
	return m.estimateSize(lv)
}

func (m *Menu) panelSize(lv *level) position.Size {
	return m.constraints.Constrain(m.rawSize(lv))
}

// estimateSize approximates the rendered size until the renderer reports it.
func (m *Menu) estimateSize(lv *level) position.Size {
	width := 0
	for _, e := range lv.entries {
		width = max(width, ansi.StringWidth(e.item.Label))
	}
	chrome := 6
	if m.multi != nil {
		chrome += 4
	}
	rows := len(lv.entries) * lv.metrics.RowHeight
	return position.Size{
		W: width + chrome,
		H: max(rows, 1) + lv.metrics.RowTop + lv.metrics.RowBottom,
	}
}

func (m *Menu) levelRect(lv *level) position.Rect {
	return lv.placement.Rect(m.panelSize(lv))
}

// rowRect locates a row on screen, accounting for scrolling.
func (m *Menu) rowRect(lv *level, row int) position.Rect {
	panel := m.levelRect(lv)
	return position.Rect{
		X: panel.X,
		Y: panel.Y + lv.metrics.RowTop + (row-lv.offset)*lv.metrics.RowHeight,
		W: panel.W,
		H: lv.metrics.RowHeight,
	}
}

// visibleRows is how many rows fit in the constrained panel.
func (m *Menu) visibleRows(lv *level) int {
	inner := m.panelSize(lv).H - lv.metrics.RowTop - lv.metrics.RowBottom
	rows := inner / lv.metrics.RowHeight
	if rows < 1 {
		return 1
	}
	return rows
}

func (m *Menu) keepVisible(lv *level) {
	visible := m.visibleRows(lv)
	if lv.focus >= 0 {
		if lv.focus < lv.offset {
			lv.offset = lv.focus
		}
		if lv.focus >= lv.offset+visible {
			lv.offset = lv.focus - visible + 1
		}
	}
	lv.offset = min(lv.offset, max(len(lv.entries)-visible, 0))
	lv.offset = max(lv.offset, 0)
}

func (m *Menu) insideRoot(x, y int) bool {
	if len(m.levels) > 0 && m.levelRect(m.levels[0]).Contains(x, y) {
		return true
	}
	if m.opts.Anchor != nil {
		if rect, ok := m.opts.Anchor.Rect(); ok && rect.Contains(x, y) {
			return true
		}
	}
	return false
}

func (m *Menu) levelIndexAt(depth int) int {
	for i, lv := range m.levels {
		if lv.depth == depth {
			return i
		}
	}
	return -1
}

func (m *Menu) levelIndex(target *level) int {
	for i, lv := range m.levels {
		if lv == target {
			return i
		}
	}
	return -1
}

// expand opens the branch at row of level li as a nested submenu.
func (m *Menu) expand(li, row int) {
	parent := m.levels[li]
	if li+1 < len(m.levels) && m.levels[li+1].anchorRow == row {
		return
	}
	m.collapse(li)
	m.active.Expand(parent.depth, parent.entries[row].index)

	path := m.active.Indices()
	child := m.buildLevel(parent.depth+1, path)
	child.anchorRow = row
	child.metrics = parent.metrics
	child.ctrl = parent.ctrl.Child(dismiss.Options{
		ID: m.id + "/" + joinPath(path),
		Inside: func(x, y int) bool {
			if m.levelIndex(child) < 0 {
				return false
			}
			return m.levelRect(child).Contains(x, y) || m.rowRect(parent, child.anchorRow).Contains(x, y)
		},
		OnClose: func(dismiss.Reason) { m.submenuClosed(child) },
	})
	m.levels = append(m.levels, child)
	child.ctrl.Open(dismiss.Event{})
	m.placeSubmenus()
	m.noteFallbacks()
}

// collapse closes every submenu deeper than level li.
func (m *Menu) collapse(li int) {
	for len(m.levels) > li+1 {
		last := m.levels[len(m.levels)-1]
		m.levels = m.levels[:len(m.levels)-1]
		m.levels[len(m.levels)-1].ctrl.Release(last.ctrl)
	}
	if li >= 0 && li < len(m.levels) && m.mode != model.ModeCascade {
		m.active.Truncate(m.levels[li].depth)
	}
	if m.focusLevel > li {
		m.focusLevel = max(li, 0)
	}
}

func (m *Menu) submenuClosed(lv *level) {
	if li := m.levelIndex(lv); li > 0 {
		m.collapse(li - 1)
	}
}

// drill replaces the visible cascade level with the branch at row.
func (m *Menu) drill(row int) {
	current := m.levels[0]
	m.active.Expand(current.depth, current.entries[row].index)
	m.replaceRoot(m.buildLevel(current.depth+1, m.active.Indices()), current)
}

// back leaves the current cascade level or closes the focused submenu.
func (m *Menu) back() {
	if m.mode != model.ModeCascade {
		if m.focusLevel > 0 {
			m.collapse(m.focusLevel - 1)
		}
		return
	}
	current := m.levels[0]
	if current.depth == 0 {
		return
	}
	from := m.active.At(current.depth - 1)
	m.active.Truncate(current.depth - 1)
	prev := m.buildLevel(current.depth-1, m.active.Indices())
	for row, e := range prev.entries {
		if e.index == from {
			prev.focus = row
			break
		}
	}
	m.replaceRoot(prev, current)
}

func (m *Menu) replaceRoot(next, current *level) {
	next.ctrl = m.root
	next.metrics = current.metrics
	m.levels[0] = next
	m.focusLevel = 0
	m.typeahead = ""
	m.keepVisible(next)
	m.reposition(position.TriggerMeasure)
	m.noteFallbacks()
}

func (m *Menu) noteFallbacks() {
	if m.walker == nil {
		return
	}
	for _, name := range m.walker.Fallbacks() {
		m.configWarn(name+"_field", "field missing on some options; using the option itself")
	}
}

func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, "/")
}
