package menu

import (
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// HandleKey applies a key, named the way bubbletea's KeyMsg.String names
// it, to the focused panel and reports whether the menu consumed it. Escape
// is not handled here; it reaches the menu through the document.
func (m *Menu) HandleKey(key string) bool {
	if !m.root.IsOpen() || len(m.levels) == 0 {
		return false
	}
	li := min(max(m.focusLevel, 0), len(m.levels)-1)
	lv := m.levels[li]

	switch key {
	case "up", "shift+tab":
		m.typeahead = ""
		m.moveFocus(li, nextFocusable(lv.entries, lv.focus, -1))
	case "down", "tab":
		m.typeahead = ""
		m.moveFocus(li, nextFocusable(lv.entries, lv.focus, 1))
	case "home":
		m.typeahead = ""
		m.moveFocus(li, nextFocusable(lv.entries, -1, 1))
	case "end":
		m.typeahead = ""
		m.moveFocus(li, nextFocusable(lv.entries, len(lv.entries), -1))
	case "enter", " ", "space":
		m.typeahead = ""
		if lv.focus >= 0 {
			m.activateRow(li, lv.focus)
		}
	case "right":
		m.typeahead = ""
		if lv.focus < 0 {
			return true
		}
		if e := lv.entries[lv.focus]; e.branch {
			m.activateRow(li, lv.focus)
		}
	case "left", "backspace":
		m.typeahead = ""
		m.back()
	default:
		return m.typeAhead(li, key)
	}
	return true
}

func (m *Menu) moveFocus(li, row int) {
	if row < 0 {
		return
	}
	m.setFocus(li, row)
}

// typeAhead extends the query with a printable key and focuses the best
// fuzzy match, starting over from the key alone when the longer query stops
// matching.
func (m *Menu) typeAhead(li int, key string) bool {
	r, size := utf8.DecodeRuneInString(key)
	if size != len(key) || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return false
	}
	lv := m.levels[li]
	for _, query := range []string{m.typeahead + key, key} {
		if row := bestMatch(lv.entries, query); row >= 0 {
			m.typeahead = query
			m.setFocus(li, row)
			return true
		}
	}
	m.typeahead = ""
	return true
}

func bestMatch(entries []entry, query string) int {
	labels := make([]string, len(entries))
	for i, e := range entries {
		if e.item.Focusable() && !e.back {
			labels[i] = e.item.Label
		}
	}
	for _, match := range fuzzy.Find(query, labels) {
		if labels[match.Index] != "" {
			return match.Index
		}
	}
	return -1
}

// nextFocusable walks from row in direction dir, wrapping, and returns the
// first row that is not a divider, or -1 when there is none.
func nextFocusable(entries []entry, row, dir int) int {
	n := len(entries)
	if n == 0 {
		return -1
	}
	for step := 1; step <= n; step++ {
		idx := ((row+dir*step)%n + n) % n
		if entries[idx].item.Focusable() {
			return idx
		}
	}
	return -1
}
