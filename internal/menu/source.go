package menu

import (
	"github.com/alexisbeaulieu97/popmenu/internal/menu/hierarchy"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// entry is one row of a level, whatever the data came from.
type entry struct {
	item   model.MenuItem
	branch bool
	value  any
	node   any
	// index is the position among the source siblings; -1 for the back row.
	index int
	back  bool
}

// source yields the rows reached by following a path of sibling indices.
type source interface {
	rows(path []int) []entry
}

type flatSource struct {
	items []model.MenuItem
}

func (s flatSource) rows(path []int) []entry {
	items := s.items
	for _, idx := range path {
		if idx < 0 || idx >= len(items) {
			return nil
		}
		items = items[idx].Children
	}
	out := make([]entry, len(items))
	for i, item := range items {
		out[i] = entry{item: item, branch: item.HasChildren(), value: item.ID, index: i}
	}
	return out
}

type treeSource struct {
	walker *hierarchy.Walker
	roots  []any
}

func (s treeSource) rows(path []int) []entry {
	opts := s.walker.Options(s.roots, path)
	out := make([]entry, len(opts))
	for i, opt := range opts {
		out[i] = entry{
			item: model.MenuItem{
				ID:       opt.ID,
				Label:    opt.Label,
				Disabled: opt.Disabled,
			},
			branch: opt.Branch,
			value:  opt.Value,
			node:   opt.Node,
			index:  i,
		}
	}
	return out
}

func indexOfEntry(entries []entry, id string) int {
	for i, e := range entries {
		if !e.item.Divider && e.item.ID == id {
			return i
		}
	}
	return -1
}
