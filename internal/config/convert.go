package config

import (
	"github.com/alexisbeaulieu97/popmenu/internal/menu"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// MenuOptions converts the definition into engine options. Callbacks, the
// anchor, the document and the logger are left for the caller to wire.
func (m Menu) MenuOptions() menu.Options {
	align, _ := position.ParseAlign(m.Align)
	size, _ := model.ParseSize(m.Size)

	opts := menu.Options{
		ID:          m.ID,
		Align:       align,
		Size:        size,
		MaxHeight:   m.MaxHeight,
		MinWidth:    m.MinWidth,
		MultiSelect: m.MultiSelect,
	}
	if m.MultiSelect && m.Selected != nil {
		opts.Selected = append([]string{}, m.Selected...)
	}

	if m.Gap != nil || m.Inset != nil {
		offsets := position.DefaultOffsets()
		if m.Gap != nil {
			offsets.Gap = *m.Gap
		}
		if m.Inset != nil {
			offsets.Inset = *m.Inset
		}
		opts.Offsets = &offsets
	}

	if m.Hierarchy == nil {
		opts.Items = MenuItems(m.Items)
		return opts
	}

	mode, _ := model.ParseMode(m.Mode)
	if mode == model.ModeFlat {
		mode = model.ModeNested
	}
	h := m.Hierarchy
	opts.Hierarchy = &menu.HierarchyOptions{
		Options:       h.Options,
		Value:         h.Value,
		HasValue:      h.Value != nil,
		ChildKeys:     append([]string{}, h.ChildKeys...),
		LabelField:    h.LabelField,
		ValueField:    h.ValueField,
		DisabledField: h.DisabledField,
		Mode:          mode,
	}
	return opts
}

// MenuItems converts item definitions into engine items.
func MenuItems(items []Item) []model.MenuItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]model.MenuItem, len(items))
	for i, item := range items {
		if item.Divider {
			out[i] = model.DividerItem(item.ID)
			continue
		}
		out[i] = model.MenuItem{
			ID:       item.ID,
			Label:    item.Label,
			Icon:     item.Icon,
			Disabled: item.Disabled,
			Children: MenuItems(item.Children),
		}
	}
	return out
}
