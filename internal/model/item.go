package model

// MenuItem is a single row in a flat menu. Children turn the row into a
// branch that opens a nested submenu.
type MenuItem struct {
	ID       string
	Label    string
	Icon     string
	Disabled bool
	Divider  bool
	Children []MenuItem
}

// DividerItem returns a separator row.
func DividerItem(id string) MenuItem {
	return MenuItem{ID: id, Divider: true}
}

// Focusable reports whether keyboard traversal may land on the item.
// Disabled items are focusable; dividers are not.
func (i MenuItem) Focusable() bool {
	return !i.Divider
}

// Selectable reports whether the item can be activated or toggled.
func (i MenuItem) Selectable() bool {
	return !i.Divider && !i.Disabled
}

// HasChildren reports whether the item opens a submenu.
func (i MenuItem) HasChildren() bool {
	return !i.Divider && len(i.Children) > 0
}

// IndexOf returns the position of id among items, or -1.
func IndexOf(items []MenuItem, id string) int {
	for idx, item := range items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}

// DuplicateID returns the first id that appears twice among siblings at any
// depth of items, or "" when every sibling list is unique.
func DuplicateID(items []MenuItem) string {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Divider {
			continue
		}
		if _, exists := seen[item.ID]; exists {
			return item.ID
		}
		seen[item.ID] = struct{}{}
		if dup := DuplicateID(item.Children); dup != "" {
			return dup
		}
	}
	return ""
}
