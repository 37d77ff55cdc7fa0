package menu

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/popmenu/internal/logger"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/dismiss"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

func catalog() []any {
	return []any{
		map[string]any{
			"name":  "Electronics",
			"value": "electronics",
			"categories": []any{
				map[string]any{
					"name":  "Computers",
					"value": "computers",
					"products": []any{
						map[string]any{"name": "Laptop", "value": "laptop"},
						map[string]any{"name": "Desktop", "value": "desktop", "disabled": true},
					},
				},
				map[string]any{"name": "Phones", "value": "phones", "products": []any{}},
			},
		},
		map[string]any{"name": "Books", "value": "books"},
	}
}

func catalogPath(roots []any) []any {
	electronics := roots[0].(map[string]any)
	computers := electronics["categories"].([]any)[0]
	laptop := computers.(map[string]any)["products"].([]any)[0]
	return []any{electronics, computers, laptop}
}

type commitRecorder struct {
	value   any
	path    []any
	commits int
	closes  int
}

func catalogMenu(mode model.Mode, rec *commitRecorder, roots []any) *Menu {
	return New(Options{
		ID:       "catalog",
		Anchor:   position.StaticAnchor{X: 2, Y: 1, W: 10, H: 1},
		Offsets:  &position.Offsets{Gap: 1, Inset: 1},
		Viewport: position.Size{W: 120, H: 40},
		OnClose:  func() { rec.closes++ },
		Hierarchy: &HierarchyOptions{
			Options:       roots,
			ChildKeys:     []string{"categories", "products"},
			LabelField:    "name",
			ValueField:    "value",
			DisabledField: "disabled",
			Mode:          mode,
			OnChange: func(value any, path []any) {
				rec.value = value
				rec.path = path
				rec.commits++
			},
		},
	})
}

func TestNestedCommitEmitsValueAndPath(t *testing.T) {
	t.Parallel()

	roots := catalog()
	rec := &commitRecorder{}
	m := catalogMenu(model.ModeNested, rec, roots)

	m.Open(dismiss.Event{})
	require.Equal(t, dismiss.StateJustOpened, m.State())

	m.Hover(0, "electronics")
	m.Hover(1, "computers")

	panels := m.Panels()
	require.Len(t, panels, 3)
	assert.True(t, panels[0].Rows[0].Expanded)
	assert.True(t, panels[0].Rows[0].Branch)
	assert.False(t, panels[0].Rows[1].Branch)
	assert.True(t, panels[1].Rows[0].Expanded)
	assert.Equal(t, []int{0, 0}, m.ActivePath())

	m.Activate(2, "laptop")

	require.Equal(t, 1, rec.commits)
	require.Equal(t, "laptop", rec.value)
	require.Equal(t, catalogPath(roots), rec.path)
	require.Equal(t, dismiss.StateClosed, m.State())
	require.Equal(t, 1, rec.closes)
	require.Nil(t, m.Panels())
	require.Equal(t, 0, m.Document().Len())

	value, ok := m.Value()
	require.True(t, ok)
	require.Equal(t, "laptop", value)
}

func TestNestedSubmenuPlacement(t *testing.T) {
	t.Parallel()

	m := catalogMenu(model.ModeNested, &commitRecorder{}, catalog())
	m.Open(dismiss.Event{})
	m.Hover(0, "electronics")

	panels := m.Panels()
	require.Len(t, panels, 2)
	// root sits one row below the anchor, sized from its longest label
	assert.Equal(t, position.Placement{Top: 3, Left: 2}, panels[0].Placement)
	assert.Equal(t, position.Size{W: 17, H: 4}, panels[0].Size)
	// the submenu opens to the right, level with the hovered row
	assert.Equal(t, position.Placement{Top: 4, Left: 19}, panels[1].Placement)

	m.SetPanelSize(0, position.Size{W: 30, H: 4})
	assert.Equal(t, 32, m.Panels()[1].Placement.Left)
}

func TestHoverLeafCollapsesDeeperPanels(t *testing.T) {
	t.Parallel()

	m := catalogMenu(model.ModeNested, &commitRecorder{}, catalog())
	m.Open(dismiss.Event{})
	m.Hover(0, "electronics")
	m.Hover(1, "computers")
	require.Equal(t, 3, m.Document().Len())

	m.Hover(0, "books")
	require.Len(t, m.Panels(), 1)
	require.Equal(t, 1, m.Document().Len())
	require.Empty(t, m.ActivePath())
}

func TestEmptyBranchOpensEmptyPanel(t *testing.T) {
	t.Parallel()

	m := catalogMenu(model.ModeNested, &commitRecorder{}, catalog())
	m.Open(dismiss.Event{})
	m.Hover(0, "electronics")
	m.Hover(1, "phones")

	panels := m.Panels()
	require.Len(t, panels, 3)
	require.Empty(t, panels[2].Rows)
	require.Equal(t, -1, panels[2].Focus)
}

func TestDisabledLeafIsFocusableButInert(t *testing.T) {
	t.Parallel()

	rec := &commitRecorder{}
	m := catalogMenu(model.ModeNested, rec, catalog())
	m.Open(dismiss.Event{})
	m.Hover(0, "electronics")
	m.Hover(1, "computers")

	require.True(t, m.HandleKey("right"))
	require.True(t, m.HandleKey("down"))
	depth, id, ok := m.Focused()
	require.True(t, ok)
	require.Equal(t, 2, depth)
	require.Equal(t, "desktop", id)

	m.HandleKey("enter")
	m.Activate(2, "desktop")
	require.Zero(t, rec.commits)
	require.True(t, m.IsOpen())
}

func TestCascadeDrillBackAndCommit(t *testing.T) {
	t.Parallel()

	roots := catalog()
	rec := &commitRecorder{}
	m := catalogMenu(model.ModeCascade, rec, roots)
	m.Open(dismiss.Event{})

	m.Activate(0, "electronics")
	panels := m.Panels()
	require.Len(t, panels, 1)
	require.Equal(t, 1, panels[0].Depth)
	require.True(t, panels[0].Rows[0].Back)
	require.Equal(t, "Electronics", panels[0].Rows[0].Item.Label)
	require.Equal(t, "computers", panels[0].Rows[1].Item.ID)
	require.Zero(t, rec.commits)

	m.Activate(1, "computers")
	require.True(t, m.HandleKey("left"))
	depth, id, ok := m.Focused()
	require.True(t, ok)
	require.Equal(t, 1, depth)
	require.Equal(t, "computers", id)

	m.Activate(1, "computers")
	m.Activate(2, "laptop")
	require.Equal(t, "laptop", rec.value)
	require.Equal(t, catalogPath(roots), rec.path)
	require.False(t, m.IsOpen())

	// reopening restores the level that holds the committed value
	m.Open(dismiss.Event{})
	panels = m.Panels()
	require.Len(t, panels, 1)
	require.Equal(t, 2, panels[0].Depth)
	require.True(t, panels[0].Rows[1].Selected)
	require.True(t, panels[0].Rows[1].Focused)
	require.Equal(t, "Computers", panels[0].Rows[0].Item.Label)
}

func TestCascadeBackRowActivates(t *testing.T) {
	t.Parallel()

	m := catalogMenu(model.ModeCascade, &commitRecorder{}, catalog())
	m.Open(dismiss.Event{})
	m.Activate(0, "electronics")
	m.Activate(1, BackID)

	panels := m.Panels()
	require.Equal(t, 0, panels[0].Depth)
	require.False(t, panels[0].Rows[0].Back)
	require.True(t, panels[0].Rows[0].Focused)
}

func TestControlledHierarchyDoesNotMutate(t *testing.T) {
	t.Parallel()

	roots := catalog()
	var emitted any
	m := New(Options{
		Viewport: position.Size{W: 80, H: 24},
		Explicit: &position.Point{X: 1, Y: 1},
		Hierarchy: &HierarchyOptions{
			Options:    roots,
			Value:      "books",
			HasValue:   true,
			ChildKeys:  []string{"categories", "products"},
			LabelField: "name",
			ValueField: "value",
			Mode:       model.ModeNested,
			OnChange:   func(value any, _ []any) { emitted = value },
		},
	})

	m.Open(dismiss.Event{})
	require.True(t, m.Panels()[0].Rows[1].Selected)
	require.True(t, m.Panels()[0].Rows[1].Focused)

	m.Hover(0, "electronics")
	m.Hover(1, "computers")
	m.Activate(2, "laptop")

	require.Equal(t, "laptop", emitted)
	value, _ := m.Value()
	require.Equal(t, "books", value)
	require.Equal(t, []any{roots[1]}, m.ValuePath())

	m.SetValue("laptop")
	require.Equal(t, catalogPath(roots), m.ValuePath())
}

type sku struct {
	Code string
	Tags any
}

func TestControlledStructValueWithSliceField(t *testing.T) {
	t.Parallel()

	roots := []any{
		map[string]any{"name": "Desk", "value": sku{Code: "d", Tags: []string{"wood"}}},
		map[string]any{"name": "Lamp", "value": sku{Code: "l", Tags: []string{"a"}}},
	}

	var m *Menu
	require.NotPanics(t, func() {
		m = New(Options{
			Viewport: position.Size{W: 80, H: 24},
			Explicit: &position.Point{X: 1, Y: 1},
			Hierarchy: &HierarchyOptions{
				Options:    roots,
				Value:      sku{Code: "l", Tags: []string{"a"}},
				HasValue:   true,
				ChildKeys:  []string{"items"},
				LabelField: "name",
				ValueField: "value",
				Mode:       model.ModeNested,
			},
		})
		m.Open(dismiss.Event{})
	})

	panels := m.Panels()
	require.Len(t, panels, 1)
	require.False(t, panels[0].Rows[0].Selected)
	require.True(t, panels[0].Rows[1].Selected)
	require.Equal(t, []any{roots[1]}, m.ValuePath())
}

func TestActivateResolvesDisambiguatedSiblings(t *testing.T) {
	t.Parallel()

	roots := []any{
		map[string]any{"name": "A", "value": "x"},
		map[string]any{"name": "B", "value": "x"},
		map[string]any{"name": "C", "value": "x#1"},
	}
	var path []any
	m := New(Options{
		Viewport: position.Size{W: 80, H: 24},
		Explicit: &position.Point{X: 1, Y: 1},
		Hierarchy: &HierarchyOptions{
			Options:    roots,
			ChildKeys:  []string{"items"},
			LabelField: "name",
			ValueField: "value",
			Mode:       model.ModeNested,
			OnChange:   func(_ any, p []any) { path = p },
		},
	})
	m.Open(dismiss.Event{})

	rows := m.Panels()[0].Rows
	require.Len(t, rows, 3)
	ids := []string{rows[0].Item.ID, rows[1].Item.ID, rows[2].Item.ID}
	require.ElementsMatch(t, []string{"x", "x#1", "x#1#1"}, ids)

	m.Activate(0, rows[2].Item.ID)
	require.Equal(t, []any{roots[2]}, path)
}

func flatItems() []model.MenuItem {
	return []model.MenuItem{
		{ID: "new", Label: "New"},
		{ID: "open", Label: "Open", Children: []model.MenuItem{
			{ID: "recent", Label: "Recent"},
			{ID: "browse", Label: "Browse"},
		}},
		model.DividerItem("sep"),
		{ID: "quit", Label: "Quit", Disabled: true},
	}
}

func TestFlatKeyboardTraversal(t *testing.T) {
	t.Parallel()

	var picked []string
	closes := 0
	m := New(Options{
		Items:    flatItems(),
		Anchor:   position.StaticAnchor{X: 0, Y: 0, W: 6, H: 1},
		Viewport: position.Size{W: 80, H: 24},
		OnSelect: func(item model.MenuItem) { picked = append(picked, item.ID) },
		OnClose:  func() { closes++ },
	})
	m.Open(dismiss.Event{})

	focused := func() string {
		_, id, ok := m.Focused()
		require.True(t, ok)
		return id
	}

	require.Equal(t, "new", focused())
	m.HandleKey("down")
	require.Equal(t, "open", focused())

	m.HandleKey("right")
	require.Len(t, m.Panels(), 2)
	require.Equal(t, "recent", focused())

	m.HandleKey("left")
	require.Len(t, m.Panels(), 1)
	require.Equal(t, "open", focused())

	m.HandleKey("down")
	require.Equal(t, "quit", focused(), "dividers are skipped")
	m.HandleKey("enter")
	require.True(t, m.IsOpen())
	require.Empty(t, picked)

	m.HandleKey("down")
	require.Equal(t, "new", focused(), "traversal wraps")
	m.HandleKey("end")
	require.Equal(t, "quit", focused())
	m.HandleKey("home")
	m.HandleKey("enter")

	require.Equal(t, []string{"new"}, picked)
	require.False(t, m.IsOpen())
	require.Equal(t, 1, closes)
	require.False(t, m.HandleKey("down"))
}

func TestFlatSubmenuCommit(t *testing.T) {
	t.Parallel()

	var picked model.MenuItem
	m := New(Options{
		Items:    flatItems(),
		Explicit: &position.Point{X: 4, Y: 4},
		Viewport: position.Size{W: 80, H: 24},
		OnSelect: func(item model.MenuItem) { picked = item },
	})
	m.Open(dismiss.Event{})
	m.Hover(0, "open")
	m.Activate(1, "browse")

	require.Equal(t, "browse", picked.ID)
	require.False(t, m.IsOpen())
}

func TestMultiSelectToggles(t *testing.T) {
	t.Parallel()

	var changes [][]string
	m := New(Options{
		Items: []model.MenuItem{
			{ID: "a", Label: "Alpha"},
			{ID: "b", Label: "Beta"},
			{ID: "c", Label: "Gamma", Disabled: true},
		},
		Viewport:          position.Size{W: 80, H: 24},
		Explicit:          &position.Point{},
		MultiSelect:       true,
		OnSelectionChange: func(ids []string) { changes = append(changes, ids) },
	})
	m.Open(dismiss.Event{})

	m.Toggle(0, "a")
	m.Toggle(0, "b")
	m.Toggle(0, "a")
	m.Toggle(0, "c")
	m.HandleKey(" ")

	require.Equal(t, [][]string{{"a"}, {"a", "b"}, {"b"}}, changes)
	require.Equal(t, []string{"b"}, m.Selected())
	require.True(t, m.IsOpen())

	rows := m.Panels()[0].Rows
	require.False(t, rows[0].Checked)
	require.True(t, rows[1].Checked)
	require.True(t, m.Panels()[0].Multi)
}

func TestControlledMultiSelect(t *testing.T) {
	t.Parallel()

	var last []string
	m := New(Options{
		Items:             []model.MenuItem{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Beta"}},
		Viewport:          position.Size{W: 80, H: 24},
		Explicit:          &position.Point{},
		MultiSelect:       true,
		Selected:          []string{"b"},
		OnSelectionChange: func(ids []string) { last = ids },
	})
	m.Open(dismiss.Event{})

	m.Activate(0, "a")
	require.Equal(t, []string{"b", "a"}, last)
	require.Equal(t, []string{"b"}, m.Selected())

	m.SetSelected(last)
	require.Equal(t, []string{"b", "a"}, m.Selected())
}

func TestTypeAheadFocusesFuzzyMatch(t *testing.T) {
	t.Parallel()

	m := New(Options{
		Items: []model.MenuItem{
			{ID: "copy", Label: "Copy"},
			{ID: "paste", Label: "Paste"},
			{ID: "delete", Label: "Delete"},
			{ID: "dup", Label: "Duplicate"},
		},
		Viewport: position.Size{W: 80, H: 24},
		Explicit: &position.Point{},
	})
	m.Open(dismiss.Event{})

	focusedID := func() string {
		_, id, _ := m.Focused()
		return id
	}

	require.True(t, m.HandleKey("u"))
	require.Equal(t, "dup", focusedID())
	m.HandleKey("p")
	require.Equal(t, "dup", focusedID())
	m.HandleKey("x")
	require.Equal(t, "dup", focusedID())
	m.HandleKey("y")
	require.Equal(t, "copy", focusedID())
}

func TestDocumentDrivenLifecycle(t *testing.T) {
	t.Parallel()

	doc := dismiss.NewDocument()
	anchor := position.Rect{X: 2, Y: 1, W: 10, H: 1}
	rec := &commitRecorder{}
	m := New(Options{
		ID:       "catalog",
		Document: doc,
		Anchor:   position.StaticAnchor(anchor),
		Offsets:  &position.Offsets{Gap: 1, Inset: 1},
		Viewport: position.Size{W: 120, H: 40},
		OnClose:  func() { rec.closes++ },
		Hierarchy: &HierarchyOptions{
			Options:    catalog(),
			ChildKeys:  []string{"categories", "products"},
			LabelField: "name",
			ValueField: "value",
			Mode:       model.ModeNested,
		},
	})
	doc.Register("trigger", func(ev dismiss.Event) {
		if ev.Kind != dismiss.EventPointerDown || !anchor.Contains(ev.X, ev.Y) {
			return
		}
		if m.IsOpen() {
			m.RequestClose()
			return
		}
		m.Open(ev)
	})

	doc.Dispatch(dismiss.Event{Kind: dismiss.EventPointerDown, X: 3, Y: 1})
	require.Equal(t, dismiss.StateJustOpened, m.State())

	m.Hover(0, "electronics")
	sub := m.Panels()[1]
	doc.Dispatch(dismiss.Event{Kind: dismiss.EventPointerDown, X: sub.Placement.Left + 1, Y: sub.Placement.Top + 1})
	require.Equal(t, dismiss.StateOpen, m.State())
	require.Len(t, m.Panels(), 2)

	depth, id, ok := m.ItemAt(sub.Placement.Left+1, sub.Placement.Top+1)
	require.True(t, ok)
	require.Equal(t, 1, depth)
	require.Equal(t, "computers", id)

	doc.Dispatch(dismiss.Event{Kind: dismiss.EventPointerDown, X: 100, Y: 30})
	require.False(t, m.IsOpen())
	require.Equal(t, 1, rec.closes)
	require.Equal(t, []string{"trigger"}, doc.Owners())

	// the trigger toggles: open, then close through the same click target
	doc.Dispatch(dismiss.Event{Kind: dismiss.EventPointerDown, X: 3, Y: 1})
	require.True(t, m.IsOpen())
	doc.Dispatch(dismiss.Event{Kind: dismiss.EventPointerDown, X: 3, Y: 1})
	require.False(t, m.IsOpen())
	require.Equal(t, 2, rec.closes)
	require.Equal(t, 1, doc.Len())
}

func TestEscapeClosesWholeTree(t *testing.T) {
	t.Parallel()

	rec := &commitRecorder{}
	m := catalogMenu(model.ModeNested, rec, catalog())
	m.Open(dismiss.Event{})
	m.Hover(0, "electronics")
	m.Hover(1, "computers")

	m.Document().Dispatch(dismiss.Event{Kind: dismiss.EventKeyDown, Key: "esc"})
	require.False(t, m.IsOpen())
	require.Equal(t, 1, rec.closes)
	require.Equal(t, 0, m.Document().Len())
}

func TestReopenOnlyRepositions(t *testing.T) {
	t.Parallel()

	left := 10
	m := New(Options{
		Items:    flatItems(),
		Anchor:   position.AnchorFunc(func() (position.Rect, bool) { return position.Rect{X: left, Y: 2, W: 4, H: 1}, true }),
		Offsets:  &position.Offsets{Gap: 1, Inset: 1},
		Viewport: position.Size{W: 80, H: 24},
	})
	m.Open(dismiss.Event{})
	m.HandleKey("down")

	left = 20
	m.Open(dismiss.Event{})
	require.Equal(t, 20, m.Placement().Left)
	require.Equal(t, 1, m.Document().Len())
	_, id, _ := m.Focused()
	require.Equal(t, "open", id, "reopening keeps focus")

	left = 30
	m.Document().Dispatch(dismiss.Event{Kind: dismiss.EventScroll})
	require.Equal(t, 30, m.Placement().Left)
}

func TestScrollingPanelKeepsFocusVisible(t *testing.T) {
	t.Parallel()

	items := make([]model.MenuItem, 10)
	for i := range items {
		items[i] = model.MenuItem{ID: fmt.Sprintf("i%d", i), Label: fmt.Sprintf("Item %d", i)}
	}
	m := New(Options{
		Items:     items,
		Explicit:  &position.Point{},
		Viewport:  position.Size{W: 80, H: 24},
		MaxHeight: 5,
	})
	m.Open(dismiss.Event{})
	m.HandleKey("end")

	panel := m.Panels()[0]
	require.Equal(t, 3, panel.Visible)
	require.Equal(t, 7, panel.Offset)
	require.Equal(t, 5, panel.Size.H)

	_, id, ok := m.ItemAt(1, 1)
	require.True(t, ok)
	require.Equal(t, "i7", id)
	_, _, ok = m.ItemAt(1, 0)
	require.False(t, ok)

	m.HandleKey("home")
	require.Equal(t, 0, m.Panels()[0].Offset)
}

func TestConfigurationDegradesWithWarnings(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf, Level: "warn"})
	require.NoError(t, err)

	m := New(Options{
		ID:       "broken",
		Viewport: position.Size{W: 80, H: 24},
		Logger:   log,
		Explicit: &position.Point{},
		Items:    []model.MenuItem{{ID: "x", Label: "X"}},
		Hierarchy: &HierarchyOptions{
			Options:    []any{map[string]any{"value": "only"}},
			ChildKeys:  []string{"children"},
			LabelField: "title",
			ValueField: "value",
		},
	})
	require.Equal(t, model.ModeNested, m.Mode())

	m.Open(dismiss.Event{})
	m.Open(dismiss.Event{})
	panels := m.Panels()
	require.Len(t, panels, 1)
	require.Len(t, panels[0].Rows, 1)
	require.False(t, panels[0].Rows[0].Branch)

	out := buf.String()
	assert.Contains(t, out, "using nested")
	assert.Contains(t, out, "items are ignored")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("label_field")))
}

func TestIntentsOnClosedMenuAreIgnored(t *testing.T) {
	t.Parallel()

	m := New(Options{Items: flatItems(), Viewport: position.Size{W: 80, H: 24}})
	m.Hover(0, "open")
	m.Activate(0, "new")
	m.Toggle(0, "new")
	m.Back()
	m.RequestClose()

	require.False(t, m.IsOpen())
	require.Nil(t, m.Panels())
	_, _, ok := m.ItemAt(0, 0)
	require.False(t, ok)
}
