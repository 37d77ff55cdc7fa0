// Package menu composes the hierarchy walker, selection models, position
// tracker and dismissal controller into one anchored popup menu.
//
// A Menu is headless: it exposes the visible panels and accepts user intents.
// Rendering lives in internal/tui/components. Every method must be called from
// the UI event loop.
package menu

import (
	"strconv"
	"sync/atomic"

	"github.com/alexisbeaulieu97/popmenu/internal/logger"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/dismiss"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/hierarchy"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/selection"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
	apperrors "github.com/alexisbeaulieu97/popmenu/pkg/errors"
)

// BackID is the id of the synthetic row that leads out of a cascade level.
const BackID = "__back__"

var instances atomic.Uint64

// HierarchyOptions switches the menu to hierarchy mode.
type HierarchyOptions struct {
	Options []any
	// Value is the controlled value; HasValue makes the menu controlled.
	Value    any
	HasValue bool

	ChildKeys     []string
	LabelField    string
	ValueField    string
	DisabledField string

	OnChange func(value any, path []any)
	// Mode is ModeCascade or ModeNested. ModeFlat is treated as nested.
	Mode model.Mode
}

// Options is the construction surface of a Menu.
type Options struct {
	ID    string
	Items []model.MenuItem

	// OnClose runs once per close of the root panel.
	OnClose func()
	// OnSelect receives flat single-select commits.
	OnSelect func(item model.MenuItem)

	Anchor    position.AnchorRef
	Explicit  *position.Point
	Align     position.Align
	Size      model.Size
	MaxHeight int
	MinWidth  int
	// Offsets overrides the default 8-cell gap and inset.
	Offsets  *position.Offsets
	Viewport position.Size

	MultiSelect bool
	// Selected makes multi-select controlled when non-nil.
	Selected          []string
	OnSelectionChange func(ids []string)

	Hierarchy *HierarchyOptions

	Document *dismiss.Document
	Logger   *logger.Logger
}

// Metrics describe where rows sit inside a rendered panel.
type Metrics struct {
	// RowTop is the offset of the first row from the panel's top edge.
	RowTop int
	// RowBottom is the chrome below the last row.
	RowBottom int
	// RowHeight is the height of one row in cells.
	RowHeight int
}

// DefaultMetrics matches a bordered panel with one-line rows.
func DefaultMetrics() Metrics {
	return Metrics{RowTop: 1, RowBottom: 1, RowHeight: 1}
}

type level struct {
	depth     int
	entries   []entry
	focus     int
	anchorRow int
	ctrl      *dismiss.Controller

	size      position.Size
	measured  bool
	metrics   Metrics
	placement position.Placement
	// offset is the first visible row when the panel is height-constrained.
	offset int
}

// Menu is one anchored popup menu instance.
type Menu struct {
	id   string
	opts Options
	log  *logger.Logger
	mode model.Mode

	src    source
	walker *hierarchy.Walker
	roots  []any

	single *selection.Single
	multi  *selection.Multi
	active selection.ActivePath

	doc     *dismiss.Document
	root    *dismiss.Controller
	tracker *position.Tracker

	levels      []*level
	focusLevel  int
	viewport    position.Size
	offsets     position.Offsets
	constraints position.Constraints
	typeahead   string
	warned      map[string]bool
}

// New builds a closed menu. Invalid configuration is never fatal: it is
// logged as a ConfigError and the menu degrades to something usable.
func New(opts Options) *Menu {
	id := opts.ID
	if id == "" {
		id = "menu-" + strconv.FormatUint(instances.Add(1), 10)
	}
	m := &Menu{
		id:          id,
		opts:        opts,
		log:         opts.Logger.With("menu", id),
		doc:         opts.Document,
		viewport:    opts.Viewport,
		offsets:     position.DefaultOffsets(),
		constraints: position.Constraints{MinWidth: opts.MinWidth, MaxHeight: opts.MaxHeight},
		warned:      make(map[string]bool),
	}
	if opts.Offsets != nil {
		m.offsets = *opts.Offsets
	}
	if m.doc == nil {
		m.doc = dismiss.NewDocument()
	}

	m.configureSource()
	m.configureSelection()

	m.root = dismiss.New(dismiss.Options{
		ID:           id,
		Document:     m.doc,
		Inside:       m.insideRoot,
		OnClose:      m.rootClosed,
		OnReposition: m.onReposition,
		Logger:       m.log,
	})
	m.tracker = position.NewTracker(position.TrackerOptions{
		Anchor:      opts.Anchor,
		Explicit:    opts.Explicit,
		Align:       opts.Align,
		Offsets:     m.offsets,
		Constraints: m.constraints,
		Viewport:    opts.Viewport,
		Logger:      m.log,
	})
	if opts.Anchor != nil && opts.Explicit != nil {
		m.log.Debug("explicit position overrides the anchor")
	}
	return m
}

func (m *Menu) configureSource() {
	h := m.opts.Hierarchy
	if h == nil {
		m.mode = model.ModeFlat
		m.src = flatSource{items: m.opts.Items}
		if dup := model.DuplicateID(m.opts.Items); dup != "" {
			m.configWarn("items", "duplicate sibling id "+strconv.Quote(dup))
		}
		return
	}

	m.mode = h.Mode
	if m.mode == model.ModeFlat {
		m.mode = model.ModeNested
		m.configWarn("mode", "hierarchy menus are cascade or nested; using nested")
	}
	if len(m.opts.Items) > 0 {
		m.configWarn("items", "items are ignored in hierarchy mode")
	}
	if len(h.ChildKeys) == 0 {
		m.configWarn("child_keys", "no child keys; every option is a leaf")
	}
	m.walker = hierarchy.New(hierarchy.Config{
		ChildKeys:     h.ChildKeys,
		LabelField:    h.LabelField,
		ValueField:    h.ValueField,
		DisabledField: h.DisabledField,
	})
	m.roots = h.Options
	m.src = treeSource{walker: m.walker, roots: m.roots}
}

func (m *Menu) configureSelection() {
	if m.opts.MultiSelect {
		if m.opts.Hierarchy != nil {
			m.configWarn("multi_select", "multi-select is not supported in hierarchy mode")
		} else {
			m.multi = selection.NewMulti(selection.MultiOptions{
				Selected: m.opts.Selected,
				OnChange: m.opts.OnSelectionChange,
			})
		}
	}

	h := m.opts.Hierarchy
	if h == nil {
		return
	}
	var onCommit func(selection.Commit)
	if h.OnChange != nil {
		onCommit = func(c selection.Commit) { h.OnChange(c.Value, c.Path) }
	}
	m.single = selection.NewSingle(selection.SingleOptions{
		Controlled: h.HasValue,
		OnCommit:   onCommit,
	})
	if h.HasValue {
		m.SetValue(h.Value)
	}
}

func (m *Menu) configWarn(option, message string) {
	key := option + ":" + message
	if m.warned[key] {
		return
	}
	m.warned[key] = true
	m.log.WarnErr(apperrors.NewConfigError(m.id, option, message), "menu configuration degraded")
}

// ID returns the menu's owner id on the document.
func (m *Menu) ID() string { return m.id }

// Mode returns the effective presentation mode.
func (m *Menu) Mode() model.Mode { return m.mode }

// Size returns the configured row size.
func (m *Menu) Size() model.Size { return m.opts.Size }

// State returns the root panel's lifecycle state.
func (m *Menu) State() dismiss.State { return m.root.State() }

// IsOpen reports whether the root panel is open.
func (m *Menu) IsOpen() bool { return m.root.IsOpen() }

// Document returns the event source the menu listens on.
func (m *Menu) Document() *dismiss.Document { return m.doc }

// Placement returns the root panel's last placement.
func (m *Menu) Placement() position.Placement { return m.tracker.Placement() }

// ActivePath returns the expanded branch indices.
func (m *Menu) ActivePath() []int { return m.active.Indices() }

// Value returns the committed hierarchy value.
func (m *Menu) Value() (any, bool) {
	if m.single == nil {
		return nil, false
	}
	return m.single.Value()
}

// ValuePath returns the node path of the committed hierarchy value.
func (m *Menu) ValuePath() []any {
	if m.single == nil {
		return nil
	}
	return m.single.Path()
}

// SetValue syncs a controlled hierarchy value. A value not found in the
// options is kept with an empty path.
func (m *Menu) SetValue(value any) {
	if m.single == nil {
		return
	}
	nodes, _, ok := m.walker.PathTo(m.roots, value)
	if !ok {
		m.log.With("value", value).Debug("value not found in hierarchy options")
	}
	m.single.SetValue(value, nodes)
}

// Selected returns the multi-select set in insertion order.
func (m *Menu) Selected() []string {
	if m.multi == nil {
		return nil
	}
	return m.multi.Selected()
}

// SetSelected syncs a controlled multi-select set.
func (m *Menu) SetSelected(ids []string) {
	if m.multi != nil {
		m.multi.SetSelected(ids)
	}
}
