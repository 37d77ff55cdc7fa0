package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	theme "github.com/alexisbeaulieu97/popmenu/internal/components"
	"github.com/alexisbeaulieu97/popmenu/internal/config"
	"github.com/alexisbeaulieu97/popmenu/internal/logger"
	"github.com/alexisbeaulieu97/popmenu/internal/menu"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/dismiss"
	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statusHeight  = 5
	maxStatus     = 50
)

var (
	// toolbarOrigin is where the first trigger button is drawn.
	toolbarOrigin = position.Point{X: 1, Y: 1}
	// terminalOffsets apply when a definition sets neither gap nor inset.
	terminalOffsets = position.Offsets{Gap: 0, Inset: 1}
)

type trigger struct {
	def  config.Menu
	menu *menu.Menu
}

// session holds the state menu callbacks write to. Model values share it.
type session struct {
	cfg      *config.Config
	log      *logger.Logger
	doc      *dismiss.Document
	triggers []*trigger

	focus  int
	open   int
	width  int
	height int

	status []string
	events viewport.Model
}

// Model is the Bubbletea state for the interactive menu demo.
type Model struct {
	s        *session
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel builds a toolbar with one trigger per menu in cfg. Every menu
// shares one document so that opening one dismisses the others.
func NewModel(cfg *config.Config, log *logger.Logger) Model {
	if log == nil {
		log = logger.Discard()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	if selected, ok := theme.ThemeByName(cfg.Theme); ok {
		theme.SetTheme(selected)
	}

	s := &session{
		cfg:    cfg,
		log:    log.With("component", "tui"),
		doc:    dismiss.NewDocument(),
		open:   -1,
		width:  defaultWidth,
		height: defaultHeight,
		events: viewport.New(defaultWidth, statusHeight),
	}

	for i, def := range cfg.Menus {
		s.triggers = append(s.triggers, s.newTrigger(i, def))
	}

	h := help.New()
	h.Width = defaultWidth

	return Model{s: s, keys: newKeyMap(), help: h}
}

func (s *session) newTrigger(index int, def config.Menu) *trigger {
	t := &trigger{def: def}

	opts := def.MenuOptions()
	if opts.Offsets == nil {
		opts.Offsets = &terminalOffsets
	}
	opts.Document = s.doc
	opts.Logger = s.log
	opts.Viewport = position.Size{W: s.width, H: s.height}
	opts.Anchor = position.AnchorFunc(func() (position.Rect, bool) {
		bounds := s.toolbar().Bounds(toolbarOrigin)
		if index >= len(bounds) {
			return position.Rect{}, false
		}
		return bounds[index], true
	})
	opts.OnClose = func() {
		if s.open == index {
			s.open = -1
		}
		s.focus = index
		s.record(def.ID, "closed")
	}
	opts.OnSelect = func(item model.MenuItem) {
		s.record(def.ID, "selected "+item.Label)
	}
	opts.OnSelectionChange = func(ids []string) {
		if def.Selected != nil {
			t.menu.SetSelected(ids)
		}
		s.record(def.ID, "selection ["+strings.Join(ids, ", ")+"]")
	}
	if opts.Hierarchy != nil {
		controlled := opts.Hierarchy.HasValue
		opts.Hierarchy.OnChange = func(value any, path []any) {
			if controlled {
				t.menu.SetValue(value)
			}
			s.record(def.ID, fmt.Sprintf("value %v at depth %d", value, len(path)))
		}
	}

	t.menu = menu.New(opts)
	return t
}

// record appends an outcome to the status log.
func (s *session) record(menuID, outcome string) {
	line := menuID + ": " + outcome
	s.status = append(s.status, line)
	if len(s.status) > maxStatus {
		s.status = s.status[len(s.status)-maxStatus:]
	}
	s.events.SetContent(strings.Join(s.status, "\n"))
	s.events.GotoBottom()
	s.log.WithFields(map[string]any{"menu": menuID, "outcome": outcome}).Info("menu event")
}

// openTrigger returns the trigger whose menu is showing.
func (s *session) openTrigger() *trigger {
	if s.open < 0 || s.open >= len(s.triggers) {
		return nil
	}
	if t := s.triggers[s.open]; t.menu.IsOpen() {
		return t
	}
	return nil
}

func (s *session) toolbar() *theme.ButtonGroup {
	group := theme.NewButtonGroup()
	for i, t := range s.triggers {
		size, _ := model.ParseSize(t.def.Size)
		button := theme.NewButton(t.def.Label, theme.ButtonOptions{Size: size}).
			WithFocus(i == s.focus).
			WithDisabled(t.def.Disabled).
			WithOpen(t.menu != nil && t.menu.IsOpen())
		group.AddButton(button)
	}
	return group
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Status returns the outcome log, oldest first.
func (m Model) Status() []string {
	return append([]string(nil), m.s.status...)
}

// FocusedTrigger returns the index of the focused toolbar button.
func (m Model) FocusedTrigger() int {
	return m.s.focus
}

// OpenMenu returns the id of the open menu.
func (m Model) OpenMenu() (string, bool) {
	if m.s.open < 0 {
		return "", false
	}
	return m.s.triggers[m.s.open].def.ID, true
}

// Menu returns the engine behind a trigger.
func (m Model) Menu(id string) (*menu.Menu, bool) {
	for _, t := range m.s.triggers {
		if t.def.ID == id {
			return t.menu, true
		}
	}
	return nil, false
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
