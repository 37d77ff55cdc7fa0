// Package dismiss runs the open/close lifecycle of a popup: the grace window
// that keeps the opening click from dismissing the panel, outside-pointer and
// Escape dismissal, and cascade-closing of nested submenus.
//
// The grace window is an event-sequence marker rather than a timer: the
// controller ignores the event that opened it and becomes fully open on the
// first later event.
package dismiss

import (
	"github.com/alexisbeaulieu97/popmenu/internal/logger"
)

// State is the lifecycle state of one menu instance.
type State int

const (
	StateClosed State = iota
	StateJustOpened
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateJustOpened:
		return "just_opened"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Reason records why a controller closed.
type Reason int

const (
	ReasonRequested Reason = iota
	ReasonOutside
	ReasonEscape
	ReasonCommit
	ReasonParent
)

func (r Reason) String() string {
	switch r {
	case ReasonOutside:
		return "outside"
	case ReasonEscape:
		return "escape"
	case ReasonCommit:
		return "commit"
	case ReasonParent:
		return "parent"
	default:
		return "requested"
	}
}

// Options configures a Controller.
type Options struct {
	ID       string
	Document *Document
	// Inside reports whether a pointer at (x, y) belongs to this menu, i.e.
	// hits its panel or its anchor.
	Inside func(x, y int) bool
	// OnClose runs exactly once per close.
	OnClose func(Reason)
	// OnReposition runs on resize/scroll while open and on re-open requests.
	OnReposition func(Event)
	Logger       *logger.Logger
}

// Controller is the per-instance dismissal state machine.
type Controller struct {
	id           string
	doc          *Document
	inside       func(x, y int) bool
	onClose      func(Reason)
	onReposition func(Event)
	log          *logger.Logger

	state      State
	marker     uint64
	token      Token
	registered bool

	parent   *Controller
	children []*Controller
}

// New creates a closed controller. A nil Document gets a private one.
func New(opts Options) *Controller {
	doc := opts.Document
	if doc == nil {
		doc = NewDocument()
	}
	return &Controller{
		id:           opts.ID,
		doc:          doc,
		inside:       opts.Inside,
		onClose:      opts.OnClose,
		onReposition: opts.OnReposition,
		log:          opts.Logger,
	}
}

// Child creates a descendant controller for a nested submenu. Closing c
// closes every descendant first.
func (c *Controller) Child(opts Options) *Controller {
	if opts.Document == nil {
		opts.Document = c.doc
	}
	if opts.Logger == nil {
		opts.Logger = c.log
	}
	child := New(opts)
	child.parent = c
	c.children = append(c.children, child)
	return child
}

// Release detaches a closed child so it no longer participates in hit tests.
func (c *Controller) Release(child *Controller) {
	child.CloseWith(ReasonParent)
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// ID returns the owner id used for listener registration.
func (c *Controller) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the controller is JustOpened or Open.
func (c *Controller) IsOpen() bool { return c.state != StateClosed }

// Document returns the event source the controller listens on.
func (c *Controller) Document() *Document { return c.doc }

// Open starts the lifecycle. trigger is the event that caused the open; a
// zero Seq means a programmatic open tagged with the document's current
// sequence. Opening an already open controller only repositions.
func (c *Controller) Open(trigger Event) {
	if c.state != StateClosed {
		if c.onReposition != nil {
			c.onReposition(trigger)
		}
		return
	}

	c.marker = trigger.Seq
	if c.marker == 0 {
		c.marker = c.doc.Seq()
	}
	c.state = StateJustOpened
	c.token = c.doc.Register(c.id, c.handle)
	c.registered = true
	c.log.Debug("menu opened")
}

// Close closes with ReasonRequested.
func (c *Controller) Close() {
	c.CloseWith(ReasonRequested)
}

// CloseWith closes descendants deepest-first, removes the listener, resets to
// Closed and notifies OnClose. Closing a closed controller does nothing.
func (c *Controller) CloseWith(reason Reason) {
	if c.state == StateClosed {
		return
	}
	for i := len(c.children) - 1; i >= 0; i-- {
		c.children[i].CloseWith(ReasonParent)
	}
	if c.registered {
		c.doc.Unregister(c.token)
		c.registered = false
	}
	c.state = StateClosed
	c.log.With("reason", reason.String()).Debug("menu closed")
	if c.onClose != nil {
		c.onClose(reason)
	}
}

// Contains reports whether (x, y) hits this menu or any open descendant.
func (c *Controller) Contains(x, y int) bool {
	if c.inside != nil && c.inside(x, y) {
		return true
	}
	for _, child := range c.children {
		if child.IsOpen() && child.Contains(x, y) {
			return true
		}
	}
	return false
}

func (c *Controller) handle(ev Event) {
	switch c.state {
	case StateClosed:
		return
	case StateJustOpened:
		if ev.Seq <= c.marker {
			return
		}
		c.state = StateOpen
	}

	switch ev.Kind {
	case EventPointerDown:
		if !c.Contains(ev.X, ev.Y) {
			c.CloseWith(ReasonOutside)
		}
	case EventKeyDown:
		if ev.IsEscape() {
			c.CloseWith(ReasonEscape)
		}
	case EventResize, EventScroll:
		if c.onReposition != nil {
			c.onReposition(ev)
		}
	}
}
