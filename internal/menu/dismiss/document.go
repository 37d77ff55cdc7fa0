package dismiss

import (
	"sort"
	"strings"
	"time"
)

// EventKind classifies document-level events.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventKeyDown
	EventResize
	EventScroll
)

func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "keydown"
	case EventResize:
		return "resize"
	case EventScroll:
		return "scroll"
	default:
		return "pointerdown"
	}
}

// Event is one input observed by the document. Seq is assigned by Dispatch
// and strictly increases; it is what separates the opening event from later
// ones.
type Event struct {
	Seq  uint64
	Kind EventKind
	X    int
	Y    int
	Key  string
	At   time.Time
}

// IsEscape reports whether the event is an Escape keydown.
func (e Event) IsEscape() bool {
	if e.Kind != EventKeyDown {
		return false
	}
	switch strings.ToLower(e.Key) {
	case "esc", "escape":
		return true
	}
	return false
}

// Listener receives dispatched events.
type Listener func(Event)

// Token identifies one registration. Each menu instance holds at most one
// live token per open/close cycle.
type Token struct {
	Owner string
	n     uint64
}

type registration struct {
	token    Token
	listener Listener
}

// Document is the shared event source that menus listen on. It is not safe
// for concurrent use; it lives on the UI event loop.
type Document struct {
	seq     uint64
	nextTok uint64
	regs    map[Token]registration
	order   []Token
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{regs: make(map[Token]registration)}
}

// Register adds a listener under owner and returns its token.
func (d *Document) Register(owner string, l Listener) Token {
	d.nextTok++
	tok := Token{Owner: owner, n: d.nextTok}
	d.regs[tok] = registration{token: tok, listener: l}
	d.order = append(d.order, tok)
	return tok
}

// Unregister removes the listener for tok and reports whether it existed.
func (d *Document) Unregister(tok Token) bool {
	if _, ok := d.regs[tok]; !ok {
		return false
	}
	delete(d.regs, tok)
	for i, existing := range d.order {
		if existing == tok {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Dispatch stamps ev with the next sequence number and delivers it to every
// listener registered before the call, in registration order. Listeners
// removed during delivery are skipped.
func (d *Document) Dispatch(ev Event) Event {
	d.seq++
	ev.Seq = d.seq
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	snapshot := append([]Token(nil), d.order...)
	for _, tok := range snapshot {
		reg, ok := d.regs[tok]
		if !ok {
			continue
		}
		reg.listener(ev)
	}
	return ev
}

// Seq returns the sequence number of the last dispatched event.
func (d *Document) Seq() uint64 {
	return d.seq
}

// Len returns the number of live registrations.
func (d *Document) Len() int {
	return len(d.regs)
}

// Owners lists the menu ids that currently hold a registration, sorted.
func (d *Document) Owners() []string {
	seen := make(map[string]struct{}, len(d.regs))
	for tok := range d.regs {
		seen[tok.Owner] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for owner := range seen {
		out = append(out, owner)
	}
	sort.Strings(out)
	return out
}

// Active returns the live tokens held by owner.
func (d *Document) Active(owner string) []Token {
	var out []Token
	for _, tok := range d.order {
		if tok.Owner == owner {
			out = append(out, tok)
		}
	}
	return out
}
