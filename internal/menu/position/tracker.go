package position

import (
	"github.com/alexisbeaulieu97/popmenu/internal/logger"
	apperrors "github.com/alexisbeaulieu97/popmenu/pkg/errors"
)

// AnchorRef locates the trigger element. ok is false once the anchor is gone.
type AnchorRef interface {
	Rect() (Rect, bool)
}

// AnchorFunc adapts a function to AnchorRef.
type AnchorFunc func() (Rect, bool)

// Rect implements AnchorRef.
func (f AnchorFunc) Rect() (Rect, bool) { return f() }

// StaticAnchor is an anchor that never moves or unmounts.
type StaticAnchor Rect

// Rect implements AnchorRef.
func (s StaticAnchor) Rect() (Rect, bool) { return Rect(s), true }

// Trigger names why a placement is being recomputed.
type Trigger int

const (
	TriggerOpen Trigger = iota
	TriggerResize
	TriggerScroll
	TriggerMeasure
)

func (t Trigger) String() string {
	switch t {
	case TriggerResize:
		return "resize"
	case TriggerScroll:
		return "scroll"
	case TriggerMeasure:
		return "measure"
	default:
		return "open"
	}
}

// TrackerOptions configures a Tracker.
type TrackerOptions struct {
	Anchor      AnchorRef
	Explicit    *Point
	Align       Align
	Offsets     Offsets
	Constraints Constraints
	Viewport    Size
	Logger      *logger.Logger
}

// Tracker keeps the last good placement of one panel and recomputes it on
// open, resize and scroll. A pass that cannot run leaves the last placement
// in place.
type Tracker struct {
	anchor      AnchorRef
	explicit    *Point
	align       Align
	offsets     Offsets
	constraints Constraints
	viewport    Size
	panel       Size

	placement Placement
	computed  bool
	warned    bool
	log       *logger.Logger
}

// NewTracker creates a Tracker.
func NewTracker(opts TrackerOptions) *Tracker {
	return &Tracker{
		anchor:      opts.Anchor,
		explicit:    opts.Explicit,
		align:       opts.Align,
		offsets:     opts.Offsets,
		constraints: opts.Constraints,
		viewport:    opts.Viewport,
		log:         opts.Logger,
	}
}

// SetViewport records the latest viewport size.
func (t *Tracker) SetViewport(s Size) { t.viewport = s }

// Viewport returns the last recorded viewport size.
func (t *Tracker) Viewport() Size { return t.viewport }

// SetPanelSize records the measured panel size.
func (t *Tracker) SetPanelSize(s Size) { t.panel = s }

// PanelSize returns the constrained panel size used for placement.
func (t *Tracker) PanelSize() Size { return t.constraints.Constrain(t.panel) }

// SetExplicit switches to (or away from, with nil) an explicit position.
func (t *Tracker) SetExplicit(p *Point) { t.explicit = p }

// Placement returns the last resolved placement.
func (t *Tracker) Placement() Placement { return t.placement }

// Computed reports whether any pass has succeeded yet.
func (t *Tracker) Computed() bool { return t.computed }

// Rect returns the panel rectangle at its last placement.
func (t *Tracker) Rect() Rect { return t.placement.Rect(t.PanelSize()) }

// Recompute resolves a new placement. A non-nil error is a LayoutError
// describing a skipped pass; the previous placement stays current.
func (t *Tracker) Recompute(trigger Trigger) (Placement, error) {
	if t.viewport.IsZero() {
		return t.placement, apperrors.NewLayoutError(trigger.String(), "viewport has no size")
	}

	in := Input{
		Panel:       t.panel,
		Viewport:    t.viewport,
		Align:       t.align,
		Explicit:    t.explicit,
		Offsets:     t.offsets,
		Constraints: t.constraints,
	}

	switch {
	case t.explicit != nil:
	case t.anchor != nil:
		rect, ok := t.anchor.Rect()
		if !ok {
			return t.placement, apperrors.NewLayoutError(trigger.String(), "anchor is no longer mounted")
		}
		in.Anchor = rect
	default:
		if !t.warned {
			t.warned = true
			t.log.Warn("menu has neither an anchor nor an explicit position; placing at 0,0")
		}
		in.Explicit = &Point{}
	}

	t.placement = Resolve(in)
	t.computed = true
	return t.placement, nil
}
