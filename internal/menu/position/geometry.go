package position

import (
	"fmt"
	"strings"
)

// Default offsets, in cells.
const (
	DefaultGap   = 8
	DefaultInset = 8
)

// Point is a top/left coordinate.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair.
type Size struct {
	W int
	H int
}

// IsZero reports whether either dimension is empty.
func (s Size) IsZero() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an axis-aligned rectangle. Right and bottom edges are exclusive.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Within reports whether r lies entirely inside a viewport of size s.
func (r Rect) Within(s Size) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= s.W && r.Bottom() <= s.H
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// Align is the horizontal alignment preference relative to the anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign maps a definition value to an Align, defaulting to left.
func ParseAlign(value string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "left", "start":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right", "end":
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Offsets are the anchor gap and the minimum viewport inset.
type Offsets struct {
	Gap   int
	Inset int
}

// DefaultOffsets returns the standard 8-cell gap and inset.
func DefaultOffsets() Offsets {
	return Offsets{Gap: DefaultGap, Inset: DefaultInset}
}

// Constraints bound the measured panel size before placement.
// Zero values mean unconstrained.
type Constraints struct {
	MinWidth  int
	MaxHeight int
}

// Constrain applies the constraints to a measured size.
func (c Constraints) Constrain(s Size) Size {
	if c.MinWidth > 0 && s.W < c.MinWidth {
		s.W = c.MinWidth
	}
	if c.MaxHeight > 0 && s.H > c.MaxHeight {
		s.H = c.MaxHeight
	}
	return s
}

// Placement is the resolved top-left corner of a panel.
type Placement struct {
	Top          int
	Left         int
	FlippedAbove bool
	// FlippedLeft is set for nested submenus that opened on the parent's left.
	FlippedLeft bool
}

// Rect combines the placement with a panel size.
func (p Placement) Rect(s Size) Rect {
	return Rect{X: p.Left, Y: p.Top, W: s.W, H: s.H}
}
