// Package position places a floating panel against an anchor rectangle
// inside the viewport.
//
// Resolve is pure: identical inputs always produce identical placements.
// Alignment is a preference; the viewport edges are hard constraints.
package position

// Input gathers everything Resolve needs.
type Input struct {
	Anchor   Rect
	Panel    Size
	Viewport Size
	Align    Align
	// Explicit bypasses the anchor, alignment and flip logic (context menus).
	Explicit    *Point
	Offsets     Offsets
	Constraints Constraints
}

// Resolve computes the panel placement.
func Resolve(in Input) Placement {
	panel := in.Constraints.Constrain(in.Panel)

	if in.Explicit != nil {
		p := Placement{Top: in.Explicit.Y, Left: in.Explicit.X}
		p.Left = clampHorizontal(p.Left, panel.W, in.Viewport.W, in.Offsets.Inset)
		p.Top = clampVertical(p.Top, panel.H, in.Viewport.H)
		return p
	}

	gap := in.Offsets.Gap
	p := Placement{Top: in.Anchor.Bottom() + gap}
	if p.Top+panel.H > in.Viewport.H && in.Anchor.Y-panel.H-gap > 0 {
		p.Top = in.Anchor.Y - gap - panel.H
		p.FlippedAbove = true
	}

	switch in.Align {
	case AlignRight:
		p.Left = in.Anchor.Right() - panel.W
	case AlignCenter:
		p.Left = in.Anchor.X + (in.Anchor.W-panel.W)/2
	default:
		p.Left = in.Anchor.X
	}

	p.Left = clampHorizontal(p.Left, panel.W, in.Viewport.W, in.Offsets.Inset)
	p.Top = clampVertical(p.Top, panel.H, in.Viewport.H)
	return p
}

// ResolveSubmenu places a nested submenu beside the row that opened it,
// preferring the parent's right side and flipping left on overflow.
func ResolveSubmenu(parent Rect, row Rect, panel Size, viewport Size, inset int) Placement {
	p := Placement{Top: row.Y, Left: parent.Right()}
	if p.Left+panel.W > viewport.W && parent.X-panel.W >= 0 {
		p.Left = parent.X - panel.W
		p.FlippedLeft = true
	}
	if !p.FlippedLeft {
		p.Left = clampHorizontal(p.Left, panel.W, viewport.W, inset)
	}
	p.Top = clampVertical(p.Top, panel.H, viewport.H)
	return p
}

// clampHorizontal keeps the inset margin on both edges.
func clampHorizontal(left, width, viewportW, inset int) int {
	if left+width > viewportW {
		left = viewportW - width - inset
	}
	if left < 0 {
		left = inset
	}
	// The inset cannot be honoured when the panel is nearly as wide as the
	// viewport; staying inside wins.
	if left+width > viewportW {
		left = max(viewportW-width, 0)
	}
	return left
}

func clampVertical(top, height, viewportH int) int {
	if top+height > viewportH {
		top = viewportH - height
	}
	if top < 0 {
		top = 0
	}
	return top
}
