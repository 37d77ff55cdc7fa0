package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popmenu/internal/menu/position"
	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Size     model.Size
	Disabled bool
	Focus    bool
	// Open shows the trigger's menu as expanded.
	Open bool
}

// Button is a menu trigger. Its rendered rectangle is the menu's anchor.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// WithSize sets the button size
func (b *Button) WithSize(size model.Size) *Button {
	b.options.Size = size
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// WithOpen sets whether the button's menu is showing
func (b *Button) WithOpen(open bool) *Button {
	b.options.Open = open
	return b
}

// View renders the button
func (b *Button) View() string {
	glyphs := GetTheme().Glyphs
	chevron := glyphs.TriggerDown
	if b.options.Open {
		chevron = glyphs.TriggerUp
	}
	return b.buildStyle().Render(b.label + " " + chevron)
}

// Size returns the rendered width and height.
func (b *Button) Size() position.Size {
	view := b.View()
	return position.Size{W: lipgloss.Width(view), H: lipgloss.Height(view)}
}

// buildStyle calculates the button style based on current options
func (b *Button) buildStyle() lipgloss.Style {
	style := Style(lipgloss.NewStyle(), Border(BorderVariantRounded), RowPadding(b.options.Size))

	switch {
	case b.options.Disabled:
		style = Style(style, Muted(PaletteNeutral), Faint())
		style = style.BorderForeground(GetTheme().Palette.Neutral.Muted)
	case b.options.Focus || b.options.Open:
		style = Style(style, Foreground(PalettePrimary), Bold())
		style = style.BorderForeground(GetTheme().Palette.Primary.Base)
	default:
		style = Style(style, BorderColour(PaletteNeutral))
	}
	return style
}

// ButtonGroup represents a horizontal toolbar of triggers
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: 1,
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// Buttons returns the group's buttons.
func (bg *ButtonGroup) Buttons() []*Button {
	return bg.buttons
}

// Bounds returns each button's rectangle when the group is drawn at origin.
func (bg *ButtonGroup) Bounds(origin position.Point) []position.Rect {
	rects := make([]position.Rect, len(bg.buttons))
	x := origin.X
	for i, button := range bg.buttons {
		size := button.Size()
		rects[i] = position.Rect{X: x, Y: origin.Y, W: size.W, H: size.H}
		x += size.W + bg.spacing
	}
	return rects
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	views := make([]string, 0, len(bg.buttons)*2)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 {
			views = append(views, spacer)
		}
		views = append(views, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
