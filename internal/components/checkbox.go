package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Checkbox is the multi-select marker drawn in front of a menu row.
type Checkbox struct {
	Checked  bool
	Disabled bool
	// OnChange receives the next checked state. It is not called for a
	// disabled checkbox.
	OnChange func(checked bool)
}

// NewCheckbox creates a checkbox.
func NewCheckbox(checked, disabled bool, onChange func(bool)) *Checkbox {
	return &Checkbox{Checked: checked, Disabled: disabled, OnChange: onChange}
}

// Toggle requests the opposite state. The checkbox does not flip itself;
// the owner pushes the new state back.
func (c *Checkbox) Toggle() {
	if c.Disabled || c.OnChange == nil {
		return
	}
	c.OnChange(!c.Checked)
}

// View renders the checkbox
func (c *Checkbox) View() string {
	theme := GetTheme()
	glyph := theme.Glyphs.Unchecked
	style := lipgloss.NewStyle()
	if c.Checked {
		glyph = theme.Glyphs.Checked
		style = Style(style, Foreground(PaletteSuccess))
	}
	if c.Disabled {
		style = Style(style, Muted(PaletteNeutral), Faint())
	}
	return style.Render(glyph)
}
