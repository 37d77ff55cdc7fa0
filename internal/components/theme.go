package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Success ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Spacing is the horizontal row padding per menu size. Size never changes
// behaviour, only these values.
type Spacing struct {
	Small  int
	Medium int
	Large  int
}

// RowPadding returns the horizontal padding for size.
func (s Spacing) RowPadding(size model.Size) int {
	switch size {
	case model.SizeSmall:
		return s.Small
	case model.SizeLarge:
		return s.Large
	default:
		return s.Medium
	}
}

// Glyphs are the characters drawn around menu rows.
type Glyphs struct {
	Chevron     string
	Back        string
	Checked     string
	Unchecked   string
	Divider     string
	Selected    string
	Unselected  string
	TriggerDown string
	TriggerUp   string
}

// Theme represents the global styling theme for components
type Theme struct {
	Name    string
	Palette Palette
	Borders BorderSet
	Spacing Spacing
	Glyphs  Glyphs
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if theme.Spacing == (Spacing{}) {
		theme.Spacing = Spacing{Small: 0, Medium: 1, Large: 2}
	}
	if theme.Glyphs == (Glyphs{}) {
		theme.Glyphs = defaultGlyphs()
	}
	return theme
}

func defaultGlyphs() Glyphs {
	return Glyphs{
		Chevron:     "›",
		Back:        "‹",
		Checked:     "[x]",
		Unchecked:   "[ ]",
		Divider:     "─",
		Selected:    "●",
		Unselected:  " ",
		TriggerDown: "▾",
		TriggerUp:   "▴",
	}
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return normalizeTheme(Theme{
		Name: "default",
		Palette: Palette{
			Primary: ColourSet{
				Base:     ac("#3b82f6", "#60a5fa"),
				OnBase:   ac("#f8fafc", "#0b1120"),
				Muted:    ac("#2563eb", "#1d4ed8"),
				Contrast: ac("#facc15", "#ca8a04"),
			},
			Surface: ColourSet{
				Base:     ac("#ffffff", "#111827"),
				OnBase:   ac("#111827", "#f9fafb"),
				Muted:    ac("#f3f4f6", "#1f2937"),
				Contrast: ac("#e5e7eb", "#374151"),
			},
			Success: ColourSet{
				Base:     ac("#10b981", "#34d399"),
				OnBase:   ac("#f8fafc", "#022c22"),
				Muted:    ac("#059669", "#047857"),
				Contrast: ac("#064e3b", "#d1fae5"),
			},
			Danger: ColourSet{
				Base:     ac("#ef4444", "#f87171"),
				OnBase:   ac("#f8fafc", "#450a0a"),
				Muted:    ac("#dc2626", "#b91c1c"),
				Contrast: ac("#7f1d1d", "#fee2e2"),
			},
			Neutral: ColourSet{
				Base:     ac("#6b7280", "#9ca3af"),
				OnBase:   ac("#f9fafb", "#111827"),
				Muted:    ac("#9ca3af", "#4b5563"),
				Contrast: ac("#374151", "#e5e7eb"),
			},
		},
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
	})
}

// DarkTheme returns a dark theme variant
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}

	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}
	return theme
}

// ThemeByName resolves a definition's theme name.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "light":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return DefaultTheme(), false
	}
}

// Theme variables for easy access
var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Muted applies a slot's muted tone as the foreground.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

// BorderColour tints the border with a slot's base colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// RowPadding pads a row horizontally according to the menu size.
func RowPadding(size model.Size) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.Spacing.RowPadding(size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Bold sets bold text.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Faint dims text.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

func cloneAppliers(base []StyleApplier, extras ...StyleApplier) []StyleApplier {
	cloned := make([]StyleApplier, len(base)+len(extras))
	copy(cloned, base)
	copy(cloned[len(base):], extras)
	return cloned
}

// PanelStyle is the frame around a menu panel.
func PanelStyle() []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
	}
}

// RowStyle is an idle menu row.
func RowStyle(size model.Size) []StyleApplier {
	return []StyleApplier{RowPadding(size)}
}

// FocusedRowStyle highlights the keyboard/pointer focus.
func FocusedRowStyle(size model.Size) []StyleApplier {
	return cloneAppliers(RowStyle(size), Background(PalettePrimary), Bold())
}

// DisabledRowStyle renders an inert row.
func DisabledRowStyle(size model.Size) []StyleApplier {
	return cloneAppliers(RowStyle(size), Muted(PaletteNeutral), Faint())
}

// SelectedRowStyle marks the committed value and its ancestors.
func SelectedRowStyle(size model.Size) []StyleApplier {
	return cloneAppliers(RowStyle(size), Foreground(PalettePrimary), Bold())
}

// DividerStyle renders separator rows.
func DividerStyle() []StyleApplier {
	return []StyleApplier{Muted(PaletteNeutral)}
}
