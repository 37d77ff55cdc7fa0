package model

import "strings"

// Mode selects how hierarchical options are presented.
type Mode int

const (
	// ModeFlat renders Items as a single list with optional submenus.
	ModeFlat Mode = iota
	// ModeCascade replaces the visible panel with a branch's children.
	ModeCascade
	// ModeNested opens a branch's children in a panel beside its parent.
	ModeNested
)

// String returns the lowercase name used in menu definitions.
func (m Mode) String() string {
	switch m {
	case ModeCascade:
		return "cascade"
	case ModeNested:
		return "nested"
	default:
		return "flat"
	}
}

// ParseMode maps a definition value to a Mode. Unknown values fall back to flat.
func ParseMode(value string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "flat":
		return ModeFlat, true
	case "cascade":
		return ModeCascade, true
	case "nested":
		return ModeNested, true
	default:
		return ModeFlat, false
	}
}

// Size only affects spacing and typography of rendered rows.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// ParseSize maps a definition value to a Size, defaulting to medium.
func ParseSize(value string) (Size, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sm", "small":
		return SizeSmall, true
	case "", "md", "medium":
		return SizeMedium, true
	case "lg", "large":
		return SizeLarge, true
	default:
		return SizeMedium, false
	}
}

// String returns the short size token.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "sm"
	case SizeLarge:
		return "lg"
	default:
		return "md"
	}
}
