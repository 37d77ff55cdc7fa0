package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/popmenu/internal/model"
)

var icons = map[string]string{
	"file":     "🗋",
	"folder":   "🗀",
	"open":     "↗",
	"save":     "⭳",
	"copy":     "⧉",
	"paste":    "📋",
	"cut":      "✂",
	"delete":   "✕",
	"search":   "⌕",
	"settings": "⚙",
	"star":     "★",
	"user":     "☺",
	"quit":     "⏻",
	"check":    "✓",
	"info":     "ℹ",
	"warning":  "⚠",
}

// IconNames lists the names RenderIcon understands.
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	return names
}

// RenderIcon draws the glyph for name in color. Large menus get a wider
// gutter. Unknown names render nothing so labels stay aligned by the caller.
func RenderIcon(name string, size model.Size, color lipgloss.TerminalColor) string {
	glyph, ok := icons[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ""
	}
	style := lipgloss.NewStyle()
	if color != nil {
		style = style.Foreground(color)
	}
	if size == model.SizeLarge {
		style = style.PaddingRight(1)
	}
	return style.Render(glyph)
}
