package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a block of rendered text placed at a cell position.
type Layer struct {
	X       int
	Y       int
	Content string
}

// Overlay paints layers over background in order, later layers on top. The
// result is exactly height lines of width cells; layers are clipped to it.
func Overlay(background string, width, height int, layers ...Layer) string {
	lines := strings.Split(background, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = fit(line, width)
	}

	for _, layer := range layers {
		fg := strings.Split(layer.Content, "\n")
		fgW := 0
		for _, l := range fg {
			fgW = max(fgW, ansi.StringWidth(l))
		}
		overlayAt(lines, fg, width, layer.X, layer.Y, fgW)
	}
	return strings.Join(lines, "\n")
}

func overlayAt(bg, fg []string, width, x, y, fgW int) {
	if fgW <= 0 || x >= width {
		return
	}
	x = max(x, 0)
	y = max(y, 0)
	fgW = min(fgW, width-x)
	for i := 0; i < len(fg) && y+i < len(bg); i++ {
		line := bg[y+i]
		left := ansi.Cut(line, 0, x)
		right := ansi.Cut(line, x+fgW, width)
		bg[y+i] = left + fit(fg[i], fgW) + right
	}
}

// fit pads or cuts s to exactly width cells.
func fit(s string, width int) string {
	n := ansi.StringWidth(s)
	switch {
	case n < width:
		return s + strings.Repeat(" ", width-n)
	case n > width:
		return ansi.Cut(s, 0, width)
	default:
		return s
	}
}
