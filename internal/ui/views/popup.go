package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderCentered renders popup centered over a greyed out base
func (pr *PopupRenderer) RenderCentered(base, popup string, width, height int) string {
	x := (width - lipgloss.Width(popup)) / 2
	y := (height - lipgloss.Height(popup)) / 2
	return Overlay(desaturateANSI(base), popup, max(x, 0), max(y, 0))
}

// RenderDialog wraps content in the dialog frame with a title
func (pr *PopupRenderer) RenderDialog(title, content string) string {
	return pr.styles.Dialog.Render(pr.styles.DialogTitle.Render(title) + "\n\n" + content)
}

// Overlay draws top over base with its top-left corner at column x, row y.
// Base cells outside top's lines are kept.
func Overlay(base, top string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	for i, tl := range topLines {
		row := y + i
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		bl := baseLines[row]
		tw := ansi.StringWidth(tl)

		left := ansi.Truncate(bl, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		right := ansi.TruncateLeft(bl, x+tw, "")
		baseLines[row] = left + "\x1b[0m" + tl + "\x1b[0m" + right
	}
	return strings.Join(baseLines, "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, l := range lines {
		lines[i] = gray.Render(l)
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to w cells keeping ANSI sequences intact
func truncate(s string, w int) string {
	return ansi.Truncate(s, w, "")
}
