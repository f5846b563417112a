package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusState is what the status bar shows
type StatusState struct {
	Line     int
	Column   int
	Encoding string
	Message  string
	IsError  bool
}

// StatusRenderer draws the status bar
type StatusRenderer struct {
	styles *Styles
}

// NewStatusRenderer creates a status renderer
func NewStatusRenderer(styles *Styles) *StatusRenderer {
	return &StatusRenderer{styles: styles}
}

// Render renders the status bar at width
func (r *StatusRenderer) Render(s StatusState, width int) string {
	right := fmt.Sprintf("  Ln %d, Col %d   %s ", s.Line, s.Column, s.Encoding)

	left := " " + s.Message
	style := r.styles.Status
	if s.IsError {
		style = r.styles.StatusError
	}

	leftW := width - lipgloss.Width(right)
	if leftW < 0 {
		leftW = 0
	}
	leftText := style.Render(fit(left, leftW))
	return leftText + r.styles.Status.Render(right)
}

// fit pads or cuts s to exactly w cells
func fit(s string, w int) string {
	sw := lipgloss.Width(s)
	if sw == w {
		return s
	}
	if sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	return truncate(s, w)
}
