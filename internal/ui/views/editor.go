package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/textbuf"
)

// EditorState is what the editing surface needs to draw itself
type EditorState struct {
	Text      []rune
	Rows      []Row
	SelStart  int
	SelEnd    int
	Cursor    int
	Top       int // first visible row
	Left      int // first visible column, without wrap
	Width     int
	Height    int
	Font      Font
	HasCursor bool
}

// EditorRenderer draws the text area
type EditorRenderer struct {
	styles *Styles
}

// NewEditorRenderer creates an editor renderer
func NewEditorRenderer(styles *Styles) *EditorRenderer {
	return &EditorRenderer{styles: styles}
}

// Render returns exactly Height lines
func (r *EditorRenderer) Render(s EditorState) string {
	lines := make([]string, 0, s.Height)
	for i := 0; i < s.Height; i++ {
		idx := s.Top + i
		if idx >= len(s.Rows) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, r.renderRow(s, idx))
	}
	return strings.Join(lines, "\n")
}

type span struct {
	style lipgloss.Style
	text  strings.Builder
	kind  int
}

const (
	kindText = iota
	kindSelected
	kindCursor
)

func (r *EditorRenderer) renderRow(s EditorState, idx int) string {
	row := s.Rows[idx]
	selected := r.styles.Selection.Inherit(s.Font.Style)
	cursor := s.Font.Style.Reverse(true)

	var spans []*span
	add := func(kind int, text string) {
		if len(spans) == 0 || spans[len(spans)-1].kind != kind {
			st := s.Font.Style
			switch kind {
			case kindSelected:
				st = selected
			case kindCursor:
				st = cursor
			}
			spans = append(spans, &span{style: st, kind: kind})
		}
		spans[len(spans)-1].text.WriteString(text)
	}

	col := 0
	right := s.Left + s.Width
	for i := row.Start; i < row.End; i++ {
		ch := s.Text[i]
		w := textbuf.RuneWidth(ch)
		if col+w > right {
			break
		}
		if col >= s.Left {
			glyph := string(ch)
			if ch == '\t' {
				glyph = strings.Repeat(" ", w)
			} else if w == 0 {
				glyph = ""
			}
			switch {
			case s.HasCursor && i == s.Cursor:
				add(kindCursor, glyph)
			case i >= s.SelStart && i < s.SelEnd:
				add(kindSelected, glyph)
			default:
				add(kindText, glyph)
			}
		}
		col += w
	}

	// cursor after the last character of the row
	if s.HasCursor && s.Cursor == row.End && RowOf(s.Rows, s.Cursor) == idx && col >= s.Left && col < right {
		add(kindCursor, " ")
	}

	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.style.Render(sp.text.String()))
	}
	return b.String()
}
