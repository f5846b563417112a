package textbuf

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of cells a tab occupies on screen
const TabWidth = 4

// RuneWidth returns the number of terminal cells r occupies
func RuneWidth(r rune) int {
	if r == '\t' {
		return TabWidth
	}
	return runewidth.RuneWidth(r)
}

// Position is a 1-based line and column, as shown in the status bar
type Position struct {
	Line   int
	Column int
}

// Position returns the cursor's line and column
func (b *Buffer) Position() Position {
	line, col := b.LineCol(b.sel.Head)
	return Position{Line: line + 1, Column: col + 1}
}

// LineCol returns the 0-based line and rune column of pos
func (b *Buffer) LineCol(pos int) (int, int) {
	pos = b.clamp(pos)
	line, start := 0, 0
	for i := 0; i < pos; i++ {
		if b.text[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return line, pos - start
}

// LineEnd returns the offset just before the newline ending the line containing pos
func (b *Buffer) LineEnd(pos int) int {
	pos = b.clamp(pos)
	for pos < len(b.text) && b.text[pos] != '\n' {
		pos++
	}
	return pos
}

// lineStartOf returns the start offset of the line containing pos
func (b *Buffer) lineStartOf(pos int) int {
	pos = b.clamp(pos)
	for pos > 0 && b.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// Lines returns the document split on newlines
func (b *Buffer) Lines() [][]rune {
	lines := [][]rune{}
	start := 0
	for i, r := range b.text {
		if r == '\n' {
			lines = append(lines, b.text[start:i])
			start = i + 1
		}
	}
	return append(lines, b.text[start:])
}

func (b *Buffer) moveTo(pos int, extend bool) {
	pos = b.clamp(pos)
	if extend {
		b.sel.Head = pos
	} else {
		b.sel = Cursor(pos)
	}
	b.history.seal()
}

// MoveLeft moves the cursor one character left. Without extend an existing
// selection collapses to its start.
func (b *Buffer) MoveLeft(extend bool) {
	if !extend && !b.sel.Empty() {
		b.moveTo(b.sel.Start(), false)
		return
	}
	b.moveTo(b.sel.Head-1, extend)
}

// MoveRight moves the cursor one character right
func (b *Buffer) MoveRight(extend bool) {
	if !extend && !b.sel.Empty() {
		b.moveTo(b.sel.End(), false)
		return
	}
	b.moveTo(b.sel.Head+1, extend)
}

// MoveLineStart moves to the start of the current line
func (b *Buffer) MoveLineStart(extend bool) {
	b.moveTo(b.lineStartOf(b.sel.Head), extend)
}

// MoveLineEnd moves to the end of the current line
func (b *Buffer) MoveLineEnd(extend bool) {
	b.moveTo(b.LineEnd(b.sel.Head), extend)
}

// MoveDocStart moves to the start of the document
func (b *Buffer) MoveDocStart(extend bool) {
	b.moveTo(0, extend)
}

// MoveDocEnd moves to the end of the document
func (b *Buffer) MoveDocEnd(extend bool) {
	b.moveTo(len(b.text), extend)
}

// MoveWordLeft moves to the start of the previous word
func (b *Buffer) MoveWordLeft(extend bool) {
	pos := b.sel.Head
	for pos > 0 && !isWordRune(b.text[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(b.text[pos-1]) {
		pos--
	}
	b.moveTo(pos, extend)
}

// MoveWordRight moves past the end of the next word
func (b *Buffer) MoveWordRight(extend bool) {
	pos := b.sel.Head
	for pos < len(b.text) && !isWordRune(b.text[pos]) {
		pos++
	}
	for pos < len(b.text) && isWordRune(b.text[pos]) {
		pos++
	}
	b.moveTo(pos, extend)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
