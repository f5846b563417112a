// Package textbuf is the editing surface's document model: the text, the
// selection, and the undo/redo history. Offsets are rune indices.
package textbuf

// Selection is an anchored range. Head is where the cursor is drawn; Anchor
// stays put while the selection is extended.
type Selection struct {
	Anchor int
	Head   int
}

// Start returns the lower bound of the selection
func (s Selection) Start() int {
	if s.Anchor < s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection
func (s Selection) End() int {
	if s.Anchor > s.Head {
		return s.Anchor
	}
	return s.Head
}

// Empty reports whether the selection is just a cursor
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}

// Cursor returns a collapsed selection at pos
func Cursor(pos int) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// Buffer holds the document text and selection
type Buffer struct {
	text    []rune
	sel     Selection
	history *History
}

// New creates an empty buffer
func New() *Buffer {
	return &Buffer{history: NewHistory(DefaultHistoryLimit)}
}

// NewFromString creates a buffer holding s with the cursor at the start
func NewFromString(s string) *Buffer {
	b := New()
	b.text = []rune(s)
	return b
}

// Text returns the whole document
func (b *Buffer) Text() string {
	return string(b.text)
}

// SetText replaces the whole document and clears undo history. Used when a
// document is loaded, not for user edits.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.sel = Cursor(0)
	b.history.Clear()
}

// Selection returns the current selection
func (b *Buffer) Selection() Selection {
	return b.sel
}

// SetSelection sets the selection, clamping both ends to the document
func (b *Buffer) SetSelection(anchor, head int) {
	b.sel = Selection{Anchor: b.clamp(anchor), Head: b.clamp(head)}
	b.history.seal()
}

// SetCursor collapses the selection to pos
func (b *Buffer) SetCursor(pos int) {
	b.SetSelection(pos, pos)
}

// Cursor returns the cursor offset
func (b *Buffer) Cursor() int {
	return b.sel.Head
}

// HasSelection reports whether any text is selected
func (b *Buffer) HasSelection() bool {
	return !b.sel.Empty()
}

// SelectedText returns the selected text
func (b *Buffer) SelectedText() string {
	return string(b.text[b.sel.Start():b.sel.End()])
}

// SelectAll selects the whole document with the cursor at the end
func (b *Buffer) SelectAll() {
	b.SetSelection(0, len(b.text))
}

// MoveToStart puts the cursor at the start of the document
func (b *Buffer) MoveToStart() {
	b.SetCursor(0)
}

// MoveToEnd puts the cursor at the end of the document
func (b *Buffer) MoveToEnd() {
	b.SetCursor(len(b.text))
}

// Insert replaces the selection with s as one undoable edit. Consecutive
// single-character typing on one line merges into a single undo step.
func (b *Buffer) Insert(s string) {
	if s == "" && b.sel.Empty() {
		return
	}
	b.edit(b.sel.Start(), b.sel.End(), []rune(s), true)
}

// ReplaceSelection replaces the selected text with s as one undoable edit and
// leaves the cursor after the inserted text.
func (b *Buffer) ReplaceSelection(s string) {
	b.edit(b.sel.Start(), b.sel.End(), []rune(s), false)
}

// DeleteBackward removes the selection, or the character before the cursor
func (b *Buffer) DeleteBackward() bool {
	if !b.sel.Empty() {
		b.edit(b.sel.Start(), b.sel.End(), nil, false)
		return true
	}
	pos := b.sel.Head
	if pos == 0 {
		return false
	}
	b.edit(pos-1, pos, nil, false)
	return true
}

// DeleteForward removes the selection, or the character after the cursor
func (b *Buffer) DeleteForward() bool {
	if !b.sel.Empty() {
		b.edit(b.sel.Start(), b.sel.End(), nil, false)
		return true
	}
	pos := b.sel.Head
	if pos >= len(b.text) {
		return false
	}
	b.edit(pos, pos+1, nil, false)
	return true
}

// Undo reverts the most recent edit or edit group
func (b *Buffer) Undo() bool {
	return b.history.undo(b)
}

// Redo reapplies the most recently undone edit or edit group
func (b *Buffer) Redo() bool {
	return b.history.redo(b)
}

// CanUndo reports whether there is anything to undo
func (b *Buffer) CanUndo() bool {
	return b.history.CanUndo()
}

// CanRedo reports whether there is anything to redo
func (b *Buffer) CanRedo() bool {
	return b.history.CanRedo()
}

// BeginGroup starts collecting edits into a single undo step
func (b *Buffer) BeginGroup() {
	b.history.BeginGroup()
}

// EndGroup closes the group opened by BeginGroup
func (b *Buffer) EndGroup() {
	b.history.EndGroup()
}

// edit replaces [start,end) with repl and records it in history
func (b *Buffer) edit(start, end int, repl []rune, typing bool) {
	old := make([]rune, end-start)
	copy(old, b.text[start:end])

	e := &Edit{
		Start:     start,
		Old:       old,
		New:       append([]rune(nil), repl...),
		SelBefore: b.sel,
		SelAfter:  Cursor(start + len(repl)),
	}
	b.apply(start, end, repl)
	b.sel = e.SelAfter
	b.history.record(e, typing)
}

// apply performs the raw text splice without touching history
func (b *Buffer) apply(start, end int, repl []rune) {
	tail := append([]rune(nil), b.text[end:]...)
	b.text = append(append(b.text[:start], repl...), tail...)
}

func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	return pos
}
