package textbuf

import "unicode"

// DefaultHistoryLimit is the number of undo steps kept
const DefaultHistoryLimit = 1000

// Edit is one recorded text replacement with the selection on either side of it
type Edit struct {
	Start     int
	Old       []rune
	New       []rune
	SelBefore Selection
	SelAfter  Selection
}

// step is one undo unit: a single edit or a group of edits
type step struct {
	edits  []*Edit
	typing bool
}

// History is an undo/redo stack of edit steps
type History struct {
	undoStack []*step
	redoStack []*step
	limit     int

	groupDepth int
	group      *step
}

// NewHistory creates a history keeping at most limit steps
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// CanUndo reports whether there is a step to undo
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether there is a step to redo
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear drops all history
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.group = nil
	h.groupDepth = 0
}

// BeginGroup starts a group; nested groups fold into the outermost one
func (h *History) BeginGroup() {
	if h.groupDepth == 0 {
		h.group = &step{}
	}
	h.groupDepth++
}

// EndGroup closes a group and pushes it as one step if it holds any edits
func (h *History) EndGroup() {
	if h.groupDepth == 0 {
		return
	}
	h.groupDepth--
	if h.groupDepth > 0 {
		return
	}
	g := h.group
	h.group = nil
	if len(g.edits) > 0 {
		h.push(g)
	}
}

func (h *History) record(e *Edit, typing bool) {
	h.redoStack = nil

	if h.groupDepth > 0 {
		h.group.edits = append(h.group.edits, e)
		return
	}

	if typing && h.mergeTyping(e) {
		return
	}
	h.push(&step{edits: []*Edit{e}, typing: typing && isWordTyping(e)})
}

// mergeTyping folds e into the previous step when it continues a run of
// typed characters on the same word
func (h *History) mergeTyping(e *Edit) bool {
	if len(h.undoStack) == 0 || !isWordTyping(e) {
		return false
	}
	top := h.undoStack[len(h.undoStack)-1]
	if !top.typing {
		return false
	}
	last := top.edits[len(top.edits)-1]
	if last.Start+len(last.New) != e.Start {
		return false
	}
	top.edits = append(top.edits, e)
	return true
}

func isWordTyping(e *Edit) bool {
	if len(e.Old) != 0 || len(e.New) != 1 {
		return false
	}
	r := e.New[0]
	return !unicode.IsSpace(r)
}

// seal stops the current typing run from absorbing further keystrokes
func (h *History) seal() {
	if len(h.undoStack) > 0 {
		h.undoStack[len(h.undoStack)-1].typing = false
	}
}

func (h *History) push(s *step) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.limit {
		h.undoStack = h.undoStack[len(h.undoStack)-h.limit:]
	}
}

func (h *History) undo(b *Buffer) bool {
	if len(h.undoStack) == 0 {
		return false
	}
	s := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.seal()

	for i := len(s.edits) - 1; i >= 0; i-- {
		e := s.edits[i]
		b.apply(e.Start, e.Start+len(e.New), e.Old)
	}
	b.sel = s.edits[0].SelBefore

	h.redoStack = append(h.redoStack, s)
	return true
}

func (h *History) redo(b *Buffer) bool {
	if len(h.redoStack) == 0 {
		return false
	}
	s := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	for _, e := range s.edits {
		b.apply(e.Start, e.Start+len(e.Old), e.New)
	}
	b.sel = s.edits[len(s.edits)-1].SelAfter

	// a redone typing run must not absorb the next keystroke
	s.typing = false
	h.undoStack = append(h.undoStack, s)
	return true
}
