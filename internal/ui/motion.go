package ui

import (
	inputtypes "notepad/internal/ui/input/types"
	"notepad/internal/ui/views"
)

// layout returns the buffer text and its screen rows at the current width
func (m *Model) layout() ([]rune, []views.Row) {
	buf := m.ctrl.Buffer()
	return []rune(buf.Text()), views.Layout(buf.Lines(), m.width, m.wordWrap)
}

func (m *Model) editorHeight() int {
	return views.EditorHeight(m.height, m.statusBar)
}

// move applies a cursor motion. Vertical motions walk screen rows, so with
// word wrap on they stay inside a wrapped line.
func (m *Model) move(motion inputtypes.Motion, extend bool) {
	buf := m.ctrl.Buffer()

	switch motion {
	case inputtypes.MotionUp:
		m.moveRows(-1, extend)
	case inputtypes.MotionDown:
		m.moveRows(1, extend)
	case inputtypes.MotionPageUp:
		m.moveRows(-m.editorHeight(), extend)
	case inputtypes.MotionPageDown:
		m.moveRows(m.editorHeight(), extend)
	default:
		m.goalCol = -1
		switch motion {
		case inputtypes.MotionLeft:
			buf.MoveLeft(extend)
		case inputtypes.MotionRight:
			buf.MoveRight(extend)
		case inputtypes.MotionWordLeft:
			buf.MoveWordLeft(extend)
		case inputtypes.MotionWordRight:
			buf.MoveWordRight(extend)
		case inputtypes.MotionLineStart:
			buf.MoveLineStart(extend)
		case inputtypes.MotionLineEnd:
			buf.MoveLineEnd(extend)
		case inputtypes.MotionDocStart:
			buf.MoveDocStart(extend)
		case inputtypes.MotionDocEnd:
			buf.MoveDocEnd(extend)
		}
	}
	m.scrollToCursor()
}

func (m *Model) moveRows(delta int, extend bool) {
	buf := m.ctrl.Buffer()
	text, rows := m.layout()
	if len(rows) == 0 {
		return
	}

	cur := views.RowOf(rows, buf.Cursor())
	if m.goalCol < 0 {
		m.goalCol = views.ColumnIn(text, rows[cur], buf.Cursor())
	}

	target := min(max(cur+delta, 0), len(rows)-1)
	var pos int
	switch {
	case target == cur && delta < 0:
		pos = 0
	case target == cur && delta > 0:
		pos = len(text)
	default:
		row := rows[target]
		pos = views.OffsetAt(text, row, m.goalCol)
		// the end of a wrapped row is the start of the next one
		if pos == row.End && target+1 < len(rows) && rows[target+1].Line == row.Line && pos > row.Start {
			pos--
		}
	}

	if extend {
		buf.SetSelection(buf.Selection().Anchor, pos)
	} else {
		buf.SetCursor(pos)
	}
}

// edited is called after the text or selection changed outside a motion
func (m *Model) edited() {
	m.goalCol = -1
	m.scrollToCursor()
}

// scrollToCursor adjusts the viewport so the cursor is on screen
func (m *Model) scrollToCursor() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	buf := m.ctrl.Buffer()
	text, rows := m.layout()
	cur := views.RowOf(rows, buf.Cursor())

	h := m.editorHeight()
	if cur < m.top {
		m.top = cur
	}
	if cur >= m.top+h {
		m.top = cur - h + 1
	}
	m.top = min(m.top, max(len(rows)-1, 0))

	if m.wordWrap {
		m.left = 0
		return
	}
	col := views.ColumnIn(text, rows[cur], buf.Cursor())
	if col < m.left {
		m.left = col
	}
	if col >= m.left+m.width {
		m.left = col - m.width + 1
	}
}
