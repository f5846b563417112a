package textbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func typeString(b *Buffer, s string) {
	for _, r := range s {
		b.Insert(string(r))
	}
}

func TestTypingMergesIntoWords(t *testing.T) {
	b := New()
	typeString(b, "hello world")
	require.Equal(t, "hello world", b.Text())

	require.True(t, b.Undo())
	require.Equal(t, "hello ", b.Text())
	require.True(t, b.Undo())
	require.Equal(t, "hello", b.Text())
	require.True(t, b.Undo())
	require.Equal(t, "", b.Text())
	require.False(t, b.Undo())
}

func TestCursorMoveBreaksTypingRun(t *testing.T) {
	b := New()
	typeString(b, "ab")
	b.MoveLeft(false)
	typeString(b, "X")
	require.Equal(t, "aXb", b.Text())

	require.True(t, b.Undo())
	require.Equal(t, "ab", b.Text())
}

func TestUndoRestoresSelection(t *testing.T) {
	b := NewFromString("keep this")
	b.SetSelection(5, 9)
	b.ReplaceSelection("that")

	require.True(t, b.Undo())
	require.Equal(t, "keep this", b.Text())
	require.Equal(t, Selection{Anchor: 5, Head: 9}, b.Selection())

	require.True(t, b.Redo())
	require.Equal(t, "keep that", b.Text())
	require.Equal(t, Cursor(9), b.Selection())
}

func TestGroupUndoesAsOneStep(t *testing.T) {
	b := NewFromString("a-b-c")
	b.BeginGroup()
	b.SetSelection(1, 2)
	b.ReplaceSelection("+")
	b.SetSelection(3, 4)
	b.ReplaceSelection("+")
	b.EndGroup()
	require.Equal(t, "a+b+c", b.Text())

	require.True(t, b.Undo())
	require.Equal(t, "a-b-c", b.Text())
	require.False(t, b.CanUndo())

	require.True(t, b.Redo())
	require.Equal(t, "a+b+c", b.Text())
}

func TestEmptyGroupIsNotRecorded(t *testing.T) {
	b := NewFromString("x")
	b.BeginGroup()
	b.EndGroup()
	require.False(t, b.CanUndo())
}

func TestNewEditClearsRedo(t *testing.T) {
	b := New()
	b.Insert("a")
	b.Undo()
	require.True(t, b.CanRedo())
	b.Insert("b")
	require.False(t, b.CanRedo())
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	b := New()
	b.history = h
	b.ReplaceSelection("1")
	b.ReplaceSelection("2")
	b.ReplaceSelection("3")

	b.Undo()
	b.Undo()
	require.False(t, b.Undo())
	require.Equal(t, "1", b.Text())
}
