package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/textbuf"
)

func lines(s string) [][]rune {
	return textbuf.NewFromString(s).Lines()
}

func TestLayoutWithoutWrapIsOneRowPerLine(t *testing.T) {
	rows := Layout(lines("ab\n\ncdef"), 2, false)

	assert.Equal(t, []Row{
		{Line: 0, Start: 0, End: 2},
		{Line: 1, Start: 3, End: 3},
		{Line: 2, Start: 4, End: 8},
	}, rows)
}

func TestLayoutWrapsAfterLastBlank(t *testing.T) {
	rows := Layout(lines("aaaa bbbb cccc"), 10, true)

	assert.Equal(t, []Row{
		{Line: 0, Start: 0, End: 10},
		{Line: 0, Start: 10, End: 14},
	}, rows)
}

func TestLayoutBreaksLongWords(t *testing.T) {
	rows := Layout(lines("abcdefgh\nx"), 3, true)

	assert.Equal(t, []Row{
		{Line: 0, Start: 0, End: 3},
		{Line: 0, Start: 3, End: 6},
		{Line: 0, Start: 6, End: 8},
		{Line: 1, Start: 9, End: 10},
	}, rows)
}

func TestLayoutCountsWideRunes(t *testing.T) {
	// each ideograph takes two cells
	rows := Layout(lines("中文字"), 4, true)

	require.Len(t, rows, 2)
	assert.Equal(t, Row{Line: 0, Start: 0, End: 2}, rows[0])
	assert.Equal(t, Row{Line: 0, Start: 2, End: 3}, rows[1])
}

func TestRowOfPrefersRowStartingAtOffset(t *testing.T) {
	rows := Layout(lines("aaaa bbbb cccc\nz"), 10, true)

	assert.Equal(t, 0, RowOf(rows, 9))
	assert.Equal(t, 1, RowOf(rows, 10))
	assert.Equal(t, 1, RowOf(rows, 14))
	assert.Equal(t, 2, RowOf(rows, 15))
}

func TestColumnAndOffsetAreInverse(t *testing.T) {
	text := []rune("a\tb中c")
	row := Row{Start: 0, End: len(text)}

	assert.Equal(t, 0, ColumnIn(text, row, 0))
	assert.Equal(t, 1, ColumnIn(text, row, 1))
	assert.Equal(t, 1+textbuf.TabWidth, ColumnIn(text, row, 2))
	assert.Equal(t, 2+textbuf.TabWidth, ColumnIn(text, row, 3))
	assert.Equal(t, 4+textbuf.TabWidth, ColumnIn(text, row, 4))

	for pos := 0; pos <= len(text); pos++ {
		assert.Equal(t, pos, OffsetAt(text, row, ColumnIn(text, row, pos)))
	}

	// a column inside a wide rune lands before it
	assert.Equal(t, 3, OffsetAt(text, row, 3+textbuf.TabWidth))
	assert.Equal(t, len(text), OffsetAt(text, row, 100))
}

func TestOverlayKeepsBaseAroundPopup(t *testing.T) {
	base := strings.Join([]string{"..........", "..........", ".........."}, "\n")

	out := Overlay(base, "AB\nCD", 3, 1)

	got := strings.Split(ansi.Strip(out), "\n")
	assert.Equal(t, []string{"..........", "...AB.....", "...CD....."}, got)
}

func TestOverlayPadsShortLines(t *testing.T) {
	out := Overlay("ab", "X", 4, 1)

	got := strings.Split(ansi.Strip(out), "\n")
	assert.Equal(t, []string{"ab", "    X"}, got)
}

func TestFontsCycle(t *testing.T) {
	assert.Equal(t, "Bold", NextFont("Default").Name)
	assert.Equal(t, Fonts[0].Name, NextFont(Fonts[len(Fonts)-1].Name).Name)
	assert.Equal(t, "Default", FontNamed("no such font").Name)
}
