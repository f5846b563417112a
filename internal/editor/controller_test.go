package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/codec"
	"notepad/internal/document"
	"notepad/internal/domain"
	"notepad/internal/textbuf"
)

type staticParams struct {
	p domain.SearchParameters
}

func (s *staticParams) Params() domain.SearchParameters {
	return s.p
}

func newController(text string, p domain.SearchParameters) (*Controller, *staticParams) {
	params := &staticParams{p: p}
	docs := document.NewManager(afero.NewMemMapFs(), codec.Default(), nil, nil)
	return New(textbuf.NewFromString(text), docs, params, nil), params
}

func sel(c *Controller) (int, int) {
	s := c.Buffer().Selection()
	return s.Start(), s.End()
}

func TestFindNextSelectsFollowingMatch(t *testing.T) {
	c, _ := newController("foo bar foo", domain.SearchParameters{Query: "foo"})

	require.True(t, c.FindNext())
	start, end := sel(c)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	require.True(t, c.FindNext())
	start, end = sel(c)
	assert.Equal(t, 8, start)
	assert.Equal(t, 11, end)
}

func TestFindWrapsAroundOnce(t *testing.T) {
	c, _ := newController("foo bar foo", domain.SearchParameters{Query: "foo", WrapAround: true})
	c.Buffer().SetCursor(9)

	require.True(t, c.FindNext())
	start, end := sel(c)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestFindWrapsToSingleMatchAtStart(t *testing.T) {
	c, _ := newController("foo bar", domain.SearchParameters{Query: "foo", WrapAround: true})
	c.Buffer().SetCursor(7)

	require.True(t, c.FindNext())
	start, end := sel(c)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestFindWithoutWrapStopsAtEnd(t *testing.T) {
	c, _ := newController("foo bar foo", domain.SearchParameters{Query: "foo"})
	c.Buffer().SetCursor(9)

	require.False(t, c.FindNext())
	assert.Equal(t, 9, c.Buffer().Cursor())
}

func TestFindAbsentQueryLeavesCursor(t *testing.T) {
	c, _ := newController("foo bar foo", domain.SearchParameters{Query: "zzz", WrapAround: true})
	c.Buffer().SetCursor(5)

	require.False(t, c.FindNext())
	require.False(t, c.FindPrevious())
	assert.Equal(t, 5, c.Buffer().Cursor())
	assert.False(t, c.Buffer().HasSelection())
}

func TestFindPreviousWrapsToEnd(t *testing.T) {
	c, _ := newController("ab ab ab", domain.SearchParameters{Query: "ab", WrapAround: true})
	c.Buffer().SetSelection(0, 2)

	require.True(t, c.FindPrevious())
	start, end := sel(c)
	assert.Equal(t, 6, start)
	assert.Equal(t, 8, end)

	require.True(t, c.FindPrevious())
	start, _ = sel(c)
	assert.Equal(t, 3, start)
}

func TestFindCaseRules(t *testing.T) {
	c, params := newController("Hello hello", domain.SearchParameters{Query: "hello", CaseSensitive: true})

	require.True(t, c.FindNext())
	start, _ := sel(c)
	assert.Equal(t, 6, start)

	params.p.CaseSensitive = false
	c.Buffer().SetCursor(0)
	require.True(t, c.FindNext())
	start, _ = sel(c)
	assert.Equal(t, 0, start)
}

func TestEmptyQueryIsNoOp(t *testing.T) {
	c, _ := newController("text", domain.SearchParameters{WrapAround: true})
	c.Buffer().SetCursor(2)

	for _, intent := range []domain.Intent{domain.IntentFindNext, domain.IntentFindPrevious, domain.IntentReplaceOne, domain.IntentReplaceAll} {
		assert.False(t, c.Dispatch(intent), intent.String())
	}
	assert.Equal(t, "text", c.Buffer().Text())
	assert.Equal(t, 2, c.Buffer().Cursor())
}

func TestReplaceOneReplacesMatchingSelectionThenFinds(t *testing.T) {
	c, _ := newController("a b a b", domain.SearchParameters{Query: "a", Replacement: "x"})
	c.Buffer().SetSelection(0, 1)

	require.True(t, c.ReplaceOne())
	assert.Equal(t, "x b a b", c.Buffer().Text())
	start, end := sel(c)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)
}

func TestReplaceOneWithoutMatchingSelectionOnlyFinds(t *testing.T) {
	c, _ := newController("a b a b", domain.SearchParameters{Query: "a", Replacement: "x"})
	c.Buffer().SetSelection(2, 3)

	require.False(t, c.ReplaceOne())
	assert.Equal(t, "a b a b", c.Buffer().Text())
	start, _ := sel(c)
	assert.Equal(t, 4, start)
}

func TestReplaceOneSearchesForwardWhateverTheDirection(t *testing.T) {
	c, _ := newController("a b a b", domain.SearchParameters{Query: "a", Replacement: "x", Direction: domain.Backward})
	c.Buffer().SetCursor(3)

	require.False(t, c.ReplaceOne())
	assert.Equal(t, "a b a b", c.Buffer().Text())
	start, end := sel(c)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)

	c.Buffer().SetSelection(0, 1)
	require.True(t, c.ReplaceOne())
	assert.Equal(t, "x b a b", c.Buffer().Text())
	start, end = sel(c)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)
}

func TestReplaceOneNeverReselectsInsertedText(t *testing.T) {
	c, _ := newController("a", domain.SearchParameters{Query: "a", Replacement: "aa", Direction: domain.Backward})
	c.Buffer().SetSelection(0, 1)

	require.True(t, c.ReplaceOne())
	assert.Equal(t, "aa", c.Buffer().Text())
	assert.False(t, c.Buffer().HasSelection())

	for i := 0; i < 2; i++ {
		require.False(t, c.ReplaceOne())
	}
	assert.Equal(t, "aa", c.Buffer().Text())
	assert.Equal(t, 2, c.Buffer().Cursor())
}

func TestReplaceOneOnLastMatchLeavesNothingSelected(t *testing.T) {
	c, _ := newController("a b a b", domain.SearchParameters{Query: "a", Replacement: "x"})
	c.Buffer().SetSelection(4, 5)

	require.True(t, c.ReplaceOne())
	assert.Equal(t, "a b x b", c.Buffer().Text())
	assert.False(t, c.Buffer().HasSelection())
	assert.Equal(t, 5, c.Buffer().Cursor())
}

func TestReplaceAllIsOneUndoStepAndKeepsCursor(t *testing.T) {
	c, _ := newController("a b a b", domain.SearchParameters{Query: "a", Replacement: "x"})
	c.Buffer().SetCursor(3)

	require.Equal(t, 2, c.ReplaceAll())
	assert.Equal(t, "x b x b", c.Buffer().Text())
	assert.Equal(t, 3, c.Buffer().Cursor())

	require.True(t, c.Undo())
	assert.Equal(t, "a b a b", c.Buffer().Text())
	assert.False(t, c.Buffer().CanUndo())
}

func TestReplaceAllClampsCursorWhenTextShrinks(t *testing.T) {
	c, _ := newController("aaaa", domain.SearchParameters{Query: "aa", Replacement: ""})
	c.Buffer().SetCursor(4)

	require.Equal(t, 2, c.ReplaceAll())
	assert.Equal(t, "", c.Buffer().Text())
	assert.Equal(t, 0, c.Buffer().Cursor())
}

func TestReplaceAllIsCaseSensitive(t *testing.T) {
	c, _ := newController("A a", domain.SearchParameters{Query: "a", Replacement: "b"})

	require.Equal(t, 1, c.ReplaceAll())
	assert.Equal(t, "A b", c.Buffer().Text())
}

func TestReplaceAllWithoutOccurrencesAddsNoHistory(t *testing.T) {
	c, _ := newController("abc", domain.SearchParameters{Query: "z", Replacement: "y"})

	require.Equal(t, 0, c.ReplaceAll())
	assert.False(t, c.Buffer().CanUndo())
}

func TestDirtyTracksBuffer(t *testing.T) {
	c, _ := newController("", domain.SearchParameters{})
	require.False(t, c.Dirty())
	require.Equal(t, "Untitled - Notepad", c.Title())

	c.Buffer().Insert("x")
	require.True(t, c.Dirty())
	require.Equal(t, "*Untitled - Notepad", c.Title())

	c.Undo()
	require.False(t, c.Dirty())
}

func TestCutCopyPaste(t *testing.T) {
	c, _ := newController("hello world", domain.SearchParameters{})
	c.Buffer().SetSelection(0, 5)

	require.True(t, c.Cut())
	assert.Equal(t, " world", c.Buffer().Text())

	c.Buffer().MoveToEnd()
	require.True(t, c.Paste())
	assert.Equal(t, " worldhello", c.Buffer().Text())

	c.Buffer().SetCursor(0)
	assert.False(t, c.Copy(), "nothing selected")
}

func TestPasteNormalizesNewlines(t *testing.T) {
	c, _ := newController("", domain.SearchParameters{})
	require.NoError(t, c.clip.WriteAll("a\r\nb\rc"))

	require.True(t, c.Paste())
	assert.Equal(t, "a\nb\nc", c.Buffer().Text())
}

type brokenClipboard struct{}

func (brokenClipboard) WriteAll(string) error    { return errors.New("no clipboard") }
func (brokenClipboard) ReadAll() (string, error) { return "", errors.New("no clipboard") }

func TestClipboardFailureLeavesText(t *testing.T) {
	docs := document.NewManager(afero.NewMemMapFs(), codec.Default(), nil, nil)
	c := New(textbuf.NewFromString("abc"), docs, &staticParams{}, brokenClipboard{})
	c.Buffer().SelectAll()

	assert.False(t, c.Cut())
	assert.False(t, c.Paste())
	assert.Equal(t, "abc", c.Buffer().Text())
}

func TestDeleteRemovesSelectionOrNextChar(t *testing.T) {
	c, _ := newController("abcd", domain.SearchParameters{})
	c.Buffer().SetCursor(1)
	require.True(t, c.Delete())
	assert.Equal(t, "acd", c.Buffer().Text())

	c.Buffer().SetSelection(0, 2)
	require.True(t, c.Delete())
	assert.Equal(t, "d", c.Buffer().Text())

	c.Buffer().MoveToEnd()
	assert.False(t, c.Delete())
}

func TestInsertTimeDate(t *testing.T) {
	c, _ := newController("at ", domain.SearchParameters{})
	c.now = func() time.Time { return time.Date(2024, 3, 9, 7, 5, 0, 0, time.UTC) }
	c.Buffer().MoveToEnd()

	c.InsertTimeDate()
	assert.Equal(t, "at 07:05 2024/03/09", c.Buffer().Text())
}

func TestReloadReplacesTextAndHistory(t *testing.T) {
	c, _ := newController("", domain.SearchParameters{})
	c.Buffer().Insert("typed")

	c.Document().Reset()
	c.Reload()
	assert.Equal(t, "", c.Buffer().Text())
	assert.False(t, c.Buffer().CanUndo())
}
