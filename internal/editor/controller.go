// Package editor translates find/replace intents and edit menu actions into
// operations on the text buffer, and owns the document being edited.
package editor

import (
	"log"
	"strings"
	"time"

	"notepad/internal/document"
	"notepad/internal/domain"
	"notepad/internal/textbuf"
)

// ParamsSource supplies the current search parameters, normally the find dialog
type ParamsSource interface {
	Params() domain.SearchParameters
}

// Controller drives the buffer on behalf of the menus and the find dialog
type Controller struct {
	buf    *textbuf.Buffer
	doc    *document.Manager
	params ParamsSource
	clip   Clipboard
	now    func() time.Time
}

// New creates a controller. clip may be nil, in which case an in-process
// register is used.
func New(buf *textbuf.Buffer, doc *document.Manager, params ParamsSource, clip Clipboard) *Controller {
	if clip == nil {
		clip = &Register{}
	}
	return &Controller{
		buf:    buf,
		doc:    doc,
		params: params,
		clip:   clip,
		now:    time.Now,
	}
}

// Buffer returns the text buffer being edited
func (c *Controller) Buffer() *textbuf.Buffer {
	return c.buf
}

// Document returns the document manager
func (c *Controller) Document() *document.Manager {
	return c.doc
}

// Params returns the current search parameters
func (c *Controller) Params() domain.SearchParameters {
	return c.params.Params()
}

// Dirty reports whether the buffer differs from the last saved content
func (c *Controller) Dirty() bool {
	return c.doc.Dirty(c.buf.Text())
}

// Title returns the window title for the current document
func (c *Controller) Title() string {
	return c.doc.Title(c.buf.Text())
}

// Reload replaces the buffer with the document's saved content
func (c *Controller) Reload() {
	c.buf.SetText(c.doc.SavedContent())
}

// Dispatch carries out an intent raised by the find dialog. It reports
// whether a match was selected or text was replaced.
func (c *Controller) Dispatch(intent domain.Intent) bool {
	switch intent {
	case domain.IntentFindNext:
		return c.FindNext()
	case domain.IntentFindPrevious:
		return c.FindPrevious()
	case domain.IntentReplaceOne:
		return c.ReplaceOne()
	case domain.IntentReplaceAll:
		return c.ReplaceAll() > 0
	default:
		log.Printf("editor: unknown intent %d", intent)
		return false
	}
}

// FindNext searches forward from the selection
func (c *Controller) FindNext() bool {
	return c.find(domain.Forward)
}

// FindPrevious searches backward from the selection
func (c *Controller) FindPrevious() bool {
	return c.find(domain.Backward)
}

// find runs one search step. When nothing is found and wraparound is on, the
// cursor jumps to the opposite end and the search is retried once; the
// Contains check guarantees the retry finds something, so it cannot recurse
// further.
func (c *Controller) find(dir domain.Direction) bool {
	p := c.params.Params()
	if p.Query == "" {
		return false
	}

	backward := dir == domain.Backward
	if c.buf.Find(p.Query, backward, p.CaseSensitive) {
		return true
	}

	if !p.WrapAround || !c.buf.Contains(p.Query, p.CaseSensitive) {
		return false
	}

	if backward {
		c.buf.MoveToEnd()
	} else {
		c.buf.MoveToStart()
	}
	return c.find(dir)
}

// ReplaceOne replaces the selection when it is a match for the query and
// moves on to the next match. When the selection is not a match it only
// searches, so an unselected region is never replaced. It always searches
// forward: the replace layout has no direction control, and searching back
// from the inserted text could select part of it.
func (c *Controller) ReplaceOne() bool {
	p := c.params.Params()
	if p.Query == "" {
		return false
	}

	if !c.buf.SelectionMatches(p.Query, p.CaseSensitive) {
		c.find(domain.Forward)
		return false
	}

	c.buf.ReplaceSelection(p.Replacement)
	c.find(domain.Forward)
	return true
}

// ReplaceAll replaces every occurrence of the query in one undoable edit and
// leaves the cursor where it was. It returns the number of replacements.
func (c *Controller) ReplaceAll() int {
	p := c.params.Params()
	if p.Query == "" {
		return 0
	}

	text := c.buf.Text()
	n := strings.Count(text, p.Query)
	if n == 0 {
		return 0
	}

	saved := c.buf.Selection()
	c.buf.SelectAll()
	c.buf.ReplaceSelection(strings.ReplaceAll(text, p.Query, p.Replacement))
	c.buf.SetSelection(saved.Anchor, saved.Head)
	return n
}
