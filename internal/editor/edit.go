package editor

import (
	"log"
)

// TimeDateLayout is the format inserted by Time/Date
const TimeDateLayout = "15:04 2006/01/02"

// Undo reverts the last edit
func (c *Controller) Undo() bool {
	return c.buf.Undo()
}

// Redo reapplies the last undone edit
func (c *Controller) Redo() bool {
	return c.buf.Redo()
}

// Cut moves the selection to the clipboard
func (c *Controller) Cut() bool {
	if !c.Copy() {
		return false
	}
	c.buf.ReplaceSelection("")
	return true
}

// Copy puts the selection on the clipboard
func (c *Controller) Copy() bool {
	if !c.buf.HasSelection() {
		return false
	}
	if err := c.clip.WriteAll(c.buf.SelectedText()); err != nil {
		log.Printf("copy: %v", err)
		return false
	}
	return true
}

// Paste replaces the selection with the clipboard text
func (c *Controller) Paste() bool {
	text, err := c.clip.ReadAll()
	if err != nil {
		log.Printf("paste: %v", err)
		return false
	}
	if text == "" {
		return false
	}
	c.buf.ReplaceSelection(normalizeNewlines(text))
	return true
}

// Delete removes the selection, or the character after the cursor
func (c *Controller) Delete() bool {
	return c.buf.DeleteForward()
}

// SelectAll selects the whole document
func (c *Controller) SelectAll() {
	c.buf.SelectAll()
}

// InsertTimeDate replaces the selection with the current time and date
func (c *Controller) InsertTimeDate() {
	c.buf.ReplaceSelection(c.now().Format(TimeDateLayout))
}

// SearchText returns what Search with Bing should look up
func (c *Controller) SearchText() string {
	return c.buf.SelectedText()
}

func normalizeNewlines(s string) string {
	out := make([]rune, 0, len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '\r' {
			if i+1 < len(rs) && rs[i+1] == '\n' {
				continue
			}
			out = append(out, '\n')
			continue
		}
		out = append(out, rs[i])
	}
	return string(out)
}
