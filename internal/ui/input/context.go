package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Selection bool
	Wrap      bool
	Status    bool
}

// HasSelection reports whether the editor has selected text
func (c *ModelContext) HasSelection() bool {
	return c.Selection
}

// WordWrap reports whether long lines wrap
func (c *ModelContext) WordWrap() bool {
	return c.Wrap
}

// StatusBar reports whether the status bar is shown
func (c *ModelContext) StatusBar() bool {
	return c.Status
}
