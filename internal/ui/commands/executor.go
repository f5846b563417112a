package commands

import (
	"log"

	"notepad/internal/editor"
)

// Result reports what executing a command did
type Result struct {
	// Handled is false for commands the executor does not run itself
	Handled bool
	// Changed is set when the buffer text or selection changed
	Changed bool
	// Message is a short status bar note
	Message string
}

// Executor runs the commands that only touch the editor buffer. Commands that
// need prompts, dialogs or the outside world are left to the caller.
type Executor struct {
	ctrl *editor.Controller
}

// NewExecutor creates an executor for ctrl
func NewExecutor(ctrl *editor.Controller) *Executor {
	return &Executor{ctrl: ctrl}
}

// Execute runs id against the editor
func (e *Executor) Execute(id ID) Result {
	c := e.ctrl
	switch id {
	case Undo:
		return changed(c.Undo(), "Nothing to undo")
	case Redo:
		return changed(c.Redo(), "Nothing to redo")
	case Cut:
		return changed(c.Cut(), "")
	case Copy:
		c.Copy()
		return Result{Handled: true}
	case Paste:
		return changed(c.Paste(), "")
	case Delete:
		return changed(c.Delete(), "")
	case SelectAll:
		c.SelectAll()
		return Result{Handled: true, Changed: true}
	case TimeDate:
		c.InsertTimeDate()
		return Result{Handled: true, Changed: true}
	case FindNext:
		return e.find(c.FindNext, c.Params().Query)
	case FindPrevious:
		return e.find(c.FindPrevious, c.Params().Query)
	default:
		return Result{}
	}
}

func (e *Executor) find(step func() bool, query string) Result {
	if step() {
		return Result{Handled: true, Changed: true}
	}
	if query == "" {
		return Result{Handled: true}
	}
	log.Printf("find: %q not found", query)
	return Result{Handled: true, Message: `Cannot find "` + query + `"`}
}

func changed(ok bool, otherwise string) Result {
	if ok {
		return Result{Handled: true, Changed: true}
	}
	return Result{Handled: true, Message: otherwise}
}
