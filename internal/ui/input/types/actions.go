package types

import (
	"notepad/internal/domain"
	"notepad/internal/ui/commands"
)

// Motion is a cursor movement
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordLeft
	MotionWordRight
	MotionLineStart
	MotionLineEnd
	MotionDocStart
	MotionDocEnd
	MotionPageUp
	MotionPageDown
)

// Cursor movement, extending the selection when Extend is set
type MoveAction struct {
	Motion Motion
	Extend bool
}

func (a MoveAction) Type() string { return "move" }

// Text entry actions
type InsertTextAction struct {
	Text string
}

func (a InsertTextAction) Type() string { return "insert_text" }

type DeleteBackwardAction struct{}

func (a DeleteBackwardAction) Type() string { return "delete_backward" }

// CommandAction runs a menu command
type CommandAction struct {
	Command commands.ID
}

func (a CommandAction) Type() string { return "command" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Menu highlight moved; carries the new position for rendering
type MenuHighlightAction struct {
	Menu int
	Item int
}

func (a MenuHighlightAction) Type() string { return "menu_highlight" }

// Text prompt actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// SaveChoiceAction answers the save changes prompt
type SaveChoiceAction struct {
	Choice domain.SaveChoice
}

func (a SaveChoiceAction) Type() string { return "save_choice" }

// DismissAction closes an informational popup
type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }
