package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeEdit Mode = iota
	ModeMenu
	ModeFind
	ModeSaveChanges
	ModeOpenPath
	ModeSavePath
	ModeAbout
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeMenu:
		return "menu"
	case ModeFind:
		return "find"
	case ModeSaveChanges:
		return "save changes"
	case ModeOpenPath:
		return "open"
	case ModeSavePath:
		return "save as"
	case ModeAbout:
		return "about"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	HasSelection() bool
	WordWrap() bool
	StatusBar() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context, data interface{}) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
