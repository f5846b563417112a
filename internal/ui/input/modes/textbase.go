package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) *TextInputMode {
	return &TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
	}
}

// NewOpenPathMode asks for the file to open
func NewOpenPathMode(ti *textinput.Model) *TextInputMode {
	return NewTextInputMode(types.ModeOpenPath, "open", "Open file:", ti)
}

// NewSavePathMode asks where to save
func NewSavePathMode(ti *textinput.Model) *TextInputMode {
	return NewTextInputMode(types.ModeSavePath, "save as", "Save as:", ti)
}

func (m *TextInputMode) Name() string {
	return m.name
}

// Prompt returns the label shown before the input
func (m *TextInputMode) Prompt() string {
	return m.prompt
}

// Enter pre-fills the input with data, normally a directory ending in a separator
func (m *TextInputMode) Enter(ctx types.Context, data interface{}) []types.Action {
	if m.textInput != nil {
		m.textInput.Reset()
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
		if s, ok := data.(string); ok {
			m.textInput.SetValue(s)
			m.textInput.CursorEnd()
		}
		m.textInput.Focus()
	}
	return nil
}

func (m *TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

func (m *TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeEdit},
			types.CancelTextAction{Mode: m.mode},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeEdit},
			types.SubmitTextAction{Text: text, Mode: m.mode},
		}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
