package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/ui/input/modes"
	"notepad/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for path prompts

	menu    *modes.MenuMode
	confirm *modes.ConfirmMode
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeEdit,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		menu:        modes.NewMenuMode(),
		confirm:     modes.NewConfirmMode(),
	}

	// Register all mode handlers
	h.modes[types.ModeEdit] = modes.NewEditMode()
	h.modes[types.ModeMenu] = h.menu
	h.modes[types.ModeSaveChanges] = h.confirm
	h.modes[types.ModeOpenPath] = modes.NewOpenPathMode(h.textInput)
	h.modes[types.ModeSavePath] = modes.NewSavePathMode(h.textInput)
	h.modes[types.ModeAbout] = modes.NewAboutMode()

	return h
}

// HandleKey routes msg to the current mode. Mode changes requested by the
// mode are applied here; the remaining actions are returned to the model.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're not in a text mode, the key is dropped
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, changeMode.Data, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// In a text mode, keys the mode did not handle go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// ChangeMode switches mode from outside a key press, e.g. when a document
// transition needs a prompt
func (h *Handler) ChangeMode(mode types.Mode, data interface{}, ctx types.Context) []types.Action {
	return h.switchMode(mode, data, ctx)
}

func (h *Handler) switchMode(mode types.Mode, data interface{}, ctx types.Context) []types.Action {
	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx, data)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the prompt input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the label of the active text prompt
func (h *Handler) Prompt() string {
	if tm, ok := h.modes[h.currentMode].(*modes.TextInputMode); ok {
		return tm.Prompt()
	}
	return ""
}

// Menu returns the open menu and highlighted item
func (h *Handler) Menu() (int, int) {
	return h.menu.Current()
}

// ConfirmName returns the document name the save prompt asks about
func (h *Handler) ConfirmName() string {
	return h.confirm.DocumentName()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeOpenPath || mode == types.ModeSavePath
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
