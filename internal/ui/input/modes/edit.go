package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/ui/commands"
	"notepad/internal/ui/input/types"
)

// Shortcut binds keys to a menu command
type Shortcut struct {
	Binding key.Binding
	Command commands.ID
}

func shortcut(id commands.ID, help string, keys ...string) Shortcut {
	return Shortcut{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, id.String())),
		Command: id,
	}
}

// Shortcuts lists the global command keys
var Shortcuts = []Shortcut{
	shortcut(commands.New, "ctrl+n", "ctrl+n"),
	shortcut(commands.NewWindow, "alt+n", "alt+n"),
	shortcut(commands.Open, "ctrl+o", "ctrl+o"),
	shortcut(commands.Save, "ctrl+s", "ctrl+s"),
	shortcut(commands.SaveAs, "f12", "f12"),
	shortcut(commands.Exit, "ctrl+q", "ctrl+q"),
	shortcut(commands.Undo, "ctrl+z", "ctrl+z"),
	shortcut(commands.Redo, "ctrl+y", "ctrl+y"),
	shortcut(commands.Cut, "ctrl+x", "ctrl+x"),
	shortcut(commands.Copy, "ctrl+c", "ctrl+c"),
	shortcut(commands.Paste, "ctrl+v", "ctrl+v"),
	shortcut(commands.Delete, "del", "delete"),
	shortcut(commands.SearchWeb, "ctrl+e", "ctrl+e"),
	shortcut(commands.Find, "ctrl+f", "ctrl+f"),
	shortcut(commands.FindNext, "f3", "f3"),
	shortcut(commands.FindPrevious, "shift+f3", "shift+f3", "f15"),
	shortcut(commands.Replace, "ctrl+r", "ctrl+r"),
	shortcut(commands.SelectAll, "ctrl+a", "ctrl+a"),
	shortcut(commands.TimeDate, "f5", "f5"),
	shortcut(commands.WordWrap, "alt+z", "alt+z"),
	shortcut(commands.Shortcuts, "f1", "f1"),
}

// windowCommands still run while the find dialog holds focus. The dialog's
// text fields keep the editing keys.
var windowCommands = map[commands.ID]bool{
	commands.New:       true,
	commands.NewWindow: true,
	commands.Open:      true,
	commands.Save:      true,
	commands.SaveAs:    true,
	commands.Exit:      true,
	commands.WordWrap:  true,
	commands.Shortcuts: true,
}

// WindowShortcut returns the command bound to msg if it is one the find
// dialog lets through
func WindowShortcut(msg tea.KeyMsg) (commands.ID, bool) {
	for _, s := range Shortcuts {
		if windowCommands[s.Command] && key.Matches(msg, s.Binding) {
			return s.Command, true
		}
	}
	return 0, false
}

type motionKey struct {
	keys   []string
	motion types.Motion
	extend bool
}

var motions = []motionKey{
	{[]string{"left"}, types.MotionLeft, false},
	{[]string{"shift+left"}, types.MotionLeft, true},
	{[]string{"right"}, types.MotionRight, false},
	{[]string{"shift+right"}, types.MotionRight, true},
	{[]string{"up"}, types.MotionUp, false},
	{[]string{"shift+up"}, types.MotionUp, true},
	{[]string{"down"}, types.MotionDown, false},
	{[]string{"shift+down"}, types.MotionDown, true},
	{[]string{"ctrl+left", "alt+left"}, types.MotionWordLeft, false},
	{[]string{"ctrl+shift+left"}, types.MotionWordLeft, true},
	{[]string{"ctrl+right", "alt+right"}, types.MotionWordRight, false},
	{[]string{"ctrl+shift+right"}, types.MotionWordRight, true},
	{[]string{"home"}, types.MotionLineStart, false},
	{[]string{"shift+home"}, types.MotionLineStart, true},
	{[]string{"end"}, types.MotionLineEnd, false},
	{[]string{"shift+end"}, types.MotionLineEnd, true},
	{[]string{"ctrl+home"}, types.MotionDocStart, false},
	{[]string{"ctrl+shift+home"}, types.MotionDocStart, true},
	{[]string{"ctrl+end"}, types.MotionDocEnd, false},
	{[]string{"ctrl+shift+end"}, types.MotionDocEnd, true},
	{[]string{"pgup"}, types.MotionPageUp, false},
	{[]string{"pgdown"}, types.MotionPageDown, false},
}

// EditMode is the default mode: typing goes into the document
type EditMode struct{}

func NewEditMode() *EditMode {
	return &EditMode{}
}

func (m *EditMode) Name() string {
	return "edit"
}

func (m *EditMode) Enter(ctx types.Context, data interface{}) []types.Action {
	return nil
}

func (m *EditMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *EditMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	for _, s := range Shortcuts {
		if key.Matches(msg, s.Binding) {
			return []types.Action{types.CommandAction{Command: s.Command}}, true
		}
	}

	k := msg.String()
	for _, mk := range motions {
		for _, want := range mk.keys {
			if k == want {
				return []types.Action{types.MoveAction{Motion: mk.motion, Extend: mk.extend}}, true
			}
		}
	}

	switch msg.Type {
	case tea.KeyF10:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeMenu, Data: 0}}, true
	case tea.KeyEnter:
		return []types.Action{types.InsertTextAction{Text: "\n"}}, true
	case tea.KeyTab:
		return []types.Action{types.InsertTextAction{Text: "\t"}}, true
	case tea.KeyBackspace:
		return []types.Action{types.DeleteBackwardAction{}}, true
	case tea.KeyEsc:
		return nil, true
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			if menu := commands.MenuByHotkey(strings.ToLower(string(msg.Runes))); menu >= 0 {
				return []types.Action{types.ChangeModeAction{Mode: types.ModeMenu, Data: menu}}, true
			}
			return nil, true
		}
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace && text == "" {
			text = " "
		}
		if msg.Paste {
			text = normalizePaste(text)
		}
		return []types.Action{types.InsertTextAction{Text: text}}, true
	}

	return nil, false
}

func normalizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
