package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/domain"
	"notepad/internal/ui/commands"
	"notepad/internal/ui/input/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestEditModeInsertsTyping(t *testing.T) {
	h := New()
	ctx := &ModelContext{}

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.InsertTextAction{Text: "a"}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeySpace), ctx)
	assert.Equal(t, []types.Action{types.InsertTextAction{Text: " "}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.InsertTextAction{Text: "\n"}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyTab), ctx)
	assert.Equal(t, []types.Action{types.InsertTextAction{Text: "\t"}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyBackspace), ctx)
	assert.Equal(t, []types.Action{types.DeleteBackwardAction{}}, actions)
}

func TestEditModeShortcuts(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want commands.ID
	}{
		{"save", keyType(tea.KeyCtrlS), commands.Save},
		{"save as", keyType(tea.KeyF12), commands.SaveAs},
		{"find", keyType(tea.KeyCtrlF), commands.Find},
		{"replace", keyType(tea.KeyCtrlR), commands.Replace},
		{"find next", keyType(tea.KeyF3), commands.FindNext},
		{"find previous", keyType(tea.KeyF15), commands.FindPrevious},
		{"delete", keyType(tea.KeyDelete), commands.Delete},
		{"word wrap", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}, Alt: true}, commands.WordWrap},
		{"new window", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}, Alt: true}, commands.NewWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, &ModelContext{})
			assert.Equal(t, []types.Action{types.CommandAction{Command: tt.want}}, actions)
		})
	}
}

func TestEditModeMotions(t *testing.T) {
	h := New()
	ctx := &ModelContext{}

	actions, _ := h.HandleKey(keyType(tea.KeyShiftRight), ctx)
	assert.Equal(t, []types.Action{types.MoveAction{Motion: types.MotionRight, Extend: true}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyCtrlEnd), ctx)
	assert.Equal(t, []types.Action{types.MoveAction{Motion: types.MotionDocEnd}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyPgDown), ctx)
	assert.Equal(t, []types.Action{types.MoveAction{Motion: types.MotionPageDown}}, actions)
}

func TestPastedTextNeverTriggersShortcuts(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x\r\ny"), Paste: true}, &ModelContext{})

	assert.Equal(t, []types.Action{types.InsertTextAction{Text: "x\ny"}}, actions)
}

func TestMenuNavigationAndActivation(t *testing.T) {
	h := New()
	ctx := &ModelContext{}

	actions, _ := h.HandleKey(keyType(tea.KeyF10), ctx)
	require.Equal(t, types.ModeMenu, h.CurrentMode())
	assert.Equal(t, []types.Action{types.MenuHighlightAction{Menu: 0, Item: 0}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyRight), ctx)
	assert.Equal(t, []types.Action{types.MenuHighlightAction{Menu: 1, Item: 0}}, actions)

	h.HandleKey(keyType(tea.KeyDown), ctx)
	menu, item := h.Menu()
	assert.Equal(t, 1, menu)
	assert.Equal(t, 1, item)

	actions, _ = h.HandleKey(keyType(tea.KeyEnter), ctx)
	assert.Equal(t, types.ModeEdit, h.CurrentMode())
	assert.Equal(t, []types.Action{types.CommandAction{Command: commands.Redo}}, actions)
}

func TestMenuWrapsAround(t *testing.T) {
	h := New()
	ctx := &ModelContext{}
	h.HandleKey(keyType(tea.KeyF10), ctx)

	h.HandleKey(keyType(tea.KeyLeft), ctx)
	menu, _ := h.Menu()
	assert.Equal(t, len(commands.Menus())-1, menu)

	h.HandleKey(keyType(tea.KeyUp), ctx)
	_, item := h.Menu()
	assert.Equal(t, len(commands.Menus()[menu].Items)-1, item)
}

func TestAltHotkeyOpensMenuAndLetterRunsItem(t *testing.T) {
	h := New()
	ctx := &ModelContext{}

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true}, ctx)
	require.Equal(t, types.ModeMenu, h.CurrentMode())

	actions, _ := h.HandleKey(runes("x"), ctx)

	assert.Equal(t, types.ModeEdit, h.CurrentMode())
	assert.Equal(t, []types.Action{types.CommandAction{Command: commands.Exit}}, actions)
}

func TestMenuIsModal(t *testing.T) {
	h := New()
	ctx := &ModelContext{}
	h.HandleKey(keyType(tea.KeyF10), ctx)

	actions, _ := h.HandleKey(keyType(tea.KeyCtrlS), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeMenu, h.CurrentMode())

	h.HandleKey(keyType(tea.KeyEsc), ctx)
	assert.Equal(t, types.ModeEdit, h.CurrentMode())
}

func TestPathPromptCollectsText(t *testing.T) {
	h := New()
	ctx := &ModelContext{}

	h.ChangeMode(types.ModeSavePath, "/tmp/", ctx)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "/tmp/", h.TextInput().Value())
	assert.Equal(t, "Save as:", h.Prompt())

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "/tmp/a"}}, actions)

	actions, _ = h.HandleKey(keyType(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "/tmp/a", Mode: types.ModeSavePath}}, actions)
	assert.Equal(t, types.ModeEdit, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestPathPromptEscapeCancels(t *testing.T) {
	h := New()
	ctx := &ModelContext{}
	h.ChangeMode(types.ModeOpenPath, nil, ctx)
	assert.Equal(t, "Open file:", h.Prompt())

	actions, _ := h.HandleKey(keyType(tea.KeyEsc), ctx)

	assert.Equal(t, []types.Action{types.CancelTextAction{Mode: types.ModeOpenPath}}, actions)
	assert.Equal(t, types.ModeEdit, h.CurrentMode())
}

func TestSaveChangesPrompt(t *testing.T) {
	h := New()
	ctx := &ModelContext{}
	h.ChangeMode(types.ModeSaveChanges, "notes", ctx)
	assert.Equal(t, "notes", h.ConfirmName())

	actions, _ := h.HandleKey(runes("x"), ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeSaveChanges, h.CurrentMode())

	actions, _ = h.HandleKey(runes("d"), ctx)
	assert.Equal(t, []types.Action{types.SaveChoiceAction{Choice: domain.ChoiceDiscard}}, actions)
	assert.Equal(t, types.ModeEdit, h.CurrentMode())

	h.ChangeMode(types.ModeSaveChanges, "notes", ctx)
	actions, _ = h.HandleKey(keyType(tea.KeyEnter), ctx)
	assert.Equal(t, []types.Action{types.SaveChoiceAction{Choice: domain.ChoiceSave}}, actions)
}

func TestFindModeLeavesKeysToTheDialog(t *testing.T) {
	h := New()
	h.ChangeMode(types.ModeFind, nil, &ModelContext{})

	actions, cmd := h.HandleKey(runes("a"), &ModelContext{})

	assert.Empty(t, actions)
	assert.Nil(t, cmd)
}
