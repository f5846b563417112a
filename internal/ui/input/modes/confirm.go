package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/domain"
	"notepad/internal/ui/input/types"
)

// ConfirmMode asks whether to save changes before the document is replaced
type ConfirmMode struct {
	name string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "save-changes"
}

// DocumentName returns the document the question is about
func (m *ConfirmMode) DocumentName() string {
	return m.name
}

func (m *ConfirmMode) Enter(ctx types.Context, data interface{}) []types.Action {
	if name, ok := data.(string); ok {
		m.name = name
	}
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "y", "Y", "s", "S", "enter":
		return choose(domain.ChoiceSave), true
	case "n", "N", "d", "D":
		return choose(domain.ChoiceDiscard), true
	case "esc", "c", "C":
		return choose(domain.ChoiceCancel), true
	}
	// Modal: swallow everything else
	return nil, true
}

func choose(c domain.SaveChoice) []types.Action {
	return []types.Action{
		types.ChangeModeAction{Mode: types.ModeEdit},
		types.SaveChoiceAction{Choice: c},
	}
}
