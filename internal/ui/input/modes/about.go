package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/ui/input/types"
)

// AboutMode shows the About box until any key is pressed
type AboutMode struct{}

func NewAboutMode() *AboutMode {
	return &AboutMode{}
}

func (m *AboutMode) Name() string {
	return "about"
}

func (m *AboutMode) Enter(ctx types.Context, data interface{}) []types.Action {
	return nil
}

func (m *AboutMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *AboutMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return []types.Action{
		types.ChangeModeAction{Mode: types.ModeEdit},
		types.DismissAction{},
	}, true
}
