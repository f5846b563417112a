package modes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/ui/commands"
	"notepad/internal/ui/input/types"
)

// MenuMode drives the menu bar and its open drop-down
type MenuMode struct {
	menus     []commands.Menu
	menuIndex int
	itemIndex int
}

func NewMenuMode() *MenuMode {
	return &MenuMode{menus: commands.Menus()}
}

func (m *MenuMode) Name() string {
	return "menu"
}

// Enter opens the menu given by data (an index), the first one otherwise
func (m *MenuMode) Enter(ctx types.Context, data interface{}) []types.Action {
	m.menuIndex = 0
	if i, ok := data.(int); ok && i >= 0 && i < len(m.menus) {
		m.menuIndex = i
	}
	m.itemIndex = 0
	return []types.Action{m.highlight()}
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// Current returns the open menu and highlighted item
func (m *MenuMode) Current() (int, int) {
	return m.menuIndex, m.itemIndex
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc", "f10":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEdit}}, true

	case "left":
		m.menuIndex = (m.menuIndex - 1 + len(m.menus)) % len(m.menus)
		m.itemIndex = 0
		return []types.Action{m.highlight()}, true

	case "right":
		m.menuIndex = (m.menuIndex + 1) % len(m.menus)
		m.itemIndex = 0
		return []types.Action{m.highlight()}, true

	case "up":
		items := len(m.menus[m.menuIndex].Items)
		m.itemIndex = (m.itemIndex - 1 + items) % items
		return []types.Action{m.highlight()}, true

	case "down":
		items := len(m.menus[m.menuIndex].Items)
		m.itemIndex = (m.itemIndex + 1) % items
		return []types.Action{m.highlight()}, true

	case "enter", " ":
		return m.run(m.itemIndex), true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		letter := strings.ToLower(string(msg.Runes))
		if msg.Alt {
			if i := commands.MenuByHotkey(letter); i >= 0 {
				m.menuIndex, m.itemIndex = i, 0
				return []types.Action{m.highlight()}, true
			}
			return nil, true
		}
		for i, it := range m.menus[m.menuIndex].Items {
			if strings.HasPrefix(strings.ToLower(it.Label), letter) {
				return m.run(i), true
			}
		}
	}

	// The menu is modal
	return nil, true
}

func (m *MenuMode) run(item int) []types.Action {
	id := m.menus[m.menuIndex].Items[item].ID
	return []types.Action{
		types.ChangeModeAction{Mode: types.ModeEdit},
		types.CommandAction{Command: id},
	}
}

func (m *MenuMode) highlight() types.Action {
	return types.MenuHighlightAction{Menu: m.menuIndex, Item: m.itemIndex}
}
