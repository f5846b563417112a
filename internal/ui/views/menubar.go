package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"notepad/internal/ui/commands"
)

// MenuState describes the menu bar
type MenuState struct {
	Menus []commands.Menu
	Open  bool
	Menu  int
	Item  int
	// Checked reports whether a toggle item is on
	Checked func(commands.ID) bool
}

// MenuRenderer draws the menu bar and the open drop-down
type MenuRenderer struct {
	styles *Styles
}

// NewMenuRenderer creates a menu renderer
func NewMenuRenderer(styles *Styles) *MenuRenderer {
	return &MenuRenderer{styles: styles}
}

// RenderBar renders the one-line menu bar
func (r *MenuRenderer) RenderBar(s MenuState, width int) string {
	var b strings.Builder
	for i, m := range s.Menus {
		st := r.styles.MenuTitle
		if s.Open && i == s.Menu {
			st = r.styles.MenuTitleOpen
		}
		b.WriteString(st.Render(m.Title))
	}
	bar := b.String()
	if pad := width - lipgloss.Width(bar); pad > 0 {
		bar += r.styles.MenuBar.Render(strings.Repeat(" ", pad))
	}
	return bar
}

// TitleOffset returns the column where menu i starts on the bar
func (r *MenuRenderer) TitleOffset(s MenuState, i int) int {
	x := 0
	for j := 0; j < i && j < len(s.Menus); j++ {
		x += lipgloss.Width(r.styles.MenuTitle.Render(s.Menus[j].Title))
	}
	return x
}

// RenderDropdown renders the open menu's items
func (r *MenuRenderer) RenderDropdown(s MenuState) string {
	if !s.Open || s.Menu < 0 || s.Menu >= len(s.Menus) {
		return ""
	}
	items := s.Menus[s.Menu].Items

	labelW, keyW := 0, 0
	for _, it := range items {
		labelW = max(labelW, lipgloss.Width(it.Label))
		keyW = max(keyW, lipgloss.Width(it.Shortcut))
	}

	lines := make([]string, len(items))
	for i, it := range items {
		mark := "  "
		if it.Toggle && s.Checked != nil && s.Checked(it.ID) {
			mark = "✓ "
		}
		label := mark + it.Label + strings.Repeat(" ", labelW-lipgloss.Width(it.Label))
		shortcut := strings.Repeat(" ", keyW-lipgloss.Width(it.Shortcut)) + it.Shortcut
		if i == s.Item {
			lines[i] = r.styles.MenuItemActive.Render(label + "  " + shortcut + " ")
		} else {
			lines[i] = r.styles.MenuItem.Render(label+"  ") + r.styles.MenuShortcut.Render(shortcut+" ")
		}
	}
	return r.styles.MenuBox.Render(strings.Join(lines, "\n"))
}
