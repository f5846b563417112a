package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Overlay kinds drawn over the editing surface
type Popup int

const (
	PopupNone Popup = iota
	PopupSaveChanges
	PopupPath
	PopupAbout
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Menu       MenuState
	Editor     EditorState
	Status     StatusState
	ShowStatus bool

	// FindDialog is the rendered find/replace dialog, empty when closed
	FindDialog string

	Popup        Popup
	DocumentName string // save changes prompt
	PathPrompt   string // path prompt label
	PathInput    string // rendered text input
	About        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	editor      *EditorRenderer
	menu        *MenuRenderer
	status      *StatusRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{
		styles:      styles,
		editor:      NewEditorRenderer(styles),
		menu:        NewMenuRenderer(styles),
		status:      NewStatusRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the styles the renderer draws with
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// EditorHeight returns how many text rows fit on a screen of height lines
func EditorHeight(height int, showStatus bool) int {
	h := height - 1 // menu bar
	if showStatus {
		h--
	}
	return max(h, 1)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.menu.RenderBar(state.Menu, state.Width))
	b.WriteString("\n")

	ed := state.Editor
	ed.Width = state.Width
	ed.Height = EditorHeight(state.Height, state.ShowStatus)
	b.WriteString(r.editor.Render(ed))

	if state.ShowStatus {
		b.WriteString("\n")
		b.WriteString(r.status.Render(state.Status, state.Width))
	}
	screen := b.String()

	if dd := r.menu.RenderDropdown(state.Menu); dd != "" {
		screen = Overlay(screen, dd, r.menu.TitleOffset(state.Menu, state.Menu.Menu), 1)
	}

	if state.FindDialog != "" {
		x := state.Width - lipgloss.Width(state.FindDialog) - 1
		screen = Overlay(screen, state.FindDialog, max(x, 0), 1)
	}

	switch state.Popup {
	case PopupSaveChanges:
		return r.popupRender.RenderCentered(screen, r.saveChanges(state.DocumentName), state.Width, state.Height)
	case PopupPath:
		content := state.PathInput
		if w := min(60, state.Width-8); w > 0 {
			content = lipgloss.NewStyle().Width(w).Render(content)
		}
		content += "\n\n" + r.styles.Dim.Render("enter to confirm, esc to cancel")
		return r.popupRender.RenderCentered(screen, r.popupRender.RenderDialog(state.PathPrompt, content), state.Width, state.Height)
	case PopupAbout:
		body := state.About + "\n\n" + r.styles.Dim.Render("press any key")
		return r.popupRender.RenderCentered(screen, r.popupRender.RenderDialog("About Notepad", body), state.Width, state.Height)
	}
	return screen
}

func (r *Renderer) saveChanges(name string) string {
	question := fmt.Sprintf("Do you want to save changes to %s?", name)
	choices := fmt.Sprintf("%sSave   %sDon't Save   %sCancel",
		r.styles.Key.Render("[S]"), r.styles.Key.Render("[D]"), r.styles.Key.Render("[C]"))
	return r.popupRender.RenderDialog("Notepad", question+"\n\n"+choices)
}
