// Package finddialog implements the Find and Replace dialog. The dialog owns
// the search parameters, persists every change to the settings store and
// reports what the user asked for as IntentMsg values.
package finddialog

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"notepad/internal/config"
	"notepad/internal/domain"
)

// IntentMsg is emitted when the user triggers a find or replace action
type IntentMsg struct {
	Intent domain.Intent
}

// ClosedMsg is emitted when the dialog is dismissed
type ClosedMsg struct{}

type focus int

const (
	focusQuery focus = iota
	focusReplace
	focusCase
	focusWrap
	focusUp
	focusDown
	focusFindNext
	focusReplaceOne
	focusReplaceAll
	focusCancel
)

type keyMap struct {
	Close       key.Binding
	Next        key.Binding
	Prev        key.Binding
	FocusNext   key.Binding
	FocusPrev   key.Binding
	Activate    key.Binding
	Toggle      key.Binding
	MatchCase   key.Binding
	Wrap        key.Binding
	DirUp       key.Binding
	DirDown     key.Binding
	ReplaceAll  key.Binding
	ReplaceOnce key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:        key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "find next")),
		Prev:        key.NewBinding(key.WithKeys("shift+f3", "f15"), key.WithHelp("shift+f3", "find previous")),
		FocusNext:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		FocusPrev:   key.NewBinding(key.WithKeys("shift+tab")),
		Activate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Toggle:      key.NewBinding(key.WithKeys(" ")),
		MatchCase:   key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "match case")),
		Wrap:        key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "wrap around")),
		DirUp:       key.NewBinding(key.WithKeys("alt+u")),
		DirDown:     key.NewBinding(key.WithKeys("alt+d")),
		ReplaceOnce: key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "replace")),
		ReplaceAll:  key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "replace all")),
	}
}

// Model is the Find/Replace dialog
type Model struct {
	store config.Store
	keys  keyMap

	query   textinput.Model
	replace textinput.Model

	caseSensitive bool
	wrapAround    bool
	direction     domain.Direction

	replaceMode bool
	visible     bool
	focus       focus

	// the query text is selected on open; the first keystroke replaces it
	fresh bool
}

// New creates a hidden dialog with its parameters restored from store
func New(store config.Store) *Model {
	s := store.Settings().Find

	q := textinput.New()
	q.Prompt = ""
	q.CharLimit = 0
	q.SetValue(s.Text)

	r := textinput.New()
	r.Prompt = ""
	r.CharLimit = 0
	r.SetValue(s.ReplaceText)

	dir := domain.Forward
	if !s.Down {
		dir = domain.Backward
	}

	return &Model{
		store:         store,
		keys:          defaultKeys(),
		query:         q,
		replace:       r,
		caseSensitive: s.CaseSensitive,
		wrapAround:    s.WrapAround,
		direction:     dir,
	}
}

// Params returns the current search parameters, including uncommitted text
func (m *Model) Params() domain.SearchParameters {
	return domain.SearchParameters{
		Query:         m.query.Value(),
		Replacement:   m.replace.Value(),
		CaseSensitive: m.caseSensitive,
		WrapAround:    m.wrapAround,
		Direction:     m.direction,
	}
}

func (m *Model) Query() string { return m.query.Value() }
func (m *Model) Replacement() string { return m.replace.Value() }
func (m *Model) CaseSensitive() bool { return m.caseSensitive }
func (m *Model) WrapAround() bool { return m.wrapAround }
func (m *Model) Direction() domain.Direction { return m.direction }
func (m *Model) Visible() bool { return m.visible }
func (m *Model) ReplaceMode() bool { return m.replaceMode }

// SetWidth sizes the text fields
func (m *Model) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	m.query.Width = w
	m.replace.Width = w
}

// Open shows the dialog in find or find+replace layout with the query focused
// and selected
func (m *Model) Open(replace bool) tea.Cmd {
	m.visible = true
	m.replaceMode = replace
	m.fresh = m.query.Value() != ""
	return m.setFocus(focusQuery)
}

// Close hides the dialog. Parameters stay as they are.
func (m *Model) Close() {
	m.visible = false
	m.fresh = false
	m.query.Blur()
	m.replace.Blur()
}

// Update handles input while the dialog is visible
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateField(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Close):
		m.Close()
		return func() tea.Msg { return ClosedMsg{} }
	case key.Matches(keyMsg, m.keys.Next):
		return m.fire(domain.IntentFindNext)
	case key.Matches(keyMsg, m.keys.Prev):
		return m.fire(domain.IntentFindPrevious)
	case key.Matches(keyMsg, m.keys.FocusNext):
		return m.cycle(1)
	case key.Matches(keyMsg, m.keys.FocusPrev):
		return m.cycle(-1)
	case key.Matches(keyMsg, m.keys.MatchCase):
		m.toggleCase()
		return nil
	case key.Matches(keyMsg, m.keys.Wrap):
		m.toggleWrap()
		return nil
	case key.Matches(keyMsg, m.keys.DirUp):
		if !m.replaceMode {
			m.setDirection(domain.Backward)
		}
		return nil
	case key.Matches(keyMsg, m.keys.DirDown):
		if !m.replaceMode {
			m.setDirection(domain.Forward)
		}
		return nil
	case key.Matches(keyMsg, m.keys.ReplaceOnce):
		if m.replaceMode {
			return m.fire(domain.IntentReplaceOne)
		}
		return nil
	case key.Matches(keyMsg, m.keys.ReplaceAll):
		if m.replaceMode {
			return m.fire(domain.IntentReplaceAll)
		}
		return nil
	case key.Matches(keyMsg, m.keys.Activate):
		return m.activate()
	case key.Matches(keyMsg, m.keys.Toggle) && !m.onTextField():
		return m.activate()
	}

	return m.updateField(keyMsg)
}

// activate performs the action of the focused control
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case focusReplace, focusReplaceOne:
		return m.fire(domain.IntentReplaceOne)
	case focusReplaceAll:
		return m.fire(domain.IntentReplaceAll)
	case focusCase:
		m.toggleCase()
		return nil
	case focusWrap:
		m.toggleWrap()
		return nil
	case focusUp:
		m.setDirection(domain.Backward)
		return nil
	case focusDown:
		m.setDirection(domain.Forward)
		return nil
	case focusCancel:
		m.Close()
		return func() tea.Msg { return ClosedMsg{} }
	default:
		return m.fire(m.findIntent())
	}
}

// findIntent is what Find Next means for the current direction
func (m *Model) findIntent() domain.Intent {
	if m.direction == domain.Backward {
		return domain.IntentFindPrevious
	}
	return domain.IntentFindNext
}

// fire commits the typed text and emits intent
func (m *Model) fire(intent domain.Intent) tea.Cmd {
	m.fresh = false
	query := m.query.Value()
	replacement := m.replace.Value()
	replacing := intent == domain.IntentReplaceOne || intent == domain.IntentReplaceAll

	m.persist(func(s *config.FindSettings) {
		s.Text = query
		if replacing {
			s.ReplaceText = replacement
		}
	})

	return func() tea.Msg { return IntentMsg{Intent: intent} }
}

func (m *Model) toggleCase() {
	m.caseSensitive = !m.caseSensitive
	v := m.caseSensitive
	m.persist(func(s *config.FindSettings) { s.CaseSensitive = v })
}

func (m *Model) toggleWrap() {
	m.wrapAround = !m.wrapAround
	v := m.wrapAround
	m.persist(func(s *config.FindSettings) { s.WrapAround = v })
}

func (m *Model) setDirection(d domain.Direction) {
	if m.direction == d {
		return
	}
	m.direction = d
	m.persist(func(s *config.FindSettings) { s.Down = d == domain.Forward })
}

func (m *Model) persist(fn func(*config.FindSettings)) {
	if err := m.store.Update(func(s *config.Settings) { fn(&s.Find) }); err != nil {
		log.Printf("Failed to save find settings: %v", err)
	}
}

// order lists the focusable controls of the current layout
func (m *Model) order() []focus {
	if m.replaceMode {
		return []focus{focusQuery, focusReplace, focusCase, focusWrap, focusFindNext, focusReplaceOne, focusReplaceAll, focusCancel}
	}
	return []focus{focusQuery, focusCase, focusWrap, focusUp, focusDown, focusFindNext, focusCancel}
}

func (m *Model) cycle(delta int) tea.Cmd {
	order := m.order()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.fresh = false
	return m.setFocus(order[idx])
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.query.Blur()
	m.replace.Blur()
	switch f {
	case focusQuery:
		m.query.CursorEnd()
		return m.query.Focus()
	case focusReplace:
		m.replace.CursorEnd()
		return m.replace.Focus()
	}
	return nil
}

func (m *Model) onTextField() bool {
	return m.focus == focusQuery || m.focus == focusReplace
}

// updateField forwards msg to the focused text field
func (m *Model) updateField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusQuery:
		if k, ok := msg.(tea.KeyMsg); ok && m.fresh {
			m.fresh = false
			switch k.Type {
			case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
				m.query.SetValue("")
				if k.Type == tea.KeyBackspace || k.Type == tea.KeyDelete {
					return nil
				}
			}
		}
		m.query, cmd = m.query.Update(msg)
	case focusReplace:
		m.replace, cmd = m.replace.Update(msg)
	}
	return cmd
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(0, 1)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle   = lipgloss.NewStyle().Reverse(true)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fieldStyle   = lipgloss.NewStyle().Underline(true)
	selectedText = lipgloss.NewStyle().Background(lipgloss.Color("238"))
)

// View renders the dialog box, or nothing when hidden
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	if m.replaceMode {
		b.WriteString(titleStyle.Render("Replace"))
	} else {
		b.WriteString(titleStyle.Render("Find"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Find what:    "))
	b.WriteString(m.fieldView(&m.query, focusQuery))
	b.WriteString("\n")
	if m.replaceMode {
		b.WriteString(labelStyle.Render("Replace with: "))
		b.WriteString(m.fieldView(&m.replace, focusReplace))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.control(focusCase, checkbox(m.caseSensitive)+" Match case"))
	b.WriteString("   ")
	b.WriteString(m.control(focusWrap, checkbox(m.wrapAround)+" Wrap around"))
	b.WriteString("\n")

	if !m.replaceMode {
		b.WriteString(labelStyle.Render("Direction: "))
		b.WriteString(m.control(focusUp, radio(m.direction == domain.Backward)+" Up"))
		b.WriteString("  ")
		b.WriteString(m.control(focusDown, radio(m.direction == domain.Forward)+" Down"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	buttons := []string{m.button(focusFindNext, "Find Next")}
	if m.replaceMode {
		buttons = append(buttons, m.button(focusReplaceOne, "Replace"), m.button(focusReplaceAll, "Replace All"))
	}
	buttons = append(buttons, m.button(focusCancel, "Cancel"))
	b.WriteString(strings.Join(buttons, " "))

	return boxStyle.Render(b.String())
}

func (m *Model) fieldView(ti *textinput.Model, f focus) string {
	if f == focusQuery && m.fresh && m.focus == focusQuery {
		return selectedText.Render(ti.Value())
	}
	return fieldStyle.Render(ti.View())
}

func (m *Model) control(f focus, label string) string {
	if m.focus == f {
		return focusStyle.Render(label)
	}
	return labelStyle.Render(label)
}

func (m *Model) button(f focus, label string) string {
	text := "[ " + label + " ]"
	if m.focus == f {
		return focusStyle.Render(text)
	}
	return buttonStyle.Render(text)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func radio(on bool) string {
	if on {
		return "(*)"
	}
	return "( )"
}
