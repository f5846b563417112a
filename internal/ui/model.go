package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"notepad/internal/config"
	"notepad/internal/document"
	"notepad/internal/domain"
	"notepad/internal/editor"
	"notepad/internal/eventbus"
	"notepad/internal/launcher"
	"notepad/internal/ui/commands"
	"notepad/internal/ui/finddialog"
	"notepad/internal/ui/input"
	"notepad/internal/ui/input/modes"
	inputtypes "notepad/internal/ui/input/types"
	"notepad/internal/ui/views"
)

// statusTimeout is how long a transient status message stays up
const statusTimeout = 4 * time.Second

// Launcher starts processes outside the terminal
type Launcher interface {
	OpenURL(url string) error
	Search(text string) error
	NewWindow() error
}

// Model represents the UI state
type Model struct {
	store config.Store

	ctrl     *editor.Controller
	docs     *document.Manager
	executor *commands.Executor
	find     *finddialog.Model
	launcher Launcher

	inputHandler *input.Handler
	renderer     *views.Renderer
	help         *HelpRenderer
	helpOps      *HelpOps

	width   int
	height  int
	top     int // first visible row
	left    int // first visible column when not wrapping
	goalCol int // column kept across vertical moves, -1 when unset

	wordWrap  bool
	statusBar bool
	font      views.Font

	status    string
	statusErr bool
	statusSeq int

	title       string
	inPagerMode bool // tracks if we're currently in pager mode

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. find must be the parameter source ctrl
// was created with.
func NewModel(store config.Store, ctrl *editor.Controller, find *finddialog.Model, l Launcher) *Model {
	settings := store.Settings()

	m := &Model{
		store:        store,
		ctrl:         ctrl,
		docs:         ctrl.Document(),
		executor:     commands.NewExecutor(ctrl),
		find:         find,
		launcher:     l,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(views.NewStyles()),
		help:         NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		goalCol:      -1,
		wordWrap:     settings.Editor.WordWrap,
		statusBar:    settings.Editor.StatusBar,
		font:         views.FontNamed(settings.Editor.Font),
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.title = m.ctrl.Title()
	return tea.SetWindowTitle(m.title)
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// StatusMessage returns the transient status bar message
func (m *Model) StatusMessage() string {
	return m.status
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.find.SetWidth(min(40, max(msg.Width-30, 10)))
		m.scrollToCursor()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		cmd = m.handleKey(msg)

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}

	return m, tea.Batch(cmd, m.syncTitle())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inputHandler.CurrentMode() == inputtypes.ModeFind {
		id, ok := modes.WindowShortcut(msg)
		if !ok {
			return m.find.Update(msg)
		}
		cmd := m.runCommand(id)
		// a prompt took over the keyboard
		if m.inputHandler.CurrentMode() != inputtypes.ModeFind {
			m.find.Close()
		}
		return cmd
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.context())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Selection: m.ctrl.Buffer().HasSelection(),
		Wrap:      m.wordWrap,
		Status:    m.statusBar,
	}
}

// processAction applies one action produced by the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	buf := m.ctrl.Buffer()

	switch a := action.(type) {
	case inputtypes.MoveAction:
		m.move(a.Motion, a.Extend)

	case inputtypes.InsertTextAction:
		buf.Insert(a.Text)
		m.edited()

	case inputtypes.DeleteBackwardAction:
		buf.DeleteBackward()
		m.edited()

	case inputtypes.CommandAction:
		return m.runCommand(a.Command)

	case inputtypes.SaveChoiceAction:
		return m.handleOutcome(m.docs.AnswerSaveChanges(a.Choice, buf.Text()))

	case inputtypes.SubmitTextAction:
		return m.handleOutcome(m.docs.AnswerPath(strings.TrimSpace(a.Text), true, buf.Text()))

	case inputtypes.CancelTextAction:
		return m.handleOutcome(m.docs.AnswerPath("", false, buf.Text()))

	case inputtypes.MenuHighlightAction, inputtypes.UpdateTextAction, inputtypes.DismissAction:
		// state lives in the input handler

	default:
		log.Printf("ui: unhandled action %s", action.Type())
	}
	return nil
}

// runCommand executes a menu command
func (m *Model) runCommand(id commands.ID) tea.Cmd {
	if res := m.executor.Execute(id); res.Handled {
		if res.Changed {
			m.edited()
		}
		if res.Message != "" {
			return m.setStatus(res.Message, false)
		}
		return nil
	}

	switch id {
	case commands.New:
		return m.beginDocument(document.OpNew)
	case commands.Open:
		return m.beginDocument(document.OpOpen)
	case commands.Save:
		return m.beginDocument(document.OpSave)
	case commands.SaveAs:
		return m.beginDocument(document.OpSaveAs)
	case commands.Exit:
		return m.beginDocument(document.OpClose)

	case commands.Find:
		return m.openFind(false)
	case commands.Replace:
		return m.openFind(true)

	case commands.WordWrap:
		m.wordWrap = !m.wordWrap
		m.left = 0
		m.persist(func(s *config.Settings) { s.Editor.WordWrap = m.wordWrap })
		m.scrollToCursor()
	case commands.StatusBar:
		m.statusBar = !m.statusBar
		m.persist(func(s *config.Settings) { s.Editor.StatusBar = m.statusBar })
		m.scrollToCursor()
	case commands.Font:
		m.font = views.NextFont(m.font.Name)
		m.persist(func(s *config.Settings) { s.Editor.Font = m.font.Name })
		return m.setStatus("Font: "+m.font.Name, false)

	case commands.SearchWeb:
		text := m.ctrl.SearchText()
		return m.launch("web search", func() error { return m.launcher.Search(text) })
	case commands.ViewHelp:
		return m.launch("help", func() error { return m.launcher.OpenURL(launcher.HelpURL) })
	case commands.Feedback:
		return m.launch("feedback", func() error { return m.launcher.OpenURL(launcher.FeedbackURL) })
	case commands.NewWindow:
		return m.launch("new window", m.launcher.NewWindow)

	case commands.Shortcuts:
		if m.program == nil {
			return m.setStatus("Keyboard shortcuts are not available", true)
		}
		return m.fetchHelpPager(m.help.RenderShortcuts())
	case commands.About:
		m.inputHandler.ChangeMode(inputtypes.ModeAbout, nil, m.context())

	default:
		log.Printf("ui: command %s has no handler", id)
	}
	return nil
}

func (m *Model) openFind(replace bool) tea.Cmd {
	m.inputHandler.ChangeMode(inputtypes.ModeFind, nil, m.context())
	return m.find.Open(replace)
}

// beginDocument starts a new/open/save/save-as/close transition
func (m *Model) beginDocument(op document.Op) tea.Cmd {
	log.Printf("ui: begin %s", op)
	return m.handleOutcome(m.docs.Begin(op, m.ctrl.Buffer().Text()))
}

// handleOutcome moves the UI to wherever a document transition stands:
// a prompt, a reloaded buffer, or quitting
func (m *Model) handleOutcome(out document.Outcome) tea.Cmd {
	var cmds []tea.Cmd

	if out.Err != nil {
		cmds = append(cmds, m.setStatus(out.Err.Error(), true))
	}
	if out.Reload {
		m.ctrl.Reload()
		m.top, m.left, m.goalCol = 0, 0, -1
	}

	switch out.Prompt {
	case document.PromptSaveChanges:
		m.inputHandler.ChangeMode(inputtypes.ModeSaveChanges, m.docs.DisplayName(), m.context())
	case document.PromptSavePath:
		m.inputHandler.ChangeMode(inputtypes.ModeSavePath, withSeparator(m.docs.LastDir()), m.context())
	case document.PromptOpenPath:
		m.inputHandler.ChangeMode(inputtypes.ModeOpenPath, withSeparator(m.docs.LastDir()), m.context())
	}

	if out.Done {
		switch out.Op {
		case document.OpClose:
			return tea.Quit
		case document.OpSave, document.OpSaveAs:
			cmds = append(cmds, m.setStatus("Saved "+m.docs.Path(), false))
		}
	}
	return tea.Batch(cmds...)
}

func withSeparator(dir string) string {
	if dir == "" || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

func (m *Model) persist(fn func(*config.Settings)) {
	if err := m.store.Update(fn); err != nil {
		log.Printf("ui: saving settings: %v", err)
	}
}

// launch runs start off the update loop and reports the result
func (m *Model) launch(what string, start func() error) tea.Cmd {
	return func() tea.Msg {
		return launchMsg{what: what, err: start()}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// handleIntent carries out a find dialog request
func (m *Model) handleIntent(intent domain.Intent) tea.Cmd {
	p := m.ctrl.Params()

	if intent == domain.IntentReplaceAll {
		n := m.ctrl.ReplaceAll()
		if n == 0 {
			return m.notFound(p.Query)
		}
		m.edited()
		return m.setStatus(fmt.Sprintf("Replaced %d occurrences", n), false)
	}

	ok := m.ctrl.Dispatch(intent)
	m.edited()
	if !ok && !m.ctrl.Buffer().SelectionMatches(p.Query, p.CaseSensitive) {
		return m.notFound(p.Query)
	}
	return nil
}

func (m *Model) notFound(query string) tea.Cmd {
	if query == "" {
		return nil
	}
	return m.setStatus(fmt.Sprintf("Cannot find %q", query), false)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case finddialog.IntentMsg:
		return m.handleIntent(msg.Intent)

	case finddialog.ClosedMsg:
		if m.inputHandler.CurrentMode() == inputtypes.ModeFind {
			m.inputHandler.ChangeMode(inputtypes.ModeEdit, nil, m.context())
		}
		return nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case launchMsg:
		if msg.err != nil {
			log.Printf("ui: %s: %v", msg.what, msg.err)
			return m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err), true)
		}
		return nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return nil
	}

	// cursor blink and similar for whichever input is focused
	if m.inputHandler.CurrentMode() == inputtypes.ModeFind {
		return m.find.Update(msg)
	}
	return m.inputHandler.Update(msg)
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.FileChangedEvent:
		if !samePath(e.Path, m.docs.Path()) {
			return nil
		}
		if e.Removed {
			return m.setStatus("File was removed from disk", true)
		}
		if m.docs.ChangedOnDisk() {
			return m.setStatus("File changed on disk", true)
		}
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, true)
	}
	return nil
}

// setStatus shows a transient message and schedules its removal
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.status = msg
	m.statusErr = isError
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// syncTitle updates the terminal title when the document name or dirty state changed
func (m *Model) syncTitle() tea.Cmd {
	title := m.ctrl.Title()
	if title == m.title {
		return nil
	}
	m.title = title
	return tea.SetWindowTitle(title)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	buf := m.ctrl.Buffer()
	text, rows := m.layout()
	sel := buf.Selection()
	mode := m.inputHandler.CurrentMode()
	menu, item := m.inputHandler.Menu()

	state := views.ViewState{
		Width:  m.width,
		Height: m.height,
		Menu: views.MenuState{
			Menus:   commands.Menus(),
			Open:    mode == inputtypes.ModeMenu,
			Menu:    menu,
			Item:    item,
			Checked: m.checked,
		},
		Editor: views.EditorState{
			Text:      text,
			Rows:      rows,
			SelStart:  sel.Start(),
			SelEnd:    sel.End(),
			Cursor:    buf.Cursor(),
			Top:       m.top,
			Left:      m.left,
			Font:      m.font,
			HasCursor: mode == inputtypes.ModeEdit || mode == inputtypes.ModeFind,
		},
		ShowStatus: m.statusBar,
		Status: views.StatusState{
			Line:     buf.Position().Line,
			Column:   buf.Position().Column,
			Encoding: encodingLabel(m.docs),
			Message:  m.status,
			IsError:  m.statusErr,
		},
	}

	if m.find.Visible() {
		state.FindDialog = m.find.View()
	}

	switch mode {
	case inputtypes.ModeSaveChanges:
		state.Popup = views.PopupSaveChanges
		state.DocumentName = m.inputHandler.ConfirmName()
	case inputtypes.ModeOpenPath, inputtypes.ModeSavePath:
		state.Popup = views.PopupPath
		state.PathPrompt = m.inputHandler.Prompt()
		if ti := m.inputHandler.TextInput(); ti != nil {
			state.PathInput = ti.View()
		}
	case inputtypes.ModeAbout:
		state.Popup = views.PopupAbout
		state.About = AboutText
	}

	return m.renderer.Render(state)
}

func (m *Model) checked(id commands.ID) bool {
	switch id {
	case commands.WordWrap:
		return m.wordWrap
	case commands.StatusBar:
		return m.statusBar
	}
	return false
}

func encodingLabel(docs *document.Manager) string {
	c := docs.Codec()
	if c.Mismatched() {
		return strings.ToUpper(c.ReadName) + " > " + strings.ToUpper(c.WriteName)
	}
	return strings.ToUpper(c.WriteName)
}
