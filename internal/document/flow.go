package document

import (
	"notepad/internal/domain"
)

// Op is a document transition requested from the menu
type Op int

const (
	OpNew Op = iota
	OpOpen
	OpSave
	OpSaveAs
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpNew:
		return "new"
	case OpOpen:
		return "open"
	case OpSave:
		return "save"
	case OpSaveAs:
		return "save-as"
	case OpClose:
		return "close"
	default:
		return "unknown"
	}
}

// Prompt is a question the UI has to put to the user to continue a transition
type Prompt int

const (
	PromptNone Prompt = iota
	PromptSaveChanges
	PromptSavePath
	PromptOpenPath
)

// Outcome describes where a transition stands after a step.
// Exactly one of Prompt != PromptNone, Done or Cancelled holds.
type Outcome struct {
	Op        Op
	Prompt    Prompt
	Done      bool
	Cancelled bool
	// Reload is set when the editor text must be replaced with SavedContent
	Reload bool
	Err    error
}

type stage int

const (
	stageSaveChanges stage = iota
	stageSavePath
	stageOpenPath
)

// flow is the in-flight transition
type flow struct {
	op    Op
	stage stage

	// after a save, continue with op's own action (new/open/close)
	thenProceed bool

	// save-as clears the path; restore it if the save does not complete
	saveAs   bool
	prevPath string
	prevName string
}

// Begin starts op against the current editor text
func (m *Manager) Begin(op Op, text string) Outcome {
	m.flow = &flow{op: op}

	switch op {
	case OpNew, OpOpen, OpClose:
		if m.Dirty(text) {
			m.flow.stage = stageSaveChanges
			return m.ask(PromptSaveChanges)
		}
		return m.proceed()
	case OpSaveAs:
		m.flow.saveAs = true
		m.flow.prevPath = m.state.Path
		m.flow.prevName = m.state.DisplayName
		m.state.Path = ""
		return m.save(text)
	default:
		return m.save(text)
	}
}

// AnswerSaveChanges continues a transition waiting on PromptSaveChanges
func (m *Manager) AnswerSaveChanges(choice domain.SaveChoice, text string) Outcome {
	if m.flow == nil || m.flow.stage != stageSaveChanges {
		return Outcome{Cancelled: true}
	}
	switch choice {
	case domain.ChoiceSave:
		m.flow.thenProceed = true
		return m.save(text)
	case domain.ChoiceDiscard:
		return m.proceed()
	default:
		return m.cancel()
	}
}

// AnswerPath continues a transition waiting on PromptSavePath or
// PromptOpenPath. ok is false when the user dismissed the prompt.
func (m *Manager) AnswerPath(path string, ok bool, text string) Outcome {
	if m.flow == nil {
		return Outcome{Cancelled: true}
	}
	if !ok || path == "" {
		return m.cancel()
	}

	switch m.flow.stage {
	case stageSavePath:
		return m.write(path, text)
	case stageOpenPath:
		op := m.flow.op
		if err := m.OpenPath(path); err != nil {
			m.flow = nil
			return Outcome{Op: op, Err: err, Cancelled: true}
		}
		m.flow = nil
		return Outcome{Op: op, Done: true, Reload: true}
	default:
		return m.cancel()
	}
}

// Cancel abandons any in-flight transition
func (m *Manager) Cancel() Outcome {
	if m.flow == nil {
		return Outcome{Cancelled: true}
	}
	return m.cancel()
}

func (m *Manager) ask(p Prompt) Outcome {
	return Outcome{Op: m.flow.op, Prompt: p}
}

// proceed performs op's own action once unsaved changes are dealt with
func (m *Manager) proceed() Outcome {
	op := m.flow.op
	switch op {
	case OpNew:
		m.flow = nil
		m.Reset()
		return Outcome{Op: op, Done: true, Reload: true}
	case OpOpen:
		m.flow.stage = stageOpenPath
		return m.ask(PromptOpenPath)
	default:
		m.flow = nil
		return Outcome{Op: op, Done: true}
	}
}

func (m *Manager) save(text string) Outcome {
	if m.state.Path == "" {
		m.flow.stage = stageSavePath
		return m.ask(PromptSavePath)
	}
	return m.write(m.state.Path, text)
}

func (m *Manager) write(path, text string) Outcome {
	op := m.flow.op
	if err := m.SaveTo(path, text); err != nil {
		m.restore()
		m.flow = nil
		return Outcome{Op: op, Err: err, Cancelled: true}
	}

	if m.flow.thenProceed {
		return m.proceed()
	}
	m.flow = nil
	return Outcome{Op: op, Done: true}
}

func (m *Manager) cancel() Outcome {
	op := m.flow.op
	m.restore()
	m.flow = nil
	return Outcome{Op: op, Cancelled: true}
}

// restore puts back the path save-as cleared
func (m *Manager) restore() {
	if m.flow != nil && m.flow.saveAs {
		m.state.Path = m.flow.prevPath
		m.state.DisplayName = m.flow.prevName
	}
}

// Prompter answers the questions a transition asks
type Prompter interface {
	AskSave(name string) domain.SaveChoice
	AskOpenPath(dir string) (string, bool)
	AskSavePath(dir string) (string, bool)
}

// Run drives op to completion with synchronous prompts. A cancelled outcome
// with a nil Err means the user backed out.
func (m *Manager) Run(op Op, text string, p Prompter) Outcome {
	out := m.Begin(op, text)
	for out.Prompt != PromptNone {
		switch out.Prompt {
		case PromptSaveChanges:
			out = m.AnswerSaveChanges(p.AskSave(m.state.DisplayName), text)
		case PromptSavePath:
			path, ok := p.AskSavePath(m.LastDir())
			out = m.AnswerPath(path, ok, text)
		case PromptOpenPath:
			path, ok := p.AskOpenPath(m.LastDir())
			out = m.AnswerPath(path, ok, text)
		}
	}
	return out
}
