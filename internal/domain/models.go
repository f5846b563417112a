package domain

// Direction is the direction a find operation walks the document
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "up"
	}
	return "down"
}

// SearchParameters holds everything the find/replace dialog collects
type SearchParameters struct {
	Query         string
	Replacement   string
	CaseSensitive bool
	WrapAround    bool
	Direction     Direction
}

// Intent is a request raised by the find/replace dialog and carried out by the editor controller
type Intent int

const (
	IntentFindNext Intent = iota
	IntentFindPrevious
	IntentReplaceOne
	IntentReplaceAll
)

func (i Intent) String() string {
	switch i {
	case IntentFindNext:
		return "find-next"
	case IntentFindPrevious:
		return "find-previous"
	case IntentReplaceOne:
		return "replace-one"
	case IntentReplaceAll:
		return "replace-all"
	default:
		return "unknown"
	}
}

// UntitledName is shown for documents that have never been saved
const UntitledName = "Untitled"

// DocumentState is the loaded/saved state of the current document.
// SavedContent is the text as of the last successful load or save; a
// document is dirty exactly when the editor text differs from it.
type DocumentState struct {
	Path         string // empty for an untitled document
	DisplayName  string
	SavedContent string
}

// Dirty reports whether current differs from the last saved snapshot
func (s DocumentState) Dirty(current string) bool {
	return current != s.SavedContent
}

// SaveChoice is the answer to the "save changes?" prompt
type SaveChoice int

const (
	ChoiceSave SaveChoice = iota
	ChoiceDiscard
	ChoiceCancel
)
