package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentOpened EventType = "DocumentOpened"
	EventDocumentSaved  EventType = "DocumentSaved"
	EventDocumentReset  EventType = "DocumentReset"
	EventFileChanged    EventType = "FileChanged"
	EventError          EventType = "Error"
	EventSettingsSaved  EventType = "SettingsSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentOpenedEvent is emitted after a file has been loaded into the editor
type DocumentOpenedEvent struct {
	Path string
}

func (e DocumentOpenedEvent) Type() EventType { return EventDocumentOpened }

// DocumentSavedEvent is emitted after a successful write
type DocumentSavedEvent struct {
	Path  string
	Bytes int
}

func (e DocumentSavedEvent) Type() EventType { return EventDocumentSaved }

// DocumentResetEvent is emitted when the editor switches to a new untitled document
type DocumentResetEvent struct{}

func (e DocumentResetEvent) Type() EventType { return EventDocumentReset }

// FileChangedEvent is emitted when the open file is modified by another process
type FileChangedEvent struct {
	Path    string
	Removed bool
}

func (e FileChangedEvent) Type() EventType { return EventFileChanged }

// ErrorEvent is emitted when an operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SettingsSavedEvent is emitted after the settings file has been written
type SettingsSavedEvent struct {
	Path string
}

func (e SettingsSavedEvent) Type() EventType { return EventSettingsSaved }
