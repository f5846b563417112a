// Package document owns the loaded/saved state of the file being edited and
// the new/open/save/save-as/close transitions that are gated on unsaved
// changes.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"notepad/internal/codec"
	"notepad/internal/config"
	"notepad/internal/domain"
	"notepad/internal/eventbus"
)

var (
	// ErrFileNotFound is returned when the file to open does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrFileOpen is returned when a file cannot be read or written
	ErrFileOpen = errors.New("failed to open file")
)

// AppName is shown after the document name in the window title
const AppName = "Notepad"

// Manager holds the current DocumentState and performs file I/O for it
type Manager struct {
	fs    afero.Fs
	codec codec.Codec
	store config.Store
	bus   eventbus.EventBus

	state domain.DocumentState
	// bytes as last read from or written to disk, for external change checks
	diskBytes []byte

	flow *flow
}

// NewManager creates a manager holding an empty untitled document.
// store and bus may be nil.
func NewManager(fs afero.Fs, c codec.Codec, store config.Store, bus eventbus.EventBus) *Manager {
	m := &Manager{fs: fs, codec: c, store: store, bus: bus}
	m.state = domain.DocumentState{DisplayName: domain.UntitledName}
	if c.Mismatched() {
		log.Printf("Files are read as %s but saved as %s; non-ASCII text may not survive open then save", c.ReadName, c.WriteName)
	}
	return m
}

// State returns a copy of the document state
func (m *Manager) State() domain.DocumentState {
	return m.state
}

// Path returns the backing file path, empty when untitled
func (m *Manager) Path() string {
	return m.state.Path
}

// DisplayName returns the name shown in the title bar
func (m *Manager) DisplayName() string {
	return m.state.DisplayName
}

// SavedContent returns the text as of the last load or save
func (m *Manager) SavedContent() string {
	return m.state.SavedContent
}

// Codec returns the read/write encodings in use
func (m *Manager) Codec() codec.Codec {
	return m.codec
}

// Dirty reports whether current has unsaved changes
func (m *Manager) Dirty(current string) bool {
	return m.state.Dirty(current)
}

// Title returns the window title for current text
func (m *Manager) Title(current string) string {
	prefix := ""
	if m.Dirty(current) {
		prefix = "*"
	}
	return prefix + m.state.DisplayName + " - " + AppName
}

// LastDir returns the directory file prompts should start in
func (m *Manager) LastDir() string {
	if m.state.Path != "" {
		return filepath.Dir(m.state.Path)
	}
	if m.store != nil {
		if dir := m.store.Settings().Files.LastDir; dir != "" {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// Reset switches to an empty untitled document
func (m *Manager) Reset() {
	m.state = domain.DocumentState{DisplayName: domain.UntitledName}
	m.diskBytes = nil
	if m.bus != nil {
		m.bus.Publish(eventbus.DocumentResetEvent{})
	}
}

// OpenPath loads the file at path, replacing the document state. On failure
// the current document is left untouched.
func (m *Manager) OpenPath(path string) error {
	exists, err := afero.Exists(m.fs, path)
	if err != nil {
		return m.fail("open", path, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err))
	}
	if !exists {
		return m.fail("open", path, fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return m.fail("open", path, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err))
	}

	text, err := m.codec.Decode(data)
	if err != nil {
		return m.fail("open", path, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err))
	}

	m.state = domain.DocumentState{
		Path:         path,
		DisplayName:  baseName(path),
		SavedContent: normalizeNewlines(text),
	}
	m.diskBytes = data
	m.rememberDir(path)
	log.Printf("open: %s (%d bytes)", path, len(data))

	if m.bus != nil {
		m.bus.Publish(eventbus.DocumentOpenedEvent{Path: path})
	}
	return nil
}

// SaveTo writes text to path and makes path the document's file. The saved
// snapshot only changes when the write succeeds.
func (m *Manager) SaveTo(path, text string) error {
	data, err := m.codec.Encode(text)
	if err != nil {
		return m.fail("save", path, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err))
	}

	if err := afero.WriteFile(m.fs, path, data, 0644); err != nil {
		return m.fail("save", path, fmt.Errorf("%w: %s: %v", ErrFileOpen, path, err))
	}

	m.state = domain.DocumentState{
		Path:         path,
		DisplayName:  baseName(path),
		SavedContent: text,
	}
	m.diskBytes = data
	m.rememberDir(path)
	log.Printf("save: %s %d", path, len([]rune(text)))

	if m.bus != nil {
		m.bus.Publish(eventbus.DocumentSavedEvent{Path: path, Bytes: len(data)})
	}
	return nil
}

// ChangedOnDisk reports whether the backing file no longer holds the bytes
// last read or written by this manager
func (m *Manager) ChangedOnDisk() bool {
	if m.state.Path == "" {
		return false
	}
	data, err := afero.ReadFile(m.fs, m.state.Path)
	if err != nil {
		return true
	}
	return !bytes.Equal(data, m.diskBytes)
}

func (m *Manager) rememberDir(path string) {
	if m.store == nil {
		return
	}
	dir := filepath.Dir(path)
	if m.store.Settings().Files.LastDir == dir {
		return
	}
	if err := m.store.Update(func(s *config.Settings) { s.Files.LastDir = dir }); err != nil {
		log.Printf("Failed to remember directory %s: %v", dir, err)
	}
}

func (m *Manager) fail(op, path string, err error) error {
	log.Printf("%s %s: %v", op, path, err)
	if m.bus != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Cannot %s %s", op, filepath.Base(path)), Err: err})
	}
	return err
}

// baseName returns the file name without directory and extension
func baseName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
