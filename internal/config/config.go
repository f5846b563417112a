package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"notepad/internal/eventbus"
)

// Settings represents everything notepad remembers between sessions
type Settings struct {
	Version int            `toml:"version"`
	Find    FindSettings   `toml:"find"`
	Editor  EditorSettings `toml:"editor"`
	Files   FileSettings   `toml:"files"`
}

// FindSettings are the find/replace dialog parameters
type FindSettings struct {
	Text          string `toml:"text"`
	ReplaceText   string `toml:"replace_text"`
	CaseSensitive bool   `toml:"case_sensitive"`
	WrapAround    bool   `toml:"wrap_around"`
	Down          bool   `toml:"down"`
}

// EditorSettings holds view and format menu state
type EditorSettings struct {
	WordWrap  bool   `toml:"word_wrap"`
	StatusBar bool   `toml:"status_bar"`
	Font      string `toml:"font"`
}

// FileSettings holds file dialog state
type FileSettings struct {
	LastDir string `toml:"last_dir"`
}

// Store gives the dialog and the controller read and write access to settings.
// Update persists the change before returning.
type Store interface {
	Settings() Settings
	Update(fn func(*Settings)) error
}

// DefaultSettings returns the settings used when no file exists yet
func DefaultSettings() Settings {
	return Settings{
		Version: 1,
		Find: FindSettings{
			Down: true,
		},
		Editor: EditorSettings{
			WordWrap:  true,
			StatusBar: true,
		},
	}
}

// DefaultPath returns the settings file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "notepad", "settings.toml")
}

// fileStore keeps settings in memory and rewrites the TOML file on every update
type fileStore struct {
	mu       sync.Mutex
	path     string
	bus      eventbus.EventBus
	settings Settings
}

// NewFileStore loads settings from path, falling back to defaults when the
// file does not exist. bus may be nil.
func NewFileStore(path string, bus eventbus.EventBus) (Store, error) {
	s := &fileStore{path: path, bus: bus}
	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.settings = settings
	return s, nil
}

// Load reads settings from a TOML file. Missing keys keep their defaults.
func Load(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// Save writes settings to path as TOML
func Save(settings Settings, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (s *fileStore) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *fileStore) Update(fn func(*Settings)) error {
	s.mu.Lock()
	fn(&s.settings)
	snapshot := s.settings
	s.mu.Unlock()

	if err := Save(snapshot, s.path); err != nil {
		log.Printf("Failed to save settings: %v", err)
		return err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SettingsSavedEvent{Path: s.path})
	}
	return nil
}

// MemoryStore is a Store that never touches the disk
type MemoryStore struct {
	mu       sync.Mutex
	settings Settings
	Writes   int
}

// NewMemoryStore creates a memory-backed store seeded with settings
func NewMemoryStore(settings Settings) *MemoryStore {
	return &MemoryStore{settings: settings}
}

func (s *MemoryStore) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *MemoryStore) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
	s.Writes++
	return nil
}
