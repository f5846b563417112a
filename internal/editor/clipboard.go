package editor

import (
	"log"

	"github.com/atotto/clipboard"
)

// Clipboard is where cut and copied text goes
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// Register is an in-process clipboard
type Register struct {
	text string
}

func (r *Register) WriteAll(text string) error {
	r.text = text
	return nil
}

func (r *Register) ReadAll() (string, error) {
	return r.text, nil
}

// SystemClipboard uses the OS clipboard and keeps a local copy so that
// cut/copy/paste keep working in terminals without clipboard access
type SystemClipboard struct {
	local  Register
	warned bool
}

// NewSystemClipboard returns a clipboard backed by the OS clipboard
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (s *SystemClipboard) WriteAll(text string) error {
	s.local.WriteAll(text)
	if clipboard.Unsupported {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		s.warn(err)
	}
	return nil
}

func (s *SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return s.local.ReadAll()
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		s.warn(err)
		return s.local.ReadAll()
	}
	return text, nil
}

func (s *SystemClipboard) warn(err error) {
	if s.warned {
		return
	}
	s.warned = true
	log.Printf("System clipboard unavailable, using internal clipboard: %v", err)
}
