// Package launcher starts things outside the editor: the web browser for help
// and web search, and a second editor window.
package launcher

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

const (
	HelpURL     = "https://support.microsoft.com/windows/notepad"
	FeedbackURL = "https://github.com/notepad-go/notepad/issues"
	searchURL   = "https://cn.bing.com/search?q=%s&form=NPCTXT"
)

// NewWindowFlag is passed to a spawned editor so it starts with an empty
// document
const NewWindowFlag = "-new"

// ErrNoTerminal is returned when no way to open another terminal window is found
var ErrNoTerminal = errors.New("no terminal available for a new window")

// Launcher opens URLs and spawns editor windows
type Launcher struct {
	goos       string
	getenv     func(string) string
	lookPath   func(string) (string, error)
	executable func() (string, error)
	start      func(name string, args ...string) error
}

// New returns a launcher for the running OS
func New() *Launcher {
	return &Launcher{
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
		lookPath:   exec.LookPath,
		executable: os.Executable,
		start:      startDetached,
	}
}

// SearchURL returns the web search URL for text
func SearchURL(text string) string {
	return fmt.Sprintf(searchURL, Escape(text))
}

// Escape percent-encodes every byte of s's UTF-8 form except unreserved
// characters, so spaces become %20 rather than +
func Escape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// OpenURL opens url in the default browser
func (l *Launcher) OpenURL(url string) error {
	var name string
	var args []string
	switch l.goos {
	case "darwin":
		name, args = "open", []string{url}
	case "windows":
		name, args = "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		name, args = "xdg-open", []string{url}
	}

	log.Printf("open url: %s", url)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// Search opens a web search for text
func (l *Launcher) Search(text string) error {
	return l.OpenURL(SearchURL(text))
}

// NewWindow starts another editor with an empty document in a new terminal
// window: a tmux window when running inside tmux, otherwise $TERMINAL or the
// platform terminal.
func (l *Launcher) NewWindow() error {
	exe, err := l.executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	name, args, err := l.terminalCommand(exe)
	if err != nil {
		return err
	}

	log.Printf("new window: %s %s", name, strings.Join(args, " "))
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to start new window: %w", err)
	}
	return nil
}

func (l *Launcher) terminalCommand(exe string) (string, []string, error) {
	if l.getenv("TMUX") != "" {
		return "tmux", []string{"new-window", exe, NewWindowFlag}, nil
	}
	if term := l.getenv("TERMINAL"); term != "" {
		return term, []string{"-e", exe, NewWindowFlag}, nil
	}

	switch l.goos {
	case "darwin":
		// Terminal.app cannot pass arguments; a fresh start is untitled anyway
		return "open", []string{"-n", "-a", "Terminal", exe}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", exe, NewWindowFlag}, nil
	}

	if path, err := l.lookPath("x-terminal-emulator"); err == nil {
		return path, []string{"-e", exe, NewWindowFlag}, nil
	}
	return "", nil, ErrNoTerminal
}

// startDetached starts a process without waiting for it. The process is
// reaped in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("%s exited: %v", name, err)
		}
	}()
	return nil
}
