package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"notepad/internal/ui/commands"
)

// AboutText is shown by Help > About Notepad
const AboutText = "Notepad for the terminal\n\nA plain text editor with find and replace."

var errNoProgram = errors.New("program not set")

// HelpRenderer builds the keyboard shortcut sheet
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderShortcuts lists every menu command with its shortcut, grouped by menu
func (r *HelpRenderer) RenderShortcuts() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Notepad Keyboard Shortcuts"))
	help.WriteString("\n")

	keyWidth := 0
	for _, m := range commands.Menus() {
		for _, it := range m.Items {
			keyWidth = max(keyWidth, len(it.Shortcut))
		}
	}
	keyWidth = max(keyWidth, len("Shift+Arrows"))

	line := func(k, desc string) {
		pad := strings.Repeat(" ", keyWidth-len(k))
		help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(k), pad, descStyle.Render(desc)))
	}

	for _, m := range commands.Menus() {
		help.WriteString(sectionStyle.Render(fmt.Sprintf("%s (Alt+%s)", m.Title, strings.ToUpper(m.Hotkey))))
		help.WriteString("\n")
		for _, it := range m.Items {
			if it.Shortcut == "" {
				continue
			}
			line(it.Shortcut, strings.TrimSuffix(it.Label, "..."))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Editing"))
	help.WriteString("\n")
	line("Arrows", "Move the cursor")
	line("Shift+Arrows", "Extend the selection")
	line("Ctrl+Left", "Previous word")
	line("Ctrl+Right", "Next word")
	line("Home/End", "Start/end of line")
	line("Ctrl+Home", "Start of document")
	line("Ctrl+End", "End of document")
	line("PgUp/PgDn", "Page up/down")
	line("F10", "Open the menu bar")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Find and Replace"))
	help.WriteString("\n")
	line("Enter", "Find next, or replace in the replace field")
	line("Tab", "Next control")
	line("Alt+C", "Match case")
	line("Alt+W", "Wrap around")
	line("Alt+U", "Search up")
	line("Alt+D", "Search down")
	line("Alt+R", "Replace")
	line("Alt+A", "Replace all")
	line("Esc", "Close")

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps runs the shortcut pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// SetProgram sets the program reference
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	return h.runPager(strings.NewReader(helpContent))
}

// runPager hands the terminal to ov, feeding it r
func (h *HelpOps) runPager(r io.Reader) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
