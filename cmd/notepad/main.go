package main

import (
	"flag"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"notepad/internal/codec"
	"notepad/internal/config"
	"notepad/internal/document"
	"notepad/internal/editor"
	"notepad/internal/eventbus"
	"notepad/internal/launcher"
	"notepad/internal/textbuf"
	"notepad/internal/ui"
	"notepad/internal/ui/finddialog"
	"notepad/internal/watcher"
)

// options holds the parsed command line
type options struct {
	newWindow bool
	path      string
}

func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("notepad", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&opts.newWindow, launcher.NewWindowFlag[1:], false, "window started by File > New Window")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: notepad [-new] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.path = fs.Arg(0)
	default:
		fs.Usage()
		return options{}, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Set up logging
	logFile, err := openLogFile()
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if opts.newWindow {
		log.Printf("Started as a new window")
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load settings
	var store config.Store
	store, err = config.NewFileStore(config.DefaultPath(), bus)
	if err != nil {
		log.Printf("Error loading settings: %v", err)
		// Use default settings for this session
		store = config.NewMemoryStore(config.DefaultSettings())
	}

	docs := document.NewManager(afero.NewOsFs(), codec.Default(), store, bus)
	find := finddialog.New(store)
	ctrl := editor.New(textbuf.New(), docs, find, editor.NewSystemClipboard())

	fw, err := watcher.New(bus)
	if err != nil {
		log.Printf("File watcher unavailable: %v", err)
	} else {
		defer fw.Close()
	}

	// Create UI model
	uiModel := ui.NewModel(store, ctrl, find, launcher.New())

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			// Channel full, drop event
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventFileChanged, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if opts.path != "" {
		openInitial(docs, ctrl, opts.path)
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup: stop the dispatcher before closing the channel it feeds
	bus.Close()
	close(eventChan)
}

// openInitial loads the file named on the command line. Failures are
// reported through the bus and leave an untitled document.
func openInitial(docs *document.Manager, ctrl *editor.Controller, path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := docs.OpenPath(path); err != nil {
		return
	}
	ctrl.Reload()
}

// openLogFile opens notepad.log under the user cache directory
func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "notepad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "notepad.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}
