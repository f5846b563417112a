// Package commands names every menu command and lays out the menu bar.
package commands

// ID identifies a menu command
type ID int

const (
	None ID = iota

	// File
	New
	NewWindow
	Open
	Save
	SaveAs
	Exit

	// Edit
	Undo
	Redo
	Cut
	Copy
	Paste
	Delete
	SearchWeb
	Find
	FindNext
	FindPrevious
	Replace
	SelectAll
	TimeDate

	// Format and View
	WordWrap
	Font
	StatusBar

	// Help
	ViewHelp
	Feedback
	Shortcuts
	About
)

// Item is one entry of a drop-down menu
type Item struct {
	ID       ID
	Label    string
	Shortcut string
	// Toggle items show a check mark when on
	Toggle bool
}

// Menu is one drop-down of the menu bar
type Menu struct {
	Title string
	// Hotkey opens the menu together with alt
	Hotkey string
	Items  []Item
}

var menus = []Menu{
	{
		Title:  "File",
		Hotkey: "f",
		Items: []Item{
			{ID: New, Label: "New", Shortcut: "Ctrl+N"},
			{ID: NewWindow, Label: "New Window", Shortcut: "Alt+N"},
			{ID: Open, Label: "Open...", Shortcut: "Ctrl+O"},
			{ID: Save, Label: "Save", Shortcut: "Ctrl+S"},
			{ID: SaveAs, Label: "Save As...", Shortcut: "F12"},
			{ID: Exit, Label: "Exit", Shortcut: "Ctrl+Q"},
		},
	},
	{
		Title:  "Edit",
		Hotkey: "e",
		Items: []Item{
			{ID: Undo, Label: "Undo", Shortcut: "Ctrl+Z"},
			{ID: Redo, Label: "Redo", Shortcut: "Ctrl+Y"},
			{ID: Cut, Label: "Cut", Shortcut: "Ctrl+X"},
			{ID: Copy, Label: "Copy", Shortcut: "Ctrl+C"},
			{ID: Paste, Label: "Paste", Shortcut: "Ctrl+V"},
			{ID: Delete, Label: "Delete", Shortcut: "Del"},
			{ID: SearchWeb, Label: "Search with Bing...", Shortcut: "Ctrl+E"},
			{ID: Find, Label: "Find...", Shortcut: "Ctrl+F"},
			{ID: FindNext, Label: "Find Next", Shortcut: "F3"},
			{ID: FindPrevious, Label: "Find Previous", Shortcut: "Shift+F3"},
			{ID: Replace, Label: "Replace...", Shortcut: "Ctrl+R"},
			{ID: SelectAll, Label: "Select All", Shortcut: "Ctrl+A"},
			{ID: TimeDate, Label: "Time/Date", Shortcut: "F5"},
		},
	},
	{
		Title:  "Format",
		Hotkey: "o",
		Items: []Item{
			{ID: WordWrap, Label: "Word Wrap", Shortcut: "Alt+Z", Toggle: true},
			{ID: Font, Label: "Font..."},
		},
	},
	{
		Title:  "View",
		Hotkey: "v",
		Items: []Item{
			{ID: StatusBar, Label: "Status Bar", Toggle: true},
		},
	},
	{
		Title:  "Help",
		Hotkey: "h",
		Items: []Item{
			{ID: ViewHelp, Label: "View Help"},
			{ID: Feedback, Label: "Send Feedback"},
			{ID: Shortcuts, Label: "Keyboard Shortcuts", Shortcut: "F1"},
			{ID: About, Label: "About Notepad"},
		},
	},
}

// Menus returns the menu bar layout
func Menus() []Menu {
	return menus
}

// MenuByHotkey returns the index of the menu opened by alt+hotkey, or -1
func MenuByHotkey(hotkey string) int {
	for i, m := range menus {
		if m.Hotkey == hotkey {
			return i
		}
	}
	return -1
}

// Lookup returns the menu item for id
func Lookup(id ID) (Item, bool) {
	for _, m := range menus {
		for _, it := range m.Items {
			if it.ID == id {
				return it, true
			}
		}
	}
	return Item{}, false
}

func (id ID) String() string {
	if it, ok := Lookup(id); ok {
		return it.Label
	}
	return "none"
}
