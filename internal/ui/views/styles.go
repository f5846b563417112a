package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	MenuBar        lipgloss.Style
	MenuTitle      lipgloss.Style
	MenuTitleOpen  lipgloss.Style
	MenuBox        lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuShortcut   lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	StatusWarning  lipgloss.Style
	Dialog         lipgloss.Style
	DialogTitle    lipgloss.Style
	Key            lipgloss.Style
	Dim            lipgloss.Style
	Selection      lipgloss.Style
	Cursor         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		MenuBar:   lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		MenuTitle: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")).Padding(0, 1),
		MenuTitleOpen: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		MenuBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		MenuItem:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
		MenuShortcut:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250")),
		StatusError:    lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("203")), // red
		StatusWarning:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("214")), // yellow
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Key:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("255")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
	}
}

// Font is a named text style for the editing surface
type Font struct {
	Name  string
	Style lipgloss.Style
}

// Fonts lists the styles Format > Font cycles through
var Fonts = []Font{
	{Name: "Default", Style: lipgloss.NewStyle()},
	{Name: "Bold", Style: lipgloss.NewStyle().Bold(true)},
	{Name: "Light", Style: lipgloss.NewStyle().Faint(true)},
	{Name: "Italic", Style: lipgloss.NewStyle().Italic(true)},
	{Name: "Amber", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("214"))},
	{Name: "Green", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("78"))},
}

// FontNamed returns the font called name, or the default font
func FontNamed(name string) Font {
	for _, f := range Fonts {
		if f.Name == name {
			return f
		}
	}
	return Fonts[0]
}

// NextFont returns the font after name in the cycle
func NextFont(name string) Font {
	for i, f := range Fonts {
		if f.Name == name {
			return Fonts[(i+1)%len(Fonts)]
		}
	}
	return Fonts[1]
}
