// Package styles provides shared lipgloss styles for the console surface.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette = themes[DefaultTheme]

// SetTheme switches the active palette. Call once at startup after config
// load, before any styled output is produced.
func SetTheme(p Palette) {
	CurrentPalette = p
}

// Styles derived from the active palette.
func Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentPalette.Primary)
}

func Section() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentPalette.Secondary)
}

func Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentPalette.Muted)
}

func Success() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentPalette.Success)
}

func Warning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentPalette.Warning)
}

func Error() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentPalette.Error)
}
