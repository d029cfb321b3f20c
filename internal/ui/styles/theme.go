package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // titles
	Accent  color.Color // selected item, matched characters
	Muted   color.Color // help text, details
	Normal  color.Color // standard text
	Error   color.Color // error messages
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

var (
	// DefaultTheme is the default color scheme (dark only)
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Error:   lipgloss.Color("196"), // red
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Muted:   lipgloss.Color("#6272a4"), // comment
		Normal:  lipgloss.Color("#f8f8f2"), // foreground
		Error:   lipgloss.Color("#ff5555"), // red
	}

	// NordTheme is based on the Nord color scheme (dark)
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Muted:   lipgloss.Color("#4c566a"), // nord3
		Normal:  lipgloss.Color("#eceff4"), // nord6
		Error:   lipgloss.Color("#bf616a"), // nord11
	}

	// NordLightTheme is based on the Nord color scheme (light)
	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"), // nord10
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Muted:   lipgloss.Color("#9a9a9a"),
		Normal:  lipgloss.Color("#2e3440"), // nord0
		Error:   lipgloss.Color("#bf616a"), // nord11
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha (dark)
	CatppuccinMochaTheme = Theme{
		Primary: lipgloss.Color("#89b4fa"), // blue
		Accent:  lipgloss.Color("#f5c2e7"), // pink
		Muted:   lipgloss.Color("#6c7086"), // overlay0
		Normal:  lipgloss.Color("#cdd6f4"), // text
		Error:   lipgloss.Color("#f38ba8"), // red
	}

	// CatppuccinLatteTheme is based on Catppuccin Latte (light)
	CatppuccinLatteTheme = Theme{
		Primary: lipgloss.Color("#1e66f5"), // blue
		Accent:  lipgloss.Color("#ea76cb"), // pink
		Muted:   lipgloss.Color("#9ca0b0"), // overlay0
		Normal:  lipgloss.Color("#4c4f69"), // text
		Error:   lipgloss.Color("#d20f39"), // red
	}

	// NoneTheme renders without colors; bold and underline are kept
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
	}
)

// themeFamilies maps theme names to their variants.
// Keys must match config.ValidThemes.
var themeFamilies = map[string]themeFamily{
	"default":    {Dark: &DefaultTheme},
	"none":       {Light: &NoneTheme, Dark: &NoneTheme},
	"dracula":    {Dark: &DraculaTheme},
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme},
}

// hasDarkBackground is replaced in tests.
var hasDarkBackground = func() bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd()) {
		return true
	}
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

var currentTheme = DefaultTheme

// Current returns the active theme.
func Current() Theme {
	return currentTheme
}

// Init activates the named theme. Unknown or empty names select the
// default theme. For themes with light and dark variants the terminal
// background is queried.
func Init(name string) {
	currentTheme = selectTheme(name)
	applyTheme(currentTheme)
}

// Preset returns the named theme family's dark variant (or its only
// variant), or nil if no such theme exists.
func Preset(name string) *Theme {
	family, ok := themeFamilies[name]
	if !ok {
		return nil
	}
	if family.Dark != nil {
		return family.Dark
	}
	return family.Light
}

func selectTheme(name string) Theme {
	family, ok := themeFamilies[name]
	if !ok {
		family = themeFamilies["default"]
	}

	switch {
	case family.Light == nil:
		return *family.Dark
	case family.Dark == nil:
		return *family.Light
	case family.Light == family.Dark:
		return *family.Dark
	case hasDarkBackground():
		return *family.Dark
	default:
		return *family.Light
	}
}

// applyTheme updates the global color and style variables.
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Muted = t.Muted
	Normal = t.Normal
	Error = t.Error

	TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	HighlightStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
}
