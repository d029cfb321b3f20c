// Package styles provides shared lipgloss styles for UI components.
//
// Colors come from the active [Theme]; call [Init] once after the
// configuration is loaded and before rendering anything.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme.
var (
	// Primary is the main accent color (titles, borders)
	Primary color.Color = DefaultTheme.Primary

	// Accent is the highlight color for the selected item
	Accent color.Color = DefaultTheme.Accent

	// Muted is used for help text and secondary details
	Muted color.Color = DefaultTheme.Muted

	// Normal is the standard text color
	Normal color.Color = DefaultTheme.Normal

	// Error is used for error messages
	Error color.Color = DefaultTheme.Error
)

// Common styles, rebuilt by applyTheme.
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// TitleStyle renders prompt titles
	TitleStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// AccentStyle renders the item under the cursor
	AccentStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// NormalStyle renders unselected items
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)

	// MutedStyle renders help text and details
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// ErrorStyle renders errors
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// HighlightStyle marks fuzzy-matched characters
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
)
