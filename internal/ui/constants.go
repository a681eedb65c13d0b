// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// ListWidthRatio is the denominator for the recipe list width (1/3 of total width)
	ListWidthRatio = 3

	// MinListWidth keeps short titles readable on narrow terminals
	MinListWidth = 20

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when the viewport width is unknown
	DefaultWrapWidth = 80
)

// Input limits
const (
	// FilterCharLimit is the character limit for the recipe filter input
	FilterCharLimit = 64
)

// Animation timing
const (
	// SpinnerInterval is how often loading spinners advance a frame
	SpinnerInterval = 100 * time.Millisecond
)

// Application text
const (
	AppTitle          = "Direct Supply Recipes"
	ListTitle         = "Recipes"
	NoRecipesText     = "No recipes."
	NoMatchesText     = "No matches."
	EmptyDetailText   = "Select a recipe to view details."
	IngredientsTitle  = "Ingredients"
	InstructionsTitle = "Instructions"
	HelpTitle         = "Keyboard Shortcuts"
	HelpDismissText   = "Press any key to close"
)

// Help overlay
const (
	HelpKeyWidth = 10
)
