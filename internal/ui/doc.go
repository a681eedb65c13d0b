// Package ui provides the user interface components for the recipe browser.
//
// # Overview
//
// The ui package implements the visual components using the Bubble Tea
// framework and Lipgloss styling library. Components hold only what they
// need to render; the app package owns the view state and pushes it in.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │                                   │
//	│   Recipe list   │         Recipe detail             │
//	│   (1/3 width)   │         (2/3 width)               │
//	│                 │                                   │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Displays the application title and the selected recipe's title.
// Uses a gradient background with the primary color.
//
// Footer: Shows context-aware keyboard shortcuts, or a flash message that
// clears itself after a few seconds.
//
// RecipeList: Recipe titles with a keyboard and click cursor, the active recipe
// highlighted, and a filter input opened with '/'.
//
// RecipeDetail: Title, yield, ingredients and numbered instructions in a
// scrollable viewport, with a spinner while instructions generate.
//
// HelpOverlay: Every key binding in a centered box.
//
// # Constants
//
// Layout constants are defined in constants.go:
//   - HeaderHeight, FooterHeight: Fixed at 1 line each
//   - BorderSize: 2 (1 on each side)
//   - ListWidthRatio: 3 (list gets 1/3 of width)
//
// # Styles
//
// Styles in styles.go are rebuilt from the active Theme whenever the theme
// changes, so components must read them at render time rather than caching
// rendered strings across a theme switch.
package ui
