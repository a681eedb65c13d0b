package app

import "github.com/osa/recipes/internal/recipe"

// RecipesLoadedMsg carries the result of a recipe list fetch
type RecipesLoadedMsg struct {
	Recipes []recipe.Recipe
	Err     error
}

// InstructionsLoadedMsg carries the result of an instruction fetch.
// Seq is the tag returned by ViewState.Select when the fetch was issued.
type InstructionsLoadedMsg struct {
	Seq   uint64
	Title string
	Steps []string
	Err   error
}

// ClipboardResultMsg reports the outcome of copying instructions
type ClipboardResultMsg struct {
	Steps int
	Err   error
}

// ConfigSavedMsg reports the outcome of persisting the config
type ConfigSavedMsg struct {
	Err error
}
