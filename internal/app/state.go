package app

import (
	"github.com/osa/recipes/internal/recipe"
)

// ViewState is the observable state of the recipe view.
//
// Two independent flows drive it. The recipe list goes Idle, Loading,
// Loaded. Instructions go Empty, Loading, Loaded once per selection or
// refresh. Every instruction request is tagged with a sequence number and
// only the result carrying the latest number is applied, so a slow
// response for an earlier selection can never overwrite a newer one.
//
// ViewState is owned by the Bubble Tea event loop and is not safe for
// concurrent use.
type ViewState struct {
	Recipes             []recipe.Recipe
	RecipesLoading      bool
	Selected            *recipe.Recipe
	Instructions        []string
	InstructionsLoading bool

	seq uint64 // tag of the latest instruction request
}

// InstructionRequest describes a fetch the caller must issue.
type InstructionRequest struct {
	Seq   uint64
	Title string
}

// NewViewState returns the initial state: no recipes, nothing selected.
func NewViewState() *ViewState {
	return &ViewState{
		Recipes:      []recipe.Recipe{},
		Instructions: []string{},
	}
}

// BeginLoadRecipes enters the Loading state of the list flow.
func (s *ViewState) BeginLoadRecipes() {
	s.RecipesLoading = true
}

// FinishLoadRecipes applies a list result. A failed fetch yields an empty
// list. The current selection survives when its title is still listed and
// is otherwise cleared together with its instructions.
func (s *ViewState) FinishLoadRecipes(recipes []recipe.Recipe, err error) {
	if err != nil || recipes == nil {
		recipes = []recipe.Recipe{}
	}
	s.Recipes = recipes
	s.RecipesLoading = false

	if s.Selected == nil {
		return
	}
	if found := recipe.Find(recipes, s.Selected.Title); found != nil {
		s.Selected = found
		return
	}
	s.clearSelection()
}

// clearSelection drops the selection and invalidates any in-flight fetch.
func (s *ViewState) clearSelection() {
	s.Selected = nil
	s.Instructions = []string{}
	s.InstructionsLoading = false
	s.seq++
}

// Select makes r the selected recipe, clears its instructions immediately
// and returns the fetch to issue.
func (s *ViewState) Select(r recipe.Recipe) InstructionRequest {
	selected := r
	s.Selected = &selected
	s.Instructions = []string{}
	s.InstructionsLoading = true
	s.seq++
	return InstructionRequest{Seq: s.seq, Title: r.Title}
}

// Refresh re-runs the instruction flow for the current selection.
// It reports false, and leaves the state untouched, when nothing is selected.
func (s *ViewState) Refresh() (InstructionRequest, bool) {
	if s.Selected == nil {
		return InstructionRequest{}, false
	}
	return s.Select(*s.Selected), true
}

// FinishInstructions applies an instruction result. Results for anything but
// the latest request are discarded and false is returned. A failed fetch
// yields an empty list.
func (s *ViewState) FinishInstructions(seq uint64, steps []string, err error) bool {
	if seq != s.seq {
		return false
	}
	if err != nil || steps == nil {
		steps = []string{}
	}
	s.Instructions = steps
	s.InstructionsLoading = false
	return true
}

// Seq returns the tag of the latest instruction request.
func (s *ViewState) Seq() uint64 {
	return s.seq
}

// Loading reports whether either flow is waiting on the backend.
func (s *ViewState) Loading() bool {
	return s.RecipesLoading || s.InstructionsLoading
}
