package app

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/osa/recipes/internal/recipe"
)

func TestNewViewState(t *testing.T) {
	s := NewViewState()
	if len(s.Recipes) != 0 || s.RecipesLoading {
		t.Errorf("initial list state = %v loading=%v, want empty idle", s.Recipes, s.RecipesLoading)
	}
	if s.Selected != nil {
		t.Error("nothing should be selected initially")
	}
	if s.Instructions == nil || len(s.Instructions) != 0 || s.InstructionsLoading {
		t.Errorf("initial instructions = %v loading=%v, want empty idle", s.Instructions, s.InstructionsLoading)
	}
}

func TestFinishLoadRecipes_PreservesOrder(t *testing.T) {
	s := NewViewState()
	s.BeginLoadRecipes()
	if !s.RecipesLoading {
		t.Fatal("BeginLoadRecipes should set loading")
	}

	s.FinishLoadRecipes(sampleRecipes(), nil)

	if diff := cmp.Diff(sampleRecipes(), s.Recipes); diff != "" {
		t.Errorf("recipes mismatch (-want +got):\n%s", diff)
	}
	if s.RecipesLoading {
		t.Error("loading should clear after success")
	}
}

func TestFinishLoadRecipes_FailureIsEmpty(t *testing.T) {
	s := NewViewState()
	s.FinishLoadRecipes(sampleRecipes(), nil)
	s.BeginLoadRecipes()

	s.FinishLoadRecipes(nil, errors.New("connection refused"))

	if s.Recipes == nil || len(s.Recipes) != 0 {
		t.Errorf("Recipes = %v, want empty non-nil list", s.Recipes)
	}
	if s.RecipesLoading {
		t.Error("loading should clear after failure")
	}
}

func TestFinishLoadRecipes_Selection(t *testing.T) {
	tests := []struct {
		name         string
		reloaded     []recipe.Recipe
		wantSelected bool
	}{
		{"kept when title still listed", sampleRecipes()[:1], true},
		{"cleared when title missing", sampleRecipes()[1:], false},
		{"cleared on failure", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewViewState()
			s.FinishLoadRecipes(sampleRecipes(), nil)
			req := s.Select(sampleRecipes()[0])
			s.FinishInstructions(req.Seq, []string{"Mix", "Cook"}, nil)

			s.BeginLoadRecipes()
			s.FinishLoadRecipes(tt.reloaded, nil)

			if got := s.Selected != nil; got != tt.wantSelected {
				t.Fatalf("selected = %v, want %v", got, tt.wantSelected)
			}
			if tt.wantSelected {
				if len(s.Instructions) != 2 {
					t.Errorf("instructions should survive, got %v", s.Instructions)
				}
				return
			}
			if len(s.Instructions) != 0 {
				t.Errorf("instructions should be cleared, got %v", s.Instructions)
			}
			if s.FinishInstructions(req.Seq, []string{"late"}, nil) {
				t.Error("a fetch for the cleared selection should be stale")
			}
		})
	}
}

func TestSelect_ClearsInstructionsImmediately(t *testing.T) {
	s := NewViewState()
	first := s.Select(sampleRecipes()[0])
	s.FinishInstructions(first.Seq, []string{"Mix", "Cook"}, nil)

	req := s.Select(sampleRecipes()[1])

	if len(s.Instructions) != 0 {
		t.Errorf("Instructions = %v, want empty before the fetch resolves", s.Instructions)
	}
	if !s.InstructionsLoading {
		t.Error("InstructionsLoading should be true")
	}
	if s.Selected == nil || s.Selected.Title != "Tomato Soup" {
		t.Errorf("Selected = %v, want Tomato Soup", s.Selected)
	}
	if req.Title != "Tomato Soup" || req.Seq != s.Seq() {
		t.Errorf("request = %+v, want Tomato Soup tagged %d", req, s.Seq())
	}
}

func TestFinishInstructions_StaleResultDiscarded(t *testing.T) {
	s := NewViewState()
	reqA := s.Select(sampleRecipes()[0])
	reqB := s.Select(sampleRecipes()[1])

	if !s.FinishInstructions(reqB.Seq, []string{"Simmer", "Blend"}, nil) {
		t.Fatal("latest result should be applied")
	}
	if s.FinishInstructions(reqA.Seq, []string{"Mix", "Cook"}, nil) {
		t.Error("result for the earlier selection should be discarded")
	}

	if diff := cmp.Diff([]string{"Simmer", "Blend"}, s.Instructions); diff != "" {
		t.Errorf("instructions mismatch (-want +got):\n%s", diff)
	}
	if s.Selected.Title != "Tomato Soup" {
		t.Errorf("Selected = %q, want Tomato Soup", s.Selected.Title)
	}
}

func TestFinishInstructions_StaleResultKeepsLoading(t *testing.T) {
	s := NewViewState()
	reqA := s.Select(sampleRecipes()[0])
	s.Select(sampleRecipes()[1])

	s.FinishInstructions(reqA.Seq, []string{"Mix"}, nil)

	if !s.InstructionsLoading {
		t.Error("a stale result must not clear loading")
	}
	if len(s.Instructions) != 0 {
		t.Errorf("Instructions = %v, want empty", s.Instructions)
	}
}

func TestFinishInstructions_FailureIsEmpty(t *testing.T) {
	s := NewViewState()
	req := s.Select(sampleRecipes()[0])

	if !s.FinishInstructions(req.Seq, nil, errors.New("500")) {
		t.Fatal("latest failure should be applied")
	}
	if s.Instructions == nil || len(s.Instructions) != 0 {
		t.Errorf("Instructions = %v, want empty non-nil list", s.Instructions)
	}
	if s.InstructionsLoading {
		t.Error("loading should clear after failure")
	}
}

func TestRefresh_NoSelectionIsNoop(t *testing.T) {
	s := NewViewState()
	s.FinishLoadRecipes(sampleRecipes(), nil)
	before := *s

	if _, ok := s.Refresh(); ok {
		t.Error("Refresh should report nothing to fetch")
	}
	if diff := cmp.Diff(before, *s, cmp.AllowUnexported(ViewState{})); diff != "" {
		t.Errorf("state changed (-before +after):\n%s", diff)
	}
}

func TestRefresh_WithSelection(t *testing.T) {
	s := NewViewState()
	first := s.Select(sampleRecipes()[0])
	s.FinishInstructions(first.Seq, []string{"Mix", "Cook"}, nil)

	req, ok := s.Refresh()
	if !ok {
		t.Fatal("Refresh should issue a fetch")
	}
	if req.Title != "Pancakes" || req.Seq <= first.Seq {
		t.Errorf("request = %+v, want newer Pancakes request", req)
	}
	if len(s.Instructions) != 0 || !s.InstructionsLoading {
		t.Errorf("refresh should clear instructions and load, got %v loading=%v", s.Instructions, s.InstructionsLoading)
	}
	if s.FinishInstructions(first.Seq, []string{"old"}, nil) {
		t.Error("result from before the refresh should be stale")
	}
}

func TestLoading(t *testing.T) {
	s := NewViewState()
	if s.Loading() {
		t.Error("idle state should not be loading")
	}
	s.BeginLoadRecipes()
	if !s.Loading() {
		t.Error("list fetch should count as loading")
	}
	s.FinishLoadRecipes(sampleRecipes(), nil)
	s.Select(sampleRecipes()[0])
	if !s.Loading() {
		t.Error("instruction fetch should count as loading")
	}
}
