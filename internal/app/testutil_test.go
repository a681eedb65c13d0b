package app

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/osa/recipes/internal/config"
	"github.com/osa/recipes/internal/keys"
	"github.com/osa/recipes/internal/recipe"
	"github.com/osa/recipes/internal/ui"
)

// fakeSource is an in-memory RecipeSource that records instruction fetches.
type fakeSource struct {
	mu           sync.Mutex
	recipes      []recipe.Recipe
	listErr      error
	instructions map[string][]string
	instrErr     error
	listCalls    int
	fetched      []string
}

func (f *fakeSource) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.recipes, nil
}

func (f *fakeSource) GetInstructions(ctx context.Context, title string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, title)
	if f.instrErr != nil {
		return nil, f.instrErr
	}
	return f.instructions[title], nil
}

func sampleRecipes() []recipe.Recipe {
	return []recipe.Recipe{
		{Title: "Pancakes", Yield: 4, Ingredients: []string{"flour", "milk", "eggs"}},
		{Title: "Tomato Soup", Yield: 2, Ingredients: []string{"tomatoes", "stock"}},
		{Title: "Mac & Cheese", Yield: 6, Ingredients: []string{"macaroni", "cheddar"}},
	}
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		recipes: sampleRecipes(),
		instructions: map[string][]string{
			"Pancakes":     {"Mix", "Cook"},
			"Tomato Soup":  {"Simmer", "Blend", "Season"},
			"Mac & Cheese": {"Boil pasta"},
		},
	}
}

// testConfig creates a config that is not backed by a file.
func testConfig() *config.Config {
	return config.Default()
}

// testModel creates a test Model with the given source.
func testModel(source RecipeSource) *Model {
	return New(testConfig(), source, "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(source RecipeSource, width, height int) *Model {
	m := testModel(source)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// loadedModel creates a sized test Model whose recipe list has loaded.
func loadedModel(source *fakeSource) *Model {
	m := testModelWithSize(source, 120, 40)
	m.Update(m.fetchRecipes()())
	return m
}

// resolveInstructions runs the fetch for the latest request and applies it.
func resolveInstructions(m *Model) tea.Cmd {
	req := InstructionRequest{Seq: m.state.Seq(), Title: m.state.Selected.Title}
	_, cmd := m.Update(m.fetchInstructions(req)())
	return cmd
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the resulting command.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// mouseClick creates a left click at the given screen position.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// mouseWheelDown creates a wheel-down event at the given screen position.
func mouseWheelDown(x, y int) tea.MouseWheelMsg {
	return tea.MouseWheelMsg{X: x, Y: y, Button: tea.MouseWheelDown}
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) {
	for _, ch := range text {
		sendKey(m, string(ch))
	}
}

// resetTheme restores the default theme after a test changes it.
func resetTheme() {
	ui.SetTheme(ui.DefaultTheme)
}
