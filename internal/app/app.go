// Package app implements the recipe browser's Bubble Tea model.
package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/osa/recipes/internal/config"
	"github.com/osa/recipes/internal/logger"
	"github.com/osa/recipes/internal/recipe"
	"github.com/osa/recipes/internal/ui"
)

// Focus represents which pane receives key presses
type Focus int

const (
	FocusList Focus = iota
	FocusDetail
)

// RecipeSource is the backend the view reads from. *client.Client
// satisfies it.
type RecipeSource interface {
	ListRecipes(ctx context.Context) ([]recipe.Recipe, error)
	GetInstructions(ctx context.Context, title string) ([]string, error)
}

// Model is the main application model
type Model struct {
	config  *config.Config
	source  RecipeSource
	version string

	header *ui.Header
	footer *ui.Footer
	list   *ui.RecipeList
	detail *ui.RecipeDetail
	help   *ui.HelpOverlay

	state *ViewState

	width         int
	height        int
	focus         Focus
	windowFocused bool

	spinnerFrame int
	spinning     bool

	// ctx is cancelled on quit so in-flight requests stop
	ctx    context.Context
	cancel context.CancelFunc

	log *slog.Logger
}

// New creates a new app model. The recipe list starts loading as soon as
// the program calls Init.
func New(cfg *config.Config, source RecipeSource, version string) *Model {
	ui.SetThemeByName(cfg.GetTheme())

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		config:        cfg,
		source:        source,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		list:          ui.NewRecipeList(),
		detail:        ui.NewRecipeDetail(),
		help:          ui.NewHelpOverlay(),
		state:         NewViewState(),
		focus:         FocusList,
		windowFocused: true,
		ctx:           ctx,
		cancel:        cancel,
		log:           logger.WithComponent("app"),
	}

	m.state.BeginLoadRecipes()
	m.syncViews()
	return m
}

// Init issues the initial recipe list fetch
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchRecipes(), m.startSpinner())
}

// State returns the current view state
func (m *Model) State() *ViewState {
	return m.state
}

// FocusedPane returns the pane that receives key presses
func (m *Model) FocusedPane() Focus {
	return m.focus
}

// Version returns the version the model was built with
func (m *Model) Version() string {
	return m.version
}

// setFocus moves key focus to the given pane
func (m *Model) setFocus(focus Focus) {
	m.focus = focus
	m.list.SetFocused(focus == FocusList)
	m.detail.SetFocused(focus == FocusDetail)
}

// fetchRecipes returns a command that loads the recipe list
func (m *Model) fetchRecipes() tea.Cmd {
	ctx := m.ctx
	source := m.source
	return func() tea.Msg {
		recipes, err := source.ListRecipes(ctx)
		return RecipesLoadedMsg{Recipes: recipes, Err: err}
	}
}

// fetchInstructions returns a command that loads instructions for req
func (m *Model) fetchInstructions(req InstructionRequest) tea.Cmd {
	ctx := m.ctx
	source := m.source
	return func() tea.Msg {
		steps, err := source.GetInstructions(ctx, req.Title)
		return InstructionsLoadedMsg{Seq: req.Seq, Title: req.Title, Steps: steps, Err: err}
	}
}

// selectRecipe makes r the selected recipe and fetches its instructions
func (m *Model) selectRecipe(r recipe.Recipe) tea.Cmd {
	req := m.state.Select(r)
	m.log.Debug("recipe selected", "title", r.Title, "seq", req.Seq)
	m.syncViews()
	return tea.Batch(m.fetchInstructions(req), m.startSpinner())
}

// RefreshInstructions fetches the selected recipe's instructions again.
// It does nothing when no recipe is selected.
func (m *Model) RefreshInstructions() tea.Cmd {
	req, ok := m.state.Refresh()
	if !ok {
		return nil
	}
	m.log.Debug("regenerating instructions", "title", req.Title, "seq", req.Seq)
	m.syncViews()
	return tea.Batch(m.fetchInstructions(req), m.startSpinner())
}

// ReloadRecipes fetches the recipe list again
func (m *Model) ReloadRecipes() tea.Cmd {
	m.state.BeginLoadRecipes()
	m.syncViews()
	return tea.Batch(m.fetchRecipes(), m.startSpinner())
}

// startSpinner begins ticking the spinner unless it is already running
func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return ui.SpinnerTick()
}

// syncViews pushes the view state into the UI components
func (m *Model) syncViews() {
	selected := m.state.Selected

	m.list.SetLoading(m.state.RecipesLoading)
	m.list.SetActive(selected)
	m.detail.SetRecipe(selected)
	m.detail.SetInstructions(m.state.Instructions, m.state.InstructionsLoading)

	var title string
	if selected != nil {
		title = selected.Title
	}
	m.header.SetSelectedTitle(title)
	m.header.SetLoading(m.state.Loading())

	if selected == nil && m.focus == FocusDetail {
		m.setFocus(FocusList)
	}
	m.updateFooterContext()
}

// quit cancels in-flight requests and exits
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.log.Info("quitting")
	m.cancel()
	return m, tea.Quit
}
