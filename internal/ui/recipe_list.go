package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/osa/recipes/internal/keys"
	"github.com/osa/recipes/internal/recipe"
)

// RecipeList is the left pane listing recipe titles.
//
// The cursor is a navigation position and is distinct from the active
// recipe, which is the one whose details are shown. The active recipe is
// highlighted by exact title match.
type RecipeList struct {
	recipes      []recipe.Recipe
	filtered     []recipe.Recipe // recipes matching the filter, nil when no filter applies
	cursor       int
	activeTitle  string
	hasActive    bool
	loading      bool
	spinnerFrame int
	width        int
	height       int
	focused      bool
	scrollOffset int

	filterMode  bool
	filterInput textinput.Model
}

// NewRecipeList creates an empty, focused recipe list
func NewRecipeList() *RecipeList {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = FilterCharLimit

	return &RecipeList{
		focused:     true,
		filterInput: ti,
	}
}

// SetSize sets the panel dimensions, borders included
func (l *RecipeList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the panel width
func (l *RecipeList) Width() int {
	return l.width
}

// SetFocused sets the focus state
func (l *RecipeList) SetFocused(focused bool) {
	l.focused = focused
}

// IsFocused returns the focus state
func (l *RecipeList) IsFocused() bool {
	return l.focused
}

// SetLoading toggles the loading spinner
func (l *RecipeList) SetLoading(loading bool) {
	l.loading = loading
}

// IsLoading reports whether the spinner is shown
func (l *RecipeList) IsLoading() bool {
	return l.loading
}

// SetSpinnerFrame sets the spinner animation frame
func (l *RecipeList) SetSpinnerFrame(frame int) {
	l.spinnerFrame = frame
}

// SetRecipes replaces the list. The cursor stays on the same title when it
// is still present, otherwise it is clamped into range.
func (l *RecipeList) SetRecipes(recipes []recipe.Recipe) {
	var cursorTitle string
	if r := l.CursorRecipe(); r != nil {
		cursorTitle = r.Title
	}

	l.recipes = recipes
	l.applyFilter(l.filterInput.Value())

	if cursorTitle != "" && l.moveCursorTo(cursorTitle) {
		return
	}
	l.clampCursor()
}

// Recipes returns every recipe, ignoring the filter
func (l *RecipeList) Recipes() []recipe.Recipe {
	return l.recipes
}

// SetActive marks the recipe whose details are shown. Pass nil to clear.
func (l *RecipeList) SetActive(r *recipe.Recipe) {
	if r == nil {
		l.activeTitle = ""
		l.hasActive = false
		return
	}
	l.activeTitle = r.Title
	l.hasActive = true
}

// IsActive reports whether r is the active recipe
func (l *RecipeList) IsActive(r recipe.Recipe) bool {
	return l.hasActive && r.Title == l.activeTitle
}

// Visible returns the recipes currently displayed
func (l *RecipeList) Visible() []recipe.Recipe {
	if l.filtered != nil {
		return l.filtered
	}
	return l.recipes
}

// Cursor returns the cursor index into Visible
func (l *RecipeList) Cursor() int {
	return l.cursor
}

// CursorRecipe returns a copy of the recipe under the cursor, or nil
func (l *RecipeList) CursorRecipe() *recipe.Recipe {
	visible := l.Visible()
	if l.cursor < 0 || l.cursor >= len(visible) {
		return nil
	}
	r := visible[l.cursor]
	return &r
}

// SelectTitle moves the cursor to title. Returns false if title is not visible.
func (l *RecipeList) SelectTitle(title string) bool {
	return l.moveCursorTo(title)
}

func (l *RecipeList) moveCursorTo(title string) bool {
	for i, r := range l.Visible() {
		if r.Title == title {
			l.cursor = i
			return true
		}
	}
	return false
}

func (l *RecipeList) clampCursor() {
	n := len(l.Visible())
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// EnterFilterMode starts editing the filter, keeping any existing query
func (l *RecipeList) EnterFilterMode() tea.Cmd {
	l.filterMode = true
	return l.filterInput.Focus()
}

// AcceptFilter stops editing but keeps the filter applied
func (l *RecipeList) AcceptFilter() {
	l.filterMode = false
	l.filterInput.Blur()
	if l.filterInput.Value() == "" {
		l.filtered = nil
	}
}

// ClearFilter stops editing and shows every recipe again
func (l *RecipeList) ClearFilter() {
	var cursorTitle string
	if r := l.CursorRecipe(); r != nil {
		cursorTitle = r.Title
	}

	l.filterMode = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.filtered = nil
	l.scrollOffset = 0

	if cursorTitle == "" || !l.moveCursorTo(cursorTitle) {
		l.clampCursor()
	}
}

// IsFilterMode reports whether the filter input is being edited
func (l *RecipeList) IsFilterMode() bool {
	return l.filterMode
}

// HasFilter reports whether a non-empty filter is applied
func (l *RecipeList) HasFilter() bool {
	return l.filterInput.Value() != ""
}

// FilterQuery returns the current filter text
func (l *RecipeList) FilterQuery() string {
	return l.filterInput.Value()
}

// applyFilter narrows the list to titles containing query, ignoring case
func (l *RecipeList) applyFilter(query string) {
	if query == "" {
		l.filtered = nil
		l.clampCursor()
		return
	}

	query = strings.ToLower(query)
	l.filtered = []recipe.Recipe{}
	for _, r := range l.recipes {
		if strings.Contains(strings.ToLower(r.Title), query) {
			l.filtered = append(l.filtered, r)
		}
	}

	l.cursor = 0
	l.scrollOffset = 0
}

// Update handles key presses while the list is focused
func (l *RecipeList) Update(msg tea.Msg) (*RecipeList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused {
		return l, nil
	}

	if l.filterMode {
		switch keyMsg.String() {
		case keys.Up, keys.CtrlP:
			l.moveCursor(-1)
			return l, nil
		case keys.Down, keys.CtrlN:
			l.moveCursor(1)
			return l, nil
		default:
			var cmd tea.Cmd
			l.filterInput, cmd = l.filterInput.Update(msg)
			l.applyFilter(l.filterInput.Value())
			return l, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		l.moveCursor(-1)
	case keys.Down, "j":
		l.moveCursor(1)
	case keys.Home:
		l.cursor = 0
	case keys.End:
		l.cursor = max(len(l.Visible())-1, 0)
	}
	return l, nil
}

// IndexAt returns the index into Visible of the row drawn at panel line y,
// where line 0 is the top border, or -1 when no recipe is drawn there.
func (l *RecipeList) IndexAt(y int) int {
	if l.loading {
		return -1
	}
	row := y - BorderSize/2 - TitleHeight
	if l.filterMode || l.HasFilter() {
		row--
	}
	if row < 0 || row >= l.visibleRows() {
		return -1
	}
	i := l.scrollOffset + row
	if i >= len(l.Visible()) {
		return -1
	}
	return i
}

// SetCursor moves the cursor to index i of Visible
func (l *RecipeList) SetCursor(i int) {
	l.cursor = i
	l.clampCursor()
}

func (l *RecipeList) moveCursor(delta int) {
	l.cursor += delta
	l.clampCursor()
}

// visibleRows is the number of list rows that fit below the title and filter lines
func (l *RecipeList) visibleRows() int {
	rows := GetViewContext().InnerHeight(l.height) - TitleHeight
	if l.filterMode || l.HasFilter() {
		rows--
	}
	return max(rows, 1)
}

// ensureCursorVisible adjusts scrollOffset so the cursor row is on screen
func (l *RecipeList) ensureCursorVisible() {
	rows := l.visibleRows()
	if l.cursor < l.scrollOffset {
		l.scrollOffset = l.cursor
	} else if l.cursor >= l.scrollOffset+rows {
		l.scrollOffset = l.cursor - rows + 1
	}
	maxScroll := max(len(l.Visible())-rows, 0)
	l.scrollOffset = min(max(l.scrollOffset, 0), maxScroll)
}

// View renders the list panel
func (l *RecipeList) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if l.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(l.width)

	var lines []string
	title := PanelTitleStyle.Render(ListTitle)
	if !l.loading && len(l.recipes) > 0 {
		count := fmt.Sprintf(" (%d)", len(l.recipes))
		if l.filtered != nil {
			count = fmt.Sprintf(" (%d/%d)", len(l.filtered), len(l.recipes))
		}
		title += DetailYieldStyle.Render(count)
	}
	lines = append(lines, title)

	if l.filterMode || l.HasFilter() {
		l.filterInput.SetWidth(max(innerWidth-3, 1)) // Leave room for "/ "
		lines = append(lines, FilterPromptStyle.Render("/")+" "+l.filterInput.View())
	}

	visible := l.Visible()
	switch {
	case l.loading:
		lines = append(lines, RenderSpinner("Loading recipes", l.spinnerFrame))
	case len(l.recipes) == 0:
		lines = append(lines, EmptyStateStyle.Render(NoRecipesText))
	case len(visible) == 0:
		lines = append(lines, EmptyStateStyle.Render(NoMatchesText))
	default:
		l.ensureCursorVisible()
		end := min(l.scrollOffset+l.visibleRows(), len(visible))
		for i := l.scrollOffset; i < end; i++ {
			lines = append(lines, l.renderRow(visible[i], i == l.cursor, innerWidth))
		}
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
}

// renderRow renders one title, truncated to a single line
func (l *RecipeList) renderRow(r recipe.Recipe, isCursor bool, innerWidth int) string {
	prefix := "  "
	if isCursor {
		prefix = "> "
	}
	// Row style pads one column on each side
	text := ansi.Truncate(prefix+r.Title, max(innerWidth-2, 1), "…")

	rowStyle := ListItemStyle
	switch {
	case isCursor && l.focused:
		rowStyle = ListSelectedStyle
	case l.IsActive(r):
		rowStyle = ListActiveStyle
	}
	return rowStyle.Width(innerWidth).Render(text)
}
