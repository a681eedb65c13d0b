package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/osa/recipes/internal/recipe"
)

// RecipeDetail is the right pane showing the selected recipe, its
// ingredients and its generated instructions.
type RecipeDetail struct {
	viewport     viewport.Model
	width        int
	height       int
	focused      bool
	recipe       *recipe.Recipe
	instructions []string
	loading      bool
	spinnerFrame int
}

// NewRecipeDetail creates an empty detail pane
func NewRecipeDetail() *RecipeDetail {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &RecipeDetail{viewport: vp}
}

// SetSize sets the panel dimensions, borders included
func (d *RecipeDetail) SetSize(width, height int) {
	d.width = width
	d.height = height

	ctx := GetViewContext()
	d.viewport.SetWidth(ctx.InnerWidth(width))
	d.viewport.SetHeight(ctx.InnerHeight(height))
	d.refresh()
}

// SetFocused sets the focus state
func (d *RecipeDetail) SetFocused(focused bool) {
	d.focused = focused
}

// IsFocused returns the focus state
func (d *RecipeDetail) IsFocused() bool {
	return d.focused
}

// SetRecipe shows r, or the empty state when r is nil. Switching to a
// different recipe scrolls back to the top.
func (d *RecipeDetail) SetRecipe(r *recipe.Recipe) {
	if !recipe.SameRecipe(d.recipe, r) {
		d.viewport.GotoTop()
	}
	if r == nil {
		d.recipe = nil
	} else {
		cp := *r
		d.recipe = &cp
	}
	d.refresh()
}

// Recipe returns the recipe being shown, or nil
func (d *RecipeDetail) Recipe() *recipe.Recipe {
	return d.recipe
}

// SetInstructions sets the steps and whether a fetch is in flight
func (d *RecipeDetail) SetInstructions(steps []string, loading bool) {
	d.instructions = steps
	d.loading = loading
	d.refresh()
}

// SetSpinnerFrame sets the spinner animation frame
func (d *RecipeDetail) SetSpinnerFrame(frame int) {
	d.spinnerFrame = frame
	if d.loading {
		d.refresh()
	}
}

// AtTop reports whether the details are scrolled to the top
func (d *RecipeDetail) AtTop() bool {
	return d.viewport.AtTop()
}

// refresh re-renders the viewport content from the current state
func (d *RecipeDetail) refresh() {
	if d.recipe == nil {
		d.viewport.SetContent("")
		return
	}
	d.viewport.SetContent(d.renderContent())
}

// wrapWidth returns the usable text width inside the viewport
func (d *RecipeDetail) wrapWidth() int {
	if w := d.viewport.Width(); w > 0 {
		return w
	}
	return DefaultWrapWidth
}

// renderContent renders title, yield, ingredients and instructions
func (d *RecipeDetail) renderContent() string {
	width := d.wrapWidth()
	r := d.recipe

	var sb strings.Builder
	sb.WriteString(DetailTitleStyle.Width(width).Render(r.Title))
	sb.WriteString("\n")
	sb.WriteString(DetailYieldStyle.Render("Serves: " + strconv.Itoa(r.Yield)))
	sb.WriteString("\n\n")

	sb.WriteString(DetailSectionStyle.Render(IngredientsTitle))
	sb.WriteString("\n")
	for _, ing := range r.Ingredients {
		sb.WriteString(renderListItem(BulletStyle.Render("•"), 2, ing, width))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(DetailSectionStyle.Render(InstructionsTitle))
	sb.WriteString("\n")
	if d.loading {
		sb.WriteString(RenderSpinner("Generating instructions", d.spinnerFrame))
		return sb.String()
	}

	// Right-align step numbers so step text lines up past step 9
	numWidth := len(strconv.Itoa(len(d.instructions))) + 1
	for i, step := range d.instructions {
		marker := StepNumberStyle.Render(fmt.Sprintf("%*s", numWidth, strconv.Itoa(i+1)+"."))
		sb.WriteString(renderListItem(marker, numWidth+1, step, width))
		sb.WriteString("\n")
	}
	if len(d.instructions) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(ActionKeyStyle.Render("[g]") + " " + ActionDescStyle.Render("Regenerate"))
	return sb.String()
}

// renderListItem renders marker followed by text wrapped to width, with
// continuation lines indented past the marker.
func renderListItem(marker string, indent int, text string, width int) string {
	textWidth := max(width-indent, 1)
	wrapped := StepTextStyle.Width(textWidth).Render(text)
	lines := strings.Split(wrapped, "\n")

	pad := strings.Repeat(" ", indent)
	var sb strings.Builder
	sb.WriteString(marker + " " + lines[0])
	for _, line := range lines[1:] {
		sb.WriteString("\n" + pad + line)
	}
	return sb.String()
}

// Update handles scrolling keys and mouse wheel events
func (d *RecipeDetail) Update(msg tea.Msg) (*RecipeDetail, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyPressMsg:
		if !d.focused {
			return d, nil
		}
	case tea.MouseWheelMsg:
	default:
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// ScrollKey scrolls the details with a paging key regardless of focus
func (d *RecipeDetail) ScrollKey(msg tea.KeyPressMsg) tea.Cmd {
	if d.recipe == nil {
		return nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// View renders the detail panel
func (d *RecipeDetail) View() string {
	style := PanelStyle
	if d.focused {
		style = PanelFocusedStyle
	}

	var content string
	if d.recipe == nil {
		ctx := GetViewContext()
		content = placeEmpty(ctx.InnerWidth(d.width), ctx.InnerHeight(d.height))
	} else {
		content = d.viewport.View()
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(d.width).Height(d.height).Render(content)
}

// ScrollPercent reports how far the details are scrolled, from 0 to 1
func (d *RecipeDetail) ScrollPercent() float64 {
	return d.viewport.ScrollPercent()
}

// placeEmpty centers the empty-state message in the panel
func placeEmpty(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, EmptyStateStyle.Render(EmptyDetailText))
}
