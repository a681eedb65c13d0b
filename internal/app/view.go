package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/osa/recipes/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.list.SetSize(ctx.ListWidth, ctx.ContentHeight)
	m.detail.SetSize(ctx.DetailWidth, ctx.ContentHeight)
}

// updateFooterContext tells the footer which bindings apply right now
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.state.Selected != nil,
		m.focus == FocusList,
		m.list.IsFilterMode(),
		!m.state.InstructionsLoading && len(m.state.Instructions) > 0,
	)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.render())
	return v
}

// RenderToString renders the app to a plain string
func (m *Model) RenderToString() string {
	return m.render()
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Help replaces the view while open
	if m.help.IsVisible() {
		return m.help.View(m.width, m.height)
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		m.detail.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}
