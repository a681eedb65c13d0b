package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/osa/recipes/internal/ui"
)

// overList reports whether screen column x falls inside the list panel
func (m *Model) overList(x int) bool {
	return x < m.list.Width()
}

// handleMouseWheelMsg scrolls the detail pane when the wheel turns over it
func (m *Model) handleMouseWheelMsg(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.overList(msg.X) {
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// handleMouseClickMsg selects the recipe under a left click in the list panel.
// Coordinates are adjusted for the header before mapping to a row.
func (m *Model) handleMouseClickMsg(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft {
		return m, nil
	}

	// Any click closes the help overlay
	if m.help.IsVisible() {
		m.help.Hide()
		return m, nil
	}

	if !m.overList(msg.X) {
		if m.state.Selected != nil {
			m.setFocus(FocusDetail)
			m.updateFooterContext()
		}
		return m, nil
	}

	idx := m.list.IndexAt(msg.Y - ui.HeaderHeight)
	if idx < 0 {
		return m, nil
	}
	if m.list.IsFilterMode() {
		m.list.AcceptFilter()
	}
	m.list.SetCursor(idx)
	m.setFocus(FocusList)
	r := m.list.CursorRecipe()
	if r == nil {
		m.updateFooterContext()
		return m, nil
	}
	return m, m.selectRecipe(*r)
}
