package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	rerrors "github.com/osa/recipes/internal/errors"
	"github.com/osa/recipes/internal/keys"
	"github.com/osa/recipes/internal/notification"
	"github.com/osa/recipes/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheelMsg(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClickMsg(msg)

	case RecipesLoadedMsg:
		return m.handleRecipesLoadedMsg(msg)

	case InstructionsLoadedMsg:
		return m.handleInstructionsLoadedMsg(msg)

	case ClipboardResultMsg:
		return m.handleClipboardResultMsg(msg)

	case ConfigSavedMsg:
		return m.handleConfigSavedMsg(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			// Flash cleared, no need to continue ticking
			return m, nil
		}
		// Flash still active, continue ticking
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ui.SpinnerTickMsg:
		if !m.state.Loading() {
			m.spinning = false
			return m, nil
		}
		m.spinnerFrame = ui.NextSpinnerFrame(m.spinnerFrame)
		m.list.SetSpinnerFrame(m.spinnerFrame)
		m.detail.SetSpinnerFrame(m.spinnerFrame)
		return m, ui.SpinnerTick()
	}

	return m, nil
}

// handleKeyPress routes a key press to a shortcut or the focused pane
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m.quit()
	}

	// Any key closes the help overlay
	if m.help.IsVisible() {
		m.help.Hide()
		return m, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	var cmd tea.Cmd
	if m.focus == FocusList {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.detail, cmd = m.detail.Update(msg)
	}
	m.updateFooterContext()
	return m, cmd
}

func (m *Model) handleRecipesLoadedMsg(msg RecipesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("failed to load recipes", "kind", rerrors.GetKind(msg.Err), "error", msg.Err)
	} else {
		m.log.Info("recipes loaded", "count", len(msg.Recipes))
	}

	m.state.FinishLoadRecipes(msg.Recipes, msg.Err)
	m.list.SetRecipes(m.state.Recipes)
	m.syncViews()
	return m, nil
}

func (m *Model) handleInstructionsLoadedMsg(msg InstructionsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.state.FinishInstructions(msg.Seq, msg.Steps, msg.Err) {
		m.log.Debug("discarding stale instructions", "title", msg.Title, "seq", msg.Seq, "latest", m.state.Seq())
		return m, nil
	}
	if msg.Err != nil {
		m.log.Warn("failed to load instructions", "title", msg.Title, "kind", rerrors.GetKind(msg.Err), "status", rerrors.StatusCode(msg.Err), "error", msg.Err)
	}
	m.syncViews()

	steps := len(m.state.Instructions)
	if msg.Err == nil && steps > 0 && !m.windowFocused && m.config.GetNotificationsEnabled() {
		title := msg.Title
		return m, func() tea.Msg {
			if err := notification.InstructionsReady(title, steps); err != nil {
				m.log.Warn("notification failed", "error", err)
			}
			return nil
		}
	}
	return m, nil
}

func (m *Model) handleClipboardResultMsg(msg ClipboardResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("copy failed", "error", msg.Err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	if msg.Steps == 1 {
		return m, m.ShowFlashSuccess("Copied 1 step")
	}
	return m, m.ShowFlashSuccess(fmt.Sprintf("Copied %d steps", msg.Steps))
}

func (m *Model) handleConfigSavedMsg(msg ConfigSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("failed to save config", "error", msg.Err)
		return m, m.ShowFlashWarning("Theme not saved")
	}
	return m, nil
}
