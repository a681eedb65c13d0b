package app

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/osa/recipes/internal/clipboard"
	"github.com/osa/recipes/internal/config"
	"github.com/osa/recipes/internal/keys"
	"github.com/osa/recipes/internal/ui"
)

// Shortcut represents a keyboard shortcut with its guards and handler.
// This is the single source of truth for the browser's key bindings.
type Shortcut struct {
	Key               string                              // The key binding (e.g., "g", "tab")
	DisplayKey        string                              // Display name in help (e.g., "Tab"); defaults to Key
	Description       string                              // Human-readable description
	RequiresSelection bool                                // Must have a recipe selected
	RequiresList      bool                                // Must not be in detail focus
	AllowInFilter     bool                                // Runs while the filter is being edited
	Handler           func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition         func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry is the central registry of keyboard shortcuts
var ShortcutRegistry = []Shortcut{
	{
		Key:           keys.Enter,
		DisplayKey:    "Enter",
		Description:   "Show recipe",
		RequiresList:  true,
		AllowInFilter: true,
		Handler:       shortcutSelect,
	},
	{
		Key:           keys.Escape,
		DisplayKey:    "Esc",
		Description:   "Clear filter or return to list",
		AllowInFilter: true,
		Handler:       shortcutEscape,
		Condition: func(m *Model) bool {
			return m.list.IsFilterMode() || m.list.HasFilter() || m.focus == FocusDetail
		},
	},
	{
		Key:          "/",
		Description:  "Filter recipes",
		RequiresList: true,
		Handler:      shortcutFilter,
		Condition:    func(m *Model) bool { return !m.state.RecipesLoading },
	},
	{
		Key:               "g",
		Description:       "Regenerate instructions",
		RequiresSelection: true,
		Handler:           shortcutRegenerate,
	},
	{
		Key:         "R",
		Description: "Reload recipes",
		Handler:     shortcutReload,
		Condition:   func(m *Model) bool { return !m.state.RecipesLoading },
	},
	{
		Key:               "y",
		Description:       "Copy instructions",
		RequiresSelection: true,
		Handler:           shortcutCopy,
		Condition: func(m *Model) bool {
			return !m.state.InstructionsLoading && len(m.state.Instructions) > 0
		},
	},
	{
		Key:               keys.Tab,
		DisplayKey:        "Tab",
		Description:       "Switch pane",
		RequiresSelection: true,
		Handler:           shortcutToggleFocus,
	},
	{
		Key:               keys.PgUp,
		DisplayKey:        "PgUp",
		Description:       "Scroll details up",
		RequiresSelection: true,
		Handler:           shortcutPageUp,
	},
	{
		Key:               keys.PgDown,
		DisplayKey:        "PgDn",
		Description:       "Scroll details down",
		RequiresSelection: true,
		Handler:           shortcutPageDown,
	},
	{
		Key:         "t",
		Description: "Cycle theme",
		Handler:     shortcutCycleTheme,
	},
	{
		Key:         "q",
		Description: "Quit",
		Handler:     shortcutQuit,
	},
}

// ExecuteShortcut runs the shortcut bound to key if its guards pass.
// The last return value reports whether the key was consumed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Help is defined outside the registry to avoid an init cycle
	if key == "?" && !m.list.IsFilterMode() {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		// While the filter is being edited, keys go to the filter input
		if m.list.IsFilterMode() && !s.AllowInFilter {
			return m, nil, false
		}
		if s.RequiresList && m.focus != FocusList {
			m.log.Debug("shortcut guard failed", "key", key, "reason", "list not focused")
			return m, nil, false
		}
		if s.RequiresSelection && m.state.Selected == nil {
			m.log.Debug("shortcut guard failed", "key", key, "reason", "no selection")
			return m, nil, false
		}
		if s.Condition != nil && !s.Condition(m) {
			m.log.Debug("shortcut guard failed", "key", key, "reason", "condition")
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpBindings returns every shortcut in registry order for the help overlay
func helpBindings() []ui.KeyBinding {
	bindings := make([]ui.KeyBinding, 0, len(ShortcutRegistry)+2)
	bindings = append(bindings, ui.KeyBinding{Key: "↑/↓ j/k", Desc: "Move cursor"})
	for _, s := range ShortcutRegistry {
		key := s.DisplayKey
		if key == "" {
			key = s.Key
		}
		bindings = append(bindings, ui.KeyBinding{Key: key, Desc: s.Description})
	}
	return append(bindings, ui.KeyBinding{Key: "?", Desc: "Show this help"})
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.help.Show(helpBindings())
	return m, nil
}

func shortcutSelect(m *Model) (tea.Model, tea.Cmd) {
	if m.list.IsFilterMode() {
		m.list.AcceptFilter()
	}
	r := m.list.CursorRecipe()
	if r == nil {
		m.updateFooterContext()
		return m, nil
	}
	return m, m.selectRecipe(*r)
}

func shortcutEscape(m *Model) (tea.Model, tea.Cmd) {
	if m.list.IsFilterMode() || m.list.HasFilter() {
		m.list.ClearFilter()
		m.updateFooterContext()
		return m, nil
	}
	m.setFocus(FocusList)
	m.updateFooterContext()
	return m, nil
}

func shortcutFilter(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.list.EnterFilterMode()
	m.updateFooterContext()
	return m, cmd
}

func shortcutRegenerate(m *Model) (tea.Model, tea.Cmd) {
	return m, m.RefreshInstructions()
}

func shortcutReload(m *Model) (tea.Model, tea.Cmd) {
	return m, m.ReloadRecipes()
}

func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	steps := slices.Clone(m.state.Instructions)
	return m, func() tea.Msg {
		return ClipboardResultMsg{Steps: len(steps), Err: clipboard.CopySteps(steps)}
	}
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	if m.focus == FocusList {
		m.setFocus(FocusDetail)
	} else {
		m.setFocus(FocusList)
	}
	m.updateFooterContext()
	return m, nil
}

func shortcutPageUp(m *Model) (tea.Model, tea.Cmd) {
	return m, m.detail.ScrollKey(tea.KeyPressMsg{Code: tea.KeyPgUp})
}

func shortcutPageDown(m *Model) (tea.Model, tea.Cmd) {
	return m, m.detail.ScrollKey(tea.KeyPressMsg{Code: tea.KeyPgDown})
}

func shortcutCycleTheme(m *Model) (tea.Model, tea.Cmd) {
	next := config.NextTheme(m.config.GetTheme())
	ui.SetThemeByName(next)
	m.config.SetTheme(next)
	m.log.Info("theme changed", "theme", next)

	// Styles are rebuilt, so re-render the cached detail content
	m.syncViews()

	cmds := []tea.Cmd{m.ShowFlashInfo(fmt.Sprintf("Theme: %s", next))}
	if cmd := m.saveConfig(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.quit()
}
