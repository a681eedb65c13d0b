package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType determines the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient message shown in place of the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg asks the model to drop expired flash messages
type FlashTickMsg time.Time

// FlashTick returns a command that fires once the default flash duration passes
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width           int
	bindings        []KeyBinding
	hasSelection    bool // Whether a recipe is selected
	listFocused     bool // Whether the recipe list has focus
	filtering       bool // Whether the filter input is active
	hasInstructions bool // Whether instructions are loaded for the selection
	flashMessage    *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		listFocused: true,
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "/", Desc: "filter"},
			{Key: "g", Desc: "regenerate"},
			{Key: "y", Desc: "copy"},
			{Key: "R", Desc: "reload"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "t", Desc: "theme"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasSelection, listFocused, filtering, hasInstructions bool) {
	f.hasSelection = hasSelection
	f.listFocused = listFocused
	f.filtering = filtering
	f.hasInstructions = hasInstructions
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes the flash message if it has expired.
// Returns true if a message was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// renderFlash renders the current flash message with its icon
func (f *Footer) renderFlash() string {
	var icon string
	var color = ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	default:
		icon = "ℹ"
	}
	style := lipgloss.NewStyle().Foreground(color)
	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(style.Bold(true).Render(icon) + " " + style.Render(f.flashMessage.Text))
}

// visibleBindings returns the bindings that apply in the current context
func (f *Footer) visibleBindings() []KeyBinding {
	if f.filtering {
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "clear"},
		}
	}

	var visible []KeyBinding
	for _, b := range f.bindings {
		switch b.Key {
		case "↑/↓", "enter", "/":
			// List-only bindings
			if !f.listFocused {
				continue
			}
		case "g":
			if !f.hasSelection {
				continue
			}
		case "y":
			if !f.hasInstructions {
				continue
			}
		case "tab":
			if !f.hasSelection {
				continue
			}
		}
		visible = append(visible, b)
	}
	if !f.listFocused && f.hasSelection {
		visible = append([]KeyBinding{{Key: "pgup/dn", Desc: "scroll"}}, visible...)
	}
	return visible
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	var parts []string
	for _, b := range f.visibleBindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
