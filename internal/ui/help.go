package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// HelpOverlay lists every key binding in a box drawn over the app
type HelpOverlay struct {
	visible  bool
	bindings []KeyBinding
}

// NewHelpOverlay creates a hidden help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

// Show makes the overlay visible with the given bindings
func (h *HelpOverlay) Show(bindings []KeyBinding) {
	h.bindings = bindings
	h.visible = true
}

// Hide closes the overlay
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// IsVisible reports whether the overlay is showing
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// View renders the overlay centered in a width x height area
func (h *HelpOverlay) View(width, height int) string {
	var sb strings.Builder
	sb.WriteString(ModalTitleStyle.Render(HelpTitle))
	sb.WriteString("\n")
	for i, b := range h.bindings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(FooterKeyStyle.Width(HelpKeyWidth).Render(b.Key))
		sb.WriteString(FooterDescStyle.Render(b.Desc))
	}
	sb.WriteString("\n")
	sb.WriteString(ModalHelpStyle.Render(HelpDismissText))

	box := ModalStyle.Render(sb.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
