package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width         int
	selectedTitle string
	loading       bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSelectedTitle sets the recipe title shown on the right
func (h *Header) SetSelectedTitle(title string) {
	h.selectedTitle = title
}

// SetLoading marks whether any request is in flight
func (h *Header) SetLoading(loading bool) {
	h.loading = loading
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + AppTitle
	if h.loading {
		titleText += " …"
	}

	var rightText string
	if h.selectedTitle != "" {
		rightText = h.selectedTitle + " "
		// Keep at least one column between the app title and the recipe title
		room := h.width - runewidth.StringWidth(titleText) - 1
		if room <= 1 {
			rightText = ""
		} else if runewidth.StringWidth(rightText) > room {
			rightText = runewidth.Truncate(h.selectedTitle, room-1, "…") + " "
		}
	}

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent, runewidth.StringWidth(titleText))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The first boldCols columns (the app title) are rendered bold.
func (h *Header) renderGradient(content string, boldCols int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	col := 0
	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(col < boldCols)

		result.WriteString(style.Render(string(r)))
		col += runewidth.RuneWidth(r)
	}

	return result.String()
}
