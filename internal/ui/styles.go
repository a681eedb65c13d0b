package ui

import "charm.land/lipgloss/v2"

// Color palette, rebuilt from the active theme by regenerateStyles
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan
	ColorError       = lipgloss.Color("#EF4444") // Red
	ColorSuccess     = lipgloss.Color("#10B981") // Green
)

// Header and footer styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	FooterStyle      lipgloss.Style
	FooterKeyStyle   lipgloss.Style
	FooterDescStyle  lipgloss.Style
)

// Panel styles
var (
	PanelStyle         lipgloss.Style
	PanelFocusedStyle  lipgloss.Style
	PanelTitleStyle    lipgloss.Style
	EmptyStateStyle    lipgloss.Style
	StatusLoadingStyle lipgloss.Style
)

// Recipe list styles
var (
	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
	ListActiveStyle   lipgloss.Style
	FilterPromptStyle lipgloss.Style
)

// Recipe detail styles
var (
	DetailTitleStyle   lipgloss.Style
	DetailYieldStyle   lipgloss.Style
	DetailSectionStyle lipgloss.Style
	BulletStyle        lipgloss.Style
	StepNumberStyle    lipgloss.Style
	StepTextStyle      lipgloss.Style
	ActionKeyStyle     lipgloss.Style
	ActionDescStyle    lipgloss.Style
)

// Help overlay styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

func init() {
	buildStyles(BuiltinThemes[DefaultTheme])
}

// buildStyles derives every style from t and the Color* variables.
func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	ListItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)

	ListActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	FilterPromptStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	DetailTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	DetailYieldStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	DetailSectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Underline(true)

	BulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Bullet))

	StepNumberStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.StepNumber)).
		Bold(true)

	StepTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ActionKeyStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	ActionDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)
}
