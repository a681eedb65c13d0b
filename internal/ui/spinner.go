package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// spinnerFrames cycles through a twinkling star. Some frames repeat so the
// bright middle of the animation lingers.
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// SpinnerTickMsg advances loading spinners by one frame
type SpinnerTickMsg time.Time

// SpinnerTick returns a command that sends a SpinnerTickMsg after SpinnerInterval
func SpinnerTick() tea.Cmd {
	return tea.Tick(SpinnerInterval, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// NextSpinnerFrame returns the frame index after frame, wrapping around
func NextSpinnerFrame(frame int) int {
	return (frame + 1) % len(spinnerFrames)
}

// RenderSpinner renders a spinner frame followed by an italic label
func RenderSpinner(label string, frameIdx int) string {
	frame := spinnerFrames[frameIdx%len(spinnerFrames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	return spinnerStyle.Render(frame) + " " + StatusLoadingStyle.Render(label+"...")
}
