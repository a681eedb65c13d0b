// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/osa/recipes/internal/logger"
)

// AppName is the notification title used for application events.
const AppName = "Recipes"

// notify is swapped out in tests.
var notify = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	err := notify(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// InstructionsReady tells the user that instructions for a recipe have loaded.
func InstructionsReady(title string, steps int) error {
	if steps == 1 {
		return Send(AppName, title+": 1 step ready")
	}
	return Send(AppName, fmt.Sprintf("%s: %d steps ready", title, steps))
}
