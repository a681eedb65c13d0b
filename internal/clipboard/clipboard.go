// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/osa/recipes/internal/errors"
	"github.com/osa/recipes/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error

	// write is swapped out in tests.
	write = systemWrite
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
			initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		}
	})
	return initErr
}

func systemWrite(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// SetWriter replaces the function used to write to the clipboard.
func SetWriter(fn func(text string) error) {
	write = fn
}

// ResetWriter restores the system clipboard writer.
func ResetWriter() {
	write = systemWrite
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	if err := write(text); err != nil {
		return errors.ClipboardFailed(err)
	}
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// FormatSteps renders steps as a numbered list, one step per line.
func FormatSteps(steps []string) string {
	var b strings.Builder
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// CopySteps writes steps to the clipboard as a numbered list.
func CopySteps(steps []string) error {
	if len(steps) == 0 {
		return errors.E(errors.Op("clipboard.CopySteps"), errors.KindInvalid, "no instructions to copy")
	}
	return WriteText(FormatSteps(steps))
}
