// internal/core/clipboard.go
package core

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/reel/internal/logger"
)

// copySelection copies the normalized selection text into the internal
// register and, when configured, mirrors it to the OS clipboard. The
// selection is cleared afterwards. No-op without an active selection.
func (e *Engine) copySelection() {
	if !e.HasSelection() {
		return
	}

	text := e.extractHighlight()
	e.register = []byte(text)
	e.clearSelection()

	if e.systemClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warnf("Engine: system clipboard write failed: %v", err)
		}
	}
	logger.Debugf("Engine: copied %d bytes", len(e.register))
}

// paste inserts the register contents at the caret, deleting an active
// selection first. No-op when the register is empty.
func (e *Engine) paste() {
	if len(e.register) == 0 {
		return
	}
	if e.HasSelection() {
		e.deleteSelection()
	}
	e.insertAtCaret(e.register)
}
