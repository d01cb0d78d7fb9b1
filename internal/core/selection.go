// internal/core/selection.go
package core

import (
	"bytes"

	"github.com/bethropolis/reel/internal/logger"
	"github.com/bethropolis/reel/internal/types"
	"github.com/bethropolis/reel/internal/utils"
)

// HasSelection returns true if there is an active selection. An anchor
// sitting on the caret counts as no selection.
func (e *Engine) HasSelection() bool {
	return e.anchor.Valid() && e.anchor != e.caret
}

// beginSelection drops the anchor at the current caret if no selection is
// active yet. Extend actions call this before moving.
func (e *Engine) beginSelection() {
	if !e.HasSelection() {
		e.anchor = e.caret
	}
}

// clearSelection resets anchor and highlighted text.
func (e *Engine) clearSelection() {
	e.anchor = types.NoPosition
	e.highlighted = ""
}

// refreshHighlight recomputes the cached highlighted text from the current
// normalized [anchor, caret) range.
func (e *Engine) refreshHighlight() {
	e.highlighted = e.extractHighlight()
}

// extractHighlight returns the text strictly inside the normalized
// [anchor, caret) range: a slice of the line when the range is single-line,
// otherwise the tail of the first line, the interior lines in full and the
// head of the last line, joined with line breaks.
func (e *Engine) extractHighlight() string {
	start, end, ok := e.Selection()
	if !ok {
		return ""
	}

	if start.Row == end.Row {
		line, err := e.buffer.Line(start.Row)
		if err != nil {
			return ""
		}
		from := utils.RuneIndexToByteOffset(line, start.Col)
		to := utils.RuneIndexToByteOffset(line, end.Col)
		return string(line[from:to])
	}

	var content bytes.Buffer
	for row := start.Row; row <= end.Row; row++ {
		line, err := e.buffer.Line(row)
		if err != nil {
			continue
		}
		switch row {
		case start.Row:
			content.Write(line[utils.RuneIndexToByteOffset(line, start.Col):])
		case end.Row:
			content.Write(line[:utils.RuneIndexToByteOffset(line, end.Col)])
		default:
			content.Write(line)
		}
		if row < end.Row {
			content.WriteByte('\n')
		}
	}
	return content.String()
}

// deleteSelection removes the active selection from the buffer, collapses
// the caret to the selection start and clears the selection. Clearing is a
// post-condition even when nothing was selected. Returns true when text was
// removed.
func (e *Engine) deleteSelection() bool {
	start, end, ok := e.Selection()
	if !ok {
		e.clearSelection()
		return false
	}

	info, err := e.buffer.Delete(start, end)
	if err != nil {
		logger.Errorf("Engine: selection delete failed: %v", err)
		e.clearSelection()
		return false
	}

	e.caret = start
	e.clearSelection()
	e.dispatchModified(info)
	return true
}
