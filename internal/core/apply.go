// internal/core/apply.go
package core

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/bethropolis/reel/internal/event"
	"github.com/bethropolis/reel/internal/logger"
	"github.com/bethropolis/reel/internal/types"
)

// ApplyAction interprets one action record, mutates buffer/caret/selection
// accordingly and records exactly one entry into every per-step log. It
// never fails: unrecognized kinds apply as no-ops but are still recorded so
// history indices stay aligned with the action list. Returns the full
// joined text after the effect.
func (e *Engine) ApplyAction(rec types.Record) string {
	count := 1
	if rec.Kind.IsRepeatable() {
		count = e.repeatCount(rec.Value)
	}

	caption := types.Caption{}

	switch rec.Kind {
	case types.ActionSetContent:
		e.setContent(rec.Value)

	case types.ActionInsertText:
		e.insertText(rec.Value)

	case types.ActionNewline:
		e.insertNewlines(count)

	case types.ActionDeleteBackward:
		// With a selection active the repeat count is ignored beyond 1.
		if e.HasSelection() {
			e.deleteSelection()
		} else {
			for i := 0; i < count; i++ {
				e.deleteBackwardOnce()
			}
		}

	case types.ActionDeleteForward:
		if e.HasSelection() {
			e.deleteSelection()
		} else {
			for i := 0; i < count; i++ {
				e.deleteForwardOnce()
			}
		}

	case types.ActionInsertSpace:
		if e.HasSelection() {
			e.deleteSelection()
		}
		e.insertAtCaret(bytes.Repeat([]byte(" "), count))

	case types.ActionInsertTab:
		// Deliberately does not touch an active selection, unlike
		// insert-space. The anchor and cached highlight go stale.
		e.insertAtCaret(bytes.Repeat([]byte("\t"), count))

	case types.ActionCopySelection:
		e.copySelection()

	case types.ActionPaste:
		for i := 0; i < count; i++ {
			e.paste()
		}

	case types.ActionMoveLeft:
		e.clearSelection()
		for i := 0; i < count; i++ {
			e.moveLeftOnce()
		}

	case types.ActionMoveRight:
		e.clearSelection()
		for i := 0; i < count; i++ {
			e.moveRightOnce()
		}

	case types.ActionMoveUp:
		e.clearSelection()
		for i := 0; i < count; i++ {
			e.moveVerticalOnce(-1)
		}

	case types.ActionMoveDown:
		e.clearSelection()
		for i := 0; i < count; i++ {
			e.moveVerticalOnce(1)
		}

	case types.ActionLineStart:
		e.clearSelection()
		e.lineStart()

	case types.ActionLineEnd:
		e.clearSelection()
		e.lineEnd()

	case types.ActionExtendLeft:
		e.beginSelection()
		for i := 0; i < count; i++ {
			e.moveLeftOnce()
		}
		e.refreshHighlight()

	case types.ActionExtendRight:
		e.beginSelection()
		for i := 0; i < count; i++ {
			e.moveRightOnce()
		}
		e.refreshHighlight()

	case types.ActionExtendUp:
		e.beginSelection()
		for i := 0; i < count; i++ {
			e.extendVerticalOnce(-1)
		}
		e.refreshHighlight()

	case types.ActionExtendDown:
		e.beginSelection()
		for i := 0; i < count; i++ {
			e.extendVerticalOnce(1)
		}
		e.refreshHighlight()

	case types.ActionShowMenu:
		e.menuOpen = true

	case types.ActionHideMenu:
		e.menuOpen = false

	case types.ActionMarkSaved:
		e.buffer.MarkSaved()

	case types.ActionSpeakBefore, types.ActionSpeakAfter, types.ActionSpeakDuring:
		caption = types.Caption{Speech: rec.Kind.SpeechKind(), Text: rec.Value}

	default:
		if e.verbose {
			logger.Warnf("Engine: unrecognized action kind %q, applying as no-op", rec.Kind)
		}
	}

	e.record(rec, caption)
	return e.Text()
}

// ApplyActions applies a whole list in order and returns the final text.
func (e *Engine) ApplyActions(recs []types.Record) string {
	for _, rec := range recs {
		e.ApplyAction(rec)
	}
	return e.Text()
}

// repeatCount parses the textual repeat count of a repeatable action. A
// malformed or missing count silently defaults to one application; "0" and
// negative counts apply zero times.
func (e *Engine) repeatCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if e.verbose {
			logger.Debugf("Engine: repeat count %q unparsable, defaulting to 1", raw)
		}
		return 1
	}
	if n < 0 {
		return 0
	}
	return n
}

// setContent replaces the whole buffer, collapses the caret to the origin
// and drops any selection.
func (e *Engine) setContent(text string) {
	e.buffer.SetLines(strings.Split(text, "\n"))
	e.caret = types.Position{Row: 0, Col: 0}
	e.clearSelection()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeContentSet, event.ContentSetData{Text: text})
	}
}

// insertText inserts a literal payload at the caret, deleting an active
// selection first. Embedded line breaks split the current line and the
// caret ends at the end of the inserted text.
func (e *Engine) insertText(payload string) {
	if e.HasSelection() {
		e.deleteSelection()
	}
	e.insertAtCaret([]byte(payload))
}

// insertNewlines deletes an active selection, then inserts n line breaks at
// the collapsed caret. The trailing text of the current line reattaches to
// the final break's line and the caret lands on its column 0.
func (e *Engine) insertNewlines(n int) {
	if e.HasSelection() {
		e.deleteSelection()
	}
	if n <= 0 {
		return
	}
	e.insertAtCaret(bytes.Repeat([]byte("\n"), n))
}

// insertAtCaret inserts raw bytes at the caret and moves the caret to the
// end of the inserted text.
func (e *Engine) insertAtCaret(text []byte) {
	if len(text) == 0 {
		return
	}
	info, err := e.buffer.Insert(e.caret, text)
	if err != nil {
		logger.Errorf("Engine: insert failed: %v", err)
		return
	}
	e.caret = info.NewEnd
	e.dispatchModified(info)
}

// deleteBackwardOnce deletes one character before the caret, or merges the
// current line onto the previous one when the caret sits at column 0. At
// (0,0) it is a no-op.
func (e *Engine) deleteBackwardOnce() {
	start := e.caret
	end := e.caret

	if e.caret.Col > 0 {
		start.Col--
	} else if e.caret.Row > 0 {
		start.Row--
		start.Col = e.lineRuneCount(start.Row)
	} else {
		return
	}

	info, err := e.buffer.Delete(start, end)
	if err != nil {
		logger.Errorf("Engine: delete failed: %v", err)
		return
	}
	e.caret = start
	e.dispatchModified(info)
}

// deleteForwardOnce deletes the character under the caret, or joins the
// next line onto the current one when the caret sits at end-of-line. At the
// end of the last line it is a no-op.
func (e *Engine) deleteForwardOnce() {
	start := e.caret
	end := e.caret

	if e.caret.Col < e.lineRuneCount(e.caret.Row) {
		end.Col++
	} else if e.caret.Row < e.buffer.LineCount()-1 {
		end.Row++
		end.Col = 0
	} else {
		return
	}

	info, err := e.buffer.Delete(start, end)
	if err != nil {
		logger.Errorf("Engine: delete failed: %v", err)
		return
	}
	e.caret = start
	e.dispatchModified(info)
}
