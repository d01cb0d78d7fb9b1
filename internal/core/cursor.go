// internal/core/cursor.go
package core

// moveLeftOnce moves the caret one position left. From column 0 it wraps to
// the end of the previous line; at (0,0) it is a no-op.
func (e *Engine) moveLeftOnce() {
	if e.caret.Col > 0 {
		e.caret.Col--
		return
	}
	if e.caret.Row > 0 {
		e.caret.Row--
		e.caret.Col = e.lineRuneCount(e.caret.Row)
	}
}

// moveRightOnce moves the caret one position right. From end-of-line it
// wraps to column 0 of the next line; at the end of the last line it is a
// no-op.
func (e *Engine) moveRightOnce() {
	if e.caret.Col < e.lineRuneCount(e.caret.Row) {
		e.caret.Col++
		return
	}
	if e.caret.Row < e.buffer.LineCount()-1 {
		e.caret.Row++
		e.caret.Col = 0
	}
}

// moveVerticalOnce moves the caret one row in the given direction. Past the
// first or last row it is a no-op. The column clamps to the destination
// line's length and is otherwise preserved.
func (e *Engine) moveVerticalOnce(delta int) {
	target := e.caret.Row + delta
	if target < 0 || target >= e.buffer.LineCount() {
		return
	}
	e.caret.Row = target
	if max := e.lineRuneCount(target); e.caret.Col > max {
		e.caret.Col = max
	}
}

// extendVerticalOnce is the selection-extending variant of vertical
// movement. It preserves the column when the destination line is at least
// as long and clamps to the destination length otherwise. Kept as its own
// path so the plain and extending rules can evolve and be tested
// separately.
func (e *Engine) extendVerticalOnce(delta int) {
	target := e.caret.Row + delta
	if target < 0 || target >= e.buffer.LineCount() {
		return
	}
	e.caret.Row = target
	if max := e.lineRuneCount(target); e.caret.Col > max {
		e.caret.Col = max
	}
}

// lineStart moves the caret to column 0. Idempotent.
func (e *Engine) lineStart() {
	e.caret.Col = 0
}

// lineEnd moves the caret past the last rune of the current line.
// Idempotent.
func (e *Engine) lineEnd() {
	e.caret.Col = e.lineRuneCount(e.caret.Row)
}
