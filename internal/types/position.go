// internal/types/position.go
package types

// Position represents a caret or text position within the buffer.
// Row is the 0-based line index.
// Col is the 0-based column (rune) index within the line; Col may equal the
// line's rune count, which means end-of-line.
type Position struct {
	Row int
	Col int // Rune index
}

// NoPosition is the sentinel for an absent selection anchor.
var NoPosition = Position{Row: -1, Col: -1}

// Valid reports whether p refers to a real buffer location (not the sentinel).
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Col >= 0
}

// Before reports whether p orders strictly before q, by row then column.
func (p Position) Before(q Position) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}
