// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/reel/internal/types"

// Buffer defines the line-oriented text storage the replay engine drives.
// Positions are rune-indexed; implementations keep at least one line at all
// times, even after deletions.
type Buffer interface {
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	Insert(pos types.Position, text []byte) (types.EditInfo, error)
	Delete(start, end types.Position) (types.EditInfo, error)
	SetLines(lines []string)
	Snapshot() [][]byte
	Bytes() []byte
	IsModified() bool
	MarkSaved()
}
