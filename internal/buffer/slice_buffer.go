// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/reel/internal/types"
	"github.com/bethropolis/reel/internal/utils"
)

// SliceBuffer stores the document as a slice of byte lines. It is the only
// Buffer implementation the engine uses; the interface exists so tests can
// substitute instrumented buffers.
type SliceBuffer struct {
	lines    [][]byte
	modified bool // true when content changed since the last MarkSaved
}

// NewSliceBuffer creates a buffer holding a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines:    [][]byte{[]byte("")},
		modified: false,
	}
}

// NewSliceBufferFromLines creates a buffer seeded with the given lines.
// An empty slice normalizes to one empty line.
func NewSliceBufferFromLines(lines []string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.SetLines(lines)
	sb.modified = false
	return sb
}

// SetLines replaces the whole content. Empty input normalizes to one empty
// line so the one-line floor invariant holds from the start.
func (sb *SliceBuffer) SetLines(lines []string) {
	newLines := make([][]byte, 0, len(lines))
	for _, l := range lines {
		newLines = append(newLines, []byte(l))
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.modified = true
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Snapshot returns a deep copy of the current lines, safe against any later
// mutation of the buffer.
func (sb *SliceBuffer) Snapshot() [][]byte {
	snap := make([][]byte, len(sb.lines))
	for i, line := range sb.lines {
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		snap[i] = lineCopy
	}
	return snap
}

// Bytes returns the whole content joined with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range sb.lines {
		buf.Write(line)
		if i < len(sb.lines)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// IsModified returns true if the buffer changed since the last MarkSaved.
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// MarkSaved clears the modified flag. The next mutation sets it again.
func (sb *SliceBuffer) MarkSaved() {
	sb.modified = false
}

// validatePosition clamps pos into the buffer and returns the clamped
// position together with the byte offset of its column.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, int) {
	if pos.Row < 0 {
		pos.Row = 0
	}
	if pos.Row >= len(sb.lines) {
		pos.Row = len(sb.lines) - 1
	}
	line := sb.lines[pos.Row]
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := utf8.RuneCount(line); pos.Col > max {
		pos.Col = max
	}
	return pos, utils.RuneIndexToByteOffset(line, pos.Col)
}

// Insert inserts text at a given position. Text may contain embedded line
// breaks: the current line splits at the position, payload segments become
// new lines and the tail of the original line reattaches to the last one.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	if len(text) == 0 {
		return types.EditInfo{}, nil
	}

	validPos, byteOffset := sb.validatePosition(pos)
	sb.modified = true

	currentLine := sb.lines[validPos.Row]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := make([]byte, len(currentLine[byteOffset:]))
	copy(tail, currentLine[byteOffset:])

	head := make([]byte, byteOffset)
	copy(head, currentLine[:byteOffset])
	sb.lines[validPos.Row] = append(head, insertLines[0]...)

	newEnd := types.Position{
		Row: validPos.Row,
		Col: validPos.Col + utf8.RuneCount(insertLines[0]),
	}

	if len(insertLines) > 1 {
		newLines := make([][]byte, len(insertLines)-1)
		for i := 1; i < len(insertLines); i++ {
			lineCopy := make([]byte, len(insertLines[i]))
			copy(lineCopy, insertLines[i])
			newLines[i-1] = lineCopy
		}
		last := len(newLines) - 1
		newEnd = types.Position{
			Row: validPos.Row + len(newLines),
			Col: utf8.RuneCount(newLines[last]),
		}
		newLines[last] = append(newLines[last], tail...)

		rest := make([][]byte, len(sb.lines[validPos.Row+1:]))
		copy(rest, sb.lines[validPos.Row+1:])
		sb.lines = append(sb.lines[:validPos.Row+1], append(newLines, rest...)...)
	} else {
		sb.lines[validPos.Row] = append(sb.lines[validPos.Row], tail...)
	}

	return types.EditInfo{Start: validPos, OldEnd: validPos, NewEnd: newEnd}, nil
}

// Delete removes the text between start and end (exclusive end). A range
// spanning lines keeps the head of the start line and the tail of the end
// line, joined onto one line, and drops the lines in between.
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	// Normalize so start orders before end
	if start.Row > end.Row || (start.Row == end.Row && start.Col > end.Col) {
		start, end = end, start
	}

	vStart, startOffset := sb.validatePosition(start)
	vEnd, endOffset := sb.validatePosition(end)

	if vStart == vEnd {
		return types.EditInfo{}, nil
	}

	sb.modified = true
	startLine := sb.lines[vStart.Row]

	if vStart.Row == vEnd.Row {
		merged := make([]byte, 0, len(startLine)-(endOffset-startOffset))
		merged = append(merged, startLine[:startOffset]...)
		merged = append(merged, startLine[endOffset:]...)
		sb.lines[vStart.Row] = merged
	} else {
		endLine := sb.lines[vEnd.Row]
		merged := make([]byte, 0, startOffset+len(endLine)-endOffset)
		merged = append(merged, startLine[:startOffset]...)
		merged = append(merged, endLine[endOffset:]...)
		sb.lines[vStart.Row] = merged

		// Drop lines (start+1 .. end) inclusive
		if vEnd.Row+1 >= len(sb.lines) {
			sb.lines = sb.lines[:vStart.Row+1]
		} else {
			sb.lines = append(sb.lines[:vStart.Row+1], sb.lines[vEnd.Row+1:]...)
		}
	}

	// One-line floor: the buffer never goes empty
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}

	return types.EditInfo{Start: vStart, OldEnd: vEnd, NewEnd: vStart}, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
