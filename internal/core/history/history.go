// Package history keeps the per-step replay trace: one immutable entry per
// applied action, with the action and caption logs index-aligned to it.
package history

import (
	"bytes"
	"fmt"

	"github.com/bethropolis/reel/internal/types"
)

// Entry is the state snapshot recorded after one action: the full line
// buffer, the caret, the selection anchor (NoPosition when absent) and the
// highlighted text. Entries are deep copies taken at record time; later
// buffer mutation never changes a past entry.
type Entry struct {
	Lines       [][]byte
	Caret       types.Position
	Anchor      types.Position
	Highlighted string
}

// Text returns the entry's lines joined with '\n'.
func (e Entry) Text() string {
	var buf bytes.Buffer
	for i, line := range e.Lines {
		buf.Write(line)
		if i < len(e.Lines)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// Log is the append-only trace. Entries, actions and captions grow in
// lockstep: exactly one of each per recorded step. Nothing is ever evicted
// or rolled back.
type Log struct {
	entries  []Entry
	actions  []types.Record
	captions []types.Caption
}

// NewLog creates an empty trace log.
func NewLog() *Log {
	return &Log{}
}

// Record appends one step. It deep-copies the lines so the caller's buffer
// can keep mutating without touching past entries.
func (l *Log) Record(lines [][]byte, caret, anchor types.Position, highlighted string, action types.Record, caption types.Caption) {
	snap := make([][]byte, len(lines))
	for i, line := range lines {
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		snap[i] = lineCopy
	}
	l.entries = append(l.entries, Entry{
		Lines:       snap,
		Caret:       caret,
		Anchor:      anchor,
		Highlighted: highlighted,
	})
	l.actions = append(l.actions, action)
	l.captions = append(l.captions, caption)
}

// Len returns the number of recorded steps.
func (l *Log) Len() int {
	return len(l.entries)
}

// At returns the entry recorded at index. Out-of-range indices are caller
// misuse and fail hard; they are never clamped.
func (l *Log) At(index int) (Entry, error) {
	if index < 0 || index >= len(l.entries) {
		return Entry{}, fmt.Errorf("history index %d out of bounds (0-%d)", index, len(l.entries)-1)
	}
	return l.entries[index], nil
}

// Action returns the action recorded at index.
func (l *Log) Action(index int) (types.Record, error) {
	if index < 0 || index >= len(l.actions) {
		return types.Record{}, fmt.Errorf("history index %d out of bounds (0-%d)", index, len(l.actions)-1)
	}
	return l.actions[index], nil
}

// Caption returns the caption recorded at index.
func (l *Log) Caption(index int) (types.Caption, error) {
	if index < 0 || index >= len(l.captions) {
		return types.Caption{}, fmt.Errorf("history index %d out of bounds (0-%d)", index, len(l.captions)-1)
	}
	return l.captions[index], nil
}

// Actions returns a copy of the full action log.
func (l *Log) Actions() []types.Record {
	out := make([]types.Record, len(l.actions))
	copy(out, l.actions)
	return out
}

// Captions returns a copy of the full caption log.
func (l *Log) Captions() []types.Caption {
	out := make([]types.Caption, len(l.captions))
	copy(out, l.captions)
	return out
}
