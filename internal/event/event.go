// internal/event/event.go
package event

import "github.com/bethropolis/reel/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// TypeActionApplied fires after the interpreter has applied one action
	// and recorded its history entry.
	TypeActionApplied

	// TypeBufferModified fires when buffer content changes (insert/delete).
	TypeBufferModified

	// TypeContentSet fires when the whole buffer is replaced (set-content).
	TypeContentSet
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ActionAppliedData carries the applied record and its history index.
type ActionAppliedData struct {
	Index  int
	Action types.Record
}

// BufferModifiedData carries the change summary of a buffer mutation.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// ContentSetData carries the new full text after a set-content action.
type ContentSetData struct {
	Text string
}
