package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/reel/internal/types"
)

func rec(kind types.ActionKind, value string) types.Record {
	return types.Record{Kind: kind, Value: value}
}

// Scenario: inserting a payload with an embedded line break splits the line
// and leaves the physical caret at (2,4).
func TestInsertText_MultiLinePayload(t *testing.T) {
	e := NewEngine([]string{""}, nil, false)
	e.ApplyAction(rec(types.ActionInsertText, "123\nABC"))

	require.Equal(t, []string{"123", "ABC"}, e.Lines())
	require.Equal(t, types.Position{Row: 1, Col: 3}, e.Caret())
	require.Equal(t, types.Position{Row: 2, Col: 4}, e.PhysicalCaret())
}

// Scenario: newline mid-line splits at the caret and carries the tail down.
func TestNewline_SplitsAtCaret(t *testing.T) {
	e := NewEngine([]string{`console.log("Hello World!");`}, nil, false)
	e.ApplyActions([]types.Record{
		rec(types.ActionMoveRight, "8"),
		rec(types.ActionNewline, "1"),
	})

	require.Equal(t, []string{"console.", `log("Hello World!");`}, e.Lines())
	require.Equal(t, types.Position{Row: 1, Col: 0}, e.Caret())
}

// Scenario: extend, delete the selection, type over it.
func TestSelectDeleteRetype(t *testing.T) {
	e := NewEngine([]string{""}, nil, false)

	e.ApplyAction(rec(types.ActionInsertText, "abcdef"))
	e.ApplyAction(rec(types.ActionExtendLeft, "3"))
	require.Equal(t, "def", e.Highlighted())

	e.ApplyAction(rec(types.ActionDeleteBackward, "1"))
	require.Equal(t, "", e.Highlighted())
	require.Equal(t, "abc", e.Text())

	final := e.ApplyAction(rec(types.ActionInsertText, "123"))
	require.Equal(t, "abc123", final)
}

// Scenario: insert-space respects the repeat count.
func TestInsertSpace_RepeatCount(t *testing.T) {
	line := `console.log("Hello World!");`

	e := NewEngine([]string{line}, nil, false)
	e.ApplyAction(rec(types.ActionInsertSpace, "1"))
	require.Equal(t, " "+line, e.Text())
	require.Equal(t, types.Position{Row: 0, Col: 1}, e.Caret())

	e = NewEngine([]string{line}, nil, false)
	e.ApplyAction(rec(types.ActionInsertSpace, "3"))
	require.Equal(t, "   "+line, e.Text())
	require.Equal(t, types.Position{Row: 0, Col: 3}, e.Caret())
}

// Scenario: moving up from a long line onto a short one clamps the column.
func TestMoveUp_ClampsToShorterLine(t *testing.T) {
	e := NewEngine([]string{"short", "much longer line here"}, nil, false)
	e.ApplyActions([]types.Record{
		rec(types.ActionMoveDown, "1"),
		rec(types.ActionLineEnd, ""),
	})
	require.Equal(t, types.Position{Row: 1, Col: 21}, e.Caret())

	e.ApplyAction(rec(types.ActionMoveUp, "1"))
	require.Equal(t, types.Position{Row: 0, Col: 5}, e.Caret())
}

func TestInsertThenDeleteBackward_RoundTrip(t *testing.T) {
	e := NewEngine([]string{"hello"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveRight, "3"))

	linesBefore := e.Lines()
	caretBefore := e.Caret()

	e.ApplyAction(rec(types.ActionInsertText, "X"))
	require.Equal(t, "helXlo", e.Text())
	e.ApplyAction(rec(types.ActionDeleteBackward, "1"))

	require.Equal(t, linesBefore, e.Lines())
	require.Equal(t, caretBefore, e.Caret())
}

func TestHistoryAlignment(t *testing.T) {
	actions := []types.Record{
		rec(types.ActionInsertText, "hi"),
		rec(types.ActionSpeakBefore, "watch this"),
		rec(types.ActionMoveLeft, "1"),
		rec(types.ActionUnknown, "???"),
	}
	e := NewEngine([]string{""}, actions, false)

	require.Equal(t, len(actions)+1, e.History().Len())
	require.Len(t, e.Actions(), len(actions)+1)
	require.Len(t, e.Captions(), len(actions)+1)
	require.Equal(t, types.ActionSetContent, e.Actions()[0].Kind)
}

func TestIdempotence_AtOrigin(t *testing.T) {
	e := NewEngine([]string{"ab", "cd"}, nil, false)

	e.ApplyAction(rec(types.ActionMoveLeft, "1"))
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())

	e.ApplyAction(rec(types.ActionMoveUp, "3"))
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())
}

func TestRepeatCountZero_LeavesStateUnchanged(t *testing.T) {
	e := NewEngine([]string{"abc"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveRight, "2"))

	before := e.Caret()
	e.ApplyAction(rec(types.ActionMoveLeft, "0"))
	require.Equal(t, before, e.Caret())
	require.Equal(t, "abc", e.Text())
}

func TestRepeatCount_MalformedDefaultsToOne(t *testing.T) {
	e := NewEngine([]string{"abc"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveRight, "bogus"))
	require.Equal(t, types.Position{Row: 0, Col: 1}, e.Caret())

	e.ApplyAction(rec(types.ActionMoveRight, ""))
	require.Equal(t, types.Position{Row: 0, Col: 2}, e.Caret())
}

func TestUnknownKind_RecordedNoOp(t *testing.T) {
	e := NewEngine([]string{"abc"}, nil, false)
	stepsBefore := e.History().Len()
	caretBefore := e.Caret()

	out := e.ApplyAction(rec(types.ActionUnknown, "whatever"))

	require.Equal(t, "abc", out)
	require.Equal(t, caretBefore, e.Caret())
	require.Equal(t, stepsBefore+1, e.History().Len())
	require.Equal(t, types.ActionUnknown, e.Actions()[stepsBefore].Kind)
}

func TestNewline_WithSelection_DeletesThenBreaks(t *testing.T) {
	e := NewEngine([]string{"abcdef"}, nil, false)
	e.ApplyAction(rec(types.ActionExtendRight, "3"))
	require.Equal(t, "abc", e.Highlighted())

	e.ApplyAction(rec(types.ActionNewline, "2"))
	require.Equal(t, []string{"", "", "def"}, e.Lines())
	require.Equal(t, types.Position{Row: 2, Col: 0}, e.Caret())
	require.False(t, e.HasSelection())
}

func TestDeleteBackward_MergesLines(t *testing.T) {
	e := NewEngine([]string{"ab", "cd"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveDown, "1"))
	require.Equal(t, types.Position{Row: 1, Col: 0}, e.Caret())

	e.ApplyAction(rec(types.ActionDeleteBackward, "1"))
	require.Equal(t, []string{"abcd"}, e.Lines())
	require.Equal(t, types.Position{Row: 0, Col: 2}, e.Caret())
}

func TestDeleteBackward_RepeatAcrossLineBoundary(t *testing.T) {
	e := NewEngine([]string{"ab", "cd"}, nil, false)
	e.ApplyActions([]types.Record{
		rec(types.ActionMoveDown, "1"),
		rec(types.ActionLineEnd, ""),
		rec(types.ActionDeleteBackward, "3"),
	})
	require.Equal(t, []string{"ab"}, e.Lines())
	require.Equal(t, types.Position{Row: 0, Col: 2}, e.Caret())
}

func TestDeleteBackward_AtOrigin_NoOp(t *testing.T) {
	e := NewEngine([]string{"abc"}, nil, false)
	e.ApplyAction(rec(types.ActionDeleteBackward, "2"))
	require.Equal(t, "abc", e.Text())
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())
}

func TestDeleteForward_JoinsNextLine(t *testing.T) {
	e := NewEngine([]string{"ab", "cd"}, nil, false)
	e.ApplyAction(rec(types.ActionLineEnd, ""))
	e.ApplyAction(rec(types.ActionDeleteForward, "1"))
	require.Equal(t, []string{"abcd"}, e.Lines())
	require.Equal(t, types.Position{Row: 0, Col: 2}, e.Caret())
}

func TestSetContent_ReplacesEverything(t *testing.T) {
	e := NewEngine([]string{"old"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveRight, "2"))
	e.ApplyAction(rec(types.ActionSetContent, "new\ncontent"))

	require.Equal(t, []string{"new", "content"}, e.Lines())
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())
	require.False(t, e.HasSelection())
}
