package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/reel/internal/types"
)

func TestMoveLeft_WrapsToPreviousLineEnd(t *testing.T) {
	e := NewEngine([]string{"abc", "de"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveDown, "1"))
	e.ApplyAction(rec(types.ActionMoveLeft, "1"))
	require.Equal(t, types.Position{Row: 0, Col: 3}, e.Caret())
}

func TestMoveLeft_NoWrapAtFirstRow(t *testing.T) {
	e := NewEngine([]string{"abc"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveLeft, "5"))
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())
}

func TestMoveRight_WrapsToNextLineStart(t *testing.T) {
	e := NewEngine([]string{"ab", "cd"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveRight, "3"))
	require.Equal(t, types.Position{Row: 1, Col: 0}, e.Caret())
}

func TestMoveRight_NoWrapAtLastRow(t *testing.T) {
	e := NewEngine([]string{"ab"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveRight, "10"))
	require.Equal(t, types.Position{Row: 0, Col: 2}, e.Caret())
}

func TestMoveDown_ClampsColumnToShorterLine(t *testing.T) {
	e := NewEngine([]string{"longer line", "ab"}, nil, false)
	e.ApplyAction(rec(types.ActionLineEnd, ""))
	require.Equal(t, types.Position{Row: 0, Col: 11}, e.Caret())

	e.ApplyAction(rec(types.ActionMoveDown, "1"))
	require.Equal(t, types.Position{Row: 1, Col: 2}, e.Caret())
}

func TestMoveVertical_NoOpPastBoundaries(t *testing.T) {
	e := NewEngine([]string{"a", "b"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveDown, "9"))
	require.Equal(t, 1, e.Caret().Row)
	e.ApplyAction(rec(types.ActionMoveUp, "9"))
	require.Equal(t, 0, e.Caret().Row)
}

func TestLineStartEnd_Idempotent(t *testing.T) {
	e := NewEngine([]string{"abcdef"}, nil, false)

	e.ApplyAction(rec(types.ActionLineEnd, ""))
	require.Equal(t, types.Position{Row: 0, Col: 6}, e.Caret())
	e.ApplyAction(rec(types.ActionLineEnd, ""))
	require.Equal(t, types.Position{Row: 0, Col: 6}, e.Caret())

	e.ApplyAction(rec(types.ActionLineStart, ""))
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())
	e.ApplyAction(rec(types.ActionLineStart, ""))
	require.Equal(t, types.Position{Row: 0, Col: 0}, e.Caret())
}

func TestPlainMovement_ClearsSelection(t *testing.T) {
	e := NewEngine([]string{"abcdef"}, nil, false)
	e.ApplyAction(rec(types.ActionExtendRight, "3"))
	require.True(t, e.HasSelection())

	e.ApplyAction(rec(types.ActionMoveRight, "1"))
	require.False(t, e.HasSelection())
	require.Equal(t, "", e.Highlighted())
}

func TestLineStart_ClearsSelection(t *testing.T) {
	e := NewEngine([]string{"abcdef"}, nil, false)
	e.ApplyAction(rec(types.ActionExtendRight, "2"))
	require.True(t, e.HasSelection())

	e.ApplyAction(rec(types.ActionLineStart, ""))
	require.False(t, e.HasSelection())
}

// The extending vertical rule keeps the column when the destination line is
// long enough and clamps it otherwise. It lives on its own code path from
// plain vertical movement; both get pinned here.
func TestExtendDown_PreservesColumnOnLongerLine(t *testing.T) {
	e := NewEngine([]string{"ab", "abcdef"}, nil, false)
	e.ApplyAction(rec(types.ActionLineEnd, ""))
	e.ApplyAction(rec(types.ActionExtendDown, "1"))
	require.Equal(t, types.Position{Row: 1, Col: 2}, e.Caret())
	require.Equal(t, "\nab", e.Highlighted())
}

func TestExtendDown_ClampsColumnOnShorterLine(t *testing.T) {
	e := NewEngine([]string{"abcdef", "xy"}, nil, false)
	e.ApplyAction(rec(types.ActionLineEnd, ""))
	e.ApplyAction(rec(types.ActionExtendDown, "1"))
	require.Equal(t, types.Position{Row: 1, Col: 2}, e.Caret())
	require.Equal(t, "\nxy", e.Highlighted())
}

func TestExtendUp_ClampsColumnOnShorterLine(t *testing.T) {
	e := NewEngine([]string{"ab", "much longer"}, nil, false)
	e.ApplyAction(rec(types.ActionMoveDown, "1"))
	e.ApplyAction(rec(types.ActionLineEnd, ""))
	e.ApplyAction(rec(types.ActionExtendUp, "1"))
	require.Equal(t, types.Position{Row: 0, Col: 2}, e.Caret())
}
