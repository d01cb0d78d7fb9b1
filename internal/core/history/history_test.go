package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/reel/internal/types"
)

func TestRecord_DeepCopiesLines(t *testing.T) {
	l := NewLog()
	lines := [][]byte{[]byte("abc")}
	l.Record(lines, types.Position{}, types.NoPosition, "", types.Record{Kind: types.ActionSetContent}, types.Caption{})

	// Mutating the caller's slice must not change the recorded entry.
	lines[0][0] = 'Z'
	entry, err := l.At(0)
	require.NoError(t, err)
	require.Equal(t, "abc", string(entry.Lines[0]))
}

func TestAt_OutOfRange(t *testing.T) {
	l := NewLog()
	l.Record([][]byte{[]byte("")}, types.Position{}, types.NoPosition, "", types.Record{}, types.Caption{})

	_, err := l.At(1)
	require.Error(t, err)
	_, err = l.At(-1)
	require.Error(t, err)
	_, err = l.Action(5)
	require.Error(t, err)
	_, err = l.Caption(5)
	require.Error(t, err)
}

func TestLogs_StayIndexAligned(t *testing.T) {
	l := NewLog()
	for i := 0; i < 3; i++ {
		l.Record([][]byte{[]byte("x")}, types.Position{}, types.NoPosition, "", types.Record{Kind: types.ActionMoveRight, Value: "1"}, types.Caption{})
	}
	require.Equal(t, 3, l.Len())
	require.Len(t, l.Actions(), 3)
	require.Len(t, l.Captions(), 3)
}

func TestEntryText_JoinsWithNewline(t *testing.T) {
	e := Entry{Lines: [][]byte{[]byte("a"), []byte("b")}}
	require.Equal(t, "a\nb", e.Text())
}
