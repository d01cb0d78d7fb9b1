package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuneIndexToByteOffset(t *testing.T) {
	line := []byte("héllo")

	require.Equal(t, 0, RuneIndexToByteOffset(line, 0))
	require.Equal(t, 1, RuneIndexToByteOffset(line, 1))
	require.Equal(t, 3, RuneIndexToByteOffset(line, 2)) // 'é' is two bytes
	require.Equal(t, len(line), RuneIndexToByteOffset(line, 5))
	require.Equal(t, len(line), RuneIndexToByteOffset(line, 99))
	require.Equal(t, 0, RuneIndexToByteOffset(line, -1))
}
