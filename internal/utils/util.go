package utils

import "unicode/utf8"

// RuneIndexToByteOffset converts a rune index to a byte offset in a byte slice.
// An index at or past the end of the line maps to len(line).
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	return len(line)
}
