// internal/core/frames.go
package core

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/reel/internal/types"
	"github.com/bethropolis/reel/internal/utils"
)

// Frame is the renderer-facing projection of one recorded step: the action
// that produced it, the state it left behind and the caption narrating it.
type Frame struct {
	Index       int
	Action      types.Record
	Lines       []string
	Text        string
	Caret       types.Position
	Anchor      types.Position // NoPosition when no selection was active
	Highlighted string
	Caption     types.Caption

	// VisualCol is the display-cell column of the caret, accounting for
	// grapheme cluster widths and tab stops.
	VisualCol int
}

// Frames derives the full per-step frame list from the recorded history.
// Pure projection: it holds no state of its own and can be called at any
// point, any number of times.
func (e *Engine) Frames() []Frame {
	frames := make([]Frame, 0, e.trace.Len())
	for i := 0; i < e.trace.Len(); i++ {
		entry, _ := e.trace.At(i)
		action, _ := e.trace.Action(i)
		caption, _ := e.trace.Caption(i)

		lines := make([]string, len(entry.Lines))
		for j, line := range entry.Lines {
			lines[j] = string(line)
		}

		visual := 0
		if entry.Caret.Row >= 0 && entry.Caret.Row < len(entry.Lines) {
			visual = visualColumn(entry.Lines[entry.Caret.Row], entry.Caret.Col, e.tabWidth)
		}

		frames = append(frames, Frame{
			Index:       i,
			Action:      action,
			Lines:       lines,
			Text:        entry.Text(),
			Caret:       entry.Caret,
			Anchor:      entry.Anchor,
			Highlighted: entry.Highlighted,
			Caption:     caption,
			VisualCol:   visual,
		})
	}
	return frames
}

// visualColumn computes the display-cell width of the line prefix before
// the given rune index. Grapheme clusters count their cell width; a tab
// advances to the next tab stop.
func visualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteLimit := utils.RuneIndexToByteOffset(line, runeIndex)

	width := 0
	offset := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if offset >= byteLimit {
			break
		}
		if gr.Str() == "\t" {
			width += tabWidth - width%tabWidth
		} else {
			width += gr.Width()
		}
		offset += len(gr.Bytes())
	}
	return width
}
