// internal/core/engine.go
package core

import (
	"unicode/utf8"

	"github.com/bethropolis/reel/internal/buffer"
	"github.com/bethropolis/reel/internal/config"
	"github.com/bethropolis/reel/internal/core/history"
	"github.com/bethropolis/reel/internal/event"
	"github.com/bethropolis/reel/internal/types"
)

// Engine is a headless simulation of a line-oriented editor: a buffer, a
// caret, an optional selection anchor and a per-step trace of everything
// that happened. One caller owns an instance for its lifetime; nothing here
// is safe for concurrent use and nothing needs to be.
type Engine struct {
	buffer      buffer.Buffer
	caret       types.Position
	anchor      types.Position // NoPosition when no selection is active
	highlighted string         // cached text of the normalized [anchor, caret) range

	menuOpen bool
	verbose  bool

	displayBase     int // offset applied by the physical display adapter
	tabWidth        int // visual width of '\t' in projected frames
	systemClipboard bool
	register        []byte // internal copy/paste register

	trace        *history.Log
	eventManager *event.Manager
}

// NewEngine creates an engine seeded with the given lines. Empty input
// normalizes to one empty line. History index 0 holds the initial state
// under a synthetic set-content record, so history[i] is always the state
// after the i-th applied action. If actions are supplied they apply
// immediately, in order.
func NewEngine(initialLines []string, actions []types.Record, verbose bool) *Engine {
	e := &Engine{
		buffer:      buffer.NewSliceBufferFromLines(initialLines),
		caret:       types.Position{Row: 0, Col: 0},
		anchor:      types.NoPosition,
		verbose:     verbose,
		displayBase: config.DefaultDisplayBase,
		tabWidth:    config.DefaultTabWidth,
		trace:       history.NewLog(),
	}
	e.record(types.Record{Kind: types.ActionSetContent, Value: e.Text()}, types.Caption{})
	e.ApplyActions(actions)
	return e
}

// SetEventManager sets the event manager used to announce applied actions
// and buffer changes. Optional.
func (e *Engine) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetDisplayBase sets the offset the physical caret form adds to the
// internal 0-indexed caret.
func (e *Engine) SetDisplayBase(base int) {
	if base >= 0 {
		e.displayBase = base
	}
}

// SetTabWidth sets the visual width of a tab in projected frames.
func (e *Engine) SetTabWidth(width int) {
	if width > 0 {
		e.tabWidth = width
	}
}

// SetSystemClipboard toggles mirroring of copy-selection to the OS
// clipboard.
func (e *Engine) SetSystemClipboard(enabled bool) {
	e.systemClipboard = enabled
}

// SetVerbose toggles diagnostic output. No state effect.
func (e *Engine) SetVerbose(verbose bool) {
	e.verbose = verbose
}

// Lines returns the current buffer content as strings.
func (e *Engine) Lines() []string {
	raw := e.buffer.Lines()
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = string(line)
	}
	return out
}

// Text returns the full buffer joined with '\n'.
func (e *Engine) Text() string {
	return string(e.buffer.Bytes())
}

// Caret returns the caret in internal 0-indexed form.
func (e *Engine) Caret() types.Position {
	return e.caret
}

// PhysicalCaret returns the caret in the external display convention,
// offset by the configured display base (1-indexed by default).
func (e *Engine) PhysicalCaret() types.Position {
	return types.Position{
		Row: e.caret.Row + e.displayBase,
		Col: e.caret.Col + e.displayBase,
	}
}

// Selection returns the normalized selection range (start <= end) or
// ok=false when no selection is active.
func (e *Engine) Selection() (start, end types.Position, ok bool) {
	if !e.HasSelection() {
		return types.NoPosition, types.NoPosition, false
	}
	start, end = e.anchor, e.caret
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}

// Highlighted returns the cached highlighted text of the active selection.
func (e *Engine) Highlighted() string {
	return e.highlighted
}

// MenuOpen reports whether the simulated context menu is open.
func (e *Engine) MenuOpen() bool {
	return e.menuOpen
}

// Saved reports the saved flag: set by mark-saved, cleared by any
// buffer-mutating action.
func (e *Engine) Saved() bool {
	return !e.buffer.IsModified()
}

// History returns the underlying trace log.
func (e *Engine) History() *history.Log {
	return e.trace
}

// LinesAt returns the buffer snapshot recorded at the given history index.
func (e *Engine) LinesAt(index int) ([]string, error) {
	entry, err := e.trace.At(index)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entry.Lines))
	for i, line := range entry.Lines {
		out[i] = string(line)
	}
	return out, nil
}

// TextAt returns the joined text recorded at the given history index.
func (e *Engine) TextAt(index int) (string, error) {
	entry, err := e.trace.At(index)
	if err != nil {
		return "", err
	}
	return entry.Text(), nil
}

// HighlightAt returns the highlighted text recorded at the given history
// index.
func (e *Engine) HighlightAt(index int) (string, error) {
	entry, err := e.trace.At(index)
	if err != nil {
		return "", err
	}
	return entry.Highlighted, nil
}

// Actions returns the full action log, including the synthetic index-0
// set-content record.
func (e *Engine) Actions() []types.Record {
	return e.trace.Actions()
}

// EditingActions returns only the actions that can mutate buffer text.
func (e *Engine) EditingActions() []types.Record {
	var out []types.Record
	for _, rec := range e.trace.Actions() {
		if rec.Kind.IsEditing() {
			out = append(out, rec)
		}
	}
	return out
}

// SpeechActions returns only the narration actions.
func (e *Engine) SpeechActions() []types.Record {
	var out []types.Record
	for _, rec := range e.trace.Actions() {
		if rec.Kind.IsSpeech() {
			out = append(out, rec)
		}
	}
	return out
}

// Captions returns the per-step caption log, index-aligned with Actions.
func (e *Engine) Captions() []types.Caption {
	return e.trace.Captions()
}

// lineRuneCount returns the rune length of the given row, 0 for rows that
// don't exist.
func (e *Engine) lineRuneCount(row int) int {
	line, err := e.buffer.Line(row)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(line)
}

// record appends one step to every log and announces it. Called exactly
// once at the end of every ApplyAction.
func (e *Engine) record(rec types.Record, caption types.Caption) {
	e.trace.Record(e.buffer.Lines(), e.caret, e.anchor, e.highlighted, rec, caption)
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeActionApplied, event.ActionAppliedData{
			Index:  e.trace.Len() - 1,
			Action: rec,
		})
	}
}

// dispatchModified announces a buffer mutation when one actually happened.
func (e *Engine) dispatchModified(info types.EditInfo) {
	if e.eventManager != nil && info != (types.EditInfo{}) {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: info})
	}
}
