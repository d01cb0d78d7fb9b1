package types

// ActionKind identifies one scripted editor command. The set is closed: the
// interpreter switches over it exhaustively, and names that don't resolve map
// to ActionUnknown, which applies as a recorded no-op.
type ActionKind int

const (
	ActionUnknown ActionKind = iota

	// ActionSetContent replaces the whole buffer with its payload. The engine
	// seeds history index 0 with a synthetic record of this kind.
	ActionSetContent

	// Text mutation
	ActionInsertText
	ActionNewline
	ActionDeleteBackward
	ActionDeleteForward
	ActionInsertSpace
	ActionInsertTab
	ActionCopySelection
	ActionPaste

	// Caret movement
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLineStart
	ActionLineEnd

	// Selection extension
	ActionExtendLeft
	ActionExtendRight
	ActionExtendUp
	ActionExtendDown

	// Flags
	ActionShowMenu
	ActionHideMenu
	ActionMarkSaved

	// Narration
	ActionSpeakBefore
	ActionSpeakAfter
	ActionSpeakDuring
)

var kindNames = map[ActionKind]string{
	ActionUnknown:        "unknown",
	ActionSetContent:     "set-content",
	ActionInsertText:     "insert-text",
	ActionNewline:        "newline",
	ActionDeleteBackward: "delete-backward",
	ActionDeleteForward:  "delete-forward",
	ActionInsertSpace:    "insert-space",
	ActionInsertTab:      "insert-tab",
	ActionCopySelection:  "copy-selection",
	ActionPaste:          "paste",
	ActionMoveLeft:       "move-left",
	ActionMoveRight:      "move-right",
	ActionMoveUp:         "move-up",
	ActionMoveDown:       "move-down",
	ActionLineStart:      "line-start",
	ActionLineEnd:        "line-end",
	ActionExtendLeft:     "extend-left",
	ActionExtendRight:    "extend-right",
	ActionExtendUp:       "extend-up",
	ActionExtendDown:     "extend-down",
	ActionShowMenu:       "show-menu",
	ActionHideMenu:       "hide-menu",
	ActionMarkSaved:      "mark-saved",
	ActionSpeakBefore:    "speak-before",
	ActionSpeakAfter:     "speak-after",
	ActionSpeakDuring:    "speak-during",
}

var namesToKind = func() map[string]ActionKind {
	m := make(map[string]ActionKind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the script-facing name of the kind.
func (k ActionKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindFromName resolves a script-facing name. Unrecognized names resolve to
// ActionUnknown so that malformed scripts still replay with aligned indices.
func KindFromName(name string) ActionKind {
	if k, ok := namesToKind[name]; ok {
		return k
	}
	return ActionUnknown
}

// IsRepeatable reports whether the kind's Value carries a textual repeat
// count instead of a literal payload.
func (k ActionKind) IsRepeatable() bool {
	switch k {
	case ActionNewline, ActionDeleteBackward, ActionDeleteForward,
		ActionInsertSpace, ActionInsertTab, ActionPaste,
		ActionMoveLeft, ActionMoveRight, ActionMoveUp, ActionMoveDown,
		ActionExtendLeft, ActionExtendRight, ActionExtendUp, ActionExtendDown:
		return true
	}
	return false
}

// IsEditing reports whether the kind can mutate buffer text.
func (k ActionKind) IsEditing() bool {
	switch k {
	case ActionSetContent, ActionInsertText, ActionNewline,
		ActionDeleteBackward, ActionDeleteForward,
		ActionInsertSpace, ActionInsertTab, ActionPaste:
		return true
	}
	return false
}

// IsSpeech reports whether the kind records a caption instead of touching
// buffer, caret or selection.
func (k ActionKind) IsSpeech() bool {
	switch k {
	case ActionSpeakBefore, ActionSpeakAfter, ActionSpeakDuring:
		return true
	}
	return false
}

// SpeechKind returns "before", "after" or "during" for speech kinds, and ""
// for everything else.
func (k ActionKind) SpeechKind() string {
	switch k {
	case ActionSpeakBefore:
		return "before"
	case ActionSpeakAfter:
		return "after"
	case ActionSpeakDuring:
		return "during"
	}
	return ""
}

// Record is one scripted command driving the engine: a kind plus its raw
// value. Depending on the kind, Value is a literal text payload or a textual
// repeat count.
type Record struct {
	Kind  ActionKind
	Value string
}

// Caption is the narration recorded for one applied action. Non-speech
// actions record a zero Caption so the caption log stays index-aligned with
// every other per-step log.
type Caption struct {
	Speech string // "before", "after" or "during"; empty for non-speech steps
	Text   string
}
