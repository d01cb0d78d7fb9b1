package types

// EditInfo summarizes a single buffer mutation.
// Start is where the change began, OldEnd the end of the replaced text and
// NewEnd the end of the inserted text. A zero EditInfo means the operation
// changed nothing.
type EditInfo struct {
	Start  Position
	OldEnd Position
	NewEnd Position
}
