package vtcore

// Cursor tracks the current caret position within the visible window (§3).
// Row/Col are 0-based.
type Cursor struct {
	Row int
	Col int
}

// NewCursor returns a cursor at the home position.
func NewCursor() *Cursor {
	return &Cursor{}
}

// SavedCursor captures cursor position and drawing attributes for restore
// via ESC 7/8, DECSC/DECRST 1048, or 1049 buffer switches. §3 requires one
// persistent saved cursor per buffer (main/alt) rather than a single shared
// slot, so a save made in the alternate screen can't leak into the main
// screen's restore.
type SavedCursor struct {
	Row        int
	Col        int
	Template   CellTemplate
	OriginMode bool
	Charset    CharsetIndex
}

// CellTemplate holds the decoration applied to newly written characters,
// mutated by SGR sequences (§4.3).
type CellTemplate struct {
	Cell
}

// NewCellTemplate returns a template with default attributes.
func NewCellTemplate() CellTemplate {
	return CellTemplate{Cell: NewCell()}
}

// CharsetIndex selects a character-set shift state. The core treats shifts
// as upstream concerns (§4.2: "SO, SI, NUL: no-op here") and only threads
// the index through saved-cursor state for round-tripping.
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
)
