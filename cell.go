package vtcore

import "image/color"

// CellFlags is a bitmask of cell decoration attributes (§3).
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagUnderline
	CellFlagBlink
	CellFlagInverse
	CellFlagHidden
	CellFlagWideChar       // first column of a wide (2-column) character
	CellFlagWideCharSpacer // second column of a wide character, skipped on render
	CellFlagDirty
)

// Cell stores the scalar, colors and decoration flags for one grid position.
// A wide character occupies two columns: the first cell carries the rune and
// CellFlagWideChar, the second is a CellFlagWideCharSpacer.
type Cell struct {
	Char  rune
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
}

// NewCell returns a cell holding a space with default foreground/background.
func NewCell() Cell {
	return Cell{
		Char: ' ',
		Fg:   DefaultColor{Foreground: true},
		Bg:   DefaultColor{Foreground: false},
	}
}

// Reset restores the cell to its default state (space, default colors, no flags).
func (c *Cell) Reset() {
	c.Char = ' '
	c.Fg = DefaultColor{Foreground: true}
	c.Bg = DefaultColor{Foreground: false}
	c.Flags = 0
}

// HasFlag reports whether flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsDirty reports whether the cell was modified since the last ClearDirty.
func (c *Cell) IsDirty() bool { return c.HasFlag(CellFlagDirty) }

// MarkDirty flags the cell as modified.
func (c *Cell) MarkDirty() { c.SetFlag(CellFlagDirty) }

// ClearDirty resets the dirty flag.
func (c *Cell) ClearDirty() { c.ClearFlag(CellFlagDirty) }

// IsWide reports whether the cell holds the first column of a wide character.
func (c *Cell) IsWide() bool { return c.HasFlag(CellFlagWideChar) }

// IsWideSpacer reports whether the cell is the trailing spacer of a wide character.
func (c *Cell) IsWideSpacer() bool { return c.HasFlag(CellFlagWideCharSpacer) }

// Copy returns a value copy of the cell.
func (c *Cell) Copy() Cell {
	return Cell{Char: c.Char, Fg: c.Fg, Bg: c.Bg, Flags: c.Flags}
}
