package vtcore

import "image/color"

// DefaultColor represents the DEFAULT member of the §3 color union. It
// carries which side (foreground/background) it stands in for, since a
// bare color.Color has no notion of which default applies.
type DefaultColor struct {
	Foreground bool
}

func (d DefaultColor) RGBA() (r, g, b, a uint32) {
	if d.Foreground {
		return DefaultForeground.RGBA()
	}
	return DefaultBackground.RGBA()
}

// IndexedColor represents the INDEXED(0..255) member of the §3 color union.
// Resolution against the mutable palette happens in ResolveColor, not here;
// RGBA falls back to the immutable default palette so the type still
// satisfies color.Color on its own.
type IndexedColor struct {
	Index uint8
}

func (c IndexedColor) RGBA() (r, g, b, a uint32) {
	return defaultPaletteData[c.Index].RGBA()
}

// defaultPaletteData is the immutable xterm 256-color palette: 16 named
// colors, a 216-entry color cube, and a 24-step grayscale ramp.
var defaultPaletteData [256]color.RGBA

func init() {
	named := [16]color.RGBA{
		{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
		{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
		{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
		{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
	}
	copy(defaultPaletteData[:16], named[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				defaultPaletteData[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		defaultPaletteData[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForeground is the default text color.
var DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}

// DefaultBackground is the default background color.
var DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Palette is the per-terminal mutable 256-entry INDEXED color table (§3).
// OSC 4 installs entries here; installing an entry never touches any cell,
// so already-written INDEXED cells pick up the new color the next time
// they are resolved.
type Palette struct {
	entries [256]color.RGBA
}

// NewPalette returns a palette seeded from the default xterm 256-color table.
func NewPalette() *Palette {
	p := &Palette{}
	p.entries = defaultPaletteData
	return p
}

// Get returns the color currently installed at index.
func (p *Palette) Get(index uint8) color.RGBA {
	return p.entries[index]
}

// Set installs c at index, overwriting immediately.
func (p *Palette) Set(index uint8, c color.RGBA) {
	p.entries[index] = c
}

// ResolveColor turns a §3 color union member into a concrete RGBA value
// using the given per-terminal palette for INDEXED colors. Grounded on the
// teacher's resolveDefaultColor, adapted to thread a mutable palette instead
// of a package-global table so OSC 4 updates are observable (§3 invariant).
func ResolveColor(p *Palette, c color.Color, fg bool) color.RGBA {
	if c == nil {
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case DefaultColor:
		if v.Foreground {
			return DefaultForeground
		}
		return DefaultBackground
	case IndexedColor:
		if p != nil {
			return p.Get(v.Index)
		}
		return defaultPaletteData[v.Index]
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	}
}
