package vtcore

import "image/color"

// ApplySGR applies semicolon-separated SGR parameters to template in place,
// implementing the §4.3 attribute engine: legacy ANSI colors, 256-indexed
// colors, and 24-bit RGB, threaded through the 38/48 multi-parameter
// sub-machine. Grounded on phroun-purfecterm's executeSGR, restructured
// into an explicit state-0..5 machine over the 38/48 subparameter run.
//
// unknown is called once per code that dispatch doesn't recognize, so the
// caller can raise the §7 diagnostic without this function taking a logger
// dependency of its own.
func ApplySGR(t *CellTemplate, params []int, unknown func(code int)) {
	if len(params) == 0 {
		params = []int{0}
	}

	i := 0
	for i < len(params) {
		code := params[i]
		i++
		switch {
		case code == 0 || code == 22:
			t.Fg = DefaultColor{Foreground: true}
			t.Bg = DefaultColor{Foreground: false}
			t.Flags = 0
		case code == 1:
			t.SetFlag(CellFlagBold)
		case code == 4:
			t.SetFlag(CellFlagUnderline)
		case code == 5 || code == 6:
			t.SetFlag(CellFlagBlink)
		case code == 7:
			t.SetFlag(CellFlagInverse)
		case code == 8:
			t.SetFlag(CellFlagHidden)
		case code == 24:
			t.ClearFlag(CellFlagUnderline)
		case code == 25:
			t.ClearFlag(CellFlagBlink)
		case code == 27:
			t.ClearFlag(CellFlagInverse)
		case code == 28:
			t.ClearFlag(CellFlagHidden)
		case code >= 30 && code <= 37:
			t.Fg = IndexedColor{Index: uint8(code - 30)}
		case code >= 40 && code <= 47:
			t.Bg = IndexedColor{Index: uint8(code - 40)}
		case code >= 90 && code <= 97:
			t.Fg = IndexedColor{Index: uint8(code - 90 + 8)}
		case code >= 100 && code <= 107:
			t.Bg = IndexedColor{Index: uint8(code - 100 + 8)}
		case code == 39:
			t.Fg = DefaultColor{Foreground: true}
		case code == 49:
			t.Bg = DefaultColor{Foreground: false}
		case code == 38:
			i = applyExtendedColor(t, params, i, true)
		case code == 48:
			i = applyExtendedColor(t, params, i, false)
		default:
			if unknown != nil {
				unknown(code)
			}
		}
	}
}

// applyExtendedColor implements SGR states 1-5: state 1 reads the color
// mode selector (5 = indexed, 2 = RGB); any other value aborts back to
// state 0 with nothing applied. Returns the next unconsumed parameter
// index.
func applyExtendedColor(t *CellTemplate, params []int, i int, fg bool) int {
	if i >= len(params) {
		return i
	}
	mode := params[i]
	i++

	switch mode {
	case 5:
		if i >= len(params) {
			return i
		}
		idx := clampChannel(params[i])
		i++
		setColor(t, IndexedColor{Index: idx}, fg)
	case 2:
		if i >= len(params) {
			return i
		}
		r := clampChannel(params[i])
		i++
		if i >= len(params) {
			return i
		}
		g := clampChannel(params[i])
		i++
		if i >= len(params) {
			return i
		}
		b := clampChannel(params[i])
		i++
		setColor(t, color.RGBA{R: r, G: g, B: b, A: 255}, fg)
	}
	return i
}

func setColor(t *CellTemplate, c color.Color, fg bool) {
	if fg {
		t.Fg = c
	} else {
		t.Bg = c
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
