package vtcore

import "fmt"

// CursorKeyMode selects whether cursor keys encode in normal or
// application mode (DECCKM, §3).
type CursorKeyMode int

const (
	CursorKeyNormal CursorKeyMode = iota
	CursorKeyApplication
)

// CursorDirection is one of the four arrow keys.
type CursorDirection int

const (
	CursorUp CursorDirection = iota
	CursorDown
	CursorRight
	CursorLeft
)

func (d CursorDirection) final() byte {
	return [...]byte{'A', 'B', 'C', 'D'}[d]
}

// FunctionKey is F1 through F12.
type FunctionKey int

const (
	F1 FunctionKey = 1 + iota
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// functionKeyFinal holds the final letter used for F1-F4 (application and
// xterm-modified encodings share it).
var functionKeyFinal = map[FunctionKey]byte{F1: 'P', F2: 'Q', F3: 'R', F4: 'S'}

// functionKeyNumber holds the CSI numeric code used for F5-F12 (§4.7).
var functionKeyNumber = map[FunctionKey]int{
	F5: 15, F6: 17, F7: 18, F8: 19, F9: 20, F10: 21, F11: 23, F12: 24,
}

// EditingKey is one of the six VT220 editing keys.
type EditingKey int

const (
	KeyInsert EditingKey = iota
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
)

// editingKeyNumber holds the primary CSI numeric code for each editing key.
var editingKeyNumber = map[EditingKey]int{
	KeyInsert: 2, KeyHome: 7, KeyPageUp: 5, KeyDelete: 3, KeyEnd: 8, KeyPageDown: 6,
}

// KeyModifiers is a bitmask of modifier keys held with another key.
type KeyModifiers int

const (
	ModShift KeyModifiers = 1 << iota
	ModAlt
	ModCtrl
)

// modifierIndex computes xterm's m = 1 + shift + 2*alt + 4*ctrl (§4.7).
func modifierIndex(mods KeyModifiers) int {
	m := 1
	if mods&ModShift != 0 {
		m++
	}
	if mods&ModAlt != 0 {
		m += 2
	}
	if mods&ModCtrl != 0 {
		m += 4
	}
	return m
}

// KeyEncoder converts cursor/function/editing keys into the byte sequences
// the peer expects, given the terminal's current modes (§4.7). Grounded on
// phroun-purfecterm's cli/input.go keyToBytesMap/keyToBytes, the only real
// validation in the retrieval pack of xterm's modifier-index formula and
// F-key/editing-key byte tables.
type KeyEncoder struct {
	ModifyCursorKeys int // preference; default 2, must be positive (§6)
}

// EncodeCursorKey implements the §4.7 cursor-key table.
func (k KeyEncoder) EncodeCursorKey(dir CursorDirection, mode CursorKeyMode, mods KeyModifiers) []byte {
	m := modifierIndex(mods)
	final := dir.final()

	switch {
	case k.ModifyCursorKeys == 2 && m >= 2 && m <= 7:
		return []byte(fmt.Sprintf("\x1b[1;%d%c", m, final))
	case k.ModifyCursorKeys == 3 && m >= 2 && m <= 7:
		return []byte(fmt.Sprintf("\x1b[>1;%d%c", m, final))
	case mode == CursorKeyApplication:
		return []byte{0x1b, 'O', final}
	default:
		return []byte{0x1b, '[', final}
	}
}

// EncodeFunctionKey implements the §4.7 function-key table.
func (k KeyEncoder) EncodeFunctionKey(fn FunctionKey, mods KeyModifiers) []byte {
	m := modifierIndex(mods)

	if final, ok := functionKeyFinal[fn]; ok {
		if m > 1 {
			return []byte(fmt.Sprintf("\x1b[1;%d%c", m, final))
		}
		return []byte{0x1b, 'O', final}
	}

	n := functionKeyNumber[fn]
	if m > 1 {
		return []byte(fmt.Sprintf("\x1b[%d;%d~", n, m))
	}
	return []byte(fmt.Sprintf("\x1b[%d~", n))
}

// EncodeEditingKey implements the §4.7 editing-key table. legacy selects
// the shifted 1..6 encoding instead of the primary {2,7,5,3,8,6} table.
func (k KeyEncoder) EncodeEditingKey(key EditingKey, legacy bool) []byte {
	n := editingKeyNumber[key]
	if legacy {
		n = int(key) + 1
	}
	return []byte(fmt.Sprintf("\x1b[%d~", n))
}
