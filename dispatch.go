package vtcore

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Print delivers a printable scalar to the line manipulator (§4.1, §4.2).
func (t *Terminal) Print(r rune) {
	t.putChar(r)
}

// Execute dispatches a C0 control character (§4.2).
func (t *Terminal) Execute(r rune) {
	switch r {
	case 0x0A, 0x0B: // LF, VT
		if t.lineFeedRule == LineFeedLFOnly {
			t.carriageReturn()
		}
		t.executeLineFeed()
	case 0x0D: // CR
		t.carriageReturn()
		if t.lineFeedRule == LineFeedCROnly {
			t.executeLineFeed()
		}
	case 0x07: // BEL
		t.bell.Ring()
	case 0x08: // BS
		t.backspace()
	case 0x09: // HT
		t.horizontalTab()
	case 0x00, 0x0E, 0x0F: // NUL, SO, SI: accepted no-ops
	default:
		t.reportUnsupported(fmt.Sprintf("C0 0x%02X", r))
	}
}

// EscDispatch dispatches a terminated ESC-final form (§4.2).
func (t *Terminal) EscDispatch(intermediates string, final rune) {
	if intermediates == "" {
		switch final {
		case '=':
			t.terminalMode = TerminalModeApplication
			return
		case '>':
			t.terminalMode = TerminalModeNormal
			return
		case 'E':
			t.cursor.Col = 0
			t.executeLineFeed()
			return
		case 'D':
			t.lineFeed()
			return
		case 'M':
			t.reverseIndex()
			return
		case '7':
			t.saveCursor()
			return
		case '8':
			t.restoreCursor()
			return
		case 'c':
			t.FullReset()
			return
		case 'H':
			t.activeBuffer().TabStops().Set(t.cursor.Col)
			return
		case 'F':
			t.cursor.Row, t.cursor.Col = 0, 0
			return
		}
		t.reportUnknown("ESC " + string(final))
		return
	}

	// Intermediate-prefixed short forms (charset designation, DECALN, and
	// anything else starting with '(', ')', '#' or a space intermediate):
	// behavior for these is left mostly open beyond DECALN (§9). DECALN is
	// wired to the buffer's screen-alignment fill; everything else is
	// accepted silently rather than guessed at.
	if intermediates == "#" && final == '8' {
		t.activeBuffer().FillWithE()
		return
	}
}

// splitPrivateMarker strips a leading CSI marker byte ('?', '>', '!', '=')
// used to select DEC-private, secondary-DA, or soft-reset forms.
func splitPrivateMarker(s string) (marker byte, rest string) {
	if len(s) > 0 {
		switch s[0] {
		case '?', '>', '!', '=':
			return s[0], s[1:]
		}
	}
	return 0, s
}

// parseIntParams splits a semicolon-separated parameter string into ints. A
// field that fails to parse as an integer raises the §7 diagnostic (an
// omitted field and a malformed one are not the same thing, even though
// both default to 0 for dispatch purposes).
func (t *Terminal) parseIntParams(s string) []int {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		if f == "" {
			continue // omitted field: 0, no diagnostic
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			n = 0
			t.reportUnknown(fmt.Sprintf("CSI parameter %q", f))
		}
		out[i] = n
	}
	return out
}

// paramDefault returns params[idx] if present and non-zero, else def —
// matching the ANSI convention that an omitted parameter and an explicit
// zero parameter mean the same thing.
func paramDefault(params []int, idx, def int) int {
	if idx >= len(params) || params[idx] == 0 {
		return def
	}
	return params[idx]
}

// CsiDispatch dispatches a terminated CSI sequence (§4.2, §4.4).
func (t *Terminal) CsiDispatch(params string, final rune) {
	marker, rest := splitPrivateMarker(params)
	ints := t.parseIntParams(rest)
	buf := t.activeBuffer()

	switch final {
	case 'A':
		t.setCursorRowRelative(-paramDefault(ints, 0, 1))
	case 'B':
		t.setCursorRowRelative(paramDefault(ints, 0, 1))
	case 'C':
		t.setCursorColumn(t.cursor.Col + paramDefault(ints, 0, 1))
	case 'D':
		t.setCursorColumn(t.cursor.Col - paramDefault(ints, 0, 1))
	case 'E':
		t.setCursorRowRelative(paramDefault(ints, 0, 1))
		t.cursor.Col = 0
	case 'F':
		t.setCursorRowRelative(-paramDefault(ints, 0, 1))
		t.cursor.Col = 0
	case 'H', 'f':
		row := paramDefault(ints, 0, 1) - 1
		col := paramDefault(ints, 1, 1) - 1
		t.setCursorPosition(row, col)
	case 'd':
		t.setCursorRow(paramDefault(ints, 0, 1) - 1)
	case 'G', '`':
		t.setCursorColumn(paramDefault(ints, 0, 1) - 1)
	case 'J':
		t.eraseInDisplay(paramDefault(ints, 0, 0))
	case 'K':
		t.eraseInLine(paramDefault(ints, 0, 0))
	case 'L':
		if t.cursor.Row >= t.scrollTop && t.cursor.Row <= t.scrollBottom {
			buf.InsertLines(t.cursor.Row, paramDefault(ints, 0, 1), t.scrollBottom+1)
		}
	case 'M':
		if t.cursor.Row >= t.scrollTop && t.cursor.Row <= t.scrollBottom {
			buf.DeleteLines(t.cursor.Row, paramDefault(ints, 0, 1), t.scrollBottom+1)
		}
	case 'S':
		buf.ScrollUp(t.scrollTop, t.scrollBottom+1, paramDefault(ints, 0, 1))
	case 'T':
		buf.ScrollDown(t.scrollTop, t.scrollBottom+1, paramDefault(ints, 0, 1))
	case 'X':
		n := paramDefault(ints, 0, 1)
		end := t.cursor.Col + n
		if end > buf.Cols() {
			end = buf.Cols()
		}
		buf.EraseRowRange(t.cursor.Row, t.cursor.Col, end, t.template.Cell)
	case 'P':
		buf.DeleteChars(t.cursor.Row, t.cursor.Col, paramDefault(ints, 0, 1))
	case '@':
		buf.InsertBlanks(t.cursor.Row, t.cursor.Col, paramDefault(ints, 0, 1))
	case 'I':
		ts := buf.TabStops()
		for i, n := 0, paramDefault(ints, 0, 1); i < n; i++ {
			t.cursor.Col = ts.Next(t.cursor.Col)
		}
	case 'Z':
		ts := buf.TabStops()
		for i, n := 0, paramDefault(ints, 0, 1); i < n; i++ {
			t.cursor.Col = ts.Prev(t.cursor.Col)
		}
	case 'g':
		switch paramDefault(ints, 0, 0) {
		case 0:
			buf.TabStops().Clear(t.cursor.Col)
		case 3:
			buf.TabStops().ClearAll()
		default:
			t.reportUnsupported(fmt.Sprintf("CSI %dg", paramDefault(ints, 0, 0)))
		}
	case 'm':
		if len(ints) == 0 {
			ints = []int{0}
		}
		ApplySGR(&t.template, ints, func(code int) {
			t.reportUnsupported(fmt.Sprintf("SGR %d", code))
		})
	case 'h', 'l':
		set := final == 'h'
		if marker == '?' {
			for _, p := range ints {
				t.setPrivateMode(p, set)
			}
		} else {
			for _, p := range ints {
				t.setAnsiMode(p, set)
			}
		}
	case 'r':
		if marker == '?' {
			for _, p := range ints {
				if p == 47 || p == 1047 {
					t.switchAltBuffer(t.savedAltBuffer, false)
				}
			}
			return
		}
		top := paramDefault(ints, 0, 1) - 1
		bottom := paramDefault(ints, 1, buf.Rows()) - 1
		if top > bottom {
			top, bottom = bottom, top
		}
		if top < 0 {
			top = 0
		}
		if bottom > buf.Rows()-1 {
			bottom = buf.Rows() - 1
		}
		t.scrollTop, t.scrollBottom = top, bottom
	case 's':
		if marker == '?' {
			for _, p := range ints {
				if p == 47 || p == 1047 {
					t.savedAltBuffer = t.altActive
				}
			}
			return
		}
		t.reportUnsupported("CSI s")
	case 'c':
		if marker == '>' {
			t.respond("\x1b[>82;1;0c")
		} else {
			t.respond("\x1b[?1;2c")
		}
	case 'n':
		dsrMode := paramDefault(ints, 0, 0)
		switch dsrMode {
		case 5:
			t.respond("\x1b[0n")
		case 6:
			t.respond(fmt.Sprintf("\x1b[%d;%dR", t.cursor.Row+1, t.cursor.Col+1))
		default:
			t.reportUnsupported(fmt.Sprintf("CSI %dn", dsrMode))
		}
	case 'p':
		if marker == '!' {
			t.FullReset()
		} else {
			t.reportUnsupported("CSI p")
		}
	case 'U':
		t.cursor.Row = buf.Rows() - 1
		t.cursor.Col = 0
	case 't':
		// Window manipulation: silently accepted, no reply (§9).
	default:
		t.reportUnknown(fmt.Sprintf("CSI %s%c", params, final))
	}
}

func (t *Terminal) eraseInDisplay(mode int) {
	buf := t.activeBuffer()
	row, col := t.cursor.Row, t.cursor.Col

	if mode == 0 && row == 0 && col == 0 {
		mode = 2
	}
	if mode == 1 && row == buf.Rows()-1 && col == buf.Cols()-1 {
		mode = 2
	}

	switch mode {
	case 0:
		buf.ClearRowRange(row, col, buf.Cols())
		for r := row + 1; r < buf.Rows(); r++ {
			buf.ClearRow(r)
		}
	case 1:
		for r := 0; r < row; r++ {
			buf.ClearRow(r)
		}
		buf.ClearRowRange(row, 0, col+1)
	case 2:
		buf.ClearAll()
		if t.template.Bg != nil {
			t.appModeBackColor = t.template.Bg
		} else {
			t.appModeBackColor = DefaultColor{Foreground: false}
		}
	default:
		t.reportUnsupported(fmt.Sprintf("CSI %dJ", mode))
	}
}

func (t *Terminal) eraseInLine(mode int) {
	buf := t.activeBuffer()
	row, col := t.cursor.Row, t.cursor.Col
	switch mode {
	case 0:
		buf.ClearRowRange(row, col, buf.Cols())
	case 1:
		buf.ClearRowRange(row, 0, col+1)
	case 2:
		buf.ClearRowRange(row, 0, buf.Cols())
	default:
		t.reportUnsupported(fmt.Sprintf("CSI %dK", mode))
	}
}

func (t *Terminal) setAnsiMode(p int, set bool) {
	switch p {
	case 4:
		t.insertMode = set
	case 12:
		t.localEcho = set
	case 20, 25, 34:
		// accepted no-ops (§4.4)
	default:
		t.reportUnsupported(fmt.Sprintf("CSI %d%s", p, modeFinal(set)))
	}
}

func condMouseState(set bool, s MouseTrackingState) MouseTrackingState {
	if set {
		return s
	}
	return MouseOff
}

func condMouseProtocol(set bool, p MouseProtocol) MouseProtocol {
	if set {
		return p
	}
	return MouseProtocolNormal
}

func modeFinal(set bool) string {
	if set {
		return "h"
	}
	return "l"
}

func (t *Terminal) setPrivateMode(p int, set bool) {
	switch p {
	case 1:
		if set {
			t.cursorKeyMode = CursorKeyApplication
		} else {
			t.cursorKeyMode = CursorKeyNormal
		}
	case 5:
		t.reverseVideo = set
	case 6:
		t.originMode = set
	case 7:
		t.wrapAroundMode = set
	case 12:
		// cursor-blink: intentionally unimplemented (§9 Open Question)
	case 25:
		t.cursorVisible = set
	case 47, 1047:
		t.switchAltBuffer(set, p == 1047)
	case 1048:
		if set {
			t.saveCursor()
		} else {
			t.restoreCursor()
		}
	case 1049:
		if set {
			t.saveCursor()
			t.switchAltBuffer(true, false)
			t.alt.ClearAll()
		} else {
			t.switchAltBuffer(false, false)
			t.restoreCursor()
		}
	case 1000:
		t.mouse.State = condMouseState(set, MouseNormal)
	case 1001:
		if set {
			t.mouse.State = MouseOff // highlight tracking: accepted, treated as off
		}
	case 1002:
		t.mouse.State = condMouseState(set, MouseDrag)
	case 1003:
		t.mouse.State = condMouseState(set, MouseAny)
	case 1004:
		t.focusReporting = set
	case 1005:
		t.mouse.Protocol = condMouseProtocol(set, MouseProtocolUtf8)
	case 1006:
		t.mouse.Protocol = condMouseProtocol(set, MouseProtocolSgr)
	case 1015:
		t.mouse.Protocol = condMouseProtocol(set, MouseProtocolUrxvt)
	case 2004:
		t.bracketedPaste = set
	default:
		t.reportUnsupported(fmt.Sprintf("CSI ?%d%s", p, modeFinal(set)))
	}
}

// OscDispatch dispatches a terminated OSC body (§4.2).
func (t *Terminal) OscDispatch(body string) {
	idx := strings.IndexByte(body, ';')
	var code, rest string
	if idx < 0 {
		code, rest = body, ""
	} else {
		code, rest = body[:idx], body[idx+1:]
	}

	switch code {
	case "0", "2":
		title := rest
		t.queueDeferred(func() { t.titleP.SetTitle(title) })
	case "1":
		// icon name: accepted, ignored
	case "4":
		t.handleOSC4(rest)
	default:
		t.reportUnsupported("OSC " + code)
	}
}

// handleOSC4 installs one or more palette entries from "index;spec[;...]"
// pairs (§4.2).
func (t *Terminal) handleOSC4(rest string) {
	fields := strings.Split(rest, ";")
	for i := 0; i+1 < len(fields); i += 2 {
		idx, err := strconv.Atoi(fields[i])
		if err != nil || idx < 0 || idx > 255 {
			t.reportUnsupported("OSC 4;" + fields[i])
			continue
		}
		rgba, ok := parseColorSpec(fields[i+1])
		if !ok {
			t.reportUnsupported("OSC 4 spec " + fields[i+1])
			continue
		}
		t.palette.Set(uint8(idx), rgba)
	}
}

// hexChannelTo8 normalizes an N-digit hex channel to 8 bits, shifting left
// for narrower fields and right for wider ones (§4.2 palette spec parsing).
func hexChannelTo8(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 32)
	bits := len(s) * 4
	switch {
	case bits < 8:
		return uint8(v << uint(8-bits))
	case bits == 8:
		return uint8(v)
	default:
		return uint8(v >> uint(bits-8))
	}
}

// parseColorSpec parses an OSC 4 color spec: "#rgb"/"#rrggbb"/"#rrrgggbbb"/
// "#rrrrggggbbbb", or "rgb:R/G/B" with equal-width hex components (§4.2).
func parseColorSpec(spec string) (color.RGBA, bool) {
	if strings.HasPrefix(spec, "#") {
		hex := spec[1:]
		if len(hex) == 0 || len(hex)%3 != 0 {
			return color.RGBA{}, false
		}
		w := len(hex) / 3
		r := hexChannelTo8(hex[0*w : 1*w])
		g := hexChannelTo8(hex[1*w : 2*w])
		b := hexChannelTo8(hex[2*w : 3*w])
		return color.RGBA{R: r, G: g, B: b, A: 255}, true
	}
	if strings.HasPrefix(spec, "rgb:") {
		parts := strings.Split(spec[4:], "/")
		if len(parts) != 3 {
			return color.RGBA{}, false
		}
		w := len(parts[0])
		if w == 0 || len(parts[1]) != w || len(parts[2]) != w {
			return color.RGBA{}, false
		}
		r := hexChannelTo8(parts[0])
		g := hexChannelTo8(parts[1])
		b := hexChannelTo8(parts[2])
		return color.RGBA{R: r, G: g, B: b, A: 255}, true
	}
	return color.RGBA{}, false
}

// DcsDispatch discards DCS content; the core only needs to know where it
// ends (§1 Non-goals).
func (t *Terminal) DcsDispatch(body string) {}

// Incomplete reports a dropped mid-sequence accumulator (§7): logged
// silently, never escalated.
func (t *Terminal) Incomplete(partial string) {
	t.reportIncomplete(partial)
}
