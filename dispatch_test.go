package vtcore

import "testing"

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...any) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Debug(msg string, args ...any) {}

func TestDispatchPlainTextRoundTripWithWrap(t *testing.T) {
	term := New(WithSize(3, 5))
	term.WriteString("helloworld")

	if got := term.ActiveBuffer().LineContent(0); got != "hello" {
		t.Errorf("expected %q on row 0, got %q", "hello", got)
	}
	if got := term.ActiveBuffer().LineContent(1); got != "world" {
		t.Errorf("expected wrapped %q on row 1, got %q", "world", got)
	}
	row, col := term.CursorPosition()
	if row != 1 || col != 5 {
		t.Errorf("expected cursor at (1,5) after wrapping into the second row, got (%d,%d)", row, col)
	}
}

func TestDispatchModeTogglesAreIdempotent(t *testing.T) {
	term := New()

	term.WriteString("\x1b[?7l\x1b[?7l")
	if term.wrapAroundMode {
		t.Error("expected wraparound mode off after repeated CSI ?7l")
	}

	term.WriteString("\x1b[?7h\x1b[?7h")
	if !term.wrapAroundMode {
		t.Error("expected wraparound mode on after repeated CSI ?7h")
	}
}

func TestDispatchTabStopLaw(t *testing.T) {
	term := New(WithSize(5, 40))
	term.WriteString("\x1b[10G") // CHA to column 10 (1-based)
	term.WriteString("\t")

	_, col := term.CursorPosition()
	if col != 16 {
		t.Errorf("expected tab from column 9 to land on the next default stop (16), got %d", col)
	}
}

func TestDispatchCursorClampingWithOriginModeOffset(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[5;20r") // DECSTBM: region rows 5..20 (1-based)
	term.WriteString("\x1b[?6h")   // DECOM on

	term.WriteString("\x1b[100;1H") // CUP way past the region
	row, col := term.CursorPosition()
	if row != 19 || col != 0 {
		t.Errorf("expected origin-mode clamp to the region bottom (row 19), got (%d,%d)", row, col)
	}
}

func TestDispatchCursorClampingWithoutOriginMode(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("\x1b[5;20r")

	term.WriteString("\x1b[100;1H")
	row, _ := term.CursorPosition()
	if row != 23 {
		t.Errorf("expected clamp to the full buffer height (row 23) without origin mode, got %d", row)
	}
}

func TestDispatchAlternateBufferRoundTrip(t *testing.T) {
	term := New(WithSize(24, 80))
	term.WriteString("primary content")
	mainRow, mainCol := term.CursorPosition()

	term.WriteString("\x1b[?1049h")
	if !term.altActive {
		t.Fatal("expected alt buffer active after CSI ?1049h")
	}
	term.WriteString("\x1b[10;10H") // move cursor around in the alt screen

	term.WriteString("\x1b[?1049l")
	if term.altActive {
		t.Fatal("expected main buffer active after CSI ?1049l")
	}
	row, col := term.CursorPosition()
	if row != mainRow || col != mainCol {
		t.Errorf("expected cursor restored to (%d,%d), got (%d,%d)", mainRow, mainCol, row, col)
	}
	if term.ActiveBuffer().Cell(0, 0).Char != 'p' {
		t.Error("expected primary screen content preserved across the alt-buffer round trip")
	}
}

func TestDispatchSGRResetLaw(t *testing.T) {
	term := New()
	term.WriteString("\x1b[31mR\x1b[0mG")

	red := term.ActiveBuffer().Cell(0, 0)
	idx, ok := red.Fg.(IndexedColor)
	if !ok || idx.Index != 1 {
		t.Errorf("expected 'R' written with IndexedColor{1}, got %#v", red.Fg)
	}

	green := term.ActiveBuffer().Cell(0, 1)
	if _, ok := green.Fg.(DefaultColor); !ok {
		t.Errorf("expected 'G' written with default color after SGR reset, got %#v", green.Fg)
	}
}

func TestDispatchTruecolorSGR(t *testing.T) {
	term := New()
	term.WriteString("\x1b[38;2;10;20;30mX")

	cell := term.ActiveBuffer().Cell(0, 0)
	rgba := ResolveColor(term.Palette(), cell.Fg, true)
	if rgba.R != 10 || rgba.G != 20 || rgba.B != 30 {
		t.Errorf("expected RGB(10,20,30), got %#v", rgba)
	}
}

func TestDispatchDeviceStatusReportCursorPosition(t *testing.T) {
	var buf fakeResponseWriter
	term := New(WithTransmit(&buf))

	term.WriteString("\x1b[5;5H\x1b[6n")

	want := "\x1b[5;5R"
	if string(buf.written) != want {
		t.Errorf("expected %q, got %q", want, string(buf.written))
	}
}

func TestDispatchOSC4InstallsPaletteEntry(t *testing.T) {
	term := New()
	term.WriteString("\x1b]4;1;#ff0000\x07")

	got := term.Palette().Get(1)
	if got.R != 0xff || got.G != 0 || got.B != 0 {
		t.Errorf("expected palette index 1 to be red, got %#v", got)
	}
}

func TestDispatchScrollingRegionConfinesInsertLines(t *testing.T) {
	term := New(WithSize(10, 10))
	term.WriteString("\x1b[3;7r") // region rows 3..7 (1-based) => 0-based 2..6
	term.WriteString("\x1b[1;1H") // cursor outside the region

	term.WriteString("\x1b[2L") // insert lines: should be a no-op, cursor not in region
	if term.ActiveBuffer().Cell(0, 0).Char != ' ' {
		t.Error("expected insert-lines to be confined to the scrolling region")
	}
}

func TestDispatchUnknownCSILogsWithoutPanicking(t *testing.T) {
	term := New()
	term.WriteString("\x1b[5y") // no such final byte in the dispatch table
}

type fakeResponseWriter struct {
	written []byte
}

func (f *fakeResponseWriter) Write(p []byte) (int, error) {
	f.written = append(f.written, p...)
	return len(p), nil
}

func TestEscKeypadModeDoesNotAffectCursorKeyMode(t *testing.T) {
	term := New()

	term.WriteString("\x1b=")
	if term.TerminalMode() != TerminalModeApplication {
		t.Error("expected ESC = to set application keypad mode")
	}
	if term.CursorKeyMode() != CursorKeyNormal {
		t.Error("expected ESC = to leave DECCKM untouched")
	}

	term.WriteString("\x1b>")
	if term.TerminalMode() != TerminalModeNormal {
		t.Error("expected ESC > to clear application keypad mode")
	}
}

func TestDECCKMStillControlsCursorKeyModeIndependently(t *testing.T) {
	term := New()

	term.WriteString("\x1b[?1h")
	if term.CursorKeyMode() != CursorKeyApplication {
		t.Error("expected CSI ?1h to set DECCKM")
	}
	if term.TerminalMode() != TerminalModeNormal {
		t.Error("expected CSI ?1h to leave the keypad mode untouched")
	}
}

func TestMalformedCSIParameterReportsDiagnostic(t *testing.T) {
	logger := &recordingLogger{}
	term := New(WithLogger(logger))

	term.WriteString("\x1b[3;:;5H")

	if len(logger.warnings) == 0 {
		t.Error("expected a diagnostic for the malformed parameter \":\"")
	}
}

func TestWellFormedZeroParameterReportsNoDiagnostic(t *testing.T) {
	logger := &recordingLogger{}
	term := New(WithLogger(logger))

	term.WriteString("\x1b[0;0H")

	if len(logger.warnings) != 0 {
		t.Errorf("expected no diagnostic for an explicit 0 parameter, got %v", logger.warnings)
	}
}

func TestEraseCharsFillsWithCurrentDecoration(t *testing.T) {
	term := New()
	term.WriteString("\x1b[41mXXX") // red background, three chars
	term.WriteString("\x1b[1;1H")   // back to start
	term.WriteString("\x1b[32m")    // change fg only, keep bg
	term.WriteString("\x1b[2X")     // erase 2 chars at caret

	cell := term.ActiveBuffer().Cell(0, 0)
	if cell.Char != ' ' {
		t.Errorf("expected erased cell to hold a space, got %q", cell.Char)
	}
	bg, ok := cell.Bg.(IndexedColor)
	if !ok || bg.Index != 1 {
		t.Errorf("expected erased cell to keep the current background decoration, got %#v", cell.Bg)
	}
	fg, ok := cell.Fg.(IndexedColor)
	if !ok || fg.Index != 2 {
		t.Errorf("expected erased cell to carry the current foreground decoration, got %#v", cell.Fg)
	}

	untouched := term.ActiveBuffer().Cell(0, 2)
	if untouched.Char != 'X' {
		t.Errorf("expected the third column to be untouched by a 2-char erase, got %q", untouched.Char)
	}
}
