package vtcore

// putChar places r at the caret, honoring wrap-around and insert mode, then
// advances the caret (§3, §4.1's "deliver to the line manipulator"). Wide
// runes occupy two columns and leave a spacer cell behind them. The wrap
// state rides on each Line's EOL tag instead of a separate flat
// wrapped-bool array, so a later resize or scrollback push can't drift out
// of sync with the grid it describes.
func (t *Terminal) putChar(r rune) {
	buf := t.activeBuffer()
	width := buf.Cols()

	w := runeWidth(r)
	if w <= 0 {
		w = 1
	}

	if t.cursor.Col+w > width {
		if t.wrapAroundMode {
			t.wrapLine()
		} else {
			t.cursor.Col = width - w
			if t.cursor.Col < 0 {
				t.cursor.Col = 0
			}
		}
	}

	if t.insertMode {
		buf.InsertBlanks(t.cursor.Row, t.cursor.Col, w)
	}

	cell := t.template.Cell
	cell.Char = r
	if w == 2 {
		cell.SetFlag(CellFlagWideChar)
	}
	buf.SetCell(t.cursor.Row, t.cursor.Col, cell)

	if w == 2 && t.cursor.Col+1 < width {
		spacer := NewCell()
		spacer.SetFlag(CellFlagWideCharSpacer)
		buf.SetCell(t.cursor.Row, t.cursor.Col+1, spacer)
	}

	t.charObserver.Observe(r)
	t.cursor.Col += w
}

// wrapLine tags the current line CONTINUE and advances to the next row,
// scrolling the region if already at its bottom (§3's EOLType.Continue).
func (t *Terminal) wrapLine() {
	buf := t.activeBuffer()
	if l := buf.Line(t.cursor.Row); l != nil {
		l.EOL = EOLContinue
	}
	t.cursor.Col = 0
	t.lineFeed()
}

// lineFeed advances the caret to the next row, scrolling the scrolling
// region when already at its bottom. Does not touch column or EOL tagging;
// callers that represent a genuine LF/VT control use executeLineFeed
// instead, which tags the outgoing line first.
func (t *Terminal) lineFeed() {
	buf := t.activeBuffer()
	if t.cursor.Row == t.scrollBottom {
		buf.ScrollUp(t.scrollTop, t.scrollBottom+1, 1)
		return
	}
	if t.cursor.Row < buf.Rows()-1 {
		t.cursor.Row++
	}
}

// executeLineFeed handles a C0 LF/VT or ESC E (NextLine): tag the line being
// left with its terminal EOL kind, then advance (§4.2).
func (t *Terminal) executeLineFeed() {
	buf := t.activeBuffer()
	if l := buf.Line(t.cursor.Row); l != nil {
		if t.pendingCR {
			l.EOL = EOLCRLF
		} else {
			l.EOL = EOLLF
		}
	}
	t.pendingCR = false
	t.lineFeed()
}

// carriageReturn moves the caret to column 0 and latches pendingCR so a
// following LF tags the line CRLF instead of LF (§4.2).
func (t *Terminal) carriageReturn() {
	t.cursor.Col = 0
	t.pendingCR = true
}

// reverseIndex moves the caret up, scrolling the region down when already
// at its top (ESC M).
func (t *Terminal) reverseIndex() {
	buf := t.activeBuffer()
	if t.cursor.Row == t.scrollTop {
		buf.ScrollDown(t.scrollTop, t.scrollBottom+1, 1)
		return
	}
	if t.cursor.Row > 0 {
		t.cursor.Row--
	}
}

// backspace decrements the caret column, or (at column 0) steps back onto
// the previous line's last display column when that line wrapped here
// (§3/§4.2: EOLType.Continue stitches the two rows back together).
func (t *Terminal) backspace() {
	if t.cursor.Col > 0 {
		t.cursor.Col--
		return
	}
	if t.cursor.Row == 0 {
		return
	}
	buf := t.activeBuffer()
	prev := buf.Line(t.cursor.Row - 1)
	if prev == nil || prev.EOL != EOLContinue {
		return
	}
	t.cursor.Row--
	t.cursor.Col = prev.lastContentCol()
	if t.cursor.Col < 0 {
		t.cursor.Col = 0
	}
	buf.MarkDirty(t.cursor.Row, t.cursor.Col)
}

// horizontalTab advances the caret to the next tab stop (§4.2, §8 tab-stop
// law).
func (t *Terminal) horizontalTab() {
	ts := t.activeBuffer().TabStops()
	t.cursor.Col = ts.Next(t.cursor.Col)
}

// setCursorColumn clamps and sets the caret column. Column addressing is
// always absolute across the full width; origin mode only affects rows.
func (t *Terminal) setCursorColumn(col int) {
	buf := t.activeBuffer()
	if col < 0 {
		col = 0
	}
	if col > buf.Cols()-1 {
		col = buf.Cols() - 1
	}
	t.cursor.Col = col
}

// setCursorRow sets the caret row. row is region-relative: origin mode adds
// scrollTop and clamps to [scrollTop, scrollBottom] instead of the full
// buffer height (§8's origin-mode property).
func (t *Terminal) setCursorRow(row int) {
	buf := t.activeBuffer()
	top, minRow, maxRow := 0, 0, buf.Rows()-1
	if t.originMode {
		top, minRow, maxRow = t.scrollTop, t.scrollTop, t.scrollBottom
	}
	r := row + top
	if r < minRow {
		r = minRow
	}
	if r > maxRow {
		r = maxRow
	}
	t.cursor.Row = r
}

// setCursorPosition sets both row (region-relative) and column (absolute).
func (t *Terminal) setCursorPosition(row, col int) {
	t.setCursorRow(row)
	t.setCursorColumn(col)
}

// setCursorRowRelative moves the caret by delta rows, clamped to the
// scrolling region when origin mode is active, otherwise the full buffer.
func (t *Terminal) setCursorRowRelative(delta int) {
	buf := t.activeBuffer()
	minRow, maxRow := 0, buf.Rows()-1
	if t.originMode {
		minRow, maxRow = t.scrollTop, t.scrollBottom
	}
	r := t.cursor.Row + delta
	if r < minRow {
		r = minRow
	}
	if r > maxRow {
		r = maxRow
	}
	t.cursor.Row = r
}

// saveCursor snapshots the caret and graphic-rendition state into the
// saved-cursor slot for the currently active buffer (ESC 7, DECSET 1048).
// §3 requires one saved-cursor slot per buffer so a save made in the
// alternate screen can't leak into the main screen's restore.
func (t *Terminal) saveCursor() {
	sc := &SavedCursor{
		Row:        t.cursor.Row,
		Col:        t.cursor.Col,
		Template:   t.template,
		OriginMode: t.originMode,
		Charset:    t.charsetIndex,
	}
	if t.altActive {
		t.savedAlt = sc
	} else {
		t.savedMain = sc
	}
}

// restoreCursor restores the caret and graphic-rendition state from the
// saved-cursor slot for the currently active buffer (ESC 8, DECSET 1048).
// A no-op if nothing was ever saved for this buffer.
func (t *Terminal) restoreCursor() {
	var sc *SavedCursor
	if t.altActive {
		sc = t.savedAlt
	} else {
		sc = t.savedMain
	}
	if sc == nil {
		return
	}
	t.cursor.Row, t.cursor.Col = sc.Row, sc.Col
	t.template = sc.Template
	t.originMode = sc.OriginMode
	t.charsetIndex = sc.Charset
}

// switchAltBuffer toggles which persistent buffer is active. Since main and
// alt are independent, never-overwritten Buffer instances, leaving one
// active and returning to it later already reproduces its pre-switch
// content without any explicit snapshot/restore step. clearOnExit clears
// the alternate buffer before leaving it (DECSET 1047's documented extra
// behavior over plain 47).
func (t *Terminal) switchAltBuffer(enable, clearOnExit bool) {
	if enable == t.altActive {
		return
	}
	if !enable && clearOnExit {
		t.alt.ClearAll()
	}
	t.altActive = enable
}
