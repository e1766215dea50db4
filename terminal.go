package vtcore

import (
	"image/color"
	"sync"
)

// Default grid dimensions for a newly constructed Terminal.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// TerminalMode selects whether the numeric keypad encodes in normal or
// application mode (DECKPAM `ESC =` / DECKPNM `ESC >`, §3). Distinct from
// CursorKeyMode: DECCKM (`CSI ?1h`/`l`) and the keypad mode are independent
// per-terminal modes that merely share the same two-state shape.
type TerminalMode int

const (
	TerminalModeNormal TerminalMode = iota
	TerminalModeApplication
)

// LineFeedRule selects how CR and LF/VT interact (§4.2, §6 TerminalSettings).
type LineFeedRule int

const (
	LineFeedNormal LineFeedRule = iota
	LineFeedLFOnly
	LineFeedCROnly
)

// Terminal is the sole mutator of the grid, cursor, tab stops, parser
// accumulator and mode flags (§5). The parser and dispatcher run
// single-threaded on the terminal's input path; mu only needs to guard
// against mouse/focus events and Option application racing a concurrent
// Write.
type Terminal struct {
	mu sync.RWMutex

	main      *Buffer
	alt       *Buffer
	altActive bool

	cursor         *Cursor
	savedMain      *SavedCursor
	savedAlt       *SavedCursor
	savedAltBuffer bool // DECSET ?s/?r persisted flag for params 47/1047
	cursorVisible  bool
	pendingCR      bool

	template     CellTemplate
	charsetIndex CharsetIndex

	scrollTop    int
	scrollBottom int

	palette          *Palette
	appModeBackColor color.Color

	insertMode     bool
	wrapAroundMode bool
	originMode     bool
	reverseVideo   bool
	cursorKeyMode  CursorKeyMode
	terminalMode   TerminalMode
	bracketedPaste bool
	focusReporting bool
	localEcho      bool

	mouse MouseTracker

	lineFeedRule     LineFeedRule
	modifyCursorKeys int

	parser *Parser

	response     ResponseProvider
	bell         BellProvider
	titleP       TitleProvider
	logger       Logger
	charObserver CharacterObserver

	deferred []func()
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the initial grid dimensions (default 80x24).
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		t.main.Resize(rows, cols)
		t.alt.Resize(rows, cols)
		t.scrollTop = 0
		t.scrollBottom = rows - 1
	}
}

// WithTransmit sets the collaborator replies are written to (TransmitDirect, §6).
func WithTransmit(w ResponseProvider) Option {
	return func(t *Terminal) { t.response = w }
}

// WithBell sets the bell collaborator.
func WithBell(b BellProvider) Option {
	return func(t *Terminal) { t.bell = b }
}

// WithTitleProvider sets the window-title collaborator.
func WithTitleProvider(p TitleProvider) Option {
	return func(t *Terminal) { t.titleP = p }
}

// WithLogger sets the LogService collaborator.
func WithLogger(l Logger) Option {
	return func(t *Terminal) { t.logger = l }
}

// WithCharacterObserver sets the ModalCharacterTask collaborator.
func WithCharacterObserver(o CharacterObserver) Option {
	return func(t *Terminal) { t.charObserver = o }
}

// WithScrollback installs scrollback storage for the primary buffer (§3:
// scrollback is disabled while the alternate buffer is active, so only the
// main buffer ever receives one).
func WithScrollback(p ScrollbackProvider) Option {
	return func(t *Terminal) { t.main.SetScrollbackProvider(p) }
}

// WithModifyCursorKeys sets the xterm modifyCursorKeys preference (§6:
// default 2, must be positive).
func WithModifyCursorKeys(n int) Option {
	return func(t *Terminal) {
		if n > 0 {
			t.modifyCursorKeys = n
		}
	}
}

// WithLineFeedRule sets the CR/LF interaction rule (§6 TerminalSettings).
func WithLineFeedRule(r LineFeedRule) Option {
	return func(t *Terminal) { t.lineFeedRule = r }
}

// New constructs a Terminal at the default size with Noop collaborators,
// then applies opts.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		main:             NewBuffer(DefaultRows, DefaultCols),
		alt:              NewBuffer(DefaultRows, DefaultCols),
		cursor:           NewCursor(),
		cursorVisible:    true,
		template:         NewCellTemplate(),
		palette:          NewPalette(),
		wrapAroundMode:   true,
		cursorKeyMode:    CursorKeyNormal,
		lineFeedRule:     LineFeedNormal,
		modifyCursorKeys: 2,
		parser:           NewParser(),
		response:         NoopResponse{},
		bell:             NoopBell{},
		titleP:           NoopTitle{},
		logger:           NoopLogger{},
		charObserver:     NoopCharacterObserver{},
	}
	t.scrollTop = 0
	t.scrollBottom = t.main.Rows() - 1

	for _, opt := range opts {
		opt(t)
	}
	return t
}

// activeBuffer returns the currently visible buffer (main or alt).
func (t *Terminal) activeBuffer() *Buffer {
	if t.altActive {
		return t.alt
	}
	return t.main
}

// ActiveBuffer exposes the currently visible buffer for inspection
// (rendering, testing) without taking the write path.
func (t *Terminal) ActiveBuffer() *Buffer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.activeBuffer()
}

// CursorPosition returns the current 0-based caret position.
func (t *Terminal) CursorPosition() (row, col int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Row, t.cursor.Col
}

// Palette returns the terminal's mutable 256-color table.
func (t *Terminal) Palette() *Palette {
	return t.palette
}

// KeyEncoder returns a key encoder reflecting this terminal's
// modifyCursorKeys preference (§4.7). The cursor-key mode is not captured;
// pass CursorKeyMode() to EncodeCursorKey.
func (t *Terminal) KeyEncoder() KeyEncoder {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return KeyEncoder{ModifyCursorKeys: t.modifyCursorKeys}
}

// CursorKeyMode returns the current DECCKM state.
func (t *Terminal) CursorKeyMode() CursorKeyMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursorKeyMode
}

// TerminalMode returns the current DECKPAM/DECKPNM keypad state.
func (t *Terminal) TerminalMode() TerminalMode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.terminalMode
}

// HandleMouseEvent feeds a mouse event into the tracking state machine and
// writes any resulting report to the transmit collaborator (§4.5). State
// and protocol are read once at entry by MouseTracker.Handle, per §5.
func (t *Terminal) HandleMouseEvent(ev MouseEvent) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	reply, consumed := t.mouse.Handle(ev)
	if reply != nil {
		t.respond(string(reply))
	}
	return consumed
}

// SetFocus reports a UI focus change (§4.6).
func (t *Terminal) SetFocus(gained bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if b := FocusReport(t.focusReporting, gained); b != nil {
		t.respond(string(b))
	}
}

// PasteLeader and PasteTrailer return the bracketed-paste envelope bytes
// currently in effect (§4.6); callers wrap pasted text with these
// themselves, since the core never mutates pasted bytes.
func (t *Terminal) PasteLeader() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return BracketedPasteLeader(t.bracketedPaste)
}

func (t *Terminal) PasteTrailer() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return BracketedPasteTrailer(t.bracketedPaste)
}

// WriteString feeds decoded characters from the peer into the parser and
// dispatcher (§6: the core consumes an already-decoded Unicode scalar
// stream). Deferred settings mutations queued during dispatch (§5, §9) are
// flushed once the whole string has been processed.
func (t *Terminal) WriteString(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range s {
		t.parser.Feed(r, t)
	}
	t.flushDeferred()
}

// Write implements io.Writer, treating p as UTF-8 text (§6).
func (t *Terminal) Write(p []byte) (int, error) {
	t.WriteString(string(p))
	return len(p), nil
}

func (t *Terminal) queueDeferred(fn func()) {
	t.deferred = append(t.deferred, fn)
}

func (t *Terminal) flushDeferred() {
	pending := t.deferred
	t.deferred = nil
	for _, fn := range pending {
		fn()
	}
}

func (t *Terminal) respond(s string) {
	if t.response != nil {
		t.response.Write([]byte(s))
	}
}

func (t *Terminal) reportUnknown(seq string) {
	t.logger.Warn((&UnknownEscapeSequenceError{Sequence: seq}).Error())
}

func (t *Terminal) reportUnsupported(seq string) {
	t.logger.Debug((&UnsupportedError{Sequence: seq}).Error())
	t.reportUnknown(seq)
}

func (t *Terminal) reportIncomplete(partial string) {
	t.logger.Debug((&IncompleteEscapeSequenceError{Partial: partial}).Error())
}

// ResetInternal reinitializes the parser and mode flags but preserves the
// grid (§3 Lifecycle).
func (t *Terminal) ResetInternal() {
	t.parser.Reset()
	t.insertMode = false
	t.wrapAroundMode = true
	t.originMode = false
	t.reverseVideo = false
	t.cursorKeyMode = CursorKeyNormal
	t.terminalMode = TerminalModeNormal
	t.bracketedPaste = false
	t.focusReporting = false
	t.mouse.State = MouseOff
	t.mouse.Protocol = MouseProtocolNormal
	t.cursorVisible = true
	t.pendingCR = false
	t.template = NewCellTemplate()
	t.scrollTop = 0
	t.scrollBottom = t.activeBuffer().Rows() - 1
}

// FullReset additionally reinitializes tab stops and clears both buffers,
// deferring to the grid's own reset (§3 Lifecycle).
func (t *Terminal) FullReset() {
	t.ResetInternal()
	t.main.TabStops().ResetDefault()
	t.alt.TabStops().ResetDefault()
	t.main.ClearAll()
	t.alt.ClearAll()
	t.cursor.Row, t.cursor.Col = 0, 0
	t.savedMain = nil
	t.savedAlt = nil
	t.altActive = false
}
