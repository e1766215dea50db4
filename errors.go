package vtcore

import "fmt"

// UnknownEscapeSequenceError reports a terminated sequence that could not be
// dispatched, or an integer parameter that failed to parse (§7). The parser
// state is always forced back to idle alongside this diagnostic so a failed
// dispatch never leaves the terminal stuck mid-sequence.
type UnknownEscapeSequenceError struct {
	Sequence string
}

func (e *UnknownEscapeSequenceError) Error() string {
	return fmt.Sprintf("vtcore: unknown escape sequence %q", e.Sequence)
}

// IncompleteEscapeSequenceError reports a second ESC arriving mid-sequence
// (§7); the partial accumulator is dropped and the parser resumes at idle.
type IncompleteEscapeSequenceError struct {
	Partial string
}

func (e *IncompleteEscapeSequenceError) Error() string {
	return fmt.Sprintf("vtcore: incomplete escape sequence %q", e.Partial)
}

// UnsupportedError reports a recognized final byte whose mode or parameter
// is not implemented (§7). For complete sequences this is escalated to an
// UnknownEscapeSequenceError for user visibility; this type exists so the
// dispatcher can distinguish "didn't understand" from "understood but
// declined" internally.
type UnsupportedError struct {
	Sequence string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("vtcore: unsupported sequence %q", e.Sequence)
}
