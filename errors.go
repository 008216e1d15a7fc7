package imapwire

import (
	"errors"
	"fmt"
)

// Sentinel errors. ErrIncomplete and ErrMalformed are the two root
// categories; every definite grammar violation wraps ErrMalformed so that
// callers can classify with a single errors.Is check.
var (
	// ErrIncomplete is returned when the available bytes form a valid prefix
	// but more input is required before the parse can be decided. The caller
	// should buffer more data and retry the same parser at the same offset.
	ErrIncomplete = errors.New("need more input")

	// ErrMalformed is the category for definite grammar violations. Waiting
	// for more input cannot recover from it.
	ErrMalformed = errors.New("malformed input")

	// ErrExpectedDigit is returned when a decimal digit was required but a
	// different byte was found.
	ErrExpectedDigit = fmt.Errorf("%w: expected decimal digit", ErrMalformed)
	// ErrNumberOverflow is returned when a digit run is syntactically valid
	// but exceeds the target integer width.
	ErrNumberOverflow = fmt.Errorf("%w: number exceeds integer width", ErrMalformed)
	// ErrExpectedQuote is returned when a DQUOTE delimiter was required.
	ErrExpectedQuote = fmt.Errorf("%w: expected DQUOTE", ErrMalformed)
	// ErrExpectedCRLF is returned when the CRLF terminating a literal header
	// is missing or misspelled.
	ErrExpectedCRLF = fmt.Errorf("%w: expected CRLF after literal count", ErrMalformed)
	// ErrUnexpectedByte is returned when no grammar alternative accepts the
	// byte at the current position.
	ErrUnexpectedByte = fmt.Errorf("%w: unexpected byte", ErrMalformed)
	// ErrNulByte is returned when a literal payload contains NUL, the one
	// octet CHAR8 excludes.
	ErrNulByte = fmt.Errorf("%w: NUL byte in literal payload", ErrMalformed)
	// ErrInvalidUTF8 is returned by the UTF-8 variants when the byte-level
	// grammar accepted a span that is not valid UTF-8.
	ErrInvalidUTF8 = fmt.Errorf("%w: invalid UTF-8", ErrMalformed)
	// ErrEmptyAtom is returned when an atom matched zero characters.
	ErrEmptyAtom = fmt.Errorf("%w: empty atom", ErrMalformed)
)

// SyntaxError reports a definite grammar violation. Offset is the byte
// position relative to the input slice the failing parser was given.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// IncompleteError reports a known byte deficit, such as a literal whose
// declared count exceeds the buffered payload. It unwraps to ErrIncomplete.
type IncompleteError struct {
	// Needed is the minimum number of additional bytes required.
	Needed int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("need %d more bytes", e.Needed)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// offsetErr rebases a SyntaxError produced by a sub-parser that was handed a
// suffix of the original input.
func offsetErr(err error, by int) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset + by, Err: se.Err}
	}
	return err
}
