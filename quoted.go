package imapwire

import "unicode/utf8"

// Quoted parses DQUOTE *QUOTED-CHAR DQUOTE and returns the raw span between
// the delimiters as a sub-slice of in. Backslash escape markers are kept
// as-is; decoding them is the caller's concern. The scan is permissive about
// which byte follows a backslash (RFC 3501 only allows quoted-specials
// there, but this layer does not enforce it).
func Quoted(in []byte) ([]byte, []byte, error) {
	if len(in) == 0 {
		return nil, nil, ErrIncomplete
	}
	if in[0] != '"' {
		return nil, nil, &SyntaxError{Offset: 0, Err: ErrExpectedQuote}
	}
	escaped := false
	for i := 1; i < len(in); i++ {
		switch {
		case escaped:
			escaped = false
		case in[i] == '\\':
			escaped = true
		case in[i] == '"':
			return in[1:i], in[i+1:], nil
		}
	}
	// No closing quote in the buffered bytes yet. This includes a dangling
	// backslash at the end of the buffer.
	return nil, nil, ErrIncomplete
}

// QuotedUTF8 parses a quoted string whose span must be valid UTF-8.
func QuotedUTF8(in []byte) (string, []byte, error) {
	raw, rest, err := Quoted(in)
	if err != nil {
		return "", nil, err
	}
	if !utf8.Valid(raw) {
		return "", nil, &SyntaxError{Offset: 1, Err: ErrInvalidUTF8}
	}
	return string(raw), rest, nil
}
