package imapwire

import "unicode/utf8"

// scanClass returns the length of the maximal prefix of in whose bytes all
// satisfy class.
func scanClass(in []byte, class func(byte) bool) int {
	i := 0
	for i < len(in) && class(in[i]) {
		i++
	}
	return i
}

// String parses an IMAP string: quoted or literal. The first byte
// disambiguates the two forms, so no backtracking is needed: DQUOTE starts
// a quoted string and "{" a literal.
func String(in []byte) ([]byte, []byte, error) {
	if len(in) == 0 {
		return nil, nil, ErrIncomplete
	}
	switch in[0] {
	case '"':
		return Quoted(in)
	case '{':
		return Literal(in)
	default:
		return nil, nil, &SyntaxError{Offset: 0, Err: ErrUnexpectedByte}
	}
}

// StringUTF8 parses a string whose bytes must be valid UTF-8. Literals are
// binary-safe at the grammar level, so this check is not redundant for them.
func StringUTF8(in []byte) (string, []byte, error) {
	raw, rest, err := String(in)
	if err != nil {
		return "", nil, err
	}
	if !utf8.Valid(raw) {
		return "", nil, &SyntaxError{Offset: 0, Err: ErrInvalidUTF8}
	}
	return string(raw), rest, nil
}

// Astring parses 1*ASTRING-CHAR / string. The bare-token branch is tried
// first; a zero-length run falls back to the quoted/literal union. A token
// run that touches the end of the buffer is incomplete, since more token
// bytes may still arrive.
func Astring(in []byte) ([]byte, []byte, error) {
	n := scanClass(in, IsAstringChar)
	if n == 0 {
		return String(in)
	}
	if n == len(in) {
		return nil, nil, ErrIncomplete
	}
	return in[:n], in[n:], nil
}

// AstringUTF8 parses an astring whose bytes must be valid UTF-8.
func AstringUTF8(in []byte) (string, []byte, error) {
	raw, rest, err := Astring(in)
	if err != nil {
		return "", nil, err
	}
	if !utf8.Valid(raw) {
		return "", nil, &SyntaxError{Offset: 0, Err: ErrInvalidUTF8}
	}
	return string(raw), rest, nil
}

// Atom parses 1*ATOM-CHAR. A zero-length match is malformed: atoms require
// at least one character, so empty input is a definite failure rather than
// an incomplete one.
func Atom(in []byte) (string, []byte, error) {
	n := scanClass(in, IsAtomChar)
	if n == 0 {
		return "", nil, &SyntaxError{Offset: 0, Err: ErrEmptyAtom}
	}
	if n == len(in) {
		return "", nil, ErrIncomplete
	}
	// Atom chars are 7-bit, so the span is trivially valid UTF-8.
	return string(in[:n]), in[n:], nil
}

// Text parses *TEXT-CHAR greedily over the available bytes. A zero-length
// result is valid. Unlike the token parsers, Text never reports incomplete:
// free text runs to the end of a line, and the caller invokes it once the
// line is fully buffered.
func Text(in []byte) (string, []byte, error) {
	n := scanClass(in, IsTextChar)
	return string(in[:n]), in[n:], nil
}
