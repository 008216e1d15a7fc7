package imapwire

import "bytes"

// Literal parses "{" number "}" CRLF followed by exactly number raw bytes
// and returns the payload as a sub-slice of in. The payload is taken
// verbatim and never token-scanned: any octet except NUL is legal inside
// it, including CR, LF, quotes, parentheses, and non-ASCII.
//
// When the header has parsed but fewer than number payload bytes are
// buffered, the error is an *IncompleteError carrying the exact deficit.
func Literal(in []byte) ([]byte, []byte, error) {
	if len(in) == 0 {
		return nil, nil, ErrIncomplete
	}
	if in[0] != '{' {
		return nil, nil, &SyntaxError{Offset: 0, Err: ErrUnexpectedByte}
	}
	count, rest, err := Number(in[1:])
	if err != nil {
		return nil, nil, offsetErr(err, 1)
	}
	if rest[0] != '}' {
		return nil, nil, &SyntaxError{Offset: len(in) - len(rest), Err: ErrUnexpectedByte}
	}
	rest = rest[1:]
	if len(rest) == 0 {
		return nil, nil, ErrIncomplete
	}
	if rest[0] != '\r' {
		return nil, nil, &SyntaxError{Offset: len(in) - len(rest), Err: ErrExpectedCRLF}
	}
	if len(rest) == 1 {
		return nil, nil, ErrIncomplete
	}
	if rest[1] != '\n' {
		return nil, nil, &SyntaxError{Offset: len(in) - len(rest) + 1, Err: ErrExpectedCRLF}
	}
	rest = rest[2:]
	n := int(count)
	if len(rest) < n {
		return nil, nil, &IncompleteError{Needed: n - len(rest)}
	}
	payload := rest[:n]
	if i := bytes.IndexByte(payload, 0x00); i >= 0 {
		return nil, nil, &SyntaxError{Offset: len(in) - len(rest) + i, Err: ErrNulByte}
	}
	return payload, rest[n:], nil
}
