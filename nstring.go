package imapwire

import "errors"

// Nullable wraps a parsed value with a validity flag so that the absent NIL
// sentinel stays distinguishable from a present empty string.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Nil matches the bare sentinel token NIL, case-insensitively, and returns
// the unconsumed suffix. A proper prefix of the token at the end of the
// buffer is incomplete. Like the grammar it implements, Nil matches exactly
// three bytes and does not inspect what follows them.
func Nil(in []byte) ([]byte, error) {
	const token = "NIL"
	for i := 0; i < len(token); i++ {
		if i == len(in) {
			return nil, ErrIncomplete
		}
		if upperASCII(in[i]) != token[i] {
			return nil, &SyntaxError{Offset: i, Err: ErrUnexpectedByte}
		}
	}
	return in[len(token):], nil
}

func upperASCII(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// NString parses an nstring: the bare NIL sentinel yields an absent value,
// anything else must be a quoted string or literal. Only the unquoted token
// means absent; a quoted "NIL" is a present value. The NIL branch is
// abandoned only on a definite mismatch, never while it might still
// complete.
func NString(in []byte) (Nullable[[]byte], []byte, error) {
	rest, err := Nil(in)
	if err == nil {
		return Nullable[[]byte]{}, rest, nil
	}
	if errors.Is(err, ErrIncomplete) {
		return Nullable[[]byte]{}, nil, err
	}
	raw, rest, err := String(in)
	if err != nil {
		return Nullable[[]byte]{}, nil, err
	}
	return Nullable[[]byte]{Value: raw, Valid: true}, rest, nil
}

// NStringUTF8 is NString with the present branch validated as UTF-8.
func NStringUTF8(in []byte) (Nullable[string], []byte, error) {
	rest, err := Nil(in)
	if err == nil {
		return Nullable[string]{}, rest, nil
	}
	if errors.Is(err, ErrIncomplete) {
		return Nullable[string]{}, nil, err
	}
	s, rest, err := StringUTF8(in)
	if err != nil {
		return Nullable[string]{}, nil, err
	}
	return Nullable[string]{Value: s, Valid: true}, rest, nil
}
