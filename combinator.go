package imapwire

import "errors"

// Parser is the uniform contract shared by every parser in this package:
// consume a prefix of in, returning the parsed value and the unconsumed
// suffix, or report incomplete/malformed through the error.
type Parser[T any] func(in []byte) (T, []byte, error)

func expectByte(in []byte, want byte) ([]byte, error) {
	if len(in) == 0 {
		return nil, ErrIncomplete
	}
	if in[0] != want {
		return nil, &SyntaxError{Offset: 0, Err: ErrUnexpectedByte}
	}
	return in[1:], nil
}

// ParenDelimited wraps p between "(" and ")" with no interior structure
// assumed.
func ParenDelimited[T any](p Parser[T]) Parser[T] {
	return func(in []byte) (T, []byte, error) {
		var zero T
		inner, err := expectByte(in, '(')
		if err != nil {
			return zero, nil, err
		}
		v, rest, err := p(inner)
		if err != nil {
			return zero, nil, offsetErr(err, len(in)-len(inner))
		}
		out, err := expectByte(rest, ')')
		if err != nil {
			return zero, nil, offsetErr(err, len(in)-len(rest))
		}
		return v, out, nil
	}
}

// ParenList parses a parenthesized, single-space-separated sequence of p,
// accepting zero elements. Element alternatives are abandoned only on a
// definite grammar failure; incomplete always propagates so that a pending
// element is never misread as the end of the list.
func ParenList[T any](p Parser[T]) Parser[[]T] {
	return parenList(p, false)
}

// ParenList1 is ParenList requiring at least one element.
func ParenList1[T any](p Parser[T]) Parser[[]T] {
	return parenList(p, true)
}

func parenList[T any](p Parser[T], nonempty bool) Parser[[]T] {
	return func(in []byte) ([]T, []byte, error) {
		rest, err := expectByte(in, '(')
		if err != nil {
			return nil, nil, err
		}
		var items []T
		v, r, err := p(rest)
		switch {
		case err == nil:
			items = append(items, v)
			rest = r
			for len(rest) > 0 && rest[0] == ' ' {
				v, r, err = p(rest[1:])
				if err != nil {
					if errors.Is(err, ErrIncomplete) {
						return nil, nil, err
					}
					// Not another element; the separator stays unconsumed.
					break
				}
				items = append(items, v)
				rest = r
			}
		case errors.Is(err, ErrIncomplete):
			return nil, nil, err
		default:
			if nonempty {
				return nil, nil, offsetErr(err, len(in)-len(rest))
			}
		}
		out, err := expectByte(rest, ')')
		if err != nil {
			return nil, nil, offsetErr(err, len(in)-len(rest))
		}
		return items, out, nil
	}
}

// OptOpt runs p and degrades a definite grammar failure into an absent
// value with the input unconsumed. It is meant for grammar slots that are
// optional at a higher level than p expresses. Incomplete passes through
// untouched: a slot that might still parse must not be skipped early.
func OptOpt[T any](p Parser[Nullable[T]]) Parser[Nullable[T]] {
	return func(in []byte) (Nullable[T], []byte, error) {
		v, rest, err := p(in)
		if err == nil || errors.Is(err, ErrIncomplete) {
			return v, rest, err
		}
		return Nullable[T]{}, in, nil
	}
}
