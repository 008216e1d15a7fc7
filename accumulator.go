package imapwire

import "errors"

// Accumulator owns the buffer-and-retry loop a connection handler runs on
// top of this package: feed it transport chunks as they arrive, then run a
// parser against the unconsumed bytes with Try. The zero value is ready to
// use.
type Accumulator struct {
	buf []byte
}

// Feed appends a chunk of transport data. The chunk is copied, so the
// caller may reuse its read buffer.
func (a *Accumulator) Feed(chunk []byte) {
	a.buf = append(a.buf, chunk...)
}

// Bytes returns the unconsumed bytes. The slice aliases the internal buffer
// and is invalidated by the next Feed or successful Try.
func (a *Accumulator) Bytes() []byte {
	return a.buf
}

// Len returns the number of unconsumed bytes.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Advance drops n unconsumed bytes. It is meant for separators the caller
// handles outside a parser, such as the space between two tokens.
func (a *Accumulator) Advance(n int) {
	a.buf = a.buf[n:]
}

// Try runs p against the buffered bytes. When the parse is incomplete, ok
// is false with a nil error and the buffer is left untouched, so the same
// parse can be retried after the next Feed. On success the consumed prefix
// is dropped. A malformed result is returned as-is: the stream is
// protocol-violating and retrying cannot help.
func Try[T any](a *Accumulator, p Parser[T]) (T, bool, error) {
	v, rest, err := p(a.buf)
	if err != nil {
		var zero T
		if errors.Is(err, ErrIncomplete) {
			return zero, false, nil
		}
		return zero, false, err
	}
	a.buf = a.buf[len(a.buf)-len(rest):]
	return v, true, nil
}
