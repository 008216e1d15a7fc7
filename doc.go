// Package imapwire parses the primitive token grammar shared by IMAP4
// commands and responses: numbers, atoms, quoted strings, length-prefixed
// literals, and the NIL sentinel.
//
// The package is the lexical bottom layer of a protocol stack. It does not
// know about commands, responses, or connections; it turns a byte slice into
// typed values and hands the unconsumed suffix back to the caller.
//
// # Tri-state results
//
// Network input arrives in arbitrary chunks, so every parser distinguishes
// three outcomes through its error value:
//
//   - nil: the value parsed; the returned rest slice is the unconsumed
//     suffix of the input.
//   - errors.Is(err, ErrIncomplete): the buffered bytes are a valid prefix
//     but not enough to decide. Buffer more data and retry the same parser
//     at the same offset. Literal payloads report their exact byte deficit
//     through *IncompleteError.
//   - errors.Is(err, ErrMalformed): the bytes definitively violate the
//     grammar. Waiting cannot recover; the stream should be treated as
//     protocol-violating.
//
// # Zero copy
//
// Parsers return sub-slices of the caller's input. Nothing is copied on the
// success path except where a value must be materialized as a Go string
// (the UTF-8 variants, Atom, Text).
//
// # Streaming
//
// Accumulator packages the buffer-and-retry loop:
//
//	var acc imapwire.Accumulator
//	acc.Feed(chunk)
//	v, ok, err := imapwire.Try(&acc, imapwire.Literal)
//	if err != nil {
//		// protocol error, close the connection
//	}
//	if !ok {
//		// read more bytes and call Try again
//	}
package imapwire
