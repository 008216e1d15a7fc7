package imapwire

// Byte classes from the IMAP4rev1 ABNF (RFC 3501 section 9, RFC 5234 core
// rules). Each predicate is total over a single byte; token boundaries of
// every parser in this package derive from these.

// IsChar8 reports whether b may appear in a literal payload: any octet
// except NUL.
func IsChar8(b byte) bool {
	return b != 0x00
}

// IsChar reports whether b is a 7-bit US-ASCII character excluding NUL.
func IsChar(b byte) bool {
	return b >= 0x01 && b <= 0x7f
}

// IsTextChar reports whether b may appear in free-form text: any CHAR
// except CR and LF.
func IsTextChar(b byte) bool {
	return IsChar(b) && b != '\r' && b != '\n'
}

// IsQuotedSpecials reports whether b needs escaping inside a quoted string.
func IsQuotedSpecials(b byte) bool {
	return b == '"' || b == '\\'
}

// IsRespSpecials reports whether b is a response special (']').
func IsRespSpecials(b byte) bool {
	return b == ']'
}

// IsListWildcards reports whether b is a LIST wildcard ('%' or '*').
func IsListWildcards(b byte) bool {
	return b == '%' || b == '*'
}

// IsAtomSpecials reports whether b terminates an atom: parens, '{', space,
// control bytes, list wildcards, quoted specials, or response specials.
func IsAtomSpecials(b byte) bool {
	return b == '(' || b == ')' || b == '{' || b == ' ' || b < 0x20 ||
		IsListWildcards(b) || IsQuotedSpecials(b) || IsRespSpecials(b)
}

// IsAtomChar reports whether b may appear in an atom.
func IsAtomChar(b byte) bool {
	return IsChar(b) && !IsAtomSpecials(b)
}

// IsAstringChar reports whether b may appear in the bare-token form of an
// astring: atom chars plus response specials.
func IsAstringChar(b byte) bool {
	return IsAtomChar(b) || IsRespSpecials(b)
}
