package imapwire

import "math"

// Number parses 1*DIGIT as an unsigned 32-bit integer and returns the value
// and the unconsumed suffix. The digit run is maximal; if it extends to the
// end of the available bytes the result is ErrIncomplete, because more
// digits may still arrive.
func Number(in []byte) (uint32, []byte, error) {
	v, rest, err := parseDigits(in, math.MaxUint32)
	return uint32(v), rest, err
}

// Number64 is Number widened to 64 bits.
func Number64(in []byte) (uint64, []byte, error) {
	return parseDigits(in, math.MaxUint64)
}

func parseDigits(in []byte, max uint64) (uint64, []byte, error) {
	var v uint64
	i := 0
	for ; i < len(in); i++ {
		b := in[i]
		if b < '0' || b > '9' {
			break
		}
		d := uint64(b - '0')
		if v > (max-d)/10 {
			// Definitive even at end of input: further digits can only grow
			// the value, and a terminator would end it already over-wide.
			return 0, nil, &SyntaxError{Offset: i, Err: ErrNumberOverflow}
		}
		v = v*10 + d
	}
	if i == 0 {
		if len(in) == 0 {
			return 0, nil, ErrIncomplete
		}
		return 0, nil, &SyntaxError{Offset: 0, Err: ErrExpectedDigit}
	}
	if i == len(in) {
		return 0, nil, ErrIncomplete
	}
	return v, in[i:], nil
}
