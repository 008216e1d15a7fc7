package imapwire

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParenDelimited(t *testing.T) {
	p := ParenDelimited[uint32](Number)

	v, rest, err := p([]byte("(42) x"))
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), v)
	assert.Equal(t, " x", string(rest))

	_, _, err = p([]byte("42)"))
	assert.IsError(t, err, ErrUnexpectedByte)

	_, _, err = p([]byte("(42 x"))
	assert.IsError(t, err, ErrUnexpectedByte)

	// Everything buffered so far is a valid prefix.
	for _, in := range []string{"", "(", "(42"} {
		_, _, err = p([]byte(in))
		assert.IsError(t, err, ErrIncomplete)
	}
}

func TestParenList(t *testing.T) {
	p := ParenList[string](Atom)

	tests := []struct {
		name     string
		input    string
		want     []string
		wantRest string
		wantErr  error
	}{
		{name: "empty list", input: "() x", want: nil, wantRest: " x"},
		{name: "one element", input: "(a) x", want: []string{"a"}, wantRest: " x"},
		{name: "several elements", input: "(a b c)x", want: []string{"a", "b", "c"}, wantRest: "x"},
		{name: "nested close paren stays unconsumed", input: "(abc def))", want: []string{"abc", "def"}, wantRest: ")"},
		{name: "pending element propagates incomplete", input: "(a b", wantErr: ErrIncomplete},
		{name: "missing close paren", input: "(a b!", wantErr: ErrUnexpectedByte},
		{name: "no open paren", input: "a)", wantErr: ErrUnexpectedByte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rest, err := p([]byte(tt.input))
			if tt.wantErr != nil {
				assert.IsError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestParenList1(t *testing.T) {
	p := ParenList1[uint32](Number)

	v, rest, err := p([]byte("(1 22 333) t"))
	assert.NoError(t, err)
	assert.Equal(t, []uint32{1, 22, 333}, v)
	assert.Equal(t, " t", string(rest))

	// Zero elements is a definite failure for the nonempty variant.
	_, _, err = p([]byte("()"))
	assert.IsError(t, err, ErrMalformed)

	// A first element still arriving is not.
	_, _, err = p([]byte("("))
	assert.IsError(t, err, ErrIncomplete)
}

func TestOptOpt(t *testing.T) {
	p := OptOpt[[]byte](NString)

	// Success passes through.
	v, rest, err := p([]byte(`"x" t`))
	assert.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "x", string(v.Value))
	assert.Equal(t, " t", string(rest))

	// The absent sentinel passes through too.
	v, rest, err = p([]byte("NIL t"))
	assert.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, " t", string(rest))

	// A definite failure degrades to absent with the input unconsumed.
	in := []byte("12345 t")
	v, rest, err = p(in)
	assert.NoError(t, err)
	assert.False(t, v.Valid)
	assert.True(t, &rest[0] == &in[0])

	// Incomplete must never be intercepted: the slot might still parse.
	_, _, err = p([]byte("NI"))
	assert.IsError(t, err, ErrIncomplete)
	_, _, err = p([]byte(`"unterminated`))
	assert.IsError(t, err, ErrIncomplete)
}
