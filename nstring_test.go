package imapwire

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNil(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRest string
		wantErr  error
	}{
		{name: "upper", input: "NIL ", wantRest: " "},
		{name: "lower", input: "nil ", wantRest: " "},
		{name: "mixed", input: "Nil ", wantRest: " "},
		{name: "exact three bytes matched", input: "NILE", wantRest: "E"},
		{name: "prefix at end of buffer", input: "NI", wantErr: ErrIncomplete},
		{name: "empty input", input: "", wantErr: ErrIncomplete},
		{name: "mismatch", input: "NOPE", wantErr: ErrUnexpectedByte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, err := Nil([]byte(tt.input))
			if tt.wantErr != nil {
				assert.IsError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestNString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
		wantRest  string
		wantErr   error
	}{
		{name: "bare NIL is absent", input: "NIL ", wantValid: false, wantRest: " "},
		{name: "lowercase nil is absent", input: "nil ", wantValid: false, wantRest: " "},
		{name: "mixed case Nil is absent", input: "Nil ", wantValid: false, wantRest: " "},
		{name: "quoted NIL is present", input: `"NIL" `, wantValid: true, want: "NIL", wantRest: " "},
		{name: "quoted empty is present", input: `"" `, wantValid: true, want: "", wantRest: " "},
		{name: "literal is present", input: "{3}\r\nNIL ", wantValid: true, want: "NIL", wantRest: " "},
		{name: "nil prefix stays incomplete", input: "N", wantErr: ErrIncomplete},
		{name: "neither nil nor string", input: "NOPE", wantErr: ErrMalformed},
		{name: "empty input", input: "", wantErr: ErrIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rest, err := NString([]byte(tt.input))
			if tt.wantErr != nil {
				assert.IsError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantValid, v.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, string(v.Value))
			}
			assert.Equal(t, tt.wantRest, string(rest))
		})
	}
}

func TestNStringUTF8(t *testing.T) {
	v, rest, err := NStringUTF8([]byte("nil)"))
	assert.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, ")", string(rest))

	v, rest, err = NStringUTF8([]byte(`"héllo")`))
	assert.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "héllo", v.Value)
	assert.Equal(t, ")", string(rest))

	_, _, err = NStringUTF8([]byte("{1}\r\n\xff)"))
	assert.IsError(t, err, ErrInvalidUTF8)
}
