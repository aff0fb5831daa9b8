package amostoken

import (
	"errors"
	"testing"

	"github.com/navionguy/amoslist/amostypes"
	"github.com/navionguy/amoslist/berrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNamer map[amostypes.ExtRef]string

func (mn mockNamer) ExtensionName(index uint8, sub uint16) (string, bool) {
	nm, ok := mn[amostypes.ExtRef{Index: index, SubCode: sub}]
	return nm, ok
}

func TestDecodeLiterals(t *testing.T) {
	for _, code := range Codes() {
		spec, _ := Lookup(code)
		if spec.Kind != Literal {
			continue
		}

		c := NewCursor([]byte{byte(code >> 8), byte(code)})
		tok, err := DecodeToken(c)

		require.NoErrorf(t, err, "code $%04X", code)
		assert.Equal(t, code, tok.Code)
		assert.Equal(t, spec.Name, tok.Name)
		assert.Nil(t, tok.Value)
		assert.Equal(t, 2, tok.BytesConsumed)
		assert.Zero(t, tok.PayloadBytes())
		assert.Zero(t, c.Remaining())
	}
}

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		inp   []byte
		code  Code
		name  string
		val   amostypes.Value
		bytes int
		text  string
	}{
		{inp: []byte{0x00, 0x00}, code: EndOfLine, bytes: 2},
		{inp: []byte{0x04, 0x76}, code: PrintTok, name: "Print", bytes: 2, text: "Print"},
		{inp: []byte{0xFF, 0xC0}, code: 0xFFC0, name: "+", bytes: 2, text: "+"},
		{inp: []byte{0x00, 0x3E, 0x00, 0x00, 0x00, 0x2A}, code: DecValTok, name: "DecVal", val: amostypes.Int(42), bytes: 6, text: "DecVal 42"},
		{inp: []byte{0x00, 0x26, 0x00, 0x02, 'H', 'I'}, code: DblStrTok, name: "Dbl Str", val: amostypes.Str("HI"), bytes: 6, text: `Dbl Str "HI"`},
		{inp: []byte{0x00, 0x06, 0x00, 0x00, 0x02, 0x02, 'A', 0x00}, code: VariableTok, name: "Variable", val: amostypes.Ident("A$"), bytes: 8, text: "Variable A$"},
		{inp: []byte{0x02, 0x3C, 0x00, 0x10}, code: ForTok, name: "For", bytes: 4, text: "For"},
		{inp: []byte{0x02, 0x90, 0x00, 0x00, 0x00, 0x08}, code: ExitIfTok, name: "Exit If", bytes: 6, text: "Exit If"},
		{inp: []byte{0x00, 0x4E, 0x01, 0x00, 0x00, 0x50}, code: ExtTok, name: "Extension", val: amostypes.ExtRef{Index: 1, SubCode: 0x50}, bytes: 6, text: "Extension ext1:$0050"},
	}

	for _, tt := range tests {
		c := NewCursor(tt.inp)
		tok, err := DecodeToken(c)

		require.NoError(t, err)
		assert.Equal(t, tt.code, tok.Code)
		assert.Equal(t, tt.name, tok.Name)
		assert.Equal(t, tt.val, tok.Value)
		assert.Equal(t, tt.bytes, tok.BytesConsumed)
		assert.Equal(t, tt.bytes, c.Offset())
		assert.Equal(t, tt.text, tok.String())
		assert.Equal(t, tt.code == EndOfLine, tok.IsSentinel())
	}
}

func TestDecodeTokenErrors(t *testing.T) {
	tests := []struct {
		inp    []byte
		err    error
		offset int
		code   uint16
	}{
		{inp: []byte{0x00, 0x02}, err: berrors.ErrUnknownToken, offset: 0, code: 0x0002},
		{inp: []byte{0xFF, 0xFF, 0x00, 0x00}, err: berrors.ErrUnknownToken, offset: 0, code: 0xFFFF},
		{inp: []byte{0x04}, err: berrors.ErrTruncated, offset: 0},
		{inp: []byte{0x00, 0x3E, 0x00, 0x2A}, err: berrors.ErrTruncated, offset: 2},
		{inp: []byte{0x00, 0x26, 0x00, 0x07, 'A'}, err: berrors.ErrMalformed, offset: 4},
	}

	for _, tt := range tests {
		_, err := DecodeToken(NewCursor(tt.inp))

		require.Error(t, err)
		assert.Truef(t, errors.Is(err, tt.err), "% X gave %v", tt.inp, err)

		var de *berrors.DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, tt.offset, de.Offset)
		assert.Equal(t, tt.code, de.Code)
	}
}

func TestTokenText(t *testing.T) {
	names := mockNamer{{Index: 1, SubCode: 0x50}: "Sam Play"}

	tests := []struct {
		tok Token
		exp string
	}{
		{tok: Token{Code: ExtTok, Name: "Extension", Value: amostypes.ExtRef{Index: 1, SubCode: 0x50}}, exp: "Sam Play"},
		{tok: Token{Code: ExtTok, Name: "Extension", Value: amostypes.ExtRef{Index: 2, SubCode: 0x50}}, exp: "Extension ext2:$0050"},
		{tok: Token{Code: RemTok, Name: "Rem", Value: amostypes.Remark("hello")}, exp: "Rem hello"},
		{tok: Token{Code: PrintTok, Name: "Print"}, exp: "Print"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, tt.tok.Text(names))
	}
}
