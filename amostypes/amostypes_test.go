package amostypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKind(t *testing.T) {
	tests := []struct {
		kind ValueKind
		exp  string
	}{
		{kind: NoValue, exp: "NONE"},
		{kind: Integer, exp: "INTEGER"},
		{kind: Float, exp: "FLOAT"},
		{kind: Identifier, exp: "IDENTIFIER"},
		{kind: String, exp: "STRING"},
		{kind: Procedure, exp: "PROCEDURE"},
		{kind: Extension, exp: "EXTENSION"},
		{kind: Comment, exp: "COMMENT"},
	}

	for _, tt := range tests {
		assert.EqualValues(t, tt.exp, tt.kind.String())
	}
}

func TestValues(t *testing.T) {
	tests := []struct {
		val  Value
		kind ValueKind
		exp  string
	}{
		{val: nil, kind: NoValue},
		{val: Int(42), kind: Integer, exp: "42"},
		{val: Int(-7), kind: Integer, exp: "-7"},
		{val: Flt(1.5), kind: Float, exp: "1.5"},
		{val: Ident("A$"), kind: Identifier, exp: "A$"},
		{val: Str("HI"), kind: String, exp: `"HI"`},
		{val: Remark("hello"), kind: Comment, exp: "hello"},
		{val: ExtRef{Index: 1, SubCode: 0x50}, kind: Extension, exp: "ext1:$0050"},
		{val: ProcHeader{BytesToEnd: 10, EncSeed: 0x1234, EncSeed2: 0x56}, kind: Procedure, exp: "len=10 seed=$1234/$56"},
		{val: ProcHeader{BytesToEnd: 2, Flags: ProcFlags{Folded: true, Compiled: true}}, kind: Procedure, exp: "len=2 seed=$0000/$00 FOLDED|COMPILED"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, KindOf(tt.val))
		if tt.val != nil {
			assert.Equal(t, tt.exp, tt.val.String())
		}
	}
}

func TestNewProcFlags(t *testing.T) {
	tests := []struct {
		inp byte
		exp ProcFlags
	}{
		{inp: 0x00, exp: ProcFlags{}},
		{inp: 0x80, exp: ProcFlags{Folded: true}},
		{inp: 0x40, exp: ProcFlags{Locked: true}},
		{inp: 0x20, exp: ProcFlags{Encrypted: true}},
		{inp: 0x10, exp: ProcFlags{Compiled: true}},
		{inp: 0xF0, exp: ProcFlags{Folded: true, Locked: true, Encrypted: true, Compiled: true}},
		{inp: 0x0F, exp: ProcFlags{}}, // low bits mean nothing
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, NewProcFlags(tt.inp), "flag byte $%02X", tt.inp)
	}
}
