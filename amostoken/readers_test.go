package amostoken

import (
	"errors"
	"testing"

	"github.com/navionguy/amoslist/amostypes"
	"github.com/navionguy/amoslist/berrors"
	"github.com/stretchr/testify/assert"
)

type readerTest struct {
	inp  []byte
	n    int             // bytes the reader should report
	val  amostypes.Value // expected value
	err  error           // sentinel the error should match
	left int             // bytes left in the cursor afterwards
}

func runReaderTests(t *testing.T, name string, rd func(*Cursor) (int, amostypes.Value, error), tests []readerTest) {
	for _, tt := range tests {
		c := NewCursor(tt.inp)
		n, val, err := rd(c)

		if tt.err != nil {
			assert.Truef(t, errors.Is(err, tt.err), "%s(% X) got error %v", name, tt.inp, err)
			continue
		}

		if assert.NoErrorf(t, err, "%s(% X)", name, tt.inp) {
			assert.Equalf(t, tt.n, n, "%s(% X) byte count", name, tt.inp)
			assert.Equalf(t, tt.val, val, "%s(% X) value", name, tt.inp)
			assert.Equalf(t, tt.n, c.Offset(), "%s(% X) cursor must move by the reported count", name, tt.inp)
			assert.Equal(t, tt.left, c.Remaining())
		}
	}
}

func TestReadInt(t *testing.T) {
	runReaderTests(t, "readInt", readInt, []readerTest{
		{inp: []byte{0x00, 0x00, 0x00, 0x2A}, n: 4, val: amostypes.Int(42)},
		{inp: []byte{0xFF, 0xFF, 0xFF, 0xFF}, n: 4, val: amostypes.Int(-1)},
		{inp: []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, n: 4, val: amostypes.Int(65536), left: 2},
		{inp: []byte{0x00, 0x2A}, err: berrors.ErrTruncated},
	})
}

func TestReadFloat(t *testing.T) {
	runReaderTests(t, "readFloat", readFloat, []readerTest{
		{inp: []byte{0x3F, 0xC0, 0x00, 0x00}, n: 4, val: amostypes.Flt(1.5)},
		{inp: []byte{0xC0, 0x00, 0x00, 0x00}, n: 4, val: amostypes.Flt(-2)},
		{inp: []byte{0x3F}, err: berrors.ErrTruncated},
	})
}

func TestReadLabel(t *testing.T) {
	runReaderTests(t, "readLabel", readLabel, []readerTest{
		{inp: []byte{0x00, 0x00, 0x01, 0x01, 'X'}, n: 5, val: amostypes.Ident("X#")},
		{inp: []byte{0x00, 0x00, 0x01, 0x00, 'X'}, n: 5, val: amostypes.Ident("X")},
		{inp: []byte{0x00, 0x00, 0x01, 0x02, 'X'}, n: 5, val: amostypes.Ident("X$")},
		{inp: []byte{0x00, 0x00, 0x01, 0x03, 'X'}, n: 5, val: amostypes.Ident("X#")}, // float bit wins
		{inp: []byte{0x00, 0x00, 0x01, 0x04, 'X'}, n: 5, val: amostypes.Ident("X")},  // other bits add nothing
		{inp: []byte{0x00, 0x00, 0x04, 0x00, 'N', 'A', 'M', 0x00, 0x00, 0x00}, n: 8, val: amostypes.Ident("NAM"), left: 2},
		{inp: []byte{0x00, 0x00, 0x04, 0x00, 'N', 'A'}, err: berrors.ErrMalformed},
		{inp: []byte{0x00, 0x00, 0x04}, err: berrors.ErrTruncated},
	})
}

func TestReadString(t *testing.T) {
	runReaderTests(t, "readString", readString, []readerTest{
		{inp: []byte{0x00, 0x03, 'A', 0x00, 0x00, 0x00}, n: 6, val: amostypes.Str("A")},
		{inp: []byte{0x00, 0x02, 'H', 'I'}, n: 4, val: amostypes.Str("HI")},
		{inp: []byte{0x00, 0x03, 'A', 'B', 'C', 0x00, 0x00, 0x00}, n: 6, val: amostypes.Str("ABC"), left: 2},
		{inp: []byte{0x00, 0x00}, n: 2, val: amostypes.Str("")},
		{inp: []byte{0x00, 0x01, 0xE9, 0x00}, n: 4, val: amostypes.Str("é")},
		{inp: []byte{0x00, 0x03, 'A', 'B', 'C'}, err: berrors.ErrMalformed}, // pad byte missing
		{inp: []byte{0x00, 0x09, 'A'}, err: berrors.ErrMalformed},
		{inp: []byte{0x00}, err: berrors.ErrTruncated},
	})
}

func TestReadRem(t *testing.T) {
	runReaderTests(t, "readRem", readRem, []readerTest{
		{inp: []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}, n: 7, val: amostypes.Remark("hello")},
		{inp: []byte{0x00, 0x04, 'h', 'i', 0x00, 0x00, 0x00, 0x00}, n: 6, val: amostypes.Remark("hi"), left: 2},
		{inp: []byte{0x00, 0x00}, n: 2, val: amostypes.Remark("")},
		{inp: []byte{0x00, 0x05, 'h'}, err: berrors.ErrMalformed},
		{inp: []byte{0x00}, err: berrors.ErrTruncated},
	})
}

func TestReadProcedure(t *testing.T) {
	body := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	compiled := append([]byte{0x00, 0x00, 0x00, 0x0A, 0x12, 0x34, 0x10, 0x56}, body...)

	runReaderTests(t, "readProcedure", readProcedure, []readerTest{
		{inp: compiled, n: 18, val: amostypes.ProcHeader{
			BytesToEnd: 10, EncSeed: 0x1234, EncSeed2: 0x56,
			Flags: amostypes.ProcFlags{Compiled: true}, Body: body}},
		{inp: []byte{0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00}, n: 8, val: amostypes.ProcHeader{
			BytesToEnd: 32, Flags: amostypes.ProcFlags{Folded: true, Locked: true}}, left: 2},
		{inp: []byte{0x00, 0x00, 0x01, 0x00, 0xAB, 0xCD, 0x20, 0xEF}, n: 8, val: amostypes.ProcHeader{
			BytesToEnd: 256, EncSeed: 0xABCD, EncSeed2: 0xEF, Flags: amostypes.ProcFlags{Encrypted: true}}},
		{inp: []byte{0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x10, 0x00, 1, 2, 3, 4}, err: berrors.ErrMalformed},
		{inp: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x10, 0x00}, err: berrors.ErrMalformed},
		{inp: []byte{0x00, 0x00, 0x00, 0x0A, 0x00}, err: berrors.ErrTruncated},
	})
}

func TestReadProcedureFlags(t *testing.T) {
	c := NewCursor(append([]byte{0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x10, 0x00}, make([]byte, 10)...))
	n, val, err := readProcedure(c)

	assert.NoError(t, err)
	assert.Equal(t, 8+10, n)

	ph, ok := val.(amostypes.ProcHeader)
	if assert.True(t, ok) {
		assert.True(t, ph.Flags.Compiled)
		assert.Len(t, ph.Body, 10)
	}
}

func TestReadExtension(t *testing.T) {
	runReaderTests(t, "readExtension", readExtension, []readerTest{
		{inp: []byte{0x01, 0x00, 0x00, 0x50}, n: 4, val: amostypes.ExtRef{Index: 1, SubCode: 0x50}},
		{inp: []byte{0x11, 0xFF, 0x12, 0x34, 0x00, 0x00}, n: 4, val: amostypes.ExtRef{Index: 0x11, SubCode: 0x1234}, left: 2},
		{inp: []byte{0x01, 0x00, 0x00}, err: berrors.ErrTruncated},
	})
}

func TestReadSkip(t *testing.T) {
	tests := []struct {
		inp  []byte
		skip int
		err  bool
	}{
		{inp: []byte{0x00, 0x08}, skip: 2},
		{inp: []byte{0x00, 0x00, 0x00, 0x10, 0x00, 0x00}, skip: 4},
		{inp: []byte{0x00}, skip: 2, err: true},
	}

	for _, tt := range tests {
		c := NewCursor(tt.inp)
		n, val, err := readSkip(c, tt.skip)

		if tt.err {
			assert.True(t, errors.Is(err, berrors.ErrTruncated))
			continue
		}
		assert.NoError(t, err)
		assert.Nil(t, val)
		assert.Equal(t, tt.skip, n)
		assert.Equal(t, tt.skip, c.Offset())
	}
}
