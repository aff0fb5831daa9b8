package amostoken

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/navionguy/amoslist/amostypes"
	"github.com/navionguy/amoslist/berrors"
	"golang.org/x/text/encoding/charmap"
)

// Each reader consumes exactly the bytes its payload occupies and
// reports how many that was.  Nothing realigns the stream afterwards,
// so a wrong count corrupts every token that follows.

const procHeaderLen = 8

// readInt handles BinVal, HexVal and DecVal
func readInt(c *Cursor) (int, amostypes.Value, error) {
	v, err := c.readUint32()
	if err != nil {
		return 0, nil, err
	}
	return 4, amostypes.Int(int32(v)), nil
}

// readFloat handles the single precision Float constant
func readFloat(c *Cursor) (int, amostypes.Value, error) {
	v, err := c.readUint32()
	if err != nil {
		return 0, nil, err
	}
	return 4, amostypes.Flt(math.Float32frombits(v)), nil
}

// readLabel handles variables, labels, procedure calls and goto targets.
// Header is 2 unused bytes, the name length and a type flag byte.
func readLabel(c *Cursor) (int, amostypes.Value, error) {
	hdr, err := c.ReadExact(4)
	if err != nil {
		return 0, nil, err
	}
	length := int(hdr[2])
	flags := hdr[3]

	name, err := readText(c, length)
	if err != nil {
		return 0, nil, err
	}

	switch {
	case flags&1 != 0:
		name += "#"
	case flags&2 != 0:
		name += "$"
	}
	return 4 + length, amostypes.Ident(name), nil
}

// readString handles both single and double quoted constants.
// Odd lengths carry a pad byte to keep the next token word aligned.
func readString(c *Cursor) (int, amostypes.Value, error) {
	l, err := c.readUint16()
	if err != nil {
		return 0, nil, err
	}
	length := int(l)
	if length%2 != 0 {
		length++
	}

	str, err := readText(c, length)
	if err != nil {
		return 0, nil, err
	}
	return 2 + length, amostypes.Str(str), nil
}

// readRem handles Rem and the ' comment
func readRem(c *Cursor) (int, amostypes.Value, error) {
	hdr, err := c.ReadExact(2)
	if err != nil {
		return 0, nil, err
	}
	length := int(hdr[1])

	txt, err := readText(c, length)
	if err != nil {
		return 0, nil, err
	}
	return 2 + length, amostypes.Remark(txt), nil
}

// readProcedure decodes the header of a procedure declaration.
// A compiled procedure has its machine code inline after the header,
// that gets stepped over in one piece.
func readProcedure(c *Cursor) (int, amostypes.Value, error) {
	hdr, err := c.ReadExact(procHeaderLen)
	if err != nil {
		return 0, nil, err
	}

	ph := amostypes.ProcHeader{
		BytesToEnd: int32(binary.BigEndian.Uint32(hdr[0:4])),
		EncSeed:    binary.BigEndian.Uint16(hdr[4:6]),
		Flags:      amostypes.NewProcFlags(hdr[6]),
		EncSeed2:   hdr[7],
	}

	if !ph.Flags.Compiled {
		return procHeaderLen, ph, nil
	}

	if ph.BytesToEnd < 0 || int(ph.BytesToEnd) > c.Remaining() {
		return 0, nil, berrors.Malformed(c.Offset(), "compiled procedure body of %d bytes, %d left", ph.BytesToEnd, c.Remaining())
	}

	body, _ := c.ReadExact(int(ph.BytesToEnd))
	ph.Body = body
	return procHeaderLen + len(body), ph, nil
}

// readExtension returns the raw slot/token pair, turning that
// into a name is up to an ExtensionNamer
func readExtension(c *Cursor) (int, amostypes.Value, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, nil, err
	}
	return 4, amostypes.ExtRef{Index: b[0], SubCode: binary.BigEndian.Uint16(b[2:4])}, nil
}

// readSkip eats n bytes the decoder has no use for, mostly space
// the editor reserves for jump offsets it patches in later
func readSkip(c *Cursor, n int) (int, amostypes.Value, error) {
	if _, err := c.ReadExact(n); err != nil {
		return 0, nil, err
	}
	return n, nil, nil
}

// readText pulls a self sized block of characters.  The length came
// out of the data, so running short means the data is bad.
func readText(c *Cursor, length int) (string, error) {
	if length > c.Remaining() {
		return "", berrors.Malformed(c.Offset(), "text of %d bytes, %d left", length, c.Remaining())
	}

	raw, _ := c.ReadExact(length)
	return latin1(bytes.TrimRight(raw, "\x00")), nil
}

// latin1 converts Amiga text to UTF-8
func latin1(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
