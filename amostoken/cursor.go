package amostoken

import (
	"encoding/binary"

	"github.com/navionguy/amoslist/berrors"
)

// Cursor walks forward through a tokenized buffer.
// It never moves backwards and never changes the buffer.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor starts a cursor at the front of buf
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Remaining is the number of bytes not yet read
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Offset is the position of the next byte to be read
func (c *Cursor) Offset() int {
	return c.pos
}

// ReadExact hands back the next n bytes.  If there aren't
// that many left he fails and the position doesn't move.
// The returned slice shares memory with the buffer.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, berrors.Truncated(c.pos, n, c.Remaining())
	}

	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// readUint16 reads a big endian word
func (c *Cursor) readUint16() (uint16, error) {
	b, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// readUint32 reads a big endian long
func (c *Cursor) readUint32() (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
