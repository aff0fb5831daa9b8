package amostoken

import (
	"github.com/navionguy/amoslist/amostypes"
	"github.com/navionguy/amoslist/berrors"
)

// Token is one decoded token.  Once built it isn't changed.
type Token struct {
	Code          Code            // the raw token code
	Name          string          // empty for the sentinel
	Value         amostypes.Value // nil when there is no payload value
	Offset        int             // where the code started in the buffer
	BytesConsumed int             // the code plus its payload, never less than 2
}

// ExtensionNamer resolves extension tokens to the instruction
// name the extension registered for them
type ExtensionNamer interface {
	ExtensionName(index uint8, sub uint16) (string, bool)
}

// IsSentinel reports whether this is the zero code
func (t Token) IsSentinel() bool {
	return t.Code == EndOfLine
}

// PayloadBytes is how many bytes followed the code
func (t Token) PayloadBytes() int {
	return t.BytesConsumed - 2
}

func (t Token) String() string {
	return t.Text(nil)
}

// Text builds the display form of the token, resolving
// extension references through names when it is given one
func (t Token) Text(names ExtensionNamer) string {
	if t.Value == nil {
		return t.Name
	}

	if ref, ok := t.Value.(amostypes.ExtRef); ok && names != nil {
		if nm, ok := names.ExtensionName(ref.Index, ref.SubCode); ok {
			return nm
		}
	}
	return t.Name + " " + t.Value.String()
}

// DecodeToken reads one token code and whatever payload goes with it.
// On failure the returned Token holds what was known so far.
func DecodeToken(c *Cursor) (Token, error) {
	off := c.Offset()

	raw, err := c.readUint16()
	if err != nil {
		return Token{Offset: off}, err
	}

	return decodeCode(c, Code(raw), off)
}

// decodeCode finishes a token whose code has already been read
func decodeCode(c *Cursor, code Code, off int) (Token, error) {
	spec, ok := Lookup(code)
	if !ok {
		return Token{Code: code, Offset: off}, berrors.Unknown(uint16(code), off)
	}

	tok := Token{Code: code, Name: spec.Name, Offset: off, BytesConsumed: 2}

	if spec.Kind != WithPayload {
		return tok, nil
	}

	n, val, err := readPayload(c, spec)
	if err != nil {
		return tok, err
	}

	tok.Value = val
	tok.BytesConsumed += n
	return tok, nil
}

// readPayload dispatches to the reader for the entry's payload shape
func readPayload(c *Cursor, spec Spec) (int, amostypes.Value, error) {
	switch spec.Payload {
	case PayloadInt:
		return readInt(c)
	case PayloadFloat:
		return readFloat(c)
	case PayloadLabel:
		return readLabel(c)
	case PayloadString:
		return readString(c)
	case PayloadRem:
		return readRem(c)
	case PayloadProcedure:
		return readProcedure(c)
	case PayloadExtension:
		return readExtension(c)
	case PayloadSkip:
		return readSkip(c, spec.Skip)
	}

	return 0, nil, nil
}
