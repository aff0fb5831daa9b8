package amostypes

import (
	"fmt"
	"strings"
)

// ValueKind tells what shape of payload followed a token code
type ValueKind int

const (
	NoValue    ValueKind = iota // token had no payload, or it was skipped
	Integer                     // 4 byte signed value
	Float                       // 4 byte IEEE single
	Identifier                  // variable, label or procedure name
	String                      // string constant
	Procedure                   // procedure declaration header
	Extension                   // reference into an extension's token table
	Comment                     // Rem or ' text
)

func (vk ValueKind) String() string {
	return []string{"NONE", "INTEGER", "FLOAT", "IDENTIFIER", "STRING", "PROCEDURE", "EXTENSION", "COMMENT"}[vk]
}

// Value is the decoded payload of a token.
// A nil Value means the token carried nothing worth keeping.
type Value interface {
	Kind() ValueKind // which variant this is
	String() string  // display form
}

// KindOf is safe to call with a nil Value
func KindOf(v Value) ValueKind {
	if v == nil {
		return NoValue
	}
	return v.Kind()
}

// Int holds BinVal, HexVal and DecVal constants.
// They are stored the same way, only the listing differs.
type Int int32

func (i Int) Kind() ValueKind { return Integer }
func (i Int) String() string  { return fmt.Sprintf("%d", int32(i)) }

// Flt holds a Float constant
type Flt float32

func (f Flt) Kind() ValueKind { return Float }
func (f Flt) String() string  { return fmt.Sprintf("%g", float32(f)) }

// Ident is a name with its type suffix already applied
type Ident string

func (id Ident) Kind() ValueKind { return Identifier }
func (id Ident) String() string  { return string(id) }

// Str is a string constant with the padding removed
type Str string

func (s Str) Kind() ValueKind { return String }
func (s Str) String() string  { return fmt.Sprintf("%q", string(s)) }

// Remark is the text of a Rem or ' comment
type Remark string

func (r Remark) Kind() ValueKind { return Comment }
func (r Remark) String() string  { return string(r) }

// ProcFlags are the attribute bits of a procedure declaration
type ProcFlags struct {
	Folded    bool // body hidden in the editor
	Locked    bool // can't be unfolded
	Encrypted bool // body is scrambled
	Compiled  bool // body is machine code, skipped by the decoder
}

// NewProcFlags picks the named bits out of the flag byte
func NewProcFlags(b byte) ProcFlags {
	return ProcFlags{
		Folded:    b&0x80 != 0,
		Locked:    b&0x40 != 0,
		Encrypted: b&0x20 != 0,
		Compiled:  b&0x10 != 0,
	}
}

func (pf ProcFlags) String() string {
	var set []string

	if pf.Folded {
		set = append(set, "FOLDED")
	}
	if pf.Locked {
		set = append(set, "LOCKED")
	}
	if pf.Encrypted {
		set = append(set, "ENCRYPTED")
	}
	if pf.Compiled {
		set = append(set, "COMPILED")
	}
	return strings.Join(set, "|")
}

// ProcHeader is what follows a Procedure token.
// Body is only filled in for compiled procedures and is never decoded.
type ProcHeader struct {
	BytesToEnd int32  // distance to the End Proc of this procedure
	EncSeed    uint16 // first encryption seed word
	EncSeed2   uint8  // second encryption seed byte
	Flags      ProcFlags
	Body       []byte
}

func (ph ProcHeader) Kind() ValueKind { return Procedure }

func (ph ProcHeader) String() string {
	out := fmt.Sprintf("len=%d seed=$%04X/$%02X", ph.BytesToEnd, ph.EncSeed, ph.EncSeed2)
	if fl := ph.Flags.String(); len(fl) > 0 {
		out += " " + fl
	}
	return out
}

// ExtRef points into the token table of a loaded extension
type ExtRef struct {
	Index   uint8  // extension slot number
	SubCode uint16 // token offset within that extension
}

func (er ExtRef) Kind() ValueKind { return Extension }
func (er ExtRef) String() string  { return fmt.Sprintf("ext%d:$%04X", er.Index, er.SubCode) }
