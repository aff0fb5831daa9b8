package berrors

import "fmt"

const (
	UnknownToken     = iota + 1 // code not in the token table
	TruncatedInput              // ran out of bytes inside a fixed size field
	MalformedPayload            // a declared length doesn't fit the data
	BadHeader                   // container doesn't start with an AMOS header
)

// TextForError returns the error text based on error number
func TextForError(err int) string {
	switch err {
	case UnknownToken:
		return "Unknown token"
	case TruncatedInput:
		return "Truncated input"
	case MalformedPayload:
		return "Malformed payload"
	case BadHeader:
		return "Bad file header"
	}

	return "Unprintable error"
}

// DecodeError carries where and why a decode pass stopped.
// Only the fields that make sense for the Kind are filled in.
type DecodeError struct {
	Kind   int    // one of the constants above
	Offset int    // byte offset into the buffer being decoded
	Code   uint16 // offending token code, UnknownToken only
	Want   int    // bytes requested
	Have   int    // bytes that were left
	Detail string // free form explanation
}

// sentinels for use with errors.Is
var (
	ErrUnknownToken = &DecodeError{Kind: UnknownToken}
	ErrTruncated    = &DecodeError{Kind: TruncatedInput}
	ErrMalformed    = &DecodeError{Kind: MalformedPayload}
	ErrBadHeader    = &DecodeError{Kind: BadHeader}
)

func (de *DecodeError) Error() string {
	msg := TextForError(de.Kind)

	switch de.Kind {
	case UnknownToken:
		return fmt.Sprintf("%s $%04X at offset %d", msg, de.Code, de.Offset)
	case TruncatedInput:
		return fmt.Sprintf("%s at offset %d, wanted %d bytes, %d left", msg, de.Offset, de.Want, de.Have)
	}

	if len(de.Detail) > 0 {
		return fmt.Sprintf("%s at offset %d: %s", msg, de.Offset, de.Detail)
	}
	return fmt.Sprintf("%s at offset %d", msg, de.Offset)
}

// Is matches on Kind alone so the sentinels compare equal
// to any error of the same kind.
func (de *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Kind == de.Kind
}

// Unknown builds an UnknownToken error
func Unknown(code uint16, offset int) *DecodeError {
	return &DecodeError{Kind: UnknownToken, Code: code, Offset: offset}
}

// Truncated builds a TruncatedInput error
func Truncated(offset, want, have int) *DecodeError {
	return &DecodeError{Kind: TruncatedInput, Offset: offset, Want: want, Have: have}
}

// Malformed builds a MalformedPayload error
func Malformed(offset int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: MalformedPayload, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
