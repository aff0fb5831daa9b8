package amostoken

import (
	"github.com/rs/zerolog"
)

// Stream decodes a buffer one token at a time.
//
//	st := amostoken.NewStream(buf)
//	for st.Next() {
//		tok := st.Token()
//	}
//	if err := st.Err(); err != nil {
//
// It stops for good at the end of the buffer or the first error,
// there is no way to restart it.
type Stream struct {
	cur  *Cursor
	tok  Token
	err  error
	done bool
	log  zerolog.Logger
}

// Option changes how a Stream behaves
type Option func(*Stream)

// WithLogger sends trace output about each token to log
func WithLogger(log zerolog.Logger) Option {
	return func(s *Stream) {
		s.log = log
	}
}

// NewStream gets ready to decode buf
func NewStream(buf []byte, opts ...Option) *Stream {
	st := &Stream{cur: NewCursor(buf), log: zerolog.Nop()}

	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Next decodes the next token, false means there isn't one
func (s *Stream) Next() bool {
	if s.done {
		return false
	}

	if s.cur.Remaining() == 0 {
		s.done = true
		return false
	}

	tok, err := DecodeToken(s.cur)
	if err != nil {
		s.log.Debug().Err(err).Int("offset", tok.Offset).Msg("decode stopped")
		s.err = err
		s.done = true
		return false
	}

	s.log.Trace().Int("offset", tok.Offset).Uint16("code", uint16(tok.Code)).Str("token", tok.String()).Msg("token")
	s.tok = tok
	return true
}

// Token is the token found by the last call to Next
func (s *Stream) Token() Token {
	return s.tok
}

// Err is the error that ended the stream, nil if it ran out of input
func (s *Stream) Err() error {
	return s.err
}

// Decode runs a Stream over the whole of buf.  On error he returns
// everything decoded before the failure along with the error.
func Decode(buf []byte, opts ...Option) ([]Token, error) {
	var toks []Token

	st := NewStream(buf, opts...)
	for st.Next() {
		toks = append(toks, st.Token())
	}
	return toks, st.Err()
}
