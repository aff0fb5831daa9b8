package afile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/navionguy/amoslist/amostoken"
	"github.com/navionguy/amoslist/berrors"
	"github.com/rs/zerolog"
)

// A saved program starts with a 16 byte version string
// and the length of the tokenized code that follows.
const (
	versionLen = 16
	headerLen  = versionLen + 4
	signature  = "AMOS "
)

// Line is one line of the program
type Line struct {
	Number int               // position in the program, first line is 1
	Indent int               // indent byte from the line header
	Offset int               // where the line header sits in the code area
	Words  int               // line length in 16 bit words, header included
	Tokens []amostoken.Token // ends with the end of line sentinel
}

// Program is a decoded .AMOS file
type Program struct {
	Version string // e.g. "AMOS Basic V134"
	Lines   []Line
	Banks   []byte // everything after the code, not decoded
}

type parser struct {
	log zerolog.Logger
}

// Option changes how a file is parsed
type Option func(*parser)

// WithLogger reports oddities in the file to log
func WithLogger(log zerolog.Logger) Option {
	return func(p *parser) {
		p.log = log
	}
}

// Parse reads a whole program file from src.
// On a decode error he returns the lines decoded so far, the last
// one possibly incomplete, along with the error.
func Parse(src io.Reader, opts ...Option) (*Program, error) {
	p := parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&p)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}

	if len(data) < headerLen || !bytes.HasPrefix(data, []byte(signature)) {
		return nil, &berrors.DecodeError{Kind: berrors.BadHeader, Detail: "not an AMOS program"}
	}

	prog := &Program{Version: string(bytes.TrimRight(data[:versionLen], " \x00"))}

	codeLen := int(binary.BigEndian.Uint32(data[versionLen:headerLen]))
	if codeLen > len(data)-headerLen {
		return prog, berrors.Malformed(versionLen, "code length %d, file holds %d", codeLen, len(data)-headerLen)
	}

	if rest := data[headerLen+codeLen:]; len(rest) > 0 {
		prog.Banks = rest
	}

	prog.Lines, err = p.parseCode(data[headerLen : headerLen+codeLen])
	return prog, err
}

// ParseCode splits a tokenized code area into lines.
// Error offsets are relative to the start of code.
func ParseCode(code []byte, opts ...Option) ([]Line, error) {
	p := parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&p)
	}
	return p.parseCode(code)
}

// Lines are decoded on one cursor over the whole area instead of
// line by line, a compiled procedure's body runs on past its line.
func (p *parser) parseCode(code []byte) ([]Line, error) {
	var lines []Line

	c := amostoken.NewCursor(code)
	for c.Remaining() > 0 {
		ln := Line{Number: len(lines) + 1, Offset: c.Offset()}

		hdr, err := c.ReadExact(2)
		if err != nil {
			return lines, fmt.Errorf("line %d: %w", ln.Number, err)
		}
		ln.Words = int(hdr[0])
		ln.Indent = int(hdr[1])

		if ln.Words == 0 {
			return lines, fmt.Errorf("line %d: %w", ln.Number, berrors.Malformed(ln.Offset, "zero length line"))
		}

		err = p.readTokens(c, &ln)
		lines = append(lines, ln)
		if err != nil {
			return lines, fmt.Errorf("line %d: %w", ln.Number, err)
		}

		if used := c.Offset() - ln.Offset; used != ln.Words*2 && !skippedBody(ln) {
			p.log.Warn().Int("line", ln.Number).Int("declared", ln.Words*2).Int("decoded", used).Msg("line length mismatch")
		}
	}

	return lines, nil
}

// readTokens decodes up to and including the end of line sentinel
func (p *parser) readTokens(c *amostoken.Cursor, ln *Line) error {
	for {
		tok, err := amostoken.DecodeToken(c)
		if err != nil {
			return err
		}

		ln.Tokens = append(ln.Tokens, tok)
		if tok.IsSentinel() {
			return nil
		}
	}
}

// skippedBody is true when the line declares a compiled procedure,
// those swallow bytes the line length doesn't count
func skippedBody(ln Line) bool {
	for _, tok := range ln.Tokens {
		if tok.Code == amostoken.ProcTok && tok.PayloadBytes() > 8 {
			return true
		}
	}
	return false
}
