package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/navionguy/amoslist/afile"
	"github.com/navionguy/amoslist/amostoken"
	"github.com/navionguy/amoslist/amostypes"
	"github.com/rs/zerolog"
)

// List writes one line of output per program line, the indent
// followed by the display text of each token.  Extension tokens
// are named through names when it isn't nil.
func List(w io.Writer, prog *afile.Program, names amostoken.ExtensionNamer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; %s\n", prog.Version)
	for _, ln := range prog.Lines {
		fmt.Fprintf(bw, "%5d %s%s\n", ln.Number, strings.Repeat(" ", ln.Indent), lineText(ln, names))
	}

	if len(prog.Banks) > 0 {
		fmt.Fprintf(bw, "; %d bytes of banks\n", len(prog.Banks))
	}
	return bw.Flush()
}

// lineText joins the tokens of a line, leaving out the end marker
func lineText(ln afile.Line, names amostoken.ExtensionNamer) string {
	parts := make([]string, 0, len(ln.Tokens))
	for _, tok := range ln.Tokens {
		if tok.IsSentinel() {
			continue
		}
		parts = append(parts, tokenText(tok, names))
	}
	return strings.Join(parts, " ")
}

// slotNamer is implemented by name tables that also know
// which extension sits in each slot
type slotNamer interface {
	Slot(index uint8) (string, bool)
}

// tokenText falls back to the extension's own name for
// extension tokens the table has no instruction name for
func tokenText(tok amostoken.Token, names amostoken.ExtensionNamer) string {
	ref, ok := tok.Value.(amostypes.ExtRef)
	if !ok || names == nil {
		return tok.Text(names)
	}

	if nm, ok := names.ExtensionName(ref.Index, ref.SubCode); ok {
		return nm
	}

	if sn, ok := names.(slotNamer); ok {
		if ext, ok := sn.Slot(ref.Index); ok {
			return fmt.Sprintf("%s %s:$%04X", tok.Name, ext, ref.SubCode)
		}
	}
	return tok.Text(names)
}

// ListFile decodes the program in fname and lists it to w.
// Whatever decoded before an error is still listed.
func ListFile(w io.Writer, fname string, names amostoken.ExtensionNamer, log zerolog.Logger) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	prog, perr := afile.Parse(f, afile.WithLogger(log))
	if prog != nil {
		if err := List(w, prog, names); err != nil {
			return err
		}
	}

	if perr != nil {
		log.Error().Err(perr).Str("file", fname).Msg("decode failed")
	}
	return perr
}
