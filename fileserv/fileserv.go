package fileserv

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/navionguy/amoslist/afile"
	"github.com/navionguy/amoslist/amostoken"
	"github.com/navionguy/amoslist/amostypes"
	"github.com/navionguy/amoslist/cli"
	"github.com/navionguy/amoslist/filelist"
	"github.com/rs/zerolog"
)

// fileSource serves decoded programs out of one directory tree
type fileSource struct {
	src   fs.FS
	names amostoken.ExtensionNamer
	log   zerolog.Logger
}

// jsonToken is how a token goes out over the wire
type jsonToken struct {
	Code   string `json:"code"`
	Name   string `json:"name,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Value  string `json:"value,omitempty"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

type jsonLine struct {
	Number int         `json:"line"`
	Indent int         `json:"indent"`
	Tokens []jsonToken `json:"tokens"`
}

type jsonProgram struct {
	Version string     `json:"version"`
	Lines   []jsonLine `json:"lines"`
	Banks   int        `json:"banks"`
	Error   string     `json:"error,omitempty"`
}

// NewRouter builds a router with all the program routes on it
func NewRouter(src fs.FS, names amostoken.ExtensionNamer, log zerolog.Logger) *mux.Router {
	rtr := mux.NewRouter()
	WrapFileSources(rtr, src, names, log)
	return rtr
}

// WrapFileSources adds the routes that list and decode programs.
//
//	GET /programs                   programs and directories at the top
//	GET /programs/{dir}             same for a sub directory
//	GET /programs/{file}/tokens     the decoded program as JSON
//	GET /programs/{file}/listing    a text dump of the decoded program
func WrapFileSources(rtr *mux.Router, src fs.FS, names amostoken.ExtensionNamer, log zerolog.Logger) {
	fsrc := &fileSource{src: src, names: names, log: log}

	rtr.HandleFunc("/programs", fsrc.sendDirectory).Methods(http.MethodGet).Name("programs")
	rtr.HandleFunc("/programs/{path:.+}/tokens", fsrc.sendTokens).Methods(http.MethodGet).Name("tokens")
	rtr.HandleFunc("/programs/{path:.+}/listing", fsrc.sendListing).Methods(http.MethodGet).Name("listing")
	rtr.HandleFunc("/programs/{path:.+}", fsrc.sendDirectory).Methods(http.MethodGet).Name("directory")
}

// sendDirectory sends the programs and sub directories as JSON
// he does block any that start with '.'
func (fsrc *fileSource) sendDirectory(w http.ResponseWriter, r *http.Request) {
	dir := strings.Trim(mux.Vars(r)["path"], "/")
	if len(dir) == 0 {
		dir = "."
	}

	if containsDotFile(dir) || !fs.ValidPath(dir) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	fl := filelist.NewFileList()
	if err := fl.Build(fsrc.src, dir); err != nil {
		fsrc.log.Debug().Err(err).Str("dir", dir).Msg("directory read failed")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(fl.JSON())
}

// sendTokens sends the decoded program, when decoding fails
// part way the lines done so far go out with the error
func (fsrc *fileSource) sendTokens(w http.ResponseWriter, r *http.Request) {
	prog, status, perr := fsrc.decode(mux.Vars(r)["path"])
	if prog == nil {
		w.WriteHeader(status)
		return
	}

	out := fsrc.toJSON(prog)
	if perr != nil {
		out.Error = perr.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(out)
}

// sendListing sends the text dump of the program
func (fsrc *fileSource) sendListing(w http.ResponseWriter, r *http.Request) {
	prog, status, perr := fsrc.decode(mux.Vars(r)["path"])
	if prog == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	cli.List(w, prog, fsrc.names)
	if perr != nil {
		w.Write([]byte("; " + perr.Error() + "\n"))
	}
}

// decode opens and decodes one program.  A nil program means
// there was nothing worth sending, status says why.
func (fsrc *fileSource) decode(name string) (*afile.Program, int, error) {
	name = strings.Trim(name, "/")

	if containsDotFile(name) || !fs.ValidPath(name) {
		return nil, http.StatusForbidden, nil
	}

	if !filelist.IsProgram(name) {
		return nil, http.StatusNotFound, nil
	}

	hfile, err := fsrc.src.Open(name)
	if err != nil {
		return nil, http.StatusNotFound, err
	}
	defer hfile.Close()

	prog, err := afile.Parse(hfile, afile.WithLogger(fsrc.log))
	if err != nil {
		fsrc.log.Warn().Err(err).Str("file", name).Msg("decode failed")
	}

	switch {
	case prog == nil:
		return nil, http.StatusUnprocessableEntity, err
	case err != nil:
		return prog, http.StatusUnprocessableEntity, err
	}

	fsrc.log.Debug().Str("file", name).Int("lines", len(prog.Lines)).Msg("decoded")
	return prog, http.StatusOK, nil
}

func (fsrc *fileSource) toJSON(prog *afile.Program) jsonProgram {
	out := jsonProgram{Version: prog.Version, Lines: []jsonLine{}, Banks: len(prog.Banks)}

	for _, ln := range prog.Lines {
		jl := jsonLine{Number: ln.Number, Indent: ln.Indent, Tokens: []jsonToken{}}
		for _, tok := range ln.Tokens {
			jl.Tokens = append(jl.Tokens, fsrc.tokenJSON(tok))
		}
		out.Lines = append(out.Lines, jl)
	}
	return out
}

func (fsrc *fileSource) tokenJSON(tok amostoken.Token) jsonToken {
	jt := jsonToken{
		Code:   fmt.Sprintf("$%04X", uint16(tok.Code)),
		Name:   tok.Name,
		Offset: tok.Offset,
		Size:   tok.BytesConsumed,
	}

	if tok.Value == nil {
		return jt
	}

	jt.Kind = tok.Value.Kind().String()
	jt.Value = tok.Value.String()

	if ref, ok := tok.Value.(amostypes.ExtRef); ok && fsrc.names != nil {
		if nm, ok := fsrc.names.ExtensionName(ref.Index, ref.SubCode); ok {
			jt.Value = nm
		}
	}
	return jt
}

// containsDotFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes.
func containsDotFile(name string) bool {
	if name == "." {
		return false
	}

	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
