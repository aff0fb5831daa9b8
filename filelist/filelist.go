package filelist

import (
	"encoding/json"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ProgramExt is the extension saved programs carry
const ProgramExt = ".amos"

// dirEntry holds information about a program or sub directory
type dirEntry struct {
	Name   string `json:"name"`
	Subdir bool   `json:"isdir"`
	Size   int64  `json:"size,omitempty"`
}

// FileList holds the array of entries
type FileList struct {
	Files []dirEntry
}

type fileSorter struct {
	list *FileList
}

// NewFileList builds a new, empty list
func NewFileList() *FileList {
	return &FileList{}
}

// IsProgram reports whether name looks like a saved program
func IsProgram(name string) bool {
	return strings.EqualFold(path.Ext(name), ProgramExt)
}

// JSON returns the file list formatted as JSON
func (fl *FileList) JSON() []byte {
	if len(fl.Files) == 0 {
		return []byte("[]")
	}
	res, _ := json.Marshal(fl.Files)
	return res
}

// AddFile adds a directory entry to the list if it is
// a program or a directory, anything else is ignored
func (fl *FileList) AddFile(file fs.FileInfo) {
	if strings.HasPrefix(file.Name(), ".") {
		return
	}

	switch {
	case file.IsDir():
		fl.Files = append(fl.Files, dirEntry{Name: file.Name(), Subdir: true})
	case IsProgram(file.Name()):
		fl.Files = append(fl.Files, dirEntry{Name: file.Name(), Size: file.Size()})
	}
}

// Build fills the list from dir of fsys and sorts it
func (fl *FileList) Build(fsys fs.FS, dir string) error {
	fl.Files = fl.Files[:0]

	ents, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	for _, ent := range ents {
		info, err := ent.Info()
		if err != nil {
			continue
		}
		fl.AddFile(info)
	}

	sort.Sort(&fileSorter{list: fl})
	return nil
}

// Len is a part of the sort.Interface
// returns the number file entries
func (fs *fileSorter) Len() int {
	return len(fs.list.Files)
}

// Swap is part of sort.Interface
// change two elements
func (fs *fileSorter) Swap(i, j int) {
	fs.list.Files[i], fs.list.Files[j] = fs.list.Files[j], fs.list.Files[i]
}

// Less puts directories first, then sorts by name
func (fs *fileSorter) Less(i, j int) bool {
	a, b := fs.list.Files[i], fs.list.Files[j]

	if a.Subdir != b.Subdir {
		return a.Subdir
	}

	return strings.Compare(a.Name, b.Name) == -1
}
