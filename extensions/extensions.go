package extensions

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// key identifies one instruction of one extension
type key struct {
	index uint8
	sub   uint16
}

// Table maps extension tokens to instruction names.
// It satisfies amostoken.ExtensionNamer.
type Table struct {
	names map[key]string
	slots map[uint8]string // extension names by slot
}

type fileExtension struct {
	Index  int               `toml:"index"`
	Name   string            `toml:"name"`
	Tokens map[string]string `toml:"tokens"`
}

type fileConfig struct {
	Extensions []fileExtension `toml:"extension"`
}

// New returns an empty table, every lookup misses
func New() *Table {
	return &Table{names: make(map[key]string), slots: make(map[uint8]string)}
}

// Add registers the name for one extension token
func (tb *Table) Add(index uint8, sub uint16, name string) {
	tb.names[key{index: index, sub: sub}] = name
}

// ExtensionName looks up an extension token
func (tb *Table) ExtensionName(index uint8, sub uint16) (string, bool) {
	nm, ok := tb.names[key{index: index, sub: sub}]
	return nm, ok
}

// Slot gives the name of the extension loaded in a slot
func (tb *Table) Slot(index uint8) (string, bool) {
	nm, ok := tb.slots[index]
	return nm, ok
}

// LoadFile reads a table from a TOML file
func LoadFile(path string) (*Table, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load extension table: %w", err)
	}
	return build(raw)
}

// Load reads a table from TOML text
func Load(r io.Reader) (*Table, error) {
	var raw fileConfig
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("load extension table: %w", err)
	}
	return build(raw)
}

func build(raw fileConfig) (*Table, error) {
	tb := New()

	for _, ext := range raw.Extensions {
		if ext.Index < 0 || ext.Index > 255 {
			return nil, fmt.Errorf("extension %q: slot %d out of range", ext.Name, ext.Index)
		}
		slot := uint8(ext.Index)
		if len(ext.Name) > 0 {
			tb.slots[slot] = ext.Name
		}

		for code, name := range ext.Tokens {
			sub, err := strconv.ParseUint(strings.TrimSpace(code), 0, 16)
			if err != nil {
				return nil, fmt.Errorf("extension %q: token code %q: %w", ext.Name, code, err)
			}
			tb.Add(slot, uint16(sub), strings.TrimSpace(name))
		}
	}
	return tb, nil
}
