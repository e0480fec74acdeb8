// Package layout decodes board layouts and their suit mappings from TOML.
//
// The standard Sequence layout is compiled into the binary; [Default] returns
// it without touching the filesystem. Mapping entries are an array of tables
// so their order survives decoding:
//
//	name = "sequence"
//	cells = [["F", "10S"], ["2C", "F"]]
//
//	[[replacement]]
//	key = "S"
//	value = "♠"
package layout

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/seqboard/pkg/board"
	"github.com/matzehuels/seqboard/pkg/errors"
)

//go:embed sequence.toml
var sequenceTOML string

// Layout is a named board together with the mapping used to render it.
type Layout struct {
	Name         string
	Board        board.Board
	Replacements board.Replacements
}

type layoutFile struct {
	Name        string            `toml:"name"`
	Cells       [][]any           `toml:"cells"`
	Replacement []replacementFile `toml:"replacement"`
}

type replacementFile struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Default returns the standard 10x10 Sequence layout with the
// clubs/hearts/spades/diamonds mapping.
func Default() (*Layout, error) {
	return Parse(sequenceTOML)
}

// Parse decodes a layout document. Unknown keys, non-text cells and
// replacements with an empty key are rejected.
func Parse(doc string) (*Layout, error) {
	var lf layoutFile
	md, err := toml.Decode(doc, &lf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout keys: %s", strings.Join(keys, ", "))
	}

	b, err := board.FromValues(lf.Cells)
	if err != nil {
		return nil, err
	}

	rs := make(board.Replacements, 0, len(lf.Replacement))
	for i, r := range lf.Replacement {
		if err := errors.ValidateReplacementKey(r.Key); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "replacement %d", i)
		}
		rs = append(rs, board.Replacement{Key: r.Key, Value: r.Value})
	}

	return &Layout{Name: lf.Name, Board: b, Replacements: rs}, nil
}
