// Package pkg provides the libraries behind seqboard.
//
// # Overview
//
//  1. [board] - Board and Replacements types, the suit-glyph transform
//  2. [layout] - Embedded TOML layouts decoded into boards and mappings
//  3. [errors] - Coded errors shared by the CLI and libraries
//  4. [observability] - Hooks around transforms
//  5. [buildinfo] - Version information injected at build time
//
// # Data flow
//
//	layout.Default()      (embedded sequence.toml)
//	         ↓
//	board.Transform(b, rs)
//	         ↓
//	board.Write / grid table
//
// # Quick Start
//
//	l, err := layout.Default()
//	if err != nil {
//	    return err
//	}
//	out := board.Transform(l.Board, l.Replacements)
//	return board.Write(os.Stdout, out)
//
// [board]: https://pkg.go.dev/github.com/matzehuels/seqboard/pkg/board
// [layout]: https://pkg.go.dev/github.com/matzehuels/seqboard/pkg/layout
// [errors]: https://pkg.go.dev/github.com/matzehuels/seqboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/seqboard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/seqboard/pkg/buildinfo
package pkg
