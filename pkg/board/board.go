package board

import (
	"fmt"

	"github.com/matzehuels/seqboard/pkg/errors"
)

// CornerMarker labels the four free corners of a Sequence board.
// Cells equal to it are never rewritten.
const CornerMarker = "F"

// Row is an ordered sequence of cell labels.
type Row []string

// Board is an ordered sequence of rows. Rows may differ in length.
type Board []Row

// Dims returns the number of rows and the length of the longest row.
func (b Board) Dims() (rows, cols int) {
	for _, r := range b {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return len(b), cols
}

// Clone returns a deep copy of b that shares no storage with it.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, r := range b {
		out[i] = append(Row(nil), r...)
		if r != nil && out[i] == nil {
			out[i] = Row{}
		}
	}
	return out
}

// FromValues converts untyped decoded data into a Board.
// Every cell must be a string; the first non-string cell produces an
// INVALID_CELL error identifying its position.
func FromValues(rows [][]any) (Board, error) {
	b := make(Board, len(rows))
	for i, row := range rows {
		out := make(Row, len(row))
		for j, v := range row {
			s, ok := v.(string)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidCell,
					"non-text cell encountered at row %d, column %d: %s", i, j, describe(v))
			}
			out[j] = s
		}
		b[i] = out
	}
	return b, nil
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T(%v)", v, v)
}
