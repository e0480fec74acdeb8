package board

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/seqboard/pkg/errors"
)

func TestDims(t *testing.T) {
	tests := []struct {
		name string
		b    Board
		rows int
		cols int
	}{
		{"empty", nil, 0, 0},
		{"square", Board{{"a", "b"}, {"c", "d"}}, 2, 2},
		{"jagged", Board{{"a"}, {"b", "c", "d"}, {}}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, cols := tt.b.Dims()
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("Dims() = (%d, %d), want (%d, %d)", rows, cols, tt.rows, tt.cols)
			}
		})
	}
}

func TestClone(t *testing.T) {
	b := Board{{"F", "10S"}, {}}
	c := b.Clone()

	if diff := cmp.Diff(b, c); diff != "" {
		t.Fatalf("Clone() mismatch (-want +got):\n%s", diff)
	}

	c[0][1] = "changed"
	if b[0][1] != "10S" {
		t.Error("Clone() shares storage with the original")
	}
}

func TestFromValues(t *testing.T) {
	got, err := FromValues([][]any{{"F", "10S"}, {"2C"}})
	if err != nil {
		t.Fatalf("FromValues() error = %v", err)
	}
	want := Board{{"F", "10S"}, {"2C"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromValuesInvalidCell(t *testing.T) {
	tests := []struct {
		name string
		rows [][]any
		pos  string
	}{
		{"integer", [][]any{{"F", int64(10)}}, "row 0, column 1"},
		{"nil", [][]any{{"F"}, {"2C", "3C", nil}}, "row 1, column 2"},
		{"nested", [][]any{{[]any{"QS"}}}, "row 0, column 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromValues(tt.rows)
			if !errors.Is(err, errors.ErrCodeInvalidCell) {
				t.Fatalf("FromValues() error = %v, want INVALID_CELL", err)
			}
			if !strings.Contains(err.Error(), tt.pos) {
				t.Errorf("error %q does not name position %q", err, tt.pos)
			}
		})
	}
}
