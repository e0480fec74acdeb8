package board

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Transform returns a new board with replacements applied to every cell
// except corner markers. Neither b nor rs is modified.
func Transform(b Board, rs Replacements) Board {
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = transformRow(row, rs)
	}
	return out
}

// TransformConcurrent produces the same result as Transform, computing rows
// on at most workers goroutines. workers <= 0 means one goroutine per row.
// It returns ctx.Err() if ctx is cancelled before all rows are done.
func TransformConcurrent(ctx context.Context, b Board, rs Replacements, workers int) (Board, error) {
	out := make(Board, len(b))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, row := range b {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = transformRow(row, rs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func transformRow(row Row, rs Replacements) Row {
	out := make(Row, len(row))
	for j, cell := range row {
		if cell == CornerMarker {
			out[j] = cell
			continue
		}
		out[j] = rs.Apply(cell)
	}
	return out
}
