package gradeinput

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

//
// ParseColumn parses every value of a gradebook column with the
// same options, spread over the given number of workers
// (GOMAXPROCS when workers < 1).
// Entries are returned in the order of values; the only error is
// the context's, if it ends before the column is done.
//
func ParseColumn(ctx context.Context, values []string, opts Options, workers int) ([]GradeEntry, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(values) {
		workers = len(values)
	}

	entries := make([]GradeEntry, len(values))
	g, ctx := errgroup.WithContext(ctx)

	next := make(chan int)
	g.Go(func() error {
		defer close(next)
		for i := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range next {
				entries[i] = ParseTextValue(values[i], opts)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
