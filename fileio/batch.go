package fileio

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one batch item. Exactly one of Output and Err is
// meaningful.
type Result struct {
	Path   string
	Output string
	Err    error
}

// Process reads every path with enc and applies fn, running at most limit
// items at a time. Items are independent: a failure is recorded in its
// Result and the rest of the batch still runs. Results come back in input
// order. Cancelling ctx stops unstarted items, which report the context
// error.
func Process(ctx context.Context, paths []string, enc Encoding, limit int, fn func(Document) (string, error)) []Result {
	if limit <= 0 {
		limit = 1
	}
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		results[i].Path = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			doc, err := ReadText(path, enc)
			if err != nil {
				results[i].Err = err
				return nil
			}
			out, err := fn(doc)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Output = out
			return nil
		})
	}
	_ = g.Wait()
	return results
}
