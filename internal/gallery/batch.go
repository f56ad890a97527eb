package gallery

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"cardgallery/internal/logging"
	"cardgallery/internal/services"
)

// BatchOptions configures RenderAll.
type BatchOptions struct {
	Kind    Kind
	Workers int
	Render  RenderOptions
	Logger  *slog.Logger
}

// Result is the outcome of one token in a batch. Err is set, and Entry is
// nil, when the token could not be parsed.
type Result struct {
	Index  int
	Token  string
	Entry  *Entry
	Output string
	Err    error
}

// RenderAll parses and renders tokens concurrently. Results are returned in
// input order regardless of completion order. A malformed token does not stop
// the batch; its Result carries the error. The returned error is non-nil only
// when ctx is cancelled before every token was processed.
func RenderAll(ctx context.Context, tokens []string, opts BatchOptions) ([]Result, error) {
	results := make([]Result, len(tokens))
	if len(tokens) == 0 {
		return results, ctx.Err()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := logging.NewComponentLogger(opts.Logger, "gallery")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, token := range tokens {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log := logging.WithContext(services.WithEntryIndex(gctx, i), logger)

			result := Result{Index: i, Token: token}
			entry, err := ParseEntry(opts.Kind, token)
			if err != nil {
				result.Err = err
				log.Debug("entry not rendered", logging.Error(err))
			} else {
				result.Entry = entry
				result.Output = entry.RenderWith(opts.Render)
				log.Debug("entry rendered", logging.String("output", result.Output))
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
