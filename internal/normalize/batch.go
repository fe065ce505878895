package normalize

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"schema-normalizer/internal/diagnostic"
)

// Batch is the outcome of normalizing several roots.
type Batch struct {
	// Roots lists the requested roots, in input order.
	Roots []string
	// Results is parallel to Roots; failed roots have a nil entry.
	Results []*Result
	// Aliases merges the indices of every successful root.
	Aliases *AliasIndex
	// Failures maps a failed root to its error.
	Failures map[string]error
	// Diagnostics reports the failures per root and the warnings of the
	// successful runs.
	Diagnostics diagnostic.Diagnostics
}

// Err returns the combined failures, or nil if every root succeeded.
func (b *Batch) Err() error {
	return b.Diagnostics.Error()
}

// NormalizeAll normalizes roots concurrently. A root's failure does not stop
// the others. Indices are merged in input order; a root whose index
// conflicts with the roots merged before it is reported as failed.
//
// The returned error is non-nil only when ctx is done before all runs start.
func (n *Normalizer) NormalizeAll(ctx context.Context, roots []string) (*Batch, error) {
	results := make([]*Result, len(roots))
	errs := make([]error, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	if n.config.MaxConcurrency > 0 {
		g.SetLimit(n.config.MaxConcurrency)
	}

	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = n.Normalize(root)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := &Batch{
		Roots:    roots,
		Results:  results,
		Aliases:  NewAliasIndex(),
		Failures: map[string]error{},
	}

	for i, root := range roots {
		err := errs[i]
		if err == nil {
			err = b.Aliases.Merge(results[i].Aliases)
		}

		if err != nil {
			b.Results[i] = nil
			b.Failures[root] = err
			b.Diagnostics.AddFailure(root, err)

			continue
		}

		b.Diagnostics.Merge(results[i].Diagnostics)
		b.Diagnostics.AddInfo("normalized",
			"normalized "+root, root, "")
	}

	n.config.Logger.Debug("batch completed",
		slog.Int("roots", len(roots)),
		slog.Int("failures", len(b.Failures)),
		slog.Int("aliases", b.Aliases.Len()),
	)

	return b, nil
}
