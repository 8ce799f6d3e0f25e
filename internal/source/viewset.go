package source

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ddc002021/hackathon/internal/present"
)

// ViewSet holds one snapshot per presentation view, prefetched so view
// switches swap data without a round trip.
type ViewSet map[present.View]present.Snapshot

// FetchViews retrieves the snapshots for the given views concurrently.
// The per-view derivations downstream are pure, so fetch order does
// not matter; any single failure aborts the whole prefetch.
func FetchViews(ctx context.Context, client Client, views ...present.View) (ViewSet, error) {
	set := make(ViewSet, len(views))
	g, ctx := errgroup.WithContext(ctx)

	results := make([]present.Snapshot, len(views))
	for i, view := range views {
		i, view := i, view
		g.Go(func() error {
			snap, err := client.FetchGraph(ctx, view)
			if err != nil {
				return err
			}
			results[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, view := range views {
		set[view] = results[i]
	}
	return set, nil
}
