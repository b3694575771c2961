// Package parallel fans a bulk append out across a worker pool, the
// Go-native replacement for the original crate's rayon-based parallel
// ingest. Append is already safe for any number of concurrent callers, so
// this package adds nothing to List's synchronization -- it exists purely
// to amortize the fan-out bookkeeping, the way the teacher repo's config
// application bursts a fixed number of goroutines over a sync.WaitGroup
// rather than building a general worker-pool abstraction.
package parallel

import (
	"context"
	"fmt"
	"sync"

	"github.com/johnietre/snaplist"
)

// BulkAppend partitions values into workers contiguous shards and appends
// each shard from its own goroutine. It returns after every worker that
// had already started has finished appending the elements it claimed; if
// ctx is canceled, workers that have not yet started their shard skip it,
// and BulkAppend returns ctx.Err() wrapped once all in-flight shards have
// settled.
func BulkAppend[T any](ctx context.Context, l *snaplist.List[T], values []T, workers int) error {
	if workers < 1 {
		workers = 1
	}
	if len(values) == 0 {
		return nil
	}
	if workers > len(values) {
		workers = len(values)
	}

	shard := ShardSize(len(values), workers)
	var wg sync.WaitGroup
	for start := 0; start < len(values); start += shard {
		end := start + shard
		if end > len(values) {
			end = len(values)
		}
		select {
		case <-ctx.Done():
		default:
			wg.Add(1)
			go func(chunk []T) {
				defer wg.Done()
				for _, v := range chunk {
					l.Append(v)
				}
			}(values[start:end])
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("parallel: bulk append canceled: %w", err)
	}
	return nil
}

// ShardSize computes the per-worker chunk size BulkAppend uses to
// partition n values across workers goroutines, always returning at least
// 1 so a zero-sized or negative shard is never produced.
func ShardSize(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	if size < 1 {
		size = 1
	}
	return size
}
