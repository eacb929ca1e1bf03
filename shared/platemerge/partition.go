package platemerge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DecomposeAll decomposes every partition independently. Rectangles never span two
// partitions. All partitions are validated before any is decomposed, so an error means
// no output at all. Partitions without marked cells map to an empty slice.
func DecomposeAll[K comparable, G Grid](parts map[K]G) (map[K][]Rect, error) {
	if err := validateAll(parts); err != nil {
		return nil, err
	}

	out := make(map[K][]Rect, len(parts))
	for key, g := range parts {
		out[key] = decompose(g)
	}
	return out, nil
}

// DecomposeAllParallel is DecomposeAll with partitions processed concurrently, at most
// limit at a time (limit <= 0 means no limit). Rows within a partition are still
// processed in order by a single goroutine. The grids must not be mutated until it
// returns.
func DecomposeAllParallel[K comparable, G Grid](ctx context.Context, parts map[K]G, limit int) (map[K][]Rect, error) {
	if err := validateAll(parts); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make(map[K][]Rect, len(parts))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for key, g := range parts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rects := decompose(g)

			mu.Lock()
			out[key] = rects
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func validateAll[K comparable, G Grid](parts map[K]G) error {
	for key, g := range parts {
		if err := validate(g); err != nil {
			return withPartition(key, err)
		}
	}
	return nil
}

func withPartition(key any, err error) error {
	var be *BoundsError
	if errors.As(err, &be) {
		tagged := *be
		tagged.Partition = key
		return &tagged
	}
	return fmt.Errorf("partition %v: %w", key, err)
}
