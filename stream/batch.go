package stream

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/juruen/tegaki/character"
	"github.com/juruen/tegaki/log"
)

// ReadAll reads every file in paths with at most workers parses in
// flight. The result is in the order of paths. The first error stops
// further files from being started and is returned.
func ReadAll(ctx context.Context, paths []string, opts Options, workers int64) ([]*character.Character, error) {
	if workers < 1 {
		workers = 1
	}

	result := make([]*character.Character, len(paths))

	var (
		mu       sync.Mutex
		firstErr error
	)
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	sem := semaphore.NewWeighted(workers)
	for i, path := range paths {
		err := ctx.Err()
		if err == nil {
			err = sem.Acquire(ctx, 1)
		}
		if err != nil {
			log.Trace.Printf("Failed to acquire semaphore: %v", err)
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		if failed() {
			sem.Release(1)
			break
		}
		go func(i int, path string) {
			defer sem.Release(1)
			c, err := ReadFile(path, opts)
			if err != nil {
				log.Warning.Printf("Can't read %s: %v", path, err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			result[i] = c
		}(i, path)
	}

	// Wait for all goroutines to finish
	if err := sem.Acquire(context.Background(), workers); err != nil {
		log.Trace.Printf("Failed to acquire semaphore: %v", err)
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}
