package search

import (
	"context"
	"log"
	"sync"
)

// source is one independent search backend
type source struct {
	name  string
	fetch func(ctx context.Context) []SearchResult
}

type sourceResult struct {
	index   int
	results []SearchResult
}

// gather runs every source concurrently and returns their results in source
// order. A source that panics contributes nothing and does not affect the
// others.
func gather(ctx context.Context, sources []source, logger *log.Logger) [][]SearchResult {
	if len(sources) == 0 {
		return nil
	}

	results := make(chan sourceResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Printf("%s search panicked: %v", src.name, r)
					results <- sourceResult{index: i}
				}
			}()
			results <- sourceResult{index: i, results: src.fetch(ctx)}
		}(i, src)
	}

	// Wait for all workers to finish and close results channel
	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([][]SearchResult, len(sources))
	for r := range results {
		ordered[r.index] = r.results
	}
	return ordered
}
