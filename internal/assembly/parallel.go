package assembly

import "sync"

// DefaultWorkers is the worker count used for per-particle streams.
const DefaultWorkers = 4

// minChunk keeps small populations on the calling goroutine.
const minChunk = 256

// ParallelFor executes fn over [0, n) split across at most workers goroutines
// and returns once every chunk is done.
func ParallelFor(n, minChunk, workers int, fn func(start, end int)) {
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
