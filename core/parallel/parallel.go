// Package parallel provides the worker fan-out used by the parallel
// replication runner and by trainers with large prediction batches.
package parallel

import (
	"runtime"
	"sync"
)

// Partition splits items into at most workers contiguous ranges of nearly
// equal size. The split depends only on (items, workers), so callers that
// seed per-worker state by range index get reproducible results.
func Partition(items, workers int) [][2]int {
	if items <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items // No need for more workers than items
	}

	base, rem := items/workers, items%workers
	ranges := make([][2]int, 0, workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < rem {
			size++
		}
		ranges = append(ranges, [2]int{start, start + size})
		start += size
	}
	return ranges
}

// ForEachWorker runs fn once per range returned by Partition(items, workers),
// each in its own goroutine, and waits for all of them. worker is the index
// of the range.
func ForEachWorker(items, workers int, fn func(worker, start, end int)) {
	ranges := Partition(items, workers)
	if len(ranges) == 1 {
		fn(0, ranges[0][0], ranges[0][1])
		return
	}

	var wg sync.WaitGroup
	for w, r := range ranges {
		wg.Add(1)
		go func(worker, s, e int) {
			defer wg.Done()
			fn(worker, s, e)
		}(w, r[0], r[1])
	}
	wg.Wait()
}

// Parallelize divides items across the CPU cores and executes fn in parallel
// for each range (start, end).
func Parallelize(items int, fn func(start, end int)) {
	ForEachWorker(items, runtime.NumCPU(), func(_, start, end int) {
		fn(start, end)
	})
}

// ParallelizeWithThreshold performs parallelization only when the number of items exceeds the threshold
// If below threshold, normal sequential processing is performed
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		// Sequential processing when below threshold
		fn(0, items)
		return
	}

	// Parallel processing when above threshold
	Parallelize(items, fn)
}
