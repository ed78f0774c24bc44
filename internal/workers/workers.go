// Package workers provides the chunked goroutine fan-out used by the
// simulation step's data-parallel phases.
//
// Grounded in compute.CPUBackend.nbodyParallel's worker-chunking and
// dynamo.ParallelFor: both split a particle-indexed range into
// per-worker contiguous chunks so each goroutine writes only to its own
// output region, with no shared mutable state and therefore no locking
// inside the hot loop.
package workers

import (
	"runtime"
	"sync"
)

// ForEachParticle splits [0, n) into up to runtime.NumCPU() contiguous
// chunks and runs fn over each chunk concurrently, waiting for all of them
// to finish before returning. For n below minChunk, fn runs once, inline,
// on the calling goroutine — not worth spawning workers for.
func ForEachParticle(n, minChunk int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if n <= minChunk {
		fn(0, n)
		return
	}

	workerCount := runtime.NumCPU()
	if n/minChunk < workerCount {
		workerCount = n / minChunk
	}
	if workerCount < 1 {
		workerCount = 1
	}

	chunkSize := (n + workerCount - 1) / workerCount

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
