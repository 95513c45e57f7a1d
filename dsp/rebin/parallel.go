package rebin

import "golang.org/x/sync/errgroup"

// forChunks calls fn over [0, n) split into contiguous ranges, running at most
// workers ranges at a time. Ranges are disjoint, so fn may write output slots
// without locking.
func forChunks(n, workers int, fn func(lo, hi int)) {
	if workers <= 1 || n < 2 {
		fn(0, n)
		return
	}

	workers = min(workers, n)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
