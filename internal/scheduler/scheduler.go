// Package scheduler fans a render out across a worker pool: the full
// grid is partitioned into one disjoint rectangle per worker, each
// worker evaluates its own rectangle independently, and the pool joins
// unconditionally before returning.
package scheduler

import (
	"runtime"
	"sync"

	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/rect"
)

// WorkerCount returns the number of workers Run will use for a grid of
// the given cell count, when the caller passes requested<=0 to mean
// "use GOMAXPROCS". It never exceeds cellCount, since a worker with no
// cells to evaluate does nothing useful.
func WorkerCount(requested, cellCount int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > cellCount {
		n = cellCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Run partitions full into WorkerCount(workers, full.Area()) disjoint
// rectangles and calls work once per rectangle, concurrently. It joins
// every worker unconditionally before returning. If any worker's work
// returns an error, Run returns the first such error (by partition
// index), wrapped as fracerr.WorkerFailure identifying the failing
// tile; all other workers still run to completion.
func Run(full rect.Rectangle, workers int, work func(tile rect.Rectangle) error) error {
	n := WorkerCount(workers, full.Area())
	tiles, err := full.CutInN(n)
	if err != nil {
		return fracerr.Newf(fracerr.InvalidArgument, "scheduler.Run", "cannot partition render rectangle into %d tiles: %v", n, err)
	}

	errs := make([]error, len(tiles))
	var wg sync.WaitGroup
	for i, tile := range tiles {
		wg.Add(1)
		go func(i int, tile rect.Rectangle) {
			defer wg.Done()
			errs[i] = work(tile)
		}(i, tile)
	}
	wg.Wait()

	for i, e := range errs {
		if e != nil {
			tile := tiles[i]
			return fracerr.Newf(fracerr.WorkerFailure, "scheduler.Run",
				"worker for tile (%d,%d)-(%d,%d) failed: %v", tile.X1, tile.Y1, tile.X2, tile.Y2, e)
		}
	}
	return nil
}
