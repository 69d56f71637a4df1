package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fracgo/fracgo/fracerr"
	"github.com/fracgo/fracgo/internal/rect"
)

func TestWorkerCount_CappedByCellCount(t *testing.T) {
	if got := WorkerCount(8, 3); got != 3 {
		t.Errorf("WorkerCount(8,3) = %d, want 3", got)
	}
	if got := WorkerCount(2, 100); got != 2 {
		t.Errorf("WorkerCount(2,100) = %d, want 2", got)
	}
	if got := WorkerCount(0, 100); got < 1 {
		t.Errorf("WorkerCount(0,100) = %d, want >=1", got)
	}
}

func TestRun_CoversEveryCellExactlyOnce(t *testing.T) {
	full := rect.New(0, 0, 19, 19)
	var mu sync.Mutex
	seen := make(map[[2]int]int)

	err := Run(full, 5, func(tile rect.Rectangle) error {
		for y := tile.Y1; y <= tile.Y2; y++ {
			for x := tile.X1; x <= tile.X2; x++ {
				mu.Lock()
				seen[[2]int{x, y}]++
				mu.Unlock()
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := len(seen); got != full.Area() {
		t.Fatalf("covered %d cells, want %d", got, full.Area())
	}
	for k, v := range seen {
		if v != 1 {
			t.Fatalf("cell %v covered %d times, want 1", k, v)
		}
	}
}

func TestRun_AllTilesStillRunOnFailure(t *testing.T) {
	full := rect.New(0, 0, 9, 9)
	var ran atomic.Int32
	err := Run(full, 4, func(tile rect.Rectangle) error {
		ran.Add(1)
		if tile.X1 == 0 && tile.Y1 == 0 {
			return errors.New("boom")
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !fracerr.Is(err, fracerr.WorkerFailure) {
		t.Errorf("error kind = %v, want WorkerFailure", err)
	}
	if int(ran.Load()) != 4 {
		t.Errorf("ran %d workers, want all 4 to have run", ran.Load())
	}
}
