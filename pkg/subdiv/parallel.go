package subdiv

import (
	"golang.org/x/sync/errgroup"
)

// task is one contiguous index range of a phase.
type task struct {
	n  int
	fn func(lo, hi int)
}

// parallel runs every task over [0, n) split into chunks on at most
// workers goroutines, and returns once all chunks are done. Chunks write
// disjoint outputs, so no locking is needed.
func parallel(workers, chunkMin int, tasks ...task) {
	total := 0
	for _, t := range tasks {
		total += t.n
	}
	if workers <= 1 || total <= chunkMin {
		for _, t := range tasks {
			t.fn(0, t.n)
		}
		return
	}

	chunk := (total + workers - 1) / workers
	if chunk < chunkMin {
		chunk = chunkMin
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, t := range tasks {
		for lo := 0; lo < t.n; lo += chunk {
			hi := min(lo+chunk, t.n)
			fn := t.fn
			g.Go(func() error {
				fn(lo, hi)
				return nil
			})
		}
	}
	_ = g.Wait()
}
