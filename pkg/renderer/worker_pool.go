package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Tile   *Tile
	Stats  RenderStats
}

// WorkerPool runs tile tasks on a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile with work and blocks until all are done.
// done is called on the calling goroutine once per tile, in completion order.
func (wp *WorkerPool) Run(tiles []*Tile, work func(*Tile) RenderStats, done func(TileResult)) {
	results := make(chan TileResult, len(tiles))

	go func() {
		var g errgroup.Group
		g.SetLimit(wp.numWorkers)
		for i, tile := range tiles {
			i, tile := i, tile
			g.Go(func() error {
				results <- TileResult{TaskID: i, Tile: tile, Stats: work(tile)}
				return nil
			})
		}
		_ = g.Wait() // tasks never fail
		close(results)
	}()

	for result := range results {
		if done != nil {
			done(result)
		}
	}
}
