// Package parallel splits row-wise matrix work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how rows are split across workers.
type Config struct {
	Workers  int // Maximum number of goroutines.
	MinChunk int // Fewer rows than this per worker run sequentially.
}

// DefaultConfig uses one worker per CPU. Widget-sized tables (a handful of
// tokens) stay on the calling goroutine.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		MinChunk: 64,
	}
}

// Rows calls fn(i) for every i in [0, n). Each call must only touch row i.
//
// Rows returns after every call has finished.
func Rows(n int, fn func(i int), cfg Config) {
	if cfg.Workers <= 1 || n < 2*cfg.MinChunk {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
