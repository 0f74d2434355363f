// Package parallel runs independent units of work on goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum goroutines running at once; <= 0 means one per task.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// Run executes every task and returns the error of the lowest-indexed task
// that failed, or nil.
//
// Sequential execution stops at the first failure. Parallel execution waits
// for all tasks, so the reported error does not depend on scheduling.
func Run(tasks []func() error, cfg Config) error {
	if !cfg.Enabled || len(tasks) < 2 {
		for _, task := range tasks {
			if err := task(); err != nil {
				return err
			}
		}
		return nil
	}

	workers := cfg.NumWorkers
	if workers <= 0 || workers > len(tasks) {
		workers = len(tasks)
	}

	errs := make([]error, len(tasks))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = task()
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
