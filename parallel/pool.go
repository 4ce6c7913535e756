package parallel

import (
	"runtime"
	"sync"
)

// Pool fans queued jobs out over a fixed set of worker goroutines. A pool
// started with a single worker runs jobs inline on the caller's goroutine,
// so the serial case needs no channels at all.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan func()
	stop func()
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	if numWorkers == 1 {
		return pool
	}

	pool.jobs = make(chan func(), numWorkers)
	pool.stop = sync.OnceFunc(func() { close(pool.jobs) })

	for i := 0; i < numWorkers; i++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			for f := range pool.jobs {
				f()
			}
		}()
	}

	return pool
}

func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait stops accepting new jobs and blocks until queued ones finish. Safe
// to call more than once.
func (p *Pool) Wait() {
	if p.jobs == nil {
		return
	}
	p.stop()
	p.wg.Wait()
}
