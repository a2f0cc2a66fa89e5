package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs background tasks (reservation notifications) off the request path.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue and waits for in-flight tasks to drain.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
