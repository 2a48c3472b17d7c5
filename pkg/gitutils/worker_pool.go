package gitutils

import (
	"context"
	"sync"
)

// StatusRequest asks for the status of the repository containing Dir.
type StatusRequest struct {
	Dir      string
	Callback func(*RepoStatus)
}

// StatusWorkerPool computes repository statuses off the UI goroutine.
// Callbacks run on a worker goroutine and never after Close returns.
type StatusWorkerPool struct {
	size  int
	queue chan StatusRequest
	ctx   context.Context
	stop  context.CancelFunc
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewStatusWorkerPool starts size workers; non-positive means 2.
func NewStatusWorkerPool(size int) *StatusWorkerPool {
	if size <= 0 {
		size = 2
	}
	ctx, stop := context.WithCancel(context.Background())
	p := &StatusWorkerPool{
		size:  size,
		queue: make(chan StatusRequest, 2*size),
		ctx:   ctx,
		stop:  stop,
	}
	p.wg.Add(size)
	for range size {
		go p.work()
	}
	return p
}

func (p *StatusWorkerPool) work() {
	defer p.wg.Done()
	for req := range p.queue {
		if p.ctx.Err() != nil {
			continue
		}
		status := GetRepoStatus(p.ctx, req.Dir)
		if req.Callback != nil && p.ctx.Err() == nil {
			req.Callback(status)
		}
	}
}

// Submit queues req without blocking. It reports false when the pool is
// closed or already busy with a full queue.
func (p *StatusWorkerPool) Submit(req StatusRequest) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.queue <- req:
		return true
	default:
		return false
	}
}

// Close drops pending requests and waits for running ones. Calling it again is a no-op.
func (p *StatusWorkerPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.stop()
	close(p.queue)
	p.mu.Unlock()
	p.wg.Wait()
}
