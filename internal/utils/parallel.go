package utils

import (
	"sync"
)

// WorkerPool runs queued tasks on a fixed number of goroutines. Bulk admin
// operations use it to fan out per-id work with bounded concurrency.
type WorkerPool struct {
	maxWorkers int
	taskChan   chan func()
	wg         sync.WaitGroup
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	pool := &WorkerPool{
		maxWorkers: maxWorkers,
		taskChan:   make(chan func(), maxWorkers*2),
	}
	for i := 0; i < maxWorkers; i++ {
		go pool.worker()
	}
	return pool
}

func (p *WorkerPool) worker() {
	for task := range p.taskChan {
		task()
		p.wg.Done()
	}
}

// AddTask queues a task; blocks when the queue is full.
func (p *WorkerPool) AddTask(task func()) {
	p.wg.Add(1)
	p.taskChan <- task
}

// Wait blocks until all queued tasks have completed.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

// Close stops the workers. The pool cannot be reused afterwards.
func (p *WorkerPool) Close() {
	close(p.taskChan)
}
