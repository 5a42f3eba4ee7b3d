// Copyright 2025 The go-crlibm Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index ranges across a fixed set of goroutines that
// live as long as the Pool. The verification runner keeps one Pool per run
// and pushes every function's sample set through it.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Batches(ctx, len(samples), 64, func(start, end int) error {
//	    return check(samples[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers shared by many parallel loops.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending tasks finish. Loops started after
// Close run on the calling goroutine. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut runs body on up to workers pool goroutines and waits for all of
// them. It runs body inline when only one worker would be used or the pool
// is closed.
func (p *Pool) fanOut(workers int, body func()) {
	if workers <= 1 || p.closed.Load() {
		body()
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{run: body, done: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn once per contiguous chunk of [0, n), one chunk per
// worker, and blocks until all chunks are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers
	var next atomic.Int64
	p.fanOut(workers, func() {
		for {
			start := int(next.Add(1)-1) * chunk
			if start >= n {
				return
			}
			fn(start, min(start+chunk, n))
		}
	})
}

// Batches calls fn on batches of batchSize consecutive indices of [0, n).
// Workers grab batches from a shared counter, so uneven batch costs balance
// out. Batches blocks until every batch has run or been skipped.
//
// Once fn returns an error or ctx is done, no further batches start, and
// Batches returns the first error (or ctx.Err()).
func (p *Pool) Batches(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	var (
		next     atomic.Int64
		stop     atomic.Bool
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}

	batches := (n + batchSize - 1) / batchSize
	p.fanOut(min(p.numWorkers, batches), func() {
		for !stop.Load() {
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			start := int(next.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			if err := fn(start, min(start+batchSize, n)); err != nil {
				fail(err)
				return
			}
		}
	})
	return firstErr
}
