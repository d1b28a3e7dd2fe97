// Copyright 2025 go-ndarray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool spreads independent loop iterations over a fixed set
// of goroutines.
//
// Dispatchers that iterate over outer dimensions, such as strided1d, accept
// a Pool and hand it the outer loop: each iteration touches a disjoint part
// of the arrays, so iterations can run in any order.
//
// Example:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	sums, err := stats.Sum(x, strided1d.WithDims(-1), strided1d.WithPool(pool))
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-ndarray/nd"
)

// Pool is a persistent set of workers reused across loops.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS of them if
// numWorkers <= 0. They run until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once pending loops complete. Loops started after
// Close run on the calling goroutine. Close is idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn over [0, n) split into one contiguous range per
// worker, and blocks until every range is done. A nil or closed pool, or a
// loop too short to split, runs fn(0, n) on the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := p.workersFor(n)
	if workers <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- workItem{fn: func() { fn(start, end) }, barrier: &wg}
	}
	wg.Wait()
}

// ParallelForBatched calls fn over [0, n) in ranges of batchSize that
// workers claim as they become free. It suits loops whose iterations vary
// in cost.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	batches := (n + batchSize - 1) / batchSize
	workers := p.workersFor(batches)
	if workers <= 1 {
		fn(0, n)
		return
	}
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(next.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

func (p *Pool) workersFor(n int) int {
	if p == nil || p.closed.Load() {
		return 1
	}
	workers := min(p.numWorkers, n)
	if nd.DebugEnabled() {
		nd.Logger().Debug("workerpool loop", "n", n, "workers", workers)
	}
	return workers
}
