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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// doubled fills results[i] = 2*i for each range it is handed.
func doubled(results []int) func(start, end int) {
	return func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	}
}

func checkDoubled(t *testing.T, results []int) {
	t.Helper()
	for i, r := range results {
		if r != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, r, i*2)
		}
	}
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()
	assert.Equal(t, 4, pool.NumWorkers())

	def := New(0)
	defer def.Close()
	assert.Equal(t, runtime.GOMAXPROCS(0), def.NumWorkers())
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 7, 100, 101} {
		results := make([]int, n)
		pool.ParallelFor(n, doubled(results))
		checkDoubled(t, results)
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []int{0, 1, 10, 33, 1000} {
		results := make([]int, 100)
		var calls atomic.Int32
		pool.ParallelForBatched(len(results), batch, func(start, end int) {
			calls.Add(1)
			doubled(results)(start, end)
		})
		checkDoubled(t, results)
		assert.Positive(t, calls.Load())
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n smaller than the number of workers.
	n := 3
	var count atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})
	assert.Equal(t, int32(n), count.Load())
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForBatched(0, 4, func(start, end int) { called = true })
	assert.False(t, called, "empty loops should not call fn")
}

func TestSequentialFallback(t *testing.T) {
	closed := New(4)
	closed.Close()
	closed.Close() // idempotent

	for name, pool := range map[string]*Pool{"closed": closed, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			results := make([]int, 100)
			var calls int
			pool.ParallelFor(len(results), func(start, end int) {
				calls++
				doubled(results)(start, end)
			})
			checkDoubled(t, results)
			assert.Equal(t, 1, calls)
		})
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelForBatched(n, 10, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
