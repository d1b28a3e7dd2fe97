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

package loops

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
)

// Strategy is the traversal selected for a Request.
type Strategy uint8

const (
	StrategyScalar Strategy = iota
	StrategyEmpty
	StrategyStrided
	StrategyContiguous
	StrategyNested
	StrategyBlocked
	StrategyGeneric
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyEmpty:
		return "empty"
	case StrategyStrided:
		return "strided"
	case StrategyContiguous:
		return "contiguous"
	case StrategyNested:
		return "nested"
	case StrategyBlocked:
		return "blocked"
	case StrategyGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// maxArity is the largest number of views a Request visits together.
const maxArity = 3

// Request is a validated traversal over one to three views of equal shape.
// It holds no reference to the views' buffers and can be reused.
type Request struct {
	strategy Strategy
	arity    int
	order    nd.Order

	// Loop geometry for the selected strategy. shape and strides are in
	// loop order, innermost first.
	shape   []int
	strides [maxArity][]int
	offsets [maxArity]int
	bsize   int

	// Original layouts, for the generic strategy.
	layouts [maxArity]nd.Layout
}

// Prepare validates views and selects a traversal strategy. The views must
// have the same rank (else nd.ErrRankMismatch) and the same shape (else
// nd.ErrShapeMismatch). Elements are visited in an unspecified order.
func Prepare(views ...nd.Array) (*Request, error) {
	if err := validate(views); err != nil {
		return nil, err
	}
	r := newRequest(views, views[0].Order())
	r.selectStrategy(views, false)
	return r, nil
}

// PrepareOrdered is Prepare with the guarantee that elements are visited in
// logical order: row-major order visits the last dimension fastest.
func PrepareOrdered(order nd.Order, views ...nd.Array) (*Request, error) {
	if order != nd.RowMajor && order != nd.ColumnMajor {
		return nil, fmt.Errorf("%w: %s", nd.ErrInvalidOption, order)
	}
	if err := validate(views); err != nil {
		return nil, err
	}
	r := newRequest(views, order)
	r.selectStrategy(views, true)
	return r, nil
}

func validate(views []nd.Array) error {
	if len(views) == 0 || len(views) > maxArity {
		return fmt.Errorf("%w: %d views, want 1 to %d", nd.ErrInvalidOption, len(views), maxArity)
	}
	for i, v := range views {
		if v == nil {
			return fmt.Errorf("%w: view %d is nil", nd.ErrInvalidOption, i)
		}
	}
	first := views[0]
	for i, v := range views[1:] {
		if v.Rank() != first.Rank() {
			return fmt.Errorf("%w: view %d has rank %d, view 0 has rank %d", nd.ErrRankMismatch, i+1, v.Rank(), first.Rank())
		}
	}
	for i, v := range views[1:] {
		if !slices.Equal(v.Shape(), first.Shape()) {
			return fmt.Errorf("%w: view %d has shape %v, view 0 has shape %v", nd.ErrShapeMismatch, i+1, v.Shape(), first.Shape())
		}
	}
	return nil
}

func newRequest(views []nd.Array, order nd.Order) *Request {
	r := &Request{arity: len(views), order: order}
	for k, v := range views {
		r.layouts[k] = v.Layout().Clone()
	}
	return r
}

func (r *Request) selectStrategy(views []nd.Array, ordered bool) {
	shape := r.layouts[0].Shape
	rank := len(shape)
	switch {
	case rank == 0:
		r.strategy = StrategyScalar
		for k := range r.arity {
			r.offsets[k] = r.layouts[k].Offset
		}
	case nd.Numel(shape) == 0:
		r.strategy = StrategyEmpty
	case rank == 1:
		r.setStrided(0)
	case countNonSingleton(shape) <= 1:
		r.setStrided(slices.IndexFunc(shape, func(d int) bool { return d != 1 }))
	case r.contiguous(ordered):
		r.setContiguous()
	default:
		allOrdered := true
		for k := range r.arity {
			if nd.IterationOrder(r.layouts[k].Strides) == 0 {
				allOrdered = false
			}
		}
		switch {
		case rank <= MaxDims && (allOrdered || ordered || !nd.BlockedEnabled()):
			r.setNested()
		case rank <= MaxDims:
			r.setBlocked(views)
		default:
			r.strategy = StrategyGeneric
		}
	}
	if nd.DebugEnabled() {
		nd.Logger().Debug("loops: strategy selected",
			"strategy", r.strategy, "rank", rank, "arity", r.arity, "shape", shape, "ordered", ordered)
	}
}

func countNonSingleton(shape []int) int {
	n := 0
	for _, d := range shape {
		if d != 1 {
			n++
		}
	}
	return n
}

// setStrided loops over dimension dim only; every other dimension has size
// 1. dim is -1 when all dimensions have size 1.
func (r *Request) setStrided(dim int) {
	r.strategy = StrategyStrided
	r.shape = []int{1}
	if dim >= 0 {
		r.shape[0] = r.layouts[0].Shape[dim]
	}
	for k := range r.arity {
		l := r.layouts[k]
		s := 0
		if dim >= 0 {
			s = l.Strides[dim]
		}
		r.strides[k] = []int{s}
		r.offsets[k] = l.Offset
	}
}

// contiguous reports whether every view covers a dense block of its buffer
// with strides of one sign, the same declared order, and a nesting order
// they all share (the requested one when ordered).
func (r *Request) contiguous(ordered bool) bool {
	mask := nd.LayoutBoth
	for k := range r.arity {
		l := r.layouts[k]
		if nd.IterationOrder(l.Strides) == 0 || l.Order != r.layouts[0].Order {
			return false
		}
		if !nd.IsContiguous(l.Shape, l.Strides, l.Offset) {
			return false
		}
		mask &= nd.StridesToOrder(l.Strides)
	}
	if ordered {
		return mask.Has(r.order)
	}
	return mask != nd.LayoutNone
}

func (r *Request) setContiguous() {
	r.strategy = StrategyContiguous
	r.shape = []int{nd.Numel(r.layouts[0].Shape)}
	for k := range r.arity {
		l := r.layouts[k]
		lo, hi := nd.MinMaxViewBufferIndex(l.Shape, l.Strides, l.Offset)
		if nd.IterationOrder(l.Strides) < 0 {
			r.strides[k], r.offsets[k] = []int{-1}, hi
		} else {
			r.strides[k], r.offsets[k] = []int{1}, lo
		}
	}
}

// setNested nests the loops so the fastest dimension of r.order is
// innermost.
func (r *Request) setNested() {
	r.strategy = StrategyNested
	n := len(r.layouts[0].Shape)
	perm := make([]int, n)
	for i := range perm {
		if r.order == nd.ColumnMajor {
			perm[i] = i
		} else {
			perm[i] = n - 1 - i
		}
	}
	r.permute(perm)
}

func (r *Request) setBlocked(views []nd.Array) {
	r.strategy = StrategyBlocked
	strides := make([][]int, r.arity)
	dtypes := make([]nd.DType, r.arity)
	for k := range r.arity {
		strides[k] = r.layouts[k].Strides
		dtypes[k] = views[k].DType()
	}
	r.permute(nd.LoopOrder(r.layouts[0].Shape, strides...))
	r.bsize = nd.BlockSize(dtypes...)
}

func (r *Request) permute(perm []int) {
	r.shape = make([]int, len(perm))
	for i, p := range perm {
		r.shape[i] = r.layouts[0].Shape[p]
	}
	for k := range r.arity {
		l := r.layouts[k]
		s := make([]int, len(perm))
		for i, p := range perm {
			s[i] = l.Strides[p]
		}
		r.strides[k] = s
		r.offsets[k] = l.Offset
	}
}

// Strategy returns the selected traversal strategy.
func (r *Request) Strategy() Strategy { return r.strategy }

// Rank returns the rank of the views.
func (r *Request) Rank() int { return len(r.layouts[0].Shape) }

// Shape returns the common shape of the views.
func (r *Request) Shape() []int { return r.layouts[0].Shape }

// Arity returns the number of views.
func (r *Request) Arity() int { return r.arity }

// Fallback returns the same request forced onto the generic strategy.
// Every strategy visits the same index tuples as its fallback.
func (r *Request) Fallback() *Request {
	f := *r
	f.strategy = StrategyGeneric
	return &f
}

func (r *Request) mustArity(n int) {
	if r.arity != n {
		panic(fmt.Sprintf("loops: request prepared for %d views, visited with %d", r.arity, n))
	}
}

// Each1 calls fn with the buffer index of every element of a single view.
func (r *Request) Each1(fn func(ix int) bool) bool {
	r.mustArity(1)
	switch r.strategy {
	case StrategyScalar:
		return fn(r.offsets[0])
	case StrategyEmpty:
		return true
	case StrategyStrided, StrategyContiguous, StrategyNested:
		return nestedLoops1[len(r.shape)](r.shape, r.strides[0], r.offsets[0], fn)
	case StrategyBlocked:
		return blockedLoops1[len(r.shape)](r.shape, r.strides[0], r.offsets[0], r.bsize, fn)
	default:
		return r.generic1(fn)
	}
}

// Each2 calls fn with the buffer indices of matching elements of two views.
func (r *Request) Each2(fn func(ix, iy int) bool) bool {
	r.mustArity(2)
	switch r.strategy {
	case StrategyScalar:
		return fn(r.offsets[0], r.offsets[1])
	case StrategyEmpty:
		return true
	case StrategyStrided, StrategyContiguous, StrategyNested:
		return nestedLoops2[len(r.shape)](r.shape, r.strides[0], r.strides[1], r.offsets[0], r.offsets[1], fn)
	case StrategyBlocked:
		return blockedLoops2[len(r.shape)](r.shape, r.strides[0], r.strides[1], r.offsets[0], r.offsets[1], r.bsize, fn)
	default:
		return r.generic2(fn)
	}
}

// Each3 calls fn with the buffer indices of matching elements of three
// views.
func (r *Request) Each3(fn func(ix, iy, iz int) bool) bool {
	r.mustArity(3)
	switch r.strategy {
	case StrategyScalar:
		return fn(r.offsets[0], r.offsets[1], r.offsets[2])
	case StrategyEmpty:
		return true
	case StrategyStrided, StrategyContiguous, StrategyNested:
		return nestedLoops3[len(r.shape)](r.shape, r.strides[0], r.strides[1], r.strides[2],
			r.offsets[0], r.offsets[1], r.offsets[2], fn)
	case StrategyBlocked:
		return blockedLoops3[len(r.shape)](r.shape, r.strides[0], r.strides[1], r.strides[2],
			r.offsets[0], r.offsets[1], r.offsets[2], r.bsize, fn)
	default:
		return r.generic3(fn)
	}
}
