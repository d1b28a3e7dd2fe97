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

package strided1d

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/workerpool"
)

// plan is the loop/core split of one input shape.
type plan struct {
	shape     []int
	core      []int
	loop      []int
	coreShape []int
	loopShape []int
	keepDims  bool
}

func newPlan(shape []int, o options) (*plan, error) {
	rank := len(shape)
	p := &plan{shape: slices.Clone(shape), keepDims: o.keepDims}
	isCore := make([]bool, rank)
	if !o.hasDims {
		for i := range isCore {
			isCore[i] = true
		}
	} else {
		if len(o.dims) > rank {
			return nil, fmt.Errorf("%w: %d dimensions requested for rank %d", nd.ErrInvalidDimension, len(o.dims), rank)
		}
		for _, d := range o.dims {
			dim, err := nd.NormalizeDim(d, rank)
			if err != nil {
				return nil, err
			}
			if isCore[dim] {
				return nil, fmt.Errorf("%w: dimension %d listed twice", nd.ErrInvalidOption, d)
			}
			isCore[dim] = true
		}
	}
	for i, c := range isCore {
		if c {
			p.core = append(p.core, i)
			p.coreShape = append(p.coreShape, shape[i])
		} else {
			p.loop = append(p.loop, i)
			p.loopShape = append(p.loopShape, shape[i])
		}
	}
	if p.coreShape == nil {
		p.coreShape = []int{}
	}
	if p.loopShape == nil {
		p.loopShape = []int{}
	}
	return p, nil
}

// reducedShape is the output shape of a reduction.
func (p *plan) reducedShape() []int {
	if !p.keepDims {
		return slices.Clone(p.loopShape)
	}
	out := slices.Clone(p.shape)
	for _, d := range p.core {
		out[d] = 1
	}
	return out
}

// checkArgs requires every extra argument to be 0-d or to have the loop
// shape. Argument i is reported as position first+i.
func (p *plan) checkArgs(args []nd.Array, first int) error {
	for i, a := range args {
		if a.Rank() != 0 && !slices.Equal(a.Shape(), p.loopShape) {
			return fmt.Errorf("%w: argument %d has shape %v, want [] or %v", nd.ErrShapeMismatch, first+i, a.Shape(), p.loopShape)
		}
	}
	return nil
}

// OutputShape returns the shape a reduction allocates for an input of the
// given shape.
func OutputShape(shape []int, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := newPlan(shape, o)
	if err != nil {
		return nil, err
	}
	return p.reducedShape(), nil
}

// slicer yields, for each loop multi-index, the view a kernel sees of one
// array.
type slicer struct {
	a       nd.Array
	fixed   bool
	scalar  bool
	base    int
	strides []int
	layout  nd.Layout
}

// coreSlicer yields the core dimensions of a (which has the input shape)
// flattened to 1-D.
func (p *plan) coreSlicer(a nd.Array) *slicer {
	st := a.Strides()
	s := &slicer{a: a, base: a.Offset(), strides: pick(st, p.loop)}
	s.layout = nd.Layout{Shape: p.coreShape, Strides: pick(st, p.core), Order: a.Order()}
	return s
}

// outSlicer yields 0-d elements of a reduction output.
func (p *plan) outSlicer(a nd.Array) *slicer {
	st := a.Strides()
	if p.keepDims {
		st = pick(st, p.loop)
	}
	return scalarSlicer(a, st)
}

// argSlicer yields 0-d arguments unchanged and 0-d elements of arguments
// with the loop shape.
func argSlicer(a nd.Array) *slicer {
	if a.Rank() == 0 {
		return &slicer{a: a, fixed: true}
	}
	return scalarSlicer(a, a.Strides())
}

func scalarSlicer(a nd.Array, loopStrides []int) *slicer {
	return &slicer{
		a:       a,
		scalar:  true,
		base:    a.Offset(),
		strides: loopStrides,
		layout:  nd.Layout{Shape: []int{}, Strides: []int{}, Order: a.Order()},
	}
}

func (s *slicer) at(idx []int) nd.Array {
	if s.fixed {
		return s.a
	}
	off := s.base
	for j, i := range idx {
		off += i * s.strides[j]
	}
	l := s.layout
	l.Offset = off
	if !s.scalar {
		return nd.Flatten1D(s.a, l)
	}
	v, err := nd.Relayout(s.a, l)
	if err != nil {
		// idx lies inside the validated loop shape.
		panic(err)
	}
	return v
}

func pick(s, dims []int) []int {
	out := make([]int, len(dims))
	for j, d := range dims {
		out[j] = s[d]
	}
	return out
}

// run calls kernel once per loop multi-index, in row-major order unless a
// pool spreads the calls over its workers. Each worker gets its own Cursor.
func (p *plan) run(kernel Kernel, slicers []*slicer, pool *workerpool.Pool) {
	n := nd.Numel(p.loopShape)
	if nd.DebugEnabled() {
		nd.Logger().Debug("strided1d dispatch", "shape", p.shape, "core", p.core, "loop", p.loop, "arrays", len(slicers), "calls", n)
	}
	pool.ParallelFor(n, func(start, end int) {
		cur := newCursor(p)
		arrays := make([]nd.Array, len(slicers))
		idx := make([]int, len(p.loopShape))
		for call := start; call < end; call++ {
			idx = nd.Ind2Sub(p.loopShape, nd.RowMajor, call, idx)
			for i, s := range slicers {
				arrays[i] = s.at(idx)
			}
			cur.moveTo(idx, call)
			kernel(arrays, cur)
		}
	})
}
