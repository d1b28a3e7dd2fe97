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

import "github.com/ajroetker/go-ndarray/nd"

// Cursor tells a kernel where its slice sits in the input array.
//
// A dispatch reuses one Cursor and its index workspace for every kernel
// call; the slices it returns are only valid until the kernel returns.
type Cursor struct {
	loopDims  []int
	coreDims  []int
	coreShape []int
	loop      []int
	core      []int
	index     []int
	call      int
}

func newCursor(p *plan) *Cursor {
	return &Cursor{
		loopDims:  p.loop,
		coreDims:  p.core,
		coreShape: p.coreShape,
		loop:      make([]int, len(p.loop)),
		core:      make([]int, len(p.core)),
		index:     make([]int, len(p.shape)),
	}
}

// moveTo positions the cursor on the loop multi-index idx, which is the
// call-th in row-major order.
func (c *Cursor) moveTo(idx []int, call int) {
	copy(c.loop, idx)
	for j, d := range c.loopDims {
		c.index[d] = idx[j]
	}
	c.call = call
}

// Call returns the position of this kernel call among all calls of the
// dispatch, counted in row-major order over the loop dimensions.
func (c *Cursor) Call() int { return c.call }

// Loop returns the multi-index of the current slice over the loop
// dimensions.
func (c *Cursor) Loop() []int { return c.loop }

// CoreShape returns the shape of the core dimensions.
func (c *Cursor) CoreShape() []int { return c.coreShape }

// Index returns the multi-index, in the input array, of element k of the
// current 1-D slice.
func (c *Cursor) Index(k int) []int {
	c.core = nd.Ind2Sub(c.coreShape, nd.RowMajor, k, c.core)
	for j, d := range c.coreDims {
		c.index[d] = c.core[j]
	}
	return c.index
}
