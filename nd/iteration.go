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

package nd

import (
	"cmp"
	"fmt"
	"slices"
)

// IterationOrder classifies strides by sign: +1 when no stride is negative
// (buffer indices can only increase), -1 when every stride is negative, and
// 0 for mixed signs.
func IterationOrder(strides []int) int {
	neg := 0
	for _, s := range strides {
		if s < 0 {
			neg++
		}
	}
	switch {
	case neg == 0:
		return 1
	case neg == len(strides):
		return -1
	default:
		return 0
	}
}

// MinMaxViewBufferIndex returns the smallest and largest buffer index
// reachable by any valid multi-index. An empty shape returns (offset, offset).
//
// Panics if shape and strides have different lengths.
func MinMaxViewBufferIndex(shape, strides []int, offset int) (lo, hi int) {
	mustSameRank(shape, strides)
	lo, hi = offset, offset
	for i, d := range shape {
		if d == 0 {
			return offset, offset
		}
		s := strides[i]
		if s > 0 {
			hi += s * (d - 1)
		} else if s < 0 {
			lo += s * (d - 1)
		}
	}
	return lo, hi
}

// IsContiguous reports whether the view touches exactly Numel(shape)
// consecutive buffer elements. Empty views are not contiguous.
func IsContiguous(shape, strides []int, offset int) bool {
	n := Numel(shape)
	if n == 0 {
		return false
	}
	lo, hi := MinMaxViewBufferIndex(shape, strides, offset)
	return n == hi-lo+1
}

// LayoutOrder is a bitmask describing which nesting conventions the stride
// magnitudes are consistent with.
type LayoutOrder uint8

const (
	LayoutNone        LayoutOrder = 0
	LayoutRowMajor    LayoutOrder = 1
	LayoutColumnMajor LayoutOrder = 2
	LayoutBoth        LayoutOrder = LayoutRowMajor | LayoutColumnMajor
)

// Has reports whether l is consistent with the declared order o.
func (l LayoutOrder) Has(o Order) bool {
	if o == ColumnMajor {
		return l&LayoutColumnMajor != 0
	}
	return l&LayoutRowMajor != 0
}

// String returns the name of the layout order.
func (l LayoutOrder) String() string {
	switch l {
	case LayoutNone:
		return "none"
	case LayoutRowMajor:
		return "row-major"
	case LayoutColumnMajor:
		return "column-major"
	case LayoutBoth:
		return "both"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// StridesToOrder reports whether stride magnitudes are non-increasing
// (row-major), non-decreasing (column-major), both, or neither. Rank 0 and
// rank 1 are both.
func StridesToOrder(strides []int) LayoutOrder {
	row, col := true, true
	for i := 1; i < len(strides); i++ {
		prev, cur := abs(strides[i-1]), abs(strides[i])
		if cur > prev {
			row = false
		}
		if cur < prev {
			col = false
		}
		if !row && !col {
			return LayoutNone
		}
	}
	var out LayoutOrder
	if row {
		out |= LayoutRowMajor
	}
	if col {
		out |= LayoutColumnMajor
	}
	return out
}

// LoopOrder returns a loop-interchange permutation of the dimensions,
// innermost loop first, sorted by increasing stride magnitude of the first
// view. Ties keep the later dimension innermost. The remaining views only
// need to share the rank.
//
// Panics if no strides are given or ranks differ.
func LoopOrder(shape []int, strides ...[]int) []int {
	if len(strides) == 0 {
		panic("nd: LoopOrder needs at least one stride vector")
	}
	for _, s := range strides {
		mustSameRank(shape, s)
	}
	n := len(shape)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = n - 1 - i
	}
	first := strides[0]
	slices.SortStableFunc(perm, func(a, b int) int {
		return cmp.Compare(abs(first[a]), abs(first[b]))
	})
	return perm
}

// BlockSize returns the tile edge, in elements, used by blocked traversal
// over views of the given dtypes: the configured block size in bytes divided
// by the widest element. Generic elements count as 8 bytes.
func BlockSize(dtypes ...DType) int {
	width := 1
	for _, d := range dtypes {
		sz := d.Size()
		if sz == 0 {
			sz = 8
		}
		width = max(width, sz)
	}
	if len(dtypes) == 0 {
		width = 8
	}
	return max(1, BlockSizeBytes()/width)
}

func mustSameRank(shape, strides []int) {
	if len(shape) != len(strides) {
		panic(fmt.Sprintf("nd: shape %v and strides %v have different ranks", shape, strides))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
