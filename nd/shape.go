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
	"fmt"
	"iter"
)

// Numel returns the number of elements of shape: 1 for a scalar (rank 0),
// 0 when any dimension is 0.
func Numel(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// ShapeToStrides returns the contiguous strides of shape in the given order.
func ShapeToStrides(shape []int, order Order) []int {
	strides := make([]int, len(shape))
	s := 1
	if order == ColumnMajor {
		for i := range shape {
			strides[i] = s
			s *= max(shape[i], 1)
		}
		return strides
	}
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= max(shape[i], 1)
	}
	return strides
}

// StridesToOffset returns the offset at which a view with the given shape
// and strides touches buffer index 0 as its minimum.
func StridesToOffset(shape, strides []int) int {
	offset := 0
	for i, s := range strides {
		if s < 0 && shape[i] > 0 {
			offset -= s * (shape[i] - 1)
		}
	}
	return offset
}

// Ind2Sub writes into subs the multi-index of the linear index idx of shape
// read in the given order, and returns subs. If subs is too short a new
// slice is allocated.
func Ind2Sub(shape []int, order Order, idx int, subs []int) []int {
	if cap(subs) < len(shape) {
		subs = make([]int, len(shape))
	}
	subs = subs[:len(shape)]
	if order == ColumnMajor {
		for i, d := range shape {
			subs[i] = idx % d
			idx /= d
		}
		return subs
	}
	for i := len(shape) - 1; i >= 0; i-- {
		d := shape[i]
		subs[i] = idx % d
		idx /= d
	}
	return subs
}

// Sub2Ind returns the buffer index of subs. Negative subscripts and
// subscripts past the end of a dimension are rejected.
func Sub2Ind(shape, strides []int, offset int, subs ...int) (int, error) {
	if len(subs) != len(shape) {
		return 0, fmt.Errorf("%w: %d subscripts for rank %d", ErrRankMismatch, len(subs), len(shape))
	}
	idx := offset
	for i, s := range subs {
		if s < 0 || s >= shape[i] {
			return 0, fmt.Errorf("%w: subscript %d is %d, dimension has size %d", ErrOutOfBounds, i, s, shape[i])
		}
		idx += s * strides[i]
	}
	return idx, nil
}

// VInd2BInd converts a linear index into a view, read in the given order,
// into a buffer index. It costs O(rank) and does no bounds checking.
func VInd2BInd(shape, strides []int, offset int, order Order, idx int) int {
	ind := offset
	if order == ColumnMajor {
		for i, d := range shape {
			ind += (idx % d) * strides[i]
			idx /= d
		}
		return ind
	}
	for i := len(shape) - 1; i >= 0; i-- {
		d := shape[i]
		ind += (idx % d) * strides[i]
		idx /= d
	}
	return ind
}

// NormalizeDim maps dim in [-rank, rank) into [0, rank).
func NormalizeDim(dim, rank int) (int, error) {
	if dim < -rank || dim >= rank {
		return 0, &DimensionError{Dim: dim, Rank: rank}
	}
	if dim < 0 {
		dim += rank
	}
	return dim, nil
}

// Indices iterates over all multi-indices of shape in the given order.
//
// It yields the linear counter and the multi-index. The multi-index slice
// is owned by the iterator and updated in place: don't retain or modify it.
// A scalar shape yields one empty multi-index; an empty shape yields nothing.
func Indices(shape []int, order Order) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		n := Numel(shape)
		if n == 0 {
			return
		}
		subs := make([]int, len(shape))
		for k := 0; k < n; k++ {
			if !yield(k, subs) {
				return
			}
			if order == ColumnMajor {
				for i := 0; i < len(subs); i++ {
					subs[i]++
					if subs[i] < shape[i] {
						break
					}
					subs[i] = 0
				}
				continue
			}
			for i := len(subs) - 1; i >= 0; i-- {
				subs[i]++
				if subs[i] < shape[i] {
					break
				}
				subs[i] = 0
			}
		}
	}
}
