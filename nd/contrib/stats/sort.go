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

package stats

import (
	"cmp"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/strided1d"
)

var sortTable = func() *strided1d.Table {
	t := sameKernels{
		i8: sortKernel[int8], i16: sortKernel[int16], i32: sortKernel[int32], i64: sortKernel[int64],
		u8: sortKernel[uint8], u16: sortKernel[uint16], u32: sortKernel[uint32], u64: sortKernel[uint64],
		f32: sortKernel[float32], f64: sortKernel[float64],
	}.table(sortAny)
	// Nullary tables are keyed by the input dtype alone.
	for i, sig := range t.Types {
		t.Types[i] = sig[:1]
	}
	return t
}()

// The order argument is a 0-d float64: positive sorts ascending, negative
// descending, zero leaves the slice alone.
var sorter = must(strided1d.NewNullary(sortTable, [][]nd.DType{realDTypes, {nd.Float64}}))

// Sort returns a copy of x with the elements along the selected dimensions
// sorted. They are sorted as one sequence in row-major logical order. NaNs
// sort before every other value in ascending order.
func Sort(x nd.Array, descending bool, opts ...strided1d.Option) (nd.Array, error) {
	return sorter.Apply(x, []nd.Array{sortOrder(descending)}, opts...)
}

// SortInPlace is Sort modifying x.
func SortInPlace(x nd.Array, descending bool, opts ...strided1d.Option) error {
	return sorter.Assign(x, []nd.Array{sortOrder(descending)}, opts...)
}

func sortOrder(descending bool) nd.Array {
	if descending {
		return nd.Scalar(-1.0)
	}
	return nd.Scalar(1.0)
}

func sortKernel[T nd.Real](arrays []nd.Array, _ *strided1d.Cursor) {
	order := strided1d.Load[float64](arrays[1], 0)
	if order == 0 {
		return
	}
	x := arrays[0]
	if s, ok := strided1d.Contiguous[T](x); ok {
		sortSlice(s, order < 0)
		return
	}
	v := x.(*nd.View[T])
	s := make([]T, 0, v.Numel())
	for _, e := range strided1d.Values[T](x) {
		s = append(s, e)
	}
	sortSlice(s, order < 0)
	set := v.Setter()
	for k, e := range s {
		set(strided1d.At(x, k), e)
	}
}

func sortAny(arrays []nd.Array, _ *strided1d.Cursor) {
	order := strided1d.Load[float64](arrays[1], 0)
	if order == 0 {
		return
	}
	x := arrays[0]
	s := make([]float64, x.Numel())
	for k := range s {
		s[k] = loadFloat(x, k)
	}
	sortSlice(s, order < 0)
	for k, e := range s {
		storeAny(x, k, e)
	}
}

func sortSlice[T nd.Real](s []T, descending bool) {
	if descending {
		slices.SortFunc(s, func(a, b T) int { return cmp.Compare(b, a) })
		return
	}
	slices.Sort(s)
}
