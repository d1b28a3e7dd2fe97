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
	"gonum.org/v1/gonum/floats"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/strided1d"
)

var sumTable = &strided1d.Table{
	Types: [][]nd.DType{
		{nd.Float64, nd.Float64},
		{nd.Float32, nd.Float32},
		{nd.Float16, nd.Float32},
		{nd.BFloat16, nd.Float32},
		{nd.Int8, nd.Int64},
		{nd.Int16, nd.Int64},
		{nd.Int32, nd.Int64},
		{nd.Int64, nd.Int64},
		{nd.Uint8, nd.Uint64},
		{nd.Uint16, nd.Uint64},
		{nd.Uint32, nd.Uint64},
		{nd.Uint64, nd.Uint64},
		{nd.Complex64, nd.Complex64},
		{nd.Complex128, nd.Complex128},
	},
	Kernels: []strided1d.Kernel{
		sumFloat64,
		sumKernel[float32, float32],
		sumKernel[float32, float32],
		sumKernel[float32, float32],
		sumKernel[int8, int64],
		sumKernel[int16, int64],
		sumKernel[int32, int64],
		sumKernel[int64, int64],
		sumKernel[uint8, uint64],
		sumKernel[uint16, uint64],
		sumKernel[uint32, uint64],
		sumKernel[uint64, uint64],
		sumComplex[complex64],
		sumComplex[complex128],
	},
	Default: sumAny,
}

var sum = must(strided1d.NewReduce(sumTable, [][]nd.DType{numericDTypes}, nil, nd.PolicyAccumulation))

// Sum adds the elements along the selected dimensions. The output dtype
// follows the accumulation policy.
func Sum(x nd.Array, opts ...strided1d.Option) (nd.Array, error) {
	return sum.Apply(x, nil, opts...)
}

// SumTo is Sum writing into out.
func SumTo(x, out nd.Array, opts ...strided1d.Option) error {
	return sum.Assign(x, nil, out, opts...)
}

func sumFloat64(arrays []nd.Array, _ *strided1d.Cursor) {
	if s, ok := strided1d.Contiguous[float64](arrays[0]); ok {
		strided1d.Store(arrays[1], 0, floats.Sum(s))
		return
	}
	sumKernel[float64, float64](arrays, nil)
}

func sumKernel[T, U nd.Real](arrays []nd.Array, _ *strided1d.Cursor) {
	var acc U
	for _, v := range strided1d.Values[T](arrays[0]) {
		acc += U(v)
	}
	strided1d.Store(arrays[1], 0, acc)
}

func sumComplex[T nd.Complex](arrays []nd.Array, _ *strided1d.Cursor) {
	var acc T
	for _, v := range strided1d.Values[T](arrays[0]) {
		acc += v
	}
	strided1d.Store(arrays[1], 0, acc)
}

// sumAny handles bool and generic inputs and mismatched output dtypes.
func sumAny(arrays []nd.Array, _ *strided1d.Cursor) {
	x, out := arrays[0], arrays[1]
	n := x.Numel()
	if out.DType().Kind() == nd.KindComplex {
		var acc complex128
		for k := 0; k < n; k++ {
			c, ok := nd.ToComplex128(x.LoadAny(strided1d.At(x, k)))
			if !ok {
				panic("stats: non-numeric element in Sum")
			}
			acc += c
		}
		storeAny(out, 0, acc)
		return
	}
	var acc float64
	for k := 0; k < n; k++ {
		acc += loadFloat(x, k)
	}
	storeAny(out, 0, acc)
}
