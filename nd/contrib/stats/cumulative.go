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
	"math"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/strided1d"
)

var cumaxTable = sameKernels{
	i8: cumaxKernel[int8], i16: cumaxKernel[int16], i32: cumaxKernel[int32], i64: cumaxKernel[int64],
	u8: cumaxKernel[uint8], u16: cumaxKernel[uint16], u32: cumaxKernel[uint32], u64: cumaxKernel[uint64],
	f32: cumaxKernel[float32], f64: cumaxKernel[float64],
}.table(cumaxAny)

var cumax = must(strided1d.NewUnary(cumaxTable, [][]nd.DType{append(realDTypes, nd.Generic)}, nil, nd.PolicySame))

// Cumax returns the running maximum along the selected dimensions, which
// are traversed as one sequence in row-major logical order. Once a NaN is
// seen the rest of the sequence is NaN.
func Cumax(x nd.Array, opts ...strided1d.Option) (nd.Array, error) {
	return cumax.Apply(x, nil, opts...)
}

// CumaxTo is Cumax writing into out.
func CumaxTo(x, out nd.Array, opts ...strided1d.Option) error {
	return cumax.Assign(x, nil, out, opts...)
}

func cumaxKernel[T nd.Real](arrays []nd.Array, _ *strided1d.Cursor) {
	out := arrays[1].(*nd.View[T])
	set := out.Setter()
	var m T
	for k, v := range strided1d.Values[T](arrays[0]) {
		switch {
		case k == 0:
			m = v
		case m != m:
		case v != v || v > m:
			m = v
		}
		set(strided1d.At(out, k), m)
	}
}

func cumaxAny(arrays []nd.Array, _ *strided1d.Cursor) {
	x, out := arrays[0], arrays[1]
	var m float64
	for k := range x.Numel() {
		v := loadFloat(x, k)
		switch {
		case k == 0:
			m = v
		case math.IsNaN(m):
		case math.IsNaN(v) || v > m:
			m = v
		}
		storeAny(out, k, m)
	}
}

var cusumTable = &strided1d.Table{
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
	},
	Kernels: []strided1d.Kernel{
		cusumKernel[float64, float64],
		cusumKernel[float32, float32],
		cusumKernel[float32, float32],
		cusumKernel[float32, float32],
		cusumKernel[int8, int64],
		cusumKernel[int16, int64],
		cusumKernel[int32, int64],
		cusumKernel[int64, int64],
		cusumKernel[uint8, uint64],
		cusumKernel[uint16, uint64],
		cusumKernel[uint32, uint64],
		cusumKernel[uint64, uint64],
	},
	Default: cusumAny,
}

var cusum = must(strided1d.NewUnary(cusumTable, [][]nd.DType{numericDTypes}, nil, nd.PolicyAccumulation))

// Cusum returns the running sum along the selected dimensions, traversed
// as one sequence in row-major logical order. The output dtype follows the
// accumulation policy.
func Cusum(x nd.Array, opts ...strided1d.Option) (nd.Array, error) {
	return cusum.Apply(x, nil, opts...)
}

// CusumTo is Cusum writing into out.
func CusumTo(x, out nd.Array, opts ...strided1d.Option) error {
	return cusum.Assign(x, nil, out, opts...)
}

func cusumKernel[T, U nd.Real](arrays []nd.Array, _ *strided1d.Cursor) {
	out := arrays[1].(*nd.View[U])
	set := out.Setter()
	var acc U
	for k, v := range strided1d.Values[T](arrays[0]) {
		acc += U(v)
		set(strided1d.At(out, k), acc)
	}
}

func cusumAny(arrays []nd.Array, _ *strided1d.Cursor) {
	x, out := arrays[0], arrays[1]
	if out.DType().Kind() == nd.KindComplex {
		var acc complex128
		for k := range x.Numel() {
			c, ok := nd.ToComplex128(x.LoadAny(strided1d.At(x, k)))
			if !ok {
				panic("stats: non-numeric element in Cusum")
			}
			acc += c
			storeAny(out, k, acc)
		}
		return
	}
	var acc float64
	for k := range x.Numel() {
		acc += loadFloat(x, k)
		storeAny(out, k, acc)
	}
}
