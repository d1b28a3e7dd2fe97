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

var maxTable = sameKernels{
	i8: maxKernel[int8], i16: maxKernel[int16], i32: maxKernel[int32], i64: maxKernel[int64],
	u8: maxKernel[uint8], u16: maxKernel[uint16], u32: maxKernel[uint32], u64: maxKernel[uint64],
	f32: maxKernel[float32], f64: maxKernel[float64],
}.table(maxAny)

var maxReduce = must(strided1d.NewReduce(maxTable, [][]nd.DType{append(realDTypes, nd.Generic)}, nil, nd.PolicySame))

// Max returns the largest element along the selected dimensions. A NaN
// anywhere in a slice makes its result NaN.
func Max(x nd.Array, opts ...strided1d.Option) (nd.Array, error) {
	return maxReduce.Apply(x, nil, opts...)
}

// MaxTo is Max writing into out.
func MaxTo(x, out nd.Array, opts ...strided1d.Option) error {
	return maxReduce.Assign(x, nil, out, opts...)
}

func maxKernel[T nd.Real](arrays []nd.Array, _ *strided1d.Cursor) {
	m, _ := nan[T]()
	for k, v := range strided1d.Values[T](arrays[0]) {
		if v != v {
			m = v
			break
		}
		if k == 0 || v > m {
			m = v
		}
	}
	strided1d.Store(arrays[1], 0, m)
}

func maxAny(arrays []nd.Array, _ *strided1d.Cursor) {
	x := arrays[0]
	m := math.NaN()
	for k := range x.Numel() {
		v := loadFloat(x, k)
		if math.IsNaN(v) {
			m = v
			break
		}
		if k == 0 || v > m {
			m = v
		}
	}
	storeAny(arrays[1], 0, m)
}

// MaxBy returns, along the selected dimensions, the largest value of cb
// over the elements of x. cb receives each element and its multi-index in
// x; the index slice is reused between calls. A NaN from cb makes the
// slice's result NaN and an empty slice yields NaN.
func MaxBy[T any](x *nd.View[T], cb func(v T, idx []int) float64, opts ...strided1d.Option) (*nd.View[float64], error) {
	kernel := func(arrays []nd.Array, cur *strided1d.Cursor) {
		m := math.NaN()
		for k, v := range strided1d.Values[T](arrays[0]) {
			r := cb(v, cur.Index(k))
			if math.IsNaN(r) {
				m = r
				break
			}
			if k == 0 || r > m {
				m = r
			}
		}
		strided1d.Store(arrays[1], 0, m)
	}
	r, err := strided1d.NewReduce(&strided1d.Table{Default: kernel}, [][]nd.DType{nil}, []nd.DType{nd.Float64}, nd.PolicyDefault)
	if err != nil {
		return nil, err
	}
	out, err := r.Apply(x, nil, opts...)
	if err != nil {
		return nil, err
	}
	return out.(*nd.View[float64]), nil
}

// Find returns, along the selected dimensions, the first element of x in
// row-major logical order for which pred holds, or sentinel when none
// does. pred receives each element and its multi-index in x; the index
// slice is reused between calls.
func Find[T any](x *nd.View[T], pred func(v T, idx []int) bool, sentinel T, opts ...strided1d.Option) (*nd.View[T], error) {
	kernel := func(arrays []nd.Array, cur *strided1d.Cursor) {
		for k, v := range strided1d.Values[T](arrays[0]) {
			if pred(v, cur.Index(k)) {
				strided1d.Store(arrays[1], 0, v)
				return
			}
		}
		strided1d.Store(arrays[1], 0, strided1d.Load[T](arrays[2], 0))
	}
	r, err := strided1d.NewReduce(&strided1d.Table{Default: kernel}, [][]nd.DType{nil, nil}, nil, nd.PolicySame)
	if err != nil {
		return nil, err
	}
	shape, err := strided1d.OutputShape(x.Shape(), opts...)
	if err != nil {
		return nil, err
	}
	out, err := nd.Zeros[T](x.Order(), shape...)
	if err != nil {
		return nil, err
	}
	if err := r.Assign(x, []nd.Array{nd.Scalar(sentinel)}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
