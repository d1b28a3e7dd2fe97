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
	"fmt"
	"math"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/strided1d"
)

var (
	realDTypes = []nd.DType{
		nd.Int8, nd.Int16, nd.Int32, nd.Int64,
		nd.Uint8, nd.Uint16, nd.Uint32, nd.Uint64,
		nd.Float16, nd.BFloat16, nd.Float32, nd.Float64,
	}
	numericDTypes = append(append([]nd.DType{nd.Bool}, realDTypes...), nd.Complex64, nd.Complex128, nd.Generic)
)

// sameKernels registers k[T] for the signature (dt, dt) of every real
// dtype. Half-precision dtypes use the float32 instantiation.
type sameKernels struct {
	i8, i16, i32, i64 strided1d.Kernel
	u8, u16, u32, u64 strided1d.Kernel
	f32, f64          strided1d.Kernel
}

func (k sameKernels) table(def strided1d.Kernel) *strided1d.Table {
	t := &strided1d.Table{Default: def}
	add := func(dt nd.DType, kernel strided1d.Kernel) {
		t.Types = append(t.Types, []nd.DType{dt, dt})
		t.Kernels = append(t.Kernels, kernel)
	}
	add(nd.Int8, k.i8)
	add(nd.Int16, k.i16)
	add(nd.Int32, k.i32)
	add(nd.Int64, k.i64)
	add(nd.Uint8, k.u8)
	add(nd.Uint16, k.u16)
	add(nd.Uint32, k.u32)
	add(nd.Uint64, k.u64)
	add(nd.Float16, k.f32)
	add(nd.BFloat16, k.f32)
	add(nd.Float32, k.f32)
	add(nd.Float64, k.f64)
	return t
}

// nan returns NaN as T when T is a floating-point type.
func nan[T nd.Real]() (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.NaN()), true
	}
	return zero, false
}

// loadFloat reads element k of a 1-D view of any dtype as float64.
func loadFloat(a nd.Array, k int) float64 {
	v := a.LoadAny(strided1d.At(a, k))
	f, ok := nd.ToFloat64(v)
	if !ok {
		panic(fmt.Sprintf("stats: %T element is not numeric", v))
	}
	return f
}

func storeAny(a nd.Array, k int, v any) {
	a.StoreAny(strided1d.At(a, k), v)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
