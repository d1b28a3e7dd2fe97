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

package algo

import (
	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/loops"
)

// ForEach calls fn on every element of x, in no particular order.
func ForEach[T any](x *nd.View[T], fn func(T)) {
	each(x, func(v T) bool {
		fn(v)
		return true
	})
}

// Fill sets all elements of x to value.
//
// Views that cover a dense block of a slice are filled with a doubling
// pattern that leverages Go's optimized memmove.
func Fill[T any](x *nd.View[T], value T) {
	if data := x.Data(); data != nil && nd.IsContiguous(x.Shape(), x.Strides(), x.Offset()) {
		lo, hi := nd.MinMaxViewBufferIndex(x.Shape(), x.Strides(), x.Offset())
		fillSlice(data[lo:hi+1], value)
		return
	}
	r, err := loops.Prepare(x)
	if err != nil {
		panic(err)
	}
	set := x.Setter()
	r.Each1(func(ix int) bool {
		set(ix, value)
		return true
	})
}

func fillSlice[T any](dst []T, value T) {
	n := len(dst)
	if n == 0 {
		return
	}
	dst[0] = value
	// O(log n) calls to copy.
	for filled := 1; filled < n; filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// Map applies fn to every element of x and returns the results in a new
// contiguous view of the same shape and declared order. The output dtype is
// inferred from U.
func Map[T, U any](x *nd.View[T], fn func(T) U) (*nd.View[U], error) {
	out, err := nd.Zeros[U](x.Order(), x.Shape()...)
	if err != nil {
		return nil, err
	}
	if err := Assign(x, out, fn); err != nil {
		return nil, err
	}
	return out, nil
}

// Assign writes fn(x) into y element by element. x and y must have the same
// shape; nothing is written otherwise.
func Assign[T, U any](x *nd.View[T], y *nd.View[U], fn func(T) U) error {
	r, err := loops.Prepare(x, y)
	if err != nil {
		return err
	}
	get, set := x.Getter(), y.Setter()
	r.Each2(func(ix, iy int) bool {
		set(iy, fn(get(ix)))
		return true
	})
	return nil
}

// Binary writes fn(x, y) into z element by element. The three views must
// have the same shape.
func Binary[T, U, V any](x *nd.View[T], y *nd.View[U], z *nd.View[V], fn func(T, U) V) error {
	r, err := loops.Prepare(x, y, z)
	if err != nil {
		return err
	}
	gx, gy, set := x.Getter(), y.Getter(), z.Setter()
	r.Each3(func(ix, iy, iz int) bool {
		set(iz, fn(gx(ix), gy(iy)))
		return true
	})
	return nil
}
