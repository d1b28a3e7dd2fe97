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
	"iter"

	"github.com/ajroetker/go-ndarray/nd"
)

// Helpers for kernels. They accept the 1-D and 0-d views a dispatcher hands
// to a Kernel; typed helpers panic if the view's element type is not T.

// At returns the buffer index of element k of a 1-D view, or the offset of
// a 0-d view.
func At(a nd.Array, k int) int {
	if a.Rank() == 0 {
		return a.Offset()
	}
	return a.Offset() + k*a.Strides()[0]
}

// Values iterates over the elements of a 1-D view.
func Values[T any](a nd.Array) iter.Seq2[int, T] {
	v := a.(*nd.View[T])
	return func(yield func(int, T) bool) {
		get := v.Getter()
		n := v.Numel()
		off, stride := v.Offset(), 0
		if v.Rank() > 0 {
			stride = v.Strides()[0]
		}
		for k := 0; k < n; k++ {
			if !yield(k, get(off+k*stride)) {
				return
			}
		}
	}
}

// Load returns element k of a 1-D view (or the element of a 0-d view).
func Load[T any](a nd.Array, k int) T {
	return a.(*nd.View[T]).Getter()(At(a, k))
}

// Store writes element k of a 1-D view (or the element of a 0-d view).
func Store[T any](a nd.Array, k int, x T) {
	a.(*nd.View[T]).Setter()(At(a, k), x)
}

// Contiguous returns the elements of a 1-D view as a slice of its buffer
// when the view has direct storage and unit stride.
func Contiguous[T any](a nd.Array) ([]T, bool) {
	v, ok := a.(*nd.View[T])
	if !ok || v.Rank() != 1 {
		return nil, false
	}
	data := v.Data()
	n := v.Numel()
	if data == nil || (n > 1 && v.Strides()[0] != 1) {
		return nil, false
	}
	if n == 0 {
		return []T{}, true
	}
	off := v.Offset()
	return data[off : off+n : off+n], true
}
