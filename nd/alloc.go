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
)

// Alloc returns a zeroed contiguous array of dtype dt.
func Alloc(dt DType, shape []int, order Order) (Array, error) {
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: dimension %d has negative size %d", ErrBadShape, i, d)
		}
	}
	n := Numel(shape)
	strides := ShapeToStrides(shape, order)
	switch dt {
	case Generic:
		return New(make([]any, n), shape, strides, 0, order)
	case Bool:
		return New(make([]bool, n), shape, strides, 0, order)
	case Int8:
		return New(make([]int8, n), shape, strides, 0, order)
	case Int16:
		return New(make([]int16, n), shape, strides, 0, order)
	case Int32:
		return New(make([]int32, n), shape, strides, 0, order)
	case Int64:
		return New(make([]int64, n), shape, strides, 0, order)
	case Uint8:
		return New(make([]uint8, n), shape, strides, 0, order)
	case Uint16:
		return New(make([]uint16, n), shape, strides, 0, order)
	case Uint32:
		return New(make([]uint32, n), shape, strides, 0, order)
	case Uint64:
		return New(make([]uint64, n), shape, strides, 0, order)
	case Float16:
		return NewFloat16(make([]uint16, n), shape, strides, 0, order)
	case BFloat16:
		return NewBFloat16(make([]uint16, n), shape, strides, 0, order)
	case Float32:
		return New(make([]float32, n), shape, strides, 0, order)
	case Float64:
		return New(make([]float64, n), shape, strides, 0, order)
	case Complex64:
		return New(make([]complex64, n), shape, strides, 0, order)
	case Complex128:
		return New(make([]complex128, n), shape, strides, 0, order)
	}
	return nil, fmt.Errorf("%w: cannot allocate %s", ErrUnsupportedDType, dt)
}

// Relayout returns a view of a's buffer with another layout, checked
// against the buffer.
func Relayout(a Array, l Layout) (Array, error) {
	if err := l.check(a.BufferLen()); err != nil {
		return nil, err
	}
	return a.withLayout(l), nil
}

// Flatten1D returns a 1-D view enumerating the elements of layout l over
// a's buffer in row-major logical order. When the non-singleton dimensions
// of l merge into a single stride the result is a strided view of the same
// storage; otherwise it goes through an accessor that maps each position
// back to a buffer index.
//
// l is trusted: it must describe elements inside a's buffer.
func Flatten1D(a Array, l Layout) Array {
	n := Numel(l.Shape)
	if n == 0 {
		return a.withLayout(Layout{Shape: []int{0}, Strides: []int{1}, Offset: l.Offset, Order: l.Order})
	}
	if stride, ok := mergeStrides(l.Shape, l.Strides); ok {
		return a.withLayout(Layout{Shape: []int{n}, Strides: []int{stride}, Offset: l.Offset, Order: l.Order})
	}
	return a.gather(l)
}

// mergeStrides reports whether the non-singleton dimensions of shape are
// spaced as one row-major run, and returns the run's stride.
func mergeStrides(shape, strides []int) (int, bool) {
	stride, prev := 1, -1
	for i, d := range shape {
		if d == 1 {
			continue
		}
		if prev >= 0 && strides[prev] != strides[i]*d {
			return 0, false
		}
		prev = i
		stride = strides[i]
	}
	return stride, true
}
