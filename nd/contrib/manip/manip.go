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

// Package manip reshapes strided views: reversal along a dimension as a
// view, and flattening into fresh contiguous arrays.
package manip

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/algo"
)

// Reverse returns a view of x with dimension dim traversed backwards.
// Negative dims count from the end. No data is copied.
func Reverse[T any](x *nd.View[T], dim int) (*nd.View[T], error) {
	d, err := nd.NormalizeDim(dim, x.Rank())
	if err != nil {
		return nil, err
	}
	l := x.Layout().Clone()
	if n := l.Shape[d]; n > 0 {
		l.Offset += (n - 1) * l.Strides[d]
	}
	l.Strides[d] = -l.Strides[d]
	return x.WithLayout(l)
}

// Fliplr reverses the last dimension.
func Fliplr[T any](x *nd.View[T]) (*nd.View[T], error) { return Reverse(x, -1) }

// Flipud reverses the second-to-last dimension.
func Flipud[T any](x *nd.View[T]) (*nd.View[T], error) { return Reverse(x, -2) }

// FlattenOrder selects the order in which Flatten reads elements.
type FlattenOrder uint8

const (
	// OrderSame reads in the view's declared order.
	OrderSame FlattenOrder = iota
	// OrderAny reads in the order the strides are laid out in when they
	// are purely row-major or purely column-major, and in the declared
	// order otherwise.
	OrderAny
	// OrderRowMajor reads the last dimension fastest.
	OrderRowMajor
	// OrderColumnMajor reads the first dimension fastest.
	OrderColumnMajor
)

func (o FlattenOrder) String() string {
	switch o {
	case OrderSame:
		return "same"
	case OrderAny:
		return "any"
	case OrderRowMajor:
		return "row-major"
	case OrderColumnMajor:
		return "column-major"
	}
	return fmt.Sprintf("FlattenOrder(%d)", uint8(o))
}

// resolve returns the nd.Order o stands for when reading x.
func (o FlattenOrder) resolve(x nd.Array) (nd.Order, error) {
	switch o {
	case OrderSame:
		return x.Order(), nil
	case OrderAny:
		switch nd.StridesToOrder(x.Strides()) {
		case nd.LayoutRowMajor:
			return nd.RowMajor, nil
		case nd.LayoutColumnMajor:
			return nd.ColumnMajor, nil
		}
		return x.Order(), nil
	case OrderRowMajor:
		return nd.RowMajor, nil
	case OrderColumnMajor:
		return nd.ColumnMajor, nil
	}
	return nd.RowMajor, fmt.Errorf("%w: flatten order %s", nd.ErrInvalidOption, o)
}

// Flatten copies x into a fresh contiguous 1-D array, reading elements in
// the given order. The result declares that order.
func Flatten[T any](x *nd.View[T], order FlattenOrder) (*nd.View[T], error) {
	if x.Rank() == 0 {
		ord, err := order.resolve(x)
		if err != nil {
			return nil, err
		}
		return flattenInto(x, []int{1}, ord)
	}
	return FlattenFrom(x, 0, order)
}

// FlattenFrom copies x into a fresh contiguous array in which dimensions
// dim and up are merged into one, read in the given order. Negative dims
// count from the end.
func FlattenFrom[T any](x *nd.View[T], dim int, order FlattenOrder) (*nd.View[T], error) {
	d, err := nd.NormalizeDim(dim, x.Rank())
	if err != nil {
		return nil, err
	}
	ord, err := order.resolve(x)
	if err != nil {
		return nil, err
	}
	shape := append(slices.Clone(x.Shape()[:d]), nd.Numel(x.Shape()[d:]))
	return flattenInto(x, shape, ord)
}

// flattenInto allocates shape in ord and copies x into it. Viewing the new
// buffer with x's shape and ord's contiguous strides lines the elements up.
func flattenInto[T any](x *nd.View[T], shape []int, ord nd.Order) (*nd.View[T], error) {
	out, err := alloc(x, shape, ord)
	if err != nil {
		return nil, err
	}
	dst, err := out.WithLayout(nd.Layout{
		Shape:   x.Shape(),
		Strides: nd.ShapeToStrides(x.Shape(), ord),
		Order:   ord,
	})
	if err != nil {
		return nil, err
	}
	if err := algo.Copy(x, dst); err != nil {
		return nil, err
	}
	return out, nil
}

// alloc returns a zeroed array with x's dtype when it has T's element type.
func alloc[T any](x *nd.View[T], shape []int, ord nd.Order) (*nd.View[T], error) {
	a, err := nd.Alloc(x.DType(), shape, ord)
	if err == nil {
		if v, ok := a.(*nd.View[T]); ok {
			return v, nil
		}
	}
	return nd.Zeros[T](ord, shape...)
}
