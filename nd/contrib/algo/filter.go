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
	"fmt"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/loops"
)

type options struct {
	order nd.Order
}

// Option configures the ordered collection functions.
type Option func(*options) error

// WithOrder visits elements in the given logical order instead of the
// view's declared order.
func WithOrder(order nd.Order) Option {
	return func(o *options) error {
		if order != nd.RowMajor && order != nd.ColumnMajor {
			return fmt.Errorf("%w: %s", nd.ErrInvalidOption, order)
		}
		o.order = order
		return nil
	}
}

func gatherOptions(declared nd.Order, opts []Option) (options, error) {
	o := options{order: declared}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Filter returns a new 1-D view holding the elements of x for which pred
// returns true, in logical order.
func Filter[T any](x *nd.View[T], pred func(T) bool, opts ...Option) (*nd.View[T], error) {
	return FilterMap(x, func(v T) (T, bool) { return v, pred(v) }, opts...)
}

// FilterMap calls fn on every element of x in logical order and returns a
// new 1-D view of the results for which fn reported true. When U is the
// element type of x the output keeps the dtype of x, so filtering a
// Float16 view yields a Float16 view.
//
// The output grows as results are produced, so its size need not be known
// in advance.
func FilterMap[T, U any](x *nd.View[T], fn func(T) (U, bool), opts ...Option) (*nd.View[U], error) {
	o, err := gatherOptions(x.Order(), opts)
	if err != nil {
		return nil, err
	}
	r, err := loops.PrepareOrdered(o.order, x)
	if err != nil {
		return nil, err
	}
	get := x.Getter()
	out := make([]U, 0)
	r.Each1(func(ix int) bool {
		if v, ok := fn(get(ix)); ok {
			out = append(out, v)
		}
		return true
	})
	return collect(x.DType(), out)
}

// collect wraps values in a 1-D view of dtype dt, falling back to the
// dtype of U when dt does not store U elements.
func collect[U any](dt nd.DType, values []U) (*nd.View[U], error) {
	shape := []int{len(values)}
	if dt != nd.DTypeOf[U]() {
		if a, err := nd.Alloc(dt, shape, nd.RowMajor); err == nil {
			if v, ok := a.(*nd.View[U]); ok {
				set := v.Setter()
				for i, x := range values {
					set(i, x)
				}
				return v, nil
			}
		}
	}
	return nd.FromSlice(values, shape, nd.RowMajor)
}

// ToSlice returns the elements of x in the given logical order.
func ToSlice[T any](x *nd.View[T], order nd.Order) ([]T, error) {
	r, err := loops.PrepareOrdered(order, x)
	if err != nil {
		return nil, err
	}
	get := x.Getter()
	out := make([]T, 0, x.Numel())
	r.Each1(func(ix int) bool {
		out = append(out, get(ix))
		return true
	})
	return out, nil
}
