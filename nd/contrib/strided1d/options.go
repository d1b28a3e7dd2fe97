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
	"fmt"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/workerpool"
)

type options struct {
	dims     []int
	hasDims  bool
	keepDims bool
	dtype    nd.DType
	hasDType bool
	order    nd.Order
	hasOrder bool
	pool     *workerpool.Pool
}

// Option configures a dispatch.
type Option func(*options) error

// WithDims selects the core dimensions. Negative values count from the
// end. An empty list makes every dimension a loop dimension.
func WithDims(dims ...int) Option {
	return func(o *options) error {
		o.dims = slices.Clone(dims)
		o.hasDims = true
		return nil
	}
}

// WithKeepDims keeps reduced dimensions in the output with size 1.
func WithKeepDims(keep bool) Option {
	return func(o *options) error {
		o.keepDims = keep
		return nil
	}
}

// WithDType overrides the output dtype chosen by the output policy. The
// override must be allowed for the output and reachable from the resolved
// dtype under same-kind casting.
func WithDType(dt nd.DType) Option {
	return func(o *options) error {
		if !dt.Valid() {
			return fmt.Errorf("%w: dtype %s", nd.ErrInvalidOption, dt)
		}
		o.dtype = dt
		o.hasDType = true
		return nil
	}
}

// WithOrder sets the memory layout of allocated outputs. It defaults to
// the input's declared order.
func WithOrder(order nd.Order) Option {
	return func(o *options) error {
		if order != nd.RowMajor && order != nd.ColumnMajor {
			return fmt.Errorf("%w: %s", nd.ErrInvalidOption, order)
		}
		o.order = order
		o.hasOrder = true
		return nil
	}
}

// WithPool runs the kernel calls of a dispatch on pool. Calls then run
// concurrently, so kernels and the callbacks they invoke must be safe for
// concurrent use. A nil pool runs them in order on the calling goroutine.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) error {
		o.pool = pool
		return nil
	}
}

func gatherOptions(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return o, err
		}
	}
	return o, nil
}

// outputOrder returns the layout order of an output allocated for x.
func (o *options) outputOrder(x nd.Array) nd.Order {
	if o.hasOrder {
		return o.order
	}
	return x.Order()
}
