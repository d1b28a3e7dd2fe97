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

// Copy copies the elements of src into dst, which must have the same shape.
// Overlapping views over the same buffer give unspecified results.
func Copy[T any](src, dst *nd.View[T]) error {
	return Assign(src, dst, func(v T) T { return v })
}

// CopyAny copies between arrays of possibly different dtypes, converting
// every element with Go conversion semantics. The conversion from src's
// dtype to dst's dtype must be allowed under policy.
func CopyAny(src, dst nd.Array, policy nd.CastingPolicy) error {
	if !nd.IsAllowedCast(src.DType(), dst.DType(), policy) {
		return fmt.Errorf("%w: %s to %s under %s casting", nd.ErrInvalidCast, src.DType(), dst.DType(), policy)
	}
	r, err := loops.Prepare(src, dst)
	if err != nil {
		return err
	}
	r.Each2(func(ix, iy int) bool {
		dst.StoreAny(iy, src.LoadAny(ix))
		return true
	})
	return nil
}
