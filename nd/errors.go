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
	"errors"
	"fmt"
	"strings"
)

// Every error returned by this module matches one of these sentinels via
// errors.Is. They are all caller errors detected before any element is
// visited; there is nothing to retry.
var (
	// ErrRankMismatch is returned when shape and strides lengths differ, or
	// when views that must share a rank do not.
	ErrRankMismatch = errors.New("nd: rank mismatch")

	// ErrShapeMismatch is returned when views that must share a shape do not.
	ErrShapeMismatch = errors.New("nd: shape mismatch")

	// ErrBadShape is returned for negative dimensions or element counts that
	// do not match the buffer.
	ErrBadShape = errors.New("nd: invalid shape")

	// ErrOutOfBounds is returned when a view or a subscript reaches outside
	// its buffer.
	ErrOutOfBounds = errors.New("nd: index out of bounds")

	// ErrUnsupportedDType is returned when a dtype is not accepted.
	ErrUnsupportedDType = errors.New("nd: unsupported dtype")

	// ErrInvalidDimension is returned for dimension indices outside [-rank, rank).
	ErrInvalidDimension = errors.New("nd: invalid dimension")

	// ErrInvalidOption is returned when an option value fails validation.
	ErrInvalidOption = errors.New("nd: invalid option")

	// ErrInvalidCast is returned when an output dtype cannot hold the
	// resolved result dtype under the casting policy.
	ErrInvalidCast = errors.New("nd: invalid cast")
)

// DTypeError reports an argument whose dtype is not in its allowed set.
type DTypeError struct {
	Arg     int
	Got     DType
	Allowed []DType
}

func (e *DTypeError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, d := range e.Allowed {
		names[i] = d.String()
	}
	return fmt.Sprintf("nd: argument %d has dtype %s, must be one of [%s]", e.Arg, e.Got, strings.Join(names, ", "))
}

func (e *DTypeError) Unwrap() error { return ErrUnsupportedDType }

// DimensionError reports a dimension index outside [-Rank, Rank).
type DimensionError struct {
	Dim  int
	Rank int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("nd: dimension %d out of range for rank %d", e.Dim, e.Rank)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimension }
