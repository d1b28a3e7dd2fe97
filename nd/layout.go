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
	"slices"
	"strings"
)

// Order is the declared nesting convention of a view. It is independent of
// the actual stride values: a transposed view keeps its declared order.
type Order uint8

const (
	// RowMajor declares the last dimension as the fastest varying one.
	RowMajor Order = iota
	// ColumnMajor declares the first dimension as the fastest varying one.
	ColumnMajor
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// ParseOrder parses "row-major" or "column-major".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row-major", "row", "c":
		return RowMajor, nil
	case "column-major", "column", "col", "f":
		return ColumnMajor, nil
	}
	return RowMajor, fmt.Errorf("%w: unknown order %q", ErrInvalidOption, s)
}

// Layout is the shape, strides, offset and declared order of a view.
//
// Strides are expressed in elements, not bytes.
type Layout struct {
	Shape   []int
	Strides []int
	Offset  int
	Order   Order
}

// Rank returns the number of dimensions.
func (l Layout) Rank() int { return len(l.Shape) }

// Numel returns the number of elements.
func (l Layout) Numel() int { return Numel(l.Shape) }

// Clone returns a deep copy of l.
func (l Layout) Clone() Layout {
	return Layout{
		Shape:   slices.Clone(l.Shape),
		Strides: slices.Clone(l.Strides),
		Offset:  l.Offset,
		Order:   l.Order,
	}
}

// String formats the layout for logs and error messages.
func (l Layout) String() string {
	return fmt.Sprintf("shape=%v strides=%v offset=%d %s", l.Shape, l.Strides, l.Offset, l.Order)
}

// check validates l against a buffer of bufLen elements.
func (l Layout) check(bufLen int) error {
	if len(l.Shape) != len(l.Strides) {
		return fmt.Errorf("%w: shape %v has %d dimensions, strides %v has %d", ErrRankMismatch, l.Shape, len(l.Shape), l.Strides, len(l.Strides))
	}
	for i, d := range l.Shape {
		if d < 0 {
			return fmt.Errorf("%w: dimension %d has negative size %d", ErrBadShape, i, d)
		}
	}
	if l.Order != RowMajor && l.Order != ColumnMajor {
		return fmt.Errorf("%w: %s", ErrInvalidOption, l.Order)
	}
	if l.Offset < 0 {
		return fmt.Errorf("%w: negative offset %d", ErrOutOfBounds, l.Offset)
	}
	if Numel(l.Shape) == 0 {
		return nil
	}
	lo, hi := MinMaxViewBufferIndex(l.Shape, l.Strides, l.Offset)
	if lo < 0 || hi >= bufLen {
		return fmt.Errorf("%w: view touches [%d, %d] of a buffer of length %d", ErrOutOfBounds, lo, hi, bufLen)
	}
	return nil
}
