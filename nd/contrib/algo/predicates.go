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

import "cmp"

// Predicate tests individual element values.
type Predicate[T any] interface {
	Test(value T) bool
}

// Func adapts a callback to a Predicate.
type Func[T any] func(T) bool

func (f Func[T]) Test(value T) bool { return f(value) }

// GreaterThan returns true for values where v > threshold.
type GreaterThan[T cmp.Ordered] struct {
	Threshold T
}

func (p GreaterThan[T]) Test(value T) bool {
	return value > p.Threshold
}

// LessThan returns true for values where v < threshold.
type LessThan[T cmp.Ordered] struct {
	Threshold T
}

func (p LessThan[T]) Test(value T) bool {
	return value < p.Threshold
}

// GreaterEqual returns true for values where v >= threshold.
type GreaterEqual[T cmp.Ordered] struct {
	Threshold T
}

func (p GreaterEqual[T]) Test(value T) bool {
	return value >= p.Threshold
}

// LessEqual returns true for values where v <= threshold.
type LessEqual[T cmp.Ordered] struct {
	Threshold T
}

func (p LessEqual[T]) Test(value T) bool {
	return value <= p.Threshold
}

// Equal returns true for values equal to Value.
type Equal[T comparable] struct {
	Value T
}

func (p Equal[T]) Test(value T) bool {
	return value == p.Value
}

// NotEqual returns true for values different from Value.
type NotEqual[T comparable] struct {
	Value T
}

func (p NotEqual[T]) Test(value T) bool {
	return value != p.Value
}

// Truthy reports whether v is "true": non-zero and not NaN. Boolean views
// test their value, numeric views test against zero.
func Truthy[T comparable](v T) bool {
	var zero T
	// NaN is the only value different from itself.
	return v == v && v != zero
}
