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

// each calls fn on every element of x until fn returns false, and reports
// whether it visited them all.
func each[T any](x *nd.View[T], fn func(T) bool) bool {
	r, err := loops.Prepare(x)
	if err != nil {
		// A single view always validates.
		panic(err)
	}
	get := x.Getter()
	return r.Each1(func(ix int) bool {
		return fn(get(ix))
	})
}

// Any returns true if pred returns true for any element.
// Short-circuits on first true. An empty view returns false.
func Any[T any](x *nd.View[T], pred func(T) bool) bool {
	return AnyP(x, Func[T](pred))
}

// AnyP is Any with a Predicate value.
func AnyP[T any, P Predicate[T]](x *nd.View[T], pred P) bool {
	return !each(x, func(v T) bool { return !pred.Test(v) })
}

// Every returns true if pred returns true for all elements.
// Short-circuits on first false. An empty view returns true.
func Every[T any](x *nd.View[T], pred func(T) bool) bool {
	return EveryP(x, Func[T](pred))
}

// EveryP is Every with a Predicate value.
func EveryP[T any, P Predicate[T]](x *nd.View[T], pred P) bool {
	return each(x, pred.Test)
}

// None returns true if pred returns false for all elements.
// This is equivalent to !Any(x, pred).
func None[T any](x *nd.View[T], pred func(T) bool) bool {
	return !Any(x, pred)
}

// Some returns true once at least n elements satisfy pred, without looking
// at the remaining elements. n must be at least 1.
func Some[T any](x *nd.View[T], n int, pred func(T) bool) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("%w: Some needs n >= 1, got %d", nd.ErrInvalidOption, n)
	}
	count := 0
	each(x, func(v T) bool {
		if pred(v) {
			count++
		}
		return count < n
	})
	return count >= n, nil
}

// Count returns the number of elements for which pred returns true.
func Count[T any](x *nd.View[T], pred func(T) bool) int {
	return CountP(x, Func[T](pred))
}

// CountP is Count with a Predicate value.
func CountP[T any, P Predicate[T]](x *nd.View[T], pred P) int {
	count := 0
	each(x, func(v T) bool {
		if pred.Test(v) {
			count++
		}
		return true
	})
	return count
}
