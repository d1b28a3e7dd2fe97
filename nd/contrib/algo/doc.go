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

// Package algo provides element-wise algorithms over strided views.
//
// Every function validates its views once and then traverses them with
// nd/loops, so the same code runs on contiguous, transposed, reversed,
// padded or half-precision views.
//
// # Predicates
//
// Any, Every, None, Some and Count take a callback and stop as soon as the
// answer is known. The P variants (AnyP, EveryP, CountP) take a Predicate
// value such as GreaterThan or Equal.
//
// # Transforms
//
//   - ForEach, Fill: visit or overwrite every element of one view.
//   - Map: apply a function into a freshly allocated view.
//   - Assign, Binary: apply a function into a caller-provided output.
//   - Copy, CopyAny: copy between views, converting dtypes for CopyAny.
//
// # Ordered collection
//
// Filter, FilterMap and ToSlice visit elements in logical order (the view's
// declared order unless WithOrder says otherwise) and return dense results.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-ndarray/nd/contrib/algo"
//
//	// Scale the elements above 5 of a strided view by 10.
//	out, err := algo.FilterMap(x, func(v float64) (float64, bool) {
//	    return v * 10, v > 5
//	})
package algo
