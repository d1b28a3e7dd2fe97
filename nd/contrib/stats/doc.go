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

// Package stats provides reductions, cumulative operations and sorting
// along selected dimensions of an array, built on nd/contrib/strided1d.
//
// Every function takes strided1d options: WithDims selects the dimensions
// to operate along (all of them by default), WithKeepDims keeps reduced
// dimensions, WithDType and WithOrder control allocated outputs and
// WithPool runs the slices concurrently. Callbacks passed to MaxBy and Find
// must then be safe for concurrent use.
//
// Reductions:
//   - Sum: accumulation dtype (narrow integers widen to 64 bits).
//   - Max: NaN propagates; an empty slice yields NaN for floats and zero
//     otherwise.
//   - MaxBy: maximum of a callback that also sees element indices.
//   - Find: first element of each slice passing a predicate.
//
// Cumulative operations (Cumax, Cusum) keep the input shape. Sort and
// SortInPlace sort each slice.
//
// # Example Usage
//
//	// Column sums of a matrix.
//	sums, err := stats.Sum(m, strided1d.WithDims(0))
package stats
