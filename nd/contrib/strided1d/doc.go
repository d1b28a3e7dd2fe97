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

// Package strided1d applies one-dimensional kernels along selected
// dimensions of an n-dimensional array.
//
// The dimensions named by WithDims are the core dimensions: for every
// combination of the remaining loop dimensions, the core sub-array is
// flattened to a 1-D view (row-major logical order) and handed to a Kernel.
// Without WithDims every dimension is a core dimension and a reduction
// produces a scalar.
//
// Kernels are selected from a Table by the dtypes involved, falling back to
// the table's default kernel. Three dispatchers share the same validation:
//
//   - Nullary: kernel arrays are [x1d, args...]; x is modified in place.
//   - Unary: kernel arrays are [x1d, out1d, args...]; out has x's shape.
//   - Reduce: kernel arrays are [x1d, out0d, args...]; out has the loop
//     shape (or x's shape with core dimensions of size 1 under
//     WithKeepDims).
//
// Additional argument arrays are either 0-d (shared by every kernel call)
// or have the loop shape, in which case each call sees its own 0-d element.
//
// Every argument, option and output is validated before the first kernel
// call, so a failed dispatch leaves its output untouched.
//
// Kernel calls run in row-major order over the loop dimensions on the
// calling goroutine. WithPool spreads them over a workerpool.Pool instead;
// each call still touches only its own slice of every array.
package strided1d
