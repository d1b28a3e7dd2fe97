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

// Package nd provides strided, typed n-dimensional views over flat buffers.
//
// A View describes how a flat buffer is read as an n-dimensional array:
// shape, strides (in elements, possibly negative or zero), offset of the
// element at the all-zero index, and a declared order. Views never own their
// buffers and are immutable once constructed.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-ndarray/nd"
//
//	buf := []float64{1, 2, 3, 4, 5, 6}
//	x, err := nd.New(buf, []int{2, 3}, []int{3, 1}, 0, nd.RowMajor)
//	if err != nil {
//	    return err
//	}
//	v, _ := x.Get(1, 2) // 6
//
// The package also provides the analysis functions used by the dispatch core
// in nd/loops (IterationOrder, MinMaxViewBufferIndex, StridesToOrder,
// LoopOrder, BlockSize) and the dtype tables used by nd/contrib/strided1d
// (Promote, IsAllowedCast, ResolveOutputDType).
//
// # Element storage
//
// Most dtypes are stored directly as a Go slice of the matching type. Float16
// and BFloat16 are stored as raw uint16 bits and read through an Accessor as
// float32. Which variant a view uses is resolved once per traversal via
// Getter and Setter, never per element.
//
// # Configuration
//
// The following environment variables are read once at program start:
//
//   - ND_BLOCK_SIZE_BYTES: tile size in bytes used by blocked traversal
//     (default: the CPU cache-line size).
//   - ND_NO_BLOCKED: disable blocked traversal.
//   - ND_DEBUG: log verbosity (1/true for debug).
package nd
