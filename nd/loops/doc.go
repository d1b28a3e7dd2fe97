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

// Package loops visits the elements of one to three strided views of equal
// shape, passing buffer indices to a visitor.
//
// A Request is validated once by Prepare, which also picks the cheapest
// traversal strategy for the layouts involved:
//
//   - StrategyScalar: rank 0, one call.
//   - StrategyEmpty: no elements, no calls.
//   - StrategyStrided: rank 1, or at most one dimension larger than 1.
//   - StrategyContiguous: every view covers a dense block of its buffer
//     in a compatible order; traversed as a single 1-D loop.
//   - StrategyNested: a loop nest specialised for the rank (up to MaxDims).
//   - StrategyBlocked: mixed stride signs; the two innermost loops, chosen
//     by stride magnitude, are tiled by nd.BlockSize.
//   - StrategyGeneric: rank above MaxDims; every linear index is converted
//     to buffer indices with nd.VInd2BInd.
//
// Visitors return false to stop the traversal early. Each1, Each2 and Each3
// report whether the traversal ran to completion.
//
// The rank-specialised loops in z_nested.go and z_blocked.go are generated
// by cmd/ndgen:
//
//	go generate ./nd/loops
package loops

//go:generate go run ../../cmd/ndgen --max-dims 10 --arity 3 --output . --package loops
