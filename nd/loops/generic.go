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

package loops

import "github.com/ajroetker/go-ndarray/nd"

// Function shapes of the generated loops. sh and the stride slices are in
// loop order, innermost first.
type (
	nested1Func  func(sh, sx []int, ox int, fn func(ix int) bool) bool
	nested2Func  func(sh, sx, sy []int, ox, oy int, fn func(ix, iy int) bool) bool
	nested3Func  func(sh, sx, sy, sz []int, ox, oy, oz int, fn func(ix, iy, iz int) bool) bool
	blocked1Func func(sh, sx []int, ox, bsize int, fn func(ix int) bool) bool
	blocked2Func func(sh, sx, sy []int, ox, oy, bsize int, fn func(ix, iy int) bool) bool
	blocked3Func func(sh, sx, sy, sz []int, ox, oy, oz, bsize int, fn func(ix, iy, iz int) bool) bool
)

// The generic strategy converts every linear index, read in r.order, to a
// buffer index per view. It handles any rank, including 0 and empty shapes.

func (r *Request) generic1(fn func(ix int) bool) bool {
	x := r.layouts[0]
	n := nd.Numel(x.Shape)
	for k := 0; k < n; k++ {
		if !fn(nd.VInd2BInd(x.Shape, x.Strides, x.Offset, r.order, k)) {
			return false
		}
	}
	return true
}

func (r *Request) generic2(fn func(ix, iy int) bool) bool {
	x, y := r.layouts[0], r.layouts[1]
	n := nd.Numel(x.Shape)
	for k := 0; k < n; k++ {
		ix := nd.VInd2BInd(x.Shape, x.Strides, x.Offset, r.order, k)
		iy := nd.VInd2BInd(y.Shape, y.Strides, y.Offset, r.order, k)
		if !fn(ix, iy) {
			return false
		}
	}
	return true
}

func (r *Request) generic3(fn func(ix, iy, iz int) bool) bool {
	x, y, z := r.layouts[0], r.layouts[1], r.layouts[2]
	n := nd.Numel(x.Shape)
	for k := 0; k < n; k++ {
		ix := nd.VInd2BInd(x.Shape, x.Strides, x.Offset, r.order, k)
		iy := nd.VInd2BInd(y.Shape, y.Strides, y.Offset, r.order, k)
		iz := nd.VInd2BInd(z.Shape, z.Strides, z.Offset, r.order, k)
		if !fn(ix, iy, iz) {
			return false
		}
	}
	return true
}
