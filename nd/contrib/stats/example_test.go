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

package stats_test

import (
	"fmt"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/stats"
	"github.com/ajroetker/go-ndarray/nd/contrib/strided1d"
)

func ExampleSum() {
	x, _ := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, nd.RowMajor)

	rows, _ := stats.Sum(x, strided1d.WithDims(1))
	fmt.Println(rows.Shape(), rows.(*nd.View[float64]).Data())

	cols, _ := stats.Sum(x, strided1d.WithDims(0), strided1d.WithKeepDims(true))
	fmt.Println(cols.Shape(), cols.(*nd.View[float64]).Data())
	// Output:
	// [2] [6 15]
	// [1 3] [5 7 9]
}

func ExampleSortInPlace() {
	x, _ := nd.FromSlice([]int32{3, 1, 2, 9, 7, 8}, []int{2, 3}, nd.RowMajor)
	_ = stats.SortInPlace(x, false, strided1d.WithDims(-1))
	fmt.Println(x.Data())
	// Output: [1 2 3 7 8 9]
}

func ExampleFind() {
	x, _ := nd.FromSlice([]int{1, 3, 5, 2, 4, 6}, []int{2, 3}, nd.RowMajor)
	even, _ := stats.Find(x, func(v int, _ []int) bool { return v%2 == 0 }, -1, strided1d.WithDims(1))
	fmt.Println(even.Data())
	// Output: [-1 2]
}
