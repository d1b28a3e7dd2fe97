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

package stats

import (
	"math"
	"testing"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/strided1d"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logical reads a typed array in row-major logical order.
func logical[T any](t *testing.T, a nd.Array) []T {
	t.Helper()
	v, ok := a.(*nd.View[T])
	require.True(t, ok, "got %T", a)
	out := []T{}
	for _, idx := range nd.Indices(v.Shape(), nd.RowMajor) {
		x, err := v.Get(idx...)
		require.NoError(t, err)
		out = append(out, x)
	}
	return out
}

func matrix[T any](t *testing.T, data []T, rows, cols int) *nd.View[T] {
	t.Helper()
	x, err := nd.FromSlice(data, []int{rows, cols}, nd.RowMajor)
	require.NoError(t, err)
	return x
}

func transposed[T any](t *testing.T, x *nd.View[T]) *nd.View[T] {
	t.Helper()
	sh, st := x.Shape(), x.Strides()
	y, err := x.WithLayout(nd.Layout{
		Shape:   []int{sh[1], sh[0]},
		Strides: []int{st[1], st[0]},
		Offset:  x.Offset(),
		Order:   x.Order(),
	})
	require.NoError(t, err)
	return y
}

func TestSum(t *testing.T) {
	i8 := matrix(t, []int8{1, 2, 3, 4, 5, 6}, 2, 3)
	total, err := Sum(i8)
	require.NoError(t, err)
	assert.Equal(t, nd.Int64, total.DType())
	assert.Equal(t, []int64{21}, logical[int64](t, total))

	cols, err := Sum(i8, strided1d.WithDims(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7, 9}, logical[int64](t, cols))

	big := matrix(t, []int8{100, 100, 100, 100}, 2, 2)
	total, err = Sum(big)
	require.NoError(t, err)
	assert.Equal(t, []int64{400}, logical[int64](t, total), "accumulation must not overflow int8")

	u16 := matrix(t, []uint16{1, 2, 3, 4}, 2, 2)
	total, err = Sum(u16, strided1d.WithDims(1), strided1d.WithKeepDims(true))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, total.Shape())
	assert.Equal(t, []uint64{3, 7}, logical[uint64](t, total))
}

func TestSumFloat64Layouts(t *testing.T) {
	data := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}
	x := matrix(t, data, 2, 3)
	xt := transposed(t, x)

	rows, err := Sum(x, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5, 13.5}, logical[float64](t, rows))

	cols, err := Sum(xt, strided1d.WithDims(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5, 13.5}, logical[float64](t, cols))

	all, err := Sum(xt)
	require.NoError(t, err)
	assert.Equal(t, []float64{18}, logical[float64](t, all))

	out, err := nd.Zeros[float64](nd.RowMajor, 3)
	require.NoError(t, err)
	require.NoError(t, SumTo(x, out, strided1d.WithDims(0)))
	assert.Equal(t, []float64{4, 6, 8}, out.Data())
}

func TestSumOtherDTypes(t *testing.T) {
	half, err := nd.NewFloat16(nd.Float16FromFloat32s([]float32{1, 2, 3, 4}), []int{4}, []int{1}, 0, nd.RowMajor)
	require.NoError(t, err)
	s, err := Sum(half)
	require.NoError(t, err)
	assert.Equal(t, nd.Float32, s.DType())
	assert.Equal(t, []float32{10}, logical[float32](t, s))

	c, err := nd.FromSlice([]complex128{1 + 1i, 2 - 3i}, []int{2}, nd.RowMajor)
	require.NoError(t, err)
	s, err = Sum(c)
	require.NoError(t, err)
	assert.Equal(t, []complex128{3 - 2i}, logical[complex128](t, s))

	b, err := nd.FromSlice([]bool{true, false, true}, []int{3}, nd.RowMajor)
	require.NoError(t, err)
	s, err = Sum(b)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, logical[int64](t, s))

	generic, err := nd.FromSlice([]int{1, 2, 3}, []int{3}, nd.RowMajor)
	require.NoError(t, err)
	s, err = Sum(generic)
	require.NoError(t, err)
	assert.Equal(t, nd.Generic, s.DType())
	assert.Equal(t, []any{6.0}, logical[any](t, s))
}

func TestMax(t *testing.T) {
	x := matrix(t, []float64{1, 7, 3, 4, 2, 6}, 2, 3)
	m, err := Max(x, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 6}, logical[float64](t, m))

	m, err = Max(transposed(t, x), strided1d.WithDims(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 6}, logical[float64](t, m))

	withNaN := matrix(t, []float64{1, math.NaN(), 3, 4, 5, 6}, 2, 3)
	m, err = Max(withNaN, strided1d.WithDims(1))
	require.NoError(t, err)
	got := logical[float64](t, m)
	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, 6.0, got[1])

	ints := matrix(t, []int32{-5, -2, -9, -1}, 1, 4)
	m, err = Max(ints)
	require.NoError(t, err)
	assert.Equal(t, []int32{-1}, logical[int32](t, m))

	emptyF, err := nd.Zeros[float32](nd.RowMajor, 2, 0)
	require.NoError(t, err)
	m, err = Max(emptyF, strided1d.WithDims(1))
	require.NoError(t, err)
	if diff := cmp.Diff([]float32{float32(math.NaN()), float32(math.NaN())}, logical[float32](t, m), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Max of empty slices (-want +got):\n%s", diff)
	}

	emptyI, err := nd.Zeros[uint8](nd.RowMajor, 0)
	require.NoError(t, err)
	m, err = Max(emptyI)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0}, logical[uint8](t, m))

	c, err := nd.FromSlice([]complex64{1}, []int{1}, nd.RowMajor)
	require.NoError(t, err)
	_, err = Max(c)
	assert.ErrorIs(t, err, nd.ErrUnsupportedDType)
}

func TestMaxBy(t *testing.T) {
	x := matrix(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	m, err := MaxBy(x, func(v float64, idx []int) float64 {
		return v * float64(idx[1])
	}, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 12}, m.Data())

	m, err = MaxBy(x, func(v float64, idx []int) float64 {
		return -v * float64(idx[0]+1)
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1}, m.Data())

	_, err = MaxBy(x, func(float64, []int) float64 { return 0 }, strided1d.WithDType(nd.Float32))
	assert.ErrorIs(t, err, nd.ErrUnsupportedDType)
}

func TestFind(t *testing.T) {
	x := matrix(t, []int{1, 2, 3, 4, 5, 6}, 2, 3)

	got, err := Find(x, func(v int, _ []int) bool { return v > 2 }, -1, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got.Data())

	got, err = Find(x, func(v int, _ []int) bool { return v > 5 }, -1, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 6}, got.Data())

	got, err = Find(x, func(_ int, idx []int) bool { return idx[1] == 2 }, 0, strided1d.WithDims(1), strided1d.WithKeepDims(true))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, got.Shape())
	assert.Equal(t, []int{3, 6}, got.Data())

	got, err = Find(transposed(t, x), func(v int, _ []int) bool { return v%2 == 0 }, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got.Data())

	_, err = Find(x, func(int, []int) bool { return true }, 0, strided1d.WithDims(5))
	assert.ErrorIs(t, err, nd.ErrInvalidDimension)
}

func TestFindStopsPerSlice(t *testing.T) {
	// Row 0 matches first, row 1 in the middle and row 2 never.
	rows := [][]int{{5, 0, 0, 0}, {0, 0, 7, 0}, {0, 0, 0, 0}}
	var flat, flipped []int
	for _, r := range rows {
		flat = append(flat, r...)
		flipped = append(flipped, r[3], r[2], r[1], r[0])
	}
	rev, err := nd.New(flipped, []int{3, 4}, []int{4, -1}, 3, nd.RowMajor)
	require.NoError(t, err)

	for name, x := range map[string]*nd.View[int]{
		"RowMajor": matrix(t, flat, 3, 4),
		"Flipped":  rev,
	} {
		t.Run(name, func(t *testing.T) {
			calls := make([]int, 3)
			got, err := Find(x, func(v int, idx []int) bool {
				calls[idx[0]]++
				return v > 0
			}, -1, strided1d.WithDims(1))
			require.NoError(t, err)
			assert.Equal(t, []int{5, 7, -1}, got.Data())
			assert.Equal(t, []int{1, 3, 4}, calls)
		})
	}
}

func TestCumulative(t *testing.T) {
	x, err := nd.FromSlice([]float64{1, 3, 2, 5, 4}, []int{5}, nd.RowMajor)
	require.NoError(t, err)
	c, err := Cumax(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 3, 5, 5}, logical[float64](t, c))

	withNaN, err := nd.FromSlice([]float32{1, float32(math.NaN()), 5}, []int{3}, nd.RowMajor)
	require.NoError(t, err)
	c, err = Cumax(withNaN)
	require.NoError(t, err)
	if diff := cmp.Diff([]float32{1, float32(math.NaN()), float32(math.NaN())}, logical[float32](t, c), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("Cumax with NaN (-want +got):\n%s", diff)
	}

	m := matrix(t, []int16{1, 2, 3, 4, 5, 6}, 2, 3)
	s, err := Cusum(m, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, nd.Int64, s.DType())
	assert.Equal(t, []int64{1, 3, 6, 4, 9, 15}, logical[int64](t, s))

	s, err = Cusum(m)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 6, 10, 15, 21}, logical[int64](t, s))

	out, err := nd.Zeros[float64](nd.ColumnMajor, 2, 3)
	require.NoError(t, err)
	require.NoError(t, CusumTo(m, out, strided1d.WithDims(0)))
	assert.Equal(t, []float64{1, 2, 3, 5, 7, 9}, logical[float64](t, out))

	require.NoError(t, CumaxTo(m, m, strided1d.WithDims(0)))
	assert.Equal(t, []int16{1, 2, 3, 4, 5, 6}, m.Data())
}

func TestSort(t *testing.T) {
	x := matrix(t, []float64{3, 1, 2, 9, 7, 8}, 2, 3)

	s, err := Sort(x, false, strided1d.WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 7, 8, 9}, logical[float64](t, s))
	assert.Equal(t, []float64{3, 1, 2, 9, 7, 8}, x.Data())

	s, err = Sort(x, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8, 7, 3, 2, 1}, logical[float64](t, s))

	xt := transposed(t, x)
	require.NoError(t, SortInPlace(xt, false, strided1d.WithDims(0)))
	assert.Equal(t, []float64{1, 2, 3, 7, 8, 9}, x.Data())

	require.NoError(t, SortInPlace(x, true, strided1d.WithDims(0)))
	assert.Equal(t, []float64{7, 8, 9, 1, 2, 3}, x.Data())

	half, err := nd.NewBFloat16(nd.BFloat16FromFloat32s([]float32{2, -1, 0.5}), []int{3}, []int{1}, 0, nd.RowMajor)
	require.NoError(t, err)
	require.NoError(t, SortInPlace(half, false))
	assert.Equal(t, []float32{-1, 0.5, 2}, logical[float32](t, half))

	c, err := nd.FromSlice([]complex128{1, 2}, []int{2}, nd.RowMajor)
	require.NoError(t, err)
	_, err = Sort(c, false)
	var dtErr *nd.DTypeError
	require.ErrorAs(t, err, &dtErr)
	assert.Equal(t, 0, dtErr.Arg)
}
