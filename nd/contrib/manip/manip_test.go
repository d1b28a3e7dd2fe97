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

package manip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/contrib/algo"
)

func rows(t *testing.T, x *nd.View[float64]) []float64 {
	t.Helper()
	s, err := algo.ToSlice(x, nd.RowMajor)
	require.NoError(t, err)
	return s
}

func TestReverse(t *testing.T) {
	x, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, nd.RowMajor)
	require.NoError(t, err)

	lr, err := Fliplr(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1, 6, 5, 4}, rows(t, lr))
	assert.Equal(t, []int{3, -1}, lr.Strides())
	assert.Equal(t, 2, lr.Offset())

	back, err := Fliplr(lr)
	require.NoError(t, err)
	if diff := cmp.Diff(x.Layout(), back.Layout()); diff != "" {
		t.Errorf("Fliplr twice changed the layout (-want +got):\n%s", diff)
	}
	assert.Equal(t, rows(t, x), rows(t, back))

	ud, err := Flipud(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 1, 2, 3}, rows(t, ud))

	// Views share the buffer.
	require.NoError(t, ud.Set(-1, 0, 0))
	assert.Equal(t, -1.0, x.Data()[3])

	empty, err := nd.Zeros[float64](nd.RowMajor, 0, 3)
	require.NoError(t, err)
	re, err := Reverse(empty, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, re.Offset())

	_, err = Flipud(nd.Scalar(1.0))
	assert.ErrorIs(t, err, nd.ErrInvalidDimension)
}

func TestFlatten(t *testing.T) {
	// xt is the transpose of the row-major [[1,2,3],[4,5,6]].
	x, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, nd.RowMajor)
	require.NoError(t, err)
	xt, err := x.WithLayout(nd.Layout{Shape: []int{3, 2}, Strides: []int{1, 3}, Order: nd.RowMajor})
	require.NoError(t, err)

	tests := []struct {
		name  string
		order FlattenOrder
		want  []float64
		ord   nd.Order
	}{
		{"same", OrderSame, []float64{1, 4, 2, 5, 3, 6}, nd.RowMajor},
		{"any", OrderAny, []float64{1, 2, 3, 4, 5, 6}, nd.ColumnMajor},
		{"row", OrderRowMajor, []float64{1, 4, 2, 5, 3, 6}, nd.RowMajor},
		{"column", OrderColumnMajor, []float64{1, 2, 3, 4, 5, 6}, nd.ColumnMajor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Flatten(xt, tc.order)
			require.NoError(t, err)
			assert.Equal(t, []int{6}, f.Shape())
			assert.Equal(t, tc.want, f.Data())
			assert.Equal(t, tc.ord, f.Order())
		})
	}

	s, err := Flatten(nd.Scalar(7.0), OrderAny)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Shape())
	assert.Equal(t, []float64{7}, s.Data())

	_, err = Flatten(xt, FlattenOrder(9))
	assert.ErrorIs(t, err, nd.ErrInvalidOption)
}

func TestFlattenFrom(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	x, err := nd.FromSlice(data, []int{2, 2, 2}, nd.RowMajor)
	require.NoError(t, err)

	f, err := FlattenFrom(x, 1, OrderRowMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, f.Shape())
	assert.Equal(t, data, f.Data())
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, rows(t, f))

	// The column-major buffer of the [2,4] result interleaves the outer dim.
	c, err := FlattenFrom(x, 1, OrderColumnMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, c.Shape())
	assert.Equal(t, []float64{0, 4, 2, 6, 1, 5, 3, 7}, c.Data())

	last, err := FlattenFrom(x, -1, OrderSame)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, last.Shape())
	assert.Equal(t, data, last.Data())

	_, err = FlattenFrom(x, 3, OrderSame)
	assert.ErrorIs(t, err, nd.ErrInvalidDimension)
}

func TestFlattenKeepsDType(t *testing.T) {
	h, err := nd.NewFloat16(nd.Float16FromFloat32s([]float32{1, 2, 3, 4}), []int{2, 2}, []int{1, 2}, 0, nd.RowMajor)
	require.NoError(t, err)
	f, err := Flatten(h, OrderSame)
	require.NoError(t, err)
	assert.Equal(t, nd.Float16, f.DType())
	got, err := algo.ToSlice(f, nd.RowMajor)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 3, 2, 4}, got)

	g, err := nd.FromSlice([]int{5, 6}, []int{2}, nd.RowMajor)
	require.NoError(t, err)
	fg, err := Flatten(g, OrderAny)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, fg.Data())
}
