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

package nd

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iota64(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// elements reads every element of a in row-major logical order.
func elements[T any](t *testing.T, v *View[T]) []T {
	t.Helper()
	var out []T
	for _, subs := range Indices(v.Shape(), RowMajor) {
		x, err := v.Get(subs...)
		require.NoError(t, err)
		out = append(out, x)
	}
	return out
}

func TestNewValidation(t *testing.T) {
	buf := iota64(6)

	_, err := New(buf, []int{2, 3}, []int{3}, 0, RowMajor)
	assert.ErrorIs(t, err, ErrRankMismatch)

	_, err = New(buf, []int{2, -3}, []int{3, 1}, 0, RowMajor)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = New(buf, []int{2, 3}, []int{3, 1}, 1, RowMajor)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New(buf, []int{2, 3}, []int{-3, 1}, 0, RowMajor)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New(buf, []int{2, 3}, []int{3, 1}, -1, RowMajor)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = NewDType(Float32, buf, []int{6}, []int{1}, 0, RowMajor)
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	// Empty views may have any offset within reason.
	v, err := New(buf, []int{0, 3}, []int{3, 1}, 100, RowMajor)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Numel())
}

func TestViewAccess(t *testing.T) {
	buf := iota64(6)
	v, err := New(buf, []int{2, 3}, []int{-3, 1}, 3, RowMajor)
	require.NoError(t, err)

	assert.Equal(t, Float64, v.DType())
	assert.Equal(t, 2, v.Rank())
	assert.Equal(t, 6, v.Numel())
	assert.False(t, v.AccessorProtocol())
	assert.Equal(t, []float64{4, 5, 6, 1, 2, 3}, elements(t, v))

	require.NoError(t, v.Set(-1, 1, 0))
	assert.Equal(t, -1.0, buf[0])

	_, err = v.Get(2, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.Equal(t, 5.0, v.LoadAny(4))
	v.StoreAny(4, int8(9))
	assert.Equal(t, 9.0, buf[4])
	assert.Panics(t, func() { v.StoreAny(4, "nine") })
}

func TestViewConstructors(t *testing.T) {
	s := Scalar(int32(7))
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Numel())
	x, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, int32(7), x)

	f, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, []int{2, 3}, ColumnMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, f.Strides())
	assert.Equal(t, []float32{1, 3, 5, 2, 4, 6}, elements(t, f))

	_, err = FromSlice([]float32{1, 2}, []int{3}, RowMajor)
	assert.ErrorIs(t, err, ErrBadShape)

	z, err := Zeros[uint16](RowMajor, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, Uint16, z.DType())
	assert.Equal(t, []uint16{0, 0, 0, 0}, z.Data())

	g, err := FromSlice([]any{"a", 1, nil}, []int{3}, RowMajor)
	require.NoError(t, err)
	assert.Equal(t, Generic, g.DType())
}

func TestAlloc(t *testing.T) {
	for _, dt := range DTypes() {
		t.Run(dt.String(), func(t *testing.T) {
			a, err := Alloc(dt, []int{2, 3}, ColumnMajor)
			require.NoError(t, err)
			assert.Equal(t, dt, a.DType())
			assert.Equal(t, 6, a.Numel())
			assert.Equal(t, 6, a.BufferLen())
			assert.Equal(t, []int{1, 2}, a.Strides())
			assert.Equal(t, dt == Float16 || dt == BFloat16, a.AccessorProtocol())
		})
	}
	_, err := Alloc(DType(200), []int{1}, RowMajor)
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestHalfPrecision(t *testing.T) {
	values := []float32{1, 2.5, -3, 0.125}

	h, err := NewFloat16(Float16FromFloat32s(values), []int{4}, []int{1}, 0, RowMajor)
	require.NoError(t, err)
	assert.Equal(t, Float16, h.DType())
	assert.True(t, h.AccessorProtocol())
	assert.Equal(t, values, elements(t, h))

	bits := BFloat16FromFloat32s(values)
	b, err := NewBFloat16(bits, []int{2, 2}, []int{1, 2}, 0, ColumnMajor)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -3, 2.5, 0.125}, elements(t, b))
	assert.Equal(t, values, BFloat16ToFloat32s(bits))

	require.NoError(t, b.Set(6, 1, 1))
	assert.Equal(t, float32(6), BFloat16ToFloat32s(bits)[3])
}

func TestBFloat16Rounding(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		bits uint16
	}{
		{"Exact", 2.5, 0x4020},
		{"TieToEven", 1 + 1.0/256, 0x3F80},             // 0x3F808000
		{"AboveHalf", 1 + 1.0/256 + 1.0/512, 0x3F81},   // 0x3F80C000
		{"TieOddRoundsUp", 1 + 3.0/256, 0x3F82},        // 0x3F818000
		{"Negative", -(1 + 1.0/256 + 1.0/512), 0xBF81}, // 0xBF80C000
		{"Overflow", math.MaxFloat32, 0x7F80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []uint16{tt.bits}, BFloat16FromFloat32s([]float32{tt.in}))

			buf := make([]uint16, 1)
			b, err := NewBFloat16(buf, []int{1}, []int{1}, 0, RowMajor)
			require.NoError(t, err)
			require.NoError(t, b.Set(tt.in, 0))
			assert.Equal(t, tt.bits, buf[0])
			got, err := b.Get(0)
			require.NoError(t, err)
			assert.Equal(t, math.Float32frombits(uint32(tt.bits)<<16), got)
		})
	}

	nan := BFloat16FromFloat32s([]float32{float32(math.NaN())})
	assert.True(t, math.IsNaN(float64(BFloat16ToFloat32s(nan)[0])))
}

func TestFlatten1D(t *testing.T) {
	buf := iota64(12)
	x, err := New(buf, []int{2, 3}, []int{6, 1}, 1, RowMajor)
	require.NoError(t, err)

	// Rows are 6 apart but only 3 long: no single stride covers them.
	flat := Flatten1D(x, x.Layout()).(*View[float64])
	assert.True(t, flat.AccessorProtocol())
	if diff := cmp.Diff([]float64{2, 3, 4, 8, 9, 10}, elements(t, flat)); diff != "" {
		t.Errorf("gathered elements mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, flat.Set(0, 4))
	assert.Equal(t, 0.0, buf[8])

	col := Layout{Shape: []int{2, 1}, Strides: []int{6, 1}, Offset: 3, Order: RowMajor}
	merged := Flatten1D(x, col).(*View[float64])
	assert.False(t, merged.AccessorProtocol())
	assert.Equal(t, []int{6}, merged.Strides())
	assert.Equal(t, []float64{4, 10}, elements(t, merged))

	empty := Flatten1D(x, Layout{Shape: []int{0, 3}, Strides: []int{6, 1}, Order: RowMajor})
	assert.Equal(t, []int{0}, empty.Shape())

	scalar := Flatten1D(x, Layout{Shape: []int{}, Strides: []int{}, Offset: 5})
	assert.Equal(t, []int{1}, scalar.Shape())
	assert.Equal(t, 6.0, scalar.LoadAny(scalar.Offset()))
}

func TestRelayout(t *testing.T) {
	x, err := FromSlice(iota64(6), []int{2, 3}, RowMajor)
	require.NoError(t, err)

	tr, err := Relayout(x, Layout{Shape: []int{3, 2}, Strides: []int{1, 3}, Order: RowMajor})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, elements(t, tr.(*View[float64])))

	_, err = Relayout(x, Layout{Shape: []int{3, 3}, Strides: []int{3, 1}})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// The original is untouched.
	assert.Equal(t, []int{3, 1}, x.Strides())
}

func TestCast(t *testing.T) {
	i, ok := Cast[int8](3.7)
	assert.True(t, ok)
	assert.Equal(t, int8(3), i)

	b, ok := Cast[bool](0)
	assert.True(t, ok)
	assert.False(t, b)

	c, ok := Cast[complex64](2)
	assert.True(t, ok)
	assert.Equal(t, complex64(2), c)

	u, ok := Cast[uint32](true)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), u)

	a, ok := Cast[any](nil)
	assert.True(t, ok)
	assert.Nil(t, a)

	_, ok = Cast[float64]("x")
	assert.False(t, ok)
}
