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

package strided1d

import (
	"errors"
	"slices"
	"testing"

	"github.com/ajroetker/go-ndarray/nd"
	"github.com/ajroetker/go-ndarray/nd/workerpool"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumFloat64(arrays []nd.Array, _ *Cursor) {
	var s float64
	for _, v := range Values[float64](arrays[0]) {
		s += v
	}
	Store(arrays[1], 0, s)
}

func sumAny(arrays []nd.Array, _ *Cursor) {
	x, out := arrays[0], arrays[1]
	var s float64
	for k := range x.Numel() {
		f, _ := nd.ToFloat64(x.LoadAny(At(x, k)))
		s += f
	}
	out.StoreAny(At(out, 0), s)
}

// scaledSum multiplies the sum by its 0-d argument.
func scaledSum(arrays []nd.Array, cur *Cursor) {
	sumFloat64(arrays, cur)
	s := Load[float64](arrays[1], 0) * Load[float64](arrays[2], 0)
	Store(arrays[1], 0, s)
}

var sumTable = &Table{
	Types:   [][]nd.DType{{nd.Float64, nd.Float64}},
	Kernels: []Kernel{sumFloat64},
	Default: sumAny,
}

func newSum(t *testing.T) *Reduce {
	t.Helper()
	r, err := NewReduce(sumTable, [][]nd.DType{{nd.Float64, nd.Float32, nd.Int32}}, nil, nd.PolicySame)
	require.NoError(t, err)
	return r
}

// cube returns the [2,3,4] array x[i,j,k] = 12i+4j+k stored in order.
func cube(t *testing.T, order nd.Order) *nd.View[float64] {
	t.Helper()
	x, err := nd.Zeros[float64](order, 2, 3, 4)
	require.NoError(t, err)
	for _, idx := range nd.Indices(x.Shape(), nd.RowMajor) {
		require.NoError(t, x.Set(float64(12*idx[0]+4*idx[1]+idx[2]), idx...))
	}
	return x
}

// values reads a float64 array in row-major logical order.
func values(t *testing.T, a nd.Array) []float64 {
	t.Helper()
	v, ok := a.(*nd.View[float64])
	require.True(t, ok, "got %T", a)
	var out []float64
	for _, idx := range nd.Indices(v.Shape(), nd.RowMajor) {
		x, err := v.Get(idx...)
		require.NoError(t, err)
		out = append(out, x)
	}
	return out
}

func TestTableLookup(t *testing.T) {
	k := sumTable.Lookup(nd.Float64, nd.Float64)
	require.NotNil(t, k)
	assert.NoError(t, sumTable.Validate())

	// Functions are not comparable; tell them apart by behaviour.
	x, err := nd.FromSlice([]int32{1, 2, 3}, []int{3}, nd.RowMajor)
	require.NoError(t, err)
	out := nd.Scalar[int32](0)
	sumTable.Lookup(nd.Int32, nd.Int32)([]nd.Array{x, out}, nil)
	assert.Equal(t, []int32{6}, out.Data())

	assert.ErrorIs(t, (&Table{Default: sumAny, Kernels: []Kernel{sumFloat64}}).Validate(), nd.ErrInvalidOption)
	assert.ErrorIs(t, (&Table{}).Validate(), nd.ErrInvalidOption)
	_, err = NewReduce(&Table{}, [][]nd.DType{nil}, nil, nd.PolicySame)
	assert.ErrorIs(t, err, nd.ErrInvalidOption)
}

func TestReduceDims(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		shape []int
		want  []float64
	}{
		{"All", nil, []int{}, []float64{276}},
		{"AllKeepDims", []Option{WithKeepDims(true)}, []int{1, 1, 1}, []float64{276}},
		{"Middle", []Option{WithDims(1)}, []int{2, 4}, []float64{12, 15, 18, 21, 48, 51, 54, 57}},
		{"MiddleKeepDims", []Option{WithDims(1), WithKeepDims(true)}, []int{2, 1, 4}, []float64{12, 15, 18, 21, 48, 51, 54, 57}},
		{"Outer", []Option{WithDims(-1, 0)}, []int{3}, []float64{60, 92, 124}},
		{"None", []Option{WithDims()}, []int{2, 3, 4}, nil},
	}
	sum := newSum(t)
	for _, order := range []nd.Order{nd.RowMajor, nd.ColumnMajor} {
		x := cube(t, order)
		for _, tt := range tests {
			t.Run(order.String()+"/"+tt.name, func(t *testing.T) {
				out, err := sum.Apply(x, nil, tt.opts...)
				require.NoError(t, err)
				assert.Equal(t, tt.shape, out.Shape())
				assert.Equal(t, order, out.Order())
				want := tt.want
				if want == nil {
					want = values(t, x)
				}
				if diff := cmp.Diff(want, values(t, out)); diff != "" {
					t.Errorf("sum mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestOutputShape(t *testing.T) {
	shape, err := OutputShape([]int{2, 3, 4}, WithDims(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{3}, shape)

	shape, err = OutputShape([]int{2, 3, 4}, WithDims(0, 2), WithKeepDims(true))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 1}, shape)

	_, err = OutputShape([]int{2, 3}, WithDims(2))
	assert.ErrorIs(t, err, nd.ErrInvalidDimension)
}

func TestCursorIndex(t *testing.T) {
	x := cube(t, nd.ColumnMajor)
	rev, err := x.WithLayout(nd.Layout{
		Shape:   x.Shape(),
		Strides: []int{x.Strides()[0], -x.Strides()[1], x.Strides()[2]},
		Offset:  2 * x.Strides()[1],
		Order:   nd.ColumnMajor,
	})
	require.NoError(t, err)

	var loops [][]int
	var mismatches int
	kernel := func(arrays []nd.Array, cur *Cursor) {
		loops = append(loops, slices.Clone(cur.Loop()))
		assert.Equal(t, len(loops)-1, cur.Call())
		assert.Equal(t, []int{2, 3}, cur.CoreShape())
		for k, v := range Values[float64](arrays[0]) {
			want, err := rev.Get(cur.Index(k)...)
			if err != nil || want != v {
				mismatches++
			}
		}
		Store(arrays[1], 0, 0.0)
	}
	r, err := NewReduce(&Table{Default: kernel}, [][]nd.DType{nil}, nil, nd.PolicySame)
	require.NoError(t, err)
	_, err = r.Apply(rev, nil, WithDims(0, 1))
	require.NoError(t, err)
	assert.Zero(t, mismatches)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, loops)
}

func TestReduceArgs(t *testing.T) {
	x, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, nd.RowMajor)
	require.NoError(t, err)
	r, err := NewReduce(&Table{Default: scaledSum}, [][]nd.DType{{nd.Float64}, {nd.Float64}}, nil, nd.PolicySame)
	require.NoError(t, err)

	perRow, err := nd.New([]float64{100, 0, 10}, []int{2}, []int{-2}, 2, nd.RowMajor)
	require.NoError(t, err)
	out, err := r.Apply(x, []nd.Array{perRow}, WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 1500}, values(t, out))

	out, err = r.Apply(x, []nd.Array{nd.Scalar(2.0)}, WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 30}, values(t, out))

	bad, err := nd.Zeros[float64](nd.RowMajor, 3)
	require.NoError(t, err)
	_, err = r.Apply(x, []nd.Array{bad}, WithDims(1))
	assert.ErrorIs(t, err, nd.ErrShapeMismatch)

	_, err = r.Apply(x, nil, WithDims(1))
	assert.ErrorIs(t, err, nd.ErrInvalidOption)

	ints := nd.Scalar[int32](2)
	_, err = r.Apply(x, []nd.Array{ints}, WithDims(1))
	var dtErr *nd.DTypeError
	require.ErrorAs(t, err, &dtErr)
	assert.Equal(t, 1, dtErr.Arg)
	assert.Equal(t, nd.Int32, dtErr.Got)
}

func TestValidationErrors(t *testing.T) {
	sum := newSum(t)
	x := cube(t, nd.RowMajor)

	u8, err := nd.Zeros[uint8](nd.RowMajor, 2, 2)
	require.NoError(t, err)
	_, err = sum.Apply(u8, nil)
	var dtErr *nd.DTypeError
	require.ErrorAs(t, err, &dtErr)
	assert.Equal(t, 0, dtErr.Arg)
	assert.Equal(t, nd.Uint8, dtErr.Got)
	assert.ErrorIs(t, err, nd.ErrUnsupportedDType)

	_, err = sum.Apply(x, nil, WithDims(3))
	var dimErr *nd.DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Dim)
	assert.Equal(t, 3, dimErr.Rank)

	_, err = sum.Apply(x, nil, WithDims(0, 1, 2, 0))
	assert.ErrorIs(t, err, nd.ErrInvalidDimension)
	_, err = sum.Apply(x, nil, WithDims(1, -2))
	assert.ErrorIs(t, err, nd.ErrInvalidOption)
	_, err = sum.Apply(x, nil, WithOrder(nd.Order(9)))
	assert.ErrorIs(t, err, nd.ErrInvalidOption)
	_, err = sum.Apply(x, nil, WithDType(nd.DType(200)))
	assert.ErrorIs(t, err, nd.ErrInvalidOption)
	_, err = sum.Apply(x, nil, WithDType(nd.Int32))
	assert.ErrorIs(t, err, nd.ErrInvalidCast)

	f32, err := sum.Apply(x, nil, WithDType(nd.Float32), WithDims(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []float32{60, 66, 72, 78}, f32.(*nd.View[float32]).Data())

	only64, err := NewReduce(sumTable, [][]nd.DType{nil}, []nd.DType{nd.Float64}, nd.PolicySame)
	require.NoError(t, err)
	_, err = only64.Apply(x, nil, WithDType(nd.Float32))
	require.ErrorAs(t, err, &dtErr)
	assert.Equal(t, 1, dtErr.Arg)
}

func TestAssign(t *testing.T) {
	sum := newSum(t)
	x := cube(t, nd.RowMajor)

	out, err := nd.Zeros[float64](nd.ColumnMajor, 2, 4)
	require.NoError(t, err)
	require.NoError(t, sum.Assign(x, nil, out, WithDims(1)))
	assert.Equal(t, []float64{12, 15, 18, 21, 48, 51, 54, 57}, values(t, out))

	f32, err := nd.Zeros[float32](nd.RowMajor, 2, 4)
	require.NoError(t, err)
	require.NoError(t, sum.Assign(x, nil, f32, WithDims(1), WithDType(nd.Int8)))
	assert.Equal(t, []float32{12, 15, 18, 21, 48, 51, 54, 57}, f32.Data())

	i64, err := nd.Zeros[int64](nd.RowMajor, 2, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, sum.Assign(x, nil, i64, WithDims(1)), nd.ErrInvalidCast)

	wrong, err := nd.FromSlice([]float64{7, 7, 7, 7}, []int{4}, nd.RowMajor)
	require.NoError(t, err)
	assert.ErrorIs(t, sum.Assign(x, nil, wrong, WithDims(1)), nd.ErrShapeMismatch)
	assert.Equal(t, []float64{7, 7, 7, 7}, wrong.Data())

	assert.ErrorIs(t, sum.Assign(x, nil, nil), nd.ErrInvalidOption)
}

func TestEmpty(t *testing.T) {
	calls := 0
	r, err := NewReduce(&Table{Default: func(arrays []nd.Array, _ *Cursor) {
		calls++
		assert.Equal(t, 0, arrays[0].Numel())
		Store(arrays[1], 0, -1.0)
	}}, [][]nd.DType{nil}, nil, nd.PolicySame)
	require.NoError(t, err)

	x, err := nd.Zeros[float64](nd.RowMajor, 3, 0)
	require.NoError(t, err)

	out, err := r.Apply(x, nil, WithDims(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, values(t, out))
	assert.Equal(t, 3, calls)

	calls = 0
	out, err = r.Apply(x, nil, WithDims(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, out.Shape())
	assert.Zero(t, calls)
}

func cusum(arrays []nd.Array, _ *Cursor) {
	var s float64
	for k, v := range Values[float64](arrays[0]) {
		s += v
		Store(arrays[1], k, s)
	}
}

func TestUnary(t *testing.T) {
	// Transposed view of [[1,2,3],[4,5,6]].
	x, err := nd.New([]float64{1, 2, 3, 4, 5, 6}, []int{3, 2}, []int{1, 3}, 0, nd.RowMajor)
	require.NoError(t, err)
	u, err := NewUnary(&Table{Default: cusum}, [][]nd.DType{{nd.Float64}}, []nd.DType{nd.Float64}, nd.PolicySame)
	require.NoError(t, err)

	out, err := u.Apply(x, nil, WithDims(0))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, out.Shape())
	assert.Equal(t, []float64{1, 4, 3, 9, 6, 15}, out.(*nd.View[float64]).Data())

	out, err = u.Apply(x, nil, WithOrder(nd.ColumnMajor))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5, 7, 12, 15, 21}, values(t, out))

	dst, err := nd.Zeros[float64](nd.RowMajor, 3, 2)
	require.NoError(t, err)
	require.NoError(t, u.Assign(x, nil, dst, WithDims(1), WithKeepDims(true)))
	assert.Equal(t, []float64{1, 5, 2, 7, 3, 9}, dst.Data())

	bad, err := nd.Zeros[float64](nd.RowMajor, 2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, u.Assign(x, nil, bad), nd.ErrShapeMismatch)
}

// reverse reverses each slice in place unless its 0-d argument is zero.
func reverse(arrays []nd.Array, _ *Cursor) {
	if Load[float64](arrays[1], 0) == 0 {
		return
	}
	x := arrays[0]
	for i, j := 0, x.Numel()-1; i < j; i, j = i+1, j-1 {
		a, b := Load[float64](x, i), Load[float64](x, j)
		Store(x, i, b)
		Store(x, j, a)
	}
}

func TestNullary(t *testing.T) {
	n, err := NewNullary(&Table{Default: reverse}, [][]nd.DType{{nd.Float64}, {nd.Float64}})
	require.NoError(t, err)

	x, err := nd.FromSlice([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, nd.RowMajor)
	require.NoError(t, err)
	on := []nd.Array{nd.Scalar(1.0)}

	out, err := n.Apply(x, on, WithDims(1), WithOrder(nd.ColumnMajor))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1, 6, 5, 4}, values(t, out))
	assert.Equal(t, nd.ColumnMajor, out.Order())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data(), "Apply must not modify its input")

	require.NoError(t, n.Assign(x, []nd.Array{nd.Scalar(0.0)}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())

	require.NoError(t, n.Assign(x, on, WithDims(0)))
	assert.Equal(t, []float64{4, 5, 6, 1, 2, 3}, x.Data())

	require.NoError(t, n.Assign(x, on))
	assert.Equal(t, []float64{3, 2, 1, 6, 5, 4}, x.Data())

	assert.ErrorIs(t, n.Assign(x, on, WithDType(nd.Float32)), nd.ErrInvalidOption)
	err = n.Assign(x, []nd.Array{nd.Scalar(int8(1))})
	assert.True(t, errors.Is(err, nd.ErrUnsupportedDType))
}

func TestContiguous(t *testing.T) {
	x, err := nd.New([]float64{0, 1, 2, 3, 4, 5}, []int{3}, []int{1}, 2, nd.RowMajor)
	require.NoError(t, err)
	s, ok := Contiguous[float64](x)
	require.True(t, ok)
	assert.Equal(t, []float64{2, 3, 4}, s)

	y, err := nd.New([]float64{0, 1, 2, 3, 4, 5}, []int{3}, []int{2}, 0, nd.RowMajor)
	require.NoError(t, err)
	_, ok = Contiguous[float64](y)
	assert.False(t, ok)

	var got []float64
	for _, v := range Values[float64](y) {
		got = append(got, v)
	}
	assert.Equal(t, []float64{0, 2, 4}, got)

	half, err := nd.NewFloat16(nd.Float16FromFloat32s([]float32{1, 2}), []int{2}, []int{1}, 0, nd.RowMajor)
	require.NoError(t, err)
	_, ok = Contiguous[float32](half)
	assert.False(t, ok)
}

func TestPool(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	sum := newSum(t)
	for _, order := range []nd.Order{nd.RowMajor, nd.ColumnMajor} {
		x := cube(t, order)
		want, err := sum.Apply(x, nil, WithDims(2))
		require.NoError(t, err)
		got, err := sum.Apply(x, nil, WithDims(2), WithPool(pool))
		require.NoError(t, err)
		assert.Equal(t, values(t, want), values(t, got))
	}

	// Every call sees its own row-major position and matching loop index.
	x := cube(t, nd.RowMajor)
	calls := make([][]int, 6)
	kernel := func(arrays []nd.Array, cur *Cursor) {
		calls[cur.Call()] = slices.Clone(cur.Loop())
		idx := cur.Index(0)
		assert.Equal(t, cur.Loop(), idx[:2])
		Store(arrays[1], 0, Load[float64](arrays[0], 0))
	}
	r, err := NewReduce(&Table{Default: kernel}, [][]nd.DType{nil}, nil, nd.PolicySame)
	require.NoError(t, err)
	out, err := r.Apply(x, nil, WithDims(-1), WithPool(pool))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, calls)
	assert.Equal(t, []float64{0, 4, 8, 12, 16, 20}, values(t, out))
}
