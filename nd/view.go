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
	"fmt"
	"slices"
)

// Accessor is element storage that must be read and written through
// functions rather than by indexing a slice.
type Accessor[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
}

// Array is the dtype-erased view of a *View[T], used where the element type
// is only known at run time (dtype dispatch tables). It is implemented only
// by *View[T].
type Array interface {
	DType() DType
	Layout() Layout
	Shape() []int
	Strides() []int
	Offset() int
	Order() Order
	Rank() int
	Numel() int

	// BufferLen is the number of elements in the underlying buffer.
	BufferLen() int

	// AccessorProtocol reports whether elements go through an Accessor.
	AccessorProtocol() bool

	// LoadAny reads the element at buffer index i.
	LoadAny(i int) any

	// StoreAny converts v to the element type and writes it at buffer index
	// i. It panics if v cannot be converted.
	StoreAny(i int, v any)

	withLayout(l Layout) Array
	gather(l Layout) Array
}

// View is an immutable strided view over a buffer of T.
//
// The storage is either a slice (direct indexing) or an Accessor. The
// slices returned by Shape and Strides are shared with the view and must not
// be modified.
type View[T any] struct {
	dtype   DType
	data    []T
	acc     Accessor[T]
	shape   []int
	strides []int
	offset  int
	order   Order
}

var _ Array = (*View[float64])(nil)

// New returns a view over data with the dtype inferred from T.
func New[T any](data []T, shape, strides []int, offset int, order Order) (*View[T], error) {
	return NewDType(DTypeOf[T](), data, shape, strides, offset, order)
}

// NewDType returns a view over data tagged with dt. T must be the direct
// element type of dt, or dt must be Generic.
func NewDType[T any](dt DType, data []T, shape, strides []int, offset int, order Order) (*View[T], error) {
	if dt != Generic && DTypeOf[T]() != dt {
		return nil, fmt.Errorf("%w: %s cannot be stored directly as %T", ErrUnsupportedDType, dt, data)
	}
	v := &View[T]{
		dtype:   dt,
		data:    data,
		shape:   slices.Clone(shape),
		strides: slices.Clone(strides),
		offset:  offset,
		order:   order,
	}
	if err := v.Layout().check(len(data)); err != nil {
		return nil, err
	}
	return v, nil
}

// NewAccessor returns a view whose elements are read and written through acc.
func NewAccessor[T any](dt DType, acc Accessor[T], shape, strides []int, offset int, order Order) (*View[T], error) {
	if acc == nil {
		return nil, fmt.Errorf("%w: nil accessor", ErrInvalidOption)
	}
	if dt != Generic && elemDType(dt) != DTypeOf[T]() {
		return nil, fmt.Errorf("%w: %s cannot be accessed as %T", ErrUnsupportedDType, dt, *new(T))
	}
	v := &View[T]{
		dtype:   dt,
		acc:     acc,
		shape:   slices.Clone(shape),
		strides: slices.Clone(strides),
		offset:  offset,
		order:   order,
	}
	if err := v.Layout().check(acc.Len()); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice returns a contiguous view of shape over data in the given order.
// len(data) must equal Numel(shape).
func FromSlice[T any](data []T, shape []int, order Order) (*View[T], error) {
	if n := Numel(shape); n != len(data) {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrBadShape, shape, n, len(data))
	}
	return New(data, shape, ShapeToStrides(shape, order), 0, order)
}

// Scalar returns a rank-0 view holding v.
func Scalar[T any](v T) *View[T] {
	return &View[T]{dtype: DTypeOf[T](), data: []T{v}, shape: []int{}, strides: []int{}}
}

// Zeros returns a freshly allocated contiguous view of shape.
func Zeros[T any](order Order, shape ...int) (*View[T], error) {
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: dimension %d has negative size %d", ErrBadShape, i, d)
		}
	}
	return New(make([]T, Numel(shape)), shape, ShapeToStrides(shape, order), 0, order)
}

// DType returns the element dtype tag.
func (v *View[T]) DType() DType { return v.dtype }

// Layout returns the view's layout. The slices are shared with the view.
func (v *View[T]) Layout() Layout {
	return Layout{Shape: v.shape, Strides: v.strides, Offset: v.offset, Order: v.order}
}

// Shape returns the dimension sizes.
func (v *View[T]) Shape() []int { return v.shape }

// Strides returns the per-dimension strides in elements.
func (v *View[T]) Strides() []int { return v.strides }

// Offset returns the buffer index of the element at the all-zero index.
func (v *View[T]) Offset() int { return v.offset }

// Order returns the declared order.
func (v *View[T]) Order() Order { return v.order }

// Rank returns the number of dimensions.
func (v *View[T]) Rank() int { return len(v.shape) }

// Numel returns the number of elements.
func (v *View[T]) Numel() int { return Numel(v.shape) }

// BufferLen returns the length of the underlying buffer.
func (v *View[T]) BufferLen() int {
	if v.acc != nil {
		return v.acc.Len()
	}
	return len(v.data)
}

// AccessorProtocol reports whether elements go through an Accessor.
func (v *View[T]) AccessorProtocol() bool { return v.acc != nil }

// Data returns the underlying slice, or nil for accessor storage.
func (v *View[T]) Data() []T { return v.data }

// Accessor returns the accessor storage, or nil for direct storage.
func (v *View[T]) Accessor() Accessor[T] { return v.acc }

// Getter returns a function reading the element at a buffer index. Resolve
// it once before a loop.
func (v *View[T]) Getter() func(i int) T {
	if v.acc != nil {
		return v.acc.Get
	}
	data := v.data
	return func(i int) T { return data[i] }
}

// Setter returns a function writing the element at a buffer index. Resolve
// it once before a loop.
func (v *View[T]) Setter() func(i int, x T) {
	if v.acc != nil {
		return v.acc.Set
	}
	data := v.data
	return func(i int, x T) { data[i] = x }
}

// Get returns the element at the given subscripts.
func (v *View[T]) Get(subs ...int) (T, error) {
	idx, err := Sub2Ind(v.shape, v.strides, v.offset, subs...)
	if err != nil {
		var zero T
		return zero, err
	}
	if v.acc != nil {
		return v.acc.Get(idx), nil
	}
	return v.data[idx], nil
}

// Set writes x at the given subscripts.
func (v *View[T]) Set(x T, subs ...int) error {
	idx, err := Sub2Ind(v.shape, v.strides, v.offset, subs...)
	if err != nil {
		return err
	}
	if v.acc != nil {
		v.acc.Set(idx, x)
		return nil
	}
	v.data[idx] = x
	return nil
}

// LoadAny reads the element at buffer index i.
func (v *View[T]) LoadAny(i int) any {
	if v.acc != nil {
		return v.acc.Get(i)
	}
	return v.data[i]
}

// StoreAny converts x to T and writes it at buffer index i.
func (v *View[T]) StoreAny(i int, x any) {
	t, ok := Cast[T](x)
	if !ok {
		panic(fmt.Sprintf("nd: cannot store %T in a %s view", x, v.dtype))
	}
	if v.acc != nil {
		v.acc.Set(i, t)
		return
	}
	v.data[i] = t
}

// WithLayout returns a view over the same buffer with another layout. The
// layout is checked against the buffer.
func (v *View[T]) WithLayout(l Layout) (*View[T], error) {
	if err := l.check(v.BufferLen()); err != nil {
		return nil, err
	}
	return v.relayout(l), nil
}

func (v *View[T]) relayout(l Layout) *View[T] {
	return &View[T]{
		dtype:   v.dtype,
		data:    v.data,
		acc:     v.acc,
		shape:   slices.Clone(l.Shape),
		strides: slices.Clone(l.Strides),
		offset:  l.Offset,
		order:   l.Order,
	}
}

func (v *View[T]) withLayout(l Layout) Array { return v.relayout(l) }

func (v *View[T]) gather(l Layout) Array {
	n := Numel(l.Shape)
	g := &gathered[T]{
		get:    v.Getter(),
		set:    v.Setter(),
		layout: l.Clone(),
		n:      n,
	}
	return &View[T]{
		dtype:   v.dtype,
		acc:     g,
		shape:   []int{n},
		strides: []int{1},
		order:   l.Order,
	}
}

// String describes the view without its elements.
func (v *View[T]) String() string {
	kind := "direct"
	if v.acc != nil {
		kind = "accessor"
	}
	return fmt.Sprintf("View[%s %s %s]", v.dtype, v.Layout(), kind)
}

// gathered exposes an arbitrary strided layout as a dense 1-D sequence in
// row-major logical order.
type gathered[T any] struct {
	get    func(int) T
	set    func(int, T)
	layout Layout
	n      int
}

func (g *gathered[T]) Len() int { return g.n }

func (g *gathered[T]) Get(k int) T {
	return g.get(VInd2BInd(g.layout.Shape, g.layout.Strides, g.layout.Offset, RowMajor, k))
}

func (g *gathered[T]) Set(k int, x T) {
	g.set(VInd2BInd(g.layout.Shape, g.layout.Strides, g.layout.Offset, RowMajor, k), x)
}
