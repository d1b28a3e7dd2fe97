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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDType(t *testing.T) {
	for _, dt := range DTypes() {
		got, err := ParseDType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}
	got, err := ParseDType(" Float64 ")
	require.NoError(t, err)
	assert.Equal(t, Float64, got)

	_, err = ParseDType("float128")
	assert.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestDTypeOf(t *testing.T) {
	type celsius float64
	assert.Equal(t, Float64, DTypeOf[float64]())
	assert.Equal(t, Complex64, DTypeOf[complex64]())
	assert.Equal(t, Bool, DTypeOf[bool]())
	assert.Equal(t, Uint8, DTypeOf[byte]())
	assert.Equal(t, Generic, DTypeOf[any]())
	assert.Equal(t, Generic, DTypeOf[int]())
	assert.Equal(t, Generic, DTypeOf[celsius]())
	assert.Equal(t, Generic, DTypeOf[string]())
}

func TestDTypeKind(t *testing.T) {
	assert.Equal(t, KindFloat, BFloat16.Kind())
	assert.Equal(t, 2, BFloat16.Size())
	assert.True(t, Float16.IsFloat())
	assert.True(t, Uint32.IsInteger())
	assert.True(t, Int8.IsReal())
	assert.False(t, Complex64.IsReal())
	assert.True(t, Complex64.IsNumeric())
	assert.False(t, Bool.IsNumeric())
	assert.Equal(t, 0, Generic.Size())
	assert.False(t, DType(99).Valid())
	assert.Equal(t, "dtype(99)", DType(99).String())
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b, want DType
	}{
		{Int8, Uint8, Int16},
		{Int32, Uint16, Int32},
		{Uint32, Int32, Int64},
		{Uint64, Int64, Float64},
		{Int16, Float32, Float32},
		{Int32, Float32, Float64},
		{Uint8, Float16, Float16},
		{Float16, BFloat16, Float32},
		{Float32, Complex64, Complex64},
		{Float64, Complex64, Complex128},
		{Int64, Complex64, Complex128},
		{Bool, Int8, Int8},
		{Bool, Bool, Bool},
		{Generic, Float64, Generic},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Promote(tt.a, tt.b))
			assert.Equal(t, tt.want, Promote(tt.b, tt.a))
		})
	}
	assert.Equal(t, Float64, Promote(Int8, Uint16, Float32))
	assert.Equal(t, Generic, Promote())
}

func TestIsAllowedCast(t *testing.T) {
	tests := []struct {
		from, to DType
		policy   CastingPolicy
		want     bool
	}{
		{Int8, Int8, CastNone, true},
		{Int8, Int16, CastNone, false},
		{Int64, Float64, CastSafe, true},
		{Float64, Float32, CastSafe, false},
		{Float64, Float32, CastSameKind, true},
		{Int64, Int8, CastSameKind, true},
		{Uint8, Int8, CastSameKind, true},
		{Float64, Int64, CastSameKind, false},
		{Complex128, Float64, CastSameKind, false},
		{Float64, Int8, CastUnsafe, true},
		{Float64, Generic, CastSafe, true},
		{Generic, Float64, CastSameKind, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAllowedCast(tt.from, tt.to, tt.policy), "%s -> %s (%s)", tt.from, tt.to, tt.policy)
	}
}

func TestResolveOutputDType(t *testing.T) {
	tests := []struct {
		policy OutputPolicy
		inputs []DType
		want   DType
	}{
		{PolicySame, []DType{Int8, Float64}, Int8},
		{PolicyPromoted, []DType{Int8, Float32}, Float32},
		{PolicyDefault, nil, Float64},
		{PolicyDefaultIndex, []DType{Float32}, Int64},
		{PolicyAccumulation, []DType{Int8}, Int64},
		{PolicyAccumulation, []DType{Bool}, Int64},
		{PolicyAccumulation, []DType{Uint16}, Uint64},
		{PolicyAccumulation, []DType{Float16}, Float32},
		{PolicyAccumulation, []DType{Float32}, Float32},
		{PolicyAccumulation, []DType{Generic}, Generic},
		{PolicyFloatingPoint, []DType{Int32}, Float64},
		{PolicyFloatingPoint, []DType{Complex64}, Complex64},
		{PolicyRealFloatingPoint, []DType{Float32}, Float32},
		{PolicyBoolean, []DType{Float32}, Bool},
	}
	for _, tt := range tests {
		got, err := ResolveOutputDType(tt.policy, tt.inputs...)
		require.NoError(t, err, tt.policy.String())
		assert.Equal(t, tt.want, got, "%s%v", tt.policy, tt.inputs)
	}

	_, err := ResolveOutputDType(PolicyRealFloatingPoint, Complex128)
	var de *DTypeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, Complex128, de.Got)
	assert.ErrorIs(t, err, ErrUnsupportedDType)

	_, err = ResolveOutputDType(PolicySame)
	assert.ErrorIs(t, err, ErrInvalidOption)
}
