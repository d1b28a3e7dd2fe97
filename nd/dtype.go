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
	"strings"
)

// DType identifies the element representation of a buffer.
type DType uint8

const (
	// Generic elements are boxed Go values ([]any).
	Generic DType = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64

	// Float16 elements are IEEE half-precision bits ([]uint16) read as float32.
	Float16

	// BFloat16 elements are brain-float bits ([]uint16) read as float32.
	BFloat16
	Float32
	Float64
	Complex64
	Complex128

	numDTypes
)

var dtypeNames = [numDTypes]string{
	Generic:    "generic",
	Bool:       "bool",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Float16:    "float16",
	BFloat16:   "bfloat16",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

var dtypeSizes = [numDTypes]int{
	Generic:    0,
	Bool:       1,
	Int8:       1,
	Int16:      2,
	Int32:      4,
	Int64:      8,
	Uint8:      1,
	Uint16:     2,
	Uint32:     4,
	Uint64:     8,
	Float16:    2,
	BFloat16:   2,
	Float32:    4,
	Float64:    8,
	Complex64:  8,
	Complex128: 16,
}

// String returns the canonical lowercase name of the dtype.
func (d DType) String() string {
	if d >= numDTypes {
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
	return dtypeNames[d]
}

// Size returns the size in bytes of one element, or 0 for Generic.
func (d DType) Size() int {
	if d >= numDTypes {
		return 0
	}
	return dtypeSizes[d]
}

// Valid reports whether d is one of the known dtypes.
func (d DType) Valid() bool {
	return d < numDTypes
}

// ParseDType returns the dtype with the given name.
func ParseDType(s string) (DType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range dtypeNames {
		if n == name {
			return DType(i), nil
		}
	}
	return Generic, fmt.Errorf("%w: unknown dtype %q", ErrUnsupportedDType, s)
}

// DTypes returns every known dtype in declaration order.
func DTypes() []DType {
	out := make([]DType, numDTypes)
	for i := range out {
		out[i] = DType(i)
	}
	return out
}

// Kind groups dtypes by numeric family.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindBool
	KindUnsigned
	KindSigned
	KindFloat
	KindComplex
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindBool:
		return "bool"
	case KindUnsigned:
		return "unsigned"
	case KindSigned:
		return "signed"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Kind returns the numeric family of d.
func (d DType) Kind() Kind {
	switch d {
	case Bool:
		return KindBool
	case Int8, Int16, Int32, Int64:
		return KindSigned
	case Uint8, Uint16, Uint32, Uint64:
		return KindUnsigned
	case Float16, BFloat16, Float32, Float64:
		return KindFloat
	case Complex64, Complex128:
		return KindComplex
	default:
		return KindGeneric
	}
}

// IsFloat reports whether d is a real floating-point dtype.
func (d DType) IsFloat() bool { return d.Kind() == KindFloat }

// IsInteger reports whether d is a signed or unsigned integer dtype.
func (d DType) IsInteger() bool {
	k := d.Kind()
	return k == KindSigned || k == KindUnsigned
}

// IsReal reports whether d is an integer or real floating-point dtype.
func (d DType) IsReal() bool { return d.IsInteger() || d.IsFloat() }

// IsNumeric reports whether d is real or complex.
func (d DType) IsNumeric() bool { return d.IsReal() || d.Kind() == KindComplex }

// DTypeOf returns the dtype whose direct storage is []T.
//
// Only exact element types are recognised: int, uint and named types map to
// Generic, so that typed kernels selected by dtype can rely on the element
// type. Float16 and BFloat16 have no direct storage and are never returned.
func DTypeOf[T any]() DType {
	var zero T
	switch any(&zero).(type) {
	case *bool:
		return Bool
	case *int8:
		return Int8
	case *int16:
		return Int16
	case *int32:
		return Int32
	case *int64:
		return Int64
	case *uint8:
		return Uint8
	case *uint16:
		return Uint16
	case *uint32:
		return Uint32
	case *uint64:
		return Uint64
	case *float32:
		return Float32
	case *float64:
		return Float64
	case *complex64:
		return Complex64
	case *complex128:
		return Complex128
	default:
		return Generic
	}
}

// elemDType returns the dtype of the Go element type a view of dt uses.
func elemDType(dt DType) DType {
	if dt == Float16 || dt == BFloat16 {
		return Float32
	}
	return dt
}
