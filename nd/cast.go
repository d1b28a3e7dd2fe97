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

// CastingPolicy controls which dtype conversions IsAllowedCast accepts.
type CastingPolicy uint8

const (
	// CastNone only allows identical dtypes.
	CastNone CastingPolicy = iota
	// CastSafe allows conversions that preserve every value.
	CastSafe
	// CastSameKind allows safe conversions and conversions within a kind
	// or towards a wider kind (unsigned < signed < float < complex).
	CastSameKind
	// CastUnsafe allows any conversion.
	CastUnsafe
)

// String returns the name of the casting policy.
func (c CastingPolicy) String() string {
	switch c {
	case CastNone:
		return "none"
	case CastSafe:
		return "safe"
	case CastSameKind:
		return "same-kind"
	case CastUnsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// IsAllowedCast reports whether values of dtype from may be written to a
// buffer of dtype to under the given policy.
func IsAllowedCast(from, to DType, policy CastingPolicy) bool {
	if from == to {
		return true
	}
	switch policy {
	case CastNone:
		return false
	case CastUnsafe:
		return true
	}
	if to == Generic {
		return true
	}
	if from == Generic {
		return false
	}
	if Promote(from, to) == to {
		return true
	}
	if policy == CastSafe {
		return false
	}
	return kindRank(from.Kind()) <= kindRank(to.Kind())
}

func kindRank(k Kind) int {
	switch k {
	case KindBool:
		return 0
	case KindUnsigned:
		return 1
	case KindSigned:
		return 2
	case KindFloat:
		return 3
	case KindComplex:
		return 4
	default:
		return 5
	}
}

// Promote returns the smallest dtype able to represent every value of the
// given dtypes. Generic absorbs everything; an empty list promotes to Generic.
func Promote(dts ...DType) DType {
	if len(dts) == 0 {
		return Generic
	}
	out := dts[0]
	for _, d := range dts[1:] {
		out = promote2(out, d)
	}
	return out
}

func promote2(a, b DType) DType {
	if a == b {
		return a
	}
	ka, kb := a.Kind(), b.Kind()
	if ka == KindGeneric || kb == KindGeneric {
		return Generic
	}
	if ka == KindBool {
		return b
	}
	if kb == KindBool {
		return a
	}
	if kindRank(ka) > kindRank(kb) {
		a, b = b, a
		ka, kb = kb, ka
	}
	// kindRank(ka) <= kindRank(kb) from here on.
	switch kb {
	case KindComplex:
		switch ka {
		case KindComplex:
			return widest(a, b)
		case KindFloat:
			if a == Float64 {
				return Complex128
			}
			return b
		default:
			if a.Size() <= 2 {
				return b
			}
			return Complex128
		}
	case KindFloat:
		if ka == KindFloat {
			if (a == Float16 && b == BFloat16) || (a == BFloat16 && b == Float16) {
				return Float32
			}
			return widest(a, b)
		}
		switch {
		case a.Size() <= 1:
			return b
		case a.Size() <= 2:
			return widest(Float32, b)
		default:
			return Float64
		}
	case KindSigned:
		if ka == KindSigned {
			return widest(a, b)
		}
		// a is unsigned.
		if b.Size() > a.Size() {
			return b
		}
		switch a {
		case Uint8:
			return widest(Int16, b)
		case Uint16:
			return widest(Int32, b)
		case Uint32:
			return Int64
		default:
			return Float64
		}
	default:
		return widest(a, b)
	}
}

func widest(a, b DType) DType {
	if b.Size() > a.Size() {
		return b
	}
	return a
}
