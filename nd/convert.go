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

// Cast converts a boxed scalar to T with Go conversion semantics (floats
// truncate toward zero, complex to real drops the imaginary part, non-zero
// is true). It reports false when v is not a numeric or boolean value and
// T is not its exact type.
func Cast[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var out T
	var ok bool
	switch p := any(&out).(type) {
	case *bool:
		*p, ok = toBool(v)
	case *int8:
		var i int64
		i, ok = toInt64(v)
		*p = int8(i)
	case *int16:
		var i int64
		i, ok = toInt64(v)
		*p = int16(i)
	case *int32:
		var i int64
		i, ok = toInt64(v)
		*p = int32(i)
	case *int64:
		*p, ok = toInt64(v)
	case *int:
		var i int64
		i, ok = toInt64(v)
		*p = int(i)
	case *uint8:
		var u uint64
		u, ok = toUint64(v)
		*p = uint8(u)
	case *uint16:
		var u uint64
		u, ok = toUint64(v)
		*p = uint16(u)
	case *uint32:
		var u uint64
		u, ok = toUint64(v)
		*p = uint32(u)
	case *uint64:
		*p, ok = toUint64(v)
	case *uint:
		var u uint64
		u, ok = toUint64(v)
		*p = uint(u)
	case *float32:
		var f float64
		f, ok = ToFloat64(v)
		*p = float32(f)
	case *float64:
		*p, ok = ToFloat64(v)
	case *complex64:
		var c complex128
		c, ok = ToComplex128(v)
		*p = complex64(c)
	case *complex128:
		*p, ok = ToComplex128(v)
	case *any:
		*p, ok = v, true
	}
	return out, ok
}

// ToFloat64 converts a boxed numeric or boolean value to float64.
func ToFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case complex64:
		return float64(real(x)), true
	case complex128:
		return real(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// ToComplex128 converts a boxed numeric or boolean value to complex128.
func ToComplex128(v any) (complex128, bool) {
	switch x := v.(type) {
	case complex128:
		return x, true
	case complex64:
		return complex128(x), true
	}
	f, ok := ToFloat64(v)
	return complex(f, 0), ok
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}
	f, ok := ToFloat64(v)
	return int64(f), ok
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint64:
		return x, true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case int:
		return uint64(x), true
	case int8:
		return uint64(x), true
	case int16:
		return uint64(x), true
	case int32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	}
	f, ok := ToFloat64(v)
	if f < 0 {
		return uint64(int64(f)), ok
	}
	return uint64(f), ok
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case complex64:
		return x != 0, true
	case complex128:
		return x != 0, true
	}
	f, ok := ToFloat64(v)
	return f != 0, ok
}
