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

import "fmt"

// OutputPolicy decides the dtype of an operation's output from the dtypes of
// its inputs.
type OutputPolicy uint8

const (
	// PolicySame uses the dtype of the first input.
	PolicySame OutputPolicy = iota
	// PolicyPromoted uses Promote over all inputs.
	PolicyPromoted
	// PolicyDefault always produces DefaultDType.
	PolicyDefault
	// PolicyDefaultIndex always produces DefaultIndexDType.
	PolicyDefaultIndex
	// PolicyAccumulation widens narrow types so sums do not overflow:
	// signed integers and bool accumulate in Int64, unsigned integers in
	// Uint64, half-precision floats in Float32. Wider floats, complex and
	// generic inputs are kept.
	PolicyAccumulation
	// PolicyFloatingPoint maps integer and bool inputs to DefaultDType and
	// keeps floating-point, complex and generic inputs.
	PolicyFloatingPoint
	// PolicyRealFloatingPoint is PolicyFloatingPoint restricted to real
	// inputs; complex inputs are rejected.
	PolicyRealFloatingPoint
	// PolicyBoolean always produces Bool.
	PolicyBoolean
)

const (
	// DefaultDType is the default floating-point dtype.
	DefaultDType = Float64
	// DefaultIndexDType is the dtype used for indices and counts.
	DefaultIndexDType = Int64
	// DefaultSignedDType is the accumulation dtype for signed integers.
	DefaultSignedDType = Int64
	// DefaultUnsignedDType is the accumulation dtype for unsigned integers.
	DefaultUnsignedDType = Uint64
)

var policyNames = map[OutputPolicy]string{
	PolicySame:              "same",
	PolicyPromoted:          "promoted",
	PolicyDefault:           "default",
	PolicyDefaultIndex:      "default_index",
	PolicyAccumulation:      "accumulation",
	PolicyFloatingPoint:     "floating_point",
	PolicyRealFloatingPoint: "real_floating_point",
	PolicyBoolean:           "boolean",
}

// String returns the name of the policy.
func (p OutputPolicy) String() string {
	if n, ok := policyNames[p]; ok {
		return n
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ResolveOutputDType applies policy to the input dtypes.
func ResolveOutputDType(policy OutputPolicy, inputs ...DType) (DType, error) {
	switch policy {
	case PolicyDefault:
		return DefaultDType, nil
	case PolicyDefaultIndex:
		return DefaultIndexDType, nil
	case PolicyBoolean:
		return Bool, nil
	}
	if len(inputs) == 0 {
		return Generic, fmt.Errorf("%w: policy %s needs at least one input dtype", ErrInvalidOption, policy)
	}
	switch policy {
	case PolicySame:
		return inputs[0], nil
	case PolicyPromoted:
		return Promote(inputs...), nil
	case PolicyAccumulation:
		return accumulationDType(Promote(inputs...)), nil
	case PolicyFloatingPoint:
		return floatingDType(Promote(inputs...)), nil
	case PolicyRealFloatingPoint:
		p := Promote(inputs...)
		if p.Kind() == KindComplex {
			return Generic, &DTypeError{Arg: 0, Got: p, Allowed: realFloatDTypes}
		}
		return floatingDType(p), nil
	}
	return Generic, fmt.Errorf("%w: unknown output policy %s", ErrInvalidOption, policy)
}

var realFloatDTypes = []DType{Float16, BFloat16, Float32, Float64}

func accumulationDType(d DType) DType {
	switch d.Kind() {
	case KindBool, KindSigned:
		return DefaultSignedDType
	case KindUnsigned:
		return DefaultUnsignedDType
	case KindFloat:
		if d == Float16 || d == BFloat16 {
			return Float32
		}
		return d
	default:
		return d
	}
}

func floatingDType(d DType) DType {
	switch d.Kind() {
	case KindBool, KindSigned, KindUnsigned:
		return DefaultDType
	default:
		return d
	}
}
