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

	bfloat16 "github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// Float16Buffer exposes IEEE 754 half-precision bits as float32 elements.
type Float16Buffer []uint16

func (b Float16Buffer) Len() int { return len(b) }

func (b Float16Buffer) Get(i int) float32 { return float16.Frombits(b[i]).Float32() }

func (b Float16Buffer) Set(i int, v float32) { b[i] = float16.Fromfloat32(v).Bits() }

// BFloat16Buffer exposes bfloat16 bits as float32 elements. Stores round to
// nearest even.
type BFloat16Buffer []uint16

func (b BFloat16Buffer) Len() int { return len(b) }

func (b BFloat16Buffer) Get(i int) float32 { return bfloat16.ToFloat32(bfloat16.BF16(b[i])) }

func (b BFloat16Buffer) Set(i int, v float32) { b[i] = uint16(bfloat16FromFloat32(v)) }

// NewFloat16 returns a float32 view over half-precision bits.
func NewFloat16(bits []uint16, shape, strides []int, offset int, order Order) (*View[float32], error) {
	return NewAccessor[float32](Float16, Float16Buffer(bits), shape, strides, offset, order)
}

// NewBFloat16 returns a float32 view over bfloat16 bits.
func NewBFloat16(bits []uint16, shape, strides []int, offset int, order Order) (*View[float32], error) {
	return NewAccessor[float32](BFloat16, BFloat16Buffer(bits), shape, strides, offset, order)
}

// Float16FromFloat32s encodes fs as half-precision bits.
func Float16FromFloat32s(fs []float32) []uint16 {
	out := make([]uint16, len(fs))
	for i, f := range fs {
		out[i] = float16.Fromfloat32(f).Bits()
	}
	return out
}

// BFloat16FromFloat32s encodes fs as bfloat16 bits, rounding to nearest
// even.
func BFloat16FromFloat32s(fs []float32) []uint16 {
	out := make([]uint16, len(fs))
	for i, f := range fs {
		out[i] = uint16(bfloat16FromFloat32(f))
	}
	return out
}

// BFloat16ToFloat32s decodes bfloat16 bits.
func BFloat16ToFloat32s(bits []uint16) []float32 {
	out := make([]float32, len(bits))
	for i, b := range bits {
		out[i] = bfloat16.ToFloat32(bfloat16.BF16(b))
	}
	return out
}

// bfloat16FromFloat32 rounds f to the nearest bfloat16, ties to even.
// bfloat16.FromFloat32 truncates instead. NaNs stay quiet NaNs of the same
// sign.
func bfloat16FromFloat32(f float32) bfloat16.BF16 {
	bits := math.Float32bits(f)
	if bits&0x7FFFFFFF > 0x7F800000 {
		return bfloat16.BF16(bits>>16 | 0x0040)
	}
	bits += 0x7FFF + (bits>>16)&1
	return bfloat16.BF16(bits >> 16)
}
