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
	"fmt"
	"slices"

	"github.com/ajroetker/go-ndarray/nd"
)

// Kernel processes one 1-D slice. The layout of arrays depends on the
// dispatcher (see the package documentation). The arrays slice and cur are
// reused between calls and must not be retained.
type Kernel func(arrays []nd.Array, cur *Cursor)

// Table maps dtype signatures to specialised kernels.
//
// Types[i] is the signature of Kernels[i]: the input dtype for nullary
// dispatch, the input and output dtypes for unary and reduce dispatch.
// Default handles every other signature.
type Table struct {
	Types   [][]nd.DType
	Kernels []Kernel
	Default Kernel
}

// Validate checks that Types and Kernels are parallel and Default is set.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil kernel table", nd.ErrInvalidOption)
	}
	if len(t.Types) != len(t.Kernels) {
		return fmt.Errorf("%w: kernel table has %d signatures and %d kernels", nd.ErrInvalidOption, len(t.Types), len(t.Kernels))
	}
	for i, k := range t.Kernels {
		if k == nil {
			return fmt.Errorf("%w: kernel %d (%v) is nil", nd.ErrInvalidOption, i, t.Types[i])
		}
	}
	if t.Default == nil {
		return fmt.Errorf("%w: kernel table has no default kernel", nd.ErrInvalidOption)
	}
	return nil
}

// Lookup returns the kernel registered for the exact signature dtypes, or
// Default. Tables are small, so this is a linear scan.
func (t *Table) Lookup(dtypes ...nd.DType) Kernel {
	for i, sig := range t.Types {
		if slices.Equal(sig, dtypes) {
			return t.Kernels[i]
		}
	}
	return t.Default
}
