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

package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		gen     Generator
		wantErr bool
	}{
		{"Default", Generator{MaxDims: 10, Arity: 3, Package: "loops"}, false},
		{"SmallRank", Generator{MaxDims: 1, Arity: 3, Package: "loops"}, true},
		{"ZeroArity", Generator{MaxDims: 4, Arity: 0, Package: "loops"}, true},
		{"BigArity", Generator{MaxDims: 4, Arity: 4, Package: "loops"}, true},
		{"NoPackage", Generator{MaxDims: 4, Arity: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.gen.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// funcNames parses src and returns its top-level function names.
func funcNames(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, decl := range f.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			names[fd.Name.Name] = true
		}
	}
	return names
}

func TestNestedSource(t *testing.T) {
	gen := &Generator{MaxDims: 3, Arity: 2, Package: "loops"}
	src, err := gen.NestedSource()
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(src, []byte("// Code generated by ndgen. DO NOT EDIT.")))
	assert.Contains(t, string(src), "const MaxDims = 3")
	names := funcNames(t, src)
	assert.Len(t, names, 6)
	for _, n := range []string{"nested1d1", "nested3d1", "nested1d2", "nested3d2"} {
		assert.True(t, names[n], n)
	}
	assert.Contains(t, string(src), "dy2 := sy[2] - s1*sy[1]")
}

func TestBlockedSource(t *testing.T) {
	gen := &Generator{MaxDims: 4, Arity: 1, Package: "loops"}
	src, err := gen.BlockedSource()
	require.NoError(t, err)

	names := funcNames(t, src)
	assert.Len(t, names, 3)
	assert.True(t, names["blocked2d1"])
	assert.True(t, names["blocked4d1"])
	assert.False(t, names["blocked1d1"])
	assert.Contains(t, string(src), "ex3 := sx[3] - s2*sx[2]")
	assert.Contains(t, string(src), "n0 := min(bsize, s0-j0)")
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	gen := &Generator{MaxDims: 2, Arity: 1, Package: "loops", OutputDir: dir}
	files, err := gen.Run()
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		_, err := os.Stat(f)
		assert.NoError(t, err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--max-dims", "2", "--arity", "2", "--output", dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "z_blocked.go")

	cmd = newRootCmd()
	cmd.SetArgs([]string{"--arity", "7", "--output", dir})
	assert.Error(t, cmd.Execute())
}

// TestCheckedInLoopsUpToDate compares the generated files in nd/loops with
// what the generator produces, ignoring whitespace.
func TestCheckedInLoopsUpToDate(t *testing.T) {
	gen := &Generator{MaxDims: 10, Arity: 3, Package: "loops"}
	dir := filepath.Join("..", "..", "nd", "loops")
	tests := []struct {
		file string
		src  func() ([]byte, error)
	}{
		{"z_nested.go", gen.NestedSource},
		{"z_blocked.go", gen.BlockedSource},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			want, err := tt.src()
			require.NoError(t, err)
			got, err := os.ReadFile(filepath.Join(dir, tt.file))
			require.NoError(t, err)
			assert.Equal(t, strings.Fields(string(want)), strings.Fields(string(got)),
				"%s is stale: run go generate ./nd/loops", tt.file)
		})
	}
}
