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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// viewNames names the views of a loop: x, y and z give ix, sx, ox, ...
var viewNames = []string{"x", "y", "z"}

// Generator writes the nested and blocked loop files.
type Generator struct {
	MaxDims   int
	Arity     int
	OutputDir string
	Package   string
}

// Validate checks the generator parameters.
func (g *Generator) Validate() error {
	if g.MaxDims < 2 {
		return fmt.Errorf("max-dims must be at least 2, got %d", g.MaxDims)
	}
	if g.Arity < 1 || g.Arity > len(viewNames) {
		return fmt.Errorf("arity must be in [1, %d], got %d", len(viewNames), g.Arity)
	}
	if g.Package == "" {
		return fmt.Errorf("package name is required")
	}
	return nil
}

// Run generates both files and returns their paths.
func (g *Generator) Run() ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	outputs := []struct {
		name string
		emit func(*bytes.Buffer)
	}{
		{"z_nested.go", g.emitNestedFile},
		{"z_blocked.go", g.emitBlockedFile},
	}
	var files []string
	for _, out := range outputs {
		path := filepath.Join(g.OutputDir, out.name)
		src, err := g.format(path, out.emit)
		if err != nil {
			return files, err
		}
		if err := os.WriteFile(path, src, 0644); err != nil {
			return files, fmt.Errorf("write %s: %w", out.name, err)
		}
		files = append(files, path)
	}
	return files, nil
}

// NestedSource returns the formatted contents of z_nested.go.
func (g *Generator) NestedSource() ([]byte, error) {
	return g.format("z_nested.go", g.emitNestedFile)
}

// BlockedSource returns the formatted contents of z_blocked.go.
func (g *Generator) BlockedSource() ([]byte, error) {
	return g.format("z_blocked.go", g.emitBlockedFile)
}

func (g *Generator) format(filename string, emit func(*bytes.Buffer)) ([]byte, error) {
	var buf bytes.Buffer
	emit(&buf)
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filepath.Base(filename), err)
	}
	return src, nil
}

func (g *Generator) emitHeader(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "// Code generated by ndgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", g.Package)
}

func (g *Generator) emitNestedFile(buf *bytes.Buffer) {
	g.emitHeader(buf)
	fmt.Fprintf(buf, "// MaxDims is the largest rank with specialised loops. Higher ranks use the\n")
	fmt.Fprintf(buf, "// generic strategy.\n")
	fmt.Fprintf(buf, "const MaxDims = %d\n\n", g.MaxDims)
	for a := 1; a <= g.Arity; a++ {
		g.emitTable(buf, "nested", a, 1)
	}
	for a := 1; a <= g.Arity; a++ {
		for d := 1; d <= g.MaxDims; d++ {
			emitNested(buf, d, a)
		}
	}
}

func (g *Generator) emitBlockedFile(buf *bytes.Buffer) {
	g.emitHeader(buf)
	for a := 1; a <= g.Arity; a++ {
		g.emitTable(buf, "blocked", a, 2)
	}
	for a := 1; a <= g.Arity; a++ {
		for d := 2; d <= g.MaxDims; d++ {
			emitBlocked(buf, d, a)
		}
	}
}

// emitTable writes the rank-indexed table of kind loops for arity a. Ranks
// below lo stay nil.
func (g *Generator) emitTable(buf *bytes.Buffer, kind string, a, lo int) {
	fmt.Fprintf(buf, "var %sLoops%d = [MaxDims + 1]%s%dFunc{\n", kind, a, kind, a)
	for d := lo; d <= g.MaxDims; d++ {
		fmt.Fprintf(buf, "\t%d: %s,\n", d, loopName(kind, d, a))
	}
	fmt.Fprintf(buf, "}\n\n")
}

func loopName(kind string, d, a int) string {
	return fmt.Sprintf("%s%dd%d", kind, d, a)
}

// signature returns the parameter list shared by the loops of arity a.
func signature(vs []string, blocked bool) string {
	var sb strings.Builder
	sb.WriteString("sh, ")
	sb.WriteString(strings.Join(prefixed("s", vs), ", "))
	sb.WriteString(" []int, ")
	sb.WriteString(strings.Join(prefixed("o", vs), ", "))
	if blocked {
		sb.WriteString(", bsize")
	}
	sb.WriteString(" int, fn func(")
	sb.WriteString(strings.Join(prefixed("i", vs), ", "))
	sb.WriteString(" int) bool")
	return sb.String()
}

func prefixed(p string, vs []string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = p + v
	}
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func indent(buf *bytes.Buffer, level int, format string, args ...any) {
	buf.WriteString(strings.Repeat("\t", level))
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')
}

// emitNested writes a loop nest over d dimensions, dimension 0 innermost.
// Each view advances by its stride in the innermost loop; leaving loop k-1
// it has moved s[k-1]*stride[k-1] and the increment of loop k corrects that.
func emitNested(buf *bytes.Buffer, d, a int) {
	vs := viewNames[:a]
	name := loopName("nested", d, a)
	fmt.Fprintf(buf, "// %s visits a rank-%d loop nest over %d %s.\n", name, d, a, plural(a, "view"))
	fmt.Fprintf(buf, "func %s(%s) bool {\n", name, signature(vs, false))
	for k := 0; k < d; k++ {
		indent(buf, 1, "s%d := sh[%d]", k, k)
	}
	for _, v := range vs {
		indent(buf, 1, "d%s0 := s%s[0]", v, v)
		for k := 1; k < d; k++ {
			indent(buf, 1, "d%s%d := s%s[%d] - s%d*s%s[%d]", v, k, v, k, k-1, v, k-1)
		}
	}
	indent(buf, 1, "%s := %s", strings.Join(prefixed("i", vs), ", "), strings.Join(prefixed("o", vs), ", "))
	for k := d - 1; k >= 0; k-- {
		indent(buf, d-k, "for i%d := 0; i%d < s%d; i%d++ {", k, k, k, k)
	}
	indent(buf, d+1, "if !fn(%s) {", strings.Join(prefixed("i", vs), ", "))
	indent(buf, d+2, "return false")
	indent(buf, d+1, "}")
	for k := 0; k < d; k++ {
		for _, v := range vs {
			indent(buf, d-k+1, "i%s += d%s%d", v, v, k)
		}
		indent(buf, d-k, "}")
	}
	indent(buf, 1, "return true")
	fmt.Fprintf(buf, "}\n\n")
}

// emitBlocked writes a loop nest over d >= 2 dimensions whose two innermost
// loops walk bsize x bsize tiles. Outer loops advance base indices the
// same way emitNested does.
func emitBlocked(buf *bytes.Buffer, d, a int) {
	vs := viewNames[:a]
	name := loopName("blocked", d, a)
	fmt.Fprintf(buf, "// %s visits a rank-%d loop nest over %d %s, tiling the two\n", name, d, a, plural(a, "view"))
	fmt.Fprintf(buf, "// innermost loops by bsize.\n")
	fmt.Fprintf(buf, "func %s(%s) bool {\n", name, signature(vs, true))
	for k := 0; k < d; k++ {
		indent(buf, 1, "s%d := sh[%d]", k, k)
	}
	for _, v := range vs {
		indent(buf, 1, "s%s0 := s%s[0]", v, v)
		indent(buf, 1, "s%s1 := s%s[1]", v, v)
		for k := 2; k < d; k++ {
			if k == 2 {
				indent(buf, 1, "e%s2 := s%s[2]", v, v)
				continue
			}
			indent(buf, 1, "e%s%d := s%s[%d] - s%d*s%s[%d]", v, k, v, k, k-1, v, k-1)
		}
	}
	indent(buf, 1, "%s := %s", strings.Join(prefixed("b", vs), ", "), strings.Join(prefixed("o", vs), ", "))
	for k := d - 1; k >= 2; k-- {
		indent(buf, d-k, "for i%d := 0; i%d < s%d; i%d++ {", k, k, k, k)
	}
	t := d - 1
	indent(buf, t, "for j1 := 0; j1 < s1; j1 += bsize {")
	indent(buf, t+1, "n1 := min(bsize, s1-j1)")
	indent(buf, t+1, "for j0 := 0; j0 < s0; j0 += bsize {")
	indent(buf, t+2, "n0 := min(bsize, s0-j0)")
	for _, v := range vs {
		indent(buf, t+2, "i%s := b%s + j1*s%s1 + j0*s%s0", v, v, v, v)
	}
	for _, v := range vs {
		indent(buf, t+2, "d%s1 := s%s1 - n0*s%s0", v, v, v)
	}
	indent(buf, t+2, "for i1 := 0; i1 < n1; i1++ {")
	indent(buf, t+3, "for i0 := 0; i0 < n0; i0++ {")
	indent(buf, t+4, "if !fn(%s) {", strings.Join(prefixed("i", vs), ", "))
	indent(buf, t+5, "return false")
	indent(buf, t+4, "}")
	for _, v := range vs {
		indent(buf, t+4, "i%s += s%s0", v, v)
	}
	indent(buf, t+3, "}")
	for _, v := range vs {
		indent(buf, t+3, "i%s += d%s1", v, v)
	}
	indent(buf, t+2, "}")
	indent(buf, t+1, "}")
	indent(buf, t, "}")
	for k := 2; k < d; k++ {
		for _, v := range vs {
			indent(buf, d-k+1, "b%s += e%s%d", v, v, k)
		}
		indent(buf, d-k, "}")
	}
	indent(buf, 1, "return true")
	fmt.Fprintf(buf, "}\n\n")
}
