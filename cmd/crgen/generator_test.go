// Copyright 2025 go-crlibm Authors
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
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/go-crlibm/crlibm"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		fn   string
		mode crlibm.RoundingMode
		want string
	}{
		{"exp", crlibm.Nearest, "ExpRN"},
		{"log1p", crlibm.TowardZero, "Log1pRZ"},
		{"cospi", crlibm.Up, "CosPiRU"},
		{"atanpi", crlibm.Down, "AtanPiRD"},
		{"log10", crlibm.Nearest, "Log10RN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := GoName(tt.fn, tt.mode); got != tt.want {
				t.Errorf("GoName(%q, %s) = %q, want %q", tt.fn, tt.mode, got, tt.want)
			}
		})
	}
}

func TestWrappers(t *testing.T) {
	g := &Generator{OutputFile: "zz_ops.go", Package: "crlibm"}
	ws := g.Wrappers()
	if len(ws) != 80 {
		t.Fatalf("len(Wrappers()) = %d, want 80", len(ws))
	}
	seen := make(map[string]bool)
	for i, w := range ws {
		if w.Index != i {
			t.Errorf("%s: Index = %d, want %d", w.GoName, w.Index, i)
		}
		if seen[w.GoName] {
			t.Errorf("duplicate wrapper %s", w.GoName)
		}
		seen[w.GoName] = true
	}
	if ws[79].GoName != "Log1pRZ" || ws[79].Description != "log(1+x) rounded toward zero." {
		t.Errorf("last wrapper = %+v", ws[79])
	}
}

func TestGenerateParses(t *testing.T) {
	g := &Generator{OutputFile: "zz_ops.go", Package: "crlibm"}
	src, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "zz_ops.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
	var funcs int
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			funcs++
			if fd.Doc == nil || !strings.HasPrefix(fd.Doc.Text(), fd.Name.Name+" returns ") {
				t.Errorf("%s: missing doc comment", fd.Name.Name)
			}
		}
	}
	if funcs != 80 {
		t.Errorf("generated %d functions, want 80", funcs)
	}
}

// TestCheckedInFileIsCurrent fails when crlibm/zz_ops.go needs regenerating.
func TestCheckedInFileIsCurrent(t *testing.T) {
	path := filepath.Join("..", "..", "crlibm", "zz_ops.go")
	want, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("reading %s: %v", path, err)
	}
	g := &Generator{OutputFile: "zz_ops.go", Package: "crlibm"}
	got, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("%s is stale; run go generate ./crlibm", path)
	}
}
