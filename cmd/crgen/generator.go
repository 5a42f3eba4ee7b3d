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
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-crlibm/crlibm"
)

// Wrapper describes one generated function.
type Wrapper struct {
	GoName      string // e.g. "Log1pRZ"
	Name        string // registry name, e.g. "log1p_rz"
	Description string
	Index       int // position in registration order
}

// Generator renders the typed wrapper file.
type Generator struct {
	OutputFile string
	Package    string
}

var wrapperTemplate = template.Must(template.New("ops").Parse(`// Code generated by crgen. DO NOT EDIT.

package {{.Package}}
{{range .Wrappers}}
// {{.GoName}} returns {{.Description}}
func {{.GoName}}(x float64) float64 { return Default().entries[{{.Index}}].op(x) }
{{end}}`))

// Wrappers returns the wrappers in registration order.
func (g *Generator) Wrappers() []Wrapper {
	var out []Wrapper
	for _, fn := range crlibm.Functions() {
		for _, m := range crlibm.Modes() {
			out = append(out, Wrapper{
				GoName:      GoName(fn.Name, m),
				Name:        crlibm.EntryName(fn, m),
				Description: crlibm.Describe(fn, m),
				Index:       len(out),
			})
		}
	}
	return out
}

// Generate returns the formatted source of the wrapper file.
func (g *Generator) Generate() ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Package  string
		Wrappers []Wrapper
	}{g.Package, g.Wrappers()}
	if err := wrapperTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(g.OutputFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", g.OutputFile, err)
	}
	return src, nil
}

// GoName returns the exported Go name of a function in mode m: the function
// name with a leading capital, a capital P for a trailing "pi", and the
// upper-case mode, e.g. "atanpi" and Up give "AtanPiRU".
func GoName(fn string, m crlibm.RoundingMode) string {
	base := fn
	if len(base) > 2 && strings.HasSuffix(base, "pi") {
		base = strings.TrimSuffix(base, "pi") + "Pi"
	}
	return strings.ToUpper(base[:1]) + base[1:] + strings.ToUpper(m.String())
}
