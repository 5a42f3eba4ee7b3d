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

package crlibm

//go:generate go run ../cmd/crgen -output zz_ops.go

import (
	"sort"
	"sync"

	"github.com/ajroetker/go-crlibm/crlibm/engine"
)

// Op is a bound operation: one double in, one double out.
type Op = func(float64) float64

// Resolver binds engine symbol names to implementations.
// *engine.Table is the production resolver.
type Resolver interface {
	Resolve(symbol string) (Op, bool)
}

// Entry is one (function, rounding mode) pair bound to an engine entry
// point. Lookups hand out copies, so changing an Entry never affects the
// Registry it came from.
type Entry struct {
	Function    FunctionSpec
	Mode        RoundingMode
	Name        string // e.g. "exp_rn"
	Symbol      string // engine entry point, e.g. "crlibm_exp_rn"
	Description string // e.g. "exp(x) rounded to nearest."

	op Op
}

// Registry is the immutable table of the 80 operations.
type Registry struct {
	entries []Entry
	byName  map[string]*Entry
}

// EntryName returns the operation name of fn in mode m.
func EntryName(fn FunctionSpec, m RoundingMode) string {
	return fn.Name + m.Suffix()
}

// EngineSymbol returns the engine entry point of fn in mode m.
func EngineSymbol(fn FunctionSpec, m RoundingMode) string {
	return engine.Prefix + "_" + EntryName(fn, m)
}

// NewRegistry binds every function in every mode against r. It fails with
// a *LinkageError if r lacks any entry point; no partial registry is
// returned.
func NewRegistry(r Resolver) (*Registry, error) {
	modes := Modes()
	reg := &Registry{
		entries: make([]Entry, 0, len(functions)*len(modes)),
		byName:  make(map[string]*Entry, len(functions)*len(modes)),
	}
	for _, fn := range functions {
		for _, m := range modes {
			sym := EngineSymbol(fn, m)
			op, ok := r.Resolve(sym)
			if !ok || op == nil {
				return nil, &LinkageError{Symbol: sym}
			}
			reg.entries = append(reg.entries, Entry{
				Function:    fn,
				Mode:        m,
				Name:        EntryName(fn, m),
				Symbol:      sym,
				Description: Describe(fn, m),
				op:          op,
			})
		}
	}
	for i := range reg.entries {
		reg.byName[reg.entries[i].Name] = &reg.entries[i]
	}
	return reg, nil
}

var (
	initOnce sync.Once
	registry *Registry
)

// Init builds the process-wide registry against the engine. It runs once;
// later calls return immediately. A missing engine entry point is fatal:
// Init panics with a *LinkageError.
func Init() {
	initOnce.Do(func() {
		registry = initWith(engine.Symbols)
	})
}

func initWith(r Resolver) *Registry {
	reg, err := NewRegistry(r)
	if err != nil {
		panic(err)
	}
	return reg
}

// Default returns the process-wide registry, initializing it if needed.
func Default() *Registry {
	Init()
	return registry
}

// Lookup returns a copy of the entry with the given name.
func (r *Registry) Lookup(name string) (*Entry, error) {
	if e, ok := r.byName[name]; ok {
		c := *e
		return &c, nil
	}
	return nil, &LookupError{Name: name}
}

// Entries returns copies of every entry in registration order: functions in
// canonical order, each with its four modes.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.entries))
	for i := range r.entries {
		c := r.entries[i]
		out[i] = &c
	}
	return out
}

// Names returns the sorted operation names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of operations.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Function returns copies of the four entries of the named function in mode
// order, or nil if there is no such function.
func (r *Registry) Function(name string) []*Entry {
	var out []*Entry
	for i := range r.entries {
		if r.entries[i].Function.Name == name {
			c := r.entries[i]
			out = append(out, &c)
		}
	}
	return out
}

// Lookup returns the named entry of the default registry.
func Lookup(name string) (*Entry, error) {
	return Default().Lookup(name)
}

// Entries returns the entries of the default registry.
func Entries() []*Entry {
	return Default().Entries()
}

// Call looks up name in the default registry and calls it with args.
func Call(name string, args ...any) (float64, error) {
	e, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return e.Call(args...)
}
