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

package engine

// Func identifies one of the elementary functions provided by the engine.
type Func int

const (
	FuncExp Func = iota
	FuncLog
	FuncCos
	FuncSin
	FuncTan
	FuncCosPi
	FuncSinPi
	FuncTanPi
	FuncAtan
	FuncAtanPi
	FuncCosh
	FuncSinh
	FuncLog2
	FuncLog10
	FuncAsin
	FuncAcos
	FuncAsinPi
	FuncAcosPi
	FuncExpm1
	FuncLog1p
	numFuncs
)

var funcNames = [numFuncs]string{
	"exp", "log", "cos", "sin", "tan", "cospi", "sinpi", "tanpi", "atan",
	"atanpi", "cosh", "sinh", "log2", "log10", "asin", "acos", "asinpi",
	"acospi", "expm1", "log1p",
}

var funcImpls = [numFuncs]func(float64, Mode) float64{
	Exp, Log, Cos, Sin, Tan, CosPi, SinPi, TanPi, Atan, AtanPi,
	Cosh, Sinh, Log2, Log10, Asin, Acos, AsinPi, AcosPi, Expm1, Log1p,
}

// Funcs returns every function in canonical order.
func Funcs() []Func {
	fs := make([]Func, numFuncs)
	for i := range fs {
		fs[i] = Func(i)
	}
	return fs
}

// String returns the base name of the function, e.g. "exp".
func (f Func) String() string {
	if f < 0 || f >= numFuncs {
		return "unknown"
	}
	return funcNames[f]
}

// Eval evaluates f at x rounded in mode m.
func Eval(f Func, m Mode, x float64) float64 {
	return funcImpls[f](x, m)
}

// Prefix is the common prefix of the exported symbols.
const Prefix = "crlibm"

// Symbol returns the exported symbol name of f in mode m, e.g.
// "crlibm_exp_rn".
func Symbol(f Func, m Mode) string {
	return Prefix + "_" + f.String() + "_" + m.String()
}

// Table maps exported symbol names to their implementations.
type Table struct {
	fns map[string]func(float64) float64
}

// Resolve returns the implementation bound to symbol.
func (t *Table) Resolve(symbol string) (func(float64) float64, bool) {
	fn, ok := t.fns[symbol]
	return fn, ok
}

// Len returns the number of exported symbols.
func (t *Table) Len() int {
	return len(t.fns)
}

// Symbols is the engine's export table: one symbol per function and mode.
var Symbols = buildSymbols()

func buildSymbols() *Table {
	t := &Table{fns: make(map[string]func(float64) float64, int(numFuncs)*4)}
	for _, f := range Funcs() {
		for _, m := range Modes() {
			impl := funcImpls[f]
			t.fns[Symbol(f, m)] = func(x float64) float64 {
				return impl(x, m)
			}
		}
	}
	return t
}
