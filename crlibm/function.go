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

// FunctionSpec identifies one function family.
type FunctionSpec struct {
	// Name is the canonical name, e.g. "log1p".
	Name string

	// Formula is the semantic template used in descriptions, e.g. "log(1+x)".
	Formula string
}

// functions lists the families in registration order.
var functions = [...]FunctionSpec{
	{"exp", "exp(x)"},
	{"log", "log(x)"},
	{"cos", "cos(x)"},
	{"sin", "sin(x)"},
	{"tan", "tan(x)"},
	{"cospi", "cos(pi * x)"},
	{"sinpi", "sin(pi * x)"},
	{"tanpi", "tan(pi * x)"},
	{"atan", "atan(x)"},
	{"atanpi", "atan(x)/pi"},
	{"cosh", "cosh(x)"},
	{"sinh", "sinh(x)"},
	{"log2", "log(x)/log(2)"},
	{"log10", "log(x)/log(10)"},
	{"asin", "asin(x)"},
	{"acos", "acos(x)"},
	{"asinpi", "asin(x)/pi"},
	{"acospi", "acos(x)/pi"},
	{"expm1", "exp(x)-1"},
	{"log1p", "log(1+x)"},
}

// Functions returns the 20 function families in registration order.
func Functions() []FunctionSpec {
	return append([]FunctionSpec(nil), functions[:]...)
}

// FunctionByName returns the family with the given canonical name.
func FunctionByName(name string) (FunctionSpec, bool) {
	for _, f := range functions {
		if f.Name == name {
			return f, true
		}
	}
	return FunctionSpec{}, false
}
