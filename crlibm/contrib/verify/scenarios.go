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

package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-crlibm/crlibm"
)

// scenario is a fixed check against the registry.
type scenario struct {
	name  string
	check func(reg *crlibm.Registry) error
}

// want evaluates name at x through Call and compares bit patterns, treating
// all NaNs as equal.
func want(name string, x, expected float64) scenario {
	return scenario{
		name: fmt.Sprintf("%s(%v)", name, x),
		check: func(reg *crlibm.Registry) error {
			e, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			got, err := e.Call(x)
			if err != nil {
				return err
			}
			if !sameBits(got, expected) {
				return fmt.Errorf("got %v, want %v", got, expected)
			}
			return nil
		},
	}
}

// rejects checks that Call refuses args with ErrInvalidArgument.
func rejects(name, label string, args ...any) scenario {
	return scenario{
		name: fmt.Sprintf("%s(%s)", name, label),
		check: func(reg *crlibm.Registry) error {
			e, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			if _, err := e.Call(args...); !errors.Is(err, crlibm.ErrInvalidArgument) {
				return fmt.Errorf("got error %v, want %v", err, crlibm.ErrInvalidArgument)
			}
			return nil
		},
	}
}

var scenarios = []scenario{
	want("log_rn", 0, math.Inf(-1)),
	want("acos_rn", 2, math.NaN()),
	want("acos_ru", 2, math.NaN()),
	want("acos_rd", 2, math.NaN()),
	want("acos_rz", 2, math.NaN()),
	want("sin_rn", 0, 0),
	want("sin_rn", math.Copysign(0, -1), math.Copysign(0, -1)),
	want("asin_rn", 1, math.Pi/2),
	want("asin_rn", 1.0000001, math.NaN()),
	want("exp_rn", 0, 1),
	want("exp_ru", 0, 1),
	want("exp_rd", 0, 1),
	want("exp_rz", 0, 1),
	want("expm1_rn", 0, 0),
	want("log1p_rn", -1, math.Inf(-1)),
	want("cospi_rn", 0.5, 0),
	want("atanpi_rn", 1, 0.25),
	rejects("exp_rn", "no arguments"),
	rejects("exp_rn", "two arguments", 1.0, 2.0),
	rejects("exp_rn", "string", "1.0"),
	rejects("log_rd", "bool", true),
	{
		name: "distinct names",
		check: func(reg *crlibm.Registry) error {
			n := len(crlibm.Functions()) * len(crlibm.Modes())
			if got := len(reg.Names()); got != n {
				return fmt.Errorf("%d names, want %d", got, n)
			}
			return nil
		},
	},
}

// CheckScenarios runs the fixed special-value and argument checks and
// returns the ones that fail.
func CheckScenarios(reg *crlibm.Registry) []Failure {
	var out []Failure
	for _, s := range scenarios {
		if err := s.check(reg); err != nil {
			out = append(out, Failure{
				Function: s.name,
				Check:    "scenario",
				X:        math.NaN(),
				Detail:   err.Error(),
			})
		}
	}
	return out
}
