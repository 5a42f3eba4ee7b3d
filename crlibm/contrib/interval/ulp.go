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

package interval

import (
	"math"
	"math/big"
)

// minULPExp is the exponent of the smallest subnormal.
const minULPExp = -1074

// ULPRepr returns n and k such that x = n * 2^k, where 2^k is the ulp of x.
// For zero it returns (0, -1074).
func ULPRepr(x float64) (n int64, k int) {
	if x == 0 {
		return 0, minULPExp
	}
	m, e := math.Frexp(x)
	k = max(e-53, minULPExp)
	return int64(math.Ldexp(m, e-k)), k
}

// Nudge moves x by |steps| floats, up for positive steps and down for
// negative ones.
func Nudge(x float64, steps int) float64 {
	dir := math.Inf(1)
	if steps < 0 {
		dir, steps = math.Inf(-1), -steps
	}
	for range steps {
		x = math.Nextafter(x, dir)
	}
	return x
}

// ULPWidth returns the width of iv in units of the smaller ulp of its two
// endpoints: 0 for a point, +Inf for an unbounded interval, NaN when empty.
func ULPWidth(iv Interval) float64 {
	switch {
	case iv.IsEmpty():
		return math.NaN()
	case iv.Lo == iv.Hi:
		return 0
	case math.IsInf(iv.Lo, 0) || math.IsInf(iv.Hi, 0):
		return math.Inf(1)
	}
	_, e := ULPRepr(iv.Lo)
	_, f := ULPRepr(iv.Hi)
	d := new(big.Float).SetPrec(exactSumPrec).SetFloat64(iv.Hi)
	d.Sub(d, new(big.Float).SetFloat64(iv.Lo))
	d.SetMantExp(d, -min(e, f))
	w, _ := d.Float64()
	return w
}

// IsExact reports whether iv holds exactly one number.
func IsExact(iv Interval) bool {
	return !iv.IsEmpty() && iv.Lo == iv.Hi
}

// IsSharp reports whether iv is at most one ulp wide. The empty interval is
// sharp.
func IsSharp(iv Interval) bool {
	return iv.IsEmpty() || ULPWidth(iv) <= 1
}
