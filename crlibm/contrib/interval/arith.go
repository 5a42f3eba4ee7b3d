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

	"github.com/ajroetker/go-crlibm/crlibm/engine"
)

const (
	down = engine.RD
	up   = engine.RU
)

// exactSumPrec holds the exact sum of any two finite float64 values.
const exactSumPrec = 2200

// quoPrec is the working precision of division; the quotient is computed
// truncated and its sticky bit is reinstated before the final rounding.
const quoPrec = 200

// addRound returns a+b rounded in mode m.
func addRound(a, b float64, m engine.Mode) float64 {
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return a + b
	}
	s := new(big.Float).SetPrec(exactSumPrec).SetFloat64(a)
	s.Add(s, new(big.Float).SetFloat64(b))
	if s.Sign() == 0 {
		// x + (-x) is +0 in every mode but RD.
		if m == down && (math.Signbit(a) || math.Signbit(b)) {
			return math.Copysign(0, -1)
		}
		return 0
	}
	return engine.Round(s, m)
}

// mulRound returns a*b rounded in mode m, with 0*Inf = 0.
func mulRound(a, b float64, m engine.Mode) float64 {
	switch {
	case a == 0 || b == 0:
		return 0
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a * b
	}
	p := new(big.Float).SetPrec(2 * 53).SetFloat64(a)
	p.Mul(p, new(big.Float).SetFloat64(b))
	return engine.Round(p, m)
}

// quoRound returns a/b rounded in mode m for b != 0.
func quoRound(a, b float64, m engine.Mode) float64 {
	switch {
	case a == 0:
		return 0
	case math.IsInf(a, 0) && math.IsInf(b, 0):
		return math.NaN()
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a / b
	}
	q := new(big.Float).SetPrec(quoPrec).SetMode(big.ToZero)
	q.Quo(new(big.Float).SetFloat64(a), new(big.Float).SetFloat64(b))
	if q.Acc() != big.Exact {
		// The exact quotient lies strictly between q and the next
		// quoPrec-bit value away from zero, as does q plus this nudge.
		nudge := new(big.Float).SetMantExp(big.NewFloat(float64(q.Sign())), q.MantExp(nil)-quoPrec-8)
		q.SetPrec(quoPrec + 16).Add(q, nudge)
	}
	return engine.Round(q, m)
}

// Neg returns -iv.
func Neg(iv Interval) Interval {
	if iv.IsEmpty() {
		return Empty()
	}
	return Interval{-iv.Hi, -iv.Lo}
}

// Add returns the enclosure of {a+b : a in x, b in y}.
func Add(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return Interval{addRound(x.Lo, y.Lo, down), addRound(x.Hi, y.Hi, up)}
}

// Sub returns the enclosure of {a-b : a in x, b in y}.
func Sub(x, y Interval) Interval {
	return Add(x, Neg(y))
}

// Mul returns the enclosure of {a*b : a in x, b in y}.
func Mul(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	return corners(x, y, mulRound)
}

// Div returns the enclosure of {a/b : a in x, b in y}. A divisor containing
// zero gives Entire.
func Div(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if y.Contains(0) {
		return Entire()
	}
	return corners(x, y, quoRound)
}

// corners applies op to the four endpoint pairs and keeps the outermost
// results.
func corners(x, y Interval, op func(a, b float64, m engine.Mode) float64) Interval {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, a := range [2]float64{x.Lo, x.Hi} {
		for _, b := range [2]float64{y.Lo, y.Hi} {
			lo = min(lo, op(a, b, down))
			hi = max(hi, op(a, b, up))
		}
	}
	return New(lo, hi)
}
