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

import (
	"math"
	"math/big"
)

// Precision schedule of the accurate phase, in bits.
const (
	zivStartPrec = 96
	zivMaxPrec   = 1 << 14
)

// approximation returns f(x) with relative error below 2^-prec.
type approximation func(prec uint) *big.Float

// ziv evaluates f at geometrically increasing precision until the error
// enclosure of the approximation rounds to a single float64 in mode m.
//
// Exact and near-exact results must be settled by the caller: for those the
// enclosure straddles a rounding boundary at every precision.
func ziv(m Mode, f approximation) float64 {
	for prec := uint(zivStartPrec); ; prec *= 2 {
		y := f(prec)
		lo, hi := enclose(y, prec)
		a, b := Round(lo, m), Round(hi, m)
		if math.Float64bits(a) == math.Float64bits(b) {
			return a
		}
		if prec >= zivMaxPrec {
			// Unreachable for the settled argument sets; keep the last
			// estimate rather than loop forever.
			return Round(y, m)
		}
	}
}

// enclose returns [y - |y|*2^-prec, y + |y|*2^-prec], rounded outward.
func enclose(y *big.Float, prec uint) (lo, hi *big.Float) {
	err := new(big.Float).Abs(y)
	err.SetMantExp(err, -int(prec))

	wp := y.Prec() + 8
	lo = new(big.Float).SetPrec(wp).SetMode(big.ToNegativeInf).Sub(y, err)
	hi = new(big.Float).SetPrec(wp).SetMode(big.ToPositiveInf).Add(y, err)
	return lo, hi
}

// newFloat returns a zero big.Float of the given precision.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// bigOf converts x exactly.
func bigOf(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(max(prec, mantBits)).SetFloat64(x)
}

// intOf returns the integer n at the given precision.
func intOf(n int64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt64(n)
}

// exponent returns e such that 2^(e-1) <= |v| < 2^e, or math.MinInt for
// zero.
func exponent(v *big.Float) int {
	if v.Sign() == 0 {
		return math.MinInt
	}
	return v.MantExp(nil)
}

// negligible reports whether term no longer contributes to sum at precision
// prec.
func negligible(term, sum *big.Float, prec uint) bool {
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return false
	}
	return exponent(term) < exponent(sum)-int(prec)-2
}
