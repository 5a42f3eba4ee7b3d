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

// Thresholds of the exponential family.
const (
	expOverflow  = 710.0  // e^x > MaxFloat64 for x >= expOverflow
	expUnderflow = -746.0 // e^x < 2^-1075 for x <= expUnderflow
	expQuickMax  = 700.0  // quick phase domain
	expm1Floor   = -40.0  // e^x < 2^-54 for x <= expm1Floor
	hypOverflow  = 711.0  // cosh, sinh > MaxFloat64 for |x| >= hypOverflow
)

// Exp returns e^x rounded in mode m.
func Exp(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return 0
	case x == 0:
		return 1
	case x >= expOverflow:
		return overflow(false, m)
	case x <= expUnderflow:
		return perturbed(0, 1, m)
	case math.Abs(x) < 0x1p-54:
		return perturbed(1, sign(x), m)
	}
	if quickEnabled() && math.Abs(x) <= expQuickMax {
		if y, ok := quickExp(x, m); ok {
			return y
		}
	}
	return ziv(m, func(prec uint) *big.Float {
		return expBig(bigOf(x, prec), prec)
	})
}

// Expm1 returns e^x - 1 rounded in mode m.
func Expm1(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1), x == 0:
		return x
	case math.IsInf(x, -1):
		return -1
	case x >= expOverflow:
		return overflow(false, m)
	case x <= expm1Floor:
		return perturbed(-1, 1, m)
	case math.Abs(x) < 0x1p-54:
		// e^x - 1 = x + x^2/2 + ...
		return perturbed(x, 1, m)
	}
	return ziv(m, func(prec uint) *big.Float {
		return expm1Big(bigOf(x, prec), prec)
	})
}

// Cosh returns the hyperbolic cosine of x rounded in mode m.
func Cosh(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.Inf(1)
	case x == 0:
		return 1
	case math.Abs(x) >= hypOverflow:
		return overflow(false, m)
	case math.Abs(x) < 0x1p-27:
		return perturbed(1, 1, m)
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 8
		e := expBig(bigOf(math.Abs(x), wp), wp)
		inv := newFloat(wp).Quo(intOf(1, wp), e)
		e.Add(e, inv)
		return e.SetMantExp(e, -1)
	})
}

// Sinh returns the hyperbolic sine of x rounded in mode m.
func Sinh(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, 0), x == 0:
		return x
	case math.Abs(x) >= hypOverflow:
		return overflow(x < 0, m)
	case math.Abs(x) < 0x1p-27:
		// sinh x = x + x^3/6 + ...
		return perturbed(x, sign(x), m)
	}
	return ziv(m, func(prec uint) *big.Float {
		// 2 sinh|x| = (e^|x| - 1) + (e^|x| - 1) / e^|x|
		wp := prec + 8
		e := expm1Big(bigOf(math.Abs(x), wp), wp)
		d := newFloat(wp).Add(e, intOf(1, wp))
		d.Quo(e, d)
		e.Add(e, d)
		e.SetMantExp(e, -1)
		if x < 0 {
			e.Neg(e)
		}
		return e
	})
}

// expBig returns e^x with relative error below 2^-prec.
//
// x = k ln2 + r, and e^r is evaluated as (e^(r/2^s))^(2^s) with a Taylor
// series for the inner exponential.
func expBig(x *big.Float, prec uint) *big.Float {
	s := uint(math.Sqrt(float64(prec))/2) + 4
	wp := prec + s + 32

	xf, _ := x.Float64()
	k := math.Round(xf / math.Ln2)
	ek := max(math.Ilogb(k)+1, 0)

	ln2 := ln2Big(wp + uint(ek))
	r := newFloat(wp+uint(ek)).Mul(intOf(int64(k), wp+uint(ek)), ln2)
	r.Sub(x, r)
	r.SetPrec(wp)
	r.SetMantExp(r, -int(s))

	sum := intOf(1, wp)
	term := intOf(1, wp)
	for n := int64(1); ; n++ {
		term.Mul(term, r)
		term.Quo(term, intOf(n, wp))
		if negligible(term, sum, wp) {
			break
		}
		sum.Add(sum, term)
	}
	for range s {
		sum.Mul(sum, sum)
	}
	return sum.SetMantExp(sum, int(k))
}

// expm1Big returns e^x - 1 with relative error below 2^-prec.
func expm1Big(x *big.Float, prec uint) *big.Float {
	wp := prec + 16
	if x.MantExp(nil) > 0 || x.Sign() == 0 {
		// |x| >= 1: e^x - 1 loses at most two bits.
		y := expBig(x, wp)
		return y.Sub(y, intOf(1, wp))
	}

	sum := newFloat(wp).Set(x)
	term := newFloat(wp).Set(x)
	for n := int64(2); ; n++ {
		term.Mul(term, x)
		term.Quo(term, intOf(n, wp))
		if negligible(term, sum, wp) {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}
