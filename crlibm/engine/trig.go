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

// Sin returns the sine of x rounded in mode m.
func Sin(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case math.Abs(x) < 0x1p-26:
		// sin x = x - x^3/6 + ...
		return perturbed(x, -sign(x), m)
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 32
		r, q := reduceHalfPi(x, wp)
		switch q {
		case 0:
			return sinSeries(r, wp)
		case 1:
			return cosSeries(r, wp)
		case 2:
			s := sinSeries(r, wp)
			return s.Neg(s)
		default:
			c := cosSeries(r, wp)
			return c.Neg(c)
		}
	})
}

// Cos returns the cosine of x rounded in mode m.
func Cos(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case x == 0:
		return 1
	case math.Abs(x) < 0x1p-27:
		// cos x = 1 - x^2/2 + ...
		return perturbed(1, -1, m)
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 32
		r, q := reduceHalfPi(x, wp)
		switch q {
		case 0:
			return cosSeries(r, wp)
		case 1:
			s := sinSeries(r, wp)
			return s.Neg(s)
		case 2:
			c := cosSeries(r, wp)
			return c.Neg(c)
		default:
			return sinSeries(r, wp)
		}
	})
}

// Tan returns the tangent of x rounded in mode m.
func Tan(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case math.Abs(x) < 0x1p-27:
		// tan x = x + x^3/3 + ...
		return perturbed(x, sign(x), m)
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 32
		r, q := reduceHalfPi(x, wp)
		return tanQuadrant(r, q, wp)
	})
}

// tanQuadrant returns tan(r + q pi/2).
func tanQuadrant(r *big.Float, q int, prec uint) *big.Float {
	s := sinSeries(r, prec)
	c := cosSeries(r, prec)
	if q%2 == 0 {
		return s.Quo(s, c)
	}
	c.Quo(c, s)
	return c.Neg(c)
}

// reduceHalfPi returns r and q such that x = k pi/2 + r, |r| <= pi/4 (up to
// rounding) and q = k mod 4. r has relative error below 2^-prec.
//
// The reduction is carried at prec plus the exponent of x plus a guard that
// is doubled until it covers the cancellation of x against k pi/2.
func reduceHalfPi(x float64, prec uint) (*big.Float, int) {
	ex := uint(max(math.Ilogb(x)+1, 0))
	for extra := uint(64); ; extra *= 2 {
		wp := prec + ex + extra
		halfPi := piBig(wp)
		halfPi.SetMantExp(halfPi, -1)

		bx := bigOf(x, wp)
		t := newFloat(wp).Quo(bx, halfPi)
		if t.Sign() >= 0 {
			t.Add(t, half)
		} else {
			t.Sub(t, half)
		}
		k, _ := t.Int(nil)

		r := newFloat(wp).SetInt(k)
		r.Mul(r, halfPi)
		r.Sub(bx, r)

		// The absolute error of r is about 2^-(prec+extra).
		if r.Sign() != 0 && 16-exponent(r) <= int(extra) {
			q := new(big.Int).Mod(k, big.NewInt(4)).Int64()
			return r, int(q)
		}
	}
}

// sinSeries returns sin(r) for |r| <= 1 at precision prec.
func sinSeries(r *big.Float, prec uint) *big.Float {
	r2 := newFloat(prec).Mul(r, r)
	sum := newFloat(prec).Set(r)
	term := newFloat(prec).Set(r)
	for n := int64(2); ; n += 2 {
		term.Mul(term, r2)
		term.Quo(term, intOf(n*(n+1), prec))
		term.Neg(term)
		if negligible(term, sum, prec) {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}

// cosSeries returns cos(r) for |r| <= 1 at precision prec.
func cosSeries(r *big.Float, prec uint) *big.Float {
	r2 := newFloat(prec).Mul(r, r)
	sum := intOf(1, prec)
	term := intOf(1, prec)
	for n := int64(1); ; n += 2 {
		term.Mul(term, r2)
		term.Quo(term, intOf(n*(n+1), prec))
		term.Neg(term)
		if negligible(term, sum, prec) {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}
