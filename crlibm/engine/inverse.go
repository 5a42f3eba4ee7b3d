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

// atanSmall is the argument bound below which the arctangent series is
// summed directly.
const atanSmall = 0x1p-8

// halfPiSigned returns ±pi/2 with the sign of s.
func halfPiSigned(s int) approximation {
	return func(prec uint) *big.Float {
		y := piBig(prec + 8)
		y.SetMantExp(y, -1)
		if s < 0 {
			y.Neg(y)
		}
		return y
	}
}

// divPi wraps f to return f/pi.
func divPi(f approximation) approximation {
	return func(prec uint) *big.Float {
		wp := prec + 8
		y := f(wp)
		return y.Quo(y, piBig(wp))
	}
}

// Atan returns the arctangent of x rounded in mode m.
func Atan(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.IsInf(x, 0):
		return ziv(m, halfPiSigned(sign(x)))
	case math.Abs(x) < 0x1p-27:
		// atan x = x - x^3/3 + ...
		return perturbed(x, -sign(x), m)
	}
	return ziv(m, func(prec uint) *big.Float {
		return atanBig(bigOf(x, prec), prec)
	})
}

// AtanPi returns atan(x)/pi rounded in mode m.
func AtanPi(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.IsInf(x, 0):
		return math.Copysign(0.5, x)
	case math.Abs(x) == 1:
		return math.Copysign(0.25, x)
	case math.Abs(x) > 0x1p60:
		// atan(x)/pi = ±1/2 - 1/(pi x) + ...
		return perturbed(math.Copysign(0.5, x), -sign(x), m)
	}
	return ziv(m, divPi(func(prec uint) *big.Float {
		return atanBig(bigOf(x, prec), prec)
	}))
}

// Asin returns the arcsine of x rounded in mode m.
func Asin(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.Abs(x) > 1:
		return math.NaN()
	case math.Abs(x) == 1:
		return ziv(m, halfPiSigned(sign(x)))
	case math.Abs(x) < 0x1p-27:
		// asin x = x + x^3/6 + ...
		return perturbed(x, sign(x), m)
	}
	return ziv(m, func(prec uint) *big.Float {
		return asinBig(x, prec)
	})
}

// Acos returns the arccosine of x rounded in mode m.
func Acos(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.Abs(x) > 1:
		return math.NaN()
	case x == 1:
		return 0
	}
	return ziv(m, func(prec uint) *big.Float {
		return acosBig(x, prec)
	})
}

// AsinPi returns asin(x)/pi rounded in mode m.
func AsinPi(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.Abs(x) > 1:
		return math.NaN()
	case math.Abs(x) == 1:
		return math.Copysign(0.5, x)
	}
	return ziv(m, divPi(func(prec uint) *big.Float {
		return asinBig(x, prec)
	}))
}

// AcosPi returns acos(x)/pi rounded in mode m.
func AcosPi(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.Abs(x) > 1:
		return math.NaN()
	case x == 1:
		return 0
	case x == -1:
		return 1
	case x == 0:
		return 0.5
	case math.Abs(x) < 0x1p-60:
		// acos(x)/pi = 1/2 - x/pi + ...
		return perturbed(0.5, -sign(x), m)
	}
	return ziv(m, divPi(func(prec uint) *big.Float {
		return acosBig(x, prec)
	}))
}

// atanBig returns atan(x) with relative error below 2^-prec.
//
// Arguments above 1 are reflected through pi/2 - atan(1/x). The argument is
// then halved with atan t = 2 atan(t / (1 + sqrt(1+t^2))) until the series
// converges quickly.
func atanBig(x *big.Float, prec uint) *big.Float {
	wp := prec + 32
	t := newFloat(wp).Abs(x)
	one := intOf(1, wp)

	var y *big.Float
	switch t.Cmp(one) {
	case 0:
		y = piBig(wp)
		y.SetMantExp(y, -2)
	case 1:
		t.Quo(one, t)
		y = piBig(wp)
		y.SetMantExp(y, -1)
		y.Sub(y, atanReduced(t, wp))
	default:
		y = atanReduced(t, wp)
	}
	if x.Sign() < 0 {
		y.Neg(y)
	}
	return y
}

// atanReduced returns atan(t) for 0 < t < 1 at precision prec.
func atanReduced(t *big.Float, prec uint) *big.Float {
	small := big.NewFloat(atanSmall)
	halvings := 0
	s := newFloat(prec)
	for t.Cmp(small) > 0 {
		s.Mul(t, t)
		s.Add(s, intOf(1, prec))
		s.Sqrt(s)
		s.Add(s, intOf(1, prec))
		t.Quo(t, s)
		halvings++
	}

	t2 := newFloat(prec).Mul(t, t)
	pow := newFloat(prec).Set(t)
	sum := newFloat(prec).Set(t)
	term := newFloat(prec)
	for k := int64(3); ; k += 2 {
		pow.Mul(pow, t2)
		pow.Neg(pow)
		term.Quo(pow, intOf(k, prec))
		if negligible(term, sum, prec) {
			break
		}
		sum.Add(sum, term)
	}
	return sum.SetMantExp(sum, halvings)
}

// asinBig returns asin(x) = atan(x / sqrt((1-x)(1+x))) for 0 < |x| < 1.
func asinBig(x float64, prec uint) *big.Float {
	wp := prec + 16
	bx := bigOf(x, wp)
	d := sqrtOneMinusSquare(bx, wp)
	return atanBig(d.Quo(bx, d), prec)
}

// acosBig returns acos(x) = 2 atan(sqrt((1-x)/(1+x))) for -1 <= x < 1.
func acosBig(x float64, prec uint) *big.Float {
	wp := prec + 16
	bx := bigOf(x, wp)
	one := intOf(1, wp)
	num := newFloat(wp).Sub(one, bx)
	den := newFloat(wp).Add(one, bx)
	if den.Sign() == 0 {
		return piBig(wp)
	}
	num.Quo(num, den)
	num.Sqrt(num)
	y := atanBig(num, prec)
	return y.SetMantExp(y, 1)
}

// sqrtOneMinusSquare returns sqrt((1-x)(1+x)) at precision prec.
func sqrtOneMinusSquare(x *big.Float, prec uint) *big.Float {
	one := intOf(1, prec)
	a := newFloat(prec).Sub(one, x)
	b := newFloat(prec).Add(one, x)
	a.Mul(a, b)
	return a.Sqrt(a)
}
