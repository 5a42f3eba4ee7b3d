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

// pow10 holds the powers of ten that are exact in float64.
var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// logSpecial handles the arguments shared by Log, Log2 and Log10.
func logSpecial(x float64) (float64, bool) {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1):
		return x, true
	case x < 0:
		return math.NaN(), true
	case x == 0:
		return math.Inf(-1), true
	case x == 1:
		return 0, true
	}
	return 0, false
}

// Log returns the natural logarithm of x rounded in mode m.
func Log(x float64, m Mode) float64 {
	if y, ok := logSpecial(x); ok {
		return y
	}
	if quickEnabled() {
		if y, ok := quickLog(x, m); ok {
			return y
		}
	}
	return ziv(m, func(prec uint) *big.Float {
		return logBig(bigOf(x, prec), prec)
	})
}

// Log2 returns the base 2 logarithm of x rounded in mode m.
func Log2(x float64, m Mode) float64 {
	if y, ok := logSpecial(x); ok {
		return y
	}
	if f, e := math.Frexp(x); f == 0.5 {
		return float64(e - 1)
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 8
		y := logBig(bigOf(x, wp), wp)
		return y.Quo(y, ln2Big(wp))
	})
}

// Log10 returns the base 10 logarithm of x rounded in mode m.
func Log10(x float64, m Mode) float64 {
	if y, ok := logSpecial(x); ok {
		return y
	}
	for k, p := range pow10 {
		if x == p {
			return float64(k)
		}
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 8
		y := logBig(bigOf(x, wp), wp)
		return y.Quo(y, ln10Big(wp))
	})
}

// Log1p returns ln(1+x) rounded in mode m.
func Log1p(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), math.IsInf(x, 1), x == 0:
		return x
	case x < -1:
		return math.NaN()
	case x == -1:
		return math.Inf(-1)
	case math.Abs(x) < 0x1p-54:
		// ln(1+x) = x - x^2/2 + ...
		return perturbed(x, -1, m)
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 16
		bx := bigOf(x, wp)
		if math.Abs(x) < 0.5 {
			// ln(1+x) = 2 atanh(x / (2+x))
			z := newFloat(wp).Add(bx, intOf(2, wp))
			z.Quo(bx, z)
			y := atanhSeries(z, wp)
			return y.SetMantExp(y, 1)
		}
		return logBig(newFloat(wp).Add(bx, intOf(1, wp)), wp)
	})
}

// logBig returns ln(x) for x > 0 with relative error below 2^-prec.
//
// x = f 2^e with sqrt(1/2) <= f < sqrt(2), and ln f = 2 atanh((f-1)/(f+1)).
func logBig(x *big.Float, prec uint) *big.Float {
	wp := prec + 16
	f := newFloat(max(wp, x.Prec()))
	e := x.MantExp(f)
	if f.Cmp(big.NewFloat(math.Sqrt2/2)) < 0 {
		f.SetMantExp(f, 1)
		e--
	}

	num := newFloat(f.Prec()).Sub(f, intOf(1, wp))
	den := newFloat(wp).Add(f, intOf(1, wp))
	z := newFloat(wp).Quo(num, den)
	y := atanhSeries(z, wp)
	y.SetMantExp(y, 1)
	if e != 0 {
		t := ln2Big(wp + 16)
		t.Mul(t, intOf(int64(e), wp+16))
		y.Add(y, t)
	}
	return y
}

// atanhSeries returns atanh(z) = z + z^3/3 + z^5/5 + ... for |z| < 1/2 at
// precision prec.
func atanhSeries(z *big.Float, prec uint) *big.Float {
	z2 := newFloat(prec).Mul(z, z)
	pow := newFloat(prec).Set(z)
	sum := newFloat(prec).Set(z)
	term := newFloat(prec)
	for k := int64(3); ; k += 2 {
		pow.Mul(pow, z2)
		term.Quo(pow, intOf(k, prec))
		if negligible(term, sum, prec) {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}
