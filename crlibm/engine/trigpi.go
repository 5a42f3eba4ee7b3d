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

// reduceHalf splits x exactly as x = 2j + n/2 + r with |r| <= 1/4 and returns
// r and q = n mod 4.
func reduceHalf(x float64) (r float64, q int) {
	t := math.Mod(x, 2)
	n := math.RoundToEven(2 * t)
	r = t - n/2
	q = (int(n)%4 + 4) % 4
	return r, q
}

// piTimes returns pi*r at precision prec.
func piTimes(r float64, prec uint) *big.Float {
	y := piBig(prec)
	return y.Mul(y, bigOf(r, prec))
}

// SinPi returns sin(pi*x) rounded in mode m.
func SinPi(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	}
	r, q := reduceHalf(x)
	if r == 0 {
		switch q {
		case 1:
			return 1
		case 3:
			return -1
		default:
			return math.Copysign(0, x)
		}
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 32
		y := piTimes(r, wp)
		switch q {
		case 0:
			return sinSeries(y, wp)
		case 1:
			return cosSeries(y, wp)
		case 2:
			s := sinSeries(y, wp)
			return s.Neg(s)
		default:
			c := cosSeries(y, wp)
			return c.Neg(c)
		}
	})
}

// CosPi returns cos(pi*x) rounded in mode m.
func CosPi(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	case x == 0:
		return 1
	case math.Abs(x) < 0x1p-29:
		// cos(pi x) = 1 - (pi x)^2/2 + ...
		return perturbed(1, -1, m)
	}
	r, q := reduceHalf(x)
	if r == 0 {
		switch q {
		case 0:
			return 1
		case 2:
			return -1
		default:
			return 0
		}
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 32
		y := piTimes(r, wp)
		switch q {
		case 0:
			return cosSeries(y, wp)
		case 1:
			s := sinSeries(y, wp)
			return s.Neg(s)
		case 2:
			c := cosSeries(y, wp)
			return c.Neg(c)
		default:
			return sinSeries(y, wp)
		}
	})
}

// TanPi returns tan(pi*x) rounded in mode m.
//
// At integers the result is a zero with the sign of x for even integers and
// the opposite sign for odd ones. At half-integers n+1/2 it is +Inf for even
// n and -Inf for odd n.
func TanPi(x float64, m Mode) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	}
	r, q := reduceHalf(x)
	switch {
	case r == 0 && q%2 == 0:
		if q == 2 {
			return math.Copysign(0, -x)
		}
		return math.Copysign(0, x)
	case r == 0 && q == 1:
		return math.Inf(1)
	case r == 0:
		return math.Inf(-1)
	case math.Abs(r) == 0.25:
		if (r > 0) == (q%2 == 0) {
			return 1
		}
		return -1
	}
	return ziv(m, func(prec uint) *big.Float {
		wp := prec + 32
		return tanQuadrant(piTimes(r, wp), q, wp)
	})
}
