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

// float64 layout
const (
	mantBits = 53
	minExp   = -1022 // smallest normal exponent
	tinyExp  = -1075 // exponent of half the smallest subnormal
)

var half = big.NewFloat(0.5)

// Round rounds v to a float64 in mode m.
//
// (*big.Float).Float64 always rounds to nearest. Round honors the directed
// modes through the subnormal range and at overflow: rounding toward zero a
// value above math.MaxFloat64 gives math.MaxFloat64, not +Inf.
func Round(v *big.Float, m Mode) float64 {
	if v.IsInf() {
		return math.Inf(v.Sign())
	}
	neg := v.Signbit()
	if v.Sign() == 0 {
		if neg {
			return math.Copysign(0, -1)
		}
		return 0
	}

	// 2^e <= |v| < 2^(e+1)
	var mant big.Float
	e := v.MantExp(&mant) - 1

	// Below the normal range fewer bits are available; the grid is fixed at
	// multiples of 2^-1074.
	p := mantBits
	if e < minExp {
		p = e - tinyExp
		if p <= 0 {
			mant.Abs(&mant)
			return roundTiny(neg, m, e == tinyExp && mant.Cmp(half) != 0)
		}
	}

	var r big.Float
	r.SetPrec(uint(p)).SetMode(m.bigMode()).Set(v)
	if r.MantExp(nil) > 1024 {
		return overflow(neg, m)
	}
	f, _ := r.Float64()
	return f
}

// roundTiny rounds a nonzero value of magnitude below 2^-1074. overHalf
// reports whether the magnitude exceeds 2^-1075.
func roundTiny(neg bool, m Mode, overHalf bool) float64 {
	away := false
	switch m {
	case RN:
		away = overHalf
	case RU:
		away = !neg
	case RD:
		away = neg
	}
	r := 0.0
	if away {
		r = math.SmallestNonzeroFloat64
	}
	if neg {
		return -r
	}
	return r
}

// overflow returns the rounding of a value beyond math.MaxFloat64 in
// magnitude.
func overflow(neg bool, m Mode) float64 {
	toInf := true
	switch m {
	case RU:
		toInf = !neg
	case RD:
		toInf = neg
	case RZ:
		toInf = false
	}
	r := math.MaxFloat64
	if toInf {
		r = math.Inf(1)
	}
	if neg {
		return -r
	}
	return r
}

// perturbed returns the rounding of a+d, where a is a float64 and d is a
// nonzero real of the given sign whose magnitude is below half the gap
// between a and its neighbor on that side. If a is zero, its sign must match
// the sign of a+d.
func perturbed(a float64, sign int, m Mode) float64 {
	positive := a > 0 || (a == 0 && sign > 0)
	if m == RZ {
		if positive {
			m = RD
		} else {
			m = RU
		}
	}
	switch m {
	case RU:
		if sign > 0 {
			return math.Nextafter(a, math.Inf(1))
		}
	case RD:
		if sign < 0 {
			return math.Nextafter(a, math.Inf(-1))
		}
	}
	return a
}

// sign returns -1 for negative x (including -0) and +1 otherwise.
func sign(x float64) int {
	if math.Signbit(x) {
		return -1
	}
	return 1
}
