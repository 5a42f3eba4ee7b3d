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
	"sync"

	"github.com/remyoudompheng/bigfft"
)

// =============================================================================
// Multi-precision constants
// =============================================================================

// cachedPrec covers argument reduction of the largest float64 (2^1024) at the
// precisions the accurate phase normally reaches.
const cachedPrec = 4096

var constants struct {
	once sync.Once
	pi   *big.Float
	ln2  *big.Float
	ln10 *big.Float
}

func loadConstants() {
	constants.pi = computePi(cachedPrec + 32)
	constants.ln2 = computeLn2(cachedPrec + 32)
	constants.ln10 = computeLn10(cachedPrec + 32)
}

// piBig returns pi rounded to prec bits.
func piBig(prec uint) *big.Float {
	if prec > cachedPrec {
		return newFloat(prec).Set(computePi(prec + 32))
	}
	constants.once.Do(loadConstants)
	return newFloat(prec).Set(constants.pi)
}

// ln2Big returns ln(2) rounded to prec bits.
func ln2Big(prec uint) *big.Float {
	if prec > cachedPrec {
		return newFloat(prec).Set(computeLn2(prec + 32))
	}
	constants.once.Do(loadConstants)
	return newFloat(prec).Set(constants.ln2)
}

// ln10Big returns ln(10) rounded to prec bits.
func ln10Big(prec uint) *big.Float {
	if prec > cachedPrec {
		return newFloat(prec).Set(computeLn10(prec + 32))
	}
	constants.once.Do(loadConstants)
	return newFloat(prec).Set(constants.ln10)
}

// computePi uses Machin's formula pi = 16 atan(1/5) - 4 atan(1/239).
func computePi(prec uint) *big.Float {
	wp := prec + 16
	a := arctanInv(5, true, wp)
	b := arctanInv(239, true, wp)
	a.SetMantExp(a, 4)
	b.SetMantExp(b, 2)
	return a.Sub(a, b)
}

// computeLn2 uses ln 2 = 2 atanh(1/3).
func computeLn2(prec uint) *big.Float {
	y := arctanInv(3, false, prec+16)
	return y.SetMantExp(y, 1)
}

// computeLn10 uses ln 10 = 3 ln 2 + ln(5/4) = 6 atanh(1/3) + 2 atanh(1/9).
func computeLn10(prec uint) *big.Float {
	wp := prec + 16
	y := computeLn2(wp)
	y.Mul(y, intOf(3, wp))
	z := arctanInv(9, false, wp)
	z.SetMantExp(z, 1)
	return y.Add(y, z)
}

// arctanInv returns atan(1/n) when alternating, atanh(1/n) otherwise.
//
// The series sum_k s^k / ((2k+1) n^(2k+1)) is summed exactly as a rational
// T / (B Q) by binary splitting and divided once at the end.
func arctanInv(n int64, alternating bool, prec uint) *big.Float {
	terms := int64(float64(prec+16)/(2*math.Log2(float64(n)))) + 2
	_, q, b, t := splitArctan(0, terms, n, alternating)
	num := newFloat(prec).SetInt(t)
	den := newFloat(prec).SetInt(bigfft.Mul(b, q))
	return num.Quo(num, den)
}

// splitArctan sums terms [a, b) of the arctangent series. With
// p(k) = s (p(0) = 1), q(k) = n^2 (q(0) = n) and b(k) = 2k+1 it returns
// P = prod p, Q = prod q, B = prod b and T such that the partial sum equals
// T / (B Q).
func splitArctan(a, b, n int64, alternating bool) (p, q, bb, t *big.Int) {
	if b-a == 1 {
		p = big.NewInt(1)
		q = big.NewInt(n * n)
		if a == 0 {
			q = big.NewInt(n)
		} else if alternating {
			p = big.NewInt(-1)
		}
		bb = big.NewInt(2*a + 1)
		t = new(big.Int).Set(p)
		return p, q, bb, t
	}

	mid := (a + b) / 2
	pl, ql, bl, tl := splitArctan(a, mid, n, alternating)
	pr, qr, br, tr := splitArctan(mid, b, n, alternating)

	p = bigfft.Mul(pl, pr)
	q = bigfft.Mul(ql, qr)
	bb = bigfft.Mul(bl, br)
	t = new(big.Int).Add(
		bigfft.Mul(bigfft.Mul(br, qr), tl),
		bigfft.Mul(bigfft.Mul(bl, pl), tr),
	)
	return p, q, bb, t
}
