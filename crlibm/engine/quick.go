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
)

// =============================================================================
// Quick phase: double-double arithmetic
// =============================================================================
//
// A dd holds hi+lo with |lo| <= ulp(hi)/2. Every product below is wrapped in
// an explicit float64 conversion so the compiler cannot fuse it into an FMA
// and change the error-free transformations.

type dd struct {
	hi, lo float64
}

// splitter is 2^27+1.
const splitter = 134217729.0

// Error bounds of the quick phase. The double-double kernels are accurate to
// roughly 2^-94; the bounds below leave a wide margin.
const (
	quickExpRelErr = 0x1p-85
	quickLogAbsErr = 0x1p-86
	quickLogRelErr = 0x1p-95
)

// Taylor degree and argument halvings of the quick exp kernel. With
// |r| <= ln(2)/2 the reduced argument is below 2^-7.5, so the truncation
// error of the degree 14 polynomial is far below the rounding error.
const (
	quickExpTerms    = 14
	quickExpHalvings = 6
)

func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// fastTwoSum requires |a| >= |b| or a == 0.
func fastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

func twoProd(a, b float64) (p, e float64) {
	p = float64(a * b)
	if currentLevel == DispatchFMA {
		return p, math.FMA(a, b, -p)
	}
	ah, al := split(a)
	bh, bl := split(b)
	e = float64(float64(float64(float64(ah*bh)-p)+float64(ah*bl))+float64(al*bh)) + float64(al*bl)
	return p, e
}

func split(a float64) (hi, lo float64) {
	c := float64(splitter * a)
	hi = c - float64(c-a)
	lo = a - hi
	return hi, lo
}

func ddAdd(a, b dd) dd {
	s, e := twoSum(a.hi, b.hi)
	t, f := twoSum(a.lo, b.lo)
	e += t
	s, e = fastTwoSum(s, e)
	e += f
	s, e = fastTwoSum(s, e)
	return dd{s, e}
}

func ddMul(a, b dd) dd {
	p, e := twoProd(a.hi, b.hi)
	e += float64(a.hi*b.lo) + float64(a.lo*b.hi)
	p, e = fastTwoSum(p, e)
	return dd{p, e}
}

func ddMulF(a dd, b float64) dd {
	p, e := twoProd(a.hi, b)
	e += float64(a.lo * b)
	p, e = fastTwoSum(p, e)
	return dd{p, e}
}

func ddDivF(a dd, b float64) dd {
	q1 := a.hi / b
	p, e := twoProd(q1, b)
	r := float64(float64(a.hi-p)-e) + a.lo
	q2 := r / b
	s, t := fastTwoSum(q1, q2)
	return dd{s, t}
}

// ddExpSmall returns e^r for |r| <= ln(2)/2.
func ddExpSmall(r dd) dd {
	r = dd{math.Ldexp(r.hi, -quickExpHalvings), math.Ldexp(r.lo, -quickExpHalvings)}
	one := dd{1, 0}
	s := one
	for n := quickExpTerms; n >= 1; n-- {
		s = ddAdd(one, ddDivF(ddMul(r, s), float64(n)))
	}
	for range quickExpHalvings {
		s = ddMul(s, s)
	}
	return s
}

// ln(2) = ln2[0] + ln2[1] + ln2[2], with ln2[0] on 32 bits so that k*ln2[0]
// is exact for every |k| < 2^21.
var quick struct {
	once   sync.Once
	ln2    [3]float64
	invLn2 float64
}

func loadQuickConstants() {
	const prec = 256
	l := ln2Big(prec)
	rest := newFloat(prec).Set(l)
	for i, p := range []uint{32, mantBits, mantBits} {
		part := newFloat(p).Set(rest)
		quick.ln2[i], _ = part.Float64()
		rest.Sub(rest, part)
	}
	inv := newFloat(prec).Quo(intOf(1, prec), l)
	quick.invLn2, _ = inv.Float64()
}

// quickExp tries to settle e^x from a double-double approximation.
// Requires 2^-54 <= |x| <= 700.
func quickExp(x float64, m Mode) (float64, bool) {
	quick.once.Do(loadQuickConstants)
	k := math.Round(x * quick.invLn2)

	// r = x - k*ln2; x - k*ln2[0] is exact by Sterbenz' lemma.
	r0 := x - float64(k*quick.ln2[0])
	p, pe := twoProd(k, quick.ln2[1])
	r := ddAdd(dd{r0, 0}, dd{-p, -pe})
	r = ddAdd(r, dd{-float64(k * quick.ln2[2]), 0})

	y := ddExpSmall(r)
	return settle(y, int(k), math.Abs(y.hi)*quickExpRelErr, m)
}

// quickLog tries to settle ln(x) from a double-double approximation.
// Requires 0 < x < +Inf.
func quickLog(x float64, m Mode) (float64, bool) {
	quick.once.Do(loadQuickConstants)
	f, e := math.Frexp(x)
	if f < math.Sqrt2/2 {
		f *= 2
		e--
	}

	// One Newton step on exp from the libm estimate: y1 = y0 + f*e^-y0 - 1.
	// The step squares the error of y0, leaving the double-double error.
	y0 := math.Log(f)
	z := ddAdd(ddMulF(ddExpSmall(dd{-y0, 0}), f), dd{-1, 0})
	y := ddAdd(dd{y0, 0}, z)

	if e != 0 {
		k := float64(e)
		p, pe := twoProd(k, quick.ln2[1])
		y = ddAdd(y, ddAdd(dd{float64(k * quick.ln2[0]), 0}, dd{p, pe}))
		y = ddAdd(y, dd{float64(k * quick.ln2[2]), 0})
	}
	return settle(y, 0, quickLogAbsErr+math.Abs(y.hi)*quickLogRelErr, m)
}

// settle rounds (y.hi + y.lo) * 2^scale in mode m if every value within err
// (before scaling) rounds to the same float64.
func settle(y dd, scale int, err float64, m Mode) (float64, bool) {
	const prec = 256
	v := newFloat(prec).SetFloat64(y.hi)
	v.Add(v, new(big.Float).SetFloat64(y.lo))

	e := new(big.Float).SetFloat64(err)
	lo := newFloat(prec).SetMode(big.ToNegativeInf).Sub(v, e)
	hi := newFloat(prec).SetMode(big.ToPositiveInf).Add(v, e)
	lo.SetMantExp(lo, scale)
	hi.SetMantExp(hi, scale)

	a, b := Round(lo, m), Round(hi, m)
	return a, math.Float64bits(a) == math.Float64bits(b)
}
