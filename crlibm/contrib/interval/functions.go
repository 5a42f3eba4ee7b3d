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

	"github.com/ajroetker/go-crlibm/crlibm"
)

var (
	realLine    = Entire()
	nonNegative = Interval{0, math.Inf(1)}
	aboveMinus1 = Interval{-1, math.Inf(1)}
)

// entry returns a registered operation. Every name used here is one of the
// 80 fixed operations, so a failure is a programming error.
func entry(name string) *crlibm.Entry {
	e, err := crlibm.Lookup(name)
	if err != nil {
		panic(err)
	}
	return e
}

// monotone evaluates an increasing function: the lower bound of the
// restriction of x to domain is rounded down and the upper bound up.
func monotone(fn string, domain, x Interval) Interval {
	c := x.Intersect(domain)
	if c.IsEmpty() {
		return Empty()
	}
	return Interval{entry(fn + "_rd").Eval(c.Lo), entry(fn + "_ru").Eval(c.Hi)}
}

// Exp returns the enclosure of e^x.
func Exp(x Interval) Interval { return monotone("exp", realLine, x) }

// Expm1 returns the enclosure of e^x - 1.
func Expm1(x Interval) Interval { return monotone("expm1", realLine, x) }

// Log returns the enclosure of ln x over the part of x in [0, +Inf].
func Log(x Interval) Interval { return monotone("log", nonNegative, x) }

// Log2 returns the enclosure of log2 x over the part of x in [0, +Inf].
func Log2(x Interval) Interval { return monotone("log2", nonNegative, x) }

// Log10 returns the enclosure of log10 x over the part of x in [0, +Inf].
func Log10(x Interval) Interval { return monotone("log10", nonNegative, x) }

// Log1p returns the enclosure of ln(1+x) over the part of x in [-1, +Inf].
func Log1p(x Interval) Interval { return monotone("log1p", aboveMinus1, x) }

// Atan returns the enclosure of atan x.
func Atan(x Interval) Interval { return monotone("atan", realLine, x) }

// Atanpi returns the enclosure of atan(x)/pi.
func Atanpi(x Interval) Interval { return monotone("atanpi", realLine, x) }

// Sinh returns the enclosure of sinh x.
func Sinh(x Interval) Interval { return monotone("sinh", realLine, x) }

// Cosh returns the enclosure of cosh x. cosh decreases up to 0 and
// increases after it.
func Cosh(x Interval) Interval {
	if x.IsEmpty() {
		return Empty()
	}
	rd, ru := entry("cosh_rd"), entry("cosh_ru")
	switch {
	case x.Lo > 0:
		return Interval{rd.Eval(x.Lo), ru.Eval(x.Hi)}
	case x.Hi < 0:
		return Interval{rd.Eval(x.Hi), ru.Eval(x.Lo)}
	}
	return Interval{1, max(ru.Eval(x.Lo), ru.Eval(x.Hi))}
}

// Pi returns an enclosure of pi one ulp wide.
func Pi() Interval {
	return Mul(Point(4), Atan(Point(1)))
}

// E returns an enclosure of e one ulp wide.
func E() Interval {
	return Exp(Point(1))
}
