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

// Package interval implements closed interval arithmetic on float64
// endpoints with outward rounding. Lower bounds are computed with the
// round-down operations of the crlibm registry and upper bounds with the
// round-up ones, so every result encloses the exact image of its argument.
//
// The empty interval has NaN endpoints.
package interval

import (
	"math"
	"strconv"
)

// Interval is the closed set [Lo, Hi]. Endpoints may be infinite.
type Interval struct {
	Lo, Hi float64
}

// New returns the interval with endpoints a and b in either order. A NaN
// endpoint gives the empty interval.
func New(a, b float64) Interval {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Empty()
	}
	if a > b {
		a, b = b, a
	}
	return Interval{a, b}
}

// Point returns [x, x].
func Point(x float64) Interval {
	return New(x, x)
}

// Empty returns the empty interval.
func Empty() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Entire returns [-Inf, +Inf].
func Entire() Interval {
	return Interval{math.Inf(-1), math.Inf(1)}
}

// IsEmpty reports whether iv contains no number.
func (iv Interval) IsEmpty() bool {
	return math.IsNaN(iv.Lo) || math.IsNaN(iv.Hi) || iv.Lo > iv.Hi
}

// Contains reports whether x lies in iv.
func (iv Interval) Contains(x float64) bool {
	return !iv.IsEmpty() && iv.Lo <= x && x <= iv.Hi
}

// ContainsInterval reports whether o is a subset of iv.
func (iv Interval) ContainsInterval(o Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return !iv.IsEmpty() && iv.Lo <= o.Lo && o.Hi <= iv.Hi
}

// Equal reports whether iv and o are the same set.
func (iv Interval) Equal(o Interval) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return iv.IsEmpty() && o.IsEmpty()
	}
	return iv.Lo == o.Lo && iv.Hi == o.Hi
}

// Intersect returns the intersection of iv and o.
func (iv Interval) Intersect(o Interval) Interval {
	if iv.IsEmpty() || o.IsEmpty() {
		return Empty()
	}
	lo, hi := max(iv.Lo, o.Lo), min(iv.Hi, o.Hi)
	if lo > hi {
		return Empty()
	}
	return Interval{lo, hi}
}

// Hull returns the smallest interval containing iv and o.
func (iv Interval) Hull(o Interval) Interval {
	switch {
	case iv.IsEmpty():
		return o
	case o.IsEmpty():
		return iv
	}
	return Interval{min(iv.Lo, o.Lo), max(iv.Hi, o.Hi)}
}

// Width returns Hi - Lo rounded up, or NaN for the empty interval.
func (iv Interval) Width() float64 {
	if iv.IsEmpty() {
		return math.NaN()
	}
	return addRound(iv.Hi, -iv.Lo, up)
}

// Midpoint returns a float64 in iv close to its center, or NaN for the
// empty interval.
func (iv Interval) Midpoint() float64 {
	switch {
	case iv.IsEmpty():
		return math.NaN()
	case math.IsInf(iv.Lo, -1) && math.IsInf(iv.Hi, 1):
		return 0
	case math.IsInf(iv.Lo, -1):
		return -math.MaxFloat64
	case math.IsInf(iv.Hi, 1):
		return math.MaxFloat64
	}
	m := iv.Lo/2 + iv.Hi/2
	return min(max(m, iv.Lo), iv.Hi)
}

// String formats iv as "[lo, hi]", or "[]" when empty.
func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "[]"
	}
	if iv.Lo == iv.Hi {
		return "[" + format(iv.Lo) + "]"
	}
	return "[" + format(iv.Lo) + ", " + format(iv.Hi) + "]"
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
