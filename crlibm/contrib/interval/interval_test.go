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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

func TestConstruction(t *testing.T) {
	assert.Equal(t, Interval{1, 2}, New(2, 1))
	assert.True(t, New(math.NaN(), 1).IsEmpty())
	assert.True(t, Empty().IsEmpty())
	assert.False(t, Entire().IsEmpty())
	assert.Equal(t, "[1, 2]", New(1, 2).String())
	assert.Equal(t, "[0.5]", Point(0.5).String())
	assert.Equal(t, "[]", Empty().String())
	assert.Equal(t, "[-Inf, +Inf]", Entire().String())
}

func TestSetOperations(t *testing.T) {
	a, b := New(0, 2), New(1, 3)
	assert.Equal(t, New(1, 2), a.Intersect(b))
	assert.Equal(t, New(0, 3), a.Hull(b))
	assert.True(t, New(0, 1).Intersect(New(2, 3)).IsEmpty())
	assert.Equal(t, a, Empty().Hull(a))
	assert.True(t, a.Contains(2))
	assert.False(t, a.Contains(2.5))
	assert.True(t, Entire().ContainsInterval(a))
	assert.True(t, a.ContainsInterval(Empty()))
	assert.True(t, Empty().Equal(New(3, 2).Intersect(Point(7))))
	assert.Equal(t, 2.0, a.Width())
	assert.True(t, math.IsNaN(Empty().Width()))
	assert.True(t, a.Contains(a.Midpoint()))
	assert.Equal(t, 0.0, Entire().Midpoint())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Interval
		want Interval
	}{
		{"add", Add(New(1, 2), New(3, 4)), New(4, 6)},
		{"sub", Sub(New(1, 2), New(3, 4)), New(-3, -1)},
		{"neg", Neg(New(1, 2)), New(-2, -1)},
		{"mul signs", Mul(New(-1, 2), New(3, 4)), New(-4, 8)},
		{"mul zero inf", Mul(Point(0), Entire()), Point(0)},
		{"div", Div(Point(1), New(2, 4)), New(0.25, 0.5)},
		{"div by zero", Div(Point(1), New(-1, 1)), Entire()},
		{"add unbounded", Add(New(1, inf), Point(1)), New(2, inf)},
		{"empty", Add(Empty(), Point(1)), Empty()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.got), "got %s, want %s", tt.got, tt.want)
		})
	}
}

func TestOutwardRounding(t *testing.T) {
	// 0.1 + 0.2 is not representable.
	s := Add(Point(0.1), Point(0.2))
	assert.Equal(t, New(0.3, 0.30000000000000004), s)
	assert.True(t, IsSharp(s))
	assert.False(t, IsExact(s))

	third := Div(Point(1), Point(3))
	assert.Equal(t, 1.0/3, third.Lo)
	assert.Equal(t, Nudge(1.0/3, 1), third.Hi)
	assert.Equal(t, 1.0, ULPWidth(third))

	// 1/23 rounds to nearest upward, so the lower bound is one below.
	q := Div(Point(1), Point(23))
	assert.True(t, IsSharp(q))
	assert.True(t, q.Contains(1.0/23))

	p := Mul(Point(1+0x1p-52), Point(1+0x1p-52))
	assert.Equal(t, New(1+0x1p-51, 1+0x1p-51+0x1p-52), p)
}

func TestFunctions(t *testing.T) {
	pi2 := Nudge(math.Pi/2, 1)
	tests := []struct {
		name string
		got  Interval
		want Interval
	}{
		{"exp 0", Exp(Point(0)), Point(1)},
		{"exp 1", Exp(Point(1)), New(math.E, Nudge(math.E, 1))},
		{"exp entire", Exp(Entire()), New(0, inf)},
		{"expm1 0", Expm1(Point(0)), Point(0)},
		{"log 1", Log(Point(1)), Point(0)},
		{"log 0", Log(Point(0)), Point(math.Inf(-1))},
		{"log e", Log(Exp(Point(1))), New(Nudge(1, -1), Nudge(1, 1))},
		{"log [0,1]", Log(New(0, 1)), New(math.Inf(-1), 0)},
		{"log [-1,1]", Log(New(-1, 1)), New(math.Inf(-1), 0)},
		{"log [-2,-1]", Log(New(-2, -1)), Empty()},
		{"log2 2", Log2(Point(2)), Point(1)},
		{"log2 [-3,2]", Log2(New(-3, 2)), New(math.Inf(-1), 1)},
		{"log10 [-5,10]", Log10(New(-5, 10)), New(math.Inf(-1), 1)},
		{"log10 10", Log10(Point(10)), Point(1)},
		{"log1p 0", Log1p(Point(0)), Point(0)},
		{"log1p -1", Log1p(Point(-1)), Point(math.Inf(-1))},
		{"log1p [-2,0]", Log1p(New(-2, 0)), New(math.Inf(-1), 0)},
		{"log1p 1", Log1p(Point(1)), Log(Point(2))},
		{"atan entire", Atan(Entire()), New(-pi2, pi2)},
		{"atan 1", Atan(Point(1)), New(math.Pi/4, Nudge(math.Pi/4, 1))},
		{"atanpi entire", Atanpi(Entire()), New(-0.5, 0.5)},
		{"atanpi 1", Atanpi(Point(1)), Point(0.25)},
		{"sinh 0", Sinh(Point(0)), Point(0)},
		{"cosh 0", Cosh(Point(0)), Point(1)},
		{"cosh [-1,2]", Cosh(New(-1, 2)), New(1, Cosh(Point(2)).Hi)},
		{"cosh negative", Cosh(New(-2, -1)), Cosh(New(1, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.got), "got %s, want %s", tt.got, tt.want)
		})
	}
}

func TestFunctionEnclosures(t *testing.T) {
	assert.True(t, Sub(Exp(Point(1)), Point(1)).ContainsInterval(Expm1(Point(1))))

	twoSinh := Sub(Exp(Point(1)), Exp(Point(-1)))
	assert.True(t, Div(twoSinh, Point(2)).ContainsInterval(Sinh(Point(1))))
}

func TestConstants(t *testing.T) {
	pi := Pi()
	require.False(t, pi.IsEmpty())
	assert.Equal(t, math.Pi, pi.Lo)
	assert.Equal(t, Nudge(math.Pi, 1), pi.Hi)
	assert.True(t, IsSharp(pi))

	e := E()
	assert.True(t, e.Contains(math.E))
	assert.True(t, IsSharp(e))
}
