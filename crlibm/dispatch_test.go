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

package crlibm

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingResolver records how many times each operation runs.
type countingResolver struct {
	calls int
}

func (c *countingResolver) Resolve(string) (Op, bool) {
	return func(x float64) float64 {
		c.calls++
		return x
	}, true
}

type celsius float64
type count uint16

func TestCallAcceptsNumbers(t *testing.T) {
	reg, err := NewRegistry(&countingResolver{})
	require.NoError(t, err)
	e, err := reg.Lookup("exp_rn")
	require.NoError(t, err)

	tests := []struct {
		name string
		arg  any
		want float64
	}{
		{"float64", 1.5, 1.5},
		{"float32", float32(0.25), 0.25},
		{"int", 7, 7},
		{"int8", int8(-3), -3},
		{"int64 exact", int64(1) << 60, 0x1p60},
		{"uint32", uint32(12), 12},
		{"uint64 exact", uint64(3) << 62, 0x3p62},
		{"max safe", int64(1<<53 - 1), 1<<53 - 1},
		{"named float", celsius(21.5), 21.5},
		{"named uint", count(4), 4},
		{"json integer", json.Number("42"), 42},
		{"json float", json.Number("0.5"), 0.5},
		{"big.Float", big.NewFloat(-2.75), -2.75},
		{"big.Int", big.NewInt(-9), -9},
		{"negative zero", math.Copysign(0, -1), math.Copysign(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Call(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, math.Float64bits(tt.want), math.Float64bits(got))
		})
	}
}

func TestCallRejects(t *testing.T) {
	c := &countingResolver{}
	reg, err := NewRegistry(c)
	require.NoError(t, err)
	e, err := reg.Lookup("sin_rd")
	require.NoError(t, err)

	precise := new(big.Float).SetPrec(100).SetFloat64(1)
	precise.Add(precise, new(big.Float).SetMantExp(big.NewFloat(1), -80))

	tests := []struct {
		name string
		args []any
	}{
		{"no arguments", nil},
		{"two arguments", []any{1.0, 2.0}},
		{"string", []any{"1.0"}},
		{"bool", []any{true}},
		{"nil", []any{nil}},
		{"slice", []any{[]float64{1}}},
		{"lossy int64", []any{int64(1<<53 + 1)}},
		{"lossy uint64", []any{uint64(math.MaxUint64)}},
		{"bad json", []any{json.Number("abc")}},
		{"lossy big.Float", []any{precise}},
		{"nil big.Int", []any{(*big.Int)(nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Call(tt.args...)
			require.ErrorIs(t, err, ErrInvalidArgument)
			var ae *ArgumentError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, "sin_rd", ae.Op)
		})
	}
	assert.Zero(t, c.calls, "rejected calls must not evaluate")
}

func TestSpecialValuesAreResults(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want func(float64) bool
	}{
		{"log_rn", 0, func(y float64) bool { return math.IsInf(y, -1) }},
		{"log_rz", 0, func(y float64) bool { return math.IsInf(y, -1) }},
		{"acos_rn", 2, math.IsNaN},
		{"acos_ru", 2, math.IsNaN},
		{"acos_rd", 2, math.IsNaN},
		{"acos_rz", 2, math.IsNaN},
		{"asin_rn", 1.0000001, math.IsNaN},
		{"exp_rn", math.Inf(1), func(y float64) bool { return math.IsInf(y, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Call(tt.name, tt.x)
			require.NoError(t, err)
			assert.True(t, tt.want(y), "%s(%v) = %v", tt.name, tt.x, y)
		})
	}
}

func TestScenarios(t *testing.T) {
	negZero := math.Copysign(0, -1)

	y, err := Call("sin_rn", 0.0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), math.Float64bits(y))

	y, err = Call("sin_rn", negZero)
	require.NoError(t, err)
	assert.True(t, math.Signbit(y) && y == 0, "sin_rn(-0) = %v", y)

	for _, m := range Modes() {
		y, err := Call("exp"+m.Suffix(), 0.0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, y, "exp%s(0)", m.Suffix())
	}

	y, err = Call("expm1_rn", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, y)

	// pi/2 rounds down to math.Pi/2.
	assert.Equal(t, math.Pi/2, AsinRN(1))
	assert.Equal(t, math.Pi/2, AsinRD(1))
	assert.Equal(t, math.Nextafter(math.Pi/2, 2), AsinRU(1))
}

func TestPurity(t *testing.T) {
	xs := []float64{0.1, -3.5, 42, 1e-10, 700}
	for _, e := range Entries() {
		for _, x := range xs {
			a := e.Eval(x)
			b := e.Eval(x)
			if math.Float64bits(a) != math.Float64bits(b) && !(math.IsNaN(a) && math.IsNaN(b)) {
				t.Errorf("%s(%v) not repeatable: %v then %v", e.Name, x, a, b)
			}
		}
	}
}

func TestTypedWrappers(t *testing.T) {
	pairs := []struct {
		name string
		fn   func(float64) float64
	}{
		{"exp_rn", ExpRN},
		{"log1p_rz", Log1pRZ},
		{"cospi_ru", CosPiRU},
		{"atanpi_rd", AtanPiRD},
		{"log10_rn", Log10RN},
		{"sinh_rz", SinhRZ},
	}
	for _, p := range pairs {
		e, err := Lookup(p.name)
		require.NoError(t, err)
		for _, x := range []float64{0.3, -0.7, 2.5} {
			want := e.Eval(x)
			got := p.fn(x)
			if math.Float64bits(got) != math.Float64bits(want) && !(math.IsNaN(got) && math.IsNaN(want)) {
				t.Errorf("%s(%v) = %v, registry %v", p.name, x, got, want)
			}
		}
	}
}

func BenchmarkCall(b *testing.B) {
	e, err := Lookup("exp_rn")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.Call(1.25)
	}
}
