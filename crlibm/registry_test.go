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
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-crlibm/crlibm/engine"
)

// mapResolver resolves from a map; used to simulate an incomplete engine.
type mapResolver map[string]Op

func (r mapResolver) Resolve(symbol string) (Op, bool) {
	op, ok := r[symbol]
	return op, ok
}

func fullResolver() mapResolver {
	r := make(mapResolver)
	for _, fn := range Functions() {
		for _, m := range Modes() {
			r[EngineSymbol(fn, m)] = func(x float64) float64 { return x }
		}
	}
	return r
}

func TestRegistryNames(t *testing.T) {
	reg := Default()
	require.Equal(t, 80, reg.Len())

	seen := make(map[string]bool)
	for _, e := range reg.Entries() {
		assert.False(t, seen[e.Name], "duplicate name %s", e.Name)
		seen[e.Name] = true
		assert.Equal(t, e.Function.Name+e.Mode.Suffix(), e.Name)
		assert.Equal(t, "crlibm_"+e.Name, e.Symbol)
	}

	names := reg.Names()
	require.Len(t, names, 80)
	assert.IsIncreasing(t, names)
}

func TestRegistryOrder(t *testing.T) {
	entries := Entries()
	var got []string
	for _, e := range entries[:8] {
		got = append(got, e.Name)
	}
	want := []string{"exp_rn", "exp_ru", "exp_rd", "exp_rz", "log_rn", "log_ru", "log_rd", "log_rz"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries() order mismatch (-want +got):\n%s", diff)
	}
}

func TestEveryFunctionHasFourModes(t *testing.T) {
	reg := Default()
	for _, fn := range Functions() {
		entries := reg.Function(fn.Name)
		require.Len(t, entries, 4, fn.Name)
		for i, m := range Modes() {
			assert.Equal(t, m, entries[i].Mode)
			assert.Equal(t, fn, entries[i].Function)
		}
	}
	assert.Nil(t, reg.Function("sqrt"))
}

func TestLookup(t *testing.T) {
	e, err := Lookup("log1p_rz")
	require.NoError(t, err)
	assert.Equal(t, "log(1+x) rounded toward zero.", e.Description)
	assert.Equal(t, TowardZero, e.Mode)

	_, err = Lookup("log1p_rx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnboundOperation)
	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "log1p_rx", le.Name)
}

func TestNewRegistryLinkageFailure(t *testing.T) {
	r := fullResolver()
	delete(r, "crlibm_tanpi_rd")

	reg, err := NewRegistry(r)
	assert.Nil(t, reg)
	require.ErrorIs(t, err, ErrEngineLinkage)
	var le *LinkageError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "crlibm_tanpi_rd", le.Symbol)
}

func TestNewRegistryCustomResolver(t *testing.T) {
	reg, err := NewRegistry(fullResolver())
	require.NoError(t, err)
	e, err := reg.Lookup("sin_ru")
	require.NoError(t, err)
	assert.Equal(t, 0.25, e.Eval(0.25))
}

func TestEngineTableIsResolver(t *testing.T) {
	var _ Resolver = engine.Symbols
	reg, err := NewRegistry(engine.Symbols)
	require.NoError(t, err)
	assert.Equal(t, 80, reg.Len())
}

func TestInitIdempotent(t *testing.T) {
	var wg sync.WaitGroup
	regs := make([]*Registry, 8)
	for i := range regs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Init()
			regs[i] = Default()
		}()
	}
	wg.Wait()
	for _, r := range regs {
		assert.Same(t, regs[0], r)
	}
}

func TestCallByName(t *testing.T) {
	y, err := Call("exp_rn", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, y)

	_, err = Call("nope_rn", 1.0)
	assert.True(t, errors.Is(err, ErrUnboundOperation))

	y, err = Call("log_rn", 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(y, -1))
}

func TestEntriesAreCopies(t *testing.T) {
	reg, err := NewRegistry(engine.Symbols)
	require.NoError(t, err)

	e, err := reg.Lookup("exp_rn")
	require.NoError(t, err)
	e.Name = "changed"
	e.Description = "changed"
	reg.Entries()[0].Name = "changed"
	reg.Function("exp")[0].Description = "changed"

	again, err := reg.Lookup("exp_rn")
	require.NoError(t, err)
	assert.Equal(t, "exp_rn", again.Name)
	assert.Equal(t, "exp(x) rounded to nearest.", again.Description)
	assert.Equal(t, "exp_rn", reg.Entries()[0].Name)
	assert.Equal(t, "exp(x) rounded to nearest.", reg.Function("exp")[0].Description)
	assert.Contains(t, reg.Names(), "exp_rn")
	assert.NotContains(t, reg.Names(), "changed")
}

func TestInitPanicsOnMissingSymbol(t *testing.T) {
	r := fullResolver()
	delete(r, "crlibm_tanpi_rz")
	assert.PanicsWithError(t, (&LinkageError{Symbol: "crlibm_tanpi_rz"}).Error(), func() {
		initWith(r)
	})
	assert.NotPanics(t, func() {
		assert.Equal(t, 80, initWith(fullResolver()).Len())
	})
}
