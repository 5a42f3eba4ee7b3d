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

package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()
	require.NoError(t, plan.Validate())
	assert.Len(t, plan.functions(), 20)
	assert.Equal(t, Range{-1, 1}, plan.rangeOf("asin"))

	// Ranges are copied, not shared with the defaults.
	plan.Ranges["asin"] = Range{0, 0.5}
	assert.Equal(t, Range{-1, 1}, DefaultPlan().rangeOf("asin"))
}

func TestParsePlan(t *testing.T) {
	plan, err := ParsePlan([]byte(`
functions: [exp, log1p]
samples: 10
seed: 7
batch_size: 4
reference: true
ranges:
  exp: {lo: -1, hi: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, 10, plan.Samples)
	assert.Equal(t, uint64(7), plan.Seed)
	assert.Equal(t, 4, plan.BatchSize)
	assert.True(t, plan.Reference)
	assert.Equal(t, uint64(4), plan.ReferenceULPs, "unset fields keep their defaults")
	assert.Equal(t, Range{-1, 1}, plan.rangeOf("exp"))
	assert.Equal(t, defaultRanges["log1p"], plan.rangeOf("log1p"))

	fns := plan.functions()
	require.Len(t, fns, 2)
	assert.Equal(t, "exp", fns[0].Name)
	assert.Equal(t, "log1p", fns[1].Name)
}

func TestParsePlanErrors(t *testing.T) {
	for name, src := range map[string]string{
		"unknown function": "functions: [exp, gamma]",
		"negative samples": "samples: -1",
		"negative workers": "workers: -2",
		"reversed range":   "ranges: {exp: {lo: 2, hi: 1}}",
		"range of unknown": "ranges: {erf: {lo: 0, hi: 1}}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePlan([]byte(src))
			assert.ErrorIs(t, err, ErrInvalidPlan)
		})
	}

	_, err := ParsePlan([]byte("samples: [1, 2]"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPlan)
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 3\n"), 0o644))
	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, 3, plan.Samples)

	_, err = LoadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
