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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-crlibm/crlibm"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 81)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "exp_rn"))

	out, err = run(t, "list", "--function", "exp,log1p", "--mode", "rd")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "crlibm_exp_rd")
	assert.Contains(t, lines[1], "exp(x) rounded toward -inf.")
	assert.Contains(t, lines[2], "log1p_rd")

	_, err = run(t, "list", "--function", "gamma")
	assert.ErrorIs(t, err, crlibm.ErrUnboundOperation)
	_, err = run(t, "list", "--mode", "sideways")
	assert.ErrorIs(t, err, crlibm.ErrInvalidArgument)
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "exp_rd", "1")
	require.NoError(t, err)
	assert.Equal(t, "exp_rd(1) = 2.718281828459045\n", out)

	out, err = run(t, "eval", "exp", "0x1p0")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"exp_rn(1) = 2.718281828459045",
		"exp_ru(1) = 2.7182818284590455",
		"exp_rd(1) = 2.718281828459045",
		"exp_rz(1) = 2.718281828459045",
	}, "\n")+"\n", out)

	out, err = run(t, "eval", "--bits", "exp_rn", "--", "0", "-inf")
	require.NoError(t, err)
	assert.Equal(t, "exp_rn(0) = 1 (0x3ff0000000000000)\nexp_rn(-Inf) = 0 (0x0000000000000000)\n", out)

	_, err = run(t, "eval", "exp_rn", "one")
	assert.ErrorIs(t, err, crlibm.ErrInvalidArgument)
	_, err = run(t, "eval", "exp_rx", "1")
	assert.ErrorIs(t, err, crlibm.ErrUnboundOperation)
	_, err = run(t, "eval", "exp_rn")
	assert.Error(t, err)
}

func TestInterval(t *testing.T) {
	out, err := run(t, "interval", "atanpi", "1")
	require.NoError(t, err)
	assert.Equal(t, "atanpi([1]) = [0.25]  width 0 ulps\n", out)

	out, err = run(t, "interval", "exp", "0", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "exp([0, 1]) = [1, 2.7182818284590455]"), out)

	_, err = run(t, "interval", "tan", "0", "1")
	assert.ErrorIs(t, err, crlibm.ErrUnboundOperation)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "-f", "exp,atan", "-n", "8", "-j", "2", "--reference")
	require.NoError(t, err)
	assert.Contains(t, out, "FUNCTION")
	assert.Contains(t, out, "atan")

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("functions: [sinpi]\nsamples: 4\n"), 0o644))
	out, err = run(t, "check", "--plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sinpi")
	assert.NotContains(t, out, "cospi")

	_, err = run(t, "check", "--plan", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInfoAndDoc(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "operations: 80")

	out, err = run(t, "doc")
	require.NoError(t, err)
	assert.Equal(t, crlibm.ModuleDoc, out)
	assert.True(t, strings.HasPrefix(out, "Efficient and proven correctly-rounded mathematical library."))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}
