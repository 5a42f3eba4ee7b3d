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

// Package verify checks the rounding contract of a crlibm registry on
// random arguments and on a fixed list of special-value scenarios.
//
// For every sample x of a function f it checks that
//
//   - f_rd(x) <= f_rn(x) <= f_ru(x), with f_rn one of the other two,
//   - f_rd(x) and f_ru(x) are equal or adjacent doubles,
//   - f_rz(x) is f_rd(x) for positive results and f_ru(x) for negative ones,
//   - NaN results agree across the four modes,
//   - a second evaluation returns the same bits.
//
// Functions run concurrently; the samples of each function are split into
// batches on a shared worker pool.
package verify

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-crlibm/crlibm"
	"github.com/ajroetker/go-crlibm/crlibm/contrib/workerpool"
)

// references maps functions to their math package counterparts. asin and
// acos are absent: the math package loses accuracy near |x| = 1. So are
// log2 and log10, which scale math.Log and drift several ulps near 1.
var references = map[string]func(float64) float64{
	"exp":   math.Exp,
	"log":   math.Log,
	"cos":   math.Cos,
	"sin":   math.Sin,
	"tan":   math.Tan,
	"atan":  math.Atan,
	"cosh":  math.Cosh,
	"sinh":  math.Sinh,
	"expm1": math.Expm1,
	"log1p": math.Log1p,
}

// Run checks plan.Functions of reg. It returns an error only if the plan is
// invalid or ctx is done; contract violations are reported in the Report.
func Run(ctx context.Context, reg *crlibm.Registry, plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	pool := workerpool.New(plan.Workers)
	defer pool.Close()

	fns := plan.functions()
	report := &Report{Functions: make([]FunctionReport, len(fns))}

	g, ctx := errgroup.WithContext(ctx)
	for i, fn := range fns {
		g.Go(func() error {
			fr, err := checkFunction(ctx, pool, reg, fn, uint64(i), plan)
			report.Functions[i] = fr
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Scenarios = CheckScenarios(reg)
	report.Duration = time.Since(start)
	return report, nil
}

func checkFunction(ctx context.Context, pool *workerpool.Pool, reg *crlibm.Registry,
	fn crlibm.FunctionSpec, stream uint64, plan Plan) (FunctionReport, error) {
	start := time.Now()
	fr := FunctionReport{Function: fn.Name}

	entries := reg.Function(fn.Name)
	if len(entries) != len(crlibm.Modes()) {
		return fr, fmt.Errorf("function %s has %d entries: %w", fn.Name, len(entries), crlibm.ErrUnboundOperation)
	}
	var quad [4]*crlibm.Entry
	copy(quad[:], entries)

	var ref func(float64) float64
	if plan.Reference {
		ref = references[fn.Name]
	}

	xs := Samples(plan.rangeOf(fn.Name), plan.Samples, plan.Seed, stream)
	var mu sync.Mutex
	err := pool.Batches(ctx, len(xs), plan.BatchSize, func(lo, hi int) error {
		var local []Failure
		for _, x := range xs[lo:hi] {
			local = append(local, CheckSample(quad, x, ref, plan.ReferenceULPs)...)
		}
		if len(local) > 0 {
			mu.Lock()
			fr.Failures = append(fr.Failures, local...)
			mu.Unlock()
		}
		return nil
	})
	fr.Samples = len(xs)
	fr.Duration = time.Since(start)
	return fr, err
}

// Samples draws n arguments from r. The first two are the endpoints.
// Positive ranges spanning more than three decades are sampled uniformly in
// the exponent; others uniformly.
func Samples(r Range, n int, seed, stream uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, stream))
	logScale := r.Lo > 0 && r.Hi/r.Lo > 1e3
	xs := make([]float64, n)
	for i := range xs {
		switch {
		case i == 0:
			xs[i] = r.Lo
		case i == 1:
			xs[i] = r.Hi
		case logScale:
			lo, hi := math.Log(r.Lo), math.Log(r.Hi)
			xs[i] = math.Exp(lo + rng.Float64()*(hi-lo))
		default:
			xs[i] = r.Lo + rng.Float64()*(r.Hi-r.Lo)
		}
		xs[i] = min(max(xs[i], r.Lo), r.Hi)
	}
	return xs
}

// CheckSample evaluates the four entries of one function (rn, ru, rd, rz)
// at x and returns the violated properties. ref, if not nil, is compared
// with the nearest result within tol ulps.
func CheckSample(quad [4]*crlibm.Entry, x float64, ref func(float64) float64, tol uint64) []Failure {
	var v [4]float64
	for i, e := range quad {
		v[i] = e.Eval(x)
	}
	rn, ru, rd, rz := v[0], v[1], v[2], v[3]
	fail := func(check, format string, args ...any) Failure {
		return Failure{
			Function: quad[0].Function.Name,
			Check:    check,
			X:        x,
			Values:   v,
			Detail:   fmt.Sprintf(format, args...),
		}
	}

	var out []Failure
	for i, e := range quad {
		if again := e.Eval(x); !sameBits(again, v[i]) {
			out = append(out, fail("purity", "%s returned %v then %v", e.Name, v[i], again))
		}
	}

	nans := 0
	for _, y := range v {
		if math.IsNaN(y) {
			nans++
		}
	}
	switch nans {
	case 4:
		return out
	case 0:
	default:
		return append(out, fail("nan", "NaN in %d of 4 modes", nans))
	}

	if !(rd <= rn && rn <= ru) {
		out = append(out, fail("ordering", "want rd <= rn <= ru"))
	}
	if rd != ru && math.Nextafter(rd, math.Inf(1)) != ru {
		out = append(out, fail("gap", "rd and ru are %d ulps apart", ulpDistance(rd, ru)))
	}
	if rn != rd && rn != ru {
		out = append(out, fail("nearest", "rn is neither rd nor ru"))
	}
	wantZ := rd
	if rd < 0 {
		wantZ = ru
	}
	if rz != wantZ {
		out = append(out, fail("toward-zero", "rz = %v, want %v", rz, wantZ))
	}
	if ref != nil {
		// Overflow thresholds differ; only finite references are compared.
		if want := ref(x); !math.IsNaN(want) && !math.IsInf(want, 0) {
			if d := ulpDistance(rn, want); d > tol {
				out = append(out, fail("reference", "math package gives %v, %d ulps away", want, d))
			}
		}
	}
	return out
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b) || (math.IsNaN(a) && math.IsNaN(b))
}

// ulpDistance counts the doubles between a and b.
func ulpDistance(a, b float64) uint64 {
	ordered := func(x float64) int64 {
		i := int64(math.Float64bits(x))
		if i < 0 {
			i = math.MinInt64 - i
		}
		return i
	}
	d := ordered(a) - ordered(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}
