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

// Package engine evaluates elementary functions of a float64 argument and
// returns the correctly rounded float64 result in any of the four IEEE-754
// rounding directions.
//
// # Entry points
//
// Every function family has a typed entry point taking the rounding mode:
//
//   - Exp, Expm1, Log, Log1p, Log2, Log10
//   - Sin, Cos, Tan, SinPi, CosPi, TanPi
//   - Atan, AtanPi, Asin, Acos, AsinPi, AcosPi
//   - Sinh, Cosh
//
// The same 80 (function, mode) pairs are also published by name through
// Symbols, e.g. "crlibm_exp_rn" or "crlibm_log1p_rz". The crlibm package
// binds its registry against that table.
//
// # Algorithm
//
// Evaluation follows Ziv's strategy. A quick phase computes exp and log in
// double-double arithmetic with an a priori error bound. If the enclosure
// [y-err, y+err] does not round to a single float64 in the requested mode,
// the accurate phase recomputes the function with math/big at increasing
// precision until it does. Arguments whose result is exact (exp(0),
// log2(2^k), sinpi(n), tanpi(1/4), ...) and arguments whose result is within
// half an ulp of a representable value (sin(x) for tiny x, exp(x) for huge
// negative x, ...) are settled before any approximation is attempted, since
// Ziv's loop cannot terminate on them.
//
// The constants pi, ln(2) and ln(10) are computed once by binary splitting
// and cached read-only.
//
// # Special values
//
// Special values follow C99 Annex F. The pi-scaled functions follow
// IEEE 754-2019 section 9.2: sinpi(+n) = +0 and sinpi(-n) = -0 for integers
// n, cospi(n+1/2) = +0, tanpi(n+1/2) is +Inf for even n and -Inf for odd n.
// NaN is returned for arguments outside a function's domain; it is a result,
// not an error.
//
// # Dispatch
//
// The quick phase needs an exact product. At init the package selects a
// kernel using golang.org/x/sys/cpu: hardware FMA when present, Dekker's
// splitting otherwise. Setting CRLIBM_NO_QUICK=1 disables the quick phase.
package engine
