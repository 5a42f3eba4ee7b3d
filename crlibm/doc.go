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

// Package crlibm exposes 20 elementary functions, each correctly rounded in
// the four IEEE-754 rounding modes, as 80 named operations.
//
// An operation is named <function>_<mode>, where mode is rn (to nearest),
// ru (toward +inf), rd (toward -inf) or rz (toward zero):
//
//	e, err := crlibm.Lookup("log1p_rz")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(e.Description) // log(1+x) rounded toward zero.
//	y, err := e.Call(1e-3)
//
// Every operation is also available as a typed function (ExpRN, Log1pRZ,
// CosPiRU, ...) that skips argument validation.
//
// # Registry
//
// The registry is built once per process by Init, which binds every
// (function, mode) pair to the engine entry point crlibm_<function>_<mode>.
// A missing entry point is fatal. After Init the registry is read-only and
// safe for concurrent use without locking. Lookup, Entries and Call
// initialize the registry on first use.
//
// # Results
//
// Call accepts exactly one numeric argument and returns the engine result
// unchanged. NaN, infinities and signed zeros are ordinary results: log_rn(0)
// is -Inf and acos_rn(2) is NaN, neither is an error. Errors are reserved for
// calls that cannot be evaluated:
//
//   - ErrInvalidArgument: wrong number of arguments or a non-numeric value.
//   - ErrUnboundOperation: the name is not registered.
//   - ErrEngineLinkage: an engine entry point is missing (startup only).
package crlibm
