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
	"fmt"
	"math/big"
	"math/bits"
	"reflect"
)

// maxExactBits is the number of significand bits of a float64.
const maxExactBits = 53

// Eval evaluates the entry at x. The engine result is returned unchanged.
func (e *Entry) Eval(x float64) float64 {
	return e.op(x)
}

// Call validates args and evaluates the entry. It accepts exactly one value
// of a Go numeric kind: signed and unsigned integers, float32, float64,
// json.Number, *big.Int, *big.Float and named types of those kinds. Values
// that cannot be represented as a float64 without loss are rejected.
//
// On failure Call returns an *ArgumentError wrapping ErrInvalidArgument and
// evaluates nothing.
func (e *Entry) Call(args ...any) (float64, error) {
	if len(args) != 1 {
		return 0, &ArgumentError{
			Op:     e.Name,
			Args:   args,
			Reason: fmt.Sprintf("takes exactly one argument (%d given)", len(args)),
		}
	}
	x, reason := toFloat64(args[0])
	if reason != "" {
		return 0, &ArgumentError{Op: e.Name, Args: args, Reason: reason}
	}
	return e.op(x), nil
}

// toFloat64 converts v, or returns the reason it cannot.
func toFloat64(v any) (float64, string) {
	switch x := v.(type) {
	case nil:
		return 0, "argument is nil"
	case float64:
		return x, ""
	case float32:
		return float64(x), ""
	case int:
		return fromInt64(int64(x))
	case int8:
		return float64(x), ""
	case int16:
		return float64(x), ""
	case int32:
		return float64(x), ""
	case int64:
		return fromInt64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return float64(x), ""
	case uint16:
		return float64(x), ""
	case uint32:
		return float64(x), ""
	case uint64:
		return fromUint64(x)
	case uintptr:
		return fromUint64(uint64(x))
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return fromInt64(i)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Sprintf("%q is not a number", string(x))
		}
		return f, ""
	case *big.Int:
		if x == nil {
			return 0, "argument is nil"
		}
		return fromBigFloat(new(big.Float).SetInt(x))
	case *big.Float:
		if x == nil {
			return 0, "argument is nil"
		}
		return fromBigFloat(x)
	case bool, string, []byte:
		return 0, fmt.Sprintf("%T is not a number", v)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float(), ""
	}
	return 0, fmt.Sprintf("%T is not a number", v)
}

func fromInt64(i int64) (float64, string) {
	u := uint64(i)
	if i < 0 {
		u = -u
	}
	if _, reason := fromUint64(u); reason != "" {
		return 0, fmt.Sprintf("integer %d is not exactly representable as a float64", i)
	}
	return float64(i), ""
}

func fromUint64(u uint64) (float64, string) {
	if u != 0 && bits.Len64(u)-bits.TrailingZeros64(u) > maxExactBits {
		return 0, fmt.Sprintf("integer %d is not exactly representable as a float64", u)
	}
	return float64(u), ""
}

func fromBigFloat(f *big.Float) (float64, string) {
	x, acc := f.Float64()
	if acc != big.Exact {
		return 0, fmt.Sprintf("%s is not exactly representable as a float64", f.Text('g', -1))
	}
	return x, ""
}
