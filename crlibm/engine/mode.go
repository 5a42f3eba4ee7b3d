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

package engine

import "math/big"

// Mode is an IEEE-754 rounding direction.
type Mode int

const (
	// RN rounds to nearest, ties to even.
	RN Mode = iota

	// RU rounds toward +Inf.
	RU

	// RD rounds toward -Inf.
	RD

	// RZ rounds toward zero.
	RZ
)

// Modes returns the four rounding modes in canonical order.
func Modes() []Mode {
	return []Mode{RN, RU, RD, RZ}
}

// String returns the two-letter mode name used in symbol suffixes.
func (m Mode) String() string {
	switch m {
	case RN:
		return "rn"
	case RU:
		return "ru"
	case RD:
		return "rd"
	case RZ:
		return "rz"
	default:
		return "unknown"
	}
}

func (m Mode) bigMode() big.RoundingMode {
	switch m {
	case RU:
		return big.ToPositiveInf
	case RD:
		return big.ToNegativeInf
	case RZ:
		return big.ToZero
	default:
		return big.ToNearestEven
	}
}
