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
	"fmt"
	"strings"
)

// RoundingMode is one of the four IEEE-754 rounding directions. The set is
// fixed.
type RoundingMode int

const (
	// Nearest rounds to the nearest double, ties to even.
	Nearest RoundingMode = iota
	// Up rounds toward +Inf.
	Up
	// Down rounds toward -Inf.
	Down
	// TowardZero rounds toward zero.
	TowardZero
)

// Modes returns the rounding modes in registration order.
func Modes() []RoundingMode {
	return []RoundingMode{Nearest, Up, Down, TowardZero}
}

// String returns the short name of the mode: "rn", "ru", "rd" or "rz".
func (m RoundingMode) String() string {
	switch m {
	case Nearest:
		return "rn"
	case Up:
		return "ru"
	case Down:
		return "rd"
	case TowardZero:
		return "rz"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// Suffix returns the operation name suffix, e.g. "_rn".
func (m RoundingMode) Suffix() string {
	return "_" + m.String()
}

// DescriptionSuffix returns the sentence appended to every description of
// an operation in this mode.
func (m RoundingMode) DescriptionSuffix() string {
	switch m {
	case Nearest:
		return "rounded to nearest."
	case Up:
		return "rounded toward +inf."
	case Down:
		return "rounded toward -inf."
	case TowardZero:
		return "rounded toward zero."
	default:
		return ""
	}
}

// Valid reports whether m is one of the four modes.
func (m RoundingMode) Valid() bool {
	return m >= Nearest && m <= TowardZero
}

// ParseMode accepts a short name ("rn"), a suffix ("_rn") or a long name
// ("nearest", "up", "down", "zero", "toward-zero").
func ParseMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "_")) {
	case "rn", "nearest":
		return Nearest, nil
	case "ru", "up":
		return Up, nil
	case "rd", "down":
		return Down, nil
	case "rz", "zero", "toward-zero", "towardzero":
		return TowardZero, nil
	}
	return 0, fmt.Errorf("unknown rounding mode %q: %w", s, ErrInvalidArgument)
}
