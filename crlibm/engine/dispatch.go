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

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the quick-phase kernel selected for this runtime.
type DispatchLevel int

const (
	// DispatchAccurate disables the quick phase: every evaluation goes
	// through the multi-precision path.
	DispatchAccurate DispatchLevel = iota

	// DispatchDekker runs the quick phase with products split by Dekker's
	// algorithm.
	DispatchDekker

	// DispatchFMA runs the quick phase with products computed by a fused
	// multiply-add.
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchAccurate:
		return "accurate"
	case DispatchDekker:
		return "dekker"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentLevel is the kernel selected for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the quick-phase kernel being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current kernel.
func CurrentName() string {
	return currentLevel.String()
}

// NoQuickEnv checks if the CRLIBM_NO_QUICK environment variable is set.
// When set, every evaluation uses the multi-precision path. Results are
// identical either way; this is useful for testing and debugging.
func NoQuickEnv() bool {
	val := os.Getenv("CRLIBM_NO_QUICK")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setLevel selects a kernel. hasFMA is ignored unless the quick phase is
// enabled.
func setLevel(hasFMA bool) {
	switch {
	case NoQuickEnv():
		currentLevel = DispatchAccurate
	case hasFMA:
		currentLevel = DispatchFMA
	default:
		currentLevel = DispatchDekker
	}
}

func quickEnabled() bool {
	return currentLevel != DispatchAccurate
}
