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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-crlibm/crlibm"
)

// ErrInvalidPlan is returned for plans that cannot be run.
var ErrInvalidPlan = errors.New("verify: invalid plan")

// Range is a closed sampling interval.
type Range struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// Plan configures a verification run.
type Plan struct {
	// Functions to check; empty means all of them.
	Functions []string `yaml:"functions"`

	// Samples is the number of arguments drawn per function.
	Samples int `yaml:"samples"`

	// Seed makes the sample sets reproducible.
	Seed uint64 `yaml:"seed"`

	// Workers sizes the worker pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// BatchSize is the number of samples per pool task.
	BatchSize int `yaml:"batch_size"`

	// Ranges overrides the sampling interval of individual functions.
	Ranges map[string]Range `yaml:"ranges"`

	// Reference enables comparing nearest-mode results with the math
	// package where it has the function. ReferenceULPs is the tolerance.
	Reference     bool   `yaml:"reference"`
	ReferenceULPs uint64 `yaml:"reference_ulps"`
}

// defaultRanges keeps samples inside the interesting part of each domain.
var defaultRanges = map[string]Range{
	"exp":    {-745, 710},
	"log":    {1e-300, 1e300},
	"cos":    {-100, 100},
	"sin":    {-100, 100},
	"tan":    {-100, 100},
	"cospi":  {-10, 10},
	"sinpi":  {-10, 10},
	"tanpi":  {-10, 10},
	"atan":   {-1e6, 1e6},
	"atanpi": {-1e6, 1e6},
	"cosh":   {-710, 710},
	"sinh":   {-710, 710},
	"log2":   {1e-300, 1e300},
	"log10":  {1e-300, 1e300},
	"asin":   {-1, 1},
	"acos":   {-1, 1},
	"asinpi": {-1, 1},
	"acospi": {-1, 1},
	"expm1":  {-40, 710},
	"log1p":  {-1, 1e300},
}

// DefaultPlan checks every function on 256 samples.
func DefaultPlan() Plan {
	ranges := make(map[string]Range, len(defaultRanges))
	for k, v := range defaultRanges {
		ranges[k] = v
	}
	return Plan{
		Samples:       256,
		Seed:          1,
		BatchSize:     32,
		Ranges:        ranges,
		ReferenceULPs: 4,
	}
}

// LoadPlan reads a YAML plan file. Fields absent from the file keep their
// DefaultPlan values.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes a YAML plan over DefaultPlan and validates it.
func ParsePlan(data []byte) (Plan, error) {
	plan := DefaultPlan()
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// Validate reports the first problem that prevents running the plan.
func (p Plan) Validate() error {
	if p.Samples < 0 {
		return fmt.Errorf("samples = %d: %w", p.Samples, ErrInvalidPlan)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers = %d: %w", p.Workers, ErrInvalidPlan)
	}
	for _, name := range p.Functions {
		if _, ok := crlibm.FunctionByName(name); !ok {
			return fmt.Errorf("unknown function %q: %w", name, ErrInvalidPlan)
		}
	}
	for name, r := range p.Ranges {
		if _, ok := crlibm.FunctionByName(name); !ok {
			return fmt.Errorf("range for unknown function %q: %w", name, ErrInvalidPlan)
		}
		if !(r.Lo <= r.Hi) {
			return fmt.Errorf("range for %s is [%v, %v]: %w", name, r.Lo, r.Hi, ErrInvalidPlan)
		}
	}
	return nil
}

// functions resolves the plan's function list.
func (p Plan) functions() []crlibm.FunctionSpec {
	if len(p.Functions) == 0 {
		return crlibm.Functions()
	}
	out := make([]crlibm.FunctionSpec, 0, len(p.Functions))
	for _, name := range p.Functions {
		fn, _ := crlibm.FunctionByName(name)
		out = append(out, fn)
	}
	return out
}

func (p Plan) rangeOf(name string) Range {
	if r, ok := p.Ranges[name]; ok {
		return r
	}
	if r, ok := defaultRanges[name]; ok {
		return r
	}
	return Range{-1, 1}
}
