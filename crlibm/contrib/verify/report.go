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
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Failure is one violated property.
type Failure struct {
	Function string
	Check    string
	X        float64
	Values   [4]float64 // rn, ru, rd, rz
	Detail   string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s(%v): %s: %s [rn=%v ru=%v rd=%v rz=%v]",
		f.Function, f.X, f.Check, f.Detail, f.Values[0], f.Values[1], f.Values[2], f.Values[3])
}

// FunctionReport is the outcome for one function.
type FunctionReport struct {
	Function string
	Samples  int
	Failures []Failure
	Duration time.Duration
}

// Report is the outcome of a run.
type Report struct {
	Functions []FunctionReport
	Scenarios []Failure
	Duration  time.Duration
}

// OK reports whether nothing failed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns every failure: sample failures by function, then scenario
// failures.
func (r *Report) Failed() []Failure {
	var out []Failure
	for _, fr := range r.Functions {
		out = append(out, fr.Failures...)
	}
	return append(out, r.Scenarios...)
}

// Samples returns the total number of arguments checked.
func (r *Report) Samples() int {
	n := 0
	for _, fr := range r.Functions {
		n += fr.Samples
	}
	return n
}

// WriteTo prints a per-function summary followed by the failures.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tSAMPLES\tFAILURES\tTIME")
	for _, fr := range r.Functions {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", fr.Function, fr.Samples, len(fr.Failures), fr.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(tw, "scenarios\t-\t%d\t-\n", len(r.Scenarios))
	if err := tw.Flush(); err != nil {
		return cw.n, err
	}
	for _, f := range r.Failed() {
		fmt.Fprintln(cw, f)
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
