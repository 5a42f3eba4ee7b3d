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
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-crlibm/crlibm"
	"github.com/ajroetker/go-crlibm/crlibm/contrib/interval"
	"github.com/ajroetker/go-crlibm/crlibm/contrib/verify"
	"github.com/ajroetker/go-crlibm/crlibm/engine"
)

// parseFloat accepts decimal and hexadecimal floats, inf and nan.
func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", s, crlibm.ErrInvalidArgument)
	}
	return x, nil
}

func formatFloat(x float64, bits bool) string {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if bits {
		s += fmt.Sprintf(" (0x%016x)", math.Float64bits(x))
	}
	return s
}

func newListCmd() *cobra.Command {
	var (
		fns  []string
		mode string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := crlibm.Entries()
			if len(fns) > 0 {
				for _, name := range fns {
					if _, ok := crlibm.FunctionByName(name); !ok {
						return &crlibm.LookupError{Name: name}
					}
				}
				entries = lo.Filter(entries, func(e *crlibm.Entry, _ int) bool {
					return lo.Contains(fns, e.Function.Name)
				})
			}
			if mode != "" {
				m, err := crlibm.ParseMode(mode)
				if err != nil {
					return err
				}
				entries = lo.Filter(entries, func(e *crlibm.Entry, _ int) bool {
					return e.Mode == m
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSYMBOL\tDESCRIPTION")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Symbol, e.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVarP(&fns, "function", "f", nil, "Only list these functions")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Only list this rounding mode (rn, ru, rd, rz)")
	return cmd
}

func newEvalCmd() *cobra.Command {
	var bits bool
	cmd := &cobra.Command{
		Use:   "eval NAME X...",
		Short: "Evaluate an operation, or all four modes of a function",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := resolve(args[0])
			if err != nil {
				return err
			}
			xs := make([]float64, 0, len(args)-1)
			for _, s := range args[1:] {
				x, err := parseFloat(s)
				if err != nil {
					return err
				}
				xs = append(xs, x)
			}
			out := cmd.OutOrStdout()
			for _, x := range xs {
				for _, e := range entries {
					y, err := e.Call(x)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s(%s) = %s\n", e.Name, formatFloat(x, false), formatFloat(y, bits))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bits, "bits", false, "Also print the IEEE-754 bit pattern of each result")
	return cmd
}

// resolve accepts an operation name such as "exp_rd" or a bare function name
// standing for its four modes.
func resolve(name string) ([]*crlibm.Entry, error) {
	reg := crlibm.Default()
	if e, err := reg.Lookup(name); err == nil {
		return []*crlibm.Entry{e}, nil
	}
	if entries := reg.Function(name); len(entries) > 0 {
		return entries, nil
	}
	return nil, &crlibm.LookupError{Name: name}
}

var intervalFuncs = map[string]func(interval.Interval) interval.Interval{
	"exp":    interval.Exp,
	"expm1":  interval.Expm1,
	"log":    interval.Log,
	"log2":   interval.Log2,
	"log10":  interval.Log10,
	"log1p":  interval.Log1p,
	"atan":   interval.Atan,
	"atanpi": interval.Atanpi,
	"sinh":   interval.Sinh,
	"cosh":   interval.Cosh,
}

func intervalNames() []string {
	names := lo.Keys(intervalFuncs)
	slices.Sort(names)
	return names
}

func newIntervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interval FUNCTION LO [HI]",
		Short: "Evaluate a function over an interval with outward rounding",
		Long: "Evaluate a function over an interval with outward rounding.\n\nFunctions: " +
			strings.Join(intervalNames(), ", "),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := intervalFuncs[args[0]]
			if !ok {
				return &crlibm.LookupError{Name: args[0]}
			}
			a, err := parseFloat(args[1])
			if err != nil {
				return err
			}
			b := a
			if len(args) == 3 {
				if b, err = parseFloat(args[2]); err != nil {
					return err
				}
			}
			x := interval.New(a, b)
			y := fn(x)
			fmt.Fprintf(cmd.OutOrStdout(), "%s(%s) = %s  width %g ulps\n", args[0], x, y, interval.ULPWidth(y))
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var (
		planPath  string
		fns       []string
		samples   int
		seed      uint64
		workers   int
		reference bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the rounding contract on random arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := verify.DefaultPlan()
			if planPath != "" {
				var err error
				if plan, err = verify.LoadPlan(planPath); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("function") {
				plan.Functions = fns
			}
			if flags.Changed("samples") {
				plan.Samples = samples
			}
			if flags.Changed("seed") {
				plan.Seed = seed
			}
			if flags.Changed("workers") {
				plan.Workers = workers
			}
			if flags.Changed("reference") {
				plan.Reference = reference
			}
			slog.Debug("running checks", "functions", len(plan.Functions), "samples", plan.Samples,
				"seed", plan.Seed, "workers", plan.Workers, "dispatch", engine.CurrentName())

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			report, err := verify.Run(ctx, crlibm.Default(), plan)
			if err != nil {
				return err
			}
			if _, err := report.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			slog.Debug("checks finished", "samples", report.Samples(), "elapsed", report.Duration)
			if !report.OK() {
				return fmt.Errorf("%d checks failed", len(report.Failed()))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&planPath, "plan", "", "YAML plan file")
	f.StringSliceVarP(&fns, "function", "f", nil, "Functions to check (default all)")
	f.IntVarP(&samples, "samples", "n", 256, "Arguments per function")
	f.Uint64Var(&seed, "seed", 1, "Random seed")
	f.IntVarP(&workers, "workers", "j", 0, "Worker goroutines (default GOMAXPROCS)")
	f.BoolVar(&reference, "reference", false, "Compare nearest results with the math package")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the engine configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch:   %s\n", engine.CurrentName())
			fmt.Fprintf(out, "quick path: %t\n", engine.CurrentLevel() != engine.DispatchAccurate)
			fmt.Fprintf(out, "functions:  %d\n", len(crlibm.Functions()))
			fmt.Fprintf(out, "operations: %d\n", crlibm.Default().Len())
		},
	}
}

func newDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc",
		Short: "Print the module documentation",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), crlibm.ModuleDoc)
		},
	}
}
