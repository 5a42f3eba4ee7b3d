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

// Command crgen generates the typed wrappers of the crlibm package, one
// exported function per (function, rounding mode) pair.
//
// Usage:
//
//	crgen -output zz_ops.go
//
// Or via go:generate from the crlibm package:
//
//	//go:generate go run ../cmd/crgen -output zz_ops.go
//
// Each wrapper is named after its function and mode (ExpRN, Log1pRZ,
// CosPiRU, ...) and calls the registry entry bound at that position.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "zz_ops.go", "Output file")
	packageOut = flag.String("pkg", "crlibm", "Output package name")
	dryRun     = flag.Bool("n", false, "Print the generated code instead of writing it")
)

func main() {
	flag.Parse()

	if *outputFile == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		Package:    *packageOut,
	}

	src, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d wrappers in %s\n", len(gen.Wrappers()), *outputFile)
}
