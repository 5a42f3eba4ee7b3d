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

package crlibm_test

import (
	"fmt"

	"github.com/ajroetker/go-crlibm/crlibm"
)

func ExampleLookup() {
	e, err := crlibm.Lookup("log1p_rz")
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Description)
	// Output: log(1+x) rounded toward zero.
}

func ExampleCall() {
	for _, name := range []string{"exp_rd", "exp_ru"} {
		y, err := crlibm.Call(name, 1)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s(1) = %.17g\n", name, y)
	}
	// Output:
	// exp_rd(1) = 2.7182818284590451
	// exp_ru(1) = 2.7182818284590455
}
