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

// Describe returns the one-line description of fn in mode m, e.g.
// "log(1+x) rounded toward zero.".
func Describe(fn FunctionSpec, m RoundingMode) string {
	return fn.Formula + " " + m.DescriptionSuffix()
}

// ModuleDoc describes the library.
const ModuleDoc = `Efficient and proven correctly-rounded mathematical library.

CRlibm is a free mathematical library (libm) which provides:

  - implementations of the double-precision C99 standard elementary
    functions,

  - correctly rounded in the four IEEE-754 rounding modes,

  - with a comprehensive proof of both the algorithms used and their
    implementation,

  - sufficiently efficient in average performance, worst-case performance,
    and memory consumption to replace existing libms transparently.

CRlibm is distributed under the GNU Lesser General Public License (LGPL).

Site: http://lipforge.ens-lyon.fr/www/crlibm/

Authors of the original library: David Defour, Catherine Daramy, Florent de
Dinechin, Matthieu Gallet, Nicolas Gast, Christoph Lauter, Jean-Michel Muller.

This package evaluates the same 20 functions in pure Go: each of the 80
operations <function>_<rn|ru|rd|rz> returns the correctly rounded result of
its function in its rounding mode.
`
