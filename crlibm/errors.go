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
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an operation is called with the
	// wrong number of arguments or with a value that is not a number.
	ErrInvalidArgument = errors.New("crlibm: invalid argument")

	// ErrUnboundOperation is returned when a name is not in the registry.
	ErrUnboundOperation = errors.New("crlibm: unbound operation")

	// ErrEngineLinkage is returned when the engine lacks an expected entry
	// point. Init treats it as fatal.
	ErrEngineLinkage = errors.New("crlibm: engine linkage failure")
)

// ArgumentError describes a rejected call.
type ArgumentError struct {
	Op     string // operation name
	Args   []any  // arguments as given
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, ErrInvalidArgument)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// LookupError reports a name that is not registered.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%q: %v", e.Name, ErrUnboundOperation)
}

func (e *LookupError) Unwrap() error { return ErrUnboundOperation }

// LinkageError reports a missing engine entry point.
type LinkageError struct {
	Symbol string
}

func (e *LinkageError) Error() string {
	return fmt.Sprintf("missing symbol %s: %v", e.Symbol, ErrEngineLinkage)
}

func (e *LinkageError) Unwrap() error { return ErrEngineLinkage }
