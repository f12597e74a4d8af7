// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fault holds the error building blocks shared by the core packages:
// constant error kinds and collectors for multi-failure validation.
package fault

import "fmt"

// Const is the type for constant error values.
//
// Packages declare their error kinds as Consts and wrap them with call site
// detail using github.com/pkg/errors. The kind can then be recovered with
// errors.Cause or tested with errors.Is.
type Const string

// Error implements error for Const returning the string value of the const.
func (e Const) Error() string { return string(e) }

// InvalidErrorType is the error returned by From when the type is not an error.
const InvalidErrorType = Const("Invalid type for error")

// From converts from any value to an error safely.
// If the value is a nil, an untyped nil is returned.
// If the value is not nil, but does not implement error, an error wrapping
// InvalidErrorType and describing the value is returned.
// It is intended for converting the result of recover().
func From(value interface{}) error {
	switch err := value.(type) {
	case nil:
		return nil
	case error:
		return err
	default:
		return invalid{value}
	}
}

type invalid struct{ value interface{} }

func (e invalid) Error() string { return fmt.Sprintf("%v: %v", InvalidErrorType, e.value) }
func (e invalid) Cause() error  { return InvalidErrorType }
func (e invalid) Unwrap() error { return InvalidErrorType }
