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

package bitstring

import "github.com/wjmboss/erjang/core/fault"

// Error kinds returned, wrapped with call site detail, by the bitstring
// operations. Use errors.Cause or errors.Is to test for them.
const (
	// ErrInvalidBitString is returned when a constructor is given a buffer,
	// offset, size and extra bit count that do not describe a valid value.
	ErrInvalidBitString = fault.Const("invalid bitstring")
	// ErrOutOfRange is returned for a bit position or length that lies
	// outside the value, including negative offsets.
	ErrOutOfRange = fault.Const("bit range out of range")
	// ErrInvalidArgument is returned when a field width exceeds what the
	// accessor can return.
	ErrInvalidArgument = fault.Const("invalid argument")
	// ErrBadArgument is returned when a binary is required but the value has
	// extra bits.
	ErrBadArgument = fault.Const("badarg")
	// ErrFrozen is returned by a Builder written to after Build was
	// called.
	ErrFrozen = fault.Const("builder is frozen")
)
