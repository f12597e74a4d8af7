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

package binary

// Writer encodes a sequence of fixed size values.
//
// After a failure every method does nothing, and Error returns the failure.
type Writer interface {
	// Data writes the bytes of the slice.
	Data([]byte)
	// Bool writes a byte holding 1 for true and 0 for false.
	Bool(bool)
	Int8(int8)
	Uint8(uint8)
	Int16(int16)
	Uint16(uint16)
	Int32(int32)
	Uint32(uint32)
	Float32(float32)
	Int64(int64)
	Uint64(uint64)
	Float64(float64)
	// Error returns the failure that stopped writing, or nil.
	Error() error
	// SetError stops writing with err. The first error set is kept.
	SetError(err error)
}

// BitWriter is a Writer that can also write fields of any width.
type BitWriter interface {
	Writer
	// Bits writes the low n bits of v, n between 0 and 64.
	Bits(v uint64, n int)
	// Int writes v as a two's complement field of n bits, n between 0 and 64.
	Int(v int64, n int)
}
