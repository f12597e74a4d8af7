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

// Package binary holds the value codec interfaces shared by the bit-level
// readers and writers, and BitStream, an MSB-first bit cursor over bytes.
//
// Multi-byte values are big-endian: the first bit read or written is the most
// significant bit of the value.
package binary

// Reader decodes a sequence of fixed size values.
//
// After a failure every method returns the zero value of its type, and Error
// returns the failure.
type Reader interface {
	// Data fills the slice with the next len(slice) bytes.
	Data([]byte)
	// Bool reads a byte and returns true if it is non-zero.
	Bool() bool
	Int8() int8
	Uint8() uint8
	Int16() int16
	Uint16() uint16
	Int32() int32
	Uint32() uint32
	Float32() float32
	Int64() int64
	Uint64() uint64
	Float64() float64
	// Error returns the failure that stopped reading, or nil.
	Error() error
	// SetError stops reading with err. The first error set is kept.
	SetError(err error)
}

// BitReader is a Reader that can also read fields of any width, starting at
// any bit.
type BitReader interface {
	Reader
	// Bits reads an unsigned field of n bits, n between 0 and 64.
	Bits(n int) uint64
	// Int reads a two's complement field of n bits, n between 0 and 64.
	Int(n int) int64
	// Skip discards the next n bits.
	Skip(n int)
	// Remaining returns the number of bits left to read.
	Remaining() int
}
