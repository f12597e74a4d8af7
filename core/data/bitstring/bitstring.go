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

// Package bitstring implements the bit-addressable binary values of bit
// syntax.
//
// A BitString is an immutable view of (offset, byte size, extra bits) over a
// byte buffer. The extra bits, 0 to 7 of them, are stored left-justified in
// the byte following the full bytes. A BitString with no extra bits is a
// binary. Views derived on byte boundaries share their buffer; nothing ever
// writes to a buffer once a BitString has been made over it, so values can be
// shared freely between goroutines.
package bitstring

import "github.com/pkg/errors"

// BitString is an immutable sequence of bits.
// The zero value is the empty binary.
type BitString struct {
	data   []byte
	offset int
	size   int
	extra  int
}

// Empty is the empty binary.
var Empty = BitString{}

// New returns a binary holding a copy of data.
func New(data []byte) BitString {
	return BitString{data: append([]byte(nil), data...), size: len(data)}
}

// Make returns a BitString over data without copying it. The value covers
// byteSize full bytes starting at byteOffset, followed by extraBits bits held
// in the most significant bits of the next byte.
// data must not be modified after the call.
func Make(data []byte, byteOffset, byteSize, extraBits int) (BitString, error) {
	if extraBits < 0 || extraBits > 7 {
		return BitString{}, errors.Wrapf(ErrInvalidBitString, "extra bits %d not in [0, 7]", extraBits)
	}
	if byteOffset < 0 || byteSize < 0 {
		return BitString{}, errors.Wrapf(ErrInvalidBitString, "negative offset %d or size %d", byteOffset, byteSize)
	}
	need := byteOffset + byteSize
	if extraBits > 0 {
		need++
	}
	if len(data) < need {
		return BitString{}, errors.Wrapf(ErrInvalidBitString,
			"buffer of %d bytes cannot hold %d bytes and %d bits at offset %d",
			len(data), byteSize, extraBits, byteOffset)
	}
	return BitString{data: data, offset: byteOffset, size: byteSize, extra: extraBits}, nil
}

// ByteSize returns the number of full bytes in the value.
func (b BitString) ByteSize() int { return b.size }

// ExtraBits returns the number of bits following the full bytes, 0 to 7.
func (b BitString) ExtraBits() int { return b.extra }

// BitSize returns the length of the value in bits.
func (b BitString) BitSize() int { return b.size*8 + b.extra }

// DataByteSize returns the number of bytes needed to hold the value, counting
// a partially used trailing byte.
func (b BitString) DataByteSize() int {
	if b.extra > 0 {
		return b.size + 1
	}
	return b.size
}

// IsBinary returns true if the value is a whole number of bytes.
func (b BitString) IsBinary() bool { return b.extra == 0 }

// Tail returns the value without its first byteOffset bytes. The result
// shares the buffer of b.
func (b BitString) Tail(byteOffset int) (BitString, error) {
	if byteOffset < 0 || byteOffset > b.size {
		return BitString{}, errors.Wrapf(ErrOutOfRange, "tail at byte %d of %d", byteOffset, b.size)
	}
	return BitString{data: b.data, offset: b.offset + byteOffset, size: b.size - byteOffset, extra: b.extra}, nil
}

// AppendIOList appends the bytes of a binary to out as a single slice that
// shares the buffer of b, and returns the extended list. Empty binaries add
// nothing. If b has extra bits it cannot be part of an I/O list, and out is
// returned unchanged with false.
// The appended slice must be treated as read-only.
func (b BitString) AppendIOList(out [][]byte) ([][]byte, bool) {
	if b.extra != 0 {
		return out, false
	}
	if b.size > 0 {
		out = append(out, b.full())
	}
	return out, true
}

// full returns the full bytes of the value, sharing the buffer. The capacity
// is clipped so that appending to the result can never write into the buffer.
func (b BitString) full() []byte {
	return b.data[b.offset : b.offset+b.size : b.offset+b.size]
}

// octet returns the i'th stored byte of the value, relative to its offset.
// i may address the partial trailing byte.
func (b BitString) octet(i int) byte {
	return b.data[b.offset+i]
}
