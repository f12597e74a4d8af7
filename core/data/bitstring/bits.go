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

import (
	"math"

	"github.com/pkg/errors"
)

// checkRange returns an error if the length bits starting at bitPos are not
// all within the value.
func (b BitString) checkRange(bitPos, length int) error {
	if bitPos < 0 || length < 0 || bitPos > b.BitSize()-length {
		return errors.Wrapf(ErrOutOfRange, "%d bits at %d of %d-bit string", length, bitPos, b.BitSize())
	}
	return nil
}

// BitAt returns the bit, 0 or 1, at position bitPos.
func (b BitString) BitAt(bitPos int) (int, error) {
	if bitPos < 0 || bitPos >= b.BitSize() {
		return 0, errors.Wrapf(ErrOutOfRange, "bit %d of %d-bit string", bitPos, b.BitSize())
	}
	pos := b.offset*8 + bitPos
	return int(b.data[pos>>3]>>(7-pos&7)) & 1, nil
}

// IntBitsAt returns the bitLength bits starting at bitPos, packed into the
// low bits of the result with the first bit most significant.
// bitLength must be between 0 and 32.
func (b BitString) IntBitsAt(bitPos, bitLength int) (uint32, error) {
	if bitLength < 0 || bitLength > 32 {
		return 0, errors.Wrapf(ErrInvalidArgument, "cannot read %d bits as a 32-bit integer", bitLength)
	}
	if err := b.checkRange(bitPos, bitLength); err != nil {
		return 0, err
	}
	return uint32(b.bits(bitPos, bitLength)), nil
}

// LongBitsAt returns the bitLength bits starting at bitPos, packed into the
// low bits of the result with the first bit most significant.
// bitLength must be between 0 and 64.
func (b BitString) LongBitsAt(bitPos, bitLength int) (uint64, error) {
	if bitLength < 0 || bitLength > 64 {
		return 0, errors.Wrapf(ErrInvalidArgument, "cannot read %d bits as a 64-bit integer", bitLength)
	}
	if err := b.checkRange(bitPos, bitLength); err != nil {
		return 0, err
	}
	return b.bits(bitPos, bitLength), nil
}

// ByteAt returns the 8 bits starting at bitPos as a signed byte.
func (b BitString) ByteAt(bitPos int) (int8, error) {
	v, err := b.IntBitsAt(bitPos, 8)
	return int8(v), err
}

// FloatAt returns the IEEE 754 single precision value stored in the 32 bits
// starting at bitPos.
func (b BitString) FloatAt(bitPos int) (float32, error) {
	v, err := b.IntBitsAt(bitPos, 32)
	return math.Float32frombits(v), err
}

// DoubleAt returns the IEEE 754 double precision value stored in the 64 bits
// starting at bitPos.
func (b BitString) DoubleAt(bitPos int) (float64, error) {
	v, err := b.LongBitsAt(bitPos, 64)
	return math.Float64frombits(v), err
}

// bits stitches together length bits starting at bitPos. The range must
// already have been checked and length must be at most 64.
func (b BitString) bits(bitPos, length int) uint64 {
	if length == 0 {
		return 0
	}
	pos := b.offset*8 + bitPos
	var res uint64

	// The low bits of a part-consumed leading byte.
	if r := pos & 7; r != 0 {
		n := 8 - r
		res = uint64(b.data[pos>>3]) & (1<<n - 1)
		if length <= n {
			return res >> (n - length)
		}
		length -= n
		pos += n
	}

	// Whole bytes. pos is byte aligned from here on.
	i := pos >> 3
	for ; length >= 8; length -= 8 {
		res = res<<8 | uint64(b.data[i])
		i++
	}

	// The high bits of the trailing byte.
	if length > 0 {
		res = res<<length | uint64(b.data[i]>>(8-length))
	}
	return res
}

// SignExtend32 interprets the low bits bits of v as a two's complement
// number. The bits of v above that field must be zero.
func SignExtend32(v uint32, bits int) int32 {
	switch {
	case bits <= 0:
		return 0
	case bits >= 32:
		return int32(v)
	}
	m := uint32(1) << (bits - 1)
	return int32(v^m) - int32(m)
}

// SignExtend64 interprets the low bits bits of v as a two's complement
// number. The bits of v above that field must be zero.
func SignExtend64(v uint64, bits int) int64 {
	switch {
	case bits <= 0:
		return 0
	case bits >= 64:
		return int64(v)
	}
	m := uint64(1) << (bits - 1)
	return int64(v^m) - int64(m)
}
