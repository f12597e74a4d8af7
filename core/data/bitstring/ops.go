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
	"bytes"

	"github.com/pkg/errors"
)

// Substring returns the bitLength bits of b starting at bitOffset.
// If bitOffset is on a byte boundary the result shares the buffer of b,
// otherwise the bits are copied into a new buffer.
func (b BitString) Substring(bitOffset, bitLength int) (BitString, error) {
	if err := b.checkRange(bitOffset, bitLength); err != nil {
		return BitString{}, err
	}
	size, extra := bitLength/8, bitLength%8
	if bitOffset%8 == 0 {
		return BitString{data: b.data, offset: b.offset + bitOffset/8, size: size, extra: extra}, nil
	}

	out := make([]byte, (bitLength+7)/8)
	for i := 0; i < size; i++ {
		out[i] = byte(b.bits(bitOffset+i*8, 8))
	}
	if extra != 0 {
		out[size] = byte(b.bits(bitOffset+bitLength-extra, extra) << (8 - extra))
	}
	return BitString{data: out, size: size, extra: extra}, nil
}

// SubstringFrom returns the bits of b from bitOffset to the end.
func (b BitString) SubstringFrom(bitOffset int) (BitString, error) {
	if bitOffset < 0 || bitOffset > b.BitSize() {
		return BitString{}, errors.Wrapf(ErrOutOfRange, "substring at bit %d of %d-bit string", bitOffset, b.BitSize())
	}
	return b.Substring(bitOffset, b.BitSize()-bitOffset)
}

// Equal returns true if b and o hold exactly the same bits.
func (b BitString) Equal(o BitString) bool {
	if b.size != o.size || b.extra != o.extra {
		return false
	}
	if !bytes.Equal(b.full(), o.full()) {
		return false
	}
	if b.extra == 0 {
		return true
	}
	tail := b.size * 8
	return b.bits(tail, b.extra) == o.bits(tail, o.extra)
}

// Compare returns -1, 0 or +1 depending on whether b orders before, the same
// as, or after o.
// The values are compared in 8-bit windows up to the length of the shorter
// one, the last window being shorter if that length is not a whole number of
// bytes. The first window that differs decides, the smaller value first. If
// all windows are equal the shorter value orders first.
func (b BitString) Compare(o BitString) int {
	n1, n2 := b.BitSize(), o.BitSize()
	limit := n1
	if n2 < limit {
		limit = n2
	}
	for pos := 0; pos < limit; pos += 8 {
		w := limit - pos
		if w > 8 {
			w = 8
		}
		c1, c2 := b.bits(pos, w), o.bits(pos, w)
		switch {
		case c1 < c2:
			return -1
		case c1 > c2:
			return 1
		}
	}
	switch {
	case n1 < n2:
		return -1
	case n1 > n2:
		return 1
	default:
		return 0
	}
}

// Bytes returns a copy of the bytes of a binary.
// It fails with ErrBadArgument if b has extra bits.
func (b BitString) Bytes() ([]byte, error) {
	if !b.IsBinary() {
		return nil, errors.Wrapf(ErrBadArgument, "%d-bit string is not a binary", b.BitSize())
	}
	return append([]byte{}, b.full()...), nil
}
