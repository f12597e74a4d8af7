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
	"github.com/wjmboss/erjang/core/data/binary"
	"github.com/wjmboss/erjang/core/fault"
)

// Reader reads fields in sequence from a BitString, starting at any bit.
// It is the match context of a bit syntax pattern: each read consumes the
// field from the current position. Multi-byte values are big-endian.
//
// If a read fails, it and every later read returns the zero value, and Error
// returns the first failure.
type Reader struct {
	b    BitString
	pos  int
	errs fault.One
}

var _ binary.BitReader = (*Reader)(nil)

// NewReader returns a Reader positioned at the first bit of b.
func NewReader(b BitString) *Reader {
	return &Reader{b: b}
}

// Pos returns the bit position of the next read.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.b.BitSize() - r.pos }

// Error returns the error that stopped reading, or nil.
func (r *Reader) Error() error { return r.errs.First() }

// SetError stops reading with err, unless reading has already stopped.
func (r *Reader) SetError(err error) {
	r.errs.Collect(err)
}

// take checks that n bits can be read, and consumes them returning their
// position.
func (r *Reader) take(n int) (int, bool) {
	if r.errs.First() != nil {
		return 0, false
	}
	if err := r.b.checkRange(r.pos, n); err != nil {
		r.SetError(err)
		return 0, false
	}
	pos := r.pos
	r.pos += n
	return pos, true
}

// Bits reads an unsigned field of n bits, n between 0 and 64.
func (r *Reader) Bits(n int) uint64 {
	if n < 0 || n > 64 {
		r.SetError(errors.Wrapf(ErrInvalidArgument, "cannot read %d bits as an integer", n))
		return 0
	}
	pos, ok := r.take(n)
	if !ok {
		return 0
	}
	return r.b.bits(pos, n)
}

// Int reads a two's complement signed field of n bits, n between 0 and 64.
func (r *Reader) Int(n int) int64 {
	return SignExtend64(r.Bits(n), n)
}

// Skip discards the next n bits.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// BitString reads the next n bits as a BitString. The result shares the
// buffer of the value being read when the position is byte aligned.
func (r *Reader) BitString(n int) BitString {
	pos, ok := r.take(n)
	if !ok {
		return BitString{}
	}
	out, err := r.b.Substring(pos, n)
	if err != nil {
		r.SetError(err)
	}
	return out
}

// Tail reads all the remaining bits.
func (r *Reader) Tail() BitString {
	if r.errs.First() != nil {
		return BitString{}
	}
	return r.BitString(r.Remaining())
}

// Data fills p with the next len(p) bytes.
func (r *Reader) Data(p []byte) {
	pos, ok := r.take(len(p) * 8)
	if !ok {
		return
	}
	for i := range p {
		p[i] = byte(r.b.bits(pos+i*8, 8))
	}
}

func (r *Reader) Bool() bool       { return r.Uint8() != 0 }
func (r *Reader) Int8() int8       { return int8(r.Bits(8)) }
func (r *Reader) Uint8() uint8     { return uint8(r.Bits(8)) }
func (r *Reader) Int16() int16     { return int16(r.Bits(16)) }
func (r *Reader) Uint16() uint16   { return uint16(r.Bits(16)) }
func (r *Reader) Int32() int32     { return int32(r.Bits(32)) }
func (r *Reader) Uint32() uint32   { return uint32(r.Bits(32)) }
func (r *Reader) Int64() int64     { return int64(r.Bits(64)) }
func (r *Reader) Uint64() uint64   { return r.Bits(64) }
func (r *Reader) Float32() float32 { return math.Float32frombits(uint32(r.Bits(32))) }
func (r *Reader) Float64() float64 { return math.Float64frombits(r.Bits(64)) }
