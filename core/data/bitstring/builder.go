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

// Builder constructs a BitString by appending fields, as a bit syntax
// construction expression does. Multi-byte values are written big-endian.
// The zero value is an empty Builder ready for use.
//
// Build freezes the Builder: the returned value owns the written buffer, so
// any further write fails with ErrFrozen until Reset is called.
type Builder struct {
	stream binary.BitStream
	frozen bool
	errs   fault.One
}

var _ binary.BitWriter = (*Builder)(nil)

// NewBuilder returns a Builder with room for sizeHint bytes. A negative hint
// is treated as zero.
func NewBuilder(sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{stream: binary.BitStream{Data: make([]byte, 0, sizeHint)}}
}

// BitSize returns the number of bits written so far.
func (b *Builder) BitSize() int { return b.stream.WritePos }

// Error returns the error that stopped writing, or nil.
func (b *Builder) Error() error { return b.errs.First() }

// SetError stops writing with err, unless writing has already stopped.
func (b *Builder) SetError(err error) {
	b.errs.Collect(err)
}

func (b *Builder) writable() bool {
	if b.errs.First() != nil {
		return false
	}
	if b.frozen {
		b.SetError(errors.Wrap(ErrFrozen, "write after Build"))
		return false
	}
	return true
}

// Bits appends the low n bits of v, n between 0 and 64.
func (b *Builder) Bits(v uint64, n int) {
	if n < 0 || n > 64 {
		b.SetError(errors.Wrapf(ErrInvalidArgument, "cannot write %d bits of an integer", n))
		return
	}
	if b.writable() {
		b.stream.Write(v, n)
	}
}

// Int appends v as a two's complement field of n bits, n between 0 and 64.
// Bits of v above the field are dropped.
func (b *Builder) Int(v int64, n int) {
	b.Bits(uint64(v), n)
}

// Append appends all the bits of v.
func (b *Builder) Append(v BitString) {
	if !b.writable() {
		return
	}
	n := v.BitSize()
	for pos := 0; pos < n; pos += 64 {
		w := n - pos
		if w > 64 {
			w = 64
		}
		b.stream.Write(v.bits(pos, w), w)
	}
}

// Data appends the bytes of p.
func (b *Builder) Data(p []byte) {
	if !b.writable() {
		return
	}
	for _, c := range p {
		b.stream.Write(uint64(c), 8)
	}
}

// Bool appends a byte holding 1 for true and 0 for false.
func (b *Builder) Bool(v bool) {
	if v {
		b.Uint8(1)
	} else {
		b.Uint8(0)
	}
}

func (b *Builder) Int8(v int8)       { b.Bits(uint64(uint8(v)), 8) }
func (b *Builder) Uint8(v uint8)     { b.Bits(uint64(v), 8) }
func (b *Builder) Int16(v int16)     { b.Bits(uint64(uint16(v)), 16) }
func (b *Builder) Uint16(v uint16)   { b.Bits(uint64(v), 16) }
func (b *Builder) Int32(v int32)     { b.Bits(uint64(uint32(v)), 32) }
func (b *Builder) Uint32(v uint32)   { b.Bits(uint64(v), 32) }
func (b *Builder) Int64(v int64)     { b.Bits(uint64(v), 64) }
func (b *Builder) Uint64(v uint64)   { b.Bits(v, 64) }
func (b *Builder) Float32(v float32) { b.Bits(uint64(math.Float32bits(v)), 32) }
func (b *Builder) Float64(v float64) { b.Bits(math.Float64bits(v), 64) }

// Build returns the written bits and freezes the Builder.
// It returns the first error that stopped writing, if any.
func (b *Builder) Build() (BitString, error) {
	if b.errs.First() != nil {
		return BitString{}, b.errs.First()
	}
	b.frozen = true
	pos := b.stream.WritePos
	return BitString{data: b.stream.Bytes(), size: pos / 8, extra: pos % 8}, nil
}

// Reset discards the written bits and any error, and unfreezes the Builder.
// Values returned by earlier calls to Build are not affected.
func (b *Builder) Reset() {
	*b = Builder{}
}
