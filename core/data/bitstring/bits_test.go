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

package bitstring_test

import (
	"math"
	"testing"

	"github.com/wjmboss/erjang/core/assert"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/log"
)

func TestBitAt(t *testing.T) {
	ctx := log.Testing(t)
	b := bitstring.New([]byte{0xB2})
	for i, expect := range []int{1, 0, 1, 1, 0, 0, 1, 0} {
		got, err := b.BitAt(i)
		assert.For(ctx, "err %d", i).ThatError(err).Succeeded()
		assert.For(ctx, "bit %d", i).ThatInteger(got).Equals(expect)
	}
	_, err := b.BitAt(8)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
	_, err = b.BitAt(-1)
	assert.For(ctx, "negative").ThatError(err).HasCause(bitstring.ErrOutOfRange)

	partial, _ := bitstring.Make([]byte{0x00, 0x5F}, 1, 0, 2)
	got, _ := partial.BitAt(1)
	assert.For(ctx, "partial").ThatInteger(got).Equals(1)
	_, err = partial.BitAt(2)
	assert.For(ctx, "past extra").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestIntBitsAt(t *testing.T) {
	ctx := log.Testing(t)
	b := bitstring.New([]byte{0xB2, 0x3F})
	for _, test := range []struct {
		pos, n int
		expect uint32
	}{
		{0, 0, 0},
		{16, 0, 0},
		{0, 8, 0xB2},
		{0, 16, 0xB23F},
		{4, 8, 35},
		{4, 4, 0x2},
		{3, 6, 0x24},
		{7, 2, 0x0},
		{15, 1, 1},
		{1, 15, 0x323F},
	} {
		got, err := b.IntBitsAt(test.pos, test.n)
		assert.For(ctx, "err %d:%d", test.pos, test.n).ThatError(err).Succeeded()
		assert.For(ctx, "bits %d:%d", test.pos, test.n).That(got).Equals(test.expect)
	}

	_, err := b.IntBitsAt(0, 33)
	assert.For(ctx, "too wide").ThatError(err).HasCause(bitstring.ErrInvalidArgument)
	_, err = b.IntBitsAt(-1, 33)
	assert.For(ctx, "width checked first").ThatError(err).HasCause(bitstring.ErrInvalidArgument)
	_, err = b.IntBitsAt(10, 8)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
	_, err = b.IntBitsAt(-1, 4)
	assert.For(ctx, "negative").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestLongBitsAt(t *testing.T) {
	ctx := log.Testing(t)
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x10}
	b := bitstring.New(data)

	got, err := b.LongBitsAt(0, 64)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "aligned").That(got).Equals(uint64(0x0123456789ABCDEF))

	got, err = b.LongBitsAt(4, 64)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "unaligned").That(got).Equals(uint64(0x123456789ABCDEF1))

	got, _ = b.LongBitsAt(12, 40)
	assert.For(ctx, "middle").That(got).Equals(uint64(0x3456789ABC))

	_, err = b.LongBitsAt(0, 65)
	assert.For(ctx, "too wide").ThatError(err).HasCause(bitstring.ErrInvalidArgument)
	_, err = b.LongBitsAt(9, 64)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestAccessorsHonourOffset(t *testing.T) {
	ctx := log.Testing(t)
	b, _ := bitstring.Make([]byte{0xFF, 0xB2, 0x3F, 0xA0}, 1, 2, 3)
	got, err := b.IntBitsAt(4, 8)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "middle").That(got).Equals(uint32(35))
	got, err = b.IntBitsAt(16, 3)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "extra").That(got).Equals(uint32(5))
	got, _ = b.IntBitsAt(12, 7)
	assert.For(ctx, "across extra").That(got).Equals(uint32(0x7D))
}

func TestByteAt(t *testing.T) {
	ctx := log.Testing(t)
	b := bitstring.New([]byte{0xB2, 0x3F})
	got, err := b.ByteAt(0)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "signed").That(got).Equals(int8(-78))
	got, _ = b.ByteAt(4)
	assert.For(ctx, "unaligned").That(got).Equals(int8(35))
	_, err = b.ByteAt(9)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestFloatAt(t *testing.T) {
	ctx := log.Testing(t)
	aligned := bitstring.New([]byte{0x3F, 0xC0, 0x00, 0x00})
	got, err := aligned.FloatAt(0)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "aligned").ThatFloat(float64(got)).Equals(1.5, 0)

	shifted := bitstring.New([]byte{0x03, 0xFC, 0x00, 0x00, 0x00})
	got, _ = shifted.FloatAt(4)
	assert.For(ctx, "unaligned").ThatFloat(float64(got)).Equals(1.5, 0)

	nan := bitstring.New([]byte{0x7F, 0xC0, 0x00, 0x00})
	got, _ = nan.FloatAt(0)
	assert.For(ctx, "nan").ThatFloat(float64(got)).IsNaN()

	_, err = aligned.FloatAt(1)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestDoubleAt(t *testing.T) {
	ctx := log.Testing(t)
	b := bitstring.New([]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3F, 0xF8, 0, 0, 0, 0, 0, 0})
	got, err := b.DoubleAt(0)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "first").ThatFloat(got).Equals(-2, 0)
	got, _ = b.DoubleAt(64)
	assert.For(ctx, "second").ThatFloat(got).Equals(1.5, 0)
	inf := bitstring.New([]byte{0x7F, 0xF0, 0, 0, 0, 0, 0, 0})
	got, _ = inf.DoubleAt(0)
	assert.For(ctx, "inf").ThatBoolean(math.IsInf(got, 1)).IsTrue()
	_, err = b.DoubleAt(65)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestSignExtend32(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		v      uint32
		bits   int
		expect int32
	}{
		{0xF, 4, -1},
		{0x7, 4, 7},
		{0x8, 4, -8},
		{0x1, 1, -1},
		{0x0, 1, 0},
		{0x80, 8, -128},
		{0x80, 9, 128},
		{0xFFFFFFFF, 32, -1},
		{0x7FFFFFFF, 32, math.MaxInt32},
		{0x5, 0, 0},
		{0x5, -3, 0},
	} {
		assert.For(ctx, "%#x:%d", test.v, test.bits).
			That(bitstring.SignExtend32(test.v, test.bits)).Equals(test.expect)
	}
}

func TestSignExtend64(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		v      uint64
		bits   int
		expect int64
	}{
		{0x1F, 5, -1},
		{0x0F, 5, 15},
		{0x80000000, 32, math.MinInt32},
		{0x80000000, 33, 0x80000000},
		{0xFFFFFFFFF, 36, -1},
		{1 << 63, 64, math.MinInt64},
		{0x5, 0, 0},
	} {
		assert.For(ctx, "%#x:%d", test.v, test.bits).
			That(bitstring.SignExtend64(test.v, test.bits)).Equals(test.expect)
	}
}
