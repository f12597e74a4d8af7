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
	"testing"

	"github.com/wjmboss/erjang/core/assert"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/log"
)

func TestMake(t *testing.T) {
	ctx := log.Testing(t)
	data := []byte{0xFF, 0xB2, 0x3F, 0xA0}
	for _, test := range []struct {
		name                string
		offset, size, extra int
		bits                int
		valid               bool
	}{
		{"whole", 0, 4, 0, 32, true},
		{"offset", 1, 2, 0, 16, true},
		{"extra", 1, 2, 3, 19, true},
		{"only extra", 3, 0, 7, 7, true},
		{"empty at end", 4, 0, 0, 0, true},
		{"extra too big", 0, 1, 8, 0, false},
		{"extra negative", 0, 1, -1, 0, false},
		{"offset negative", -1, 1, 0, 0, false},
		{"size negative", 0, -1, 0, 0, false},
		{"size too big", 1, 4, 0, 0, false},
		{"no room for extra", 1, 3, 1, 0, false},
	} {
		ctx := log.V{"name": test.name}.Bind(ctx)
		b, err := bitstring.Make(data, test.offset, test.size, test.extra)
		if !test.valid {
			assert.For(ctx, "err").ThatError(err).HasCause(bitstring.ErrInvalidBitString)
			continue
		}
		if assert.For(ctx, "err").ThatError(err).Succeeded() {
			assert.For(ctx, "ByteSize").ThatInteger(b.ByteSize()).Equals(test.size)
			assert.For(ctx, "ExtraBits").ThatInteger(b.ExtraBits()).Equals(test.extra)
			assert.For(ctx, "BitSize").ThatInteger(b.BitSize()).Equals(test.bits)
			assert.For(ctx, "IsBinary").ThatBoolean(b.IsBinary()).Equals(test.extra == 0)
		}
	}
}

func TestSizes(t *testing.T) {
	ctx := log.Testing(t)
	b, _ := bitstring.Make([]byte{0x01, 0x02, 0xE0}, 0, 2, 3)
	assert.For(ctx, "ByteSize").ThatInteger(b.ByteSize()).Equals(2)
	assert.For(ctx, "BitSize").ThatInteger(b.BitSize()).Equals(19)
	assert.For(ctx, "DataByteSize").ThatInteger(b.DataByteSize()).Equals(3)

	bin := bitstring.New([]byte{1, 2})
	assert.For(ctx, "binary DataByteSize").ThatInteger(bin.DataByteSize()).Equals(2)

	assert.For(ctx, "empty BitSize").ThatInteger(bitstring.Empty.BitSize()).Equals(0)
	assert.For(ctx, "empty IsBinary").ThatBoolean(bitstring.Empty.IsBinary()).IsTrue()
}

func TestNewCopies(t *testing.T) {
	ctx := log.Testing(t)
	data := []byte{1, 2, 3}
	b := bitstring.New(data)
	data[0] = 9
	v, err := b.ByteAt(0)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "first byte").That(v).Equals(int8(1))
}

func TestTail(t *testing.T) {
	ctx := log.Testing(t)
	b, _ := bitstring.Make([]byte{1, 2, 3, 0x80}, 0, 3, 1)

	tail, err := b.Tail(2)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "shares").ThatBoolean(bitstring.SameBuffer(b, tail)).IsTrue()
	assert.For(ctx, "BitSize").ThatInteger(tail.BitSize()).Equals(9)
	assert.For(ctx, "String").ThatString(tail.String()).Equals("<<3,1:1>>")

	end, err := b.Tail(3)
	assert.For(ctx, "err at end").ThatError(err).Succeeded()
	assert.For(ctx, "BitSize at end").ThatInteger(end.BitSize()).Equals(1)

	_, err = b.Tail(4)
	assert.For(ctx, "past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
	_, err = b.Tail(-1)
	assert.For(ctx, "negative").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestAppendIOList(t *testing.T) {
	ctx := log.Testing(t)
	data := []byte{0xFF, 1, 2, 3}
	b, _ := bitstring.Make(data, 1, 3, 0)
	out, ok := b.AppendIOList(nil)
	assert.For(ctx, "ok").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "out").That(out).DeepEquals([][]byte{{1, 2, 3}})
	assert.For(ctx, "no copy").ThatBoolean(&out[0][0] == &data[1]).IsTrue()

	out, ok = bitstring.Empty.AppendIOList(out)
	assert.For(ctx, "empty ok").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "empty adds nothing").ThatSlice(out).IsLength(1)

	bits, _ := bitstring.Make(data, 1, 2, 3)
	out, ok = bits.AppendIOList(out)
	assert.For(ctx, "bits ok").ThatBoolean(ok).IsFalse()
	assert.For(ctx, "bits adds nothing").ThatSlice(out).IsLength(1)
}
