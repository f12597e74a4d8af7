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

func TestEncode(t *testing.T) {
	ctx := log.Testing(t)
	text, extra := bits([]byte{0x01, 0xAF}, 1, 3).Encode()
	assert.For(ctx, "text").ThatString(text).Equals("\x01\xa0")
	assert.For(ctx, "extra").ThatInteger(extra).Equals(3)

	text, extra = bitstring.New([]byte("abc")).Encode()
	assert.For(ctx, "binary text").ThatString(text).Equals("abc")
	assert.For(ctx, "binary extra").ThatInteger(extra).Equals(0)

	text, extra = bitstring.Empty.Encode()
	assert.For(ctx, "empty text").ThatString(text).Equals("")
	assert.For(ctx, "empty extra").ThatInteger(extra).Equals(0)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	src := bitstring.New([]byte{0xB2, 0x3F, 0x80, 0x01, 0xFF})
	for off := 0; off <= src.BitSize(); off += 3 {
		for n := 0; off+n <= src.BitSize(); n += 5 {
			ctx := log.V{"offset": off, "length": n}.Bind(ctx)
			b, err := src.Substring(off, n)
			assert.For(ctx, "substring").ThatError(err).Succeeded()
			got, err := bitstring.Decode(b.Encode())
			assert.For(ctx, "decode").ThatError(err).Succeeded()
			assert.For(ctx, "equal").ThatBoolean(got.Equal(b)).IsTrue()
			assert.For(ctx, "BitSize").ThatInteger(got.BitSize()).Equals(n)
		}
	}
}

func TestDecode(t *testing.T) {
	ctx := log.Testing(t)
	b, err := bitstring.Decode("\x01\xa0", 3)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "BitSize").ThatInteger(b.BitSize()).Equals(11)
	assert.For(ctx, "String").ThatString(b.String()).Equals("<<1,5:3>>")

	b, err = bitstring.Decode("", 0)
	assert.For(ctx, "empty err").ThatError(err).Succeeded()
	assert.For(ctx, "empty").ThatInteger(b.BitSize()).Equals(0)

	_, err = bitstring.Decode("", 3)
	assert.For(ctx, "no byte for extra").ThatError(err).HasCause(bitstring.ErrInvalidBitString)
	_, err = bitstring.Decode("a", 8)
	assert.For(ctx, "extra too big").ThatError(err).HasCause(bitstring.ErrInvalidBitString)
	_, err = bitstring.Decode("a", -1)
	assert.For(ctx, "extra negative").ThatError(err).HasCause(bitstring.ErrInvalidBitString)
}

func TestMustDecode(t *testing.T) {
	ctx := log.Testing(t)
	b := bitstring.MustDecode("abc", 0)
	assert.For(ctx, "value").ThatString(b.String()).Equals(`<<"abc">>`)

	defer func() {
		assert.For(ctx, "panic").That(recover()).IsNotNil()
	}()
	bitstring.MustDecode("", 1)
}
