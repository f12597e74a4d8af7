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

package constpool_test

import (
	"sync"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/wjmboss/erjang/core/assert"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/data/constpool"
	"github.com/wjmboss/erjang/core/log"
)

func constant(text string, extra int) bitstring.BitString {
	return bitstring.MustDecode(text, extra)
}

func TestAddDedupes(t *testing.T) {
	ctx := log.Testing(t)
	p := constpool.New()
	a, err := p.Add(bitstring.New([]byte("cat says meow")))
	assert.For(ctx, "err").ThatError(err).Succeeded()
	b, _ := p.Add(constant("says", 0))
	again, _ := p.Add(bitstring.New([]byte("cat says meow")))
	assert.For(ctx, "first").ThatInteger(a).Equals(0)
	assert.For(ctx, "second").ThatInteger(b).Equals(1)
	assert.For(ctx, "same constant").ThatInteger(again).Equals(a)

	bits, _ := p.Add(constant("says", 3))
	assert.For(ctx, "extra bits differ").ThatInteger(bits).Equals(2)
	assert.For(ctx, "Len").ThatInteger(p.Len()).Equals(3)

	got, err := p.Get(2)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "Get").ThatString(got.String()).Equals("<<115,97,121,3:3>>")
	_, err = p.Get(3)
	assert.For(ctx, "Get past end").ThatError(err).HasCause(bitstring.ErrOutOfRange)
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	values := []bitstring.BitString{
		constant("the cat says meow. the dog says woof. ", 0),
		constant("says", 0),
		constant("fish says blub", 0),
		constant("dog", 0),
		constant("\x01\xa0", 3),
		bitstring.Empty,
	}
	p := constpool.New()
	for _, v := range values {
		_, err := p.Add(v)
		assert.For(ctx, "add").ThatError(err).Succeeded()
	}
	data, err := p.Marshal(ctx)
	assert.For(ctx, "marshal").ThatError(err).Succeeded()

	table := &constpool.Table{}
	assert.For(ctx, "decode").ThatError(proto.Unmarshal(data, table)).Succeeded()
	assert.For(ctx, "shared data").ThatString(string(table.Data)).
		Equals("the cat says meow. the dog says woof. fish says blub\x01\xa0")

	loaded, err := constpool.Unmarshal(ctx, data)
	assert.For(ctx, "unmarshal").ThatError(err).Succeeded()
	got := loaded.Values()
	if assert.For(ctx, "count").ThatSlice(got).IsLength(len(values)) {
		for i, v := range values {
			assert.For(ctx, "value %d", i).ThatBoolean(got[i].Equal(v)).IsTrue()
		}
	}

	_, err = loaded.Add(constant("new", 0))
	assert.For(ctx, "loaded is frozen").ThatError(err).HasCause(constpool.ErrFrozen)
	i, err := loaded.Add(constant("dog", 0))
	assert.For(ctx, "existing constant").ThatError(err).Succeeded()
	assert.For(ctx, "existing index").ThatInteger(i).Equals(3)
}

func TestFreeze(t *testing.T) {
	ctx := log.Testing(t)
	p := constpool.New()
	p.Add(constant("abc", 0))
	p.Add(constant("b", 0))
	p.Add(constant("c\x80", 1))
	table := p.Freeze(ctx)
	assert.For(ctx, "data").ThatString(string(table.Data)).Equals("abcc\x80")
	assert.For(ctx, "entries").That(table.Entries).DeepEquals([]*constpool.Entry{
		{Offset: 0, Size: 3, ExtraBits: 0},
		{Offset: 1, Size: 1, ExtraBits: 0},
		{Offset: 3, Size: 1, ExtraBits: 1},
	})
	_, err := p.Add(constant("d", 0))
	assert.For(ctx, "frozen").ThatError(err).HasCause(constpool.ErrFrozen)
}

func TestLoadReportsEveryInvalidEntry(t *testing.T) {
	ctx := log.Testing(t)
	table := &constpool.Table{
		Data: []byte("abc"),
		Entries: []*constpool.Entry{
			{Offset: 2, Size: 2},
			{Offset: 0, Size: 3},
			{Offset: 0, Size: 1, ExtraBits: 9},
		},
	}
	_, err := constpool.Load(ctx, table)
	assert.For(ctx, "err").ThatError(err).HasCause(bitstring.ErrInvalidBitString)
	assert.For(ctx, "first entry").ThatString(err.Error()).Contains("entry 0")
	assert.For(ctx, "last entry").ThatString(err.Error()).Contains("entry 2")
}

func TestLoadSharesBuffer(t *testing.T) {
	ctx := log.Testing(t)
	table := &constpool.Table{
		Data:    []byte("abc"),
		Entries: []*constpool.Entry{{Offset: 0, Size: 3}, {Offset: 1, Size: 2}},
	}
	p, err := constpool.Load(ctx, table)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	out, _ := p.Get(1)
	list, _ := out.AppendIOList(nil)
	assert.For(ctx, "view").ThatBoolean(&list[0][0] == &table.Data[1]).IsTrue()
}

func TestUnmarshalGarbage(t *testing.T) {
	ctx := log.Testing(t)
	_, err := constpool.Unmarshal(ctx, []byte{0x0a, 0x05, 0x01})
	assert.For(ctx, "err").ThatError(err).HasCause(constpool.ErrInvalidTable)
}

func TestConcurrentAdd(t *testing.T) {
	ctx := log.Testing(t)
	p := constpool.New()
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 32; j++ {
				p.Add(bitstring.New([]byte{byte(j)}))
			}
		}()
	}
	wg.Wait()
	assert.For(ctx, "Len").ThatInteger(p.Len()).Equals(32)
}
