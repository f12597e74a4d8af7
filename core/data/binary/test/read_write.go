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

// Package test provides round-trip test helpers for binary.Reader and
// binary.Writer implementations.
package test

import (
	"context"
	"reflect"

	"github.com/wjmboss/erjang/core/assert"
	"github.com/wjmboss/erjang/core/data/binary"
	"github.com/wjmboss/erjang/core/fault"
	"github.com/wjmboss/erjang/core/log"
)

const (
	// WriteError is the error injected into writers by ReadWriteErrors.
	WriteError = fault.Const("Write error")
	// ReadError is the error injected into readers by ReadWriteErrors.
	ReadError = fault.Const("Read error")
	// SecondError is injected after the first to check errors stick.
	SecondError = fault.Const("Second error")
)

// ReadWriteTests is a list of values of a single type, and the bytes they
// encode to. Name is the name of the Reader and Writer method for the type.
type ReadWriteTests struct {
	Name   string
	Values interface{}
	Data   []byte
}

// Factory returns a new Writer, and a function that finishes writing and
// returns the written bytes along with a Reader over them.
type Factory func() (binary.Writer, func() ([]byte, binary.Reader))

// ReadWrite writes each test's values, checks the encoded bytes, then reads
// the values back and checks they match.
func ReadWrite(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		writer, done := factory()
		w := reflect.ValueOf(writer).MethodByName(e.Name)
		s := reflect.ValueOf(e.Values)
		for i := 0; i < s.Len(); i++ {
			w.Call([]reflect.Value{s.Index(i)})
		}
		assert.For(ctx, "write error").ThatError(writer.Error()).Succeeded()
		data, reader := done()
		assert.For(ctx, "written").ThatSlice(data).Equals(e.Data)
		r := reflect.ValueOf(reader).MethodByName(e.Name)
		for i := 0; i < s.Len(); i++ {
			ctx := log.V{"index": i}.Bind(ctx)
			got := r.Call(nil)[0]
			assert.For(ctx, "read error").ThatError(reader.Error()).Succeeded()
			assert.For(ctx, "value").That(got.Interface()).Equals(s.Index(i).Interface())
		}
	}
}

// ReadWriteData checks that Data round trips the bytes of every test.
func ReadWriteData(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		writer, done := factory()
		writer.Data(e.Data)
		data, reader := done()
		assert.For(ctx, "written").ThatSlice(data).Equals(e.Data)
		got := make([]byte, len(e.Data))
		reader.Data(got)
		assert.For(ctx, "result").ThatSlice(got).Equals(e.Data)
	}
}

// ReadWriteErrors checks that the first error set on a reader or writer
// sticks, and that methods called after it do not replace it.
func ReadWriteErrors(ctx context.Context, tests []ReadWriteTests, factory Factory) {
	for _, e := range tests {
		ctx := log.V{"name": e.Name}.Bind(ctx)
		writer, done := factory()
		w := reflect.ValueOf(writer).MethodByName(e.Name)
		s := reflect.ValueOf(e.Values)
		writer.SetError(WriteError)
		w.Call([]reflect.Value{s.Index(0)})
		assert.For(ctx, "write error").ThatError(writer.Error()).Equals(WriteError)
		writer.SetError(SecondError)
		w.Call([]reflect.Value{s.Index(0)})
		assert.For(ctx, "write error sticks").ThatError(writer.Error()).Equals(WriteError)
		data, reader := done()
		assert.For(ctx, "nothing written").ThatSlice(data).IsEmpty()
		r := reflect.ValueOf(reader).MethodByName(e.Name)
		reader.SetError(ReadError)
		r.Call(nil)
		assert.For(ctx, "read error").ThatError(reader.Error()).Equals(ReadError)
		reader.SetError(SecondError)
		r.Call(nil)
		assert.For(ctx, "read error sticks").ThatError(reader.Error()).Equals(ReadError)
	}
}

// BitField is one field of a bit-level round trip.
type BitField struct {
	Value  int64
	Width  int
	Signed bool
}

// BitFactory is a Factory for bit-level writers and readers.
type BitFactory func() (binary.BitWriter, func() ([]byte, binary.BitReader))

// ReadWriteBits writes fields in order, checks they pack into data, then
// reads them back and checks nothing is left over.
func ReadWriteBits(ctx context.Context, fields []BitField, data []byte, factory BitFactory) {
	writer, done := factory()
	for _, f := range fields {
		if f.Signed {
			writer.Int(f.Value, f.Width)
		} else {
			writer.Bits(uint64(f.Value), f.Width)
		}
	}
	assert.For(ctx, "write error").ThatError(writer.Error()).Succeeded()
	got, reader := done()
	assert.For(ctx, "written").ThatSlice(got).Equals(data)
	for i, f := range fields {
		ctx := log.V{"field": i}.Bind(ctx)
		if f.Signed {
			assert.For(ctx, "signed").That(reader.Int(f.Width)).Equals(f.Value)
		} else {
			assert.For(ctx, "unsigned").That(reader.Bits(f.Width)).Equals(uint64(f.Value))
		}
	}
	assert.For(ctx, "read error").ThatError(reader.Error()).Succeeded()
	assert.For(ctx, "remaining").ThatInteger(reader.Remaining()).Equals(0)
}
