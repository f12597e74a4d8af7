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

// Package constpool holds the bitstring literals of a compiled module.
//
// A Pool collects constants while code is generated, giving each distinct
// value an index. Freezing the pool lays every constant out in one shared
// buffer, with constants whose bytes occur inside another constant stored
// once, and describes each as an (offset, size, extra bits) entry. The
// resulting Table is serialized with protobuf. Loading a Table yields
// bitstrings that are views of the one buffer.
package constpool

import (
	"context"
	"sync"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/fault"
	"github.com/wjmboss/erjang/core/log"
)

const (
	// ErrFrozen is returned when adding to a pool that has been frozen or
	// loaded.
	ErrFrozen = fault.Const("constant pool is frozen")
	// ErrInvalidTable is returned when a serialized table cannot be decoded.
	ErrInvalidTable = fault.Const("invalid constant table")
)

type key struct {
	text  string
	extra int
}

// Pool is an indexed set of bitstring constants.
// It is safe to use from multiple goroutines.
type Pool struct {
	mu     sync.Mutex
	values []bitstring.BitString
	keys   []key
	index  map[key]int
	frozen bool
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{index: map[key]int{}}
}

// Add returns the index of the constant b, adding it to the pool if no equal
// constant is already present.
func (p *Pool) Add(b bitstring.BitString) (int, error) {
	text, extra := b.Encode()
	k := key{text, extra}

	p.mu.Lock()
	defer p.mu.Unlock()
	if i, ok := p.index[k]; ok {
		return i, nil
	}
	if p.frozen {
		return 0, errors.Wrapf(ErrFrozen, "adding %v", b)
	}
	i := len(p.values)
	p.values = append(p.values, bitstring.MustDecode(text, extra))
	p.keys = append(p.keys, k)
	p.index[k] = i
	return i, nil
}

// Len returns the number of constants in the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.values)
}

// Get returns the constant with index i.
func (p *Pool) Get(i int) (bitstring.BitString, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.values) {
		return bitstring.BitString{}, errors.Wrapf(bitstring.ErrOutOfRange, "constant %d of %d", i, len(p.values))
	}
	return p.values[i], nil
}

// Values returns all the constants in index order.
func (p *Pool) Values() []bitstring.BitString {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bitstring.BitString{}, p.values...)
}

// Freeze stops further additions and returns the pool as a Table.
func (p *Pool) Freeze(ctx context.Context) *Table {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frozen = true

	texts := make([]string, len(p.keys))
	total := 0
	for i, k := range p.keys {
		texts[i] = k.text
		total += len(k.text)
	}
	data, offsets := dedupe(texts)

	t := &Table{Data: data, Entries: make([]*Entry, len(p.keys))}
	for i, k := range p.keys {
		size := len(k.text)
		if k.extra > 0 {
			size--
		}
		t.Entries[i] = &Entry{
			Offset:    uint32(offsets[i]),
			Size:      uint32(size),
			ExtraBits: uint32(k.extra),
		}
	}
	log.D(ctx, "Froze %d constants into %d of %d bytes", len(p.keys), len(data), total)
	return t
}

// Marshal freezes the pool and returns its serialized Table.
func (p *Pool) Marshal(ctx context.Context) ([]byte, error) {
	data, err := proto.Marshal(p.Freeze(ctx))
	if err != nil {
		return nil, log.Err(ctx, err, "Marshalling constant pool")
	}
	return data, nil
}

// Load returns a frozen pool holding the constants of t. The constants are
// views of t.Data, which must not be modified afterwards. Every invalid entry
// is reported in the returned error.
func Load(ctx context.Context, t *Table) (*Pool, error) {
	data := t.GetData()
	p := &Pool{index: map[key]int{}, frozen: true}
	errs := fault.List{}
	for i, e := range t.GetEntries() {
		b, err := bitstring.Make(data, int(e.Offset), int(e.Size), int(e.ExtraBits))
		if err != nil {
			errs.Collect(errors.Wrapf(err, "entry %d (%v)", i, e))
			continue
		}
		k := key{}
		k.text, k.extra = b.Encode()
		if _, ok := p.index[k]; !ok {
			p.index[k] = len(p.values)
		}
		p.values = append(p.values, b)
		p.keys = append(p.keys, k)
	}
	if err := errs.Err(); err != nil {
		return nil, log.Err(ctx, err, "Loading constant pool")
	}
	log.D(ctx, "Loaded %d constants from %d bytes", len(p.values), len(data))
	return p, nil
}

// Unmarshal decodes a serialized Table and loads it.
func Unmarshal(ctx context.Context, data []byte) (*Pool, error) {
	t := &Table{}
	if err := proto.Unmarshal(data, t); err != nil {
		return nil, log.Err(ctx, errors.Wrap(ErrInvalidTable, err.Error()), "Unmarshalling constant pool")
	}
	return Load(ctx, t)
}
