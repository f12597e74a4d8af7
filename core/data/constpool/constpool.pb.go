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

package constpool

import "github.com/golang/protobuf/proto"

// Messages of constpool.proto.

type Table struct {
	Data    []byte   `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Entries []*Entry `protobuf:"bytes,2,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *Table) Reset()         { *m = Table{} }
func (m *Table) String() string { return proto.CompactTextString(m) }
func (*Table) ProtoMessage()    {}

func (m *Table) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *Table) GetEntries() []*Entry {
	if m != nil {
		return m.Entries
	}
	return nil
}

type Entry struct {
	Offset    uint32 `protobuf:"varint,1,opt,name=offset,proto3" json:"offset,omitempty"`
	Size      uint32 `protobuf:"varint,2,opt,name=size,proto3" json:"size,omitempty"`
	ExtraBits uint32 `protobuf:"varint,3,opt,name=extra_bits,json=extraBits,proto3" json:"extra_bits,omitempty"`
}

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString(m) }
func (*Entry) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Table)(nil), "constpool.Table")
	proto.RegisterType((*Entry)(nil), "constpool.Entry")
}
