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

package binary

// BitStream provides methods for reading and writing bits to a slice of bytes.
// Bits are packed in a most-significant-bit to least-significant-bit order,
// so the first bit of the stream is the top bit of Data[0]. This is the
// order used by bit syntax, and by network protocols.
type BitStream struct {
	Data     []byte // The byte slice containing the bits
	ReadPos  int    // The current read offset from the start of the Data slice (in bits)
	WritePos int    // The current write offset from the start of the Data slice (in bits)
}

// ReadBit reads a single bit from the BitStream, incrementing ReadPos by one.
func (s *BitStream) ReadBit() uint64 {
	pos := s.ReadPos
	s.ReadPos = pos + 1
	return (uint64(s.Data[pos/8]) >> (7 - pos%8)) & 1
}

// WriteBit writes a single bit to the BitStream, incrementing WritePos by one.
func (s *BitStream) WriteBit(bit uint64) {
	b := s.WritePos / 8
	if b == len(s.Data) {
		s.Data = append(s.Data, 0)
	}
	mask := byte(0x80 >> (s.WritePos % 8))
	if bit&1 == 1 {
		s.Data[b] |= mask
	} else {
		s.Data[b] &= ^mask
	}
	s.WritePos++
}

// CanRead returns true if there's enough data to call Read(count).
func (s *BitStream) CanRead(count int) bool {
	return count >= 0 && s.ReadPos+count <= len(s.Data)*8
}

// Read reads the specified number of bits (at most 64) from the BitStream,
// incrementing the ReadPos by the specified number of bits and returning the
// bits packed into the low bits of a uint64, first bit most significant.
func (s *BitStream) Read(count int) uint64 {
	if count == 0 {
		return 0
	}

	byteIdx := s.ReadPos / 8
	bitIdx := s.ReadPos & 7

	// Start
	avail := 8 - bitIdx
	val := uint64(s.Data[byteIdx]) & (1<<avail - 1)
	if count <= avail {
		s.ReadPos += count
		return val >> (avail - count)
	}
	s.ReadPos += avail
	count -= avail
	byteIdx++

	// Whole bytes
	for ; count >= 8; count -= 8 {
		val = val<<8 | uint64(s.Data[byteIdx])
		byteIdx++
		s.ReadPos += 8
	}

	// Remainder
	if count > 0 {
		val = val<<count | uint64(s.Data[byteIdx])>>(8-count)
		s.ReadPos += count
	}
	return val
}

// Write writes the low count bits (at most 64) of bits, most significant
// first, incrementing the WritePos by count. Bits of a partially written
// byte that lie beyond WritePos are left as zero.
func (s *BitStream) Write(bits uint64, count int) {
	if count == 0 {
		return
	}
	// Ensure the buffer is big enough for all them bits.
	if reqBytes := (s.WritePos + count + 7) / 8; reqBytes > len(s.Data) {
		if reqBytes <= cap(s.Data) {
			s.Data = s.Data[:reqBytes]
		} else {
			buf := make([]byte, reqBytes, reqBytes*2)
			copy(buf, s.Data)
			s.Data = buf
		}
	}
	if count < 64 {
		bits &= 1<<count - 1
	}

	byteIdx := s.WritePos / 8
	bitIdx := s.WritePos & 7

	// Start
	if bitIdx != 0 {
		free := 8 - bitIdx
		n := free
		if count < n {
			n = count
		}
		shift := free - n
		mask := byte((1<<n - 1) << shift)
		top := byte(bits >> (count - n))
		s.Data[byteIdx] = (s.Data[byteIdx] & ^mask) | (top<<shift)&mask
		s.WritePos += n
		count -= n
		byteIdx++
	}

	// Whole bytes
	for ; count >= 8; count -= 8 {
		s.Data[byteIdx] = byte(bits >> (count - 8))
		byteIdx++
		s.WritePos += 8
	}

	// Remainder
	if count > 0 {
		shift := 8 - count
		mask := byte(0xff << shift)
		s.Data[byteIdx] = (s.Data[byteIdx] & ^mask) | byte(bits<<shift)&mask
		s.WritePos += count
	}
}

// Bytes returns the written bytes. Bits after WritePos in the final byte are
// whatever the buffer held; the Write methods keep them zero on a fresh
// stream.
func (s *BitStream) Bytes() []byte {
	return s.Data[:(s.WritePos+7)/8]
}
