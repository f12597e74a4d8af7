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

import "github.com/pkg/errors"

// Encode returns the constant form of the value: text holds one byte per
// stored byte, the trailing extra bits left-justified in the final byte with
// the unused low bits cleared, and extraBits is the number of those trailing
// bits. The pair is the form in which literal bitstrings are embedded in
// generated code and constant pools; Decode reverses it.
func (b BitString) Encode() (text string, extraBits int) {
	out := make([]byte, b.DataByteSize())
	copy(out, b.full())
	if b.extra != 0 {
		out[b.size] = byte(b.bits(b.size*8, b.extra) << (8 - b.extra))
	}
	return string(out), b.extra
}

// Decode returns the BitString whose constant form is (text, extraBits), as
// produced by Encode. Each byte of text is one stored byte; when extraBits is
// non-zero the last byte holds the trailing bits.
func Decode(text string, extraBits int) (BitString, error) {
	size := len(text)
	if extraBits > 0 {
		size--
	}
	if size < 0 {
		return BitString{}, errors.Wrapf(ErrInvalidBitString, "no byte to hold %d extra bits", extraBits)
	}
	return Make([]byte(text), 0, size, extraBits)
}

// MustDecode is like Decode but panics if the constant is invalid.
// It is intended for literals in generated code.
func MustDecode(text string, extraBits int) BitString {
	b, err := Decode(text, extraBits)
	if err != nil {
		panic(err)
	}
	return b
}
