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
	"fmt"
	"strconv"
	"strings"
)

// maxDumpEntries is the number of leading bytes shown before a long value is
// abbreviated with an ellipsis.
const maxDumpEntries = 20

// String returns the value in bit syntax.
// A binary of printable ASCII characters is shown as <<"text">>. Anything
// else is shown as a list of byte values, at most maxDumpEntries of them
// followed by ... and the last element. A trailing field of fewer than 8
// bits is annotated with its size, as in <<1,5:3>>.
func (b BitString) String() string {
	if b.BitSize() == 0 {
		return "<<>>"
	}
	if b.IsBinary() && b.printable() {
		sb := strings.Builder{}
		sb.WriteString(`<<"`)
		sb.Write(b.full())
		sb.WriteString(`">>`)
		return sb.String()
	}

	last := b.extra
	if last == 0 {
		last = 8
	}
	lastPos := b.BitSize() - last

	sb := strings.Builder{}
	sb.WriteString("<<")
	pos := 0
	for n := 0; pos < lastPos && n < maxDumpEntries; n++ {
		sb.WriteString(strconv.Itoa(int(b.bits(pos, 8))))
		sb.WriteByte(',')
		pos += 8
	}
	if pos < lastPos {
		sb.WriteString("...,")
	}
	sb.WriteString(strconv.Itoa(int(b.bits(lastPos, last))))
	if last != 8 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(last))
	}
	sb.WriteString(">>")
	return sb.String()
}

func (b BitString) printable() bool {
	for _, c := range b.full() {
		if c < ' ' || c > '~' {
			return false
		}
	}
	return true
}

// Format implements fmt.Formatter.
// The verbs %v and %s print the String form, %x and %X print the stored
// bytes in hex (the trailing bits left-justified in their byte), and %q
// quotes the String form. Flags, width and precision apply to the printed
// text as they would for a string.
func (b BitString) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		text, _ := b.Encode()
		fmt.Fprintf(f, fmt.FormatString(f, verb), []byte(text))
	case 'q':
		fmt.Fprintf(f, fmt.FormatString(f, verb), b.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, 's'), b.String())
	}
}
