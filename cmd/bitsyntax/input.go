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

package main

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/fault"
)

// ErrBadInput is returned for a value argument that cannot be parsed.
const ErrBadInput = fault.Const("bad input")

// parseBits parses a value argument: a quoted string, or hex digits
// optionally followed by a colon and the number of leading bits to keep.
func parseBits(arg string) (bitstring.BitString, error) {
	if len(arg) >= 2 && strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
		text, err := strconv.Unquote(arg)
		if err != nil {
			return bitstring.BitString{}, errors.Wrapf(ErrBadInput, "%s: %v", arg, err)
		}
		return bitstring.New([]byte(text)), nil
	}

	digits, length := arg, ""
	if i := strings.IndexByte(arg, ':'); i >= 0 {
		digits, length = arg[:i], arg[i+1:]
	}
	data, err := hex.DecodeString(digits)
	if err != nil {
		return bitstring.BitString{}, errors.Wrapf(ErrBadInput, "%s: %v", arg, err)
	}
	b := bitstring.New(data)
	if length == "" {
		return b, nil
	}
	n, err := strconv.Atoi(length)
	if err != nil {
		return bitstring.BitString{}, errors.Wrapf(ErrBadInput, "%s: bad bit length", arg)
	}
	return b.Substring(0, n)
}

func parseAll(args []string) ([]bitstring.BitString, error) {
	out := make([]bitstring.BitString, len(args))
	for i, arg := range args {
		b, err := parseBits(arg)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func parseInt(arg, what string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrBadInput, "%s %q is not an integer", what, arg)
	}
	return n, nil
}
