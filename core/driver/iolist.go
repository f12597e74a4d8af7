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

package driver

import (
	"github.com/pkg/errors"
	"github.com/wjmboss/erjang/core/data/bitstring"
)

// IOList returns the bytes of bufs as one slice per non-empty binary, without
// copying. It fails with bitstring.ErrBadArgument if an element has extra
// bits.
func IOList(bufs []bitstring.BitString) ([][]byte, error) {
	out := make([][]byte, 0, len(bufs))
	for i, b := range bufs {
		var ok bool
		if out, ok = b.AppendIOList(out); !ok {
			return nil, errors.Wrapf(bitstring.ErrBadArgument, "iolist element %d is %v", i, b)
		}
	}
	return out, nil
}
