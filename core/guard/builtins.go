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

package guard

import "strconv"

var standard = map[string]Builtin{
	"is_bitstring": {1, func(a []Value) bool { return a[0].Type == BitString }},
	"is_binary":    {1, func(a []Value) bool { return a[0].Type == BitString && a[0].Bits.IsBinary() }},
	"is_integer":   {1, func(a []Value) bool { return a[0].Type == Integer }},
	"=:=":          {2, func(a []Value) bool { return a[0].ExactlyEqual(a[1]) }},
	"=/=":          {2, func(a []Value) bool { return !a[0].ExactlyEqual(a[1]) }},
	"<":            {2, func(a []Value) bool { return a[0].Compare(a[1]) < 0 }},
	"=<":           {2, func(a []Value) bool { return a[0].Compare(a[1]) <= 0 }},
	">":            {2, func(a []Value) bool { return a[0].Compare(a[1]) > 0 }},
	">=":           {2, func(a []Value) bool { return a[0].Compare(a[1]) >= 0 }},
}

func fmtInt(v int64) string { return strconv.FormatInt(v, 10) }
