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

// SameBuffer returns true if a and b are views of the same backing array.
func SameBuffer(a, b BitString) bool {
	if cap(a.data) == 0 || cap(b.data) == 0 {
		return false
	}
	return &a.data[:cap(a.data)][cap(a.data)-1] == &b.data[:cap(b.data)][cap(b.data)-1]
}
