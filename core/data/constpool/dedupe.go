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

import (
	"bytes"
	"sort"
)

// dedupe returns the concatenation of texts with duplicates removed, along
// with the offset of each text in it. A text that occurs anywhere inside a
// longer one reuses its bytes.
func dedupe(texts []string) ([]byte, []int) {
	if len(texts) == 0 {
		return nil, nil
	}

	order := make([]int, len(texts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return len(texts[order[i]]) > len(texts[order[j]]) })

	offsets := make([]int, len(texts))
	buf := bytes.Buffer{}
	for _, i := range order {
		s := []byte(texts[i])
		if idx := bytes.Index(buf.Bytes(), s); idx >= 0 {
			offsets[i] = idx
			continue
		}
		offsets[i] = buf.Len()
		buf.Write(s)
	}
	return buf.Bytes(), offsets
}
