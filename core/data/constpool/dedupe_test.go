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
	"testing"

	"github.com/wjmboss/erjang/core/assert"
	"github.com/wjmboss/erjang/core/log"
)

func TestDedupe(t *testing.T) {
	ctx := log.Testing(t)
	texts := []string{
		"cat says meow",
		"says",
		"the cat says meow. the dog says woof. ",
		"fish says blub",
		"",
	}
	expected := "the cat says meow. the dog says woof. fish says blub"
	deduped, offsets := dedupe(texts)
	if assert.For(ctx, "got").ThatString(string(deduped)).Equals(expected) {
		for i, text := range texts {
			got := string(deduped[offsets[i] : offsets[i]+len(text)])
			assert.For(ctx, "%v", i).ThatString(got).Equals(text)
		}
	}
}

func TestDedupeNothing(t *testing.T) {
	ctx := log.Testing(t)
	deduped, offsets := dedupe(nil)
	assert.For(ctx, "data").ThatSlice(deduped).IsEmpty()
	assert.For(ctx, "offsets").ThatSlice(offsets).IsEmpty()
}
