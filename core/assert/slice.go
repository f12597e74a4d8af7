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

package assert

import (
	"reflect"

	testify "github.com/stretchr/testify/assert"
)

// OnSlice is the result of calling ThatSlice on an Assertion.
// It provides assertion tests that are specific to slice types.
type OnSlice struct {
	Assertion
	slice interface{}
}

// ThatSlice returns an OnSlice for assertions on slice type objects.
// Calling this with a non slice type will result in panics.
func (a Assertion) ThatSlice(slice interface{}) OnSlice {
	return OnSlice{Assertion: a, slice: slice}
}

// IsEmpty asserts that the slice was of length 0
func (o OnSlice) IsEmpty() bool {
	value := reflect.ValueOf(o.slice)
	return o.CompareRaw(value.Len(), "is", "empty").Test(value.Len() == 0)
}

// IsLength asserts that the slice has exactly the specified number of elements
func (o OnSlice) IsLength(length int) bool {
	value := reflect.ValueOf(o.slice)
	return o.Compare(value.Len(), "length ==", length).Test(value.Len() == length)
}

// Equals asserts the slice holds the same elements as expected, compared
// with ==.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.Test(o.diff(expected, func(a, b interface{}) bool { return a == b }))
}

// DeepEquals asserts the slice holds the same elements as expected, compared
// with a deep comparison.
func (o OnSlice) DeepEquals(expected interface{}) bool {
	return o.Test(o.diff(expected, func(a, b interface{}) bool { return testify.ObjectsAreEqual(b, a) }))
}

// diff prints one line per element, marking missing elements with -,
// unexpected ones with + and different ones with *, and returns true if
// there were no differences.
func (o OnSlice) diff(expected interface{}, same func(a, b interface{}) bool) bool {
	got, want := reflect.ValueOf(o.slice), reflect.ValueOf(expected)
	n := got.Len()
	if want.Len() > n {
		n = want.Len()
	}
	equal := true
	for i := 0; i < n; i++ {
		var g, w interface{}
		hasGot, hasWant := i < got.Len(), i < want.Len()
		if hasGot {
			g = got.Index(i).Interface()
		}
		if hasWant {
			w = want.Index(i).Interface()
		}
		switch {
		case !hasGot:
			o.Printf("-\t%d\t\t==>\t%T\t%v\n    ", i, w, w)
		case !hasWant:
			o.Printf("+\t%d\t%T\t%v\n    ", i, g, g)
		case !same(g, w):
			o.Printf("*\t%d\t%T\t%v\t==>\t%v\n    ", i, g, g, w)
		default:
			o.Printf("\t%d\t%T\t%v\n    ", i, g, g)
			continue
		}
		equal = false
	}
	return equal
}
