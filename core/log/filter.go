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

package log

import "context"

// Filter decides which messages reach the handler.
type Filter interface {
	// Show returns true if a message of severity s logged under tag should
	// be handled.
	Show(tag string, s Severity) bool
}

type filterKeyTy string

const filterKey filterKeyTy = "log.filterKey"

// PutFilter returns a new context with the Filter assigned to f.
func PutFilter(ctx context.Context, f Filter) context.Context {
	return context.WithValue(ctx, filterKey, f)
}

// GetFilter returns the Filter assigned to ctx, or nil.
func GetFilter(ctx context.Context) Filter {
	out, _ := ctx.Value(filterKey).(Filter)
	return out
}

// SeverityFilter shows messages of at least its severity, whatever the tag.
type SeverityFilter Severity

// Show returns true if s is at least the filter's severity.
func (f SeverityFilter) Show(tag string, s Severity) bool { return Severity(f) <= s }

// TagFilter shows messages of at least the severity set for their tag,
// falling back to Default for tags with no entry.
type TagFilter struct {
	Default Severity
	Tags    map[string]Severity
}

// Show returns true if s is at least the severity set for tag.
func (f TagFilter) Show(tag string, s Severity) bool {
	if min, ok := f.Tags[tag]; ok {
		return min <= s
	}
	return f.Default <= s
}

// ParseTagSeverities parses a map of tag to severity name, as held in
// configuration, into the Tags of a TagFilter.
func ParseTagSeverities(in map[string]string) (map[string]Severity, error) {
	out := make(map[string]Severity, len(in))
	for tag, name := range in {
		s, err := ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		out[tag] = s
	}
	return out, nil
}
