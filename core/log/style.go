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

import (
	"fmt"
	"strings"
	"time"
)

// Style provides customization for printing messages.
type Style struct {
	Name      string // Name of the style.
	Timestamp bool   // If true, the timestamp will be printed if part of the message.
	Severity  bool   // If true, the severity of the message will be printed.
	Long      bool   // If true, the severity is printed in full rather than as one character.
	Tag       bool   // If true, the tag will be printed if part of the message.
	Values    bool   // If true, the values of the message are printed on the same line.
}

var (
	// Raw is a style that only prints the text of the message.
	Raw = Style{Name: "raw"}

	// Brief is a style that prints the short severity, tag and text.
	Brief = Style{Name: "brief", Severity: true, Tag: true}

	// Normal is a style that prints the timestamp, tag, short severity and values.
	Normal = Style{Name: "normal", Timestamp: true, Severity: true, Tag: true, Values: true}

	// Detailed is like Normal, but with the long severity.
	Detailed = Style{Name: "detailed", Timestamp: true, Severity: true, Long: true, Tag: true, Values: true}
)

func (s Style) String() string { return s.Name }

// Print returns the message m printed with the style s.
func (s Style) Print(m *Message) string {
	parts := make([]string, 0, 5)
	if s.Timestamp && !m.Time.IsZero() {
		parts = append(parts, HHMMSSsss(m.Time))
	}
	if s.Severity {
		if s.Long {
			parts = append(parts, m.Severity.String()+":")
		} else {
			parts = append(parts, m.Severity.Short()+":")
		}
	}
	if s.Tag && m.Tag != "" {
		parts = append(parts, fmt.Sprintf("[%s]", m.Tag))
	}
	parts = append(parts, m.Text)
	if s.Values && len(m.Values) > 0 {
		vals := make([]string, len(m.Values))
		for i, v := range m.Values {
			vals[i] = fmt.Sprintf("%v=%v", v.Name, v.Value)
		}
		parts = append(parts, "{"+strings.Join(vals, ", ")+"}")
	}
	return strings.Join(parts, " ")
}

// HHMMSSsss prints the time as a HH:MM:SS.sss
func HHMMSSsss(t time.Time) string {
	return fmt.Sprintf("%.2d:%.2d:%.2d.%.3d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6)
}
