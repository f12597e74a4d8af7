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

package log_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wjmboss/erjang/core/log"
)

var testClock log.Clock

func init() {
	t, err := time.Parse("Mon Jan _2 15:04:05.999 2006", "Mon Jan 22 12:34:56.789 2000")
	if err != nil {
		panic(err)
	}
	testClock = log.FixedClock(t)
}

type testMessage struct {
	msg      string
	args     []interface{}
	values   log.V
	severity log.Severity
	tag      string

	raw      string
	brief    string
	normal   string
	detailed string
}

func (m testMessage) send(h log.Handler) {
	ctx := context.Background()
	ctx = log.PutHandler(ctx, h)
	ctx = log.PutTag(ctx, m.tag)
	ctx = log.PutClock(ctx, testClock)
	ctx = m.values.Bind(ctx)
	log.From(ctx).Logf(m.severity, false, m.msg, m.args...)
}

var testMessages = []testMessage{
	{
		msg:      "plain warning",
		severity: log.Warning,

		raw:      "plain warning",
		brief:    "W: plain warning",
		normal:   "12:34:56.789 W: plain warning",
		detailed: "12:34:56.789 Warning: plain warning",
	}, {
		msg:      "decoded %d bits",
		args:     []interface{}{13},
		severity: log.Info,
		tag:      "pool",
		values:   log.V{"extra": 5, "bytes": 1},

		raw:      "decoded 13 bits",
		brief:    "I: [pool] decoded 13 bits",
		normal:   "12:34:56.789 I: [pool] decoded 13 bits {bytes=1, extra=5}",
		detailed: "12:34:56.789 Info: [pool] decoded 13 bits {bytes=1, extra=5}",
	},
}

func TestStyles(t *testing.T) {
	for _, style := range []log.Style{log.Raw, log.Brief, log.Normal, log.Detailed} {
		for _, m := range testMessages {
			buf := &bytes.Buffer{}
			m.send(log.Writer(buf, style))
			expect := map[string]string{
				"raw":      m.raw,
				"brief":    m.brief,
				"normal":   m.normal,
				"detailed": m.detailed,
			}[style.Name]
			if got := strings.TrimSuffix(buf.String(), "\n"); got != expect {
				t.Errorf("style %v: got %q, expected %q", style, got, expect)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := log.PutHandler(context.Background(), log.Writer(buf, log.Raw))
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "hidden")
	log.I(ctx, "hidden")
	log.W(ctx, "shown")
	log.E(ctx, "also shown")
	if got, expect := buf.String(), "shown\nalso shown\n"; got != expect {
		t.Errorf("got %q, expected %q", got, expect)
	}
}

func TestTagFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := log.PutHandler(context.Background(), log.Writer(buf, log.Raw))
	tags, err := log.ParseTagSeverities(map[string]string{"pool": "debug", "guard": "ERROR"})
	if err != nil {
		t.Fatalf("ParseTagSeverities: %v", err)
	}
	ctx = log.PutFilter(ctx, log.TagFilter{Default: log.Warning, Tags: tags})
	log.D(log.PutTag(ctx, "pool"), "pool debug")
	log.W(log.PutTag(ctx, "guard"), "guard warning")
	log.E(log.PutTag(ctx, "guard"), "guard error")
	log.I(log.PutTag(ctx, "match"), "match info")
	log.W(log.PutTag(ctx, "match"), "match warning")
	if got, expect := buf.String(), "pool debug\nguard error\nmatch warning\n"; got != expect {
		t.Errorf("got %q, expected %q", got, expect)
	}
	if _, err := log.ParseTagSeverities(map[string]string{"pool": "loud"}); err == nil {
		t.Errorf("expected an error for an unknown severity")
	}
}

func TestNoHandler(t *testing.T) {
	if log.From(context.Background()).Active(log.Fatal) {
		t.Errorf("a context without a handler should not be active")
	}
	log.E(context.Background(), "goes nowhere")
}

func TestErr(t *testing.T) {
	cause := errors.New("boom")
	ctx := log.V{"index": 3}.Bind(context.Background())
	err := log.Err(ctx, cause, "Failed to load")
	if !errors.Is(err, cause) {
		t.Errorf("log.Err did not wrap the cause")
	}
	if got, expect := err.Error(), "Failed to load {index=3}\n   Cause: boom"; got != expect {
		t.Errorf("got %q, expected %q", got, expect)
	}
	if got, expect := log.Errf(context.Background(), nil, "bad %v", "thing").Error(), "bad thing"; got != expect {
		t.Errorf("got %q, expected %q", got, expect)
	}
	var f *log.Failure
	if !errors.As(fmt.Errorf("outer: %w", err), &f) {
		t.Fatalf("errors.As did not find the Failure")
	}
	if f.Msg.Severity != log.Error || len(f.Msg.Values) != 1 || f.Msg.Values[0].Name != "index" {
		t.Errorf("unexpected failure message %+v", f.Msg)
	}
}

func TestParseSeverity(t *testing.T) {
	for _, test := range []struct {
		name   string
		expect log.Severity
	}{
		{"debug", log.Debug},
		{"Warning", log.Warning},
		{"ERROR", log.Error},
	} {
		got, err := log.ParseSeverity(test.name)
		if err != nil || got != test.expect {
			t.Errorf("ParseSeverity(%q) = %v, %v", test.name, got, err)
		}
	}
	if _, err := log.ParseSeverity("loud"); err == nil {
		t.Errorf("ParseSeverity accepted an unknown name")
	}
}
