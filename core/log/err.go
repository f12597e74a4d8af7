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
	"context"
	"fmt"
)

// Failure is an error raised with the logging context it happened in.
// Use errors.As to recover the Message, and errors.Cause or errors.Is to
// reach the wrapped error.
type Failure struct {
	Msg   *Message
	cause error
}

// Err returns a Failure wrapping cause, described by msg and the values bound
// to the logger.
func (l *Logger) Err(cause error, msg string) error {
	return &Failure{l.Message(Error, false, msg), cause}
}

// Errf is Err with a printf-style description.
func (l *Logger) Errf(cause error, format string, args ...interface{}) error {
	return &Failure{l.Messagef(Error, false, format, args...), cause}
}

// Cause returns the wrapped error, for errors.Cause.
func (f *Failure) Cause() error { return f.cause }

// Unwrap returns the wrapped error, for errors.Is and errors.As.
func (f *Failure) Unwrap() error { return f.cause }

func (f *Failure) Error() string {
	text := f.Msg.Text
	if len(f.Msg.Values) > 0 {
		text = Style{Values: true}.Print(f.Msg)
	}
	if f.cause == nil {
		return text
	}
	return fmt.Sprintf("%v\n   Cause: %v", text, f.cause)
}

// Err returns an error wrapping cause with the logging context of ctx.
func Err(ctx context.Context, cause error, msg string) error {
	return From(ctx).Err(cause, msg)
}

// Errf returns an error wrapping cause with the logging context of ctx.
func Errf(ctx context.Context, cause error, format string, args ...interface{}) error {
	return From(ctx).Errf(cause, format, args...)
}
