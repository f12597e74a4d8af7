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

// Package driver defines the callbacks of a port driver: an external I/O
// component that exchanges binaries with the runtime.
//
// Drivers embed Base, which implements every callback as a no-op, and
// override the callbacks they handle. A Port dispatches to its Driver,
// validating outgoing iolists and turning driver panics into errors.
package driver

import (
	"context"
	"io"

	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/log"
)

// Job is an asynchronous task whose completion is reported to a driver with
// ReadyAsync.
type Job interface {
	Run(ctx context.Context) error
}

// Driver is the set of callbacks a port driver may implement.
type Driver interface {
	// Start is called when the port is opened with command.
	Start(ctx context.Context, command string) error
	// Stop is called when the port is closed.
	Stop(ctx context.Context)
	// Timeout is called when a timer set by the driver expires.
	Timeout(ctx context.Context)
	// Outputv is called with data sent to the port. Every element is a binary.
	Outputv(ctx context.Context, bufs [][]byte) error
	// Control performs the synchronous operation op.
	Control(ctx context.Context, op int, bufs [][]byte) (bitstring.BitString, error)
	// Call performs the synchronous operation op on a term.
	Call(ctx context.Context, op int, data bitstring.BitString) (bitstring.BitString, error)
	// ReadyInput is called when ch can be read without blocking.
	ReadyInput(ctx context.Context, ch io.Closer)
	// ReadyOutput is called when ch can be written without blocking.
	ReadyOutput(ctx context.Context, ch io.Closer)
	// ReadyConnect is called when a connect on ch has completed.
	ReadyConnect(ctx context.Context, ch io.Closer)
	// ReadyAccept is called when ch has a connection to accept.
	ReadyAccept(ctx context.Context, ch io.Closer)
	// StopSelect is called when the driver may release ch.
	StopSelect(ctx context.Context, ch io.Closer)
	// ReadyAsync is called when job has completed.
	ReadyAsync(ctx context.Context, job Job)
}

// Base implements Driver with callbacks that do nothing.
// Control and Call return the empty binary.
type Base struct{}

var _ Driver = Base{}

func unhandled(ctx context.Context, callback string) {
	log.D(ctx, "Driver callback %s not handled", callback)
}

func (Base) Start(ctx context.Context, command string) error {
	unhandled(ctx, "start")
	return nil
}

func (Base) Stop(ctx context.Context)    { unhandled(ctx, "stop") }
func (Base) Timeout(ctx context.Context) { unhandled(ctx, "timeout") }

func (Base) Outputv(ctx context.Context, bufs [][]byte) error {
	unhandled(ctx, "outputv")
	return nil
}

func (Base) Control(ctx context.Context, op int, bufs [][]byte) (bitstring.BitString, error) {
	unhandled(ctx, "control")
	return bitstring.Empty, nil
}

func (Base) Call(ctx context.Context, op int, data bitstring.BitString) (bitstring.BitString, error) {
	unhandled(ctx, "call")
	return bitstring.Empty, nil
}

func (Base) ReadyInput(ctx context.Context, ch io.Closer)   { unhandled(ctx, "ready_input") }
func (Base) ReadyOutput(ctx context.Context, ch io.Closer)  { unhandled(ctx, "ready_output") }
func (Base) ReadyConnect(ctx context.Context, ch io.Closer) { unhandled(ctx, "ready_connect") }
func (Base) ReadyAccept(ctx context.Context, ch io.Closer)  { unhandled(ctx, "ready_accept") }
func (Base) StopSelect(ctx context.Context, ch io.Closer)   { unhandled(ctx, "stop_select") }
func (Base) ReadyAsync(ctx context.Context, job Job)        { unhandled(ctx, "ready_async") }
