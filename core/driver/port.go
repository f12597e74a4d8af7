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

package driver

import (
	"context"
	"io"

	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/fault"
	"github.com/wjmboss/erjang/core/log"
)

// Event identifies a readiness callback.
type Event int

const (
	Input Event = iota
	Output
	Connect
	Accept
	Select
)

func (e Event) String() string {
	switch e {
	case Input:
		return "ready_input"
	case Output:
		return "ready_output"
	case Connect:
		return "ready_connect"
	case Accept:
		return "ready_accept"
	case Select:
		return "stop_select"
	default:
		return "unknown"
	}
}

// Port is an open port, dispatching to its driver.
type Port struct {
	Name   string
	Driver Driver
}

func (p *Port) bind(ctx context.Context, callback string) context.Context {
	return log.V{"port": p.Name, "callback": callback}.Bind(ctx)
}

// invoke calls f, returning any panic as an error.
func (p *Port) invoke(ctx context.Context, f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = log.Err(ctx, fault.From(r), "Driver panicked")
		}
	}()
	return f()
}

// Open starts the driver with command.
func (p *Port) Open(ctx context.Context, command string) error {
	ctx = p.bind(ctx, "start")
	return p.invoke(ctx, func() error { return p.Driver.Start(ctx, command) })
}

// Close stops the driver.
func (p *Port) Close(ctx context.Context) error {
	ctx = p.bind(ctx, "stop")
	return p.invoke(ctx, func() error { p.Driver.Stop(ctx); return nil })
}

// Timeout reports an expired timer to the driver.
func (p *Port) Timeout(ctx context.Context) error {
	ctx = p.bind(ctx, "timeout")
	return p.invoke(ctx, func() error { p.Driver.Timeout(ctx); return nil })
}

// Send passes bufs to the driver as one iolist.
func (p *Port) Send(ctx context.Context, bufs ...bitstring.BitString) error {
	ctx = p.bind(ctx, "outputv")
	list, err := IOList(bufs)
	if err != nil {
		return log.Err(ctx, err, "Invalid output")
	}
	return p.invoke(ctx, func() error { return p.Driver.Outputv(ctx, list) })
}

// Control performs the synchronous operation op with bufs as its argument.
func (p *Port) Control(ctx context.Context, op int, bufs ...bitstring.BitString) (bitstring.BitString, error) {
	ctx = log.V{"op": op}.Bind(p.bind(ctx, "control"))
	list, err := IOList(bufs)
	if err != nil {
		return bitstring.Empty, log.Err(ctx, err, "Invalid control data")
	}
	var out bitstring.BitString
	err = p.invoke(ctx, func() (err error) {
		out, err = p.Driver.Control(ctx, op, list)
		return err
	})
	return out, err
}

// Call performs the synchronous operation op on data.
func (p *Port) Call(ctx context.Context, op int, data bitstring.BitString) (bitstring.BitString, error) {
	ctx = log.V{"op": op}.Bind(p.bind(ctx, "call"))
	var out bitstring.BitString
	err := p.invoke(ctx, func() (err error) {
		out, err = p.Driver.Call(ctx, op, data)
		return err
	})
	return out, err
}

// Ready reports the readiness event ev on ch to the driver.
func (p *Port) Ready(ctx context.Context, ev Event, ch io.Closer) error {
	ctx = p.bind(ctx, ev.String())
	return p.invoke(ctx, func() error {
		switch ev {
		case Input:
			p.Driver.ReadyInput(ctx, ch)
		case Output:
			p.Driver.ReadyOutput(ctx, ch)
		case Connect:
			p.Driver.ReadyConnect(ctx, ch)
		case Accept:
			p.Driver.ReadyAccept(ctx, ch)
		case Select:
			p.Driver.StopSelect(ctx, ch)
		default:
			log.W(ctx, "Unknown readiness event %d", int(ev))
		}
		return nil
	})
}

// Complete runs job and reports its completion to the driver. The job's
// error is returned after the driver has been told.
func (p *Port) Complete(ctx context.Context, job Job) error {
	ctx = p.bind(ctx, "ready_async")
	jobErr := job.Run(ctx)
	if err := p.invoke(ctx, func() error { p.Driver.ReadyAsync(ctx, job); return nil }); err != nil {
		return err
	}
	if jobErr != nil {
		return log.Err(ctx, jobErr, "Async job failed")
	}
	return nil
}
