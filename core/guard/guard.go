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

// Package guard emits and evaluates guard tests: calls to a named boolean
// builtin over a list of operands that branch to a failure label when the
// builtin returns false.
//
// Operands emit themselves through an Emitter. Bitstring operands are pushed
// in their constant form, the (text, extra bits) pair produced by
// bitstring.BitString.Encode. A code generator implements Emitter to produce
// instructions; Machine implements it to evaluate a test directly.
package guard

import (
	"fmt"
	"strings"

	"github.com/wjmboss/erjang/core/data/bitstring"
)

// Type is the type of a value pushed by an Emitter.
type Type int

const (
	// Void is the type of nothing.
	Void Type = iota
	// Integer is a signed 64-bit integer.
	Integer
	// BitString is a bitstring or binary.
	BitString
)

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case Integer:
		return "integer"
	case BitString:
		return "bitstring"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Signature is the list of argument types of a builtin call.
type Signature []Type

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, ", ") + ") bool"
}

// Label names the target of a branch.
type Label string

// Emitter is the target of guard test emission.
type Emitter interface {
	// PushConstant pushes the bitstring constant (text, extraBits).
	PushConstant(text string, extraBits int) Type
	// PushInt pushes an integer.
	PushInt(v int64) Type
	// InvokeBool pops len(sig) arguments and calls the named boolean builtin
	// with them.
	InvokeBool(name string, sig Signature)
	// BranchIfFalse transfers control to l if the last builtin returned
	// false.
	BranchIfFalse(l Label)
}

// Operand is a value that can push itself onto an Emitter.
type Operand interface {
	Emit(e Emitter) Type
}

// Bits is a bitstring operand.
type Bits struct{ Value bitstring.BitString }

// Emit pushes the constant form of the bitstring.
func (o Bits) Emit(e Emitter) Type { return e.PushConstant(o.Value.Encode()) }

func (o Bits) String() string { return o.Value.String() }

// Int is an integer operand.
type Int int64

// Emit pushes the integer.
func (o Int) Emit(e Emitter) Type { return e.PushInt(int64(o)) }

// Test is a guard test.
type Test struct {
	Name   string    // Name of the boolean builtin.
	FailTo Label     // Branch target taken when the builtin returns false.
	Args   []Operand // Arguments, pushed in order.
}

// Emit pushes each argument in order, invokes the builtin with the types the
// arguments pushed and branches to FailTo on false.
func (t Test) Emit(e Emitter) {
	sig := make(Signature, len(t.Args))
	for i, a := range t.Args {
		sig[i] = a.Emit(e)
	}
	e.InvokeBool(t.Name, sig)
	e.BranchIfFalse(t.FailTo)
}

func (t Test) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("%s(%s) else %s", t.Name, strings.Join(args, ", "), t.FailTo)
}
