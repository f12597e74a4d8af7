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

package guard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/fault"
	"github.com/wjmboss/erjang/core/log"
)

const (
	// ErrUnknownBuiltin is returned when a test names a builtin that is not
	// registered.
	ErrUnknownBuiltin = fault.Const("unknown builtin")
	// ErrArity is returned when a builtin is invoked with the wrong number of
	// arguments.
	ErrArity = fault.Const("wrong number of arguments")
	// ErrStack is returned when the pushed values do not match the invoked
	// signature.
	ErrStack = fault.Const("operand stack mismatch")
)

// Value is a value on the Machine operand stack.
type Value struct {
	Type Type
	Int  int64
	Bits bitstring.BitString
}

func (v Value) String() string {
	if v.Type == Integer {
		return fmtInt(v.Int)
	}
	return v.Bits.String()
}

// Compare orders values in term order: integers before bitstrings, integers
// numerically and bitstrings by bitstring.BitString.Compare.
func (v Value) Compare(o Value) int {
	if v.Type != o.Type {
		if v.Type < o.Type {
			return -1
		}
		return 1
	}
	if v.Type == Integer {
		switch {
		case v.Int < o.Int:
			return -1
		case v.Int > o.Int:
			return 1
		default:
			return 0
		}
	}
	return v.Bits.Compare(o.Bits)
}

// ExactlyEqual returns true if v and o are the same term.
func (v Value) ExactlyEqual(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	if v.Type == Integer {
		return v.Int == o.Int
	}
	return v.Bits.Equal(o.Bits)
}

// Builtin is a boolean function callable from a guard test.
type Builtin struct {
	Arity int
	Test  func(args []Value) bool
}

// Machine is an Emitter that evaluates guard tests as they are emitted.
// A Machine is not safe for concurrent use.
type Machine struct {
	builtins map[string]Builtin
	stack    []Value
	result   bool
	branch   Label
	taken    bool
	err      error
}

// NewMachine returns a Machine with the standard builtins registered.
func NewMachine() *Machine {
	m := &Machine{builtins: map[string]Builtin{}}
	for name, b := range standard {
		m.builtins[name] = b
	}
	return m
}

// Register adds or replaces the builtin called name.
func (m *Machine) Register(name string, b Builtin) {
	m.builtins[name] = b
}

// PushConstant decodes and pushes a bitstring constant.
func (m *Machine) PushConstant(text string, extraBits int) Type {
	if m.err != nil {
		return BitString
	}
	b, err := bitstring.Decode(text, extraBits)
	if err != nil {
		m.err = err
		return BitString
	}
	m.stack = append(m.stack, Value{Type: BitString, Bits: b})
	return BitString
}

// PushInt pushes an integer.
func (m *Machine) PushInt(v int64) Type {
	if m.err == nil {
		m.stack = append(m.stack, Value{Type: Integer, Int: v})
	}
	return Integer
}

// InvokeBool pops the arguments described by sig and calls the builtin.
func (m *Machine) InvokeBool(name string, sig Signature) {
	if m.err != nil {
		return
	}
	b, ok := m.builtins[name]
	if !ok {
		m.err = errors.Wrapf(ErrUnknownBuiltin, "%s%v", name, sig)
		return
	}
	if b.Arity != len(sig) {
		m.err = errors.Wrapf(ErrArity, "%s takes %d arguments, called with %d", name, b.Arity, len(sig))
		return
	}
	if len(sig) > len(m.stack) {
		m.err = errors.Wrapf(ErrStack, "%s%v with %d values pushed", name, sig, len(m.stack))
		return
	}
	base := len(m.stack) - len(sig)
	args := append([]Value{}, m.stack[base:]...)
	m.stack = m.stack[:base]
	for i, t := range sig {
		if args[i].Type != t {
			m.err = errors.Wrapf(ErrStack, "argument %d of %s%v is %v", i, name, sig, args[i].Type)
			return
		}
	}
	m.result = b.Test(args)
}

// BranchIfFalse records l as the branch taken if the last result was false.
func (m *Machine) BranchIfFalse(l Label) {
	if m.err != nil || m.result {
		return
	}
	m.branch, m.taken = l, true
}

// Eval emits t and returns the builtin result.
func (m *Machine) Eval(ctx context.Context, t Test) (bool, error) {
	m.stack, m.result, m.branch, m.taken, m.err = m.stack[:0], false, "", false, nil
	t.Emit(m)
	if m.err != nil {
		return false, log.Errf(ctx, m.err, "Evaluating %v", t)
	}
	if m.taken {
		log.D(ctx, "Guard %v failed, branching to %v", t, m.branch)
	}
	return m.result, nil
}

// Run evaluates tests in order until one fails, returning its failure label.
// It returns an empty label if every test passes.
func (m *Machine) Run(ctx context.Context, tests ...Test) (Label, error) {
	for _, t := range tests {
		ok, err := m.Eval(ctx, t)
		if err != nil {
			return "", err
		}
		if !ok {
			return m.branch, nil
		}
	}
	return "", nil
}
