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

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wjmboss/erjang/core/guard"
	"github.com/wjmboss/erjang/core/log"
)

func (a *app) guardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guard <builtin> <operand>...",
		Short: "Evaluate a guard test",
		Long: `Guard calls a boolean builtin such as is_binary, =:= or < and prints the
result. An operand is a value, or # followed by a decimal integer.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands := make([]guard.Operand, len(args)-1)
			for i, arg := range args[1:] {
				if strings.HasPrefix(arg, "#") {
					v, err := strconv.ParseInt(arg[1:], 10, 64)
					if err != nil {
						return log.Errf(a.ctx, ErrBadInput, "Integer operand %s", arg)
					}
					operands[i] = guard.Int(v)
					continue
				}
				b, err := parseBits(arg)
				if err != nil {
					return log.Err(a.ctx, err, "Parsing operand")
				}
				operands[i] = guard.Bits{Value: b}
			}
			test := guard.Test{Name: args[0], FailTo: "fail", Args: operands}
			ok, err := guard.NewMachine().Eval(a.ctx, test)
			if err != nil {
				return err
			}
			a.println(ok)
			return nil
		},
	}
}
