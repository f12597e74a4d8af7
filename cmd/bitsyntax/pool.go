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
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	"github.com/wjmboss/erjang/core/data/constpool"
	"github.com/wjmboss/erjang/core/log"
)

func (a *app) poolCmd() *cobra.Command {
	pool := &cobra.Command{
		Use:   "pool",
		Short: "Write and read constant pools",
	}
	pool.AddCommand(
		&cobra.Command{
			Use:   "build <file> <value>...",
			Short: "Write the values to file as a constant pool",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := log.V{"file": args[0]}.Bind(a.ctx)
				values, err := parseAll(args[1:])
				if err != nil {
					return log.Err(ctx, err, "Parsing values")
				}
				p := constpool.New()
				for _, b := range values {
					i, err := p.Add(b)
					if err != nil {
						return log.Err(ctx, err, "Adding constant")
					}
					a.println(fmt.Sprintf("%d\t%s", i, a.format(b)))
				}
				data, err := p.Marshal(ctx)
				if err != nil {
					return err
				}
				if err := ioutil.WriteFile(args[0], data, 0666); err != nil {
					return log.Err(ctx, err, "Writing pool")
				}
				log.I(ctx, "Wrote %d constants in %d bytes", p.Len(), len(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "dump <file>",
			Short: "Print the constants of a pool",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := log.V{"file": args[0]}.Bind(a.ctx)
				data, err := ioutil.ReadFile(args[0])
				if err != nil {
					return log.Err(ctx, err, "Reading pool")
				}
				p, err := constpool.Unmarshal(ctx, data)
				if err != nil {
					return err
				}
				for i, b := range p.Values() {
					a.println(fmt.Sprintf("%d\t%s", i, a.format(b)))
				}
				return nil
			},
		},
	)
	return pool
}
