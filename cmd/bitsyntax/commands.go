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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/log"
)

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <value>...",
		Short: "Print values in bit syntax",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAll(args)
			if err != nil {
				return log.Err(a.ctx, err, "Parsing values")
			}
			for _, b := range values {
				a.println(a.format(b))
			}
			return nil
		},
	}
}

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Print the constant form (quoted text and extra bits) of a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBits(args[0])
			if err != nil {
				return log.Err(a.ctx, err, "Parsing value")
			}
			text, extra := b.Encode()
			a.println(strconv.Quote(text), extra)
			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <quoted text> <extra bits>",
		Short: "Rebuild a value from its constant form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := strconv.Unquote(args[0])
			if err != nil {
				return log.Errf(a.ctx, ErrBadInput, "Text %s is not quoted", args[0])
			}
			extra, err := parseInt(args[1], "extra bits")
			if err != nil {
				return log.Err(a.ctx, err, "Parsing extra bits")
			}
			b, err := bitstring.Decode(text, extra)
			if err != nil {
				return log.Err(a.ctx, err, "Decoding constant")
			}
			a.println(a.format(b))
			return nil
		},
	}
}

func (a *app) sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <value> <bit offset> [bit length]",
		Short: "Print the bits of a value from an offset",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBits(args[0])
			if err != nil {
				return log.Err(a.ctx, err, "Parsing value")
			}
			offset, err := parseInt(args[1], "offset")
			if err != nil {
				return log.Err(a.ctx, err, "Parsing offset")
			}
			sub, err := b.SubstringFrom(offset)
			if len(args) == 3 {
				length, perr := parseInt(args[2], "length")
				if perr != nil {
					return log.Err(a.ctx, perr, "Parsing length")
				}
				sub, err = b.Substring(offset, length)
			}
			if err != nil {
				return log.Err(a.ctx, err, "Slicing")
			}
			a.println(a.format(sub))
			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <value> <value>",
		Short: "Print the term order of two values and whether they are exactly equal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAll(args)
			if err != nil {
				return log.Err(a.ctx, err, "Parsing values")
			}
			l, r := values[0], values[1]
			op := "=="
			switch c := l.Compare(r); {
			case c < 0:
				op = "<"
			case c > 0:
				op = ">"
			}
			exact := "=/="
			if l.Equal(r) {
				exact = "=:="
			}
			a.println(fmt.Sprintf("%s %s %s", a.format(l), op, a.format(r)))
			a.println(fmt.Sprintf("%s %s %s", a.format(l), exact, a.format(r)))
			return nil
		},
	}
}
