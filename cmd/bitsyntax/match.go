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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/log"
)

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <value> <field>...",
		Short: "Match a value against a sequence of fields",
		Long: `Match reads fields in order from the start of the value and prints each one.
A field is N or uN for an N-bit unsigned integer, sN for a signed one,
f32 or f64 for a float, bN for an N-bit bitstring, or rest for the
remaining bits.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseBits(args[0])
			if err != nil {
				return log.Err(a.ctx, err, "Parsing value")
			}
			r := bitstring.NewReader(b)
			for _, field := range args[1:] {
				text, err := readField(r, field)
				if err != nil {
					return log.Err(a.ctx, err, "Parsing field")
				}
				if err := r.Error(); err != nil {
					return log.Errf(a.ctx, err, "Matching %s at bit %d", field, r.Pos())
				}
				a.println(field, "=", text)
			}
			if n := r.Remaining(); n > 0 {
				log.I(a.ctx, "%d bits left unmatched", n)
			}
			return nil
		},
	}
}

func readField(r *bitstring.Reader, field string) (string, error) {
	switch field {
	case "":
		return "", errors.Wrap(ErrBadInput, "empty field")
	case "rest":
		return r.Tail().String(), nil
	case "f32":
		return strconv.FormatFloat(float64(r.Float32()), 'g', -1, 32), nil
	case "f64":
		return strconv.FormatFloat(r.Float64(), 'g', -1, 64), nil
	}
	kind, digits := byte('u'), field
	if c := field[0]; c == 'u' || c == 's' || c == 'b' {
		kind, digits = c, field[1:]
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return "", errors.Wrapf(ErrBadInput, "unknown field %q", field)
	}
	switch kind {
	case 's':
		return strconv.FormatInt(r.Int(n), 10), nil
	case 'b':
		return r.BitString(n).String(), nil
	default:
		return strconv.FormatUint(r.Bits(n), 10), nil
	}
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <field>...",
		Short: "Build a value from a sequence of fields",
		Long: `Build appends fields in order and prints the result.
A field is i:V:N for the integer V in N bits, f32:V or f64:V for a float,
or a value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := &bitstring.Builder{}
			for _, field := range args {
				if err := writeField(w, field); err != nil {
					return log.Err(a.ctx, err, "Parsing field")
				}
			}
			b, err := w.Build()
			if err != nil {
				return log.Err(a.ctx, err, "Building")
			}
			a.println(a.format(b))
			return nil
		},
	}
}

func writeField(w *bitstring.Builder, field string) error {
	parts := strings.Split(field, ":")
	switch {
	case parts[0] == "i" && len(parts) == 3:
		v, err := strconv.ParseInt(parts[1], 0, 64)
		if err != nil {
			return errors.Wrapf(ErrBadInput, "integer %q", parts[1])
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return errors.Wrapf(ErrBadInput, "width %q", parts[2])
		}
		w.Int(v, n)
	case parts[0] == "f32" && len(parts) == 2:
		v, err := strconv.ParseFloat(parts[1], 32)
		if err != nil {
			return errors.Wrapf(ErrBadInput, "float %q", parts[1])
		}
		w.Float32(float32(v))
	case parts[0] == "f64" && len(parts) == 2:
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return errors.Wrapf(ErrBadInput, "float %q", parts[1])
		}
		w.Float64(v)
	default:
		b, err := parseBits(field)
		if err != nil {
			return err
		}
		w.Append(b)
	}
	return w.Error()
}
