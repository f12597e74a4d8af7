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
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wjmboss/erjang/core/data/bitstring"
	"github.com/wjmboss/erjang/core/fault"
	"github.com/wjmboss/erjang/core/log"
)

const (
	envPrefix = "BITSYNTAX"

	formatErlang = "erlang"
	formatHex    = "hex"

	// ErrBadConfig is returned for unusable configuration values.
	ErrBadConfig = fault.Const("bad configuration")
)

type config struct {
	LogLevel string            `mapstructure:"log-level"`
	LogTags  map[string]string `mapstructure:"log-tags"`
	Format   string            `mapstructure:"format"`
}

// app holds the state shared by the commands of one invocation.
type app struct {
	cfg config
	ctx context.Context
	out io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{ctx: context.Background(), out: os.Stdout}
	v := viper.New()
	root := &cobra.Command{
		Use:           "bitsyntax",
		Short:         "Inspect and build Erlang bit syntax values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a configuration file")
	flags.String("log-level", log.Info.String(), "Lowest severity of log messages to show")
	flags.StringToString("log-tags", nil, "Per-command severity overrides, as command=severity")
	flags.String("format", formatErlang, "Output format: erlang or hex")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.renderCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
		a.sliceCmd(),
		a.compareCmd(),
		a.matchCmd(),
		a.buildCmd(),
		a.guardCmd(),
		a.poolCmd(),
	)
	return root
}

// setup reads the configuration in increasing priority: flag defaults, the
// config file, the environment (including a .env file) and set flags.
func (a *app) setup(cmd *cobra.Command, v *viper.Viper) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "loading .env")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
	}
	if err := v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "parsing config")
	}

	severity, err := log.ParseSeverity(a.cfg.LogLevel)
	if err != nil {
		return errors.Wrap(ErrBadConfig, err.Error())
	}
	tags, err := log.ParseTagSeverities(a.cfg.LogTags)
	if err != nil {
		return errors.Wrap(ErrBadConfig, err.Error())
	}
	switch a.cfg.Format {
	case formatErlang, formatHex:
	default:
		return errors.Wrapf(ErrBadConfig, "unknown format %q", a.cfg.Format)
	}

	ctx := log.PutHandler(a.ctx, log.Writer(cmd.ErrOrStderr(), log.Normal))
	ctx = log.PutFilter(ctx, log.TagFilter{Default: severity, Tags: tags})
	a.ctx = log.PutTag(ctx, cmd.Name())
	a.out = cmd.OutOrStdout()
	cmd.Flags().Visit(func(f *pflag.Flag) {
		log.D(a.ctx, "Flag --%s=%v overrides configuration", f.Name, f.Value)
	})
	log.D(a.ctx, "Configured with %+v", a.cfg)
	return nil
}

// format returns b in the configured output format.
func (a *app) format(b bitstring.BitString) string {
	if a.cfg.Format == formatHex {
		return fmt.Sprintf("%x:%d", b, b.BitSize())
	}
	return b.String()
}

func (a *app) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}
