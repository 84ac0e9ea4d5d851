// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mdfix/cmd/mdfix/commands"
	"github.com/walteh/mdfix/cmd/mdfix/opts"
	"github.com/walteh/mdfix/pkg/config"
	"github.com/walteh/mdfix/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		pterm.Error.WithWriter(stderr).WithPrefix(pterm.Prefix{Text: "❌"}).Println(err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "mdfix",
		Short: "Repair common Markdown formatting mistakes",
		Long: `mdfix finds and repairs common Markdown formatting mistakes:
doubled closing brackets, stray asterisks, overcounted code span backticks,
unclosed bold lines, and missing spaces after heading and list markers.

Content inside fenced code blocks is never touched by the line rules.`,
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := newLogger(stderr, rootOpts.Debug, rootOpts.NoColor).WithContext(cmd.Context())
			cmd.SetContext(ctx)

			if rootOpts.NoColor {
				color.NoColor = true
				pterm.DisableColor()
			}

			if err := resolveRootOpts(ctx, rootOpts); err != nil {
				return err
			}
			rootOpts.Printer = report.New(stdout, *zerolog.Ctx(ctx))
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(FormatVersion())

	addRootFlags(cmd, rootOpts)

	cmd.AddCommand(
		commands.NewScanCmd(rootOpts),
		commands.NewFixCmd(rootOpts),
		commands.NewRulesCmd(rootOpts),
	)

	return cmd
}

func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: .mdfix.{yaml,yml,hcl,json} in the working directory)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().IntVarP(&o.Workers, "workers", "w", 0, "number of documents processed in parallel (0 = auto)")
	cmd.PersistentFlags().StringSliceVar(&o.Extensions, "ext", nil, "document extensions to collect (repeatable)")
	cmd.PersistentFlags().StringSliceVar(&o.Exclude, "exclude", nil, "glob of paths to skip (repeatable)")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "disable colored output")
}

// resolveRootOpts loads the config and applies flag overrides
func resolveRootOpts(ctx context.Context, o *opts.RootOpts) error {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigFile != "" {
		cfg, err = config.Load(ctx, o.ConfigFile)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		cfg, err = config.Discover(ctx, wd)
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Flags override the file
	if len(o.Extensions) > 0 {
		cfg.Extensions = append([]string(nil), o.Extensions...)
	}
	if len(o.Exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, o.Exclude...)
	}
	if o.Workers != 0 {
		cfg.Workers = o.Workers
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating flags: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration resolved")

	o.Config = cfg
	return nil
}

func newLogger(w io.Writer, debug, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}).Level(level).With().Timestamp().Logger()
}
