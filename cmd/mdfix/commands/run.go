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

package commands

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/mdfix/cmd/mdfix/opts"
	"github.com/walteh/mdfix/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

func targetArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}

// run executes one scan or fix pass and prints the result
func run(ctx context.Context, o *opts.RootOpts, mode scan.Mode, target string, backup bool) error {
	ctx = zerolog.Ctx(ctx).With().Str("command", mode.String()).Logger().WithContext(ctx)

	corrector, err := o.Config.Corrector()
	if err != nil {
		return err
	}

	summary, err := scan.Run(ctx, scan.Options{
		Target: target,
		Mode:   mode,
		Filter: scan.Filter{
			Extensions: o.Config.Extensions,
			Include:    o.Config.Include,
			Exclude:    o.Config.Exclude,
		},
		Workers:      o.Config.Workers,
		Backup:       backup,
		DisplayWidth: o.Config.DisplayWidth,
		Corrector:    corrector,
	})
	if err != nil {
		return errors.Errorf("running %s: %w", mode, err)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}

	o.Printer.Header(mode, abs)
	for _, f := range summary.Files {
		o.Printer.File(mode, f)
	}
	o.Printer.Summary(summary)

	return nil
}
