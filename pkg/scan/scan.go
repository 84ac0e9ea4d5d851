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

package scan

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/mdfix/pkg/markdown"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔀 Mode says whether corrections are only reported or also written
type Mode int

const (
	ModeScan Mode = iota // report only
	ModeFix              // overwrite documents in place
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeScan:
		return "scan"
	case ModeFix:
		return "fix"
	default:
		return "unknown"
	}
}

const maxWorkers = 8

// 🔧 Options configures a run
type Options struct {
	Target       string
	Mode         Mode
	Filter       Filter
	Workers      int  // <= 0 picks a value from GOMAXPROCS
	Backup       bool // fix mode only
	DisplayWidth int
	Corrector    *markdown.Corrector // nil uses markdown.Default()
}

// 📄 FileResult is the outcome for one document
type FileResult struct {
	Path       string // relative to the target directory, or the base name for a file target
	AbsPath    string
	Changes    []markdown.ChangeRecord
	Hits       []markdown.RuleHit
	Written    bool
	BackupPath string
	Err        error
}

// Skipped reports whether the document could not be processed
func (r FileResult) Skipped() bool {
	return r.Err != nil
}

// 📊 Summary aggregates a run
type Summary struct {
	Target  string
	Mode    Mode
	Files   []FileResult // documents with changes or errors, in path order
	Scanned int
	Changed int
	Lines   int
	Skipped int
}

// ResolveWorkers picks the worker count for a run.
// An explicit count wins; otherwise GOMAXPROCS clamped to [1, 8].
func ResolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	n = runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// 🏃 Run corrects every document under opts.Target.
//
// Per-file failures are recorded on the file's result and do not stop the run.
// A missing target returns ErrPathNotFound.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	logger := zerolog.Ctx(ctx)

	files, err := Collect(ctx, opts.Target, opts.Filter)
	if err != nil {
		return nil, errors.Errorf("collecting documents: %w", err)
	}

	if opts.Corrector == nil {
		opts.Corrector = markdown.Default()
	}
	if opts.DisplayWidth == 0 {
		opts.DisplayWidth = markdown.DefaultDisplayWidth
	}

	singleFile := len(files) == 1 && files[0] == opts.Target
	workers := ResolveWorkers(opts.Workers)
	logger.Debug().
		Str("target", opts.Target).
		Str("mode", opts.Mode.String()).
		Int("files", len(files)).
		Int("workers", workers).
		Msg("starting run")

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		rel := filepath.Base(path)
		if !singleFile {
			if r, err := filepath.Rel(opts.Target, path); err == nil {
				rel = filepath.ToSlash(r)
			}
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = processFile(gctx, path, rel, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("processing documents: %w", err)
	}

	summary := &Summary{
		Target:  opts.Target,
		Mode:    opts.Mode,
		Scanned: len(files),
	}
	for _, res := range results {
		switch {
		case res.Skipped():
			summary.Skipped++
		case len(res.Changes) > 0:
			summary.Changed++
			summary.Lines += len(res.Changes)
		default:
			continue
		}
		summary.Files = append(summary.Files, res)
	}

	logger.Debug().
		Int("scanned", summary.Scanned).
		Int("changed", summary.Changed).
		Int("lines", summary.Lines).
		Int("skipped", summary.Skipped).
		Msg("run complete")

	return summary, nil
}

// processFile corrects one document and writes it back in fix mode
func processFile(ctx context.Context, path, rel string, opts Options) FileResult {
	logger := zerolog.Ctx(ctx).With().Str("file", rel).Logger()
	res := FileResult{Path: rel, AbsPath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = errors.Errorf("reading file: %w", err)
		logger.Warn().Err(res.Err).Msg("skipping document")
		return res
	}

	if !utf8.Valid(data) {
		res.Err = errors.WithStack(ErrEncoding)
		logger.Warn().Err(res.Err).Msg("skipping document")
		return res
	}

	result := opts.Corrector.Correct(string(data))
	if !result.Changed() {
		return res
	}

	res.Changes = result.Diff(opts.DisplayWidth)
	res.Hits = result.Hits
	for _, hit := range result.Hits {
		logger.Debug().Str("rule", hit.Rule).Int("count", hit.Count).Msg("rule applied")
	}

	if opts.Mode != ModeFix {
		return res
	}

	if opts.Backup {
		backupPath, err := backupFile(path)
		if err != nil {
			res.Err = errors.Errorf("backing up: %w", err)
			logger.Warn().Err(res.Err).Msg("document left unchanged")
			return res
		}
		res.BackupPath = backupPath
	}

	if err := writeFileAtomic(path, []byte(result.Corrected)); err != nil {
		res.Err = errors.Errorf("writing file: %w", err)
		logger.Warn().Err(res.Err).Msg("document left unchanged")
		return res
	}
	res.Written = true

	return res
}
