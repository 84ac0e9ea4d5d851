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

package report

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/mdfix/pkg/markdown"
	"github.com/walteh/mdfix/pkg/scan"
)

func plainOutput(t *testing.T) {
	t.Helper()
	color.NoColor = true
	pterm.DisableStyling()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableStyling()
	})
}

func TestPrinter(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name     string
		op       func(p *Printer)
		wantLogs []string
		notLogs  []string
	}{
		{
			name: "header_scan",
			op: func(p *Printer) {
				p.Header(scan.ModeScan, "docs")
			},
			wantLogs: []string{
				"mdfix • scan mode",
				"target: docs",
				strings.Repeat("-", 50),
			},
		},
		{
			name: "header_fix",
			op: func(p *Printer) {
				p.Header(scan.ModeFix, "README.md")
			},
			wantLogs: []string{
				"mdfix • fix mode",
				"target: README.md",
			},
		},
		{
			name: "file_scan",
			op: func(p *Printer) {
				p.File(scan.ModeScan, scan.FileResult{
					Path: "a.md",
					Changes: []markdown.ChangeRecord{
						{Line: 3, Before: "##Title", After: "## Title"},
					},
				})
			},
			wantLogs: []string{
				"⚠️  a.md (1 line to fix)",
				"line 3:",
				"- ##Title",
				"+ ## Title",
			},
		},
		{
			name: "file_fixed",
			op: func(p *Printer) {
				p.File(scan.ModeFix, scan.FileResult{
					Path:    "b.md",
					Written: true,
					Changes: []markdown.ChangeRecord{
						{Line: 1, Before: "-a", After: "- a"},
						{Line: 2, Before: "-b", After: "- b"},
					},
				})
			},
			wantLogs: []string{
				"✅ b.md (2 lines fixed)",
				"line 1:",
				"line 2:",
			},
		},
		{
			name: "file_skipped",
			op: func(p *Printer) {
				p.File(scan.ModeScan, scan.FileResult{
					Path: "bad.md",
					Err:  errors.New("file is not valid UTF-8"),
				})
			},
			wantLogs: []string{
				"❌ bad.md skipped: file is not valid UTF-8",
			},
		},
		{
			name: "summary_clean",
			op: func(p *Printer) {
				p.Summary(&scan.Summary{Target: "docs", Mode: scan.ModeScan, Scanned: 4})
			},
			wantLogs: []string{
				"No problems found in 4 documents",
			},
			notLogs: []string{
				"mdfix fix",
			},
		},
		{
			name: "summary_scan",
			op: func(p *Printer) {
				p.Summary(&scan.Summary{Target: "docs", Mode: scan.ModeScan, Scanned: 4, Changed: 2, Lines: 5})
			},
			wantLogs: []string{
				"2 files, 5 lines to fix",
				"to apply: mdfix fix docs",
			},
		},
		{
			name: "summary_fix",
			op: func(p *Printer) {
				p.Summary(&scan.Summary{Target: "docs", Mode: scan.ModeFix, Scanned: 4, Changed: 1, Lines: 1, Skipped: 1})
			},
			wantLogs: []string{
				"1 files, 1 line fixed",
				"1 documents skipped",
			},
			notLogs: []string{
				"to apply",
			},
		},
		{
			name: "summary_all_skipped",
			op: func(p *Printer) {
				p.Summary(&scan.Summary{Target: "docs", Mode: scan.ModeScan, Scanned: 2, Skipped: 2})
			},
			wantLogs: []string{
				"2 documents skipped",
			},
			notLogs: []string{
				"0 files",
				"lines to fix",
				"to apply",
				"No problems found",
			},
		},
		{
			name: "rules",
			op: func(p *Printer) {
				p.Rules(markdown.Rules())
			},
			wantLogs: []string{
				" 1. bracket-double-close",
				"11. list-item-space",
				"line",
				"document",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			p := New(buf, zerolog.New(io.Discard))

			tt.op(p)

			got := buf.String()
			for _, want := range tt.wantLogs {
				assert.Contains(t, got, want, "output should contain %q", want)
			}
			for _, not := range tt.notLogs {
				assert.NotContains(t, got, not, "output should not contain %q", not)
			}
		})
	}
}

func TestPrinterMirrorsToZerolog(t *testing.T) {
	plainOutput(t)

	logBuf := &bytes.Buffer{}
	p := New(io.Discard, zerolog.New(logBuf))

	p.Summary(&scan.Summary{Target: "docs", Mode: scan.ModeFix, Scanned: 2, Changed: 1, Lines: 3})

	assert.Contains(t, logBuf.String(), `"message":"run summary"`)
	assert.Contains(t, logBuf.String(), `"lines":3`)
}

func TestHighlightInsertions(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name   string
		before string
		after  string
	}{
		{name: "heading", before: "##Title", after: "## Title"},
		{name: "bold", before: "**Note: read", after: "**Note: read**"},
		{name: "unchanged", before: "plain", after: "plain"},
		{name: "bracket", before: "[x]]", after: "[x]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.after, HighlightInsertions(tt.before, tt.after))
		})
	}
}
