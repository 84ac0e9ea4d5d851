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
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/mdfix/pkg/markdown"
	"github.com/walteh/mdfix/pkg/scan"
)

// 🎨 Display configuration
const (
	changeIndent = 4  // spaces to indent change entries
	ruleWidth    = 30 // width of the rule name column
	scopeWidth   = 10 // width of the rule scope column
	ruleWidthSep = 50 // width of the header separator
)

// 🎯 Printer writes run results for people, and mirrors them to zerolog
type Printer struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new printer
func New(console io.Writer, zlog zerolog.Logger) *Printer {
	return &Printer{
		zlog:    zlog,
		console: console,
	}
}

// 📝 Header prints the mode and target of a run
func (p *Printer) Header(mode scan.Mode, target string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	label := "scan mode"
	if mode == scan.ModeFix {
		label = "fix mode"
	}
	mdfixText := color.New(color.Bold, color.FgCyan).Sprint("mdfix")
	fmt.Fprintf(p.console, "%s %s\n", mdfixText, color.New(color.Faint).Sprint("• "+label))
	fmt.Fprintf(p.console, "target: %s\n", target)
	fmt.Fprintln(p.console, strings.Repeat("-", ruleWidthSep))

	p.zlog.Info().Str("mode", mode.String()).Str("target", target).Msg("starting")
}

// 📄 File prints the changes found in one document
func (p *Printer) File(mode scan.Mode, res scan.FileResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if res.Skipped() {
		fmt.Fprintf(p.console, "\n❌ %s %s\n", color.New(color.Bold).Sprint(res.Path), color.RedString("skipped: %v", res.Err))
		p.zlog.Warn().Str("file", res.Path).Err(res.Err).Msg("document skipped")
		return
	}

	icon, verb := "⚠️ ", "to fix"
	if mode == scan.ModeFix && res.Written {
		icon, verb = "✅", "fixed"
	}
	fmt.Fprintf(p.console, "\n%s %s (%s)\n", icon, color.New(color.Bold, color.FgCyan).Sprint(res.Path), pluralLines(len(res.Changes), verb))

	indent := strings.Repeat(" ", changeIndent)
	for _, c := range res.Changes {
		fmt.Fprintf(p.console, "%sline %d:\n", indent, c.Line)
		fmt.Fprintf(p.console, "%s  %s %s\n", indent, color.RedString("-"), c.Before)
		fmt.Fprintf(p.console, "%s  %s %s\n", indent, color.GreenString("+"), HighlightInsertions(c.Before, c.After))
	}

	p.zlog.Info().
		Str("file", res.Path).
		Int("lines", len(res.Changes)).
		Bool("written", res.Written).
		Msg("document changes")
}

// 📊 Summary prints the totals of a run
func (p *Printer) Summary(s *scan.Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.console)

	if s.Changed == 0 && s.Skipped == 0 {
		msg := fmt.Sprintf("No problems found in %d documents", s.Scanned)
		pterm.Success.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		p.zlog.Info().Int("scanned", s.Scanned).Msg("no problems found")
		return
	}

	fmt.Fprintln(p.console, strings.Repeat("=", ruleWidthSep))

	if s.Changed > 0 {
		verb := "to fix"
		if s.Mode == scan.ModeFix {
			verb = "fixed"
		}
		msg := fmt.Sprintf("%d files, %s", s.Changed, pluralLines(s.Lines, verb))
		if s.Mode == scan.ModeFix {
			pterm.Success.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "✅"}).Println(msg)
		} else {
			pterm.Warning.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(msg)
		}
	}

	if s.Skipped > 0 {
		pterm.Error.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "❌"}).Printfln("%d documents skipped", s.Skipped)
	}

	if s.Mode == scan.ModeScan && s.Changed > 0 {
		pterm.Info.WithWriter(p.console).WithPrefix(pterm.Prefix{Text: "→"}).Printfln("to apply: mdfix fix %s", s.Target)
	}

	p.zlog.Info().
		Str("mode", s.Mode.String()).
		Int("scanned", s.Scanned).
		Int("changed", s.Changed).
		Int("lines", s.Lines).
		Int("skipped", s.Skipped).
		Msg("run summary")
}

// 📚 Rules prints the rule catalog
func (p *Printer) Rules(rules []markdown.Rule) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, r := range rules {
		fmt.Fprintf(p.console, "%2d. %s %s %s\n",
			i+1,
			color.New(color.Bold).Sprintf("%-*s", ruleWidth, r.Name),
			color.New(color.Faint).Sprintf("%-*s", scopeWidth, r.Scope),
			r.Summary)
	}
}

func pluralLines(n int, verb string) string {
	if n == 1 {
		return fmt.Sprintf("1 line %s", verb)
	}
	return fmt.Sprintf("%d lines %s", n, verb)
}
