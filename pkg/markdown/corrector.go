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

package markdown

import (
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultBoldLineLimit is the exclusive rune limit for closing an unclosed bold line.
	DefaultBoldLineLimit = 200
	// DefaultDisplayWidth is the rune width change records are cut to.
	DefaultDisplayWidth = 120
)

// 🔧 Options tunes a Corrector
type Options struct {
	BoldLineLimit int      // lines this long or longer keep an unclosed bold marker
	Disabled      []string // rule names to skip
}

// 🎯 RuleHit counts the rewrites one rule made
type RuleHit struct {
	Rule  string `json:"rule"`
	Count int    `json:"count"`
}

// 📄 Result is the outcome of correcting one document
type Result struct {
	Original  string
	Corrected string
	Hits      []RuleHit // rules that rewrote something, in application order
}

// Changed reports whether any rule rewrote the document
func (r *Result) Changed() bool {
	return r.Original != r.Corrected
}

// Diff returns the changed lines truncated to width runes
func (r *Result) Diff(width int) []ChangeRecord {
	return ComputeDiffWidth(r.Original, r.Corrected, width)
}

// 🩹 Corrector applies the rule catalog to documents.
// It holds no mutable state and is safe for concurrent use.
type Corrector struct {
	rules []Rule
	opts  Options
}

// 🏭 NewCorrector creates a corrector with every rule not listed in opts.Disabled
func NewCorrector(opts Options) (*Corrector, error) {
	if opts.BoldLineLimit == 0 {
		opts.BoldLineLimit = DefaultBoldLineLimit
	}
	if opts.BoldLineLimit < 0 {
		return nil, errors.Errorf("bold line limit must be positive, got %d", opts.BoldLineLimit)
	}

	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		if _, ok := LookupRule(name); !ok {
			return nil, errors.Errorf("unknown rule %q", name)
		}
		disabled[name] = true
	}

	rules := make([]Rule, 0, len(catalog))
	for _, r := range catalog {
		if !disabled[r.Name] {
			rules = append(rules, r)
		}
	}

	return &Corrector{rules: rules, opts: opts}, nil
}

var defaultCorrector = &Corrector{
	rules: catalog,
	opts:  Options{BoldLineLimit: DefaultBoldLineLimit},
}

// Default returns a corrector running the full catalog with default options
func Default() *Corrector {
	return defaultCorrector
}

// Rules returns the enabled rules in application order
func (c *Corrector) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// ✨ Correct runs every enabled rule over text in catalog order
func (c *Corrector) Correct(text string) *Result {
	res := &Result{Original: text}
	for _, r := range c.rules {
		var n int
		text, n = r.apply(text, c.opts)
		if n > 0 {
			res.Hits = append(res.Hits, RuleHit{Rule: r.Name, Count: n})
		}
	}
	res.Corrected = text
	return res
}

// CorrectText repairs text with the full catalog
func CorrectText(text string) string {
	return defaultCorrector.Correct(text).Corrected
}
